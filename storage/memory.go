package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hudsonrene96-debug/todo-list-backend/entities"
)

// Memory implements both repositories in process. It backs the tests and
// serves as the dev-mode store when no MONGO_URI is configured. The mutex is
// the store's concurrency control, mirroring Mongo's per-document atomicity.
type Memory struct {
	mu      sync.Mutex
	users   map[string]entities.User // keyed by username
	tasks   map[string]entities.Task // keyed by task ID
	ordered []string // task insertion order, for a stable sort tiebreak
}

func NewMemory() *Memory {
	return &Memory{
		users: make(map[string]entities.User),
		tasks: make(map[string]entities.Task),
	}
}

func (m *Memory) Insert(ctx context.Context, user *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return ErrDuplicateUsername
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	m.users[user.Username] = *user
	return nil
}

func (m *Memory) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// Tasks returns the TaskRepository view of the same store.
func (m *Memory) Tasks() *MemoryTasks { return &MemoryTasks{m} }

// MemoryTasks is the task side of Memory, split so the two repository
// interfaces stay distinct at the call sites.
type MemoryTasks struct {
	store *Memory
}

func (r *MemoryTasks) Insert(ctx context.Context, task *entities.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	r.store.tasks[task.ID] = *task
	r.store.ordered = append(r.store.ordered, task.ID)
	return nil
}

func (r *MemoryTasks) FindByOwner(ctx context.Context, userID, category string) ([]entities.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tasks := []entities.Task{}
	for _, id := range r.store.ordered {
		task, ok := r.store.tasks[id]
		if !ok || task.UserID != userID {
			continue
		}
		if category != "" && category != entities.AllCategories && task.Category != category {
			continue
		}
		tasks = append(tasks, task)
	}

	// Pending before completed; within a group ascending due date, undated
	// tasks last. Stable, so insertion order breaks ties.
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})
	return tasks, nil
}

func (r *MemoryTasks) UpdateOwned(ctx context.Context, userID, taskID string, patch entities.TaskUpdate) (*entities.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	task, ok := r.store.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, ErrNotFound
	}

	if patch.Text != nil {
		task.Text = *patch.Text
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.ClearDueDate {
		task.DueDate = nil
	} else if patch.DueDate != nil {
		due := *patch.DueDate
		task.DueDate = &due
	}

	r.store.tasks[taskID] = task
	return &task, nil
}

func (r *MemoryTasks) DeleteOwned(ctx context.Context, userID, taskID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	task, ok := r.store.tasks[taskID]
	if !ok || task.UserID != userID {
		return ErrNotFound
	}
	delete(r.store.tasks, taskID)
	return nil
}
