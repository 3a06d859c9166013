package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hudsonrene96-debug/todo-list-backend/entities"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestMemoryUserInsertEnforcesUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	alice := entities.User{Username: "alice", PasswordHash: "digest-1"}
	if err := store.Insert(ctx, &alice); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if alice.ID == "" {
		t.Fatalf("expected generated user ID")
	}

	dup := entities.User{Username: "alice", PasswordHash: "digest-2"}
	if err := store.Insert(ctx, &dup); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	// The failed insert must not have replaced the original record.
	stored, err := store.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.PasswordHash != "digest-1" {
		t.Fatalf("duplicate insert mutated state: %q", stored.PasswordHash)
	}
}

func TestMemoryFindByUsernameMissing(t *testing.T) {
	store := NewMemory()
	if _, err := store.FindByUsername(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryFindByOwnerOrdering(t *testing.T) {
	ctx := context.Background()
	tasks := NewMemory().Tasks()

	done := entities.Task{UserID: "u1", Text: "done", Completed: true, DueDate: datePtr(2024, 3, 1)}
	undated := entities.Task{UserID: "u1", Text: "undated"}
	dated := entities.Task{UserID: "u1", Text: "dated", DueDate: datePtr(2024, 1, 1)}
	for _, task := range []*entities.Task{&done, &undated, &dated} {
		if err := tasks.Insert(ctx, task); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := tasks.FindByOwner(ctx, "u1", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got))
	}
	if got[0].Text != "dated" || got[1].Text != "undated" || got[2].Text != "done" {
		t.Fatalf("wrong order: %q, %q, %q", got[0].Text, got[1].Text, got[2].Text)
	}
}

func TestMemoryFindByOwnerCategoryFilter(t *testing.T) {
	ctx := context.Background()
	tasks := NewMemory().Tasks()

	shopping := entities.Task{UserID: "u1", Text: "buy milk", Category: "shopping"}
	work := entities.Task{UserID: "u1", Text: "send report", Category: "work"}
	for _, task := range []*entities.Task{&shopping, &work} {
		if err := tasks.Insert(ctx, task); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := tasks.FindByOwner(ctx, "u1", "shopping")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Text != "buy milk" {
		t.Fatalf("expected only the shopping task, got %v", got)
	}

	all, err := tasks.FindByOwner(ctx, "u1", entities.AllCategories)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected the %q filter to return everything, got %d", entities.AllCategories, len(all))
	}
}

func TestMemoryOwnershipScoping(t *testing.T) {
	ctx := context.Background()
	tasks := NewMemory().Tasks()

	task := entities.Task{UserID: "owner", Text: "private"}
	if err := tasks.Insert(ctx, &task); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if got, err := tasks.FindByOwner(ctx, "intruder", ""); err != nil || len(got) != 0 {
		t.Fatalf("expected empty list for other user, got %v (%v)", got, err)
	}

	completed := true
	if _, err := tasks.UpdateOwned(ctx, "intruder", task.ID, entities.TaskUpdate{Completed: &completed}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign update, got %v", err)
	}
	if err := tasks.DeleteOwned(ctx, "intruder", task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on foreign delete, got %v", err)
	}

	// The owner still sees the untouched record.
	got, err := tasks.FindByOwner(ctx, "owner", "")
	if err != nil || len(got) != 1 {
		t.Fatalf("owner list: %v (%v)", got, err)
	}
	if got[0].Completed {
		t.Fatalf("foreign update leaked through")
	}
}

func TestMemoryUpdateAppliesOnlyPatchedFields(t *testing.T) {
	ctx := context.Background()
	tasks := NewMemory().Tasks()

	task := entities.Task{UserID: "u1", Text: "buy milk", Category: "shopping", DueDate: datePtr(2024, 1, 1)}
	if err := tasks.Insert(ctx, &task); err != nil {
		t.Fatalf("insert: %v", err)
	}

	completed := true
	updated, err := tasks.UpdateOwned(ctx, "u1", task.ID, entities.TaskUpdate{Completed: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("expected completed true")
	}
	if updated.Text != "buy milk" || updated.Category != "shopping" {
		t.Fatalf("patch touched omitted fields: %+v", updated)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(*task.DueDate) {
		t.Fatalf("patch touched due date: %+v", updated.DueDate)
	}
}

func TestMemoryUpdateClearsDueDate(t *testing.T) {
	ctx := context.Background()
	tasks := NewMemory().Tasks()

	task := entities.Task{UserID: "u1", Text: "buy milk", DueDate: datePtr(2024, 1, 1)}
	if err := tasks.Insert(ctx, &task); err != nil {
		t.Fatalf("insert: %v", err)
	}

	updated, err := tasks.UpdateOwned(ctx, "u1", task.ID, entities.TaskUpdate{ClearDueDate: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DueDate != nil {
		t.Fatalf("expected due date cleared, got %v", updated.DueDate)
	}
}

func TestMemoryDeleteOwned(t *testing.T) {
	ctx := context.Background()
	tasks := NewMemory().Tasks()

	task := entities.Task{UserID: "u1", Text: "buy milk"}
	if err := tasks.Insert(ctx, &task); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := tasks.DeleteOwned(ctx, "u1", task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := tasks.DeleteOwned(ctx, "u1", task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
