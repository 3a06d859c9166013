package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hudsonrene96-debug/todo-list-backend/entities"
	"github.com/hudsonrene96-debug/todo-list-backend/storage"
)

// TaskHandler serves the task CRUD routes. Every method runs behind
// RequireAuth and scopes its store calls to the resolved identity.
type TaskHandler struct {
	tasks storage.TaskRepository
}

func NewTaskHandler(tasks storage.TaskRepository) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// parseDueDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseDueDate(value string) (time.Time, error) {
	if due, err := time.Parse("2006-01-02", value); err == nil {
		return due, nil
	}
	return time.Parse(time.RFC3339, value)
}

// List handles GET /api/tasks?category=
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, KindUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	tasks, err := h.tasks.FindByOwner(ctx, userID, r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("tasks: list: %v", err)
		writeError(w, http.StatusInternalServerError, KindInternal, "could not list tasks")
		return
	}
	if tasks == nil {
		tasks = []entities.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

type createTaskReq struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	DueDate  string `json:"dueDate"`
}

// Create handles POST /api/tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, KindUnauthorized, "authentication required")
		return
	}

	var req createTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, KindValidation, "text is required")
		return
	}
	if req.Category == "" {
		req.Category = entities.DefaultCategory
	}

	task := entities.Task{
		UserID:    userID,
		Text:      req.Text,
		Category:  req.Category,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	if req.DueDate != "" {
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, KindValidation, "dueDate must be a valid date")
			return
		}
		task.DueDate = &due
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if err := h.tasks.Insert(ctx, &task); err != nil {
		log.Printf("tasks: create: %v", err)
		writeError(w, http.StatusInternalServerError, KindInternal, "could not create task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

type updateTaskReq struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
	Category  *string `json:"category"`
	DueDate   *string `json:"dueDate"`
}

// Update handles PUT /api/tasks/{id}. Only fields present in the body are
// applied; a dueDate of "" clears the stored due date.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, KindUnauthorized, "authentication required")
		return
	}

	var req updateTaskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, KindValidation, "invalid request body")
		return
	}

	patch := entities.TaskUpdate{Completed: req.Completed}
	if req.Text != nil {
		if *req.Text == "" {
			writeError(w, http.StatusBadRequest, KindValidation, "text cannot be empty")
			return
		}
		patch.Text = req.Text
	}
	if req.Category != nil {
		if *req.Category == "" {
			writeError(w, http.StatusBadRequest, KindValidation, "category cannot be empty")
			return
		}
		patch.Category = req.Category
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			patch.ClearDueDate = true
		} else {
			due, err := parseDueDate(*req.DueDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, KindValidation, "dueDate must be a valid date")
				return
			}
			patch.DueDate = &due
		}
	}
	if patch.IsEmpty() {
		writeError(w, http.StatusBadRequest, KindValidation, "nothing to update")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	task, err := h.tasks.UpdateOwned(ctx, userID, mux.Vars(r)["id"], patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, KindNotFound, "task not found")
			return
		}
		log.Printf("tasks: update: %v", err)
		writeError(w, http.StatusInternalServerError, KindInternal, "could not update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, KindUnauthorized, "authentication required")
		return
	}

	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	if err := h.tasks.DeleteOwned(ctx, userID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, KindNotFound, "task not found")
			return
		}
		log.Printf("tasks: delete: %v", err)
		writeError(w, http.StatusInternalServerError, KindInternal, "could not delete task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
