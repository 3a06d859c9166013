package entities

import "time"

// Category sentinels: DefaultCategory is substituted when a task is created
// without one, AllCategories as a list filter means "no restriction".
const (
	DefaultCategory = "general"
	AllCategories   = "all"
)

// Task belongs to exactly one user; ownership never changes after creation.
type Task struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	UserID    string     `bson:"userId" json:"userId"`
	Text      string     `bson:"text" json:"text"`
	Category  string     `bson:"category" json:"category"`
	Completed bool       `bson:"completed" json:"completed"`
	DueDate   *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
}

// TaskUpdate is a partial patch: nil pointers leave the stored field
// untouched. ClearDueDate removes the due date and wins over DueDate.
type TaskUpdate struct {
	Text         *string
	Completed    *bool
	Category     *string
	DueDate      *time.Time
	ClearDueDate bool
}

// IsEmpty reports whether the patch would change nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Text == nil && u.Completed == nil && u.Category == nil &&
		u.DueDate == nil && !u.ClearDueDate
}
