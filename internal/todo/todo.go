// Package todo defines the todo record model and the validation rules
// applied to client-supplied input before it reaches the store.
package todo

// Record represents one persisted todo item.
type Record struct {
	ID        int64  `db:"id" json:"id"`
	Text      string `db:"text" json:"text"`
	Completed bool   `db:"completed" json:"completed"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}
