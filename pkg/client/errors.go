package client

// Operation names used in OperationError.Op.
const (
	opFetch  = "fetch"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// messages holds the fixed, operation-specific error messages. The server's
// own error text is never surfaced through the client.
var messages = map[string]string{
	opFetch:  "failed to fetch todos",
	opCreate: "failed to create todo",
	opUpdate: "failed to update todo",
	opDelete: "failed to delete todo",
}

// OperationError reports a failed API operation. Status is the HTTP status
// received, or 0 when the request never produced a response.
type OperationError struct {
	Op      string
	Message string
	Status  int
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
