package model

// HTTPSuccess is the message-only body returned by operations that
// produce no domain record, e.g. deleting a group.
type HTTPSuccess struct {
	Status  int
	Message string
}
