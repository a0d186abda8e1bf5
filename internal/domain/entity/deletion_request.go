package entity

// DeletionRequest asks for an account to be erased. The log is append-only;
// nothing is erased when the request is written.
type DeletionRequest struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}
