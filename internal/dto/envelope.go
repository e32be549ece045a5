package dto

// Envelope status values shared by every public endpoint.
const (
	StatusOK       = "ok"
	StatusNotFound = "not found"
	StatusError    = "error"
)

// dateFormat is used for every date emitted by the public endpoints.
const dateFormat = "2006-01-02"

// ErrorResponse is the envelope returned for any failed request.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
