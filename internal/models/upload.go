package models

// UploadedFile carries the metadata of one uploaded deck. The file bytes
// themselves are never read; analysis works from metadata alone.
type UploadedFile struct {
	Name      string `json:"name"`
	MimeType  string `json:"mime_type"`
	SizeBytes int64  `json:"size_bytes"`
}

// Rejection codes returned by the analyze endpoint.
const (
	CodeAPIKeyMissing   = "API_KEY_MISSING"
	CodeNoFile          = "NO_FILE"
	CodeInvalidFileType = "INVALID_FILE_TYPE"
	CodeFileTooLarge    = "FILE_TOO_LARGE"
)

// ValidationError is a rejection with a stable code and the HTTP status
// the handler should respond with.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrorResponse is the single error body shape the API returns.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
