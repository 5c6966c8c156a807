package models

// SignUpRequest is the typed request body of POST /api/v1/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the typed request body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DocumentUploadRequest carries the validated inputs of
// POST /api/v1/document/upload after the multipart form and the query string
// have been parsed at the pipeline boundary.
type DocumentUploadRequest struct {
	// UserID is the numeric owner id parsed from the userId query parameter.
	UserID int64

	// Username is the owner's display name (falling back to the email) and
	// is forwarded to the processing backend.
	Username string

	// Filename is the client-declared original file name.
	Filename string

	// Filetype is the client-declared MIME type of the uploaded file.
	Filetype string

	// File is the raw file content buffered in memory.
	File []byte
}
