package models

import "time"

// Document represents a single uploaded document record. The file contents
// themselves live in the external processing backend; only the metadata the
// backend returned is persisted here.
type Document struct {
	// DocumentID is the internal unique identifier of the document record.
	DocumentID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"user_id"`

	// Filename is the name assigned by the processing backend when the file
	// was relayed. It is never taken from client input, which rules out
	// client-controlled path or name injection.
	Filename string `json:"filename"`

	// Filetype is the MIME type the client declared for the uploaded file.
	Filetype string `json:"filetype"`

	// UploadedAt is the timestamp when the document record was created.
	UploadedAt time.Time `json:"uploaded_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}
