// Package adapter provides transport-layer abstractions for communicating with
// the external document processing backend.
//
// The primary abstraction is [DocumentRelay], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPDocumentRelay]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/docrelay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_relay_mock.go -package=mock

// DocumentRelay defines transport-agnostic communication with the document
// processing backend. Implementations are responsible for serialisation and
// mapping transport-level errors to the sentinel values defined in this
// package.
type DocumentRelay interface {
	// ForwardDocument streams the uploaded file to the processing backend and
	// returns the filename assigned by the backend. The backend stores the
	// file under that name; the caller persists it as the document record.
	// Returns an error if the request fails, the backend responds with a
	// non-2xx status, or the response does not carry an assigned filename.
	ForwardDocument(ctx context.Context, req models.DocumentUploadRequest) (string, error)
}
