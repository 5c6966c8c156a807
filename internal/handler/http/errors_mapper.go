package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/docrelay/internal/service"
	"github.com/MKhiriev/docrelay/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrOwnershipViolation:      http.StatusForbidden,
	service.ErrRelayFailed:             http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrDocumentNotFound:   http.StatusNotFound,
	store.ErrProfileNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// classifyError resolves err against the known sentinel values and returns the
// matched sentinel together with its HTTP status. Unknown errors map to a
// generic 500 so that internal details never leak into API responses.
func classifyError(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return errors.New(http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError
}
