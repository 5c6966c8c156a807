package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/utils"
	"github.com/MKhiriev/docrelay/models"
	"github.com/go-chi/chi/v5"
)

// maxDocumentSize caps the multipart form memory for document uploads.
const maxDocumentSize = 32 << 20 // 32 MiB

// allowedDocumentTypes is the exhaustive set of MIME types accepted for
// document uploads. The processing backend only understands PDF and DOCX.
var allowedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUserID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusUnauthorized), nil), http.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil {
		log.Err(err).Str("userId", r.URL.Query().Get("userId")).Msg("invalid user id in query")
		utils.WriteJSON(w, models.Fail("userId must be a number", nil), http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		log.Err(err).Msg("failed to parse multipart form")
		utils.WriteJSON(w, models.Fail("request must be multipart/form-data with a `file` field", nil), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("no file in multipart form")
		utils.WriteJSON(w, models.Fail("request must carry a `file` field", nil), http.StatusBadRequest)
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("failed to read uploaded file")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError), nil), http.StatusInternalServerError)
		return
	}

	filetype := header.Header.Get("Content-Type")
	if filetype == "" {
		filetype = http.DetectContentType(payload)
	}
	if !allowedDocumentTypes[filetype] {
		log.Error().Str("filetype", filetype).Str("filename", header.Filename).Msg("unsupported document type")
		utils.WriteJSON(w, models.Fail("only PDF and DOCX documents are accepted", nil), http.StatusBadRequest)
		return
	}

	// The processing backend wants a display name for the owner alongside the
	// file. Callers may pass it as a query parameter; otherwise it is resolved
	// from the account record, falling back to the email when no name was set
	// at signup.
	username := r.URL.Query().Get("username")
	if username == "" {
		user, err := h.services.AuthService.GetUserByID(ctx, authUserID)
		if err != nil {
			sentinel, status := classifyError(err)
			log.Err(err).Int64("userID", authUserID).Msg("owner lookup failed")
			utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
			return
		}
		username = user.Name
		if username == "" {
			username = user.Email
		}
	}

	document, err := h.services.DocumentService.UploadDocument(ctx, authUserID, models.DocumentUploadRequest{
		UserID:   userID,
		Username: username,
		Filename: header.Filename,
		Filetype: filetype,
		File:     payload,
	})
	if err != nil {
		sentinel, status := classifyError(err)
		log.Err(err).Str("filename", header.Filename).Msg("document upload failed")
		utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
		return
	}

	log.Debug().Int64("documentID", document.DocumentID).Str("filename", document.Filename).Msg("document uploaded")

	utils.WriteJSON(w, models.OK("document uploaded", document), http.StatusCreated)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUserID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusUnauthorized), nil), http.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		log.Err(err).Str("userId", chi.URLParam(r, "userId")).Msg("invalid user id in path")
		utils.WriteJSON(w, models.Fail("user id must be a number", nil), http.StatusBadRequest)
		return
	}

	documents, err := h.services.DocumentService.GetUserDocuments(ctx, authUserID, userID)
	if err != nil {
		sentinel, status := classifyError(err)
		log.Err(err).Int64("userID", userID).Msg("document listing failed")
		utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
		return
	}

	utils.WriteJSON(w, models.OK("documents found", documents), http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUserID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusUnauthorized), nil), http.StatusUnauthorized)
		return
	}

	documentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid document id in path")
		utils.WriteJSON(w, models.Fail("document id must be a number", nil), http.StatusBadRequest)
		return
	}

	document, err := h.services.DocumentService.GetDocument(ctx, authUserID, documentID)
	if err != nil {
		sentinel, status := classifyError(err)
		log.Err(err).Int64("documentID", documentID).Msg("document lookup failed")
		utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
		return
	}

	utils.WriteJSON(w, models.OK("document found", document), http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUserID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusUnauthorized), nil), http.StatusUnauthorized)
		return
	}

	documentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid document id in path")
		utils.WriteJSON(w, models.Fail("document id must be a number", nil), http.StatusBadRequest)
		return
	}

	deleted, err := h.services.DocumentService.DeleteDocument(ctx, authUserID, documentID)
	if err != nil {
		sentinel, status := classifyError(err)
		log.Err(err).Int64("documentID", documentID).Msg("document deletion failed")
		utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
		return
	}

	log.Debug().Int64("documentID", deleted.DocumentID).Msg("document deleted")

	utils.WriteJSON(w, models.OK("document deleted", deleted), http.StatusOK)
}
