package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/utils"
	"github.com/MKhiriev/docrelay/models"
	"github.com/go-chi/chi/v5"
)

// maxProfileImageSize caps the accepted profile image payload.
const maxProfileImageSize = 5 << 20 // 5 MiB

// allowedImageTypes is the exhaustive set of MIME types accepted for profile
// images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
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

	r.Body = http.MaxBytesReader(w, r.Body, maxProfileImageSize)
	if err := r.ParseMultipartForm(maxProfileImageSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Err(err).Msg("profile image exceeds size limit")
			utils.WriteJSON(w, models.Fail("profile image must not exceed 5 MiB", nil), http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("failed to parse multipart form")
		utils.WriteJSON(w, models.Fail("request must be multipart/form-data with an `image` field", nil), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Err(err).Msg("no image in multipart form")
		utils.WriteJSON(w, models.Fail("request must carry an `image` field", nil), http.StatusBadRequest)
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("failed to read uploaded image")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError), nil), http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(payload)
	}
	if !allowedImageTypes[contentType] {
		log.Error().Str("contentType", contentType).Str("filename", header.Filename).Msg("unsupported image type")
		utils.WriteJSON(w, models.Fail("only JPEG and PNG images are accepted", nil), http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.UpsertProfileImage(ctx, authUserID, models.Profile{
		UserID:      userID,
		Image:       payload,
		ContentType: contentType,
	})
	if err != nil {
		sentinel, status := classifyError(err)
		log.Err(err).Int64("userID", userID).Msg("profile image upload failed")
		utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
		return
	}

	log.Debug().Int64("profileID", profile.ProfileID).Msg("profile image saved")

	utils.WriteJSON(w, models.OK("profile image saved", profile), http.StatusOK)
}

func (h *Handler) getProfileImage(w http.ResponseWriter, r *http.Request) {
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

	profile, err := h.services.ProfileService.GetProfileImage(ctx, authUserID, userID)
	if err != nil {
		sentinel, status := classifyError(err)
		log.Err(err).Int64("userID", userID).Msg("profile image lookup failed")
		utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
		return
	}

	// The stored blob is served as-is with the content type recorded at
	// upload time.
	w.Header().Set("Content-Type", profile.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(profile.Image); err != nil {
		log.Err(err).Msg("failed to write profile image response")
	}
}
