package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/docrelay/internal/logger"
	"github.com/MKhiriev/docrelay/internal/service"
	"github.com/MKhiriev/docrelay/internal/utils"
	"github.com/MKhiriev/docrelay/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("Invalid JSON was passed", nil), http.StatusBadRequest)
		return
	}

	if violations := h.validator.Validate(ctx, request); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("signup request failed validation")
		utils.WriteJSON(w, models.Fail("validation failed", violations), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.SignUp(ctx, request)
	if err != nil {
		sentinel, status := classifyError(err)
		log.Err(err).Msg("user registration failed")
		utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError), nil), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	utils.WriteJSON(w, models.OK("user registered", models.LoginResponse{
		Token: token.SignedString,
		User:  models.PublicUserFrom(registeredUser),
	}), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("Invalid JSON was passed", nil), http.StatusBadRequest)
		return
	}

	if violations := h.validator.Validate(ctx, request); len(violations) > 0 {
		log.Error().Any("violations", violations).Msg("login request failed validation")
		utils.WriteJSON(w, models.Fail("validation failed", violations), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		sentinel, status := classifyError(err)
		log.Err(err).Msg("user login failed")
		utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError), nil), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.OK("login successful", models.LoginResponse{
		Token: token.SignedString,
		User:  models.PublicUserFrom(foundUser),
	}), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authUserID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusUnauthorized), nil), http.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid user id in path")
		utils.WriteJSON(w, models.Fail("user id must be a number", nil), http.StatusBadRequest)
		return
	}

	if userID != authUserID {
		log.Error().Int64("authUserID", authUserID).Int64("userID", userID).Msg("user lookup attempted for another user")
		utils.WriteJSON(w, models.Fail(service.ErrOwnershipViolation.Error(), nil), http.StatusForbidden)
		return
	}

	user, err := h.services.AuthService.GetUserByID(ctx, userID)
	if err != nil {
		sentinel, status := classifyError(err)
		log.Err(err).Int64("userID", userID).Msg("user lookup failed")
		utils.WriteJSON(w, models.Fail(sentinel.Error(), nil), status)
		return
	}

	utils.WriteJSON(w, models.OK("user found", models.PublicUserFrom(user)), http.StatusOK)
}
