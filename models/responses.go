package models

import "time"

// Response is the uniform JSON envelope of every API response.
//
// Success responses carry `{"success":true,"message":...,"data":...}`;
// failures carry `{"success":false,"message":...,"details":...}` where
// Details itemizes field-level violations when available.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Details any    `json:"details,omitempty"`
}

// OK builds a success envelope with the given message and payload.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope with the given message and optional details.
func Fail(message string, details any) Response {
	return Response{Success: false, Message: message, Details: details}
}

// FieldViolation describes a single failed validation rule on one field.
// Validators collect every violation instead of stopping at the first one.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PublicUser is the caller-visible projection of a [User]. It deliberately
// has no field for the password hash, so the hash cannot leak through
// serialization.
type PublicUser struct {
	UserID    int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUserFrom projects a full [User] record onto its public shape.
func PublicUserFrom(u User) PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// LoginResponse is the data payload of a successful login: the signed token
// plus the public projection of the authenticated user.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
