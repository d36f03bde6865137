package utils

import (
	"encoding/json"
	"net/http"
)

// Detail messages shared by handlers and middleware.
const (
	DetailNotFound         = "Not found."
	DetailInvalidPage      = "Invalid page."
	DetailNotAuthenticated = "Authentication credentials were not provided."
	DetailTokenNotValid    = "Given token not valid for any token type"
	DetailUserNotFound     = "User not found"
	DetailUserInactive     = "User is inactive"
	DetailPermissionDenied = "You do not have permission to perform this action."
	DetailNoActiveAccount  = "No active account found with the given credentials"
	DetailServerError      = "A server error occurred."
	DetailThrottled        = "Request was throttled."
)

// DetailResponse is the body of every non-validation error.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ResponseJSON writes body as JSON with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request with the field keyed messages
func ResponseValidation(w http.ResponseWriter, errors FieldErrors) {
	ResponseJSON(w, http.StatusBadRequest, errors.Render())
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusBadRequest, DetailResponse{Detail: detail})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	ResponseJSON(w, http.StatusUnauthorized, DetailResponse{Detail: detail})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusForbidden, DetailResponse{Detail: detail})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusNotFound, DetailResponse{Detail: detail})
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, detail string) {
	ResponseJSON(w, http.StatusTooManyRequests, DetailResponse{Detail: detail})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusInternalServerError, DetailResponse{Detail: DetailServerError})
}
