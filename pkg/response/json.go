package response

import (
	"encoding/json"
	"net/http"
)

// ServerResponse is the standard response envelope.
// Data is nil on every error path and is always serialized, as null when absent.
type ServerResponse[T any] struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
	Data   *T     `json:"data"`
}

// Empty marks a successful response without a payload.
// It is present in Go but encodes as null on the wire.
type Empty struct{}

// MarshalJSON encodes Empty as null
func (Empty) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// New builds an envelope whose status mirrors the HTTP status code
func New[T any](status int, msg string, data *T) ServerResponse[T] {
	return ServerResponse[T]{
		Status: status,
		Msg:    msg,
		Data:   data,
	}
}

// JSON sends the envelope with the given status code
func JSON[T any](w http.ResponseWriter, status int, msg string, data *T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	json.NewEncoder(w).Encode(New(status, msg, data))
}

// Success sends a success envelope carrying data
func Success[T any](w http.ResponseWriter, status int, msg string, data T) {
	JSON(w, status, msg, &data)
}

// Accepted sends a success envelope with the empty payload marker
func Accepted(w http.ResponseWriter, msg string) {
	Success(w, http.StatusAccepted, msg, Empty{})
}

// Error sends an error envelope, data is always null
func Error(w http.ResponseWriter, status int, msg string) {
	JSON[Empty](w, status, msg, nil)
}

// Common error responses
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}

func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}

func Conflict(w http.ResponseWriter, msg string) {
	Error(w, http.StatusConflict, msg)
}

func InternalError(w http.ResponseWriter, msg string) {
	Error(w, http.StatusInternalServerError, msg)
}

func ServiceUnavailable(w http.ResponseWriter, msg string) {
	Error(w, http.StatusServiceUnavailable, msg)
}
