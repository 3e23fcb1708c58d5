package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

const msgInvalidJSON = "Invalid JSON body"

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Success: false, Error: msg})
}

var errWrongType = errors.New("field has the wrong type")

// decodeBody reads a JSON request body into v. A body over the MaxBytes limit
// is answered with 413 here; other failures are returned for the caller to
// phrase. errWrongType marks a well-formed body whose fields have the wrong
// JSON type.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) (bool, error) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false, nil
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return false, errWrongType
		}
		return false, err
	}
	return true, nil
}
