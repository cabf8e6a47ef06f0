package transport

import (
	"encoding/json"
	"net/http"

	"github.com/asklink/matching/model"
	"github.com/asklink/matching/utils/errors"
)

// writeSuccess encodes a response payload. Payload structs carry their own
// success flag so the envelope stays flat.
func writeSuccess(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError converts any error into the {success:false, error} envelope,
// using the CustomError HTTP mapping when available.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if ce, ok := err.(errors.CustomError); ok {
		code = ce.ErrorHTTPCode()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
