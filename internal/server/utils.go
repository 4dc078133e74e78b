package server

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "realty-catalog/internal/common/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	var stdErr *apperrors.StandardError
	if errors.As(err, &stdErr) {
		respondJSON(w, apperrors.HTTPStatus(stdErr.Code), errorResponse{
			Error: errorBody{Code: string(stdErr.Code), Message: stdErr.Message},
		})
		return
	}
	respondJSON(w, http.StatusInternalServerError, errorResponse{
		Error: errorBody{Code: string(apperrors.ErrCodeInternal), Message: "internal error"},
	})
}
