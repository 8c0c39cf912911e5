package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "promatch/pkg/errors"
)

func respondJSON(logger *zap.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func respondError(logger *zap.Logger, w http.ResponseWriter, status int, code, message string) {
	respondJSON(logger, w, status, map[string]interface{}{
		"error":   true,
		"code":    code,
		"message": message,
	})
}

// respondAppError maps a service error onto an HTTP response. Collaborator
// and internal failures get a generic message so upstream details never leak
// to clients; the full error is logged instead.
func respondAppError(logger *zap.Logger, w http.ResponseWriter, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		logger.Error("Unhandled error", zap.Error(err))
		respondError(logger, w, http.StatusInternalServerError, string(apperrors.ErrorTypeInternal), "Internal server error")
		return
	}

	message := appErr.Message
	switch appErr.Type {
	case apperrors.ErrorTypeCollaborator:
		logger.Error("Collaborator call failed", zap.String("code", appErr.Code), zap.Error(appErr))
		message = "An upstream service failed to process the request"
	case apperrors.ErrorTypeInternal:
		logger.Error("Internal error", zap.Error(appErr))
		message = "Internal server error"
	}

	respondError(logger, w, appErr.HTTPStatus, string(appErr.Type), message)
}
