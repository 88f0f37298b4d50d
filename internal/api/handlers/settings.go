package handlers

import (
	"dhl-location-service/internal/api/dto"
	"dhl-location-service/internal/domain"
	"dhl-location-service/internal/logger"
	"dhl-location-service/internal/ports"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// SettingsHandler exposes the DHL API settings to administrators.
type SettingsHandler struct {
	Store ports.SettingsStore
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Store.GetSettings(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("get settings failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SettingsResponse{
		APIEndpoint: s.APIEndpoint,
		APIKeyID:    s.APIKeyID,
	})
}

// Put validates and stores new settings. A blank endpoint selects the public
// DHL API.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req dto.SettingsRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.APIEndpoint == "" {
		req.APIEndpoint = domain.DefaultAPIEndpoint
	}

	s, err := domain.Settings{APIEndpoint: req.APIEndpoint, APIKeyID: req.APIKeyID}.Normalize()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.SaveSettings(r.Context(), s); err != nil {
		logger.FromContext(r.Context()).Error("save settings failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	logger.FromContext(r.Context()).Info("settings updated",
		zap.String("api_endpoint", s.APIEndpoint),
		zap.String("api_key_id", s.APIKeyID),
	)
	writeJSON(w, r, http.StatusOK, dto.SettingsResponse{
		APIEndpoint: s.APIEndpoint,
		APIKeyID:    s.APIKeyID,
	})
}
