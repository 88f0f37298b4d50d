package handlers

import (
	"context"
	"dhl-location-service/internal/api/dto"
	"dhl-location-service/internal/domain"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type memorySettings struct {
	s       domain.Settings
	saveErr error
}

func (m *memorySettings) GetSettings(context.Context) (domain.Settings, error) { return m.s, nil }

func (m *memorySettings) SaveSettings(_ context.Context, s domain.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.s = s
	return nil
}

func TestSettingsHandlerGet(t *testing.T) {
	h := &SettingsHandler{Store: &memorySettings{s: domain.Settings{APIEndpoint: "https://api.dhl.com", APIKeyID: "dhl_api"}}}

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/admin/settings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"api_endpoint":"https://api.dhl.com","api_key_id":"dhl_api"}`, rec.Body.String())
}

func TestSettingsHandlerPut(t *testing.T) {
	store := &memorySettings{}
	h := &SettingsHandler{Store: store}

	body := `{"api_endpoint":"https://api-sandbox.dhl.com/","api_key_id":"sandbox"}`
	rec := httptest.NewRecorder()
	h.Put(rec, httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.Settings{APIEndpoint: "https://api-sandbox.dhl.com", APIKeyID: "sandbox"}, store.s)

	var res dto.SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "https://api-sandbox.dhl.com", res.APIEndpoint)
}

func TestSettingsHandlerPutDefaultsEndpoint(t *testing.T) {
	store := &memorySettings{}
	h := &SettingsHandler{Store: store}

	rec := httptest.NewRecorder()
	h.Put(rec, httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(`{"api_key_id":"dhl_api"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.DefaultAPIEndpoint, store.s.APIEndpoint)
}

func TestSettingsHandlerPutRejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":  `{"api_key_id":"k","extra":1}`,
		"two objects":    `{"api_key_id":"k"}{"api_key_id":"k"}`,
		"invalid url":    `{"api_endpoint":"dhl","api_key_id":"k"}`,
		"missing key id": `{"api_endpoint":"https://api.dhl.com"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			store := &memorySettings{}
			h := &SettingsHandler{Store: store}

			rec := httptest.NewRecorder()
			h.Put(rec, httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(body)))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, domain.Settings{}, store.s)
		})
	}
}

func TestSettingsHandlerPutStoreError(t *testing.T) {
	h := &SettingsHandler{Store: &memorySettings{saveErr: errors.New("db down")}}

	rec := httptest.NewRecorder()
	h.Put(rec, httptest.NewRequest(http.MethodPut, "/admin/settings", strings.NewReader(`{"api_key_id":"k"}`)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
