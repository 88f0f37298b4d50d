package dto

import "dhl-location-service/internal/domain"

type ListLocationsResponse struct {
	Locations []domain.Location `json:"locations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
