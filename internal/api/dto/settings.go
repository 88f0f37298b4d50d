package dto

type SettingsRequest struct {
	APIEndpoint string `json:"api_endpoint"`
	APIKeyID    string `json:"api_key_id"`
}

type SettingsResponse struct {
	APIEndpoint string `json:"api_endpoint"`
	APIKeyID    string `json:"api_key_id"`
}
