package api

// MaskValueRequest is the request body for POST /api/v1/mask/value.
type MaskValueRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// MaskValueResponse is the response body for POST /api/v1/mask/value.
type MaskValueResponse struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Masked bool   `json:"masked"`
}

// StatusResponse describes the configured masking surface.
type StatusResponse struct {
	Enabled    bool `json:"enabled"`
	Fields     int  `json:"fields"`
	Strategies int  `json:"strategies"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
