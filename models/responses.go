package models

// SubmitResponse is returned by POST /api/data when the formatted message
// reached the bot API.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Partial is set when the text was delivered but the attached photo was not.
	Partial bool `json:"partial,omitempty"`

	// PhotoError explains why the photo was not delivered.
	PhotoError string `json:"photo_error,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`

	// Details is either a human-readable string or a structured object, such
	// as the map of missing fields.
	Details any `json:"details,omitempty"`
}

// HealthResponse is returned by the readiness endpoints.
type HealthResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
}
