package common

import (
	"encoding/json"
	"net/http"

	"playbook-backend/pkg/errors"
)

// APIResponse represents a standard API response envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RespondJSON sends a JSON response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// RespondError sends an error response.
func RespondError(w http.ResponseWriter, status int, code, message string) {
	response := APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// RespondDomainError translates a domain error into the API envelope,
// falling back to a generic 500 for unclassified errors.
func RespondDomainError(w http.ResponseWriter, err error) {
	if domainErr := errors.GetDomainError(err); domainErr != nil {
		response := APIResponse{
			Success: false,
			Error: &ErrorInfo{
				Code:    domainErr.Code,
				Message: domainErr.Message,
				Details: domainErr.Details,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(domainErr.StatusCode)
		json.NewEncoder(w).Encode(response)
		return
	}

	RespondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
}

// ParseJSONBody parses a JSON request body with a size limit. Unknown
// fields are ignored; graph payloads from editors carry extra display
// state that the API has no use for.
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
