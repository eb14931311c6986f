package middleware

import (
	"net/http"
)

// mutatingMethods are the HTTP methods that require an API key when
// write protection is enabled.
var mutatingMethods = map[string]struct{}{
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// WriteProtectAuth returns a middleware that requires a valid X-API-KEY
// header on mutating requests. With no keys configured, all requests
// pass through.
func WriteProtectAuth(apiKeys []string) func(http.Handler) http.Handler {
	keys := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys[k] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(keys) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			if _, mutating := mutatingMethods[r.Method]; !mutating {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("X-API-KEY")
			if apiKey == "" {
				unauthorized(w, "X-API-KEY header is required")
				return
			}
			if _, ok := keys[apiKey]; !ok {
				unauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, detail string) {
	WriteJSON(w, http.StatusUnauthorized, APIErrorResponse{
		Errors: []APIError{
			{
				Status: http.StatusText(http.StatusUnauthorized),
				Title:  "Unauthorized",
				Detail: detail,
			},
		},
	})
}
