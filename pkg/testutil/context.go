package testutil

import (
	"net/http"

	"cookbook/pkg/requestcontext"
)

// WithRequestID attaches a request ID to req the way the RequestID middleware
// does, for handler tests that bypass the router.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
