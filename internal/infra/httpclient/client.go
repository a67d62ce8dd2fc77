package httpclient

import (
	"net/http"
	"time"
)

// New builds a plain HTTP client. A zero timeout means no client-side
// deadline; callers that need one pass a context instead.
func New(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
