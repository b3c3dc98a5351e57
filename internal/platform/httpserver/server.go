package httpserver

import (
	"net/http"
	"time"
)

// New builds an http.Server with conservative timeouts. Lookups are bounded
// and non-blocking, so nothing here should ever approach these limits; they
// exist to contain slow or stuck clients.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
