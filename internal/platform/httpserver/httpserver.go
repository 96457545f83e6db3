package httpserver

import (
	"net/http"
	"time"
)

// New builds the API server. Write timeout exceeds the 30s middleware
// timeout so the router's timed-out JSON response still reaches the client;
// the idle timeout keeps dashboard keep-alive connections from pooling up.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
