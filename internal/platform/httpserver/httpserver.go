package httpserver

import (
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	idleTimeout       = 120 * time.Second
	minWriteTimeout   = 30 * time.Second
	writeSlack        = 5 * time.Second
)

// New builds the HTTP server. handlerTimeout is the longest a handler may
// run; the write timeout stays above it so a slow scan can still answer.
func New(addr string, handler http.Handler, handlerTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout(handlerTimeout),
		IdleTimeout:       idleTimeout,
	}
}

func writeTimeout(handlerTimeout time.Duration) time.Duration {
	return max(handlerTimeout+writeSlack, minWriteTimeout)
}
