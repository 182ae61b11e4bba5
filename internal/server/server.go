package server

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/TheoAcker12/weekly-scheduler/internal/config"
)

// NewHTTPHandler returns the API with its middleware applied.
func NewHTTPHandler(cfg config.ServerConfig, service WeeklyService) http.Handler {
	return Chain(NewHandler(service).Routes(),
		RequestID,
		Recovery,
		RequestLogging,
		CORS(cfg.CORS),
	)
}

// New returns an HTTP server for the API that also accepts HTTP/2 without TLS.
func New(cfg config.ServerConfig, service WeeklyService) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(NewHTTPHandler(cfg, service), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
