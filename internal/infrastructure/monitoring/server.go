package monitoring

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serveur HTTP annexe exposant /health et /metrics.
type Server struct {
	srv *http.Server
}

// NewServer construit le serveur.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{srv: &http.Server{Addr: addr, Handler: mux}}
}

// Start bloque sur l'écoute.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown arrête proprement le serveur.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
