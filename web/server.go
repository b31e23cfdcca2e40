package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/abhishekarun2901/tsl/controller"
	"github.com/unrolled/render"
)

type Config struct {
	Port        int
	AdminSecret string
	// CORSOrigins lists the origins allowed to call the API. Empty means any
	// origin, which suits a public read API fronted by a separate SPA.
	CORSOrigins []string
}

type Server struct {
	server *http.Server
}

func NewServer(cfg Config, ctrl controller.C) (*Server, error) {
	if cfg.AdminSecret == "" {
		return nil, fmt.Errorf("an admin secret must be configured")
	}

	render := render.New()
	router := getRouter(cfg, ctrl, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}
