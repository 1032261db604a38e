package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/sitetools/ops-core/svc"
)

const shutdownTimeout = 10 * time.Second

// Service - the HTTP server wrapped as a managed service. Stops when its
// context is cancelled or Stop is called.
type Service struct {
	Ctx    context.Context    // Service Context
	Cancel context.CancelFunc // Service Context CancelFunc
	Server *http.Server

	done chan error
}

var _ svc.Service = (*Service)(nil)

func NewService(parentCtx context.Context, addr string, router http.Handler) *Service {
	svcCtx, svcCancel := context.WithCancel(parentCtx)
	return &Service{
		Ctx:    svcCtx,
		Cancel: svcCancel,
		Server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		done: make(chan error, 1),
	}
}

func (s *Service) Name() string {
	return "web-server"
}

func (s *Service) Start() error {
	serverErr := make(chan error, 1)
	go func() {
		log.Printf("[INFO] web server listening on %s ...", s.Server.Addr)
		if err := s.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		} else {
			serverErr <- nil
		}
	}()
	go func() {
		select {
		case <-s.Ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := s.Server.Shutdown(shutdownCtx); err != nil {
				log.Printf("[ERROR] web server shutdown: %v", err)
			}
			s.done <- <-serverErr
		case err := <-serverErr:
			// server died on its own
			s.done <- err
		}
		log.Println("[INFO] web server stopped")
	}()
	return nil
}

func (s *Service) Stop() {
	s.Cancel()
}

func (s *Service) Done() <-chan error {
	return s.done
}
