package handlers

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/CAFxX/httpcompression"

	"pokeplot/web"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	renderer Renderer
	handler  http.Handler
}

func NewServer(renderer Renderer) (*Server, error) {
	s := &Server{
		renderer: renderer,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", s.IndexHandler)
	mux.Handle("/static/", http.FileServer(http.FS(web.Static)))

	for path, rendererHandler := range renderer.Handlers() {
		mux.HandleFunc(path, rendererHandler)
	}

	// SSE responses stream, only whole documents are worth compressing.
	compress, err := httpcompression.DefaultAdapter(httpcompression.ContentTypes([]string{
		"text/html",
		"text/css",
		"text/javascript",
		"image/svg+xml",
	}, false))
	if err != nil {
		return nil, err
	}
	s.handler = compress(mux)

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("listening on %s …", addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// IndexHandler is the main entrypoint for the UI
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.renderer.Err(); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := s.renderer.Templates().ExecuteTemplate(w, "error", err.Error()); err != nil {
			log.Printf("couldn't execute template for error %s", err)
		}
		return
	}

	clientID := getClientID(w, r)
	var buf bytes.Buffer
	err := s.renderer.Templates().ExecuteTemplate(&buf, "index", s.renderer.Data(clientID))
	if err != nil {
		log.Printf("couldn't execute template for index %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
