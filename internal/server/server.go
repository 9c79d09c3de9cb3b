// Package server provides the HTTP REST API for the resume renderer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/render/templates"
	"github.com/jonathan/resume-renderer/internal/sections"
	"github.com/jonathan/resume-renderer/internal/server/ratelimit"
	"github.com/jonathan/resume-renderer/internal/store"
	"github.com/jonathan/resume-renderer/internal/types"
)

// ResumeSource is the persistence surface the handlers need. *store.Store
// satisfies it; tests substitute an in-memory fake.
type ResumeSource interface {
	GetResume(ctx context.Context, id uuid.UUID) (*store.Resume, error)
	CreateResume(ctx context.Context, title string, content *types.ResumeData) (uuid.UUID, error)
	SaveResume(ctx context.Context, id uuid.UUID, title string, content *types.ResumeData) error
	ListResumes(ctx context.Context, limit int) ([]store.ResumeSummary, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       *store.Store
	source      ResumeSource
	registry    *render.Registry
	rateLimiter *ratelimit.Limiter

	defaultTemplate string
	defaultEngine   string
	chromePath      string

	policyMu sync.Mutex
	policy   *sections.Policy
}

// Config holds server configuration
type Config struct {
	Port            int
	DatabaseURL     string
	DefaultTemplate string
	DefaultEngine   string
	ChromePath      string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s := newServer(cfg, database)
	s.store = database
	return s, nil
}

// newServer wires everything except the database connection so tests can
// inject a fake source.
func newServer(cfg Config, source ResumeSource) *Server {
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = "ats"
	}
	if cfg.DefaultEngine == "" {
		cfg.DefaultEngine = "pdf"
	}

	s := &Server{
		source:          source,
		registry:        templates.DefaultRegistry(),
		rateLimiter:     ratelimit.NewLimiter(ratelimit.LoadConfig()),
		defaultTemplate: cfg.DefaultTemplate,
		defaultEngine:   cfg.DefaultEngine,
		chromePath:      cfg.ChromePath,
		policy:          sections.Default(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/templates", s.handleListTemplates)

	mux.HandleFunc("POST /api/resumes", s.handleCreateResume)
	mux.HandleFunc("GET /api/resumes", s.handleListResumes)
	mux.HandleFunc("GET /api/resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /api/resumes/{id}", s.handleUpdateResume)
	mux.HandleFunc("DELETE /api/resumes/{id}", s.handleDeleteResume)

	mux.HandleFunc("GET /api/resumes/{id}/preview", s.handlePreview)
	mux.HandleFunc("GET /api/resumes/{id}/export", s.handleExport)
	mux.HandleFunc("GET /api/resumes/{id}/parity", s.handleParity)

	mux.HandleFunc("GET /api/sections", s.handleGetSections)
	mux.HandleFunc("POST /api/sections", s.handleUpdateSections)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Chrome exports can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.store != nil {
		s.store.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr. It could use the
// X-Forwarded-For header in the future (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit
// information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
