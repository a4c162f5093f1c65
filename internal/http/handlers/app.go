package handlers

import (
	"encoding/json"
	"io"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"heritage-server/internal/audit"
	"heritage-server/internal/domain"
	"heritage-server/internal/enrich"
	"heritage-server/internal/lookup"
	"heritage-server/internal/middleware"
	"heritage-server/internal/schema"
)

const maxBodyBytes = 1 << 20

// App carries the wired collaborators every route handler needs.
type App struct {
	Proxy    *lookup.Proxy
	Enricher *enrich.Enricher
	Audit    *audit.Store
	Log      zerolog.Logger
}

func NewApp(proxy *lookup.Proxy, enricher *enrich.Enricher, auditStore *audit.Store, log zerolog.Logger) *App {
	return &App{Proxy: proxy, Enricher: enricher, Audit: auditStore, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}

func (a *App) lookupError(w http.ResponseWriter, lerr *domain.LookupError) {
	a.error(w, lerr.HTTPStatus(), lerr.Message)
}

// readRequest reads and schema-validates the body, then decodes it into dst.
// Validation happens before any upstream call; a failure here is final.
func readRequest(r *http.Request, s *schema.Schema, dst any) *domain.LookupError {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return domain.NewValidationError("Validation failed: unreadable request body")
	}
	if lerr := s.Validate(body); lerr != nil {
		return lerr
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return domain.NewValidationError("Validation failed: request body must be a JSON object")
	}
	return nil
}

// record persists an audit row for authenticated callers. Anonymous calls
// and persistence failures are silently skipped.
func (a *App) record(r *http.Request, kind string, input, output any) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		return
	}
	a.Audit.Record(r.Context(), userID, kind, clientIP(r), input, output)
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
