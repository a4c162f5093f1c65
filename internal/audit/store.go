// Package audit persists one row per completed lookup, keyed by the calling
// user. Writes are best-effort: a failed insert is logged and discarded and
// never affects the response already computed.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"heritage-server/internal/infra"
	"heritage-server/internal/infra/geoip"
	"heritage-server/internal/sqlinline"
)

// Store appends and reads lookup audit rows. A nil *Store is valid and turns
// every method into a no-op, so handlers call it unconditionally.
type Store struct {
	sql infra.SQLExecutor
	geo geoip.CountryResolver
	log zerolog.Logger
}

func NewStore(sql infra.SQLExecutor, geo geoip.CountryResolver, log zerolog.Logger) *Store {
	return &Store{sql: sql, geo: geo, log: log}
}

// Record appends one audit row. The client country is resolved best-effort
// from the request IP when a GeoIP database is configured.
func (s *Store) Record(ctx context.Context, userID, kind, ip string, input, output any) {
	if s == nil || s.sql == nil || userID == "" {
		return
	}
	inputJSON, err := json.Marshal(input)
	if err != nil {
		s.log.Debug().Err(err).Str("kind", kind).Msg("audit: marshal input")
		return
	}
	outputJSON, err := json.Marshal(output)
	if err != nil {
		s.log.Debug().Err(err).Str("kind", kind).Msg("audit: marshal output")
		return
	}
	country := ""
	if s.geo != nil && ip != "" {
		if code, err := s.geo.CountryCode(ip); err == nil {
			country = code
		}
	}
	if _, err := s.sql.Exec(ctx, sqlinline.QInsertLookupEvent, userID, kind, inputJSON, outputJSON, country); err != nil {
		s.log.Debug().Err(err).Str("kind", kind).Msg("audit: insert failed")
	}
}

// Entry is one persisted lookup, newest first in History results.
type Entry struct {
	Kind      string          `json:"kind"`
	Input     json.RawMessage `json:"input"`
	Output    json.RawMessage `json:"output"`
	CreatedAt time.Time       `json:"createdAt"`
}

// History returns the user's most recent lookups.
func (s *Store) History(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if s == nil || s.sql == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.sql.Query(ctx, sqlinline.QSelectLookupHistory, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Kind, &e.Input, &e.Output, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
