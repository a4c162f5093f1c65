// Package credentials stores upstream provider tokens in the database so a
// deployment can rotate the gateway key without restarting the service. The
// environment variable, when set, always wins (see cmd/api).
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"heritage-server/internal/infra"
	"heritage-server/internal/sqlinline"
)

const (
	ProviderGateway = "ai-gateway"
)

type Store struct {
	sql infra.SQLExecutor
}

func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{sql: sql}
}

// GatewayAPIKey returns the stored chat-gateway key, or "" when none is set.
func (s *Store) GatewayAPIKey(ctx context.Context) (string, error) {
	return s.Token(ctx, ProviderGateway)
}

func (s *Store) Token(ctx context.Context, provider string) (string, error) {
	row := s.sql.QueryRow(ctx, sqlinline.QSelectIntegrationToken, provider)
	var token string
	if err := row.Scan(&token); err != nil {
		if infra.IsNoRows(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(token), nil
}

func (s *Store) SetGatewayAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("gateway api key is required")
	}
	return s.upsert(ctx, ProviderGateway, key, nil)
}

func (s *Store) upsert(ctx context.Context, provider, token string, props map[string]any) error {
	payload := props
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = s.sql.Exec(ctx, sqlinline.QUpsertIntegrationToken, provider, token, raw)
	return err
}
