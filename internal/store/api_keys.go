package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// APIKey is a stored service credential. Only the hash of the key material
// is persisted.
type APIKey struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	KeyHash   string  `json:"-"`
	CreatedAt string  `json:"created_at"`
	RevokedAt *string `json:"revoked_at,omitempty"`
}

// HashAPIKey returns a stable SHA-256 hex digest for the provided key.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(key)))
	return hex.EncodeToString(sum[:])
}

// InsertAPIKey stores a hashed API key. KeyHash must already contain the
// hashed value.
func (s Store) InsertAPIKey(ctx context.Context, key APIKey) error {
	if key.ID == "" {
		return errors.New("id required")
	}
	if key.KeyHash == "" {
		return errors.New("key_hash required")
	}
	if key.CreatedAt == "" {
		key.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO api_keys(id, name, key_hash, created_at, revoked_at) VALUES (?,?,?,?,NULL)`,
		key.ID, key.Name, key.KeyHash, key.CreatedAt)
	return err
}

// GetAPIKeyByHash returns an active API key by its hashed value.
func (s Store) GetAPIKeyByHash(ctx context.Context, hash string) (APIKey, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT id, name, key_hash, created_at, revoked_at FROM api_keys WHERE key_hash=? AND revoked_at IS NULL LIMIT 1`, hash)
	var key APIKey
	var revoked sql.NullString
	err := row.Scan(&key.ID, &key.Name, &key.KeyHash, &key.CreatedAt, &revoked)
	if err == sql.ErrNoRows {
		return APIKey{}, ErrNotFound
	}
	if err != nil {
		return APIKey{}, err
	}
	if revoked.Valid {
		key.RevokedAt = &revoked.String
	}
	return key, nil
}

// ListAPIKeys returns all API keys, newest first.
func (s Store) ListAPIKeys(ctx context.Context) ([]APIKey, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, key_hash, created_at, revoked_at FROM api_keys ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var keys []APIKey
	for rows.Next() {
		var key APIKey
		var revoked sql.NullString
		if err := rows.Scan(&key.ID, &key.Name, &key.KeyHash, &key.CreatedAt, &revoked); err != nil {
			return nil, err
		}
		if revoked.Valid {
			key.RevokedAt = &revoked.String
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// RevokeAPIKey marks an API key revoked by ID.
func (s Store) RevokeAPIKey(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("id required")
	}
	res, err := s.DB.ExecContext(ctx,
		`UPDATE api_keys SET revoked_at=? WHERE id=? AND revoked_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
