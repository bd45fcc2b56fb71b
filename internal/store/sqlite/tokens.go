package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/muralinkl/stocks-option-screener/internal/model"
)

// SaveCredential replaces the stored credential record. Exactly one record
// exists at a time; saving retires any previous one in the same transaction.
func (s *Store) SaveCredential(ctx context.Context, cred model.Credential) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite begin: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM api_tokens`); err != nil {
		tx.Rollback()
		return fmt.Errorf("sqlite retire tokens: %w", err)
	}

	var expiresAt any
	if cred.HasExpiry() {
		expiresAt = cred.ExpiresAt.Unix()
	}
	issued := cred.IssuedAt
	if issued.IsZero() {
		issued = time.Now()
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO api_tokens (access_token, refresh_token, expires_at, created_at)
		VALUES (?, ?, ?, ?)
	`, cred.AccessToken, nullable(cred.RefreshToken), expiresAt, issued.Unix())
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("sqlite save token: %w", err)
	}
	return tx.Commit()
}

// LoadCredential returns the current credential record. ok is false when no
// record has ever been saved.
func (s *Store) LoadCredential(ctx context.Context) (cred model.Credential, ok bool, err error) {
	var refresh sql.NullString
	var expiresAt sql.NullInt64
	var createdAt int64
	err = s.db.QueryRowContext(ctx, `
		SELECT access_token, refresh_token, expires_at, created_at
		FROM api_tokens
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&cred.AccessToken, &refresh, &expiresAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Credential{}, false, nil
	}
	if err != nil {
		return model.Credential{}, false, fmt.Errorf("sqlite load token: %w", err)
	}

	if refresh.Valid {
		cred.RefreshToken = refresh.String
	}
	if expiresAt.Valid {
		cred.ExpiresAt = time.Unix(expiresAt.Int64, 0)
	}
	cred.IssuedAt = time.Unix(createdAt, 0)
	return cred, true, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
