package model

import "time"

// Credential is the broker credential record. Exactly one current record
// exists at a time; acquiring a new one retires the previous. The record is
// owned by the token manager; consumers only ever receive the access-token
// string.
type Credential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"` // zero when the broker gave no expiry
	IssuedAt     time.Time `json:"issued_at"`
}

// HasExpiry reports whether the broker attached an expiry to the record.
func (c Credential) HasExpiry() bool { return !c.ExpiresAt.IsZero() }

// ExpiresWithin reports whether the record expires within lead of now.
// Records without an expiry never do.
func (c Credential) ExpiresWithin(now time.Time, lead time.Duration) bool {
	if !c.HasExpiry() {
		return false
	}
	return !c.ExpiresAt.After(now.Add(lead))
}
