package domain

import "context"

// IdentifierHint forces how a caller-supplied user identifier is
// interpreted. When empty, interpretation is auto-detected: a string
// containing "@" is treated as an email, anything else must parse as
// a numeric id.
type IdentifierHint string

const (
	HintAuto  IdentifierHint = ""
	HintEmail IdentifierHint = "email"
	HintID    IdentifierHint = "id"
)

// UserResolver turns an ambiguous identifier (email or numeric id)
// into the authoritative id of an existing user. Read-only and safe
// for concurrent use.
type UserResolver interface {
	Resolve(ctx context.Context, identifier string, hint IdentifierHint) (int64, error)
}
