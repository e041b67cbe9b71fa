// Package session persists per-conversation dialogue state between turns.
// Each conversation owns exactly one session; the store only has to guard
// access across different conversations, turns within one conversation are
// serial.
package session

import (
	"context"

	"core/internal/dialog"
)

// Store keeps dialogue sessions keyed by conversation id. Get returns
// (nil, nil) for an unknown id.
type Store interface {
	Get(ctx context.Context, conversationID string) (*dialog.Session, error)
	Save(ctx context.Context, sess *dialog.Session) error
	Delete(ctx context.Context, conversationID string) error
}
