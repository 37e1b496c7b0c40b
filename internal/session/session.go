// Package session issues the tokens that tag one invocation of the tool.
//
// Every menu session and one-shot command gets a token. It appears in log
// fields and in the trace_id of JSON responses so that output and logs of the
// same run can be correlated.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// TokenGenerator produces session tokens.
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, so tokens sort by
// creation time.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// SequenceGenerator returns predetermined tokens in order.
//
// Safe for concurrent use.
type SequenceGenerator struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewSequenceGenerator creates a generator that returns tokens in order.
func NewSequenceGenerator(tokens ...string) *SequenceGenerator {
	return &SequenceGenerator{tokens: tokens}
}

// Generate returns the next predetermined token.
//
// Panics once every token has been consumed; a test asking for more
// sessions than it prepared is misconfigured.
func (g *SequenceGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.tokens) {
		panic("SequenceGenerator: all tokens exhausted")
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}
