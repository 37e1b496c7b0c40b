package testutil

// FixedTokenGenerator returns the same session token every time.
//
// Sessions driven by a FixedTokenGenerator produce byte-identical transcripts
// and JSON output, which keeps golden files stable.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a fixed session token generator.
//
// If token is empty, Generate() returns "test-session-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-session-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
//
// Implements session.TokenGenerator.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
