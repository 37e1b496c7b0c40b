// Package config loads the CUE configuration file.
//
// The file is unified with the embedded #Config schema, so unknown fields,
// wrong types and out-of-range values are rejected with CUE positions, and
// omitted fields take the schema defaults.
//
// Example longrun.cue:
//
//	format:   "json"
//	selftest: false
//	default_predicate: "divisible:10"
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/longrun/internal/runs"
)

//go:embed schema.cue
var schemaCUE string

// Config holds the resolved settings.
type Config struct {
	Format           string `json:"format"`
	Verbose          bool   `json:"verbose"`
	SelfTest         bool   `json:"selftest"`
	DefaultPredicate string `json:"default_predicate"`
	Prompt           string `json:"prompt"`
}

// ErrInvalid marks configuration that does not satisfy the schema.
var ErrInvalid = errors.New("invalid configuration")

// Default returns the schema defaults.
func Default() *Config {
	cfg, err := decode(nil, "")
	if err != nil {
		// The embedded schema is fixed; failing here is a programming error.
		panic(fmt.Sprintf("config: embedded schema: %v", err))
	}
	return cfg
}

// Load reads the CUE file at path. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data, path)
}

// Parse compiles CUE source and validates it against the schema.
// filename is used in error positions only.
func Parse(data []byte, filename string) (*Config, error) {
	return decode(data, filename)
}

func decode(data []byte, filename string) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	value := def
	if data != nil {
		user := ctx.CompileBytes(data, cue.Filename(filename))
		if err := user.Err(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, details(err))
		}
		value = def.Unify(user)
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, details(err))
	}

	var cfg Config
	if err := value.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, details(err))
	}

	if _, err := runs.ParsePredicate(cfg.DefaultPredicate); err != nil {
		return nil, fmt.Errorf("%w: default_predicate: %v", ErrInvalid, err)
	}

	return &cfg, nil
}

// details renders every CUE error with its position.
func details(err error) string {
	return strings.TrimSpace(cueerrors.Details(err, nil))
}
