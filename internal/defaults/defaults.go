package defaults

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Defaults is a small persistent key-value store. Missing keys are reported
// through the bool return rather than an error.
type Defaults interface {
	Data(key string) ([]byte, bool, error)
	SetData(key string, data []byte) error
	Remove(key string) error
	Close() error
}

// Kind selects a Defaults backend.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

// ParseKind parses a backend name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindFile, KindSQLite:
		return k, nil
	case "":
		return KindFile, nil
	}
	return "", fmt.Errorf("unknown storage '%s' (expected file or sqlite)", s)
}

type options struct {
	logger *zap.Logger
}

// Option configures a backend when it is opened.
type Option func(*options)

// WithLogger sets the logger backends report recovery and migrations to.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Open opens the backend of the given kind at path.
func Open(kind Kind, path string, opts ...Option) (Defaults, error) {
	switch kind {
	case KindFile, "":
		return OpenFile(path, opts...)
	case KindSQLite:
		return OpenSQLite(path, opts...)
	}
	return nil, fmt.Errorf("unknown storage '%s'", kind)
}
