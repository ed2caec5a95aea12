package schedule

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageKey is the key the entry collection is persisted under.
const StorageKey = "saanjha_schedule_items"

var (
	ErrNotFound  = errors.New("entry not found")
	ErrAmbiguous = errors.New("entry id prefix is ambiguous")
)

// Defaults is the key-value storage the store persists its entries into.
type Defaults interface {
	Data(key string) ([]byte, bool, error)
	SetData(key string, data []byte) error
}

// LoadResult is the outcome of reading the persisted collection.
// Err is set when the blob could not be read or decoded; Entries is then nil.
type LoadResult struct {
	Entries []Entry
	Err     error
}

// Ok reports whether the collection was loaded without error.
func (r LoadResult) Ok() bool {
	return r.Err == nil
}

// Store owns the schedule entries for the lifetime of the process. Every
// mutation is written through to Defaults before returning.
type Store struct {
	mu       sync.Mutex
	items    []Entry
	defaults Defaults
	key      string
	loc      *time.Location
	logger   *zap.Logger
	loadErr  error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report recovery and write failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLocation sets the location calendar days are resolved in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// NewStore creates a store and loads any persisted entries from d.
//
// A missing key or an unreadable blob yields an empty store. The reason is
// logged and kept in LoadErr; it is never returned.
func NewStore(d Defaults, opts ...Option) *Store {
	s := &Store{
		defaults: d,
		key:      StorageKey,
		loc:      time.Local,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	res := s.load()
	if !res.Ok() {
		s.loadErr = res.Err
		s.logger.Warn("schedule data unreadable, starting empty",
			zap.String("key", s.key), zap.Error(res.Err))
	}
	s.items = res.Entries
	s.logger.Debug("schedule loaded", zap.Int("entries", len(s.items)))
	return s
}

func (s *Store) load() LoadResult {
	data, ok, err := s.defaults.Data(s.key)
	if err != nil {
		return LoadResult{Err: fmt.Errorf("reading %s: %w", s.key, err)}
	}
	if !ok {
		return LoadResult{}
	}
	entries, err := decodeEntries(data)
	if err != nil {
		return LoadResult{Err: fmt.Errorf("decoding %s: %w", s.key, err)}
	}
	return LoadResult{Entries: entries}
}

// LoadErr returns why the initial load fell back to an empty collection, or nil.
func (s *Store) LoadErr() error {
	return s.loadErr
}

// Location returns the location calendar days are resolved in.
func (s *Store) Location() *time.Location {
	return s.loc
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := encodeEntries(s.items)
	if err != nil {
		return err
	}
	if err := s.defaults.SetData(s.key, data); err != nil {
		s.logger.Error("saving schedule failed", zap.String("key", s.key), zap.Error(err))
		return fmt.Errorf("saving schedule: %w", err)
	}
	return nil
}

// Add appends e and persists the collection. Ids are not checked for
// uniqueness; callers create entries with fresh ids.
func (s *Store) Add(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, e)
	s.logger.Debug("entry added", zap.String("id", e.ID.String()), zap.String("recurrence", string(e.Recurrence)))
	return s.save()
}

// Update replaces the first entry with e's id, keeping its position. An
// unknown id is ignored and nothing is written.
func (s *Store) Update(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == e.ID {
			s.items[i] = e
			s.logger.Debug("entry updated", zap.String("id", e.ID.String()))
			return s.save()
		}
	}
	return nil
}

// Remove deletes every entry with e's id and persists the collection.
func (s *Store) Remove(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != e.ID {
			kept = append(kept, item)
		}
	}
	removed := len(s.items) - len(kept)
	s.items = kept
	s.logger.Debug("entry removed", zap.String("id", e.ID.String()), zap.Int("count", removed))
	return s.save()
}

// Items returns a snapshot of all entries in insertion order.
func (s *Store) Items() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the entry with the given id.
func (s *Store) Get(id uuid.UUID) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.items {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolve finds the single entry whose id starts with prefix.
func (s *Store) Resolve(prefix string) (Entry, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return Entry{}, fmt.Errorf("entry '%s' not found: %w", prefix, ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []Entry
	for _, e := range s.items {
		if strings.HasPrefix(e.ID.String(), prefix) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return Entry{}, fmt.Errorf("entry '%s' not found: %w", prefix, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return Entry{}, fmt.Errorf("entry '%s' matches %d entries: %w", prefix, len(matches), ErrAmbiguous)
	}
}

// OccurringOn returns every entry that occurs on d, in insertion order.
func (s *Store) OccurringOn(d Date) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Entry
	for _, e := range s.items {
		if OccursOn(e, d, s.loc) {
			out = append(out, e)
		}
	}
	return out
}

// Agenda returns the occurrences on d split into events and tasks.
func (s *Store) Agenda(d Date) DayAgenda {
	return BuildAgenda(s.Items(), d, s.loc)
}

// Between returns the non-empty day agendas from from to to, inclusive.
func (s *Store) Between(from, to Date) ([]DayAgenda, error) {
	return Expand(s.Items(), from, to, s.loc)
}
