// Package vault keeps medical reports (scans, lab results, prescriptions)
// together with copies of their images.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Raghav-2611/saanjha/internal/fileutil"
)

// StorageKey is the key the report collection is persisted under.
const StorageKey = "saanjha_vault_reports"

// DefaultType is the report type used when none is given.
const DefaultType = "General"

var (
	ErrNotFound  = errors.New("report not found")
	ErrAmbiguous = errors.New("report id prefix is ambiguous")
)

// imageExts are the attachment types a report accepts.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".pdf":  true,
}

// Defaults is the key-value storage reports are persisted into.
type Defaults interface {
	Data(key string) ([]byte, bool, error)
	SetData(key string, data []byte) error
}

// Report is one stored medical document.
type Report struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Type       string    `json:"reportType"`
	Date       time.Time `json:"reportDate"`
	Images     []string  `json:"imageIdentifiers"`
	UploadedAt time.Time `json:"uploadDate"`
}

// ShortID returns the first 8 characters of the report id.
func (r Report) ShortID() string {
	return r.ID.String()[:8]
}

// Vault owns the stored reports. Every mutation is written through before
// returning.
type Vault struct {
	mu       sync.Mutex
	reports  []Report
	defaults Defaults
	imageDir string
	logger   *zap.Logger
	loadErr  error
}

// Option configures a Vault.
type Option func(*Vault)

// WithLogger sets the logger used for recovery and write failures.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Vault) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// New creates a vault over d, copying attached images into imageDir. An
// unreadable collection starts empty and is reported through LoadErr.
func New(d Defaults, imageDir string, opts ...Option) *Vault {
	v := &Vault{
		defaults: d,
		imageDir: imageDir,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}

	reports, err := v.load()
	if err != nil {
		v.loadErr = err
		v.logger.Warn("vault data unreadable, starting empty", zap.Error(err))
	}
	v.reports = reports
	return v
}

func (v *Vault) load() ([]Report, error) {
	data, ok, err := v.defaults.Data(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", StorageKey, err)
	}
	if !ok {
		return nil, nil
	}
	var reports []Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", StorageKey, err)
	}
	return reports, nil
}

// LoadErr returns why the initial load fell back to an empty vault, or nil.
func (v *Vault) LoadErr() error {
	return v.loadErr
}

// ImageDir returns the directory attached images are copied into.
func (v *Vault) ImageDir() string {
	return v.imageDir
}

// ImagePath returns where the image with the given identifier is stored.
func (v *Vault) ImagePath(id string) string {
	return filepath.Join(v.imageDir, id)
}

// save must be called with v.mu held.
func (v *Vault) save() error {
	reports := v.reports
	if reports == nil {
		reports = []Report{}
	}
	data, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	if err := v.defaults.SetData(StorageKey, data); err != nil {
		v.logger.Error("saving vault failed", zap.Error(err))
		return fmt.Errorf("saving vault: %w", err)
	}
	return nil
}

// NewReport builds a report with a fresh id. An empty type becomes DefaultType.
func NewReport(title, typ string, date, now time.Time) Report {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		typ = DefaultType
	}
	return Report{
		ID:         uuid.New(),
		Title:      strings.TrimSpace(title),
		Type:       typ,
		Date:       date,
		Images:     []string{},
		UploadedAt: now,
	}
}

// Add copies the files at imagePaths into the image directory, records their
// identifiers on r and persists it. Nothing is stored if any copy fails.
func (v *Vault) Add(r Report, imagePaths ...string) (Report, error) {
	var copied []string
	for _, src := range imagePaths {
		id, err := v.copyImage(src)
		if err != nil {
			v.removeImages(copied)
			return Report{}, err
		}
		copied = append(copied, id)
	}
	r.Images = append(append([]string{}, r.Images...), copied...)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.reports = append(v.reports, r)
	v.logger.Debug("report added", zap.String("id", r.ID.String()), zap.Int("images", len(r.Images)))
	if err := v.save(); err != nil {
		return Report{}, err
	}
	return r, nil
}

func (v *Vault) copyImage(src string) (string, error) {
	ext := strings.ToLower(filepath.Ext(src))
	if !imageExts[ext] {
		return "", fmt.Errorf("unsupported image '%s' (expected jpg, jpeg, png, heic or pdf)", filepath.Base(src))
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	id := strings.ToUpper(uuid.NewString()) + ext
	if err := fileutil.WriteAtomic(v.ImagePath(id), data, 0o600); err != nil {
		return "", fmt.Errorf("storing image: %w", err)
	}
	return id, nil
}

func (v *Vault) removeImages(ids []string) {
	for _, id := range ids {
		if err := os.Remove(v.ImagePath(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
			v.logger.Warn("removing image failed", zap.String("image", id), zap.Error(err))
		}
	}
}

// List returns all reports, most recent report date first.
func (v *Vault) List() []Report {
	v.mu.Lock()
	out := make([]Report, len(v.reports))
	copy(out, v.reports)
	v.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Resolve finds the single report whose id starts with prefix.
func (v *Vault) Resolve(prefix string) (Report, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return Report{}, fmt.Errorf("report '%s' not found: %w", prefix, ErrNotFound)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	var matches []Report
	for _, r := range v.reports {
		if strings.HasPrefix(r.ID.String(), prefix) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return Report{}, fmt.Errorf("report '%s' not found: %w", prefix, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return Report{}, fmt.Errorf("report '%s' matches %d reports: %w", prefix, len(matches), ErrAmbiguous)
	}
}

// Remove deletes the report with r's id and its stored images.
func (v *Vault) Remove(r Report) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	kept := v.reports[:0]
	var images []string
	for _, item := range v.reports {
		if item.ID == r.ID {
			images = append(images, item.Images...)
			continue
		}
		kept = append(kept, item)
	}
	v.reports = kept
	if err := v.save(); err != nil {
		return err
	}
	v.removeImages(images)
	v.logger.Debug("report removed", zap.String("id", r.ID.String()), zap.Int("images", len(images)))
	return nil
}
