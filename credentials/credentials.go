// Package credentials persists the messaging-service API credentials.
//
// The credential file is created once, on the first run that needs it, from
// whatever a Provider returns. After that it is read as-is: it is never
// re-prompted for and never rotated.
package credentials

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Credentials identify the application to the messaging service.
type Credentials struct {
	APIID   int64
	APIHash string
}

// Validate checks that both fields are usable.
func (c Credentials) Validate() error {
	if c.APIID <= 0 {
		return fmt.Errorf("api_id must be a positive integer, got %d", c.APIID)
	}
	if strings.TrimSpace(c.APIHash) == "" {
		return fmt.Errorf("api_hash cannot be empty")
	}
	return nil
}

// ConfigError reports a credential file that exists but cannot be used.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("credentials %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// record is the on-disk layout. api_id is decoded as a string so that both
// quoted and bare numbers are accepted and bad values get a clear message.
type record struct {
	APIID   string `yaml:"api_id"`
	APIHash string `yaml:"api_hash"`
}

// Store reads and writes one credential file.
type Store struct {
	Path string
}

// NewStore creates a Store for path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Exists reports whether the credential file is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.Path)
	return err == nil && info.Mode().IsRegular()
}

// Load reads and validates the credential file.
func (s *Store) Load() (Credentials, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Credentials{}, &ConfigError{Path: s.Path, Err: errors.Wrap(err, "failed to read credentials")}
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Credentials{}, &ConfigError{Path: s.Path, Err: errors.Wrap(err, "failed to parse credentials")}
	}

	if strings.TrimSpace(rec.APIID) == "" {
		return Credentials{}, &ConfigError{Path: s.Path, Err: errors.New("api_id is missing")}
	}
	id, err := ParseAPIID(rec.APIID)
	if err != nil {
		return Credentials{}, &ConfigError{Path: s.Path, Err: err}
	}

	creds := Credentials{APIID: id, APIHash: strings.TrimSpace(rec.APIHash)}
	if err := creds.Validate(); err != nil {
		return Credentials{}, &ConfigError{Path: s.Path, Err: err}
	}
	return creds, nil
}

// Save writes creds, creating the parent directory if needed. The file is
// readable by the owner only.
func (s *Store) Save(creds Credentials) error {
	if err := creds.Validate(); err != nil {
		return errors.Wrap(err, "refusing to save invalid credentials")
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return errors.Wrap(err, "failed to create credentials directory")
	}

	data, err := yaml.Marshal(record{
		APIID:   strconv.FormatInt(creds.APIID, 10),
		APIHash: creds.APIHash,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal credentials")
	}

	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write credentials")
	}
	return nil
}

// ParseAPIID parses a decimal API id.
func ParseAPIID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Errorf("api_id must be an integer, got '%s'", strings.TrimSpace(s))
	}
	return id, nil
}

// LoadOrObtain returns the stored credentials, or obtains them from provider
// and stores them when no file exists yet.
func LoadOrObtain(ctx context.Context, store *Store, provider Provider) (Credentials, error) {
	if store.Exists() {
		return store.Load()
	}

	creds, err := provider.Obtain(ctx)
	if err != nil {
		return Credentials{}, &ConfigError{Path: store.Path, Err: errors.Wrap(err, "failed to obtain credentials")}
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, &ConfigError{Path: store.Path, Err: err}
	}

	if err := store.Save(creds); err != nil {
		return Credentials{}, &ConfigError{Path: store.Path, Err: err}
	}
	return creds, nil
}
