// Package settings persists the singleton application preferences
// record as a JSON file in the data directory, the local key-value
// analog of a platform preference store. Reads are total: any fault
// is logged and the defaults come back.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"masroufi/internal/log"
)

const (
	SecurityPIN       SecurityType = "pin"
	SecurityBiometric SecurityType = "biometric"
)

type (
	SecurityType string

	// Settings is the full preference record.
	Settings struct {
		DarkMode        bool         `json:"isDarkMode"`
		SecurityEnabled bool         `json:"isSecurityEnabled"`
		SecurityType    SecurityType `json:"securityType"`
		PIN             string       `json:"pin,omitempty"`
		Language        string       `json:"language"`
		Currency        string       `json:"currency"`
	}

	// Patch is a partial update; nil fields leave the current value
	// untouched.
	Patch struct {
		DarkMode        *bool
		SecurityEnabled *bool
		SecurityType    *SecurityType
		PIN             *string
		Language        *string
		Currency        *string
	}
)

// Defaults returns the settings a fresh installation starts with.
func Defaults() Settings {
	return Settings{
		DarkMode:        false,
		SecurityEnabled: false,
		SecurityType:    SecurityPIN,
		Language:        "ar",
		Currency:        "DA",
	}
}

func (t SecurityType) IsValid() bool {
	switch t {
	case SecurityPIN, SecurityBiometric:
		return true
	default:
		return false
	}
}

// Store reads and writes the settings file.
type Store struct {
	path string
}

// NewStore creates a settings store persisting under dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "settings.json")}
}

// Get returns the current settings: the persisted partial record
// merged over the defaults. Missing or unreadable files yield the
// defaults.
func (s *Store) Get(ctx context.Context) Settings {
	out := Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.WarnContext(ctx, "Read settings failed, using defaults", log.FieldPath, s.path, log.FieldError, err)
		}
		return out
	}

	// Unmarshal over the defaults so absent keys keep their default
	// values, matching merged-partial semantics.
	if err := json.Unmarshal(data, &out); err != nil {
		slog.WarnContext(ctx, "Parse settings failed, using defaults", log.FieldPath, s.path, log.FieldError, err)
		return Defaults()
	}
	return out
}

// Save applies the patch over the current settings and persists the
// merged record.
func (s *Store) Save(ctx context.Context, patch Patch) error {
	current := s.Get(ctx)

	if patch.DarkMode != nil {
		current.DarkMode = *patch.DarkMode
	}
	if patch.SecurityEnabled != nil {
		current.SecurityEnabled = *patch.SecurityEnabled
	}
	if patch.SecurityType != nil {
		if !patch.SecurityType.IsValid() {
			return fmt.Errorf("invalid security type: %s", *patch.SecurityType)
		}
		current.SecurityType = *patch.SecurityType
	}
	if patch.PIN != nil {
		current.PIN = *patch.PIN
	}
	if patch.Language != nil {
		current.Language = *patch.Language
	}
	if patch.Currency != nil {
		current.Currency = *patch.Currency
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	slog.InfoContext(ctx, "Settings saved", log.FieldPath, s.path)
	return nil
}

// Clear removes the persisted record; the next Get returns defaults.
func (s *Store) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear settings: %w", err)
	}
	slog.InfoContext(ctx, "Settings cleared", log.FieldPath, s.path)
	return nil
}
