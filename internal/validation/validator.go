// Package validation checks user supplied catalog values before they are
// loaded or handed to the operating system.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrEmptyName = errors.New("name is empty")
	ErrBadURL    = errors.New("invalid tool URL")
)

// ValidateToolName rejects names that are empty after trimming.
func ValidateToolName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateToolURL accepts absolute http and https URLs with a host. Anything
// else (file://, javascript:, relative paths) is refused since the URL is
// passed straight to the system browser.
func ValidateToolURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: empty", ErrBadURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q not allowed", ErrBadURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrBadURL)
	}
	return nil
}
