package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/fury-go/fury"
)

// Policy is the on-disk shape of a furycheck policy file: the checker
// mode plus its starting allow/deny patterns, applied in list order.
type Policy struct {
	Mode  string   `json:"mode"`
	Allow []string `json:"allow,omitempty"`
	Deny  []string `json:"deny,omitempty"`
}

var errUnknownMode = fmt.Errorf("mode must be %q or %q", "strict", "warn")

// loadPolicy reads and parses a JSONC policy file at path.
func loadPolicy(path string) (Policy, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is an explicit CLI flag
	if err != nil {
		return Policy{}, fmt.Errorf("read policy file %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Policy{}, fmt.Errorf("parse policy file %s: invalid JSONC: %w", path, err)
	}

	var p Policy
	if err := json.Unmarshal(standardized, &p); err != nil {
		return Policy{}, fmt.Errorf("parse policy file %s: invalid JSON: %w", path, err)
	}

	return p, nil
}

// mode parses the policy's Mode field, defaulting to Strict when unset.
func (p Policy) mode() (fury.Mode, error) {
	switch strings.ToLower(p.Mode) {
	case "", "strict":
		return fury.Strict, nil
	case "warn":
		return fury.Warn, nil
	default:
		return 0, fmt.Errorf("%w, got %q", errUnknownMode, p.Mode)
	}
}

// build constructs a ClassChecker from the policy, applying allow
// patterns before deny patterns so a denied sub-pattern of a broader
// allow still ends up denied regardless of file ordering.
func (p Policy) build() (*fury.ClassChecker, error) {
	mode, err := p.mode()
	if err != nil {
		return nil, err
	}

	checker := fury.NewClassChecker(mode)
	for _, pattern := range p.Allow {
		if err := checker.Allow(pattern); err != nil {
			return nil, fmt.Errorf("apply allow pattern %q: %w", pattern, err)
		}
	}
	for _, pattern := range p.Deny {
		if err := checker.Disallow(pattern); err != nil {
			return nil, fmt.Errorf("apply deny pattern %q: %w", pattern, err)
		}
	}

	return checker, nil
}
