// SPDX-License-Identifier: MIT

package codomain

import "sync"

// policy is the process-wide codomain setting.
var policy struct {
	mu   sync.RWMutex // guards mode
	mode Mode
}

func init() {
	cfg, err := LoadConfig()
	if err != nil {
		return
	}
	policy.mode = cfg.Codomain
}

// Get returns the process-wide mode.
func Get() Mode {
	policy.mu.RLock()
	defer policy.mu.RUnlock()

	return policy.mode
}

// Set replaces the process-wide mode and returns the previous one.
// Invalid modes are ignored and leave the setting unchanged.
func Set(m Mode) Mode {
	policy.mu.Lock()
	defer policy.mu.Unlock()

	prev := policy.mode
	if m.Valid() {
		policy.mode = m
	}

	return prev
}

// SetString parses s with Parse and stores the result.
func SetString(s string) error {
	m, err := Parse(s)
	if err != nil {
		return err
	}
	Set(m)

	return nil
}

// Reset restores the process-wide mode to Default.
func Reset() {
	Set(Default)
}
