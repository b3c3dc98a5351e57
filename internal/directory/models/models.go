// Package models defines the directory record shape shared by the snapshot
// sources, the store, and the validation service.
package models

import "strings"

// Record is one known user in the directory. The directory is a
// demo-simplified stand-in for a real identity-management system; records are
// loaded wholesale from a snapshot and never mutated individually.
type Record struct {
	Email   string `json:"email"`
	UserID  string `json:"userId"`
	Blocked bool   `json:"blocked"`
}

// NormalizeEmail produces the canonical directory key: trimmed and lowercased.
// Records are unique by normalized email; lookups match case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
