// Package models defines the records stored in the vault.
package models

import "strings"

// Account is a named TOTP credential.
//
// Secret is kept exactly as the user entered it (Base32, possibly grouped
// with spaces or hyphens); it is normalized only when a code is generated.
type Account struct {
	Name   string `json:"Name"`
	Secret string `json:"Secret"`
}

// Matches reports whether the account's name equals name, ignoring case.
func (a Account) Matches(name string) bool {
	return strings.EqualFold(a.Name, name)
}

// String never includes the secret.
func (a Account) String() string {
	return a.Name
}

// IndexOf returns the position of the first account matching name, or -1.
func IndexOf(accounts []Account, name string) int {
	for i, a := range accounts {
		if a.Matches(name) {
			return i
		}
	}
	return -1
}
