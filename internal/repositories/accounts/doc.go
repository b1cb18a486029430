// Package accounts provides storage for the account list.
//
// A Repository loads and saves the whole list at once; there is no partial
// update. VaultRepository persists the list in an encrypted vault file,
// MemoryRepository keeps it in process for tests and dry runs.
package accounts
