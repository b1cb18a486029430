// Package cli provides the interactive otpkeeper command-line client.
//
// The App reads commands from a line-oriented REPL and operates on the
// account list through services.AccountService:
//
//   - list                 list accounts with masked codes
//   - show <n|name>        print the current code of one account
//   - add                  prompt for name and secret, preview, confirm
//   - import <uri>         add an account from an otpauth:// URI
//   - delete <n|name>      remove an account after confirmation
//   - copy <n|name>        copy the current code to the clipboard
//   - qr <n|name> <file>   write the account's otpauth URI as a PNG
//   - help, exit | quit
//
// Accounts are addressed by their 1-based position in the list or by name,
// ignoring case. Codes copied to the clipboard are cleared after
// Config.ClipboardClearAfter unless the clipboard changed in between.
package cli
