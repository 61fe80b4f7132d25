// Package cli provides the courtside command-line client.
//
// Commands:
//   - signup: create an account (password read from a hidden prompt)
//   - login: obtain a session token and save it to the token file
//   - whoami: show who the saved token belongs to
//   - logout: forget the saved token
//   - health: check that the server is up
//
// The root command is built by App.RootCmd; cmd/client runs it.
package cli
