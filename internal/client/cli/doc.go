// Package cli implements the gophauth command-line client.
//
// Commands:
//   - register [email]   create an account and print its access token
//   - login [email]      log in and print a fresh access token
//   - greet <message>    call the token-gated Greet operation
//
// Tokens are written to stdout on their own line and prompts to stderr, so
// `export GOPHAUTH_TOKEN=$(client login alice@example.com)` works.
package cli
