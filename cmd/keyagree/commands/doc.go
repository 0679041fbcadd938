// Package commands defines the keyagree CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen           Generate a key pair (identity or ephemeral)
//   - fingerprint      Print the fingerprint of a public key file
//   - handshake        Run the triple Diffie-Hellman handshake and print session keys
//   - password hash    Stretch a password into a storable digest
//   - password verify  Check a password against a stored digest
//
// # Implementation
//
// The root command builds the dependency graph (codec, handshake, services)
// from its flags before any subcommand runs, so every handler shares one
// app.Wire configured with the same curve and context label.
package commands
