// Package app wires application dependencies for the CLI and the HTTP server.
//
// LoadConfig resolves Config from command-line flags, TAXCALC_* environment
// variables and an optional config.yaml in the home directory (via viper).
// NewWire builds the bracket schedule, tax engine, console collaborators,
// optional history store and the calculator service from it, exposing them
// via the Wire struct for commands to use.
package app
