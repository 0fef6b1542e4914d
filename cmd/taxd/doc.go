// Package main runs taxd, the HTTP front end of the tax calculator. Routes are
// documented in internal/httpapi.
//
// Behaviour
//
//   - Configuration follows taxcalc: flags, TAXCALC_* environment variables,
//     then config.yaml in the home directory. --brackets merges extra tables.
//   - The default listen address is :8080 and the default log level is info,
//     so the access log is on.
//   - SIGINT or SIGTERM stops accepting connections and drains in-flight
//     requests for up to five seconds.
//
// The server keeps no state between requests and ignores the history
// settings; nothing is written to disk.
package main
