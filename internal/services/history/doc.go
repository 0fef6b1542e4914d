// Package history records calculation results and lists them back.
//
// It stamps each result with a random ID and the current time and persists
// it via the domain.HistoryStore.
package history
