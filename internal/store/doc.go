// Package store provides file-based persistence for taxcalc.
//
// HistoryFileStore implements domain.HistoryStore, keeping every recorded
// calculation in a single file under the configured home directory. Writes go
// through a temp file and an atomic rename so a crash never leaves a
// half-written history behind. All methods are concurrency-safe via internal
// locking.
//
// # Encryption
//
// Income figures are personal data, so a store built with
// NewEncryptedHistoryFileStore seals the file: a key is derived from the
// passphrase with scrypt and the JSON is encrypted with ChaCha20-Poly1305. A
// wrong passphrase surfaces as ErrWrongPassphrase.
package store
