package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"taxcalc/internal/domain"
)

const (
	historyFilename          = "history.json"
	encryptedHistoryFilename = "history.json.enc"
)

// HistoryFileStore persists calculation records to disk. With a passphrase
// the file is sealed with the scrypt/ChaCha20-Poly1305 envelope; without one
// it is plain JSON.
type HistoryFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewHistoryFileStore returns a plaintext HistoryFileStore rooted at dir.
func NewHistoryFileStore(dir string) *HistoryFileStore {
	return &HistoryFileStore{dir: dir}
}

// NewEncryptedHistoryFileStore returns a HistoryFileStore rooted at dir whose
// file is encrypted with passphrase.
func NewEncryptedHistoryFileStore(dir, passphrase string) *HistoryFileStore {
	return &HistoryFileStore{dir: dir, passphrase: passphrase}
}

// Path returns the file the store reads and writes.
func (s *HistoryFileStore) Path() string {
	if s.passphrase != "" {
		return filepath.Join(s.dir, encryptedHistoryFilename)
	}
	return filepath.Join(s.dir, historyFilename)
}

// AppendRecord adds rec to the end of the history file.
func (s *HistoryFileStore) AppendRecord(rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records = append(records, rec)
	return s.save(records)
}

// LoadRecords returns all records in the order they were appended. A missing
// file yields an empty history.
func (s *HistoryFileStore) LoadRecords() ([]domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *HistoryFileStore) load() ([]domain.Record, error) {
	var records []domain.Record
	if s.passphrase == "" {
		if err := readJSON(s.Path(), &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	b, err := readFile(s.Path())
	if err != nil || b == nil {
		return nil, err
	}
	pt, err := decrypt(s.passphrase, b)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(pt, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *HistoryFileStore) save(records []domain.Record) error {
	if s.passphrase == "" {
		return writeJSON(s.Path(), records, 0o600)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	ct, err := encrypt(s.passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(s.Path(), ct, 0o600)
}

// Compile-time assertion that HistoryFileStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*HistoryFileStore)(nil)
