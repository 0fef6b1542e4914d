package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"taxcalc/internal/domain"
)

// Service stamps and persists results using a backing store.
type Service struct {
	store domain.HistoryStore
	now   func() time.Time
}

// New returns a history service backed by the given store.
func New(s domain.HistoryStore) *Service {
	return &Service{store: s, now: time.Now}
}

// Record saves result with a fresh ID and timestamp and returns the stored record.
func (s *Service) Record(result domain.Result) (domain.Record, error) {
	rec := domain.Record{
		ID:        uuid.New(),
		CreatedAt: s.now().UTC(),
		Result:    result,
	}
	if err := s.store.AppendRecord(rec); err != nil {
		return domain.Record{}, fmt.Errorf("recording result: %w", err)
	}
	return rec, nil
}

// List returns up to limit records, newest first. A limit of zero or less
// returns everything.
func (s *Service) List(limit int) ([]domain.Record, error) {
	records, err := s.store.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	// Reverse first so records sharing a timestamp stay newest-appended first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Compile-time assertion that Service implements domain.ResultRecorder.
var _ domain.ResultRecorder = (*Service)(nil)
