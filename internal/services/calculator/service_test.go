package calculator_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"taxcalc/internal/domain"
	"taxcalc/internal/services/calculator"
	"taxcalc/internal/tax"
)

// scriptedInput replays canned replies and records the prompts it was shown.
type scriptedInput struct {
	replies []string
	prompts []string
}

func (s *scriptedInput) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.prompts = append(s.prompts, text)
	if len(s.replies) == 0 {
		return "", io.EOF
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

type recordingOutput struct {
	logs    []string
	results []domain.Result
}

func (r *recordingOutput) Log(message string) { r.logs = append(r.logs, message) }
func (r *recordingOutput) ShowResult(result domain.Result) { r.results = append(r.results, result) }

type fakeRecorder struct {
	err     error
	results []domain.Result
}

func (f *fakeRecorder) Record(result domain.Result) (domain.Record, error) {
	if f.err != nil {
		return domain.Record{}, f.err
	}
	f.results = append(f.results, result)
	return domain.Record{Result: result}, nil
}

func newService(replies ...string) (*calculator.Service, *scriptedInput, *recordingOutput) {
	in := &scriptedInput{replies: replies}
	out := &recordingOutput{}
	return calculator.New(tax.New(tax.DefaultSchedule()), in, out), in, out
}

func TestRun_RetriesUntilValid(t *testing.T) {
	svc, in, out := newService("invalid-year", "2023-2024", "abc", "50000")

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Year must be in format YYYY-YYYY (e.g., 2022-2023)",
		"Please enter a valid numeric income",
	}, out.logs)
	require.Len(t, out.results, 1)
	assert.Equal(t, res, out.results[0])

	assert.Equal(t, domain.FiscalYear("2023-2024"), res.Year)
	assert.True(t, res.Income.Equal(decimal.NewFromInt(50000)))
	assert.True(t, res.Tax.Equal(decimal.NewFromInt(6717)))
	assert.True(t, res.AfterTax.Equal(decimal.NewFromInt(43283)))
	assert.InDelta(t, 13.434, res.EffectiveRate, 1e-9)

	assert.Equal(t, []string{
		"Enter fiscal year (e.g., 2022-2023): ",
		"Enter fiscal year (e.g., 2022-2023): ",
		calculator.IncomePrompt,
		calculator.IncomePrompt,
	}, in.prompts)
}

func TestGetValidYear_ReportsEachRejection(t *testing.T) {
	svc, _, out := newService("", "2019-2020", "2024-2025")

	year, err := svc.GetValidYear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.FiscalYear("2024-2025"), year)
	assert.Equal(t, []string{
		"Year cannot be empty",
		"Year 2019-2020 is not supported. Available years: 2022-2023, 2023-2024, 2024-2025",
	}, out.logs)
}

func TestGetValidIncome_ReportsEachRejection(t *testing.T) {
	svc, _, out := newService("", "-5", "1000000000", "  1234.50 ")

	income, err := svc.GetValidIncome(context.Background())
	require.NoError(t, err)
	assert.True(t, income.Equal(decimal.RequireFromString("1234.5")))
	assert.Equal(t, []string{
		"Income cannot be empty",
		"Income cannot be negative",
		"Income exceeds maximum allowed value",
	}, out.logs)
}

func TestRun_InputFailureStopsLoop(t *testing.T) {
	svc, _, out := newService("bad")

	_, err := svc.Run(context.Background())
	require.ErrorIs(t, err, io.EOF)
	assert.Len(t, out.logs, 1)
	assert.Empty(t, out.results)
}

func TestRun_CancelledContext(t *testing.T) {
	svc, _, _ := newService("2023-2024", "50000")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_RecordsResult(t *testing.T) {
	rec := &fakeRecorder{}
	in := &scriptedInput{replies: []string{"2024-2025", "50000"}}
	out := &recordingOutput{}
	svc := calculator.New(tax.New(tax.DefaultSchedule()), in, out, calculator.WithRecorder(rec))

	res, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, rec.results, 1)
	assert.Equal(t, res, rec.results[0])
	assert.True(t, res.Tax.Equal(decimal.NewFromInt(5788)))
}

func TestRun_RecorderFailureIsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rec := &fakeRecorder{err: errors.New("disk full")}
	in := &scriptedInput{replies: []string{"2023-2024", "50000"}}
	out := &recordingOutput{}
	svc := calculator.New(tax.New(tax.DefaultSchedule()), in, out,
		calculator.WithRecorder(rec), calculator.WithLogger(zap.New(core)))

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, out.results, 1)
	require.Equal(t, 1, logs.FilterMessage("history not saved").Len())
}
