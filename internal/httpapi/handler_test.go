package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"taxcalc/internal/domain"
	"taxcalc/internal/httpapi"
	"taxcalc/internal/tax"
)

func newServer(t *testing.T) (*httptest.Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	srv := httptest.NewServer(httpapi.Handler(tax.New(tax.DefaultSchedule()), zap.New(core)))
	t.Cleanup(srv.Close)
	return srv, logs
}

func TestYears(t *testing.T) {
	srv, logs := newServer(t)

	resp, err := http.Get(srv.URL + "/years")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Years []string `json:"years"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"2022-2023", "2023-2024", "2024-2025"}, body.Years)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/years", entries[0].ContextMap()["path"])
}

func TestBrackets(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/years/2024-2025/brackets")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw struct {
		Brackets []map[string]any `json:"brackets"`
	}
	var table domain.Table
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &table))
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, domain.FiscalYear("2024-2025"), table.Year)
	require.Len(t, table.Brackets, 5)
	assert.True(t, table.Brackets[2].BaseTax.Equal(decimal.NewFromInt(4288)))
	assert.True(t, table.Brackets[4].Unbounded)
	assert.Contains(t, raw.Brackets[3], "upper")
	assert.NotContains(t, raw.Brackets[4], "upper")

	missing, err := http.Get(srv.URL + "/years/1999-2000/brackets")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestCalculate(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Post(srv.URL+"/calculate", "application/json",
		strings.NewReader(`{"year": "2023-2024", "income": "50000"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res domain.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Tax.Equal(decimal.NewFromInt(6717)))
	assert.True(t, res.AfterTax.Equal(decimal.NewFromInt(43283)))
	assert.InDelta(t, 13.434, res.EffectiveRate, 1e-9)
}

func TestCalculate_Rejections(t *testing.T) {
	srv, _ := newServer(t)

	tests := []struct {
		name      string
		body      string
		wantError string
		wantField string
	}{
		{
			name:      "bad year",
			body:      `{"year": "invalid-year", "income": "50000"}`,
			wantError: "Year must be in format YYYY-YYYY (e.g., 2022-2023)",
			wantField: "year",
		},
		{
			name:      "bad income",
			body:      `{"year": "2023-2024", "income": "abc"}`,
			wantError: "Please enter a valid numeric income",
			wantField: "income",
		},
		{
			name:      "not json",
			body:      `year=2023`,
			wantError: "invalid JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/calculate", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body struct {
				Error string `json:"error"`
				Field string `json:"field"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantField, body.Field)
		})
	}
}

func TestCalculate_WrongMethod(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/calculate")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
