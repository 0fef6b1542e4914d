package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxcalc/cmd/taxcalc/commands"
	"taxcalc/internal/app"
	"taxcalc/internal/domain"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := commands.NewRootCmd(app.IO{In: strings.NewReader(input), Out: &out, ErrOut: &errOut})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_Interactive(t *testing.T) {
	out, err := run(t, "invalid-year\n2023-2024\nabc\n50000\n", "--home", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, "Year must be in format YYYY-YYYY (e.g., 2022-2023)\n")
	assert.Contains(t, out, "Please enter a valid numeric income\n")
	assert.Contains(t, out, "Tax payable:       $6,717.00")
}

func TestRoot_InteractiveEOF(t *testing.T) {
	_, err := run(t, "2023-2024\n", "--home", t.TempDir())
	require.Error(t, err)
}

func TestCalc_JSON(t *testing.T) {
	out, err := run(t, "", "calc", "--home", t.TempDir(), "--year", "2023-2024", "--income", "50000", "--json")
	require.NoError(t, err)

	var res domain.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Tax.Equal(decimal.NewFromInt(6717)))
	assert.True(t, res.AfterTax.Equal(decimal.NewFromInt(43283)))
}

func TestCalc_ValidationError(t *testing.T) {
	_, err := run(t, "", "calc", "--home", t.TempDir(), "--year", "2023-2024", "--income", "-5")
	require.Error(t, err)
	assert.Equal(t, "Income cannot be negative", err.Error())
}

func TestCalc_RecordsHistory(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, "", "calc", "--home", home, "--history", "--year", "2024-2025", "--income", "50000")
	require.NoError(t, err)

	out, err := run(t, "", "history", "--home", home)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-2025")
	assert.Contains(t, out, "$5,788.00")
}

func TestHistory_Empty(t *testing.T) {
	out, err := run(t, "", "history", "--home", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "No calculations recorded.\n", out)
}

func TestYears(t *testing.T) {
	out, err := run(t, "", "years", "--home", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "2022-2023\n2023-2024\n2024-2025\n", out)

	out, err = run(t, "", "years", "2023-2024", "--home", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "$45,000.00")
	assert.Contains(t, out, "32.5%")
	assert.Contains(t, out, "and over")
}
