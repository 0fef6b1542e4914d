package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxcalc/internal/domain"
)

func TestBracket_MarshalJSON(t *testing.T) {
	bounded, err := json.Marshal(domain.Bracket{
		Lower:   decimal.NewFromInt(18200),
		Upper:   decimal.NewFromInt(45000),
		Rate:    decimal.RequireFromString("0.19"),
		BaseTax: decimal.Zero,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lower":"18200","upper":"45000","rate":"0.19","base_tax":"0"}`, string(bounded))

	top, err := json.Marshal(domain.Bracket{
		Lower:     decimal.NewFromInt(180000),
		Unbounded: true,
		Rate:      decimal.RequireFromString("0.45"),
		BaseTax:   decimal.NewFromInt(51667),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lower":"180000","unbounded":true,"rate":"0.45","base_tax":"51667"}`, string(top))
}
