package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvogel/kaufmiete/internal/domain"
)

func TestFindBreakevenPrice_ConvergesOnBaseline(t *testing.T) {
	engine := NewEngine()

	// With a fixed down payment the baseline result rises with price
	// (the renter side never sees the extra capital), so the root only
	// exists on the fixed-loan branch: keep the 1.6M mortgage and let
	// the probe down payment absorb the price.
	loan := decimal.NewFromInt(1600000)
	opts := domain.BreakEvenOptions{
		MinPrice:       decimal.NewFromInt(500000),
		MaxPrice:       decimal.NewFromInt(5000000),
		Tolerance:      decimal.NewFromInt(1000),
		MortgageAmount: &loan,
	}

	res, err := engine.FindBreakevenPrice(baselineParams(), opts)
	require.NoError(t, err)

	assert.True(t, res.BreakevenFound, "Should converge within the bracket: %s", res.Message)
	assert.True(t, res.Difference.LessThanOrEqual(opts.Tolerance),
		"Difference %s should be within tolerance", res.Difference)
	assert.True(t, res.BreakevenPrice.GreaterThanOrEqual(loan),
		"Price %s should never fall below the fixed loan", res.BreakevenPrice)
	assert.True(t, res.BreakevenPrice.LessThanOrEqual(opts.MaxPrice))
	assert.Contains(t, res.Message, "break-even price")

	// Re-running the core at the reported price must reproduce the probe.
	check := baselineParams()
	check.PurchasePrice = res.BreakevenPrice
	check.DownPayment = res.BreakevenPrice.Sub(loan)
	verify, err := engine.Calculate(check)
	require.NoError(t, err)
	assert.True(t, verify.ResultValue.Equal(res.ResultValue),
		"Recomputation at the break-even price should match the probe (%s vs %s)",
		res.ResultValue, verify.ResultValue)
	assert.True(t, verify.ResultValue.Abs().LessThanOrEqual(opts.Tolerance),
		"|%s| should be within tolerance", verify.ResultValue)
}

func TestFindBreakevenPrice_FixedDownPaymentHasNoRoot(t *testing.T) {
	engine := NewEngine()

	// The degenerate variant of the same search: carrying the 400k down
	// payment unchanged makes the result monotone increasing in price,
	// so the search reports the closest probe instead of a root.
	opts := domain.BreakEvenOptions{
		MinPrice:  decimal.NewFromInt(500000),
		MaxPrice:  decimal.NewFromInt(5000000),
		Tolerance: decimal.NewFromInt(1000),
	}

	res, err := engine.FindBreakevenPrice(baselineParams(), opts)
	require.NoError(t, err)

	assert.False(t, res.BreakevenFound, "No root exists on this branch: %s", res.Message)
	assert.True(t, res.Difference.GreaterThan(opts.Tolerance))
	assert.Contains(t, res.Message, "no break-even")
}

func TestFindBreakevenPrice_FixedMortgage(t *testing.T) {
	engine := NewEngine()

	loan := decimal.NewFromInt(1600000)
	opts := domain.BreakEvenOptions{
		MinPrice:       decimal.NewFromInt(500000),
		MaxPrice:       decimal.NewFromInt(5000000),
		Tolerance:      decimal.NewFromInt(1000),
		MortgageAmount: &loan,
	}

	res, err := engine.FindBreakevenPrice(baselineParams(), opts)
	require.NoError(t, err)

	// The bracket floor is lifted to the loan amount, so every probe has
	// a non-negative down payment equal to price minus loan.
	assert.True(t, res.BreakevenPrice.GreaterThanOrEqual(loan),
		"Price %s should never fall below the fixed loan", res.BreakevenPrice)
	assert.True(t, res.DownPayment.Equal(res.BreakevenPrice.Sub(loan)),
		"Expected down payment %s, got %s", res.BreakevenPrice.Sub(loan), res.DownPayment)

	wantLtv := loan.Div(res.BreakevenPrice).Mul(decimal.NewFromInt(100))
	assert.True(t, res.LtvPercent.Equal(wantLtv),
		"Expected LTV %s, got %s", wantLtv, res.LtvPercent)
}

func TestFindBreakevenPrice_FirstProbeWithinTolerance(t *testing.T) {
	engine := NewEngine()

	opts := domain.BreakEvenOptions{
		MinPrice:  decimal.NewFromInt(500000),
		MaxPrice:  decimal.NewFromInt(5000000),
		Tolerance: decimal.New(1, 15),
	}

	res, err := engine.FindBreakevenPrice(baselineParams(), opts)
	require.NoError(t, err)

	assert.True(t, res.BreakevenFound)
	assert.Equal(t, 1, res.Iterations, "An enormous tolerance accepts the midpoint probe")
	assert.True(t, res.BreakevenPrice.Equal(decimal.NewFromInt(2750000)),
		"Expected the bracket midpoint, got %s", res.BreakevenPrice)
}

func TestFindBreakevenPrice_DegenerateBracketNotFound(t *testing.T) {
	engine := NewEngine()

	// One year of a fully cancelled purchase side: zero rates, zero
	// costs, zero amortization. The purchase total is exactly zero and
	// the rental total is one year of rent, so the result is 1200 at any
	// probe and the degenerate bracket cannot converge.
	params := domain.Parameters{
		PurchasePrice: decimal.NewFromInt(1000000),
		TermYears:     1,
		MonthlyRent:   decimal.NewFromInt(100),
	}

	price := decimal.NewFromInt(1000000)
	opts := domain.BreakEvenOptions{
		MinPrice:  price,
		MaxPrice:  price,
		Tolerance: decimal.NewFromFloat(0.5),
	}

	res, err := engine.FindBreakevenPrice(params, opts)
	require.NoError(t, err)

	assert.False(t, res.BreakevenFound)
	assert.Equal(t, 1, res.Iterations, "A collapsed bracket stops after the first probe")
	assert.True(t, res.BreakevenPrice.Equal(price))
	assert.True(t, res.Difference.Equal(decimal.NewFromInt(1200)),
		"Expected difference 1200, got %s", res.Difference)
	assert.Contains(t, res.Message, "no break-even")
}

func TestFindBreakevenPrice_BracketBelowFixedLoanRejected(t *testing.T) {
	engine := NewEngine()

	// Lifting the floor to the fixed loan must not invert the bracket;
	// a loan above the whole bracket is a clean rejection, not a probe
	// failure.
	loan := decimal.NewFromInt(6000000)
	opts := domain.BreakEvenOptions{
		MinPrice:       decimal.NewFromInt(500000),
		MaxPrice:       decimal.NewFromInt(5000000),
		Tolerance:      decimal.NewFromInt(1000),
		MortgageAmount: &loan,
	}

	res, err := engine.FindBreakevenPrice(baselineParams(), opts)
	assert.Nil(t, res)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "maxPrice", verr.Field)
}

func TestFindBreakevenPrice_FloorsBracketAtBaseDownPayment(t *testing.T) {
	engine := NewEngine()

	// Without a fixed loan the base down payment is carried across
	// probes, so prices below it are unsearchable. A bracket starting
	// under it is floored; one entirely under it is rejected.
	opts := domain.BreakEvenOptions{
		MinPrice:  decimal.NewFromInt(100000),
		MaxPrice:  decimal.NewFromInt(5000000),
		Tolerance: decimal.NewFromInt(1000),
	}

	res, err := engine.FindBreakevenPrice(baselineParams(), opts)
	require.NoError(t, err)
	assert.True(t, res.BreakevenPrice.GreaterThanOrEqual(decimal.NewFromInt(400000)),
		"No probe may fall below the carried down payment, got %s", res.BreakevenPrice)

	opts.MaxPrice = decimal.NewFromInt(300000)
	res, err = engine.FindBreakevenPrice(baselineParams(), opts)
	assert.Nil(t, res)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "maxPrice", verr.Field)
}

func TestFindBreakevenPrice_RejectsBadBracket(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name  string
		opts  domain.BreakEvenOptions
		field string
	}{
		{
			name:  "negative min price",
			opts:  domain.BreakEvenOptions{MinPrice: decimal.NewFromInt(-1), MaxPrice: decimal.NewFromInt(1000)},
			field: "minPrice",
		},
		{
			name:  "max below min",
			opts:  domain.BreakEvenOptions{MinPrice: decimal.NewFromInt(2000000), MaxPrice: decimal.NewFromInt(1000000)},
			field: "maxPrice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := engine.FindBreakevenPrice(baselineParams(), tt.opts)
			assert.Nil(t, res)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
