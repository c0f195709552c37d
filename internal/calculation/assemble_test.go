package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvogel/kaufmiete/internal/domain"
)

func TestAssemble_EchoesPercentShapedInputs(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Calculate(baselineParams())
	require.NoError(t, err)

	assert.True(t, result.MortgageInterestRatePercent.Equal(decimal.NewFromFloat(1.2)),
		"Expected 1.2, got %s", result.MortgageInterestRatePercent)
	assert.True(t, result.MarginalTaxRatePercent.Equal(decimal.NewFromInt(25)),
		"Expected 25, got %s", result.MarginalTaxRatePercent)
	assert.True(t, result.AnnualPropertyValueIncreasePercent.Equal(decimal.NewFromInt(1)),
		"Expected 1, got %s", result.AnnualPropertyValueIncreasePercent)
	assert.True(t, result.InvestmentYieldRatePercent.Equal(decimal.NewFromInt(3)),
		"Expected 3, got %s", result.InvestmentYieldRatePercent)
	assert.True(t, result.MortgageAmount.Equal(decimal.NewFromInt(1600000)))
	assert.Equal(t, domain.EqualConsumption, result.ScenarioMode)
}

func TestAssemble_MonthlySummaryRounding(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Calculate(baselineParams())
	require.NoError(t, err)

	// 1.6M * 1.2% / 12 is exact; 32000/12 and 20000/12 round half up.
	assert.True(t, result.MonthlyInterestPayment.Equal(decimal.NewFromInt(1600)),
		"Expected 1600, got %s", result.MonthlyInterestPayment)
	assert.True(t, result.MonthlyAmortizationPayment.Equal(decimal.NewFromInt(2667)),
		"Expected 2667, got %s", result.MonthlyAmortizationPayment)
	assert.True(t, result.MonthlyMaintenanceCosts.Equal(decimal.NewFromInt(1667)),
		"Expected 1667, got %s", result.MonthlyMaintenanceCosts)
	assert.True(t, result.TotalMonthlyExpenses.Equal(decimal.NewFromInt(5934)),
		"Expected 5934, got %s", result.TotalMonthlyExpenses)

	assert.True(t, result.MonthlyRentPayment.Equal(decimal.NewFromInt(5500)))
	assert.True(t, result.MonthlyRentalCosts.Equal(decimal.NewFromInt(167)),
		"Expected 167, got %s", result.MonthlyRentalCosts)
	assert.True(t, result.MonthlySavingsContribution.Equal(decimal.Zero),
		"Baseline mode has no savings stream, got %s", result.MonthlySavingsContribution)
	assert.True(t, result.TotalMonthlyRentingExpenses.Equal(decimal.NewFromInt(5667)),
		"Expected 5667, got %s", result.TotalMonthlyRentingExpenses)
}

func TestAssemble_LedgerIsNotRounded(t *testing.T) {
	engine := NewEngine()

	// An amortization that does not divide the years evenly leaves
	// fractional interest; it must appear unrounded in the ledger.
	params := baselineParams()
	params.AnnualAmortization = decimal.NewFromFloat(32000.5)

	result, err := engine.Calculate(params)
	require.NoError(t, err)

	year2 := result.YearlyBreakdown[1]
	want := decimal.NewFromFloat(1567999.5).Mul(decimal.NewFromFloat(0.012))
	assert.True(t, year2.AnnualInterest.Equal(want),
		"Expected %s, got %s", want, year2.AnnualInterest)
}

func TestAssemble_ModeDependentDisplayFields(t *testing.T) {
	engine := NewEngine()

	t.Run("equal consumption zeroes the adjustments", func(t *testing.T) {
		result, err := engine.Calculate(baselineParams())
		require.NoError(t, err)
		assert.True(t, result.ExcludingYieldsOnAssets.Equal(decimal.Zero))
		assert.True(t, result.ExcludingSavingsContributions.Equal(decimal.Zero))
	})

	t.Run("equal savings shows the negated streams", func(t *testing.T) {
		params := baselineParams()
		params.ScenarioMode = domain.EqualSavings
		result, err := engine.Calculate(params)
		require.NoError(t, err)

		final := result.YearlyBreakdown[len(result.YearlyBreakdown)-1]
		assert.True(t, result.ExcludingYieldsOnAssets.Equal(final.CumulativeInvestmentGains.Neg()),
			"Expected %s, got %s", final.CumulativeInvestmentGains.Neg(), result.ExcludingYieldsOnAssets)
		assert.True(t, result.ExcludingSavingsContributions.Equal(decimal.NewFromInt(-320000)))
		// 32000 / 12 rounded.
		assert.True(t, result.MonthlySavingsContribution.Equal(decimal.NewFromInt(2667)),
			"Expected 2667, got %s", result.MonthlySavingsContribution)
	})

	t.Run("cashflow parity shows the first-year cash gap", func(t *testing.T) {
		params := baselineParams()
		params.ScenarioMode = domain.CashflowParity
		result, err := engine.Calculate(params)
		require.NoError(t, err)

		// (19200 + 32000 + 20000) - (66000 + 2000) = 3200 per year.
		assert.True(t, result.MonthlySavingsContribution.Equal(decimal.NewFromInt(267)),
			"Expected 267, got %s", result.MonthlySavingsContribution)
	})
}

func TestCompareText(t *testing.T) {
	tests := []struct {
		name     string
		decision string
		value    decimal.Decimal
		band     decimal.Decimal
		want     string
	}{
		{
			name:     "even quotes the band",
			decision: domain.DecisionEven,
			value:    decimal.NewFromInt(1200),
			band:     decimal.NewFromInt(5000),
			want:     "Buying and renting are effectively even (within CHF 5,000) over the relevant time frame.",
		},
		{
			name:     "buy quotes the advantage",
			decision: domain.DecisionBuy,
			value:    decimal.NewFromFloat(123456.789),
			band:     decimal.NewFromInt(5000),
			want:     "Buying your home will work out CHF 123,456.79 cheaper than renting over the relevant time frame.",
		},
		{
			name:     "rent quotes the absolute advantage",
			decision: domain.DecisionRent,
			value:    decimal.NewFromInt(-98765),
			band:     decimal.NewFromInt(5000),
			want:     "Renting is CHF 98,765.00 cheaper than buying over the relevant time frame.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareText(tt.decision, tt.value, tt.band))
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		value  decimal.Decimal
		places int32
		want   string
	}{
		{decimal.Zero, 0, "0"},
		{decimal.NewFromInt(123), 0, "123"},
		{decimal.NewFromInt(1000), 0, "1,000"},
		{decimal.NewFromInt(999999), 2, "999,999.00"},
		{decimal.NewFromFloat(1234567.891), 2, "1,234,567.89"},
		{decimal.NewFromInt(-4500), 0, "-4,500"},
		{decimal.New(1, 9), 0, "1,000,000,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, groupThousands(tt.value, tt.places),
			"groupThousands(%s, %d)", tt.value, tt.places)
	}
}
