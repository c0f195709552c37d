package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvogel/kaufmiete/internal/calculation"
	"github.com/rvogel/kaufmiete/internal/domain"
)

func testResult(t *testing.T) *domain.Result {
	t.Helper()

	engine := calculation.NewEngine()
	result, err := engine.Calculate(domain.Parameters{
		PurchasePrice:            decimal.NewFromInt(2000000),
		DownPayment:              decimal.NewFromInt(400000),
		MortgageRate:             decimal.NewFromFloat(0.012),
		TermYears:                10,
		AmortizationYears:        10,
		AnnualAmortization:       decimal.NewFromInt(32000),
		AnnualMaintenanceCosts:   decimal.NewFromInt(20000),
		ImputedRentalValue:       decimal.NewFromInt(42900),
		PropertyTaxDeductions:    decimal.NewFromInt(13000),
		MarginalTaxRate:          decimal.NewFromFloat(0.25),
		PropertyAppreciationRate: decimal.NewFromFloat(0.01),
		MonthlyRent:              decimal.NewFromInt(5500),
		AnnualRentalCosts:        decimal.NewFromInt(2000),
		InvestmentYieldRate:      decimal.NewFromFloat(0.03),
	})
	require.NoError(t, err)
	return result
}

func TestResultCSV(t *testing.T) {
	result := testResult(t)

	out, err := ResultCSV(result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2, "Header plus one data row")

	assert.True(t, strings.HasPrefix(lines[0], "PurchasePrice,DownPayment,MortgageInterestRatePercent,"),
		"Header must lead with the contract columns, got %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[0], ",MortgageAmount"),
		"Header must end with MortgageAmount, got %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2000000,400000,1.2,"),
		"Row must echo the inputs in column order, got %q", lines[1])
	assert.NotContains(t, out, "\r\n", "Line separator is a bare line feed")

	// The compare text contains commas and must arrive quoted.
	assert.Contains(t, out, `"`+result.CompareText+`"`)
}

func TestLedgerCSV(t *testing.T) {
	result := testResult(t)

	out, err := LedgerCSV(result)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 11, "Header plus ten years")

	assert.Equal(t,
		"Year,StartingBalance,AnnualInterest,AnnualAmortization,EndingBalance,"+
			"AnnualMaintenance,AnnualTaxDifference,AnnualRent,AnnualRentalCosts,"+
			"RenterContribution,InvestmentGainsThisYear,PortfolioValueEndOfYear,"+
			"PropertyValueEndOfYear,HomeownerEquityEndOfYear,LtvPercentEndOfYear,"+
			"TotalPurchaseCostToDate,TotalRentalCostToDate,CumulativeAdvantage",
		lines[0])

	year1 := strings.Split(lines[1], ",")
	assert.Equal(t, "1", year1[0])
	assert.Equal(t, "1600000.00", year1[1])
	assert.Equal(t, "19200.00", year1[2])
	assert.Equal(t, "32000.00", year1[3])
	assert.Equal(t, "1568000.00", year1[4])
}

func TestSweepCSV(t *testing.T) {
	engine := calculation.NewEngine()
	base := testResult(t).Params()

	records, err := engine.ParameterSweep(base, map[string]domain.SweepRange{
		"monthlyRent": {
			Min:  decimal.NewFromInt(5000),
			Max:  decimal.NewFromInt(6000),
			Step: decimal.NewFromInt(500),
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	out, err := SweepCSV(records)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "Header plus one row per combination")

	assert.True(t, strings.HasPrefix(lines[0], "monthlyRent,PurchasePrice,"),
		"Axis columns come first, got %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "5000,"))
	assert.True(t, strings.HasPrefix(lines[2], "5500,"))
	assert.True(t, strings.HasPrefix(lines[3], "6000,"))
}

func TestSweepCSV_Empty(t *testing.T) {
	out, err := SweepCSV(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
