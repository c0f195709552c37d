package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rvogel/kaufmiete/internal/domain"
)

// FormatCurrency formats a decimal as a currency amount.
func FormatCurrency(amount decimal.Decimal) string {
	return "CHF " + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// JSONReport marshals the full result bundle with indentation.
func JSONReport(r *domain.Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ConsoleReport renders a result bundle as a console report: the cost
// blocks of both sides, the monthly summary and the year ledger.
func ConsoleReport(r *domain.Result) string {
	var sb strings.Builder

	sb.WriteString("BUY VS RENT ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Horizon: %d years   Scenario: %s   Post-reform: %v\n",
		r.TermYears, r.ScenarioMode, r.PostReform))
	sb.WriteString(fmt.Sprintf("Purchase price: %s   Down payment: %s   Mortgage: %s at %s\n",
		FormatCurrency(r.PurchasePrice), FormatCurrency(r.DownPayment),
		FormatCurrency(r.MortgageAmount), FormatPercentage(r.MortgageInterestRatePercent)))
	sb.WriteString("\n")

	labelWidth := 38
	numWidth := 18

	sb.WriteString("COST OF PURCHASE\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	writeLine(&sb, labelWidth, numWidth, "Interest costs", r.InterestCosts)
	writeLine(&sb, labelWidth, numWidth, "Maintenance and running costs", r.SupplementalMaintenanceCosts)
	writeLine(&sb, labelWidth, numWidth, "Amortization", r.AmortizationCosts)
	writeLine(&sb, labelWidth, numWidth, "Renovations", r.RenovationExpenses)
	writeLine(&sb, labelWidth, numWidth, "Additional purchase expenses", r.AdditionalPurchaseExpensesOutput)
	writeLine(&sb, labelWidth, numWidth, "Tax difference to rental", r.TaxDifferenceToRental)
	writeLine(&sb, labelWidth, numWidth, "Minus property value at horizon", r.MinusPropertyValue)
	writeLine(&sb, labelWidth, numWidth, "Mortgage at end of period", r.MortgageAtEndOfRelevantTimePeriod)
	writeLine(&sb, labelWidth, numWidth, "TOTAL PURCHASE COST", r.TotalPurchaseCost)
	sb.WriteString("\n")

	sb.WriteString("COST OF RENTAL\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	writeLine(&sb, labelWidth, numWidth, "Rent and supplemental costs", r.GeneralCostOfRental)
	writeLine(&sb, labelWidth, numWidth, "Excluding yields on assets", r.ExcludingYieldsOnAssets)
	writeLine(&sb, labelWidth, numWidth, "Excluding down payment", r.ExcludingDownPayment)
	writeLine(&sb, labelWidth, numWidth, "Excluding savings contributions", r.ExcludingSavingsContributions)
	writeLine(&sb, labelWidth, numWidth, "TOTAL RENTAL COST", r.TotalRentalCost)
	sb.WriteString("\n")

	sb.WriteString("MONTHLY SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	writeLine(&sb, labelWidth, numWidth, "Interest payment", r.MonthlyInterestPayment)
	writeLine(&sb, labelWidth, numWidth, "Amortization payment", r.MonthlyAmortizationPayment)
	writeLine(&sb, labelWidth, numWidth, "Maintenance", r.MonthlyMaintenanceCosts)
	writeLine(&sb, labelWidth, numWidth, "Total monthly owner expenses", r.TotalMonthlyExpenses)
	writeLine(&sb, labelWidth, numWidth, "Rent payment", r.MonthlyRentPayment)
	writeLine(&sb, labelWidth, numWidth, "Rental supplemental costs", r.MonthlyRentalCosts)
	writeLine(&sb, labelWidth, numWidth, "Savings contribution", r.MonthlySavingsContribution)
	writeLine(&sb, labelWidth, numWidth, "Total monthly renter expenses", r.TotalMonthlyRentingExpenses)
	sb.WriteString("\n")

	sb.WriteString("YEARLY BREAKDOWN\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%4s %*s %*s %*s %*s %*s\n",
		"Year",
		numWidth, "Mortgage End",
		numWidth, "Interest",
		numWidth, "Property Value",
		numWidth, "Portfolio",
		numWidth, "Advantage"))
	for _, row := range r.YearlyBreakdown {
		sb.WriteString(fmt.Sprintf("%4d %*s %*s %*s %*s %*s\n",
			row.Year,
			numWidth, row.EndingBalance.StringFixed(0),
			numWidth, row.AnnualInterest.StringFixed(0),
			numWidth, row.PropertyValueEndOfYear.StringFixed(0),
			numWidth, row.PortfolioValueEndOfYear.StringFixed(0),
			numWidth, row.CumulativeAdvantage.StringFixed(0)))
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString(fmt.Sprintf("Verdict: %s\n%s\n", r.Decision, r.CompareText))

	return sb.String()
}

func writeLine(sb *strings.Builder, labelWidth, numWidth int, label string, value decimal.Decimal) {
	sb.WriteString(fmt.Sprintf("%-*s %*s\n", labelWidth, label, numWidth, value.StringFixed(2)))
}

// BreakEvenReport renders a break-even search result.
func BreakEvenReport(be *domain.BreakEvenResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN PURCHASE PRICE\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	if be.BreakevenFound {
		sb.WriteString(fmt.Sprintf("Break-even price:  %s\n", FormatCurrency(be.BreakevenPrice)))
	} else {
		sb.WriteString("No break-even found within tolerance; closest probe:\n")
		sb.WriteString(fmt.Sprintf("Closest price:     %s\n", FormatCurrency(be.BreakevenPrice)))
	}
	sb.WriteString(fmt.Sprintf("Down payment:      %s\n", FormatCurrency(be.DownPayment)))
	sb.WriteString(fmt.Sprintf("Loan-to-value:     %s\n", FormatPercentage(be.LtvPercent)))
	sb.WriteString(fmt.Sprintf("Result value:      %s\n", FormatCurrency(be.ResultValue)))
	sb.WriteString(fmt.Sprintf("Decision:          %s\n", be.Decision))
	sb.WriteString(fmt.Sprintf("Iterations:        %d\n", be.Iterations))
	sb.WriteString(be.Message + "\n")

	return sb.String()
}
