package output

import (
	"encoding/csv"
	"sort"
	"strconv"
	"strings"

	"github.com/rvogel/kaufmiete/internal/domain"
)

// resultColumns is the flattened result bundle in contract order. The
// year ledger is not flattened into sweep rows; LedgerCSV covers it.
var resultColumns = []string{
	"PurchasePrice",
	"DownPayment",
	"MortgageInterestRatePercent",
	"AnnualSupplementalMaintenanceCosts",
	"AmortizationPeriodYears",
	"AnnualAmortizationAmount",
	"TotalRenovations",
	"AdditionalPurchaseExpenses",
	"ImputedRentalValue",
	"PropertyExpenseTaxDeductions",
	"MarginalTaxRatePercent",
	"AnnualPropertyValueIncreasePercent",
	"MonthlyRentDue",
	"AnnualSupplementalCostsRent",
	"InvestmentYieldRatePercent",
	"TermYears",
	"ScenarioMode",
	"PostReform",
	"CompareText",
	"ResultValue",
	"Decision",
	"InterestCosts",
	"SupplementalMaintenanceCosts",
	"AmortizationCosts",
	"RenovationExpenses",
	"AdditionalPurchaseExpensesOutput",
	"GeneralCostOfPurchase",
	"TaxDifferenceToRental",
	"MinusPropertyValue",
	"MortgageAtEndOfRelevantTimePeriod",
	"TotalPurchaseCost",
	"MonthlyInterestPayment",
	"MonthlyAmortizationPayment",
	"MonthlyMaintenanceCosts",
	"TotalMonthlyExpenses",
	"MonthlyRentPayment",
	"MonthlyRentalCosts",
	"MonthlySavingsContribution",
	"TotalMonthlyRentingExpenses",
	"GeneralCostOfRental",
	"ExcludingYieldsOnAssets",
	"ExcludingDownPayment",
	"ExcludingSavingsContributions",
	"TotalRentalCost",
	"PurchaseCostsWithinObservationPeriod",
	"RentalCostsWithinObservationPeriod",
	"MortgageAmount",
}

func resultValues(r *domain.Result) []string {
	return []string{
		r.PurchasePrice.String(),
		r.DownPayment.String(),
		r.MortgageInterestRatePercent.String(),
		r.AnnualSupplementalMaintenanceCosts.String(),
		strconv.Itoa(r.AmortizationPeriodYears),
		r.AnnualAmortizationAmount.String(),
		r.TotalRenovations.String(),
		r.AdditionalPurchaseExpenses.String(),
		r.ImputedRentalValue.String(),
		r.PropertyExpenseTaxDeductions.String(),
		r.MarginalTaxRatePercent.String(),
		r.AnnualPropertyValueIncreasePercent.String(),
		r.MonthlyRentDue.String(),
		r.AnnualSupplementalCostsRent.String(),
		r.InvestmentYieldRatePercent.String(),
		strconv.Itoa(r.TermYears),
		string(r.ScenarioMode),
		strconv.FormatBool(r.PostReform),
		r.CompareText,
		r.ResultValue.String(),
		r.Decision,
		r.InterestCosts.String(),
		r.SupplementalMaintenanceCosts.String(),
		r.AmortizationCosts.String(),
		r.RenovationExpenses.String(),
		r.AdditionalPurchaseExpensesOutput.String(),
		r.GeneralCostOfPurchase.String(),
		r.TaxDifferenceToRental.String(),
		r.MinusPropertyValue.String(),
		r.MortgageAtEndOfRelevantTimePeriod.String(),
		r.TotalPurchaseCost.String(),
		r.MonthlyInterestPayment.String(),
		r.MonthlyAmortizationPayment.String(),
		r.MonthlyMaintenanceCosts.String(),
		r.TotalMonthlyExpenses.String(),
		r.MonthlyRentPayment.String(),
		r.MonthlyRentalCosts.String(),
		r.MonthlySavingsContribution.String(),
		r.TotalMonthlyRentingExpenses.String(),
		r.GeneralCostOfRental.String(),
		r.ExcludingYieldsOnAssets.String(),
		r.ExcludingDownPayment.String(),
		r.ExcludingSavingsContributions.String(),
		r.TotalRentalCost.String(),
		r.PurchaseCostsWithinObservationPeriod.String(),
		r.RentalCostsWithinObservationPeriod.String(),
		r.MortgageAmount.String(),
	}
}

// SweepCSV renders sweep records as CSV: axis columns first (sorted by
// name), then the flattened result bundle. Separator is a single line
// feed; fields containing commas are double-quoted; numbers carry no
// locale formatting.
func SweepCSV(records []domain.SweepRecord) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	axisNames := make([]string, 0, len(records[0].Axes))
	for name := range records[0].Axes {
		axisNames = append(axisNames, name)
	}
	sort.Strings(axisNames)

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := append(append([]string{}, axisNames...), resultColumns...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, rec := range records {
		row := make([]string, 0, len(header))
		for _, name := range axisNames {
			row = append(row, rec.Axes[name].String())
		}
		row = append(row, resultValues(rec.Result)...)
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ResultCSV renders a single result bundle as a one-row CSV.
func ResultCSV(r *domain.Result) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(resultColumns); err != nil {
		return "", err
	}
	if err := w.Write(resultValues(r)); err != nil {
		return "", err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// LedgerCSV renders the year-by-year breakdown, one row per year.
func LedgerCSV(r *domain.Result) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{
		"Year",
		"StartingBalance",
		"AnnualInterest",
		"AnnualAmortization",
		"EndingBalance",
		"AnnualMaintenance",
		"AnnualTaxDifference",
		"AnnualRent",
		"AnnualRentalCosts",
		"RenterContribution",
		"InvestmentGainsThisYear",
		"PortfolioValueEndOfYear",
		"PropertyValueEndOfYear",
		"HomeownerEquityEndOfYear",
		"LtvPercentEndOfYear",
		"TotalPurchaseCostToDate",
		"TotalRentalCostToDate",
		"CumulativeAdvantage",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, row := range r.YearlyBreakdown {
		record := []string{
			strconv.Itoa(row.Year),
			row.StartingBalance.StringFixed(2),
			row.AnnualInterest.StringFixed(2),
			row.AnnualAmortization.StringFixed(2),
			row.EndingBalance.StringFixed(2),
			row.AnnualMaintenance.StringFixed(2),
			row.AnnualTaxDifference.StringFixed(2),
			row.AnnualRent.StringFixed(2),
			row.AnnualRentalCosts.StringFixed(2),
			row.RenterContribution.StringFixed(2),
			row.InvestmentGainsThisYear.StringFixed(2),
			row.PortfolioValueEndOfYear.StringFixed(2),
			row.PropertyValueEndOfYear.StringFixed(2),
			row.HomeownerEquityEndOfYear.StringFixed(2),
			row.LtvPercentEndOfYear.StringFixed(2),
			row.TotalPurchaseCostToDate.StringFixed(2),
			row.TotalRentalCostToDate.StringFixed(2),
			row.CumulativeAdvantage.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
