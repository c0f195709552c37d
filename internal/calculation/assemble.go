package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rvogel/kaufmiete/internal/domain"
)

// Compare-text templates. Wording is part of the external contract and
// must stay bit-exact.
const (
	compareTextEven = "Buying and renting are effectively even (within CHF %s) over the relevant time frame."
	compareTextBuy  = "Buying your home will work out CHF %s cheaper than renting over the relevant time frame."
	compareTextRent = "Renting is CHF %s cheaper than buying over the relevant time frame."
)

// assemble flattens the normalised inputs, ledger and totals into the
// result bundle. This is the only place where rounding happens, and it
// touches only the monthly display fields.
func assemble(np normalised, rows []domain.YearRow, t totals) *domain.Result {
	r := &domain.Result{
		PurchasePrice:                      np.PurchasePrice,
		DownPayment:                        np.DownPayment,
		MortgageInterestRatePercent:        np.MortgageRate.Mul(decimalHundred),
		AnnualSupplementalMaintenanceCosts: np.AnnualMaintenanceCosts,
		AmortizationPeriodYears:            np.AmortizationYears,
		AnnualAmortizationAmount:           np.AnnualAmortization,
		TotalRenovations:                   np.TotalRenovations,
		AdditionalPurchaseExpenses:         np.AdditionalPurchaseCosts,
		ImputedRentalValue:                 np.ImputedRentalValue,
		PropertyExpenseTaxDeductions:       np.PropertyTaxDeductions,
		MarginalTaxRatePercent:             np.MarginalTaxRate.Mul(decimalHundred),
		AnnualPropertyValueIncreasePercent: np.PropertyAppreciationRate.Mul(decimalHundred),
		MonthlyRentDue:                     np.MonthlyRent,
		AnnualSupplementalCostsRent:        np.AnnualRentalCosts,
		InvestmentYieldRatePercent:         np.InvestmentYieldRate.Mul(decimalHundred),
		TermYears:                          np.TermYears,
		ScenarioMode:                       np.ScenarioMode,
		PostReform:                         np.PostReform,
		EvenBand:                           np.EvenBand,

		ResultValue: t.ResultValue,
		Decision:    t.Decision,
		CompareText: compareText(t.Decision, t.ResultValue, np.EvenBand),

		InterestCosts:                     t.InterestCosts,
		SupplementalMaintenanceCosts:      t.SupplementalMaintenanceCosts,
		AmortizationCosts:                 t.AmortizationCosts,
		RenovationExpenses:                np.TotalRenovations,
		AdditionalPurchaseExpensesOutput:  np.AdditionalPurchaseCosts,
		GeneralCostOfPurchase:             t.PurchaseCostsObservation,
		TaxDifferenceToRental:             t.TaxDifferenceToRental,
		MinusPropertyValue:                t.PropertyValueEnd.Neg(),
		MortgageAtEndOfRelevantTimePeriod: t.MortgageAtEnd,
		TotalPurchaseCost:                 t.TotalPurchaseCost,

		GeneralCostOfRental:  t.GeneralCostOfRental,
		ExcludingDownPayment: np.DownPayment.Neg(),
		TotalRentalCost:      t.TotalRentalCost,

		PurchaseCostsWithinObservationPeriod: t.PurchaseCostsObservation,
		RentalCostsWithinObservationPeriod:   t.GeneralCostOfRental,
		MortgageAmount:                       np.MortgageAmount,

		YearlyBreakdown: rows,
	}

	// Display contract: the yield and savings adjustments are shown as
	// zero in the baseline mode even though the total already nets the
	// yields out.
	if np.ScenarioMode != domain.EqualConsumption {
		r.ExcludingYieldsOnAssets = t.YieldsOnAssets.Neg()
		r.ExcludingSavingsContributions = t.CumulativeContribPrincipal.Neg()
	} else {
		r.ExcludingYieldsOnAssets = decimalZero
		r.ExcludingSavingsContributions = decimalZero
	}

	// Monthly summary, rounded to whole currency units.
	r.MonthlyInterestPayment = np.MortgageAmount.Mul(np.MortgageRate).Div(decimalTwelve).Round(0)
	r.MonthlyAmortizationPayment = np.AnnualAmortization.Div(decimalTwelve).Round(0)
	r.MonthlyMaintenanceCosts = np.AnnualMaintenanceCosts.Div(decimalTwelve).Round(0)
	r.TotalMonthlyExpenses = r.MonthlyInterestPayment.
		Add(r.MonthlyAmortizationPayment).
		Add(r.MonthlyMaintenanceCosts)

	r.MonthlyRentPayment = np.MonthlyRent.Round(0)
	r.MonthlyRentalCosts = np.AnnualRentalCosts.Div(decimalTwelve).Round(0)
	r.MonthlySavingsContribution = monthlySavingsContribution(np)
	r.TotalMonthlyRentingExpenses = r.MonthlyRentPayment.
		Add(r.MonthlyRentalCosts).
		Add(r.MonthlySavingsContribution)

	return r
}

// monthlySavingsContribution is the display-only monthly figure of what
// the renter sets aside. Cashflow parity shows the signed first-year
// buyer-minus-renter cash difference.
func monthlySavingsContribution(np normalised) decimal.Decimal {
	switch np.ScenarioMode {
	case domain.EqualSavings:
		return np.AnnualAmortization.Div(decimalTwelve).Round(0)
	case domain.CashflowParity:
		firstYearAmort := decimalZero
		if np.AmortizationYears >= 1 {
			firstYearAmort = np.AnnualAmortization
			if firstYearAmort.GreaterThan(np.MortgageAmount) {
				firstYearAmort = np.MortgageAmount
			}
		}
		ownerCash := np.MortgageAmount.Mul(np.MortgageRate).
			Add(firstYearAmort).
			Add(np.AnnualMaintenanceCosts)
		renterCash := np.MonthlyRent.Mul(decimalTwelve).Add(np.AnnualRentalCosts)
		return ownerCash.Sub(renterCash).Div(decimalTwelve).Round(0)
	default:
		return decimalZero
	}
}

func compareText(decision string, resultValue, band decimal.Decimal) string {
	switch decision {
	case domain.DecisionEven:
		return fmt.Sprintf(compareTextEven, groupThousands(band, 0))
	case domain.DecisionBuy:
		return fmt.Sprintf(compareTextBuy, groupThousands(resultValue.Abs(), 2))
	default:
		return fmt.Sprintf(compareTextRent, groupThousands(resultValue.Abs(), 2))
	}
}

// groupThousands renders a non-negative amount with comma thousands
// separators and the given number of decimal places.
func groupThousands(d decimal.Decimal, places int32) string {
	s := d.Abs().StringFixed(places)
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var sb strings.Builder
	if d.IsNegative() {
		sb.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
		if len(intPart) > lead {
			sb.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		sb.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			sb.WriteByte(',')
		}
	}
	sb.WriteString(fracPart)
	return sb.String()
}
