package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rvogel/kaufmiete/internal/domain"
)

// totals are the aggregate figures of one calculation. TotalPurchaseCost
// and TotalRentalCost are read off the final ledger row's cumulative
// columns, which makes the horizon totals and the per-year series agree
// by construction.
type totals struct {
	InterestCosts                decimal.Decimal
	AmortizationCosts            decimal.Decimal
	SupplementalMaintenanceCosts decimal.Decimal
	PurchaseCostsObservation     decimal.Decimal
	TaxDifferenceToRental        decimal.Decimal
	PropertyValueEnd             decimal.Decimal
	MortgageAtEnd                decimal.Decimal
	TotalPurchaseCost            decimal.Decimal

	GeneralCostOfRental        decimal.Decimal
	YieldsOnAssets             decimal.Decimal
	CumulativeContribPrincipal decimal.Decimal
	TotalRentalCost            decimal.Decimal

	ResultValue decimal.Decimal
	Decision    string
}

// aggregate walks the ledger once more, filling the cumulative
// comparison columns on each row, then derives the scalar totals and
// the verdict from the final row.
func aggregate(np normalised, rows []domain.YearRow, st simState) totals {
	contribCounts := np.ScenarioMode == domain.EqualSavings || np.ScenarioMode == domain.CashflowParity

	cumInterest := decimalZero
	cumAmort := decimalZero
	cumMaint := decimalZero
	cumOwnerNet := decimalZero
	cumRent := decimalZero
	cumSupp := decimalZero
	cumRenterTax := decimalZero
	priorAdvantage := decimalZero

	for i := range rows {
		row := &rows[i]
		cumInterest = cumInterest.Add(row.AnnualInterest)
		cumAmort = cumAmort.Add(row.AnnualAmortization)
		cumMaint = cumMaint.Add(row.AnnualMaintenance)
		cumOwnerNet = cumOwnerNet.Add(row.AnnualTaxDifference)
		cumRent = cumRent.Add(row.AnnualRent)
		cumSupp = cumSupp.Add(row.AnnualRentalCosts)
		cumRenterTax = cumRenterTax.Add(row.InvestmentIncomeTaxThisYear)

		purchaseToDate := np.AdditionalPurchaseCosts.Add(np.TotalRenovations).
			Add(cumInterest).Add(cumMaint).Add(cumAmort).
			Add(cumOwnerNet.Sub(cumRenterTax)).
			Sub(row.PropertyValueEndOfYear).
			Add(row.EndingBalance)

		rentalToDate := cumRent.Add(cumSupp).
			Sub(row.CumulativeInvestmentGains).
			Sub(np.DownPayment)
		if contribCounts {
			rentalToDate = rentalToDate.Sub(row.CumulativeRenterPrincipal)
		}

		row.TotalPurchaseCostToDate = purchaseToDate
		row.TotalRentalCostToDate = rentalToDate
		row.CumulativeAdvantage = rentalToDate.Sub(purchaseToDate)
		if i == 0 {
			row.AdvantageDeltaFromPriorYear = decimalZero
		} else {
			row.AdvantageDeltaFromPriorYear = row.CumulativeAdvantage.Sub(priorAdvantage)
		}
		priorAdvantage = row.CumulativeAdvantage
	}

	final := rows[len(rows)-1]

	t := totals{
		InterestCosts:                st.InterestCosts,
		AmortizationCosts:            st.AmortizationCosts,
		SupplementalMaintenanceCosts: cumMaint,
		TaxDifferenceToRental:        st.TotalOwnerNetTax.Sub(st.CumulativeRenterInvestmentTax),
		PropertyValueEnd:             final.PropertyValueEndOfYear,
		MortgageAtEnd:                final.EndingBalance,
		GeneralCostOfRental:          st.CumulativeRentalCosts,
		YieldsOnAssets:               st.CumulativeInvestmentGains,
		CumulativeContribPrincipal:   st.CumulativeContribPrincipal,
		TotalPurchaseCost:            final.TotalPurchaseCostToDate,
		TotalRentalCost:              final.TotalRentalCostToDate,
		ResultValue:                  final.CumulativeAdvantage,
	}
	t.PurchaseCostsObservation = t.InterestCosts.
		Add(t.SupplementalMaintenanceCosts).
		Add(t.AmortizationCosts).
		Add(np.TotalRenovations).
		Add(np.AdditionalPurchaseCosts)

	switch {
	case t.ResultValue.Abs().LessThan(np.EvenBand):
		t.Decision = domain.DecisionEven
	case t.ResultValue.GreaterThan(decimalZero):
		t.Decision = domain.DecisionBuy
	default:
		t.Decision = domain.DecisionRent
	}

	return t
}
