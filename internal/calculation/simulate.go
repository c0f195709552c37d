package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rvogel/kaufmiete/internal/domain"
)

// simState carries the running accumulators of the forward pass. The
// aggregator derives the final totals from these, never from an
// independent horizon formula, so ledger and totals agree by
// construction.
type simState struct {
	RemainingBalance decimal.Decimal

	InterestCosts     decimal.Decimal
	AmortizationCosts decimal.Decimal
	TotalOwnerNetTax  decimal.Decimal

	Portfolio                     decimal.Decimal
	CumulativeInvestmentGains     decimal.Decimal
	CumulativeRenterInvestmentTax decimal.Decimal
	CumulativeContribPrincipal    decimal.Decimal
	CumulativeRentalCosts         decimal.Decimal
}

// simulate runs the single forward pass over the horizon, one ledger
// row per year. Both sides of the comparison live in the same loop so
// they cannot drift apart.
func simulate(np normalised) ([]domain.YearRow, simState) {
	st := simState{
		RemainingBalance:              np.MortgageAmount,
		InterestCosts:                 decimalZero,
		AmortizationCosts:             decimalZero,
		TotalOwnerNetTax:              decimalZero,
		Portfolio:                     np.InvestableInitial,
		CumulativeInvestmentGains:     decimalZero,
		CumulativeRenterInvestmentTax: decimalZero,
		CumulativeContribPrincipal:    decimalZero,
		CumulativeRentalCosts:         decimalZero,
	}

	annualRent := np.MonthlyRent.Mul(decimalTwelve)
	rows := make([]domain.YearRow, np.TermYears)

	for y := 1; y <= np.TermYears; y++ {
		row := domain.YearRow{Year: y}
		row.StartingBalance = st.RemainingBalance

		// Mortgage step: declining balance, interest on the balance at
		// the start of the year. The principal payment is clamped to the
		// remaining balance, so the booked amortization is what actually
		// reduced the loan and the balance never goes negative.
		interest := decimalZero
		if st.RemainingBalance.GreaterThan(decimalZero) {
			interest = st.RemainingBalance.Mul(np.MortgageRate)
		}
		amort := decimalZero
		if y <= np.AmortizationYears {
			amort = np.AnnualAmortization
			if amort.GreaterThan(st.RemainingBalance) {
				amort = st.RemainingBalance
			}
		}
		st.InterestCosts = st.InterestCosts.Add(interest)
		st.AmortizationCosts = st.AmortizationCosts.Add(amort)
		st.RemainingBalance = st.RemainingBalance.Sub(amort)

		row.AnnualInterest = interest
		row.AnnualAmortization = amort
		row.EndingBalance = st.RemainingBalance
		row.CumulativeAmortizationToDate = st.AmortizationCosts

		// Owner tax step. The reformed regime removes the imputed rental
		// value together with its counterpart deductions.
		taxImputedRent := decimalZero
		taxSavingsInterest := decimalZero
		taxSavingsPropertyExpenses := decimalZero
		if !np.PostReform {
			taxImputedRent = np.ImputedRentalValue.Mul(np.MarginalTaxRate)
			taxSavingsInterest = interest.Mul(np.MarginalTaxRate)
			taxSavingsPropertyExpenses = np.PropertyTaxDeductions.Mul(np.MarginalTaxRate)
		}
		ownerNetTax := taxImputedRent.Sub(taxSavingsInterest).Sub(taxSavingsPropertyExpenses)
		st.TotalOwnerNetTax = st.TotalOwnerNetTax.Add(ownerNetTax)

		row.TaxImputedRent = taxImputedRent
		row.TaxSavingsInterest = taxSavingsInterest
		row.TaxSavingsPropertyExpenses = taxSavingsPropertyExpenses
		row.AnnualTaxDifference = ownerNetTax

		// Renter contribution step, mode dependent. Cashflow parity may
		// be negative: the renter withdraws from the portfolio.
		contrib := decimalZero
		switch np.ScenarioMode {
		case domain.EqualSavings:
			if y <= np.ContributionYears {
				contrib = np.AnnualAmortization
			}
		case domain.CashflowParity:
			ownerCash := interest.Add(amort).Add(np.AnnualMaintenanceCosts)
			renterCash := annualRent.Add(np.AnnualRentalCosts)
			contrib = ownerCash.Sub(renterCash)
		}

		// Investment step: yield on the start-of-year balance, the
		// contribution booked at end of year. Tax on gains is tracked
		// separately rather than withdrawn from the portfolio.
		gains := st.Portfolio.Mul(np.InvestmentYieldRate)
		renterTax := gains.Mul(np.MarginalTaxRate)
		st.CumulativeInvestmentGains = st.CumulativeInvestmentGains.Add(gains)
		st.CumulativeRenterInvestmentTax = st.CumulativeRenterInvestmentTax.Add(renterTax)
		st.Portfolio = st.Portfolio.Add(gains).Add(contrib)
		st.CumulativeContribPrincipal = st.CumulativeContribPrincipal.Add(contrib)

		row.RenterContribution = contrib
		row.CumulativeRenterPrincipal = st.CumulativeContribPrincipal
		row.InvestmentGainsThisYear = gains
		row.InvestmentIncomeTaxThisYear = renterTax
		row.CumulativeInvestmentGains = st.CumulativeInvestmentGains
		row.PortfolioValueEndOfYear = st.Portfolio

		// Rental cash step.
		st.CumulativeRentalCosts = st.CumulativeRentalCosts.Add(annualRent).Add(np.AnnualRentalCosts)
		row.AnnualRent = annualRent
		row.AnnualRentalCosts = np.AnnualRentalCosts
		row.AnnualMaintenance = np.AnnualMaintenanceCosts

		// Property snapshot.
		propertyValue := compound(np.PurchasePrice, np.PropertyAppreciationRate, y)
		row.PropertyValueEndOfYear = propertyValue
		row.HomeownerEquityEndOfYear = propertyValue.Sub(st.RemainingBalance)
		if propertyValue.GreaterThan(decimalZero) {
			row.LtvPercentEndOfYear = st.RemainingBalance.Div(propertyValue).Mul(decimalHundred)
		} else {
			row.LtvPercentEndOfYear = decimalZero
		}

		rows[y-1] = row
	}

	return rows, st
}
