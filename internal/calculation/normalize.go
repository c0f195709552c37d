package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rvogel/kaufmiete/internal/domain"
)

// ValidationError reports an input field outside the valid domain. It
// is the only error the engine produces; everything downstream of the
// normaliser is a total function.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

var decimalMinusOne = decimal.NewFromInt(-1)

// normalised is the validated parameter record plus the auxiliary
// scalars the simulator needs. No rounding happens here; rounding is
// display-only and belongs to the result assembler.
type normalised struct {
	domain.Parameters

	MortgageAmount    decimal.Decimal
	ContributionYears int
	InvestableInitial decimal.Decimal
}

// normalise fills defaults, validates ranges and derives the auxiliary
// scalars. Rates must already arrive as unit fractions; the normaliser
// only checks them.
func normalise(p domain.Parameters) (normalised, error) {
	if p.ScenarioMode == "" {
		p.ScenarioMode = domain.EqualConsumption
	}
	if !p.ScenarioMode.Valid() {
		return normalised{}, &ValidationError{Field: "scenarioMode", Reason: fmt.Sprintf("unknown mode %q", p.ScenarioMode)}
	}
	if p.EvenBand.LessThanOrEqual(decimalZero) {
		p.EvenBand = DefaultEvenBand
	}

	moneyFields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"purchasePrice", p.PurchasePrice},
		{"downPayment", p.DownPayment},
		{"annualAmortization", p.AnnualAmortization},
		{"annualMaintenanceCosts", p.AnnualMaintenanceCosts},
		{"totalRenovations", p.TotalRenovations},
		{"additionalPurchaseCosts", p.AdditionalPurchaseCosts},
		{"imputedRentalValue", p.ImputedRentalValue},
		{"propertyTaxDeductions", p.PropertyTaxDeductions},
		{"monthlyRent", p.MonthlyRent},
		{"annualRentalCosts", p.AnnualRentalCosts},
	}
	for _, f := range moneyFields {
		if f.value.LessThan(decimalZero) {
			return normalised{}, &ValidationError{Field: f.name, Reason: "money amount must not be negative"}
		}
	}

	if p.TermYears < 1 {
		return normalised{}, &ValidationError{Field: "termYears", Reason: "must be at least 1"}
	}
	if p.AmortizationYears < 0 {
		return normalised{}, &ValidationError{Field: "amortizationYears", Reason: "must not be negative"}
	}
	if p.MortgageRate.LessThan(decimalZero) {
		return normalised{}, &ValidationError{Field: "mortgageRate", Reason: "must not be negative"}
	}
	if p.MarginalTaxRate.LessThan(decimalZero) || p.MarginalTaxRate.GreaterThanOrEqual(decimalOne) {
		return normalised{}, &ValidationError{Field: "marginalTaxRate", Reason: "must be a unit fraction in [0, 1)"}
	}
	if p.PropertyAppreciationRate.LessThan(decimalMinusOne) {
		return normalised{}, &ValidationError{Field: "propertyAppreciationRate", Reason: "rate below -1"}
	}
	if p.InvestmentYieldRate.LessThan(decimalMinusOne) {
		return normalised{}, &ValidationError{Field: "investmentYieldRate", Reason: "rate below -1"}
	}
	if p.DownPayment.GreaterThan(p.PurchasePrice) {
		return normalised{}, &ValidationError{Field: "downPayment", Reason: "exceeds purchase price"}
	}

	np := normalised{Parameters: p}
	np.MortgageAmount = p.PurchasePrice.Sub(p.DownPayment)

	np.ContributionYears = p.AmortizationYears
	if p.TermYears < np.ContributionYears {
		np.ContributionYears = p.TermYears
	}

	np.InvestableInitial = p.DownPayment.Add(p.AdditionalPurchaseCosts)
	if p.ScenarioMode == domain.CashflowParity {
		np.InvestableInitial = np.InvestableInitial.Add(p.TotalRenovations)
	}

	return np, nil
}

// Validate checks a parameter record without running the calculation.
// Collaborators (the config loader, the form surface) use this to
// surface field errors early.
func Validate(p domain.Parameters) error {
	_, err := normalise(p)
	return err
}
