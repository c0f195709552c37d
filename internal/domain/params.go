package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioMode selects how the renter side of the comparison is funded.
type ScenarioMode string

const (
	// EqualConsumption is the baseline mode: the renter only invests the
	// capital that the buyer ties up at purchase time.
	EqualConsumption ScenarioMode = "EQUAL_CONSUMPTION"
	// CashflowParity has the renter invest (or withdraw) the exact annual
	// cash difference between owning and renting.
	CashflowParity ScenarioMode = "CASHFLOW_PARITY"
	// EqualSavings has the renter invest a stream equal to the owner's
	// amortization payments.
	EqualSavings ScenarioMode = "EQUAL_SAVINGS"
)

// Valid reports whether the mode is one of the three defined modes.
func (m ScenarioMode) Valid() bool {
	switch m {
	case EqualConsumption, CashflowParity, EqualSavings:
		return true
	}
	return false
}

// Parameters is the immutable input record for one calculation.
// All rates are unit fractions (0.012 means 1.2% p.a.); all money
// amounts are in a single abstract currency unit.
type Parameters struct {
	PurchasePrice            decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	DownPayment              decimal.Decimal `yaml:"down_payment" json:"down_payment"`
	MortgageRate             decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`
	TermYears                int             `yaml:"term_years" json:"term_years"`
	AmortizationYears        int             `yaml:"amortization_years" json:"amortization_years"`
	AnnualAmortization       decimal.Decimal `yaml:"annual_amortization" json:"annual_amortization"`
	AnnualMaintenanceCosts   decimal.Decimal `yaml:"annual_maintenance_costs" json:"annual_maintenance_costs"`
	TotalRenovations         decimal.Decimal `yaml:"total_renovations" json:"total_renovations"`
	AdditionalPurchaseCosts  decimal.Decimal `yaml:"additional_purchase_costs" json:"additional_purchase_costs"`
	ImputedRentalValue       decimal.Decimal `yaml:"imputed_rental_value" json:"imputed_rental_value"`
	PropertyTaxDeductions    decimal.Decimal `yaml:"property_tax_deductions" json:"property_tax_deductions"`
	MarginalTaxRate          decimal.Decimal `yaml:"marginal_tax_rate" json:"marginal_tax_rate"`
	PropertyAppreciationRate decimal.Decimal `yaml:"property_appreciation_rate" json:"property_appreciation_rate"`
	MonthlyRent              decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	AnnualRentalCosts        decimal.Decimal `yaml:"annual_rental_costs" json:"annual_rental_costs"`
	InvestmentYieldRate      decimal.Decimal `yaml:"investment_yield_rate" json:"investment_yield_rate"`
	ScenarioMode             ScenarioMode    `yaml:"scenario_mode" json:"scenario_mode"`
	PostReform               bool            `yaml:"post_reform" json:"post_reform"`

	// EvenBand is the symmetric tolerance around zero within which the
	// verdict is EVEN. Zero or negative selects the default of 5 000.
	EvenBand decimal.Decimal `yaml:"even_band,omitempty" json:"even_band,omitempty"`
}
