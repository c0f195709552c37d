package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rvogel/kaufmiete/internal/calculation"
	"github.com/rvogel/kaufmiete/internal/domain"
)

// ParameterFile is the on-disk shape of a calculation input. Rates are
// percent-shaped here because that is how people write them in a file;
// the loader is the single point converting them to the unit fractions
// the engine works with.
type ParameterFile struct {
	PurchasePrice              decimal.Decimal `yaml:"purchase_price"`
	DownPayment                decimal.Decimal `yaml:"down_payment"`
	MortgageRatePercent        decimal.Decimal `yaml:"mortgage_rate_percent"`
	TermYears                  int             `yaml:"term_years"`
	AmortizationYears          int             `yaml:"amortization_years"`
	AnnualAmortization         decimal.Decimal `yaml:"annual_amortization"`
	AnnualMaintenanceCosts     decimal.Decimal `yaml:"annual_maintenance_costs"`
	TotalRenovations           decimal.Decimal `yaml:"total_renovations"`
	AdditionalPurchaseCosts    decimal.Decimal `yaml:"additional_purchase_costs"`
	ImputedRentalValue         decimal.Decimal `yaml:"imputed_rental_value"`
	PropertyTaxDeductions      decimal.Decimal `yaml:"property_tax_deductions"`
	MarginalTaxRatePercent     decimal.Decimal `yaml:"marginal_tax_rate_percent"`
	PropertyAppreciationPct    decimal.Decimal `yaml:"property_appreciation_percent"`
	MonthlyRent                decimal.Decimal `yaml:"monthly_rent"`
	AnnualRentalCosts          decimal.Decimal `yaml:"annual_rental_costs"`
	InvestmentYieldRatePercent decimal.Decimal `yaml:"investment_yield_percent"`
	ScenarioMode               string          `yaml:"scenario_mode"`
	PostReform                 bool            `yaml:"post_reform"`
	EvenBand                   decimal.Decimal `yaml:"even_band"`
}

var decimalHundred = decimal.NewFromInt(100)

// Parameters converts the file shape to the engine's unit-fraction
// record.
func (pf *ParameterFile) Parameters() domain.Parameters {
	return domain.Parameters{
		PurchasePrice:            pf.PurchasePrice,
		DownPayment:              pf.DownPayment,
		MortgageRate:             pf.MortgageRatePercent.Div(decimalHundred),
		TermYears:                pf.TermYears,
		AmortizationYears:        pf.AmortizationYears,
		AnnualAmortization:       pf.AnnualAmortization,
		AnnualMaintenanceCosts:   pf.AnnualMaintenanceCosts,
		TotalRenovations:         pf.TotalRenovations,
		AdditionalPurchaseCosts:  pf.AdditionalPurchaseCosts,
		ImputedRentalValue:       pf.ImputedRentalValue,
		PropertyTaxDeductions:    pf.PropertyTaxDeductions,
		MarginalTaxRate:          pf.MarginalTaxRatePercent.Div(decimalHundred),
		PropertyAppreciationRate: pf.PropertyAppreciationPct.Div(decimalHundred),
		MonthlyRent:              pf.MonthlyRent,
		AnnualRentalCosts:        pf.AnnualRentalCosts,
		InvestmentYieldRate:      pf.InvestmentYieldRatePercent.Div(decimalHundred),
		ScenarioMode:             domain.ScenarioMode(pf.ScenarioMode),
		PostReform:               pf.PostReform,
		EvenBand:                 pf.EvenBand,
	}
}

// InputParser handles parsing of parameter files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a parameter record from a YAML file and validates
// it against the engine's input domain.
func (ip *InputParser) LoadFromFile(filename string) (domain.Parameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.Parameters{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML parameter document.
func (ip *InputParser) Parse(data []byte) (domain.Parameters, error) {
	var pf ParameterFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return domain.Parameters{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	params := pf.Parameters()
	if err := calculation.Validate(params); err != nil {
		return domain.Parameters{}, fmt.Errorf("parameter validation failed: %w", err)
	}

	return params, nil
}
