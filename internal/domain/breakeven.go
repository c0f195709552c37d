package domain

import (
	"github.com/shopspring/decimal"
)

// BreakEvenOptions bounds the binary search on purchase price.
type BreakEvenOptions struct {
	MinPrice      decimal.Decimal `yaml:"min_price" json:"min_price"`
	MaxPrice      decimal.Decimal `yaml:"max_price" json:"max_price"`
	Tolerance     decimal.Decimal `yaml:"tolerance" json:"tolerance"`
	MaxIterations int             `yaml:"max_iterations" json:"max_iterations"`

	// MortgageAmount, when set, keeps the loan fixed across probes: each
	// probe sets downPayment = probePrice - MortgageAmount. When nil the
	// base record's down payment is carried unchanged.
	MortgageAmount *decimal.Decimal `yaml:"mortgage_amount,omitempty" json:"mortgage_amount,omitempty"`
}

// BreakEvenResult reports the closest probe of the search. When
// BreakevenFound is false the search did not reach the tolerance;
// the fields still describe the best probe seen.
type BreakEvenResult struct {
	BreakevenFound bool            `json:"breakevenFound"`
	BreakevenPrice decimal.Decimal `json:"breakevenPrice"`
	DownPayment    decimal.Decimal `json:"downPayment"`
	LtvPercent     decimal.Decimal `json:"ltvPercent"`
	ResultValue    decimal.Decimal `json:"resultValue"`
	Decision       string          `json:"decision"`
	Difference     decimal.Decimal `json:"difference"`
	Iterations     int             `json:"iterations"`
	Message        string          `json:"message"`
}

// SweepRange is one axis of a parameter sweep: min..max inclusive in
// increments of step. Boolean parameters are encoded as {0, 1, 1}.
type SweepRange struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Step decimal.Decimal `yaml:"step" json:"step"`
}

// SweepRecord pairs the axis values of one combination with the full
// result they produced.
type SweepRecord struct {
	Axes   map[string]decimal.Decimal `json:"axes"`
	Result *Result                    `json:"result"`
}
