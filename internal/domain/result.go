package domain

import (
	"github.com/shopspring/decimal"
)

// Decision verdict values.
const (
	DecisionBuy  = "BUY"
	DecisionRent = "RENT"
	DecisionEven = "EVEN"
)

// YearRow is one ledger row of the year-by-year breakdown. Rows feed
// tables and charts directly, so every column a display surface needs
// is materialized here. None of these values are rounded.
type YearRow struct {
	Year int `json:"year"`

	// Mortgage
	StartingBalance    decimal.Decimal `json:"startingBalance"`
	EndingBalance      decimal.Decimal `json:"endingBalance"`
	AnnualInterest     decimal.Decimal `json:"annualInterest"`
	AnnualAmortization decimal.Decimal `json:"annualAmortization"`

	// Owner-side cash and tax
	AnnualMaintenance          decimal.Decimal `json:"annualMaintenance"`
	AnnualTaxDifference        decimal.Decimal `json:"annualTaxDifference"`
	TaxImputedRent             decimal.Decimal `json:"taxImputedRent"`
	TaxSavingsInterest         decimal.Decimal `json:"taxSavingsInterest"`
	TaxSavingsPropertyExpenses decimal.Decimal `json:"taxSavingsPropertyExpenses"`

	// Renter-side cash and portfolio
	AnnualRent                  decimal.Decimal `json:"annualRent"`
	AnnualRentalCosts           decimal.Decimal `json:"annualRentalCosts"`
	RenterContribution          decimal.Decimal `json:"renterContribution"`
	CumulativeRenterPrincipal   decimal.Decimal `json:"cumulativeRenterPrincipal"`
	InvestmentGainsThisYear     decimal.Decimal `json:"investmentGainsThisYear"`
	InvestmentIncomeTaxThisYear decimal.Decimal `json:"investmentIncomeTaxThisYear"`
	CumulativeInvestmentGains   decimal.Decimal `json:"cumulativeInvestmentGains"`
	PortfolioValueEndOfYear     decimal.Decimal `json:"portfolioValueEndOfYear"`

	// Property snapshot
	CumulativeAmortizationToDate decimal.Decimal `json:"cumulativeAmortizationToDate"`
	PropertyValueEndOfYear       decimal.Decimal `json:"propertyValueEndOfYear"`
	HomeownerEquityEndOfYear     decimal.Decimal `json:"homeownerEquityEndOfYear"`
	LtvPercentEndOfYear          decimal.Decimal `json:"ltvPercentEndOfYear"`

	// Cumulative comparison series
	TotalPurchaseCostToDate     decimal.Decimal `json:"totalPurchaseCostToDate"`
	TotalRentalCostToDate       decimal.Decimal `json:"totalRentalCostToDate"`
	CumulativeAdvantage         decimal.Decimal `json:"cumulativeAdvantage"`
	AdvantageDeltaFromPriorYear decimal.Decimal `json:"advantageDeltaFromPriorYear"`
}

// Result is the full result bundle of one calculation. Field names are
// part of the external contract and must not be renamed.
type Result struct {
	// Echoed, normalised inputs. Fields with a Percent suffix are the
	// display shape (unit fraction times 100) and are derived, never
	// mutated back into the engine.
	PurchasePrice                      decimal.Decimal `json:"PurchasePrice"`
	DownPayment                        decimal.Decimal `json:"DownPayment"`
	MortgageInterestRatePercent        decimal.Decimal `json:"MortgageInterestRatePercent"`
	AnnualSupplementalMaintenanceCosts decimal.Decimal `json:"AnnualSupplementalMaintenanceCosts"`
	AmortizationPeriodYears            int             `json:"AmortizationPeriodYears"`
	AnnualAmortizationAmount           decimal.Decimal `json:"AnnualAmortizationAmount"`
	TotalRenovations                   decimal.Decimal `json:"TotalRenovations"`
	AdditionalPurchaseExpenses         decimal.Decimal `json:"AdditionalPurchaseExpenses"`
	ImputedRentalValue                 decimal.Decimal `json:"ImputedRentalValue"`
	PropertyExpenseTaxDeductions       decimal.Decimal `json:"PropertyExpenseTaxDeductions"`
	MarginalTaxRatePercent             decimal.Decimal `json:"MarginalTaxRatePercent"`
	AnnualPropertyValueIncreasePercent decimal.Decimal `json:"AnnualPropertyValueIncreasePercent"`
	MonthlyRentDue                     decimal.Decimal `json:"MonthlyRentDue"`
	AnnualSupplementalCostsRent        decimal.Decimal `json:"AnnualSupplementalCostsRent"`
	InvestmentYieldRatePercent         decimal.Decimal `json:"InvestmentYieldRatePercent"`
	TermYears                          int             `json:"TermYears"`
	ScenarioMode                       ScenarioMode    `json:"ScenarioMode"`
	PostReform                         bool            `json:"PostReform"`
	EvenBand                           decimal.Decimal `json:"EvenBand"`

	// Verdict
	CompareText string          `json:"CompareText"`
	ResultValue decimal.Decimal `json:"ResultValue"`
	Decision    string          `json:"Decision"`

	// Purchase cost block
	InterestCosts                     decimal.Decimal `json:"InterestCosts"`
	SupplementalMaintenanceCosts      decimal.Decimal `json:"SupplementalMaintenanceCosts"`
	AmortizationCosts                 decimal.Decimal `json:"AmortizationCosts"`
	RenovationExpenses                decimal.Decimal `json:"RenovationExpenses"`
	AdditionalPurchaseExpensesOutput  decimal.Decimal `json:"AdditionalPurchaseExpensesOutput"`
	GeneralCostOfPurchase             decimal.Decimal `json:"GeneralCostOfPurchase"`
	TaxDifferenceToRental             decimal.Decimal `json:"TaxDifferenceToRental"`
	MinusPropertyValue                decimal.Decimal `json:"MinusPropertyValue"`
	MortgageAtEndOfRelevantTimePeriod decimal.Decimal `json:"MortgageAtEndOfRelevantTimePeriod"`
	TotalPurchaseCost                 decimal.Decimal `json:"TotalPurchaseCost"`

	// Monthly summary, rounded for display
	MonthlyInterestPayment      decimal.Decimal `json:"MonthlyInterestPayment"`
	MonthlyAmortizationPayment  decimal.Decimal `json:"MonthlyAmortizationPayment"`
	MonthlyMaintenanceCosts     decimal.Decimal `json:"MonthlyMaintenanceCosts"`
	TotalMonthlyExpenses        decimal.Decimal `json:"TotalMonthlyExpenses"`
	MonthlyRentPayment          decimal.Decimal `json:"MonthlyRentPayment"`
	MonthlyRentalCosts          decimal.Decimal `json:"MonthlyRentalCosts"`
	MonthlySavingsContribution  decimal.Decimal `json:"MonthlySavingsContribution"`
	TotalMonthlyRentingExpenses decimal.Decimal `json:"TotalMonthlyRentingExpenses"`

	// Rental cost block
	GeneralCostOfRental           decimal.Decimal `json:"GeneralCostOfRental"`
	ExcludingYieldsOnAssets       decimal.Decimal `json:"ExcludingYieldsOnAssets"`
	ExcludingDownPayment          decimal.Decimal `json:"ExcludingDownPayment"`
	ExcludingSavingsContributions decimal.Decimal `json:"ExcludingSavingsContributions"`
	TotalRentalCost               decimal.Decimal `json:"TotalRentalCost"`

	// Observation-period aggregates
	PurchaseCostsWithinObservationPeriod decimal.Decimal `json:"PurchaseCostsWithinObservationPeriod"`
	RentalCostsWithinObservationPeriod   decimal.Decimal `json:"RentalCostsWithinObservationPeriod"`
	MortgageAmount                       decimal.Decimal `json:"MortgageAmount"`

	YearlyBreakdown []YearRow `json:"YearlyBreakdown"`

	ErrorMsg *string `json:"ErrorMsg"`
}

var decimalHundred = decimal.NewFromInt(100)

// Params reconstructs the input record from the echoed fields. Percent
// fields are converted back to unit fractions, so Calculate(r.Params())
// reproduces the same totals and verdict.
func (r *Result) Params() Parameters {
	return Parameters{
		PurchasePrice:            r.PurchasePrice,
		DownPayment:              r.DownPayment,
		MortgageRate:             r.MortgageInterestRatePercent.Div(decimalHundred),
		TermYears:                r.TermYears,
		AmortizationYears:        r.AmortizationPeriodYears,
		AnnualAmortization:       r.AnnualAmortizationAmount,
		AnnualMaintenanceCosts:   r.AnnualSupplementalMaintenanceCosts,
		TotalRenovations:         r.TotalRenovations,
		AdditionalPurchaseCosts:  r.AdditionalPurchaseExpenses,
		ImputedRentalValue:       r.ImputedRentalValue,
		PropertyTaxDeductions:    r.PropertyExpenseTaxDeductions,
		MarginalTaxRate:          r.MarginalTaxRatePercent.Div(decimalHundred),
		PropertyAppreciationRate: r.AnnualPropertyValueIncreasePercent.Div(decimalHundred),
		MonthlyRent:              r.MonthlyRentDue,
		AnnualRentalCosts:        r.AnnualSupplementalCostsRent,
		InvestmentYieldRate:      r.InvestmentYieldRatePercent.Div(decimalHundred),
		ScenarioMode:             r.ScenarioMode,
		PostReform:               r.PostReform,
		EvenBand:                 r.EvenBand,
	}
}
