package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rvogel/kaufmiete/internal/domain"
)

// ParameterSweep enumerates the cartesian product of the given axes,
// overlays each combination on the base record and re-invokes the core.
// Axis names are sorted lexicographically and enumerated outermost
// first, so the output order is deterministic for a given set of axes.
// Empty axes yield an empty slice, not an error.
func (e *Engine) ParameterSweep(base domain.Parameters, sweepRanges map[string]domain.SweepRange) ([]domain.SweepRecord, error) {
	names := make([]string, 0, len(sweepRanges))
	for name := range sweepRanges {
		if !knownAxis(name) {
			return nil, &ValidationError{Field: name, Reason: "unknown sweep parameter"}
		}
		names = append(names, name)
	}
	sort.Strings(names)

	axes := make([][]decimal.Decimal, len(names))
	total := 1
	for i, name := range names {
		values, err := axisValues(sweepRanges[name])
		if err != nil {
			return nil, fmt.Errorf("axis %s: %w", name, err)
		}
		axes[i] = values
		total *= len(values)
	}
	if len(names) == 0 || total == 0 {
		return []domain.SweepRecord{}, nil
	}

	e.Logger.Debugf("sweeping %d combinations over %d axes", total, len(names))

	records := make([]domain.SweepRecord, 0, total)
	indices := make([]int, len(names))

	for {
		probe := base
		axisValuesByName := make(map[string]decimal.Decimal, len(names))
		for i, name := range names {
			v := axes[i][indices[i]]
			axisValuesByName[name] = v
			applyAxis(&probe, name, v)
		}

		res, err := e.Calculate(probe)
		if err != nil {
			return nil, fmt.Errorf("sweep combination %v failed: %w", axisValuesByName, err)
		}
		records = append(records, domain.SweepRecord{Axes: axisValuesByName, Result: res})

		// Odometer step: the last (innermost) axis varies fastest.
		i := len(indices) - 1
		for ; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(axes[i]) {
				break
			}
			indices[i] = 0
		}
		if i < 0 {
			break
		}
	}

	return records, nil
}

func axisValues(r domain.SweepRange) ([]decimal.Decimal, error) {
	if r.Max.LessThan(r.Min) {
		return nil, nil
	}
	if r.Step.LessThanOrEqual(decimalZero) {
		if r.Min.Equal(r.Max) {
			return []decimal.Decimal{r.Min}, nil
		}
		return nil, fmt.Errorf("step must be positive when min < max")
	}
	var values []decimal.Decimal
	for v := r.Min; v.LessThanOrEqual(r.Max); v = v.Add(r.Step) {
		values = append(values, v)
	}
	return values, nil
}

func knownAxis(name string) bool {
	switch name {
	case "purchasePrice", "downPayment", "mortgageRate", "termYears",
		"amortizationYears", "annualAmortization", "annualMaintenanceCosts",
		"totalRenovations", "additionalPurchaseCosts", "imputedRentalValue",
		"propertyTaxDeductions", "marginalTaxRate", "propertyAppreciationRate",
		"monthlyRent", "annualRentalCosts", "investmentYieldRate", "postReform":
		return true
	}
	return false
}

// applyAxis overlays one axis value on the probe record. Integer-valued
// parameters truncate; postReform treats any non-zero value as true.
func applyAxis(p *domain.Parameters, name string, v decimal.Decimal) {
	switch name {
	case "purchasePrice":
		p.PurchasePrice = v
	case "downPayment":
		p.DownPayment = v
	case "mortgageRate":
		p.MortgageRate = v
	case "termYears":
		p.TermYears = int(v.IntPart())
	case "amortizationYears":
		p.AmortizationYears = int(v.IntPart())
	case "annualAmortization":
		p.AnnualAmortization = v
	case "annualMaintenanceCosts":
		p.AnnualMaintenanceCosts = v
	case "totalRenovations":
		p.TotalRenovations = v
	case "additionalPurchaseCosts":
		p.AdditionalPurchaseCosts = v
	case "imputedRentalValue":
		p.ImputedRentalValue = v
	case "propertyTaxDeductions":
		p.PropertyTaxDeductions = v
	case "marginalTaxRate":
		p.MarginalTaxRate = v
	case "propertyAppreciationRate":
		p.PropertyAppreciationRate = v
	case "monthlyRent":
		p.MonthlyRent = v
	case "annualRentalCosts":
		p.AnnualRentalCosts = v
	case "investmentYieldRate":
		p.InvestmentYieldRate = v
	case "postReform":
		p.PostReform = !v.IsZero()
	}
}
