package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rvogel/kaufmiete/internal/domain"
)

// Binary-search defaults applied when the options leave them zero.
var (
	defaultBreakEvenTolerance  = decimal.NewFromInt(1000)
	defaultBreakEvenIterations = 64
	minPriceBracket            = decimal.NewFromFloat(0.01)
)

// FindBreakevenPrice binary-searches the purchase price at which buying
// and renting cost the same over the horizon, re-invoking the core for
// every probe. The base record is never mutated. When no probe reaches
// the tolerance the closest one is returned with BreakevenFound=false.
func (e *Engine) FindBreakevenPrice(base domain.Parameters, opts domain.BreakEvenOptions) (*domain.BreakEvenResult, error) {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = defaultBreakEvenIterations
	}
	if opts.Tolerance.LessThanOrEqual(decimalZero) {
		opts.Tolerance = defaultBreakEvenTolerance
	}
	if opts.MinPrice.LessThan(decimalZero) {
		return nil, &ValidationError{Field: "minPrice", Reason: "money amount must not be negative"}
	}
	if opts.MaxPrice.LessThan(opts.MinPrice) {
		return nil, &ValidationError{Field: "maxPrice", Reason: "must not be below minPrice"}
	}

	// Every probe must keep a non-negative down payment: price at least
	// the fixed loan when one is set, otherwise at least the base
	// record's down payment, which is carried unchanged across probes.
	floor := base.DownPayment
	if opts.MortgageAmount != nil {
		floor = *opts.MortgageAmount
	}
	if opts.MinPrice.LessThan(floor) {
		opts.MinPrice = floor
	}
	if opts.MaxPrice.LessThan(opts.MinPrice) {
		return nil, &ValidationError{Field: "maxPrice", Reason: "below the smallest searchable price"}
	}

	lo := opts.MinPrice
	hi := opts.MaxPrice

	var best *domain.BreakEvenResult
	iterations := 0

	for iterations < opts.MaxIterations {
		iterations++

		price := lo.Add(hi).Div(decimal.NewFromInt(2))
		probe := base
		probe.PurchasePrice = price
		if opts.MortgageAmount != nil {
			probe.DownPayment = price.Sub(*opts.MortgageAmount)
		}

		res, err := e.Calculate(probe)
		if err != nil {
			return nil, fmt.Errorf("break-even probe at price %s failed: %w", price.StringFixed(2), err)
		}

		// Strict comparison keeps the earlier probe on a tie.
		if best == nil || res.ResultValue.Abs().LessThan(best.Difference) {
			best = &domain.BreakEvenResult{
				BreakevenPrice: price,
				DownPayment:    probe.DownPayment,
				LtvPercent:     ltvPercent(price, probe.DownPayment),
				ResultValue:    res.ResultValue,
				Decision:       res.Decision,
				Difference:     res.ResultValue.Abs(),
			}
		}

		if res.ResultValue.Abs().LessThanOrEqual(opts.Tolerance) {
			best.BreakevenFound = true
			break
		}

		// Positive result means buying is still cheaper at this price, so
		// the break-even lies at a higher price.
		if res.ResultValue.GreaterThan(decimalZero) {
			lo = price
		} else {
			hi = price
		}

		if hi.Sub(lo).LessThan(minPriceBracket) {
			e.Logger.Debugf("break-even bracket collapsed after %d iterations", iterations)
			break
		}
	}

	best.Iterations = iterations
	if best.BreakevenFound {
		best.Message = fmt.Sprintf("break-even price %s found after %d iterations (|result| <= %s)",
			best.BreakevenPrice.StringFixed(2), iterations, opts.Tolerance.StringFixed(2))
	} else {
		best.Message = fmt.Sprintf("no break-even within tolerance %s after %d iterations; closest probe at %s (|result| = %s)",
			opts.Tolerance.StringFixed(2), iterations, best.BreakevenPrice.StringFixed(2), best.Difference.StringFixed(2))
	}

	return best, nil
}

func ltvPercent(price, downPayment decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimalZero) {
		return decimalZero
	}
	return price.Sub(downPayment).Div(price).Mul(decimalHundred)
}
