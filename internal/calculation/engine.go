package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rvogel/kaufmiete/internal/domain"
)

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// DefaultEvenBand is the tolerance around zero within which the verdict
// is EVEN, used when the input record does not set its own band.
var DefaultEvenBand = decimal.NewFromInt(5000)

// Engine runs buy-vs-rent calculations. It holds no mutable state
// between invocations; every entry point is a pure function of its
// arguments, so one Engine can be shared across goroutines.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// Calculate runs the full pipeline for one parameter record: normalise,
// simulate year by year, aggregate, assemble. The returned bundle
// carries the totals, the verdict and the complete year ledger. A
// *ValidationError is returned for inputs outside the valid domain.
func (e *Engine) Calculate(params domain.Parameters) (*domain.Result, error) {
	np, err := normalise(params)
	if err != nil {
		return nil, err
	}

	rows, state := simulate(np)
	totals := aggregate(np, rows, state)

	e.Logger.Debugf("calculated %d-year horizon: purchase=%s rental=%s result=%s",
		np.TermYears, totals.TotalPurchaseCost.StringFixed(2),
		totals.TotalRentalCost.StringFixed(2), totals.ResultValue.StringFixed(2))

	return assemble(np, rows, totals), nil
}

func onePlus(value decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(value)
}

// compound returns base*(1+rate)^years.
func compound(base, rate decimal.Decimal, years int) decimal.Decimal {
	return base.Mul(onePlus(rate).Pow(decimal.NewFromInt(int64(years))))
}
