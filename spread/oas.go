package spread

import (
	"math"

	"github.com/meenmo/molib/molerr"
	"github.com/meenmo/molib/solve"
)

// BinomialTree is a recombining short-rate tree for pricing bonds with
// embedded options via backward induction, ported from
// original_source/crates/convex-bonds/src/options/binomial_tree.rs.
// rates[i][j] is the short rate at time step i, state j (0..=i).
type BinomialTree struct {
	Steps int
	DT    float64
	Rates [][]float64
}

// NewBinomialTree allocates a tree with steps time steps of size dt years,
// zeroed rates. Callers populate Rates (e.g. via a calibrated short-rate
// model) before calling PriceWithSpread.
func NewBinomialTree(steps int, dt float64) *BinomialTree {
	rates := make([][]float64, steps+1)
	for i := range rates {
		rates[i] = make([]float64, i+1)
	}
	return &BinomialTree{Steps: steps, DT: dt, Rates: rates}
}

func (t *BinomialTree) discountFactor(i, j int, spread float64) float64 {
	rate := t.Rates[i][j] + spread
	return math.Exp(-rate * t.DT)
}

// BackwardInduction computes the PV at node (0,0) of a constant terminal
// value at maturity, discounting at each step's short rate plus spread with
// equal (0.5, 0.5) up/down risk-neutral probabilities, per the teacher's
// backward_induction_simple.
func (t *BinomialTree) BackwardInduction(terminalValue, spread float64) float64 {
	n := t.Steps
	values := make([]float64, n+1)
	for j := range values {
		values[j] = terminalValue
	}
	for i := n - 1; i >= 0; i-- {
		next := make([]float64, i+1)
		for j := 0; j <= i; j++ {
			df := t.discountFactor(i, j, spread)
			next[j] = df * 0.5 * (values[j+1] + values[j])
		}
		values = next
	}
	return values[0]
}

// CalibrateFlatTree builds a tree whose short rate at every node equals the
// curve's continuously-compounded zero rate at that node's time, plus an
// additive volatility term applied symmetrically around
// the central path (rates[i][j] = zero(t_i) + sigma*sqrt(t_i)*(i-2j)). This
// is a simplified, single-factor calibration sufficient for OAS on a
// bullet/callable bond; it is not a full Black-Derman-Toy or Hull-White fit
// (no grounding source in the pack implements drift-fitting for those).
func CalibrateFlatTree(steps int, dt float64, zeroRateAt func(t float64) float64, volatility float64) *BinomialTree {
	tree := NewBinomialTree(steps, dt)
	for i := 0; i <= steps; i++ {
		t := float64(i) * dt
		base := zeroRateAt(t)
		for j := 0; j <= i; j++ {
			spread := volatility * math.Sqrt(t) * float64(i-2*j)
			tree.Rates[i][j] = base + spread
		}
	}
	return tree
}

// SolveOAS finds the constant spread z such that tree.BackwardInduction(dirtyPrice's
// terminal redemption, z) reprices the bond to dirtyPrice, for a bond whose
// early-exercise optionality is already folded into terminalValue (the
// simplified bullet-equivalent case; a full callable OAS would run backward
// induction with a min/max at each exercisable node, which needs per-node
// option schedules not modeled by this tree). The spread is returned in
// basis points.
func SolveOAS(tree *BinomialTree, terminalValue, dirtyPrice float64) (float64, error) {
	f := func(z float64) float64 {
		return tree.BackwardInduction(terminalValue, z) - dirtyPrice
	}
	result, err := solve.Brent(f, -0.10, 0.10, solve.DefaultConfig())
	if err != nil {
		return 0, molerr.Wrap(molerr.SolverNonConvergence, "spread.SolveOAS", err)
	}
	return result.Root * 10000.0, nil
}
