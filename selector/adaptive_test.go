package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaPurr/Netaheuristics/core"
	"github.com/DaPurr/Netaheuristics/selector"
)

// TestAdaptive_WeightUpdateScript pins the exact weight sequence for a
// scripted run: starting weights [1,1,1] with decay 1, selecting index 0 and
// feeding ImprovedBest (reward 3) yields [3,1,1]; selecting index 2 and
// feeding Accepted (reward 1) leaves [3,1,1], since decay 1 fully replaces
// the weight with the reward and weight 2 already was 1.
func TestAdaptive_WeightUpdateScript(t *testing.T) {
	rng := &scriptedRand{floats: []float64{
		0.0, // r = 0.0*3 = 0   -> cumulative 1 covers it -> index 0
		0.9, // r = 0.9*5 = 4.5 -> cumulative 3,4,5      -> index 2
	}}
	a, err := selector.NewAdaptive(3, 1.0, rng)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, a.Weights())

	require.Equal(t, 0, a.Select(objective(0)))
	a.Feedback(core.ImprovedBest)
	assert.Equal(t, []float64{3, 1, 1}, a.Weights())

	require.Equal(t, 2, a.Select(objective(0)))
	a.Feedback(core.Accepted)
	assert.Equal(t, []float64{3, 1, 1}, a.Weights())
}

// TestAdaptive_PartialDecay verifies the exponential form of the update:
// with decay 0.5 and reward 3, a weight of 1 moves to 0.5·1 + 0.5·3 = 2.
func TestAdaptive_PartialDecay(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.0}}
	a, err := selector.NewAdaptive(2, 0.5, rng)
	require.NoError(t, err)

	require.Equal(t, 0, a.Select(objective(0)))
	a.Feedback(core.ImprovedBest)
	assert.InDelta(t, 2.0, a.Weights()[0], 1e-12)
	assert.Equal(t, 1.0, a.Weights()[1])
}

// TestAdaptive_RouletteBoundaries verifies the cumulative-interval rule:
// a draw landing exactly on a boundary selects the earlier operator (first
// running sum meeting the draw wins).
func TestAdaptive_RouletteBoundaries(t *testing.T) {
	rng := &scriptedRand{floats: []float64{
		1.0 / 3.0, // r = 1.0, exactly the end of operator 0's interval
		0.5,       // r = 1.5, inside operator 1's interval
	}}
	a, err := selector.NewAdaptive(3, 0.2, rng)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Select(objective(0)), "boundary draw must keep the earlier operator")
	assert.Equal(t, 1, a.Select(objective(0)))
}

// TestAdaptive_FeedbackBeforeSelect verifies feedback with no prior
// selection leaves the weights untouched.
func TestAdaptive_FeedbackBeforeSelect(t *testing.T) {
	a, err := selector.NewAdaptive(3, 1.0, core.RandFromSeed(1))
	require.NoError(t, err)

	a.Feedback(core.ImprovedBest)
	assert.Equal(t, []float64{1, 1, 1}, a.Weights())
}

// TestAdaptive_UpdatesOnlyLastSelection verifies repeated feedback after one
// selection keeps hitting the same weight, never its neighbors.
func TestAdaptive_UpdatesOnlyLastSelection(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.5}} // r = 1.5 -> index 1
	a, err := selector.NewAdaptiveWithRewards(3, 0.5, selector.Rewards{ImprovedBest: 5, Accepted: 2, Rejected: 0}, rng)
	require.NoError(t, err)

	require.Equal(t, 1, a.Select(objective(0)))
	a.Feedback(core.ImprovedBest) // 0.5·1 + 0.5·5 = 3
	a.Feedback(core.Rejected)     // 0.5·3 + 0.5·0 = 1.5

	weights := a.Weights()
	assert.Equal(t, 1.0, weights[0])
	assert.InDelta(t, 1.5, weights[1], 1e-12)
	assert.Equal(t, 1.0, weights[2])
}

// TestAdaptive_WeightsIsACopy verifies mutating the returned slice does not
// leak into selector state.
func TestAdaptive_WeightsIsACopy(t *testing.T) {
	a, err := selector.NewAdaptive(2, 0.5, core.RandFromSeed(1))
	require.NoError(t, err)

	w := a.Weights()
	w[0] = 99
	assert.Equal(t, []float64{1, 1}, a.Weights())
}

// TestAdaptive_ConstructionErrors covers the sentinel surface.
func TestAdaptive_ConstructionErrors(t *testing.T) {
	rng := core.RandFromSeed(1)

	_, err := selector.NewAdaptive(0, 0.5, rng)
	assert.ErrorIs(t, err, selector.ErrNoOperators)

	_, err = selector.NewAdaptive(3, -0.1, rng)
	assert.ErrorIs(t, err, selector.ErrBadDecay)

	_, err = selector.NewAdaptive(3, 1.1, rng)
	assert.ErrorIs(t, err, selector.ErrBadDecay)

	_, err = selector.NewAdaptiveWithRewards(3, 0.5, selector.Rewards{ImprovedBest: -1}, rng)
	assert.ErrorIs(t, err, selector.ErrNegativeReward)

	_, err = selector.NewAdaptive(3, 0.5, nil)
	assert.ErrorIs(t, err, selector.ErrNilRand)
}
