// Package sa - temperature sources.
package sa

import "errors"

// ErrBadTemperature indicates a non-positive initial temperature.
var ErrBadTemperature = errors.New("sa: initial temperature must be > 0")

// ErrBadCoolingFactor indicates a cooling factor outside (0, 1).
var ErrBadCoolingFactor = errors.New("sa: cooling factor must be in (0, 1)")

// CoolingSchedule is a mutable temperature source. Temperature returns the
// current value; Cool advances the schedule one step. The annealer calls
// Cool exactly once per proposal, after the acceptance decision consumed
// the pre-cooling temperature.
type CoolingSchedule interface {
	// Temperature returns the current temperature.
	Temperature() float64

	// Cool advances the schedule by one step.
	Cool()
}

// GeometricCooling decays the temperature multiplicatively:
// T ← T·(1−factor) per step. The temperature approaches zero but never
// reaches it, so the Metropolis probability stays well defined for the
// whole run.
type GeometricCooling struct {
	temperature float64
	factor      float64
}

// NewGeometricCooling returns a schedule starting at initial with the given
// per-step decay factor.
func NewGeometricCooling(initial, factor float64) (*GeometricCooling, error) {
	if initial <= 0 {
		return nil, ErrBadTemperature
	}
	if factor <= 0 || factor >= 1 {
		return nil, ErrBadCoolingFactor
	}

	return &GeometricCooling{temperature: initial, factor: factor}, nil
}

// Temperature returns the current temperature.
func (g *GeometricCooling) Temperature() float64 { return g.temperature }

// Cool applies one multiplicative decay step.
func (g *GeometricCooling) Cool() { g.temperature *= 1 - g.factor }

// FixedTemperature is a constant temperature source; Cool is a no-op.
type FixedTemperature float64

// Temperature returns the constant.
func (f FixedTemperature) Temperature() float64 { return float64(f) }

// Cool does nothing.
func (f FixedTemperature) Cool() {}
