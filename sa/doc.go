// Package sa implements Simulated Annealing.
//
// Each round, the selector picks a stochastic operator and one random
// neighbor of the incumbent is drawn ("shake"). An improving candidate is
// always accepted; a worsening one is accepted with the Metropolis
// probability
//
//	p = exp(−Δ/T)
//
// where Δ ≥ 0 is the worsening of the candidate relative to the incumbent
// and T is the current temperature. High temperatures make the walk nearly
// free, low temperatures freeze it into hill-climbing. The incumbent may
// therefore worsen over a run; the loop still returns the best solution
// seen.
//
// # Temperature
//
// The temperature is either fixed for the whole run (FixedTemperature) or
// produced by a CoolingSchedule. GeometricCooling applies multiplicative
// decay, T ← T·(1−factor), once per proposal — after the acceptance
// decision has used the pre-cooling temperature.
//
// # Construction
//
//	anneal, err := sa.NewBuilder[MySolution]().
//		Operator(opShake).
//		Selector(sel).
//		Terminator(criteria).
//		Rand(core.RandFromSeed(42)).
//		CoolingSchedule(cooling).
//		Build()
//	best := anneal.Optimize(initial)
//
// Exactly one uniform draw is consumed per acceptance decision, before the
// improvement branch; for a fixed seed the run is fully reproducible.
package sa
