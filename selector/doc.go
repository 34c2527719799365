// Package selector provides operator-selection policies for improving
// heuristics: given the current incumbent (and, for the adaptive variant,
// feedback from the previous round), pick the index of the operator to
// apply next.
//
// Selectors return indices rather than operator values so one vocabulary
// serves every pool an algorithm owns: VNS indexes its operator list, LNS
// runs one selector over its destroyer pool and another over its repairer
// pool.
//
// Three policies are provided:
//
//   - Sequential — the classical VNS escalation rule: restart from the first
//     operator on any improvement, otherwise move to the next one (wrapping
//     around). Deterministic; no randomness consumed.
//   - Random — a uniform draw over the pool on every call. Stateless.
//   - Adaptive — a weight per operator, updated exponentially from the
//     round feedback; selection is a roulette wheel over the weights. The
//     only policy with cross-round memory beyond a cursor.
//
// All selectors are built once per run, owned by one algorithm instance,
// and are not safe for concurrent use. Selection mutates selector state
// through the ordinary pointer receiver — there is no hidden interior
// mutability.
package selector
