// Package lns implements Large Neighborhood Search.
//
// LNS explores neighborhoods too large to enumerate by splitting the move
// into two roles: a Destroyer removes part of the incumbent, producing a
// partial solution, and a Repairer reconstructs a complete candidate from
// it. Each role has its own pool and its own selection policy; per round
// one destroyer and one repairer are chosen independently, applied in
// sequence, and the candidate is accepted only on strict improvement —
// VNS's acceptance rule with a two-stage proposal.
//
// The round classification is forwarded to both selectors, so wiring
// selector.Adaptive on either pool (or both) yields adaptive LNS: destroy
// and repair methods are rewarded independently for the rounds they
// produced.
//
// # Construction
//
//	search, err := lns.NewBuilder[MySolution]().
//		Destroyer(removeRandom).
//		Repairer(greedyInsert).
//		DestroyerSelector(selDestroy).
//		RepairerSelector(selRepair).
//		Terminator(criteria).
//		Rand(core.RandFromSeed(42)).
//		Build()
//	best := search.Optimize(initial)
//
// The partial solution travels between the two roles as the same solution
// type; what "partially destroyed" means is a convention between the
// caller's destroyers and repairers — the engine never inspects it.
package lns
