// Package reduction reduces a bounded path-existence question over a
// tunnel network — "is there a path of exactly `length` tunnels from the
// network's source to its sink that respects the two-symbol stack
// discipline attached to push/pop/transmit actions?" — to a propositional
// satisfiability question, and decodes a satisfying model back into a path.
//
// The reduction follows the structure of the original network-routing
// reduction this package is based on: eight constraint families Φ₁…Φ₈ over
// three variable families (x, y4, y6), built with internal/satformula and
// handed to its solver in one shot. Grounding notes, file by file:
//
//   - variables.go: the x/y4/y6 variable namer and the stack-height bound
//     `StackSize`, mirroring the original's tn_path_variable/tn_4_variable/
//     tn_6_variable/get_stack_size.
//   - phi1_unicity.go: Φ₁, exactly one (node, height) state per position.
//   - phi2_endpoints.go: Φ₂, the path starts and ends at the network's
//     source/sink with an empty stack bottomed by the symbol 4.
//   - phi3_transitions.go: Φ₃ fused with Φ₇ — transition legality (forbidden
//     height deltas, non-edge bans, per-action preconditions) together with
//     successor existence, exactly as the original builds them in a single
//     pass (creer_contraintes_transitions).
//   - phi4_stack.go: Φ₄, every occupied stack cell holds exactly one of the
//     two symbols. Preserves the original's inclusive `k <= h` cell range —
//     see the Open Question note on DESIGN.md for why that is kept.
//   - phi5_topop.go: Φ₅, the top-of-stack/operation consistency constraint.
//     Built but not included in the default Reduce formula: Φ₃'s per-action
//     implications already force top-of-stack symbols to match the action
//     taken, so Φ₅ is logically entailed and the original's own top-level
//     reducer (tn_reduction) never conjoins it either. It is kept as an
//     unexported function so the entailment can be exercised directly by a
//     test.
//   - phi6_evolution.go: Φ₆, stack evolution below the site of change.
//   - phi8_simplepath.go: Φ₈, no (node, height) state repeats across
//     positions.
//   - reduce.go: Reduce, the top-level conjunction (Φ₁∧Φ₂∧Φ₃∧Φ₄∧Φ₆∧Φ₈).
//   - decode.go: DecodePath, turning a satisfying model into a Step slice by
//     comparing each position's stack height to the next, the way the
//     original's tn_get_path_from_model dispatches on src_height vs
//     tgt_height.
//   - print.go: PrintModel, a human-readable dump of a model's path and
//     stack contents at every position, mirroring tn_print_model including
//     its malformed-stack diagnostics.
//   - batch.go: SolveBatch, running many independent (network, length)
//     reductions concurrently on top of internal/parallel's worker pool,
//     each job wrapped in the pool's deadlock detector and its outcome
//     folded into a Summary of execution statistics and deadlock alerts.
package reduction
