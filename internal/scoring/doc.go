// Package scoring implements the suitability scorer: it assigns each
// eligible exercise a non-negative score and returns the pool sorted by it.
//
// ALGORITHM:
//
// Pass 1 (independent per exercise):
//
//	raw   = base + targetBonus - lessenPenalty + intensity + goal
//	score = max(raw, 0)
//
// Target bonus and lessen penalty are each non-stacking: a primary-muscle
// match wins and secondary matches are then ignored. The pool maximum of
// score is recorded.
//
// Pass 2 (include priority): every exercise named in Criteria.Include gets
// boost = (poolMax + IncludePriority) - raw, so its final score is exactly
// poolMax + IncludePriority and it outranks every non-requested exercise.
//
// The result is stable-sorted descending by score; ties keep input order.
package scoring
