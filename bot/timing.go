package bot

import (
	"math/rand/v2"
	"time"
)

// ThinkDelay returns a randomized delay in [lo, hi) before a bot's action
// fires, so a scheduled command doesn't complete a turn instantaneously.
// Callers schedule this delay against the same generation-guarded timer
// machinery used for player turn timers, so a superseded bot action never
// fires. lo/hi come from the caller's config.Tunables: one pair for a
// discard/pickup decision, a tighter pair for an automatic Yaniv call. A
// zero-or-negative span collapses to lo.
func ThinkDelay(lo, hi time.Duration) time.Duration {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	return lo + time.Duration(rand.Int64N(int64(span)))
}
