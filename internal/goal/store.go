package goal

import "context"

// DefaultGoal is served when no goal has been persisted or the stored value
// cannot be parsed.
const DefaultGoal = 100000

// Store persists the single fundraising goal.
type Store interface {
	// Read never fails; unreadable state degrades to DefaultGoal.
	Read(ctx context.Context) float64
	// Write overwrites the persisted goal. Persistence is best-effort:
	// callers log failures and carry on.
	Write(ctx context.Context, value float64) error
}
