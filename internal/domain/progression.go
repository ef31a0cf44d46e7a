package domain

// CompletionPoints is the experience awarded for completing a task.
// Fixed by policy, never user-supplied.
const CompletionPoints = 10

// levelStep is the experience span of one level.
const levelStep = 100

// Progression is the gamified experience counter, one record per user.
// Experience only grows, and only as a side effect of a task transitioning
// from incomplete to complete. Level is derived, never stored as authority.
type Progression struct {
	Experience int `json:"experience"`
}

// Level returns the level derived from experience: floor(xp/100)+1.
func (p Progression) Level() int {
	return p.Experience/levelStep + 1
}

// Remaining returns the experience still needed to reach the next level.
func (p Progression) Remaining() int {
	return levelStep - p.Experience%levelStep
}

// IntoLevel returns the experience accumulated within the current level,
// in [0, 100). Used for progress bars.
func (p Progression) IntoLevel() int {
	return p.Experience % levelStep
}

// Award returns a new progression with points added. The caller must invoke
// this exactly once per incomplete-to-complete transition and never on
// un-completion.
func (p Progression) Award(points int) Progression {
	return Progression{Experience: p.Experience + points}
}
