package matchup

// Score is a combined effectiveness for a whole target. A dual-type score
// is the sum of the two single-type tiers; single-type targets count a
// neutral second tier so the breakpoints line up.
type Score int

// Breakpoints for phrasing a non-immune score
const (
	ScoreDoublyResisted Score = 6
	ScoreResisted       Score = 7
	ScoreNeutral        Score = 8
	ScoreSuper          Score = 9
	ScoreDoublySuper    Score = 10
)

// Result is the pipeline's final answer for one attack against one target
type Result struct {
	Tiers  []Tier
	Score  Score
	Immune bool
}

// combine folds per-type tiers into a result. Any immune component makes
// the whole matchup immune.
func combine(tiers []Tier) Result {
	result := Result{Tiers: tiers}
	score := Score(0)
	for _, t := range tiers {
		if t == TierImmune {
			result.Immune = true
		}
		score += Score(t)
	}
	if len(tiers) == 1 {
		score += Score(TierNormal)
	}
	result.Score = score
	return result
}

// Phrase returns the message key describing the matchup
func (r Result) Phrase() string {
	if r.Immune {
		return "matchup.immune"
	}
	switch {
	case r.Score <= ScoreDoublyResisted:
		return "matchup.doubly_resisted"
	case r.Score == ScoreResisted:
		return "matchup.resisted"
	case r.Score == ScoreNeutral:
		return "matchup.neutral"
	case r.Score == ScoreSuper:
		return "matchup.super"
	default:
		return "matchup.doubly_super"
	}
}

// Multiplier returns the damage multiplier as a numerator/denominator pair
func (r Result) Multiplier() (num, den int) {
	if r.Immune {
		return 0, 1
	}
	switch {
	case r.Score <= ScoreDoublyResisted:
		return 1, 2
	case r.Score == ScoreResisted:
		return 7, 10
	case r.Score == ScoreNeutral:
		return 1, 1
	case r.Score == ScoreSuper:
		return 7, 5
	default:
		return 2, 1
	}
}
