// Package standings keeps each team's derived {wins, draws, losses, points}
// counters consistent with the live set of results. Counters are maintained
// by signed per-fixture deltas, never by rescanning results.
package standings

import (
	"fmt"

	"github.com/deportesurjc/platform/internal/domain"
)

// Score is a fixture's recorded goal pair.
type Score struct {
	LocalGoals   int
	VisitorGoals int
}

// Transition is one lifecycle change of a fixture's score. A nil Previous
// means the fixture was just recorded, a nil Next means it was voided, both
// set means a correction. At least one side must be set.
type Transition struct {
	Previous *Score
	Next     *Score
}

// Insert is the transition for a newly recorded score.
func Insert(localGoals, visitorGoals int) Transition {
	return Transition{Next: &Score{LocalGoals: localGoals, VisitorGoals: visitorGoals}}
}

// Edit is the transition for a corrected score.
func Edit(prev, next Score) Transition {
	return Transition{Previous: &prev, Next: &next}
}

// Retract is the transition for a voided fixture.
func Retract(localGoals, visitorGoals int) Transition {
	return Transition{Previous: &Score{LocalGoals: localGoals, VisitorGoals: visitorGoals}}
}

// Deltas computes the signed adjustment each side's aggregate must receive
// for one transition. A plain insert contributes the new outcome, a retract
// the negated previous outcome, and an edit their per-statistic difference.
//
// The comparison is always on the full goal pair, never on the derived
// outcome label: editing 2-1 to 4-1 keeps the label "local" but is not a
// zero delta. Identical goal pairs yield the zero delta, which callers
// still apply rather than skip.
func Deltas(t Transition) (local, visitor domain.AggregateDelta, err error) {
	if t.Previous == nil && t.Next == nil {
		return local, visitor, fmt.Errorf("transition requires a previous or a new score")
	}
	if t.Next != nil {
		out := domain.ClassifyScore(t.Next.LocalGoals, t.Next.VisitorGoals)
		local = local.Add(domain.DeltaFromOutcome(out.Local))
		visitor = visitor.Add(domain.DeltaFromOutcome(out.Visitor))
	}
	if t.Previous != nil {
		out := domain.ClassifyScore(t.Previous.LocalGoals, t.Previous.VisitorGoals)
		local = local.Add(domain.DeltaFromOutcome(out.Local).Negate())
		visitor = visitor.Add(domain.DeltaFromOutcome(out.Visitor).Negate())
	}
	return local, visitor, nil
}
