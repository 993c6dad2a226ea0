package domain

// Points awarded per fixture under the league points rule.
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// OutcomeLabel is the derived winner tag stored on a result row.
type OutcomeLabel string

const (
	OutcomeLocal   OutcomeLabel = "local"
	OutcomeVisitor OutcomeLabel = "visitante"
	OutcomeDraw    OutcomeLabel = "Empate"
)

// SideOutcome is one side's share of a classified score: the points awarded
// and exactly one of Wins/Draws/Losses set to 1.
type SideOutcome struct {
	Points int
	Wins   int
	Draws  int
	Losses int
}

// Outcome is the full classification of a final score.
type Outcome struct {
	Local   SideOutcome
	Visitor SideOutcome
	Label   OutcomeLabel
}

// ClassifyScore maps a goal pair to the point award and win/draw/loss
// indicators for both sides. Pure: goals must already be validated as
// non-negative integers. The visitor's side is classified with the goals
// swapped so "win" always means "this side scored more".
func ClassifyScore(localGoals, visitorGoals int) Outcome {
	out := Outcome{
		Local:   classifySide(localGoals, visitorGoals),
		Visitor: classifySide(visitorGoals, localGoals),
	}
	switch {
	case localGoals > visitorGoals:
		out.Label = OutcomeLocal
	case localGoals < visitorGoals:
		out.Label = OutcomeVisitor
	default:
		out.Label = OutcomeDraw
	}
	return out
}

func classifySide(scored, conceded int) SideOutcome {
	switch {
	case scored > conceded:
		return SideOutcome{Points: PointsWin, Wins: 1}
	case scored < conceded:
		return SideOutcome{Points: PointsLoss, Losses: 1}
	default:
		return SideOutcome{Points: PointsDraw, Draws: 1}
	}
}

// AggregateDelta is a signed adjustment to a team's stored aggregate.
// The zero value is a valid no-op adjustment.
type AggregateDelta struct {
	Points int `json:"points"`
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// IsZero reports whether applying the delta would leave every counter unchanged.
func (d AggregateDelta) IsZero() bool {
	return d == AggregateDelta{}
}

// Negate returns the inverse adjustment.
func (d AggregateDelta) Negate() AggregateDelta {
	return AggregateDelta{Points: -d.Points, Wins: -d.Wins, Draws: -d.Draws, Losses: -d.Losses}
}

// Add returns the component-wise sum of two deltas.
func (d AggregateDelta) Add(o AggregateDelta) AggregateDelta {
	return AggregateDelta{
		Points: d.Points + o.Points,
		Wins:   d.Wins + o.Wins,
		Draws:  d.Draws + o.Draws,
		Losses: d.Losses + o.Losses,
	}
}

// DeltaFromOutcome converts one side's classified outcome into the
// aggregate adjustment a pure insert would apply.
func DeltaFromOutcome(s SideOutcome) AggregateDelta {
	return AggregateDelta{Points: s.Points, Wins: s.Wins, Draws: s.Draws, Losses: s.Losses}
}
