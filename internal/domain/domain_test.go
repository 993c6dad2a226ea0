package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Outcome Classifier Tests ---

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		name        string
		local       int
		visitor     int
		wantLabel   OutcomeLabel
		wantLocal   SideOutcome
		wantVisitor SideOutcome
	}{
		{"local win", 3, 1, OutcomeLocal, SideOutcome{Points: 3, Wins: 1}, SideOutcome{Points: 0, Losses: 1}},
		{"visitor win", 1, 3, OutcomeVisitor, SideOutcome{Points: 0, Losses: 1}, SideOutcome{Points: 3, Wins: 1}},
		{"goalless draw", 0, 0, OutcomeDraw, SideOutcome{Points: 1, Draws: 1}, SideOutcome{Points: 1, Draws: 1}},
		{"scoring draw", 2, 2, OutcomeDraw, SideOutcome{Points: 1, Draws: 1}, SideOutcome{Points: 1, Draws: 1}},
		{"one goal margin", 1, 0, OutcomeLocal, SideOutcome{Points: 3, Wins: 1}, SideOutcome{Points: 0, Losses: 1}},
		{"heavy visitor win", 0, 9, OutcomeVisitor, SideOutcome{Points: 0, Losses: 1}, SideOutcome{Points: 3, Wins: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ClassifyScore(tt.local, tt.visitor)
			assert.Equal(t, tt.wantLabel, out.Label)
			assert.Equal(t, tt.wantLocal, out.Local)
			assert.Equal(t, tt.wantVisitor, out.Visitor)
		})
	}
}

func TestClassifyScoreDeterministic(t *testing.T) {
	a := ClassifyScore(4, 2)
	b := ClassifyScore(4, 2)
	assert.Equal(t, a, b)
}

func TestClassifyScoreExactlyOneIndicator(t *testing.T) {
	for local := 0; local <= 4; local++ {
		for visitor := 0; visitor <= 4; visitor++ {
			out := ClassifyScore(local, visitor)
			assert.Equal(t, 1, out.Local.Wins+out.Local.Draws+out.Local.Losses,
				"local indicators for %d-%d", local, visitor)
			assert.Equal(t, 1, out.Visitor.Wins+out.Visitor.Draws+out.Visitor.Losses,
				"visitor indicators for %d-%d", local, visitor)
		}
	}
}

// --- AggregateDelta Tests ---

func TestAggregateDelta(t *testing.T) {
	t.Run("zero value is zero", func(t *testing.T) {
		assert.True(t, AggregateDelta{}.IsZero())
		assert.False(t, AggregateDelta{Points: 3, Wins: 1}.IsZero())
	})

	t.Run("negate inverts every counter", func(t *testing.T) {
		d := AggregateDelta{Points: 3, Wins: 1, Losses: -1}
		assert.Equal(t, AggregateDelta{Points: -3, Wins: -1, Losses: 1}, d.Negate())
	})

	t.Run("delta plus its negation is zero", func(t *testing.T) {
		d := AggregateDelta{Points: 1, Draws: 1}
		assert.True(t, d.Add(d.Negate()).IsZero())
	})
}

func TestAggregateApply(t *testing.T) {
	a := Aggregate{Wins: 2, Draws: 1, Losses: 0, Points: 7}
	got := a.Apply(AggregateDelta{Points: -3, Wins: -1, Draws: 1})
	assert.Equal(t, Aggregate{Wins: 1, Draws: 2, Losses: 0, Points: 4}, got)
}

// --- Validator Tests ---

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
		errMsg  string
	}{
		{"valid email", "user@example.com", false, ""},
		{"valid email with dots", "first.last@example.co.uk", false, ""},
		{"empty string", "", true, "email is required"},
		{"no at sign", "userexample.com", true, "invalid email format"},
		{"no domain", "user@", true, "invalid email format"},
		{"no tld", "user@example", true, "invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateGoals(t *testing.T) {
	tests := []struct {
		name    string
		goals   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 5, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoals(tt.goals)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "non-negative")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateSport(t *testing.T) {
	require.NoError(t, ValidateSport("futbol-7"))
	require.Error(t, ValidateSport(""))
	require.Error(t, ValidateSport("   "))
}

func TestValidateHours(t *testing.T) {
	require.NoError(t, ValidateHours(1))
	require.NoError(t, ValidateHours(12))
	require.Error(t, ValidateHours(0))
	require.Error(t, ValidateHours(13))
}

// --- Error Tests ---

func TestAppError(t *testing.T) {
	t.Run("not found carries status", func(t *testing.T) {
		err := ErrNotFound("result", "abc")
		assert.Equal(t, 404, err.Status)
		assert.Contains(t, err.Error(), "result abc not found")
	})

	t.Run("reference error is unprocessable", func(t *testing.T) {
		err := ErrReference("one or both teams do not exist")
		assert.Equal(t, "REFERENCE_ERROR", err.Code)
		assert.Equal(t, 422, err.Status)
	})

	t.Run("unwrap exposes cause", func(t *testing.T) {
		cause := assert.AnError
		err := ErrReconciliation("team-1", cause)
		assert.ErrorIs(t, err, cause)
	})
}
