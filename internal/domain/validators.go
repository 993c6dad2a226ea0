package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateGoals checks that a goal count is a non-negative integer.
func ValidateGoals(goals int) error {
	if goals < 0 {
		return fmt.Errorf("goals must be non-negative, got %d", goals)
	}
	return nil
}

// ValidateSport checks the sport tag of a team or result.
func ValidateSport(sport string) error {
	if strings.TrimSpace(sport) == "" {
		return fmt.Errorf("sport is required")
	}
	if len(sport) > 64 {
		return fmt.Errorf("sport must be at most 64 characters")
	}
	return nil
}

// ValidateTeamName checks a team's display name.
func ValidateTeamName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("team name is required")
	}
	if len(name) > 128 {
		return fmt.Errorf("team name must be at most 128 characters")
	}
	return nil
}

// ValidateRound checks a fixture's round number.
func ValidateRound(round int) error {
	if round <= 0 {
		return fmt.Errorf("round must be positive, got %d", round)
	}
	return nil
}

// ValidatePositiveAmount checks that an amount is positive (in cents).
func ValidatePositiveAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", amount)
	}
	return nil
}

// ValidateHours checks a reservation's duration.
func ValidateHours(hours int) error {
	if hours <= 0 {
		return fmt.Errorf("hours must be positive, got %d", hours)
	}
	if hours > 12 {
		return fmt.Errorf("reservations are limited to 12 hours, got %d", hours)
	}
	return nil
}
