package analytics

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trackify/trackify-backend/internal/domain/models"
)

// ErrInvalidAmount is returned when a goal contribution is zero or negative.
var ErrInvalidAmount = errors.New("contribution amount must be greater than zero")

// ComputeGoalStatus evaluates a goal against the reference instant. Zero
// targets yield a progress of 0 rather than dividing by zero.
func ComputeGoalStatus(goal *models.Goal, now time.Time) models.GoalProgress {
	target := decimal.NewFromFloat(goal.TargetAmount)
	current := decimal.NewFromFloat(goal.CurrentAmount)

	progress := models.GoalProgress{
		Remaining: target.Sub(current),
		DaysLeft:  daysUntil(goal.Deadline, now),
	}

	if target.IsPositive() {
		progress.ProgressPercent = current.Div(target).Mul(oneHundred).Round(1)
	}

	switch {
	case goal.CurrentAmount >= goal.TargetAmount:
		progress.Status = models.GoalStatusCompleted
	case progress.DaysLeft < 0:
		progress.Status = models.GoalStatusOverdue
	default:
		progress.Status = models.GoalStatusOnTrack
	}

	return progress
}

// Contribute adds amount to the goal's saved total and re-applies the
// completion invariant. The input goal is untouched; a copy comes back.
func Contribute(goal models.Goal, amount float64, now time.Time) (models.Goal, error) {
	if amount <= 0 {
		return goal, ErrInvalidAmount
	}

	current := decimal.NewFromFloat(goal.CurrentAmount).Add(decimal.NewFromFloat(amount))
	goal.CurrentAmount = current.InexactFloat64()
	goal.ApplyCompletion(now)

	return goal, nil
}

// daysUntil is ceil((deadline - now) / 24h); negative means overdue.
func daysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}
