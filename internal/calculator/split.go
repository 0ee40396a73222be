package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splitzee/splitzee/internal/models"
)

const (
	// PercentageTolerance is how far percentages may drift from 100 in total.
	PercentageTolerance = 0.1

	// AmountTolerance is how far custom amounts may drift from the bill total.
	AmountTolerance = 0.01
)

var (
	ErrInvalidTotal    = errors.New("total must be greater than zero")
	ErrNoParticipants  = errors.New("must have at least one participant")
	ErrEmptyName       = errors.New("participant name cannot be empty")
	ErrNegativeShare   = errors.New("participant share cannot be negative")
	ErrInvalidShare    = errors.New("participant share must be a finite number")
	ErrPercentageSum   = errors.New("percentages do not sum to 100")
	ErrAmountMismatch  = errors.New("amounts do not match total")
	ErrUnknownStrategy = errors.New("unknown split strategy")
)

// ParseStrategy parses "equal", "percentage" or "custom" (case-insensitive).
func ParseStrategy(s string) (models.SplitStrategy, error) {
	switch st := models.SplitStrategy(strings.ToLower(strings.TrimSpace(s))); st {
	case models.SplitEqual, models.SplitPercentage, models.SplitCustom:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// ComputeSplit divides total among participants according to strategy.
// It returns a new slice in input order; the input is not modified.
//
//   - equal: each share is total/n rounded half-up to cents
//   - percentage: each share is total*percentage/100 rounded to cents;
//     percentages must sum to 100 within PercentageTolerance
//   - custom: entered amounts pass through unchanged;
//     they must sum to total within AmountTolerance
func ComputeSplit(total float64, strategy models.SplitStrategy, participants []models.Participant) ([]models.Participant, error) {
	if !finite(total) || total <= 0 {
		return nil, ErrInvalidTotal
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	for i, p := range participants {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w (participant %d)", ErrEmptyName, i+1)
		}
	}

	result := make([]models.Participant, len(participants))
	copy(result, participants)

	switch strategy {
	case models.SplitEqual:
		share := RoundCents(decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(len(result)))))
		for i := range result {
			result[i].Amount = share
		}

	case models.SplitPercentage:
		sum := decimal.Zero
		for _, p := range result {
			if !finite(p.Percentage) {
				return nil, fmt.Errorf("%w: %s has %v%%", ErrInvalidShare, p.Name, p.Percentage)
			}
			if p.Percentage < 0 {
				return nil, fmt.Errorf("%w: %s has %.2f%%", ErrNegativeShare, p.Name, p.Percentage)
			}
			sum = sum.Add(decimal.NewFromFloat(p.Percentage))
		}
		if outside(sum, decimal.NewFromInt(100), PercentageTolerance) {
			return nil, fmt.Errorf("%w: got %s%%", ErrPercentageSum, sum.StringFixed(2))
		}
		t := decimal.NewFromFloat(total)
		for i := range result {
			result[i].Amount = RoundCents(t.Mul(decimal.NewFromFloat(result[i].Percentage)).Div(decimal.NewFromInt(100)))
		}

	case models.SplitCustom:
		sum := decimal.Zero
		for _, p := range result {
			if !finite(p.Amount) {
				return nil, fmt.Errorf("%w: %s has %v", ErrInvalidShare, p.Name, p.Amount)
			}
			if p.Amount < 0 {
				return nil, fmt.Errorf("%w: %s has %.2f", ErrNegativeShare, p.Name, p.Amount)
			}
			sum = sum.Add(decimal.NewFromFloat(p.Amount))
		}
		if outside(sum, decimal.NewFromFloat(total), AmountTolerance) {
			return nil, fmt.Errorf("%w: custom amounts (%s) don't match total amount (%.2f)", ErrAmountMismatch, sum.StringFixed(2), total)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	return result, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// outside reports whether |got - want| exceeds tolerance.
// Sums are exact decimals, so 50 + 50.01 is 0.01 away from 100, not 0.0100000000000051.
func outside(got, want decimal.Decimal, tolerance float64) bool {
	return got.Sub(want).Abs().GreaterThan(decimal.NewFromFloat(tolerance))
}

// RoundCents rounds d to two decimal places, halves away from zero.
func RoundCents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Calculate runs ComputeSplit and packages the outcome for display, sharing and export.
func Calculate(total float64, strategy models.SplitStrategy, participants []models.Participant, notes string) (models.SplitResult, error) {
	shares, err := ComputeSplit(total, strategy, participants)
	if err != nil {
		return models.SplitResult{}, err
	}
	return models.SplitResult{
		Total:        total,
		Strategy:     strategy,
		Participants: shares,
		Notes:        strings.TrimSpace(notes),
	}, nil
}
