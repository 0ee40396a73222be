package models

// SplitStrategy selects how a bill total is divided among participants.
type SplitStrategy string

const (
	// SplitEqual divides the total evenly.
	SplitEqual SplitStrategy = "equal"

	// SplitPercentage divides the total by each participant's percentage.
	// Percentages must sum to 100.
	SplitPercentage SplitStrategy = "percentage"

	// SplitCustom uses amounts entered per participant.
	// Amounts must sum to the total.
	SplitCustom SplitStrategy = "custom"
)

// Participant represents one person in a bill split.
type Participant struct {
	// ID is an opaque client-side identifier, echoed back unchanged.
	ID string `json:"id"`

	// Name is the display name of the person. Must be non-empty.
	Name string `json:"name"`

	// Amount is this person's share. Entered by the user for custom splits,
	// computed (and overwritten) for equal and percentage splits.
	Amount float64 `json:"amount"`

	// Percentage is this person's share in percent.
	// Only meaningful for percentage splits.
	Percentage float64 `json:"percentage,omitempty"`
}

// SplitResult is a calculated split, ready to be shown, shared or exported.
type SplitResult struct {
	// Total is the bill amount that was split.
	Total float64 `json:"total"`

	// Strategy is the strategy that produced the amounts.
	Strategy SplitStrategy `json:"strategy"`

	// Participants holds the computed shares, in input order.
	Participants []Participant `json:"participants"`

	// Notes is optional free text attached to the split.
	Notes string `json:"notes,omitempty"`
}
