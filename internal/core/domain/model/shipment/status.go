package shipment

import (
	"fmt"

	"customs/internal/pkg/errs"
)

// Status is the lifecycle state of a package.
//
//	Received ─> CustomsPending ─> CustomsCleared ─> ReadyPickup ─> Delivered
//	    │              │                 │               │
//	    └──────────────┴──── OnHold ─────┴───────────────┘
//
// Delivered is terminal in the pipeline, but the engine does not block
// manual corrections away from it.
type Status int

const (
	// Unknown catches uninitialized values and is never persisted.
	Unknown Status = iota
	Received
	CustomsPending
	CustomsCleared
	ReadyPickup
	Delivered
	OnHold
)

type statusText struct {
	code    string
	display string
}

func getStatusTexts() map[Status]statusText {
	//nolint:exhaustive // Unknown has no text
	return map[Status]statusText{
		Received:       {code: "received", display: "Received"},
		CustomsPending: {code: "customs-pending", display: "Customs Pending"},
		CustomsCleared: {code: "customs-cleared", display: "Customs Cleared"},
		ReadyPickup:    {code: "ready-pickup", display: "Ready for Pickup"},
		Delivered:      {code: "delivered", display: "Delivered"},
		OnHold:         {code: "on-hold", display: "On Hold"},
	}
}

// pipelineRank orders the canonical pipeline. OnHold sits outside it.
func getPipelineRanks() map[Status]int {
	//nolint:exhaustive // Unknown and OnHold are not part of the pipeline
	return map[Status]int{
		Received:       1,
		CustomsPending: 2,
		CustomsCleared: 3,
		ReadyPickup:    4,
		Delivered:      5,
	}
}

// AllStatuses returns every valid status in pipeline order, OnHold last.
func AllStatuses() []Status {
	return []Status{Received, CustomsPending, CustomsCleared, ReadyPickup, Delivered, OnHold}
}

// ParseStatus converts a wire code such as "customs-cleared" into a Status.
//
// Returns a *errs.ValueIsInvalidError for unrecognized codes.
func ParseStatus(code string) (Status, error) {
	for status, text := range getStatusTexts() {
		if text.code == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate returns a *errs.ValueIsInvalidError unless s is one of AllStatuses.
func (s Status) Validate() error {
	if _, ok := getStatusTexts()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code, e.g. "ready-pickup", or "unknown".
func (s Status) String() string {
	if text, ok := getStatusTexts()[s]; ok {
		return text.code
	}
	return "unknown"
}

// DisplayText returns the human-readable label used in activity entries,
// e.g. "Ready for Pickup".
func (s Status) DisplayText() string {
	if text, ok := getStatusTexts()[s]; ok {
		return text.display
	}
	return "Unknown"
}

// IsTerminal reports whether s ends the pipeline.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// HasReachedClearance reports whether a package in s has been through customs.
func (s Status) HasReachedClearance() bool {
	rank, ok := getPipelineRanks()[s]
	return ok && rank >= getPipelineRanks()[CustomsCleared]
}

// IsForwardMove reports whether moving from one status to another follows the
// pipeline. Moves into or out of OnHold count as forward unless leaving a
// terminal status. It is informational only; transitions are not restricted by it.
func IsForwardMove(from, to Status) bool {
	if from.IsTerminal() {
		return false
	}
	if from == OnHold || to == OnHold {
		return true
	}
	ranks := getPipelineRanks()
	return ranks[to] >= ranks[from]
}
