// Package calculator implements the balance and settlement engine.
//
// Every function here is a pure computation over its inputs: no I/O, no
// retained state, safe for concurrent callers. The storage layer hands
// in read-only snapshots (participant set, expense list, credit list)
// and the presentation layer renders whatever comes back.
package calculator

import (
	"errors"
	"fmt"

	"bucketsplit/internal/models"
)

var (
	// ErrNoParticipants is returned when a split is requested against an
	// empty participant set. Upstream validation should make this
	// unreachable for recorded transactions.
	ErrNoParticipants = errors.New("no active participants")

	// ErrUnknownSplitType is returned for a split type the calculator
	// does not recognize.
	ErrUnknownSplitType = errors.New("unknown split type")
)

// ComputeSplit distributes amount across the active participants
// according to the split policy and returns the allocation per
// participant UID. Every participant in participantIDs appears in the
// result, possibly with a zero allocation.
//
// Even splits use plain division; fractional cents are not specially
// redistributed. Percentage splits allocate amount*pct/100, with
// participants absent from the percentage mapping allocated zero. The
// percentages are deliberately NOT validated to sum to 100: callers
// validate before recording, and the calculator processes whatever
// mapping it is handed.
func ComputeSplit(amount float64, split models.SplitConfig, participantIDs []string) (map[string]float64, error) {
	if len(participantIDs) == 0 {
		return nil, ErrNoParticipants
	}

	splits := make(map[string]float64, len(participantIDs))

	switch split.Type {
	case models.SplitEven:
		perPerson := amount / float64(len(participantIDs))
		for _, uid := range participantIDs {
			splits[uid] = perPerson
		}
	case models.SplitPercentage:
		for _, uid := range participantIDs {
			splits[uid] = amount * split.Percentages[uid] / 100
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplitType, split.Type)
	}

	return splits, nil
}
