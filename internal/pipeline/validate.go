package pipeline

import (
	"fmt"

	"github.com/pdewey/pburn/internal/model"
)

// SeatCountError reports a seat count that is not a positive integer.
type SeatCountError struct {
	Seats int
}

func (e *SeatCountError) Error() string {
	return fmt.Sprintf("seat count must be a positive integer (got %d)", e.Seats)
}

// SeatError reports a seat count below the number of distinct users in the
// report. Computing metrics with such a count would yield an adoption rate
// above 100%% and negative unused seats.
type SeatError struct {
	Seats       int
	UniqueUsers int
}

func (e *SeatError) Error() string {
	return fmt.Sprintf(
		"the number of seat licenses (%d) must be at least equal to the number of unique users in the report (%d); increase the seat count to at least %d",
		e.Seats, e.UniqueUsers, e.UniqueUsers,
	)
}

// ValidateSeats is the gate that must pass before Compute is called. It runs
// regardless of capacity-only mode; an empty row set has zero unique users
// and passes trivially.
func ValidateSeats(rows []model.UsageRow, totalSeats int) error {
	if totalSeats <= 0 {
		return &SeatCountError{Seats: totalSeats}
	}
	if unique := UniqueUsers(rows); totalSeats < unique {
		return &SeatError{Seats: totalSeats, UniqueUsers: unique}
	}
	return nil
}
