package data

import "errors"

var (
	// ErrSlotTaken is returned when a booking targets a slot that already
	// has a non-cancelled appointment.
	ErrSlotTaken = errors.New("slot is already booked")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNotCancellable is returned when cancellation targets a completed
	// appointment.
	ErrNotCancellable = errors.New("appointment can no longer be cancelled")
)
