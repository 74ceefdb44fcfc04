package models

import "errors"

// Storage-level outcomes shared by repositories and services.
var (
	ErrConflict     = errors.New("record already exists")
	ErrSlotAbsent   = errors.New("slot is absent")
	ErrSlotConsumed = errors.New("slot already consumed")
	ErrSlotMismatch = errors.New("slot value mismatch")
)
