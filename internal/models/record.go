package models

import "time"

// Record is the identity every stored entity embeds. IDs are opaque
// strings assigned once by the store and never changed afterwards.
type Record struct {
	ID string `json:"id"`
}

func (r *Record) Meta() *Record { return r }

// Identified is satisfied by a pointer to any model embedding Record.
type Identified interface {
	Meta() *Record
}

// Dated is satisfied by records anchored to a calendar day. Only the
// day component of the returned time participates in indexing.
type Dated interface {
	Day() time.Time
}

// Timed is satisfied by dated records that may carry a clock time in
// "15:04" form. An empty string means the record has no time of day.
type Timed interface {
	ClockTime() string
}
