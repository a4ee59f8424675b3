package pricing

import "errors"

// ErrInvalidRange signals a quote with an end instant strictly before its
// start. An equal start and end is a valid same-day booking.
var ErrInvalidRange = errors.New("pricing: end of range is before its start")

// ErrNoAvailableUnit signals that no available unit of the requested space
// type can hold the party size.
var ErrNoAvailableUnit = errors.New("pricing: no available unit fits the party size")
