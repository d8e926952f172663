// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownClub is returned when a club name is not in the fixed club set.
	ErrUnknownClub = errors.New("unknown club")
	// ErrPlayerNotFound is returned when a player is not registered.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrAlreadyRegistered signals a registration for an existing player id.
	ErrAlreadyRegistered = errors.New("player already registered")
	// ErrInsufficientBudget signals that the buying club cannot afford the price.
	ErrInsufficientBudget = errors.New("insufficient budget")
	// ErrInvalidAmount signals a negative or malformed price.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDuration signals a loan duration that is not a positive day count.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrPersistence signals that durable storage did not complete a read or write.
	ErrPersistence = errors.New("persistence failure")
	// ErrCorruptSnapshot signals a stored document that cannot be trusted.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrUnknownClub, "UnknownClub"},
	{ErrPlayerNotFound, "PlayerNotFound"},
	{ErrAlreadyRegistered, "AlreadyRegistered"},
	{ErrInsufficientBudget, "InsufficientBudget"},
	{ErrInvalidAmount, "InvalidAmount"},
	{ErrInvalidDuration, "InvalidDuration"},
	{ErrInvalidArgument, "InvalidArgument"},
	{ErrCorruptSnapshot, "CorruptSnapshot"},
	{ErrPersistence, "PersistenceFailure"},
}

// Kind returns the failure tag of err, "" for nil and "Internal" for errors
// outside the domain set.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}
