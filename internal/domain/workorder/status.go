package workorder

import "github.com/nextgencars/backend/pkg/errcode"

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusOnHold     Status = "ON_HOLD"
	StatusClosed     Status = "CLOSED"
	StatusCanceled   Status = "CANCELED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusOnHold, StatusClosed, StatusCanceled}

func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Frozen reports the terminal statuses an order may not leave for a
// non-terminal one.
func (s Status) Frozen() bool {
	return s == StatusClosed || s == StatusCanceled
}

// CheckTransition rejects moving a frozen order back into an active status.
// A nil request means the status is not being changed. Frozen to frozen
// (CLOSED to CANCELED) is a valid correction and stays allowed.
func CheckTransition(current Status, requested *Status) error {
	if requested == nil || !current.Frozen() || requested.Frozen() {
		return nil
	}
	return errcode.New(errcode.BadUserInput,
		"illegal status transition from %s to %s", current, *requested)
}
