package workorder

import (
	"strings"
	"time"

	"github.com/nextgencars/backend/internal/domain/query"
	"github.com/nextgencars/backend/pkg/errcode"
)

// Predicate fields understood by the work-order repository.
const (
	FieldStatus            = "status"
	FieldClientID          = "client_id"
	FieldVehicleID         = "vehicle_id"
	FieldAssignedUserID    = "assigned_user_id"
	FieldScheduledStart    = "scheduled_start"
	FieldStartDate         = "start_date"
	FieldEndDate           = "end_date"
	FieldTitle             = "title"
	FieldDescription       = "description"
	FieldVehiclePlate      = "vehicle.license_plate"
	FieldClientFirstName   = "client.first_name"
	FieldClientLastName    = "client.last_name"
	FieldClientCompanyName = "client.company_name"
)

const (
	DefaultTake = 25
	MaxTake     = 100
)

// Filter is the loosely typed list filter sent by clients. Every field is
// optional; Q is an alias of Search with lower precedence.
type Filter struct {
	Status         *string `json:"status,omitempty" form:"status"`
	ClientID       *uint   `json:"client_id,omitempty" form:"client_id"`
	VehicleID      *uint   `json:"vehicle_id,omitempty" form:"vehicle_id"`
	AssignedUserID *uint   `json:"assigned_user_id,omitempty" form:"assigned_user_id"`
	From           *string `json:"from,omitempty" form:"from"`
	To             *string `json:"to,omitempty" form:"to"`
	Search         *string `json:"search,omitempty" form:"search"`
	Q              *string `json:"q,omitempty" form:"q"`
}

// Predicate builds the normalized query. Equality filters are AND'ed with a
// single disjunction holding the date-range and free-text conditions. An
// empty filter yields nil.
func (f Filter) Predicate() (query.Node, error) {
	var conj []query.Node

	if f.Status != nil {
		st, ok := ParseStatus(*f.Status)
		if !ok {
			return nil, errcode.New(errcode.BadUserInput, "unknown status %q", *f.Status)
		}
		conj = append(conj, query.Eq{Field: FieldStatus, Value: st})
	}
	if f.ClientID != nil {
		conj = append(conj, query.Eq{Field: FieldClientID, Value: *f.ClientID})
	}
	if f.VehicleID != nil {
		conj = append(conj, query.Eq{Field: FieldVehicleID, Value: *f.VehicleID})
	}
	if f.AssignedUserID != nil {
		conj = append(conj, query.Eq{Field: FieldAssignedUserID, Value: *f.AssignedUserID})
	}

	disj, err := f.dateConditions()
	if err != nil {
		return nil, err
	}
	disj = append(disj, f.textConditions()...)
	if len(disj) > 0 {
		conj = append(conj, query.Or(disj))
	}

	return query.AllOf(conj...), nil
}

// dateConditions matches when any of the three timestamps lies in range.
func (f Filter) dateConditions() ([]query.Node, error) {
	from, err := ParseBound("from", f.From)
	if err != nil {
		return nil, err
	}
	to, err := ParseBound("to", f.To)
	if err != nil {
		return nil, err
	}
	if from == nil && to == nil {
		return nil, nil
	}
	return []query.Node{
		query.Range{Field: FieldScheduledStart, From: from, To: to},
		query.Range{Field: FieldStartDate, From: from, To: to},
		query.Range{Field: FieldEndDate, From: from, To: to},
	}, nil
}

func (f Filter) textConditions() []query.Node {
	term := f.SearchTerm()
	if term == "" {
		return nil
	}
	return []query.Node{
		query.ContainsFold{Field: FieldTitle, Value: term},
		query.ContainsFold{Field: FieldDescription, Value: term},
		query.ContainsFold{Field: FieldVehiclePlate, Value: term},
		query.Or{
			query.ContainsFold{Field: FieldClientFirstName, Value: term},
			query.ContainsFold{Field: FieldClientLastName, Value: term},
			query.ContainsFold{Field: FieldClientCompanyName, Value: term},
		},
	}
}

// SearchTerm returns the trimmed search text. A supplied Search wins over Q
// even when it trims to empty.
func (f Filter) SearchTerm() string {
	switch {
	case f.Search != nil:
		return strings.TrimSpace(*f.Search)
	case f.Q != nil:
		return strings.TrimSpace(*f.Q)
	}
	return ""
}

// ParseBound parses an optional filter bound; blank means unbounded.
func ParseBound(name string, s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseTimestamp(*s)
	if err != nil {
		return nil, errcode.New(errcode.BadUserInput, "invalid %s date %q", name, *s)
	}
	return &t, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp accepts ISO-8601 timestamps; a bare date is midnight UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// Paginate applies defaults and clamps: skip >= 0, take in [1, MaxTake].
func Paginate(skip, take *int) (int, int) {
	s, t := 0, DefaultTake
	if skip != nil && *skip > 0 {
		s = *skip
	}
	if take != nil {
		t = *take
	}
	if t < 1 {
		t = 1
	}
	if t > MaxTake {
		t = MaxTake
	}
	return s, t
}
