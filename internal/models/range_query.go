package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrEmptyWindow  = errors.New("range end must be after range start")
)

// RangeQuery selects one user's transactions whose date lies in the half-open
// window [Start, End). Results are always ordered by date ascending, then by
// creation time and ID so equal dates come back in a stable order.
type RangeQuery struct {
	UserID string
	Start  time.Time
	End    time.Time
}

// NewRangeQuery builds an arbitrary window query.
func NewRangeQuery(userID string, start, end time.Time) RangeQuery {
	return RangeQuery{UserID: userID, Start: start, End: end}
}

// MonthWindow returns [year-month-01, first day of the next month) in loc.
// December rolls over into January of the following year.
func MonthWindow(userID string, year, month int, loc *time.Location) (RangeQuery, error) {
	if month < 1 || month > 12 {
		return RangeQuery{}, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	if loc == nil {
		loc = time.UTC
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return RangeQuery{
		UserID: userID,
		Start:  start,
		End:    start.AddDate(0, 1, 0),
	}, nil
}

// YearWindow returns [year-01-01, (year+1)-01-01) in loc.
func YearWindow(userID string, year int, loc *time.Location) RangeQuery {
	if loc == nil {
		loc = time.UTC
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return RangeQuery{
		UserID: userID,
		Start:  start,
		End:    start.AddDate(1, 0, 0),
	}
}

// Validate checks that the query names an owner and a non-empty window.
func (q RangeQuery) Validate() error {
	if q.UserID == "" {
		return ErrMissingUserID
	}
	if !q.End.After(q.Start) {
		return ErrEmptyWindow
	}
	return nil
}

// Contains reports whether t falls inside the window.
func (q RangeQuery) Contains(t time.Time) bool {
	return !t.Before(q.Start) && t.Before(q.End)
}
