package period

import (
	"time"

	"github.com/N0mena/Expenses-Track/pkg/response"
	"github.com/gofiber/fiber/v2"
)

var (
	ErrInvalidRange = response.NewError(fiber.StatusBadRequest, "INVALID_DATE_RANGE", "start date must be before end date")
)

// Period is a closed date interval. Both bounds are inclusive; End is expected
// to sit at the last instant of its calendar day when derived from a month.
type Period struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (Period, error) {
	if start.After(end) {
		return Period{}, ErrInvalidRange
	}
	return Period{Start: start, End: end}, nil
}

// Month returns the period spanning a whole calendar month. Month values
// outside [1,12] roll over into adjacent years, and February lengths follow
// the calendar, both courtesy of time.Date normalization.
func Month(year int, month int) Period {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, 0).Add(-time.Millisecond)

	return Period{Start: firstDay, End: lastDay}
}

// EndOfDay pins a date to the 23:59:59.999 instant of its calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// Days is the inclusive number of calendar days covered by the period.
func (p Period) Days() int {
	start := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(p.End.Year(), p.End.Month(), p.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

func (p Period) Year() int {
	return p.Start.Year()
}

func (p Period) MonthOf() time.Month {
	return p.Start.Month()
}

// Label renders the period as YYYY-MM, the shape used by the summary endpoints.
func (p Period) Label() string {
	return p.Start.Format("2006-01")
}
