// Package localday converts between stored UTC instants and calendar days in
// the application timezone (APP_TZ). Analytics bucketing and reminder "today"
// windows both go through Zone so they always agree on where a day starts.
package localday

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

const DateLayout = "2006-01-02"

// Range is a half-open [From, To) interval of UTC instants.
type Range struct {
	From time.Time
	To   time.Time
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

type Zone struct {
	loc *time.Location
}

// Load resolves an IANA timezone name. Empty means UTC.
func Load(name string) (Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UTC(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return Zone{loc: loc}, nil
}

func UTC() Zone { return Zone{loc: time.UTC} }

func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

func (z Zone) Name() string { return z.Location().String() }

// Key is the day bucket of t: its local calendar date as YYYY-MM-DD.
func (z Zone) Key(t time.Time) string {
	return t.In(z.Location()).Format(DateLayout)
}

// Hour is the local wall-clock hour of t.
func (z Zone) Hour(t time.Time) int {
	return t.In(z.Location()).Hour()
}

// StartOfDay returns the UTC instant of local midnight on t's local date.
func (z Zone) StartOfDay(t time.Time) time.Time {
	lt := t.In(z.Location())
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, z.Location()).UTC()
}

// Day is the local calendar day containing t.
func (z Zone) Day(t time.Time) Range {
	start := z.StartOfDay(t)
	return Range{From: start, To: z.addDays(start, 1)}
}

// ParseDate parses YYYY-MM-DD as local midnight, returned in UTC.
func (z Zone) ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), z.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d.UTC(), nil
}

// DateDay is the local day named by a YYYY-MM-DD string.
func (z Zone) DateDay(s string) (Range, error) {
	start, err := z.ParseDate(s)
	if err != nil {
		return Range{}, err
	}
	return Range{From: start, To: z.addDays(start, 1)}, nil
}

// StartOfYear returns local Jan 1 00:00 of t's local year, in UTC.
func (z Zone) StartOfYear(t time.Time) time.Time {
	lt := t.In(z.Location())
	return time.Date(lt.Year(), time.January, 1, 0, 0, 0, 0, z.Location()).UTC()
}

// addDays moves by calendar days in local time so DST days keep their true length.
func (z Zone) addDays(t time.Time, n int) time.Time {
	return t.In(z.Location()).AddDate(0, 0, n).UTC()
}
