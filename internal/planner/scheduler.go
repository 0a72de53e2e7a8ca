package planner

import (
	"fmt"
	"time"
)

const (
	DefaultStartTime  = 9 * time.Hour
	DefaultDailyHours = 10.0

	visitGrace = time.Hour
	stayGrace  = 2 * time.Hour
)

// ParseClock parses "HH:MM" into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// FormatClock renders an offset from midnight as "HH:MM". Offsets on a
// later day carry a "+N" suffix ("00:18+1"), so a stay that ends after
// midnight still reads later than it started.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d / time.Minute)
	day, m := m/(24*60), m%(24*60)
	out := fmt.Sprintf("%02d:%02d", m/60, m%60)
	if day > 0 {
		out += fmt.Sprintf("+%d", day)
	}
	return out
}

// TimedBuilder lays out a day on a simulated clock. Each stop arrives after
// the travel time from the previous zone and leaves after its visit
// duration; stops that would leave past the day's budget plus a grace
// buffer are skipped.
type TimedBuilder struct {
	Tables *Tables
	Start  time.Duration
	Budget time.Duration
}

// NewTimedBuilder falls back to 09:00 for an unparsable start time and to
// the default budget for a non-positive one.
func NewTimedBuilder(tables *Tables, startTime string, dailyHours float64) TimedBuilder {
	start, err := ParseClock(startTime)
	if err != nil {
		start = DefaultStartTime
	}
	if dailyHours <= 0 {
		dailyHours = DefaultDailyHours
	}
	return TimedBuilder{Tables: tables, Start: start, Budget: hoursToDuration(dailyHours)}
}

func (b TimedBuilder) BuildDay(sel DaySelection, used UsedSet) DayPlan {
	plan := DayPlan{Day: sel.Day, Scheduled: true}
	limit := b.Start + b.Budget
	clock := b.Start
	var prev Zone

	try := func(c Candidate, grace time.Duration) bool {
		if c.Place == nil || used.Has(c.Place.ID) {
			return false
		}
		travel := hoursToDuration(b.Tables.FirstStopHours)
		if len(plan.Stops) > 0 {
			travel = b.Tables.Travel.Between(prev, c.Place.Zone)
		}
		visit := b.Tables.VisitDuration(c.Place.Category)
		arrival := clock + travel
		departure := arrival + visit
		if departure > limit+grace {
			return false
		}

		used.Add(c.Place.ID)
		plan.Stops = append(plan.Stops, Stop{
			Place:       c.Place,
			Category:    c.Place.Category,
			Similarity:  c.Similarity,
			OrderInDay:  len(plan.Stops) + 1,
			Arrival:     arrival,
			Departure:   departure,
			TravelHours: travel.Hours(),
			StayHours:   visit.Hours(),
		})
		clock = departure
		prev = c.Place.Zone
		return true
	}

	committed := 0
	for _, a := range sel.Attractions {
		if !try(a, visitGrace) {
			continue
		}
		committed++
		if committed == 1 && sel.Food != nil {
			try(*sel.Food, visitGrace)
		}
	}
	if committed > 0 && sel.Stay != nil {
		try(*sel.Stay, stayGrace)
	}

	for _, s := range plan.Stops {
		plan.TotalTravelHours += s.TravelHours
		plan.TotalStayHours += s.StayHours
	}
	if n := len(plan.Stops); n > 0 {
		plan.Start = plan.Stops[0].Arrival
		plan.End = plan.Stops[n-1].Departure
	}
	return plan
}
