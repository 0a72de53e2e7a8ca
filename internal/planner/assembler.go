package planner

import "time"

// Stop is one entry of a day plan. Clock fields are offsets from midnight
// and are only set by the scheduled builder.
type Stop struct {
	Place       *Place
	Category    Category
	Similarity  float64
	OrderInDay  int
	Arrival     time.Duration
	Departure   time.Duration
	TravelHours float64
	StayHours   float64
}

type DayPlan struct {
	Day              int
	Stops            []Stop
	Scheduled        bool
	TotalTravelHours float64
	TotalStayHours   float64
	Start            time.Duration
	End              time.Duration
}

// DaySelection is what the shared pipeline hands to a day builder: the
// day's attraction slice plus the food and stay picks, if any.
type DaySelection struct {
	Day         int
	Attractions []Candidate
	Food        *Candidate
	Stay        *Candidate
}

// DayBuilder arranges one day's selection into stops, recording every
// committed place in used.
type DayBuilder interface {
	BuildDay(sel DaySelection, used UsedSet) DayPlan
}

// OrderedBuilder lays out a day without clock times: attractions in rank
// order, the food pick right after the first attraction and the stay pick
// last.
type OrderedBuilder struct{}

func (OrderedBuilder) BuildDay(sel DaySelection, used UsedSet) DayPlan {
	items := make([]Candidate, 0, len(sel.Attractions)+2)
	for i, a := range sel.Attractions {
		items = append(items, a)
		if i == 0 && sel.Food != nil {
			items = append(items, *sel.Food)
		}
	}
	if sel.Stay != nil {
		items = append(items, *sel.Stay)
	}

	plan := DayPlan{Day: sel.Day}
	for _, c := range items {
		if c.Place == nil || used.Has(c.Place.ID) {
			continue
		}
		used.Add(c.Place.ID)
		plan.Stops = append(plan.Stops, Stop{
			Place:      c.Place,
			Category:   c.Place.Category,
			Similarity: c.Similarity,
			OrderInDay: len(plan.Stops) + 1,
		})
	}
	return plan
}

// assemble walks the ranked pools day by day and delegates the layout of
// each day to builder. Days whose slice is empty, or whose builder commits
// nothing, are left out.
func assemble(pools Pools, days, perDay int, builder DayBuilder) []DayPlan {
	if days <= 0 || perDay <= 0 || pools.Empty() {
		return nil
	}

	attractions := pools.Attractions
	if limit := days * perDay; len(attractions) > limit {
		attractions = attractions[:limit]
	}

	used := make(UsedSet)
	var out []DayPlan
	for day := 1; day <= days; day++ {
		start := (day - 1) * perDay
		if start >= len(attractions) {
			break
		}
		end := min(start+perDay, len(attractions))

		var slice []Candidate
		for _, c := range attractions[start:end] {
			if !used.Has(c.Place.ID) {
				slice = append(slice, c)
			}
		}
		if len(slice) == 0 {
			continue
		}

		sel := DaySelection{Day: day, Attractions: slice}
		if food, ok := PickBest(pools.Food, used, dominantZone(slice)); ok {
			sel.Food = &food
		}
		if stay, ok := PickBest(pools.Stay, used, slice[len(slice)-1].Place.Zone); ok {
			sel.Stay = &stay
		}

		plan := builder.BuildDay(sel, used)
		if len(plan.Stops) == 0 {
			continue
		}
		out = append(out, plan)
	}
	return out
}

// dominantZone is the most frequent zone of the slice; the zone seen first
// wins a tie.
func dominantZone(slice []Candidate) Zone {
	counts := make(map[Zone]int)
	for _, c := range slice {
		counts[c.Place.Zone]++
	}
	var best Zone
	bestCount := 0
	for _, c := range slice {
		if n := counts[c.Place.Zone]; n > bestCount {
			best, bestCount = c.Place.Zone, n
		}
	}
	return best
}
