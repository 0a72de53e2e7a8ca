package planner

import "sort"

const unknownZoneRank = 99

var zoneRanks = map[Zone]int{
	ZoneJejuEast:     0,
	ZoneJejuWest:     1,
	ZoneSeogwipoEast: 2,
	ZoneSeogwipoWest: 3,
	ZoneOther:        4,
}

// Candidate is a place scored against the current query.
type Candidate struct {
	Place      *Place
	Similarity float64
}

// Pools holds the ranked candidates of each category.
type Pools struct {
	Attractions []Candidate
	Food        []Candidate
	Stay        []Candidate
}

func (p Pools) Empty() bool {
	return len(p.Attractions) == 0 && len(p.Food) == 0 && len(p.Stay) == 0
}

func ZoneRank(z Zone) int {
	if r, ok := zoneRanks[z]; ok {
		return r
	}
	return unknownZoneRank
}

// Rank partitions candidates by category and orders each pool by zone rank,
// then similarity descending. Equal keys keep their input order.
func Rank(candidates []Candidate) Pools {
	var pools Pools
	for _, c := range candidates {
		switch c.Place.Category {
		case CategoryFood:
			pools.Food = append(pools.Food, c)
		case CategoryStay:
			pools.Stay = append(pools.Stay, c)
		default:
			pools.Attractions = append(pools.Attractions, c)
		}
	}
	sortPool(pools.Attractions)
	sortPool(pools.Food)
	sortPool(pools.Stay)
	return pools
}

func sortPool(pool []Candidate) {
	sort.SliceStable(pool, func(i, j int) bool {
		ri, rj := ZoneRank(pool[i].Place.Zone), ZoneRank(pool[j].Place.Zone)
		if ri != rj {
			return ri < rj
		}
		return pool[i].Similarity > pool[j].Similarity
	})
}

// UsedSet tracks place ids already placed in an itinerary.
type UsedSet map[int]struct{}

func (u UsedSet) Has(id int) bool {
	_, ok := u[id]
	return ok
}

func (u UsedSet) Add(id int) { u[id] = struct{}{} }

// PickBest returns the first unused candidate in the preferred zone, or the
// first unused candidate overall when the zone has none. An empty preferred
// zone skips the zone pass.
func PickBest(pool []Candidate, used UsedSet, preferred Zone) (Candidate, bool) {
	if preferred != "" {
		for _, c := range pool {
			if c.Place.Zone == preferred && !used.Has(c.Place.ID) {
				return c, true
			}
		}
	}
	for _, c := range pool {
		if !used.Has(c.Place.ID) {
			return c, true
		}
	}
	return Candidate{}, false
}
