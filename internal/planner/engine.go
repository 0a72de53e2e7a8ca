package planner

import (
	"regexp"
	"strings"
)

type Strategy string

const (
	StrategyOrdered Strategy = "ordered"
	StrategyTimed   Strategy = "timed"
)

func ParseStrategy(s string) (Strategy, bool) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyOrdered:
		return StrategyOrdered, true
	case StrategyTimed:
		return StrategyTimed, true
	}
	return "", false
}

// Request is a fully parsed itinerary query.
type Request struct {
	Tags            []string
	FreeText        string
	RegionPattern   string
	Zones           []Zone
	Days            int
	MaxPlacesPerDay int
	Strategy        Strategy
	StartTime       string
	DailyHours      float64
}

type Result struct {
	Days            []DayPlan
	Query           string
	MergedTags      []string
	FallbackApplied bool
}

func (r Result) StopCount() int {
	n := 0
	for _, d := range r.Days {
		n += len(d.Stops)
	}
	return n
}

// Engine runs the shared pipeline: filter, score, rank, then hand each day
// to the strategy's day builder. It holds no per-request state.
type Engine struct {
	catalog *Catalog
	tables  *Tables
	scorer  *Scorer
}

func NewEngine(catalog *Catalog, tables *Tables) *Engine {
	return &Engine{
		catalog: catalog,
		tables:  tables,
		scorer:  NewScorer(catalog.Index(), tables),
	}
}

func (e *Engine) Catalog() *Catalog { return e.catalog }

func (e *Engine) Plan(req Request) Result {
	query, merged := e.scorer.BuildQuery(req.Tags, req.FreeText)
	res := Result{Query: query, MergedTags: merged}
	if strings.TrimSpace(query) == "" {
		return res
	}

	candidates := e.filter(req.RegionPattern, req.Zones)
	if len(candidates) == 0 {
		candidates = e.all()
		res.FallbackApplied = true
	}

	pools := Rank(e.scorer.Score(query, candidates))
	res.Days = assemble(pools, req.Days, req.MaxPlacesPerDay, e.builder(req))
	return res
}

func (e *Engine) builder(req Request) DayBuilder {
	if req.Strategy == StrategyTimed {
		return NewTimedBuilder(e.tables, req.StartTime, req.DailyHours)
	}
	return OrderedBuilder{}
}

func (e *Engine) all() []*Place {
	places := e.catalog.Places()
	out := make([]*Place, len(places))
	for i := range places {
		out[i] = &places[i]
	}
	return out
}

// filter keeps places whose address matches the region pattern and whose
// zone is in zones. The pattern is tried as a regular expression and, when
// it does not compile, matched as a literal substring.
func (e *Engine) filter(pattern string, zones []Zone) []*Place {
	match := func(string) bool { return true }
	if p := strings.TrimSpace(pattern); p != "" {
		if re, err := regexp.Compile(p); err == nil {
			match = re.MatchString
		} else {
			match = func(addr string) bool { return strings.Contains(addr, p) }
		}
	}

	var zoneSet map[Zone]struct{}
	if len(zones) > 0 {
		zoneSet = make(map[Zone]struct{}, len(zones))
		for _, z := range zones {
			zoneSet[z] = struct{}{}
		}
	}

	places := e.catalog.Places()
	var out []*Place
	for i := range places {
		p := &places[i]
		if !match(p.Address) {
			continue
		}
		if zoneSet != nil {
			if _, ok := zoneSet[p.Zone]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
