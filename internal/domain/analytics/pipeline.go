package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

// The functions in this package are pure computations over an immutable
// snapshot of records supplied by the caller. They never query a store, never
// mutate their inputs and never read the wall clock; time-windowed operations
// take now explicitly. That makes them safe for concurrent callers and for
// deterministic tests.

// StageMetrics summarizes the active deals sitting in one stage.
type StageMetrics struct {
	Count          int             `json:"count"`
	TotalValue     decimal.Decimal `json:"total_value"`
	WeightedValue  decimal.Decimal `json:"weighted_value"`
	AvgProbability float64         `json:"avg_probability"`
}

// StageDistribution groups the current pipeline by stage. Only Active deals
// contribute; Won/Lost/On Hold deals are not part of the current pipeline.
// Every known stage is present in the result, zeroed when empty.
func StageDistribution(deals []entities.Deal) map[entities.Stage]StageMetrics {
	out := make(map[entities.Stage]StageMetrics, len(entities.StageOrder))
	probSums := make(map[entities.Stage]int, len(entities.StageOrder))
	for _, s := range entities.StageOrder {
		out[s] = StageMetrics{TotalValue: decimal.Zero, WeightedValue: decimal.Zero}
	}

	for _, d := range deals {
		if d.Status != entities.DealStatusActive || !d.Stage.Valid() {
			continue
		}
		m := out[d.Stage]
		m.Count++
		m.TotalValue = m.TotalValue.Add(d.Value)
		m.WeightedValue = m.WeightedValue.Add(d.WeightedValue())
		out[d.Stage] = m
		probSums[d.Stage] += d.Probability
	}

	for s, m := range out {
		if m.Count > 0 {
			m.AvgProbability = round2(float64(probSums[s]) / float64(m.Count))
			out[s] = m
		}
	}
	return out
}

// ConversionRates computes, for every stage with at least one outgoing
// transition, the percentage split of where deals went next. Stages with no
// outgoing transitions are omitted from the result entirely (rather than
// carrying an all-zero row). Percentages are rounded to 2 decimals.
func ConversionRates(transitions []entities.StageTransition) map[entities.Stage]map[entities.Stage]float64 {
	counts := make(map[entities.Stage]map[entities.Stage]int)
	totals := make(map[entities.Stage]int)
	for _, tr := range transitions {
		if counts[tr.FromStage] == nil {
			counts[tr.FromStage] = make(map[entities.Stage]int)
		}
		counts[tr.FromStage][tr.ToStage]++
		totals[tr.FromStage]++
	}

	out := make(map[entities.Stage]map[entities.Stage]float64, len(counts))
	for from, row := range counts {
		total := totals[from]
		if total == 0 {
			continue
		}
		out[from] = make(map[entities.Stage]float64, len(row))
		for to, n := range row {
			out[from][to] = round2(float64(n) / float64(total) * 100)
		}
	}
	return out
}

// StageVelocity is the average dwell time for one stage.
type StageVelocity struct {
	AvgDays    float64 `json:"avg_days"`
	SampleSize int     `json:"sample_size"`
}

// Velocity measures how long deals sit in each stage before moving on. For
// every transition leaving a stage, the matching entry is the latest earlier
// transition of the same deal into that stage; exits with no matching entry
// are excluded from the sample. Transitions are indexed per deal once, so the
// matching is in-memory regardless of snapshot size.
func Velocity(transitions []entities.StageTransition) map[entities.Stage]StageVelocity {
	byDeal := indexByDeal(transitions)

	daySums := make(map[entities.Stage]int)
	samples := make(map[entities.Stage]int)

	for _, history := range byDeal {
		for i, leaving := range history {
			stage := leaving.FromStage
			// Latest earlier entry into the stage being left.
			for j := i - 1; j >= 0; j-- {
				if history[j].ToStage == stage && !history[j].ChangedAt.After(leaving.ChangedAt) {
					daySums[stage] += wholeDaysBetween(history[j].ChangedAt, leaving.ChangedAt)
					samples[stage]++
					break
				}
			}
		}
	}

	out := make(map[entities.Stage]StageVelocity, len(samples))
	for stage, n := range samples {
		out[stage] = StageVelocity{
			AvgDays:    round2(float64(daySums[stage]) / float64(n)),
			SampleSize: n,
		}
	}
	return out
}

// indexByDeal groups transitions per deal, sorted chronologically.
func indexByDeal(transitions []entities.StageTransition) map[string][]entities.StageTransition {
	byDeal := make(map[string][]entities.StageTransition)
	for _, tr := range transitions {
		byDeal[tr.DealID] = append(byDeal[tr.DealID], tr)
	}
	for id := range byDeal {
		history := byDeal[id]
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].ChangedAt.Before(history[j].ChangedAt)
		})
		byDeal[id] = history
	}
	return byDeal
}

// WinRate is the percentage of closed deals that were won, 0 when nothing
// has closed yet.
func WinRate(deals []entities.Deal) float64 {
	won, lost := 0, 0
	for _, d := range deals {
		switch d.Status {
		case entities.DealStatusWon:
			won++
		case entities.DealStatusLost:
			lost++
		}
	}
	if won+lost == 0 {
		return 0
	}
	return round2(float64(won) / float64(won+lost) * 100)
}

func wholeDaysBetween(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
