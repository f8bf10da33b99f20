package analytics

import (
	"fmt"
	"time"

	"pipecrm/internal/domain/entities"
)

// HealthConfig holds the funnel-health thresholds and deductions. They are
// heuristics, not laws; callers may tune them.
type HealthConfig struct {
	// Too many active deals stuck at the top of the funnel.
	LeadShareThreshold float64
	LeadShareDeduction int

	// Too many active deals older than StaleAgeDays.
	StaleAgeDays        int
	StaleShareThreshold float64
	StaleDeduction      int

	// Overall win rate below MinWinRatePercent.
	MinWinRatePercent float64
	WinRateDeduction  int
}

func DefaultHealthConfig() HealthConfig {
	return HealthConfig{
		LeadShareThreshold:  0.60,
		LeadShareDeduction:  20,
		StaleAgeDays:        90,
		StaleShareThreshold: 0.30,
		StaleDeduction:      15,
		MinWinRatePercent:   20,
		WinRateDeduction:    25,
	}
}

// HealthReport is a 0-100 summary of funnel imbalance, staleness and win-rate
// weakness, with one human-readable issue per triggered deduction.
type HealthReport struct {
	Score  int      `json:"score"`
	Issues []string `json:"issues"`
}

// FunnelHealth scores the pipeline. The score starts at 100, each triggered
// rule deducts its configured amount, and the result floors at 0.
func FunnelHealth(deals []entities.Deal, now time.Time, cfg HealthConfig) HealthReport {
	report := HealthReport{Score: 100, Issues: []string{}}

	active := 0
	inLead := 0
	stale := 0
	for _, d := range deals {
		if d.Status != entities.DealStatusActive {
			continue
		}
		active++
		if d.Stage == entities.StageLead {
			inLead++
		}
		if d.AgeDays(now) > cfg.StaleAgeDays {
			stale++
		}
	}

	if active > 0 {
		leadShare := float64(inLead) / float64(active)
		if leadShare > cfg.LeadShareThreshold {
			report.Score -= cfg.LeadShareDeduction
			report.Issues = append(report.Issues, fmt.Sprintf(
				"%.0f%% of active deals are still in the Lead stage; qualification is lagging", leadShare*100))
		}

		staleShare := float64(stale) / float64(active)
		if staleShare > cfg.StaleShareThreshold {
			report.Score -= cfg.StaleDeduction
			report.Issues = append(report.Issues, fmt.Sprintf(
				"%.0f%% of active deals are older than %d days", staleShare*100, cfg.StaleAgeDays))
		}
	}

	won, lost := 0, 0
	for _, d := range deals {
		switch d.Status {
		case entities.DealStatusWon:
			won++
		case entities.DealStatusLost:
			lost++
		}
	}
	if won+lost > 0 {
		winRate := float64(won) / float64(won+lost) * 100
		if winRate < cfg.MinWinRatePercent {
			report.Score -= cfg.WinRateDeduction
			report.Issues = append(report.Issues, fmt.Sprintf(
				"win rate is %.1f%%, below the %.0f%% floor", winRate, cfg.MinWinRatePercent))
		}
	}

	if report.Score < 0 {
		report.Score = 0
	}
	return report
}
