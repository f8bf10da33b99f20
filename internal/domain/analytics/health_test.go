package analytics

import (
	"testing"
	"time"

	"pipecrm/internal/domain/entities"
)

func TestFunnelHealth(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	cfg := DefaultHealthConfig()

	activeDeal := func(stage entities.Stage, ageDays int) entities.Deal {
		return entities.Deal{
			Stage:     stage,
			Status:    entities.DealStatusActive,
			CreatedAt: now.AddDate(0, 0, -ageDays),
		}
	}

	t.Run("healthy pipeline scores 100", func(t *testing.T) {
		deals := []entities.Deal{
			activeDeal(entities.StageLead, 5),
			activeDeal(entities.StageProposal, 10),
			activeDeal(entities.StageNegotiation, 20),
			{Status: entities.DealStatusWon},
			{Status: entities.DealStatusWon},
			{Status: entities.DealStatusLost},
		}
		report := FunnelHealth(deals, now, cfg)
		if report.Score != 100 {
			t.Fatalf("expected 100, got %d (%v)", report.Score, report.Issues)
		}
		if len(report.Issues) != 0 {
			t.Fatalf("expected no issues, got %v", report.Issues)
		}
	})

	t.Run("lead-heavy funnel is deducted", func(t *testing.T) {
		deals := []entities.Deal{
			activeDeal(entities.StageLead, 5),
			activeDeal(entities.StageLead, 5),
			activeDeal(entities.StageLead, 5),
			activeDeal(entities.StageProposal, 5),
		}
		report := FunnelHealth(deals, now, cfg)
		if report.Score != 80 {
			t.Fatalf("expected 80, got %d (%v)", report.Score, report.Issues)
		}
		if len(report.Issues) != 1 {
			t.Fatalf("expected 1 issue, got %v", report.Issues)
		}
	})

	t.Run("stale share is deducted", func(t *testing.T) {
		deals := []entities.Deal{
			activeDeal(entities.StageProposal, 120),
			activeDeal(entities.StageNegotiation, 100),
			activeDeal(entities.StageProposal, 5),
		}
		report := FunnelHealth(deals, now, cfg)
		if report.Score != 85 {
			t.Fatalf("expected 85, got %d (%v)", report.Score, report.Issues)
		}
	})

	t.Run("low win rate is deducted", func(t *testing.T) {
		deals := []entities.Deal{
			activeDeal(entities.StageProposal, 5),
			{Status: entities.DealStatusWon},
			{Status: entities.DealStatusLost},
			{Status: entities.DealStatusLost},
			{Status: entities.DealStatusLost},
			{Status: entities.DealStatusLost},
			{Status: entities.DealStatusLost},
		}
		report := FunnelHealth(deals, now, cfg)
		if report.Score != 75 {
			t.Fatalf("expected 75, got %d (%v)", report.Score, report.Issues)
		}
	})

	t.Run("score floors at zero", func(t *testing.T) {
		cheap := cfg
		cheap.LeadShareDeduction = 50
		cheap.StaleDeduction = 50
		cheap.WinRateDeduction = 50

		deals := []entities.Deal{
			activeDeal(entities.StageLead, 120),
			{Status: entities.DealStatusLost},
		}
		report := FunnelHealth(deals, now, cheap)
		if report.Score != 0 {
			t.Fatalf("expected 0, got %d", report.Score)
		}
	})

	t.Run("empty snapshot is perfectly healthy", func(t *testing.T) {
		report := FunnelHealth(nil, now, cfg)
		if report.Score != 100 {
			t.Fatalf("expected 100, got %d", report.Score)
		}
	})
}
