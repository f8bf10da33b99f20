package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

func TestRecommend(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	cfg := DefaultAdvisorConfig()

	recentTouch := func(dealID string) []entities.Activity {
		return []entities.Activity{
			{ID: "a1", DealID: dealID, Type: "call", CreatedAt: now.AddDate(0, 0, -2)},
		}
	}

	severities := func(recs []Recommendation) []Severity {
		out := make([]Severity, 0, len(recs))
		for _, r := range recs {
			out = append(out, r.Severity)
		}
		return out
	}

	t.Run("healthy deal gets nothing", func(t *testing.T) {
		close := now.AddDate(0, 0, 30)
		deal := entities.Deal{
			ID:            "d1",
			Stage:         entities.StageNegotiation,
			Status:        entities.DealStatusActive,
			Probability:   75,
			Value:         decimal.NewFromInt(20000),
			ExpectedClose: &close,
			CreatedAt:     now.AddDate(0, 0, -10),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 0 {
			t.Fatalf("expected no recommendations, got %v", recs)
		}
	})

	t.Run("overdue deal is urgent", func(t *testing.T) {
		close := now.AddDate(0, 0, -4)
		deal := entities.Deal{
			ID:            "d1",
			Stage:         entities.StageNegotiation,
			Status:        entities.DealStatusActive,
			Probability:   75,
			ExpectedClose: &close,
			CreatedAt:     now.AddDate(0, 0, -10),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 1 || recs[0].Severity != SeverityUrgent {
			t.Fatalf("expected one urgent advisory, got %v", recs)
		}
		if !strings.Contains(recs[0].Message, "4 days ago") {
			t.Fatalf("unexpected message: %s", recs[0].Message)
		}
	})

	t.Run("close date earlier today is not overdue", func(t *testing.T) {
		close := time.Date(2026, 8, 15, 6, 0, 0, 0, time.UTC)
		deal := entities.Deal{
			ID:            "d1",
			Stage:         entities.StageNegotiation,
			Status:        entities.DealStatusActive,
			Probability:   75,
			ExpectedClose: &close,
			CreatedAt:     now.AddDate(0, 0, -10),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 1 || recs[0].Severity != SeverityWarning {
			t.Fatalf("expected the closing-soon warning, got %v", recs)
		}
		if !strings.Contains(recs[0].Message, "close in 0 days") {
			t.Fatalf("unexpected message: %s", recs[0].Message)
		}
	})

	t.Run("closing soon is a warning", func(t *testing.T) {
		close := now.AddDate(0, 0, 3)
		deal := entities.Deal{
			ID:            "d1",
			Stage:         entities.StageNegotiation,
			Status:        entities.DealStatusActive,
			Probability:   75,
			ExpectedClose: &close,
			CreatedAt:     now.AddDate(0, 0, -10),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 1 || recs[0].Severity != SeverityWarning {
			t.Fatalf("expected one warning, got %v", recs)
		}
	})

	t.Run("closed deal skips date rules", func(t *testing.T) {
		close := now.AddDate(0, 0, -30)
		deal := entities.Deal{
			ID:            "d1",
			Stage:         entities.StageWon,
			Status:        entities.DealStatusWon,
			Probability:   100,
			ExpectedClose: &close,
			CreatedAt:     now.AddDate(0, 0, -60),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 0 {
			t.Fatalf("expected nothing for a won deal, got %v", recs)
		}
	})

	t.Run("stale lead", func(t *testing.T) {
		deal := entities.Deal{
			ID:          "d1",
			Stage:       entities.StageLead,
			Status:      entities.DealStatusActive,
			Probability: 10,
			CreatedAt:   now.AddDate(0, 0, -45),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 1 || recs[0].Severity != SeverityInfo {
			t.Fatalf("expected one info advisory, got %v", recs)
		}
		if !strings.Contains(recs[0].Message, "45 days") {
			t.Fatalf("unexpected message: %s", recs[0].Message)
		}
	})

	t.Run("low probability proposal", func(t *testing.T) {
		deal := entities.Deal{
			ID:          "d1",
			Stage:       entities.StageProposal,
			Status:      entities.DealStatusActive,
			Probability: 45,
			CreatedAt:   now.AddDate(0, 0, -5),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 1 || recs[0].Severity != SeverityInfo {
			t.Fatalf("expected one info advisory, got %v", recs)
		}
	})

	t.Run("probability below stage band", func(t *testing.T) {
		deal := entities.Deal{
			ID:          "d1",
			Stage:       entities.StageNegotiation,
			Status:      entities.DealStatusActive,
			Probability: 10,
			CreatedAt:   now.AddDate(0, 0, -5),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 1 || recs[0].Severity != SeverityInfo {
			t.Fatalf("expected one info advisory, got %v", recs)
		}
		if !strings.Contains(recs[0].Message, "below the usual range") {
			t.Fatalf("unexpected message: %s", recs[0].Message)
		}
	})

	t.Run("proposal rule and band rule stack", func(t *testing.T) {
		deal := entities.Deal{
			ID:          "d1",
			Stage:       entities.StageProposal,
			Status:      entities.DealStatusActive,
			Probability: 30,
			CreatedAt:   now.AddDate(0, 0, -5),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 2 || recs[0].Severity != SeverityInfo || recs[1].Severity != SeverityInfo {
			t.Fatalf("expected two info advisories, got %v", recs)
		}
	})

	t.Run("high value early stage", func(t *testing.T) {
		deal := entities.Deal{
			ID:          "d1",
			Stage:       entities.StageQualified,
			Status:      entities.DealStatusActive,
			Probability: 25,
			Value:       decimal.NewFromInt(250000),
			CreatedAt:   now.AddDate(0, 0, -5),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 1 || recs[0].Severity != SeverityOpportunity {
			t.Fatalf("expected one opportunity advisory, got %v", recs)
		}
	})

	t.Run("threshold value itself does not trigger", func(t *testing.T) {
		deal := entities.Deal{
			ID:          "d1",
			Stage:       entities.StageQualified,
			Status:      entities.DealStatusActive,
			Probability: 25,
			Value:       decimal.NewFromInt(100000),
			CreatedAt:   now.AddDate(0, 0, -5),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 0 {
			t.Fatalf("expected nothing at the threshold, got %v", recs)
		}
	})

	t.Run("probability above stage band", func(t *testing.T) {
		deal := entities.Deal{
			ID:          "d1",
			Stage:       entities.StageProposal,
			Status:      entities.DealStatusActive,
			Probability: 80,
			CreatedAt:   now.AddDate(0, 0, -5),
		}
		recs := Recommend(deal, recentTouch("d1"), now, cfg)
		if len(recs) != 1 || recs[0].Severity != SeveritySuccess {
			t.Fatalf("expected one success advisory, got %v", recs)
		}
	})

	t.Run("no recent touchpoint", func(t *testing.T) {
		deal := entities.Deal{
			ID:          "d1",
			Stage:       entities.StageNegotiation,
			Status:      entities.DealStatusActive,
			Probability: 75,
			CreatedAt:   now.AddDate(0, 0, -10),
		}
		activities := []entities.Activity{
			// Old touch on this deal, fresh touch on another one.
			{ID: "a1", DealID: "d1", Type: "call", CreatedAt: now.AddDate(0, 0, -20)},
			{ID: "a2", DealID: "other", Type: "call", CreatedAt: now.AddDate(0, 0, -1)},
		}
		recs := Recommend(deal, activities, now, cfg)
		if len(recs) != 1 || recs[0].Severity != SeverityWarning {
			t.Fatalf("expected one warning, got %v", recs)
		}
		if !strings.Contains(recs[0].Message, "touchpoint") {
			t.Fatalf("unexpected message: %s", recs[0].Message)
		}
	})

	t.Run("rules stack in insertion order", func(t *testing.T) {
		close := now.AddDate(0, 0, -3)
		deal := entities.Deal{
			ID:            "d1",
			Stage:         entities.StageLead,
			Status:        entities.DealStatusActive,
			Probability:   10,
			Value:         decimal.NewFromInt(500000),
			ExpectedClose: &close,
			CreatedAt:     now.AddDate(0, 0, -60),
		}
		recs := Recommend(deal, nil, now, cfg)
		got := severities(recs)
		want := []Severity{SeverityUrgent, SeverityInfo, SeverityOpportunity, SeverityWarning}
		if len(got) != len(want) {
			t.Fatalf("expected %d advisories, got %v", len(want), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("advisory %d = %s, want %s", i, got[i], want[i])
			}
		}
	})
}
