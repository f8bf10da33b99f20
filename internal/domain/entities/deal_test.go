package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestStage_DefaultProbability(t *testing.T) {
	cases := []struct {
		stage   Stage
		current int
		want    int
	}{
		{StageLead, 0, 10},
		{StageQualified, 0, 25},
		{StageProposal, 0, 50},
		{StageNegotiation, 0, 75},
		{StageWon, 0, 100},
		{StageLost, 55, 0},
		{StageOnHold, 42, 42},
	}
	for _, tc := range cases {
		if got := tc.stage.DefaultProbability(tc.current); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.stage, tc.want, got)
		}
	}
}

func TestStatusForStage(t *testing.T) {
	cases := []struct {
		stage Stage
		want  DealStatus
	}{
		{StageLead, DealStatusActive},
		{StageQualified, DealStatusActive},
		{StageProposal, DealStatusActive},
		{StageNegotiation, DealStatusActive},
		{StageWon, DealStatusWon},
		{StageLost, DealStatusLost},
		{StageOnHold, DealStatusOnHold},
	}
	for _, tc := range cases {
		if got := StatusForStage(tc.stage); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.stage, tc.want, got)
		}
	}
}

func TestDeal_WeightedValue(t *testing.T) {
	t.Run("scales by probability", func(t *testing.T) {
		d := Deal{Value: decimal.NewFromInt(10000), Probability: 75}
		if got := d.WeightedValue(); !got.Equal(decimal.NewFromInt(7500)) {
			t.Fatalf("expected 7500, got %s", got)
		}
	})

	t.Run("zero probability yields zero", func(t *testing.T) {
		d := Deal{Value: decimal.NewFromInt(10000), Probability: 0}
		if got := d.WeightedValue(); !got.Equal(decimal.Zero) {
			t.Fatalf("expected 0, got %s", got)
		}
	})

	t.Run("hundred probability keeps full value", func(t *testing.T) {
		d := Deal{Value: decimal.RequireFromString("1234.56"), Probability: 100}
		if got := d.WeightedValue(); !got.Equal(decimal.RequireFromString("1234.56")) {
			t.Fatalf("expected 1234.56, got %s", got)
		}
	})

	t.Run("decimal precision is exact", func(t *testing.T) {
		d := Deal{Value: decimal.RequireFromString("0.03"), Probability: 10}
		if got := d.WeightedValue(); !got.Equal(decimal.RequireFromString("0.003")) {
			t.Fatalf("expected 0.003, got %s", got)
		}
	})
}

func TestDeal_IsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	t.Run("past expected close", func(t *testing.T) {
		d := Deal{Status: DealStatusActive, ExpectedClose: &yesterday}
		if !d.IsOverdue(now) {
			t.Fatal("expected overdue")
		}
	})

	t.Run("future expected close", func(t *testing.T) {
		d := Deal{Status: DealStatusActive, ExpectedClose: &tomorrow}
		if d.IsOverdue(now) {
			t.Fatal("expected not overdue")
		}
	})

	t.Run("closed deals are never overdue", func(t *testing.T) {
		d := Deal{Status: DealStatusWon, ExpectedClose: &yesterday}
		if d.IsOverdue(now) {
			t.Fatal("won deal must not be overdue")
		}
	})

	t.Run("no expected close", func(t *testing.T) {
		d := Deal{Status: DealStatusActive}
		if d.IsOverdue(now) {
			t.Fatal("expected not overdue without a close date")
		}
	})
}

func TestDeal_CloseTime(t *testing.T) {
	updated := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	closed := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)

	t.Run("prefers closed at", func(t *testing.T) {
		d := Deal{UpdatedAt: updated, ClosedAt: &closed}
		if !d.CloseTime().Equal(closed) {
			t.Fatalf("expected %s, got %s", closed, d.CloseTime())
		}
	})

	t.Run("falls back to updated at", func(t *testing.T) {
		d := Deal{UpdatedAt: updated}
		if !d.CloseTime().Equal(updated) {
			t.Fatalf("expected %s, got %s", updated, d.CloseTime())
		}
	})
}

func TestDeal_AgeDays(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	d := Deal{CreatedAt: now.AddDate(0, 0, -45)}
	if got := d.AgeDays(now); got != 45 {
		t.Fatalf("expected 45, got %d", got)
	}
}
