package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

type Severity string

const (
	SeverityInfo        Severity = "info"
	SeverityWarning     Severity = "warning"
	SeverityUrgent      Severity = "urgent"
	SeverityOpportunity Severity = "opportunity"
	SeveritySuccess     Severity = "success"
)

// Recommendation is one advisory message for a deal.
type Recommendation struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Action   string   `json:"action"`
}

// AdvisorConfig holds the rule thresholds.
type AdvisorConfig struct {
	ClosingSoonDays        int
	StaleLeadDays          int
	LowProposalProbability int
	HighValueThreshold     decimal.Decimal
	NoTouchDays            int
}

func DefaultAdvisorConfig() AdvisorConfig {
	return AdvisorConfig{
		ClosingSoonDays:        7,
		StaleLeadDays:          30,
		LowProposalProbability: 50,
		HighValueThreshold:     decimal.NewFromInt(100000),
		NoTouchDays:            7,
	}
}

// stageProbabilityBands is the probability range considered normal for each
// open stage; deals outside it get an alignment advisory.
var stageProbabilityBands = map[entities.Stage][2]int{
	entities.StageLead:        {5, 20},
	entities.StageQualified:   {20, 40},
	entities.StageProposal:    {40, 60},
	entities.StageNegotiation: {60, 90},
}

// Recommend evaluates every advisory rule against one deal. Rules are
// independent, may all fire at once, and the result keeps insertion order
// (it is not sorted by severity).
func Recommend(deal entities.Deal, activities []entities.Activity, now time.Time, cfg AdvisorConfig) []Recommendation {
	recs := []Recommendation{}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if deal.ExpectedClose != nil && deal.Status == entities.DealStatusActive {
		// Close dates are calendar days; drop the time of day before counting.
		closeDay := time.Date(deal.ExpectedClose.Year(), deal.ExpectedClose.Month(), deal.ExpectedClose.Day(),
			0, 0, 0, 0, deal.ExpectedClose.Location())
		if deal.IsOverdue(now) {
			overdueBy := wholeDaysBetween(closeDay, today)
			recs = append(recs, Recommendation{
				Severity: SeverityUrgent,
				Message:  fmt.Sprintf("Deal is overdue: expected close was %d days ago", overdueBy),
				Action:   "Re-qualify the deal or update the expected close date",
			})
		} else if daysToClose := wholeDaysBetween(today, closeDay); daysToClose <= cfg.ClosingSoonDays {
			recs = append(recs, Recommendation{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Deal is expected to close in %d days", daysToClose),
				Action:   "Intensify engagement and finalize terms",
			})
		}
	}

	if deal.Stage == entities.StageLead && deal.AgeDays(now) > cfg.StaleLeadDays {
		recs = append(recs, Recommendation{
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("Lead has been open for %d days without qualifying", deal.AgeDays(now)),
			Action:   "Qualify or disqualify the lead",
		})
	}

	if deal.Stage == entities.StageProposal && deal.Probability < cfg.LowProposalProbability {
		recs = append(recs, Recommendation{
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("Probability %d%% is low for the Proposal stage", deal.Probability),
			Action:   "Review deal qualification and update the probability",
		})
	}

	if deal.Value.GreaterThan(cfg.HighValueThreshold) &&
		(deal.Stage == entities.StageLead || deal.Stage == entities.StageQualified) {
		recs = append(recs, Recommendation{
			Severity: SeverityOpportunity,
			Message:  "High-value deal is still in an early stage",
			Action:   "Prioritize this deal and assign senior attention",
		})
	}

	if band, ok := stageProbabilityBands[deal.Stage]; ok {
		if deal.Probability < band[0] {
			recs = append(recs, Recommendation{
				Severity: SeverityInfo,
				Message:  fmt.Sprintf("Probability %d%% is below the usual range for the %s stage", deal.Probability, deal.Stage),
				Action:   "Review deal qualification and update the probability",
			})
		} else if deal.Probability > band[1] {
			recs = append(recs, Recommendation{
				Severity: SeveritySuccess,
				Message:  fmt.Sprintf("Probability %d%% is high for the %s stage", deal.Probability, deal.Stage),
				Action:   "Consider moving the deal to the next stage",
			})
		}
	}

	touched := false
	cutoff := now.AddDate(0, 0, -cfg.NoTouchDays)
	for _, a := range activities {
		if a.DealID == deal.ID && !a.CreatedAt.Before(cutoff) {
			touched = true
			break
		}
	}
	if !touched {
		recs = append(recs, Recommendation{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("No touchpoint on this deal in the last %d days", cfg.NoTouchDays),
			Action:   "Schedule a call or meeting with the customer",
		})
	}

	return recs
}
