package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pipecrm/internal/domain/entities"
)

// ReportConfig tunes the bottleneck/opportunity flags of the full pipeline
// report.
type ReportConfig struct {
	Health HealthConfig

	// A stage whose average dwell time exceeds this is flagged.
	BottleneckDays float64

	// Active deals at or above both thresholds count as focus opportunities.
	OpportunityMinValue       decimal.Decimal
	OpportunityMinProbability int
}

func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Health:                    DefaultHealthConfig(),
		BottleneckDays:            14,
		OpportunityMinValue:       decimal.NewFromInt(10000),
		OpportunityMinProbability: 60,
	}
}

type Bottleneck struct {
	Stage   entities.Stage `json:"stage"`
	AvgDays float64        `json:"avg_days"`
	Message string         `json:"message"`
}

type OpportunityFlag struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// PipelineReport is the full aggregation output consumed by the pipeline
// dashboard: distribution, conversion matrix, velocity, health and the
// derived flags, all from a single snapshot.
type PipelineReport struct {
	Stages        map[entities.Stage]StageMetrics            `json:"stages"`
	Conversion    map[entities.Stage]map[entities.Stage]float64 `json:"conversion"`
	Velocity      map[entities.Stage]StageVelocity           `json:"velocity"`
	Health        HealthReport                               `json:"health"`
	Bottlenecks   []Bottleneck                               `json:"bottlenecks"`
	Opportunities []OpportunityFlag                          `json:"opportunities"`
}

// BuildPipelineReport runs every stage-level aggregation over one snapshot.
func BuildPipelineReport(deals []entities.Deal, transitions []entities.StageTransition, now time.Time, cfg ReportConfig) PipelineReport {
	report := PipelineReport{
		Stages:        StageDistribution(deals),
		Conversion:    ConversionRates(transitions),
		Velocity:      Velocity(transitions),
		Health:        FunnelHealth(deals, now, cfg.Health),
		Bottlenecks:   []Bottleneck{},
		Opportunities: []OpportunityFlag{},
	}

	for _, stage := range entities.StageOrder {
		v, ok := report.Velocity[stage]
		if !ok || v.AvgDays <= cfg.BottleneckDays {
			continue
		}
		report.Bottlenecks = append(report.Bottlenecks, Bottleneck{
			Stage:   stage,
			AvgDays: v.AvgDays,
			Message: fmt.Sprintf("Deals spend %.1f days on average in %s", v.AvgDays, stage),
		})
	}

	highValue := 0
	for _, d := range deals {
		if d.Status != entities.DealStatusActive {
			continue
		}
		if d.Value.GreaterThanOrEqual(cfg.OpportunityMinValue) && d.Probability >= cfg.OpportunityMinProbability {
			highValue++
		}
	}
	if highValue > 0 {
		report.Opportunities = append(report.Opportunities, OpportunityFlag{
			Count:   highValue,
			Message: fmt.Sprintf("%d high-value deals with good probability", highValue),
			Action:  "Focus resources on closing these deals",
		})
	}

	return report
}
