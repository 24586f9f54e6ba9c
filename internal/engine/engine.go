// Package engine orchestrates a full analysis run: every category
// calculator, the DCF, risk and technical engines, then interpretation
// and scoring. A run is deterministic and touches no shared state, so
// batch analysis can fan out freely.
package engine

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/finsight/finsight/internal/analysis/dcf"
	"github.com/finsight/finsight/internal/analysis/fundamental"
	"github.com/finsight/finsight/internal/analysis/risk"
	"github.com/finsight/finsight/internal/analysis/technical"
	"github.com/finsight/finsight/internal/scoring"
	"github.com/finsight/finsight/pkg/models"
)

// Engine runs analyses under one fixed configuration.
type Engine struct {
	cfg models.Config
	log zerolog.Logger
}

// New returns an engine using the given configuration and logger.
func New(cfg models.Config, log zerolog.Logger) *Engine {
	return &Engine{
		cfg: cfg,
		log: log.With().Str("component", "engine").Logger(),
	}
}

// Analyze computes the complete report for one snapshot. Missing input
// data surfaces as absent metrics, never as an error.
func (e *Engine) Analyze(s *models.Snapshot) *models.Report {
	e.log.Debug().Str("ticker", s.Ticker).Msg("analysis started")

	r := &models.Report{
		Ticker: s.Ticker,

		Liquidity:     fundamental.Liquidity(s),
		Leverage:      fundamental.Leverage(s),
		Efficiency:    fundamental.Efficiency(s),
		Profitability: fundamental.Profitability(s),
		Growth:        fundamental.Growth(s),
		CashFlow:      fundamental.CashFlow(s),
		Valuation:     fundamental.Multiples(s),
		Health:        fundamental.Health(s),
		TradeFX:       fundamental.TradeFX(s),
		Macro:         fundamental.Macro(s),
		Industry:      fundamental.Industry(s),

		DCF:       dcf.Valuate(s, e.cfg),
		Risk:      risk.Analyze(risk.FromSnapshot(s), e.cfg),
		Technical: technical.Compute(s),
	}
	scoring.Apply(r)

	e.log.Debug().
		Str("ticker", s.Ticker).
		Int("data_points", dataPoints(r)).
		Interface("total_score", r.Scores.Total).
		Msg("analysis complete")
	return r
}

// AnalyzeBatch analyzes each snapshot concurrently and returns the
// reports in input order. It stops early only on context cancellation.
func (e *Engine) AnalyzeBatch(ctx context.Context, snapshots []*models.Snapshot) ([]*models.Report, error) {
	reports := make([]*models.Report, len(snapshots))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range snapshots {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = e.Analyze(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func dataPoints(r *models.Report) int {
	if r.Risk == nil {
		return 0
	}
	return r.Risk.DataPoints
}
