// Package report renders an analysis report for terminal or machine
// consumption.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/finsight/finsight/pkg/models"
	"github.com/finsight/finsight/pkg/utils"
)

// Format specifies the output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Section identifies a report section to include/exclude.
type Section string

const (
	SectionScores          Section = "scores"
	SectionDCF             Section = "dcf"
	SectionRisk            Section = "risk"
	SectionTechnical       Section = "technical"
	SectionInterpretations Section = "interpretations"
)

// AllSections returns all report sections in display order.
func AllSections() []Section {
	return []Section{
		SectionScores,
		SectionDCF,
		SectionRisk,
		SectionTechnical,
		SectionInterpretations,
	}
}

// Config controls report rendering.
type Config struct {
	Format   Format
	Sections []Section // sections to include (default: all)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Format: FormatText, Sections: AllSections()}
}

func (c Config) hasSection(s Section) bool {
	for _, sec := range c.Sections {
		if sec == s {
			return true
		}
	}
	return false
}

// Render writes the report to w in the configured format.
func Render(w io.Writer, r *models.Report, cfg Config) error {
	if cfg.Format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return renderText(w, r, cfg)
}

func renderText(w io.Writer, r *models.Report, cfg Config) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Analysis: %s\n", r.Ticker)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 10+len(r.Ticker)))

	if cfg.hasSection(SectionScores) {
		writeScores(&b, r.Scores)
	}
	if cfg.hasSection(SectionDCF) && r.DCF != nil {
		writeDCF(&b, r.DCF)
	}
	if cfg.hasSection(SectionRisk) && r.Risk != nil {
		writeRisk(&b, r.Risk)
	}
	if cfg.hasSection(SectionTechnical) && r.Technical != nil {
		writeTechnical(&b, r.Technical)
	}
	if cfg.hasSection(SectionInterpretations) {
		writeInterpretations(&b, r.Interpretations)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeScores(b *strings.Builder, card models.Scorecard) {
	b.WriteString("\nScores\n------\n")
	if card.Total != nil {
		fmt.Fprintf(b, "  %-24s %d/100\n", "Total", *card.Total)
	}

	categories := make([]string, 0, len(card.Categories))
	for cat := range card.Categories {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		fmt.Fprintf(b, "  %-24s %d\n", cat, card.Categories[cat])
	}
	if card.Total == nil {
		b.WriteString("  no scorable metrics\n")
	}
}

func writeDCF(b *strings.Builder, d *models.DCFValuation) {
	b.WriteString("\nDCF Valuation\n-------------\n")
	pct := utils.FormatPercent
	fmt.Fprintf(b, "  %-24s %s\n", "WACC", utils.FormatOptional(d.WACC, pct))
	fmt.Fprintf(b, "  %-24s %s\n", "FCF growth", utils.FormatOptional(d.FCFGrowthRate, pct))
	fmt.Fprintf(b, "  %-24s %s\n", "Enterprise value", utils.FormatOptional(d.EnterpriseValue, utils.FormatCompact))
	fmt.Fprintf(b, "  %-24s %s\n", "Equity value", utils.FormatOptional(d.EquityValue, utils.FormatCompact))
	fmt.Fprintf(b, "  %-24s %s\n", "Intrinsic value/share", utils.FormatOptional(d.IntrinsicValue, plain))
	fmt.Fprintf(b, "  %-24s %s\n", "Target price", utils.FormatOptional(d.TargetPrice, plain))
	fmt.Fprintf(b, "  %-24s %s\n", "Upside/downside", utils.FormatOptional(d.UpsideDownside, pct))

	for _, p := range d.Projections {
		fmt.Fprintf(b, "    year %d: fcf %s (growth %s, pv %s)\n",
			p.Year, utils.FormatCompact(p.FCF), utils.FormatPercent(p.GrowthRate), utils.FormatCompact(p.PresentValue))
	}
}

func writeRisk(b *strings.Builder, p *models.RiskProfile) {
	b.WriteString("\nRisk Profile\n------------\n")
	pct := utils.FormatPercent
	fmt.Fprintf(b, "  %-24s %s\n", "Beta", utils.FormatOptional(p.Beta, plain))
	fmt.Fprintf(b, "  %-24s %s\n", "Annualized return", utils.FormatOptional(p.AnnualizedReturn, pct))
	fmt.Fprintf(b, "  %-24s %s\n", "Annualized volatility", utils.FormatOptional(p.AnnualizedVolatility, pct))
	fmt.Fprintf(b, "  %-24s %s\n", "Sharpe ratio", utils.FormatOptional(p.SharpeRatio, plain))
	fmt.Fprintf(b, "  %-24s %s\n", "Sortino ratio", utils.FormatOptional(p.SortinoRatio, plain))
	fmt.Fprintf(b, "  %-24s %s\n", "Max drawdown", utils.FormatOptional(p.MaxDrawdown, pct))
	fmt.Fprintf(b, "  %-24s %s\n", "VaR 95%", utils.FormatOptional(p.VaR95, pct))
	fmt.Fprintf(b, "  %-24s %s\n", "CVaR 95%", utils.FormatOptional(p.CVaR95, pct))
	fmt.Fprintf(b, "  %-24s %s\n", "Risk score", utils.FormatOptional(p.RiskScore, plain))
	fmt.Fprintf(b, "  %-24s %d\n", "Data points", p.DataPoints)
}

func writeTechnical(b *strings.Builder, t *models.TechnicalIndicators) {
	b.WriteString("\nTechnical Indicators\n--------------------\n")
	fmt.Fprintf(b, "  %-24s %s\n", "SMA 20/50/200",
		utils.FormatOptional(t.SMA20, plain)+" / "+utils.FormatOptional(t.SMA50, plain)+" / "+utils.FormatOptional(t.SMA200, plain))
	fmt.Fprintf(b, "  %-24s %s\n", "RSI 14", utils.FormatOptional(t.RSI14, plain))
	if t.MACD != nil {
		fmt.Fprintf(b, "  %-24s %s / %s / %s\n", "MACD (line/signal/hist)",
			utils.FormatOptional(t.MACD.MACD, plain),
			utils.FormatOptional(t.MACD.Signal, plain),
			utils.FormatOptional(t.MACD.Histogram, plain))
	}
	if t.Bollinger != nil {
		fmt.Fprintf(b, "  %-24s %.2f / %.2f / %.2f\n", "Bollinger (u/m/l)",
			t.Bollinger.Upper, t.Bollinger.Middle, t.Bollinger.Lower)
	}
	fmt.Fprintf(b, "  %-24s %s\n", "ATR 14", utils.FormatOptional(t.ATR14, plain))
	fmt.Fprintf(b, "  %-24s %s\n", "VWAP", utils.FormatOptional(t.VWAP, plain))
}

func writeInterpretations(b *strings.Builder, interps map[string]models.Interpretation) {
	if len(interps) == 0 {
		return
	}
	b.WriteString("\nInterpretations\n---------------\n")

	keys := make([]string, 0, len(interps))
	for k := range interps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		in := interps[k]
		fmt.Fprintf(b, "  [%-7s] %-36s %s\n", in.Level, k, in.Message)
	}
}

func plain(v float64) string { return fmt.Sprintf("%.2f", v) }
