// Package scoring maps computed metrics onto qualitative interpretations
// and composite 0-100 scores. Every registered metric always yields an
// interpretation: an absent value becomes a neutral "Insufficient data"
// entry with threshold "N/A", so downstream renderers never see a gap.
// N/A entries are excluded from category averages rather than scored.
package scoring

import (
	"fmt"
	"math"

	"github.com/finsight/finsight/pkg/models"
)

// Apply fills a report's interpretation map and scorecard in place.
func Apply(r *models.Report) {
	r.Interpretations = Interpret(r)
	r.Scores = Score(r.Interpretations)
}

// Interpret evaluates every registered rule against the report. Keys are
// "category.metric" in snake case.
func Interpret(r *models.Report) map[string]models.Interpretation {
	out := make(map[string]models.Interpretation, len(ruleTable))
	for _, ru := range ruleTable {
		out[ru.key()] = ru.interpret(r)
	}
	return out
}

// Score averages interpretation levels per category (good=100, neutral=50,
// bad=0) over the metrics that were actually computable, then averages the
// category scores into the total. Categories where nothing was computable
// get no entry and do not drag the total down.
func Score(interps map[string]models.Interpretation) models.Scorecard {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, ru := range ruleTable {
		in, ok := interps[ru.key()]
		if !ok || in.Threshold == thresholdNA {
			continue
		}
		sums[ru.category] += in.Level.Score()
		counts[ru.category]++
	}

	card := models.Scorecard{Categories: map[string]int{}}
	total := 0.0
	for cat, sum := range sums {
		score := int(math.Round(sum / float64(counts[cat])))
		card.Categories[cat] = score
		total += float64(score)
	}
	if len(card.Categories) > 0 {
		t := int(math.Round(total / float64(len(card.Categories))))
		card.Total = &t
	}
	return card
}

const thresholdNA = "N/A"

// bandFunc classifies one computed value and names the threshold it was
// judged against.
type bandFunc func(v float64) (models.Level, string)

type rule struct {
	category string
	metric   string
	label    string
	value    func(*models.Report) *float64
	classify bandFunc
	percent  bool

	// message overrides the generic "<label> at <value>" wording; used by
	// indicator rules that have conventional phrasing (overbought etc).
	message func(v float64, level models.Level) string
}

func (ru rule) key() string { return ru.category + "." + ru.metric }

func (ru rule) interpret(r *models.Report) models.Interpretation {
	v := ru.value(r)
	if v == nil {
		return models.Interpretation{
			Level:     models.LevelNeutral,
			Message:   "Insufficient data",
			Threshold: thresholdNA,
		}
	}
	level, threshold := ru.classify(*v)
	msg := ""
	if ru.message != nil {
		msg = ru.message(*v, level)
	} else {
		msg = fmt.Sprintf("%s at %s", ru.label, ru.format(*v))
	}
	return models.Interpretation{Level: level, Message: msg, Threshold: threshold}
}

func (ru rule) format(v float64) string {
	if ru.percent {
		return fmt.Sprintf("%.1f%%", v*100)
	}
	return fmt.Sprintf("%.2f", v)
}

// higherBetter is good at or above hi and bad below lo.
func higherBetter(lo, hi float64) bandFunc {
	return func(v float64) (models.Level, string) {
		th := fmt.Sprintf(">= %.2f", hi)
		switch {
		case v >= hi:
			return models.LevelGood, th
		case v < lo:
			return models.LevelBad, th
		default:
			return models.LevelNeutral, th
		}
	}
}

// lowerBetter is good at or below lo and bad above hi.
func lowerBetter(lo, hi float64) bandFunc {
	return func(v float64) (models.Level, string) {
		th := fmt.Sprintf("<= %.2f", lo)
		switch {
		case v <= lo:
			return models.LevelGood, th
		case v > hi:
			return models.LevelBad, th
		default:
			return models.LevelNeutral, th
		}
	}
}

// magnitudeBelow judges the absolute value, good at or below lo and bad
// above hi. Used for metrics where distance from zero is the risk.
func magnitudeBelow(lo, hi float64) bandFunc {
	return func(v float64) (models.Level, string) {
		th := fmt.Sprintf("|x| <= %.2f", lo)
		a := math.Abs(v)
		switch {
		case a <= lo:
			return models.LevelGood, th
		case a > hi:
			return models.LevelBad, th
		default:
			return models.LevelNeutral, th
		}
	}
}
