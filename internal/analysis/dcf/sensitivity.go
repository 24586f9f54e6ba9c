package dcf

import "github.com/finsight/finsight/pkg/models"

// Sensitivity grid shape: the discount rate is varied ±2% in 1% steps and
// the terminal growth ±1% in 0.5% steps around the base case.
const (
	waccSpan    = 0.02
	waccStep    = 0.01
	growthSpan  = 0.01
	growthStep  = 0.005
)

// Sensitivity re-values the enterprise over a 2-D (WACC × terminal
// growth) grid around the base case. Each cell independently re-runs the
// projection and terminal-value stages with the varied parameters; cells
// where WACC ≤ terminal growth stay absent.
func Sensitivity(fcf0, startGrowth, baseWACC, baseTerminal float64, years int) *models.SensitivityGrid {
	waccs := rangeAround(baseWACC, waccSpan, waccStep)
	growths := rangeAround(baseTerminal, growthSpan, growthStep)

	values := make([][]*float64, len(waccs))
	for i, w := range waccs {
		row := make([]*float64, len(growths))
		for j, g := range growths {
			row[j] = cellValue(fcf0, startGrowth, w, g, years)
		}
		values[i] = row
	}

	return &models.SensitivityGrid{
		WACCs:   waccs,
		Growths: growths,
		Values:  values,
	}
}

func cellValue(fcf0, startGrowth, wacc, terminal float64, years int) *float64 {
	if wacc <= terminal {
		return nil
	}
	projections := Project(fcf0, startGrowth, terminal, wacc, years)
	_, pvTerminal := terminalValue(projections, wacc, terminal)
	return enterpriseValue(projections, pvTerminal)
}

func rangeAround(center, span, step float64) []float64 {
	var out []float64
	for v := center - span; v <= center+span+step/2; v += step {
		out = append(out, v)
	}
	return out
}
