package fundamental

import (
	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// Altman Z-score coefficients (original manufacturing formulation).
const (
	altmanWC = 1.2
	altmanRE = 1.4
	altmanEB = 3.3
	altmanMC = 0.6
	altmanSL = 1.0
)

// Health computes the composite screening scores.
func Health(s *models.Snapshot) models.HealthMetrics {
	return models.HealthMetrics{
		AltmanZScore:    altmanZ(s),
		PiotroskiFScore: piotroskiF(s),
	}
}

// altmanZ is 1.2·WC/TA + 1.4·RE/TA + 3.3·EBIT/TA + 0.6·MC/TL + 1.0·S/TA.
// Absent whenever any component ratio cannot be computed.
func altmanZ(s *models.Snapshot) *float64 {
	workingCapital := quant.SafeSub(s.CurrentAssets, s.CurrentLiabilities)
	return quant.SafeAdd(
		quant.SafeMul(quant.Ptr(altmanWC), quant.SafeDiv(workingCapital, s.TotalAssets)),
		quant.SafeMul(quant.Ptr(altmanRE), quant.SafeDiv(s.RetainedEarnings, s.TotalAssets)),
		quant.SafeMul(quant.Ptr(altmanEB), quant.SafeDiv(s.EBIT, s.TotalAssets)),
		quant.SafeMul(quant.Ptr(altmanMC), quant.SafeDiv(s.MarketCap, s.TotalLiabilities)),
		quant.SafeMul(quant.Ptr(altmanSL), quant.SafeDiv(s.Revenue, s.TotalAssets)),
	)
}

// piotroskiF counts the nine binary strength signals. Signals whose
// inputs are missing are skipped rather than scored zero; the score is
// absent only when no signal could be evaluated at all.
func piotroskiF(s *models.Snapshot) *float64 {
	score := 0.0
	evaluated := 0

	check := func(v *bool) {
		if v == nil {
			return
		}
		evaluated++
		if *v {
			score++
		}
	}

	roa := quant.SafeDiv(s.NetIncome, s.TotalAssets)
	priorROA := quant.SafeDiv(s.PriorNetIncome, s.PriorTotalAssets)

	check(positive(roa))
	check(positive(s.OperatingCashFlow))
	check(greater(roa, priorROA))
	check(greater(s.OperatingCashFlow, s.NetIncome))

	leverage := quant.SafeDiv(s.LongTermDebt, s.TotalAssets)
	priorLeverage := quant.SafeDiv(s.PriorLongTermDebt, s.PriorTotalAssets)
	check(greater(priorLeverage, leverage))

	current := quant.SafeDiv(s.CurrentAssets, s.CurrentLiabilities)
	priorCurrent := quant.SafeDiv(s.PriorCurrentAssets, s.PriorCurrentLiabilities)
	check(greater(current, priorCurrent))

	check(greater(quant.SafeAdd(s.PriorSharesOutstanding, quant.Ptr(1e-9)), s.SharesOutstanding))

	margin := quant.SafeDiv(grossProfit(s), s.Revenue)
	priorMargin := quant.SafeDiv(s.PriorGrossProfit, s.PriorRevenue)
	check(greater(margin, priorMargin))

	turnover := quant.SafeDiv(s.Revenue, s.TotalAssets)
	priorTurnover := quant.SafeDiv(s.PriorRevenue, s.PriorTotalAssets)
	check(greater(turnover, priorTurnover))

	if evaluated == 0 {
		return nil
	}
	return &score
}

func positive(v *float64) *bool {
	if v == nil {
		return nil
	}
	b := *v > 0
	return &b
}

func greater(a, b *float64) *bool {
	if a == nil || b == nil {
		return nil
	}
	v := *a > *b
	return &v
}
