package fundamental

import (
	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// Profitability measures margins and returns on capital.
func Profitability(s *models.Snapshot) models.ProfitabilityMetrics {
	return models.ProfitabilityMetrics{
		GrossMargin:     quant.SafeDiv(grossProfit(s), s.Revenue),
		OperatingMargin: quant.SafeDiv(s.OperatingIncome, s.Revenue),
		EBITDAMargin:    quant.SafeDiv(s.EBITDA, s.Revenue),
		NetMargin:       quant.SafeDiv(s.NetIncome, s.Revenue),
		FCFMargin:       quant.SafeDiv(FreeCashFlow(s), s.Revenue),
		ROA:             quant.SafeDiv(s.NetIncome, s.TotalAssets),
		ROE:             quant.SafeDiv(s.NetIncome, s.TotalEquity),
		ROIC:            roic(s),
		ROCE:            quant.SafeDiv(s.EBIT, quant.SafeSub(s.TotalAssets, s.CurrentLiabilities)),
	}
}

// grossProfit is the reported figure, else revenue minus cost of revenue.
func grossProfit(s *models.Snapshot) *float64 {
	if s.GrossProfit != nil {
		return s.GrossProfit
	}
	return quant.SafeSub(s.Revenue, s.CostOfRevenue)
}

// roic is NOPAT over invested capital: EBIT·(1−effective tax) divided by
// debt plus equity.
func roic(s *models.Snapshot) *float64 {
	taxRate := quant.SafeDiv(s.IncomeTax, s.PretaxIncome)
	nopat := quant.SafeMul(s.EBIT, quant.SafeSub(quant.Ptr(1), taxRate))
	invested := quant.SafeAdd(s.TotalDebt, s.TotalEquity)
	return quant.SafeDiv(nopat, invested)
}
