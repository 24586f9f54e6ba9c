// Package fundamental computes the classic ratio categories — liquidity,
// leverage, efficiency, profitability, growth, cash flow, valuation
// multiples, composite health scores, trade/FX, macro and peer
// comparisons — from a raw snapshot. Every formula composes the null-safe
// kernel: a metric whose inputs are missing is absent, and no field of
// the snapshot is ever assumed zero unless a formula documents it.
package fundamental

import (
	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// Liquidity measures short-term solvency against current liabilities.
func Liquidity(s *models.Snapshot) models.LiquidityMetrics {
	return models.LiquidityMetrics{
		CurrentRatio:           quant.SafeDiv(s.CurrentAssets, s.CurrentLiabilities),
		QuickRatio:             quant.SafeDiv(quant.SafeSub(s.CurrentAssets, s.Inventory), s.CurrentLiabilities),
		CashRatio:              quant.SafeDiv(s.CashAndEquivalents, s.CurrentLiabilities),
		WorkingCapital:         quant.SafeSub(s.CurrentAssets, s.CurrentLiabilities),
		OperatingCashFlowRatio: quant.SafeDiv(s.OperatingCashFlow, s.CurrentLiabilities),
	}
}

// Leverage measures capital-structure and debt-service risk.
func Leverage(s *models.Snapshot) models.LeverageMetrics {
	capitalization := quant.SafeAdd(s.LongTermDebt, s.TotalEquity)
	return models.LeverageMetrics{
		DebtToEquity:      quant.SafeDiv(s.TotalDebt, s.TotalEquity),
		DebtRatio:         quant.SafeDiv(s.TotalLiabilities, s.TotalAssets),
		EquityRatio:       quant.SafeDiv(s.TotalEquity, s.TotalAssets),
		InterestCoverage:  quant.SafeDiv(s.EBIT, s.InterestExpense),
		DebtToEBITDA:      quant.SafeDiv(s.TotalDebt, s.EBITDA),
		LongTermDebtToCap: quant.SafeDiv(s.LongTermDebt, capitalization),
		FinancialLeverage: quant.SafeDiv(s.TotalAssets, s.TotalEquity),
	}
}
