package fundamental

import (
	"math"

	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

// FreeCashFlow is the supplied trailing figure, else operating cash flow
// minus capital expenditures.
func FreeCashFlow(s *models.Snapshot) *float64 {
	if s.FreeCashFlow != nil {
		return s.FreeCashFlow
	}
	return quant.SafeSub(s.OperatingCashFlow, s.CapitalExpenditures)
}

// CashFlow measures cash generation and its quality relative to earnings.
func CashFlow(s *models.Snapshot) models.CashFlowMetrics {
	fcf := FreeCashFlow(s)
	return models.CashFlowMetrics{
		FreeCashFlow: fcf,
		FCFF:         fcff(s, fcf),
		// FCFE intentionally mirrors FCF without the net-borrowing and
		// after-tax-interest adjustments of the full identity.
		FCFE:                fcf,
		CapexToOperatingCF:  quant.SafeDiv(s.CapitalExpenditures, s.OperatingCashFlow),
		CapexToRevenue:      quant.SafeDiv(s.CapitalExpenditures, s.Revenue),
		FCFYield:            quant.SafeDiv(fcf, s.MarketCap),
		CashFlowToNetIncome: quant.SafeDiv(s.OperatingCashFlow, s.NetIncome),
	}
}

// fcff adds after-tax interest back to free cash flow to reach the
// all-investor figure.
func fcff(s *models.Snapshot, fcf *float64) *float64 {
	taxRate := quant.SafeDiv(s.IncomeTax, s.PretaxIncome)
	afterTaxInterest := quant.SafeMul(s.InterestExpense, quant.SafeSub(quant.Ptr(1), taxRate))
	return quant.SafeAdd(fcf, afterTaxInterest)
}

// payoutRatio treats dividends paid by their magnitude, since cash-flow
// statements usually report them as an outflow.
func payoutRatio(s *models.Snapshot) *float64 {
	if s.DividendsPaid == nil {
		return nil
	}
	paid := math.Abs(*s.DividendsPaid)
	return quant.SafeDiv(&paid, s.NetIncome)
}
