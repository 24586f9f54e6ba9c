package fundamental

import (
	"github.com/finsight/finsight/internal/quant"
	"github.com/finsight/finsight/pkg/models"
)

const daysPerYear = 365.0

// Efficiency measures asset utilization and the cash conversion cycle.
// Turnover denominators use the average of the current and prior balance
// when a prior-year comparative is supplied, else the period-end balance.
func Efficiency(s *models.Snapshot) models.EfficiencyMetrics {
	m := models.EfficiencyMetrics{
		AssetTurnover:       quant.SafeDiv(s.Revenue, s.TotalAssets),
		FixedAssetTurnover:  quant.SafeDiv(s.Revenue, s.FixedAssets),
		InventoryTurnover:   quant.SafeDiv(s.CostOfRevenue, averaged(s.Inventory, s.PriorInventory)),
		ReceivablesTurnover: quant.SafeDiv(s.Revenue, averaged(s.Receivables, s.PriorReceivables)),
		PayablesTurnover:    quant.SafeDiv(s.CostOfRevenue, s.Payables),
	}

	days := quant.Ptr(daysPerYear)
	m.DaysSalesOutstanding = quant.SafeDiv(days, m.ReceivablesTurnover)
	m.DaysInventoryOnHand = quant.SafeDiv(days, m.InventoryTurnover)
	m.DaysPayablesOutstanding = quant.SafeDiv(days, m.PayablesTurnover)
	m.CashConversionCycle = quant.SafeSub(
		quant.SafeAdd(m.DaysSalesOutstanding, m.DaysInventoryOnHand),
		m.DaysPayablesOutstanding,
	)

	m.WorkingCapitalTurnover = quant.SafeDiv(s.Revenue, quant.SafeSub(s.CurrentAssets, s.CurrentLiabilities))
	return m
}

// averaged returns (current+prior)/2 when both are present, else current.
func averaged(current, prior *float64) *float64 {
	if current == nil || prior == nil {
		return current
	}
	return quant.Ptr((*current + *prior) / 2)
}
