package engine

// buildBalanceSheet reconstructs every line as opening balance plus
// cumulative movement rather than carrying balances incrementally: cash from
// the cash-flow roll-forward, debtors from working capital plus the GST
// position, fixed assets from capex and depreciation, debt from the facility
// schedules, tax payable from the accrual and the lump payment, and retained
// earnings from cumulative profit. The balance check is reported, never
// enforced.
func (m *FarmModel) buildBalanceSheet() {
	pl := m.MonthlyPL
	cf := m.MonthlyCF
	gst := m.MonthlyGST
	open := m.OpeningBalances
	n := len(pl)

	inventory := open.InventoryGrain + open.InventoryWool + open.InventoryLivestock

	bs := make([]BSRow, n)
	cumWorkingCapital := 0.0
	cumDepreciation := 0.0
	cumCapex := 0.0
	cumTaxPaid := 0.0
	cumNetProfit := 0.0

	for i := 0; i < n; i++ {
		cumWorkingCapital += cf[i].WorkingCapitalChange
		cumDepreciation += pl[i].Depreciation
		cumCapex += cf[i].Capex
		cumTaxPaid += pl[i].TaxPaid
		cumNetProfit += pl[i].NetProfit

		row := BSRow{
			Month: i + 1,
			Date:  pl[i].Date,
			FY:    pl[i].FY,

			Cash:         cf[i].ClosingCash,
			TradeDebtors: open.TradeDebtors + cumWorkingCapital + gst[i].Cumulative,
			Inventory:    inventory,
			FixedAssets:  open.FixedAssets + cumCapex - cumDepreciation,
			LandWater:    open.LandWater,

			TradeCreditors: open.TradeCreditors,
			TaxPayable:     open.TaxPayable + pl[i].TaxAccrued - cumTaxPaid,
			GSTBalance:     gst[i].Cumulative,

			ShareCapital:     open.ShareCapital,
			RetainedEarnings: open.RetainedEarnings + cumNetProfit,
		}

		// Debt: replay every facility's cumulative movements on top of the
		// opening debt balance.
		debt := open.DebtFacilities
		for _, facility := range m.DebtFacilities {
			for month := 1; month <= i+1; month++ {
				debt += facility.Drawdowns[month]
				debt -= facility.Repayments[month]
			}
		}
		row.Debt = debt

		// Split the signed GST position into a receivable asset or a
		// payable liability.
		if row.GSTBalance < 0 {
			row.GSTReceivable = -row.GSTBalance
		} else {
			row.GSTLiability = row.GSTBalance
		}

		row.TotalAssets = row.Cash + row.TradeDebtors + row.Inventory +
			row.FixedAssets + row.LandWater + row.GSTReceivable
		row.TotalLiabilities = row.TradeCreditors + row.Debt + row.TaxPayable + row.GSTLiability
		row.TotalEquity = row.ShareCapital + row.RetainedEarnings
		row.BalanceCheck = row.TotalAssets - (row.TotalLiabilities + row.TotalEquity)

		bs[i] = row
	}

	m.MonthlyBS = bs
}
