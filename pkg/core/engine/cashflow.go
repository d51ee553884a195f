package engine

import "farmmate/pkg/core/model"

// buildCashFlow converts the accrual P&L into cash movements using the
// per-category payment timing offsets, grossing operating flows up for GST.
// It then folds in capex, disposals, debt movements, GST remittances and the
// tax lump payment, and rolls the cash balance forward from the opening
// position. Cash landing beyond the horizon is dropped, not clamped.
func (m *FarmModel) buildCashFlow() {
	pl := m.MonthlyPL
	n := len(pl)
	t := m.PaymentTiming
	gross := 1 + m.General.GSTRate

	opReceipts := make([]float64, n)
	opPayments := make([]float64, n)

	shift := func(arr []float64, monthIdx, offset int, amount float64) {
		if cash := monthIdx + offset; cash >= 0 && cash < n {
			arr[cash] += amount
		}
	}

	for i := range pl {
		shift(opReceipts, i, t.CropSales, pl[i].CropRevenue*gross)
		shift(opReceipts, i, t.BeefSales, pl[i].BeefRevenue*gross)
		shift(opReceipts, i, t.SheepSales, pl[i].SheepRevenue*gross)
		shift(opReceipts, i, t.WoolSales, pl[i].WoolRevenue*gross)

		shift(opPayments, i, t.CropFertiliser, pl[i].CropDirectCosts*gross)
		shift(opPayments, i, t.BeefAnimalHealth, pl[i].BeefDirectCosts*gross)
		shift(opPayments, i, t.SheepAnimalHealth, pl[i].SheepDirectCosts*gross)
		shift(opPayments, i, t.ShearingCosts, pl[i].WoolDirectCosts*gross)
		shift(opPayments, i, t.OverheadDefault, pl[i].Overheads*gross)
		shift(opPayments, i, t.OverheadDefault, pl[i].PastureCosts*gross)
	}

	// Net change in debtors less net change in creditors; an increase in
	// working capital is a cash outflow. Computed against the operating
	// flows only, before interest, GST remittances and tax are added.
	workingCapital := make([]float64, n)
	for i := range pl {
		accrualRevenue := pl[i].CropRevenue + pl[i].BeefRevenue +
			pl[i].SheepRevenue + pl[i].WoolRevenue + pl[i].OtherIncome
		accrualCosts := pl[i].TotalDirectCosts + pl[i].Overheads

		debtorChange := accrualRevenue - opReceipts[i]
		creditorChange := accrualCosts - opPayments[i]
		workingCapital[i] = debtorChange - creditorChange
	}

	cf := make([]CFRow, n)
	for i := range cf {
		cf[i] = CFRow{
			Month:                i + 1,
			Date:                 pl[i].Date,
			FY:                   pl[i].FY,
			NetProfit:            pl[i].NetProfit,
			Depreciation:         pl[i].Depreciation,
			WorkingCapitalChange: workingCapital[i],
			CashReceipts:         opReceipts[i],
			CashPayments:         opPayments[i] + pl[i].InterestExpense,
		}
	}

	// Debt facility movements, replayed from the schedules.
	for _, facility := range m.DebtFacilities {
		for month := 1; month <= n; month++ {
			cf[month-1].DebtDrawdowns += facility.Drawdowns[month]
			cf[month-1].DebtRepayments += facility.Repayments[month]
		}
	}

	// GST remittances and the tax lump payment reduce cash in their due
	// months.
	for i := range cf {
		if payment := m.MonthlyGST[i].Payment; payment > 0 {
			cf[i].CashPayments += payment
		}
		if paid := pl[i].TaxPaid; paid > 0 {
			cf[i].CashPayments += paid
		}
	}

	// Planned capex: cash out in the purchase month; the matured asset is
	// staged on the model rather than appended to the input register.
	for _, capex := range m.PlannedCapex {
		if capex.PurchaseMonth < 1 || capex.PurchaseMonth > n {
			continue
		}
		cf[capex.PurchaseMonth-1].Capex += capex.PurchaseAmount
		m.MaturedAssets = append(m.MaturedAssets, capex.ToFixedAsset(m.General.StartDate))
	}

	// Planned disposals: proceeds in the disposal month, with the profit
	// against written-down value recorded in the disposal results table.
	for _, disposal := range m.PlannedDisposals {
		if disposal.DisposalMonth < 1 || disposal.DisposalMonth > n {
			continue
		}
		if asset := m.findAsset(disposal.AssetName); asset != nil {
			monthsHeld := disposal.DisposalMonth - 1
			wdv := asset.WrittenDownValue(monthsHeld)
			cf[disposal.DisposalMonth-1].AssetSales += disposal.NetProceeds()
			m.Disposals = append(m.Disposals, DisposalResult{
				AssetName:        disposal.AssetName,
				Month:            disposal.DisposalMonth,
				NetProceeds:      disposal.NetProceeds(),
				WrittenDownValue: wdv,
				Profit:           disposal.ProfitOnSale(wdv),
			})
		}
	}

	// Section totals and the cumulative cash roll-forward.
	closing := m.OpeningBalances.Cash
	for i := range cf {
		row := &cf[i]
		row.TaxUnpaid = pl[i].TaxExpense - pl[i].TaxPaid
		row.OperatingCF = row.NetProfit + row.Depreciation + row.TaxUnpaid - row.WorkingCapitalChange
		row.InvestingCF = row.AssetSales - row.Capex
		row.FinancingCF = row.DebtDrawdowns - row.DebtRepayments + row.EquityInjection - row.Dividends
		row.NetCashFlow = row.OperatingCF + row.InvestingCF + row.FinancingCF
		closing += row.NetCashFlow
		row.ClosingCash = closing
	}

	m.MonthlyCF = cf
}

// findAsset looks up an asset by name in the input register, then among the
// assets matured from planned capex this run.
func (m *FarmModel) findAsset(name string) *model.FixedAsset {
	for i := range m.FixedAssets {
		if m.FixedAssets[i].Name == name {
			return &m.FixedAssets[i]
		}
	}
	for i := range m.MaturedAssets {
		if m.MaturedAssets[i].Name == name {
			return &m.MaturedAssets[i]
		}
	}
	return nil
}
