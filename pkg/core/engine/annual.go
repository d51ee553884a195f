package engine

// summariseAnnual rolls the monthly statements up by financial year. Flows
// are summed; balance-sheet positions are the snapshot at each year's final
// simulated month. Years appear in month order, so a partial first or last
// year is summarised over the months that fall inside the horizon.
func (m *FarmModel) summariseAnnual() {
	m.AnnualPL = nil
	m.AnnualCF = nil
	m.AnnualBS = nil

	plByFY := map[int]*AnnualPLRow{}
	cfByFY := map[int]*AnnualCFRow{}
	bsByFY := map[int]BSRow{}
	var order []int

	for i := range m.MonthlyPL {
		fy := m.MonthlyPL[i].FY
		if _, ok := plByFY[fy]; !ok {
			plByFY[fy] = &AnnualPLRow{FY: fy}
			cfByFY[fy] = &AnnualCFRow{FY: fy}
			order = append(order, fy)
		}

		pl := plByFY[fy]
		row := m.MonthlyPL[i]
		pl.TotalIncome += row.TotalIncome
		pl.TotalDirectCosts += row.TotalDirectCosts
		pl.GrossProfit += row.GrossProfit
		pl.Overheads += row.Overheads
		pl.EBITDA += row.EBITDA
		pl.Depreciation += row.Depreciation
		pl.EBIT += row.EBIT
		pl.InterestExpense += row.InterestExpense
		pl.InterestIncome += row.InterestIncome
		pl.EBT += row.EBT
		pl.TaxExpense += row.TaxExpense
		pl.NetProfit += row.NetProfit

		cf := cfByFY[fy]
		cfRow := m.MonthlyCF[i]
		cf.OperatingCF += cfRow.OperatingCF
		cf.InvestingCF += cfRow.InvestingCF
		cf.FinancingCF += cfRow.FinancingCF
		cf.NetCashFlow += cfRow.NetCashFlow
		cf.ClosingCash = cfRow.ClosingCash

		bsByFY[fy] = m.MonthlyBS[i]
	}

	for _, fy := range order {
		m.AnnualPL = append(m.AnnualPL, *plByFY[fy])
		m.AnnualCF = append(m.AnnualCF, *cfByFY[fy])
		m.AnnualBS = append(m.AnnualBS, bsByFY[fy])
	}
}
