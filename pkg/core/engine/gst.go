package engine

// buildGST computes the monthly GST schedule from the P&L: GST collected on
// all revenue, GST credits on direct and overhead costs, the net position,
// the payment falling due in each remittance month, and the cumulative
// unpaid liability seeded from the opening balance.
func (m *FarmModel) buildGST() {
	pl := m.MonthlyPL
	n := len(pl)
	rate := m.General.GSTRate

	rows := make([]GSTRow, n)
	for i := range pl {
		revenue := pl[i].CropRevenue + pl[i].BeefRevenue + pl[i].SheepRevenue +
			pl[i].WoolRevenue + pl[i].OtherIncome
		costs := pl[i].CropDirectCosts + pl[i].BeefDirectCosts + pl[i].SheepDirectCosts +
			pl[i].WoolDirectCosts + pl[i].PastureCosts + pl[i].Overheads

		rows[i] = GSTRow{
			Month:       i + 1,
			Date:        pl[i].Date,
			OnSales:     revenue * rate,
			OnPurchases: costs * rate,
		}
		rows[i].NetGST = rows[i].OnSales - rows[i].OnPurchases
	}

	m.applyGSTPayments(rows)

	// Cumulative unpaid position: positive payable, negative receivable.
	cumulative := m.OpeningBalances.GSTLiability
	for i := range rows {
		cumulative += rows[i].NetGST - rows[i].Payment
		rows[i].Cumulative = cumulative
	}

	m.MonthlyGST = rows
}

// applyGSTPayments fills the payment column for the configured reporting
// cadence. A payment covers the period ending payment-delay months earlier
// (the quarter, the single month, or the whole horizon for annual) and is
// remitted only when the period position is payable; refunds are not
// modelled as cash inflows.
func (m *FarmModel) applyGSTPayments(rows []GSTRow) {
	n := len(rows)
	delay := m.General.GSTPaymentDelay

	sumRange := func(from, to int) float64 {
		total := 0.0
		for month := from; month <= to; month++ {
			if month >= 1 && month <= n {
				total += rows[month-1].NetGST
			}
		}
		return total
	}

	switch m.General.GSTReportingPeriod {
	case "quarterly":
		for _, paymentMonth := range m.General.GSTPaymentMonths() {
			quarterEnd := paymentMonth - delay
			quarterStart := quarterEnd - 2
			if quarterStart < 1 {
				quarterStart = 1
			}
			if due := sumRange(quarterStart, quarterEnd); due > 0 {
				rows[paymentMonth-1].Payment = due
			}
		}
	case "monthly":
		for month := 1; month <= n; month++ {
			paymentMonth := month + delay
			if paymentMonth > n {
				continue
			}
			if due := rows[month-1].NetGST; due > 0 {
				rows[paymentMonth-1].Payment = due
			}
		}
	case "annual":
		months := m.General.GSTPaymentMonths()
		if len(months) == 0 {
			return
		}
		if due := sumRange(1, n); due > 0 {
			rows[months[0]-1].Payment = due
		}
	}
}
