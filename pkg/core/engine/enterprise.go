package engine

// Enterprise calculators. Each is a pure fold over its own input records
// into the monthly P&L accumulator rows; none of them read other statements.

// applyCrops books each crop's revenue wholly into its sale month and
// spreads the direct cost evenly at one twelfth per month across the
// horizon. Sale months beyond the horizon are ignored.
func (m *FarmModel) applyCrops(pl []PLRow) {
	n := len(pl)
	for _, crop := range m.CropMargins {
		if crop.SaleMonth >= 1 && crop.SaleMonth <= n {
			pl[crop.SaleMonth-1].CropRevenue += crop.Revenue()
		}
		monthlyCost := crop.TotalDirectCost() / 12
		for i := range pl {
			pl[i].CropDirectCosts += monthlyCost
		}
	}
}

// applyLivestock runs the stock reconciliation for every program, then books
// sale revenue, purchase costs and the per-category direct costs into the
// program's enterprise lines. Sheep programs whose class produces wool also
// get wool revenue and shearing costs driven by the reconciled closing head.
func (m *FarmModel) applyLivestock(pl []PLRow) {
	n := len(pl)
	for pi := range m.LivestockPrograms {
		program := &m.LivestockPrograms[pi]
		class := m.classByName(program.ClassName)

		recon := program.Reconcile(n, class)
		m.StockRecon[program.Name] = recon

		wool := m.woolForProgram(program.Name)

		for month := 1; month <= n; month++ {
			row := &pl[month-1]

			revenue := program.SaleRevenue(month)
			cost := program.PurchaseCost(month)
			for _, amount := range program.DirectCosts[month] {
				cost += amount
			}

			switch program.Enterprise {
			case "beef":
				row.BeefRevenue += revenue
				row.BeefDirectCosts += cost
			case "sheep":
				row.SheepRevenue += revenue
				row.SheepDirectCosts += cost
			}

			if program.Enterprise == "sheep" && class != nil && class.ProducesWool && wool != nil {
				closingHead := recon[month-1].Closing
				wool.MonthlyProduction(closingHead, *class, month)
				row.WoolRevenue += wool.WoolRevenue(month)
				row.WoolDirectCosts += wool.ShearingCosts(closingHead, month, *class)
			}
		}
	}
}

// applyPasture books each pasture program's cost spread into its window.
func (m *FarmModel) applyPasture(pl []PLRow) {
	for _, program := range m.PasturePrograms {
		for month := 1; month <= len(pl); month++ {
			pl[month-1].PastureCosts += program.MonthlyCost(month)
		}
	}
}

// applyOverheads books flat monthly and one-off overhead amounts.
func (m *FarmModel) applyOverheads(pl []PLRow) {
	for _, overhead := range m.Overheads {
		for month := 1; month <= len(pl); month++ {
			pl[month-1].Overheads += overhead.MonthlyCost(month)
		}
	}
}

// applyDepreciation charges each registered asset's straight-line monthly
// depreciation uniformly across the whole horizon. No date gating: the
// register is treated as in service for every simulated month.
func (m *FarmModel) applyDepreciation(pl []PLRow) {
	for _, asset := range m.FixedAssets {
		monthly := asset.MonthlyDepreciation()
		for i := range pl {
			pl[i].Depreciation += monthly
		}
	}
}

// applyDebtInterest charges each facility's monthly interest, computed from
// the prior month's closing balance by replaying its schedules.
func (m *FarmModel) applyDebtInterest(pl []PLRow) {
	for _, facility := range m.DebtFacilities {
		for month := 1; month <= len(pl); month++ {
			pl[month-1].InterestExpense += facility.InterestFor(month)
		}
	}
}

// applyInterestIncome credits interest on positive cash balances using the
// cash-flow closing balances. This is a deliberate two-pass approximation:
// net profit and the cash flow were finalised before this income is known,
// so it appears in the P&L interest income column and the annual sums but is
// not folded back into EBT or net profit.
func (m *FarmModel) applyInterestIncome() {
	if len(m.MonthlyCF) == 0 {
		return
	}
	monthlyRate := m.General.CashInterestRate / 12
	for i := range m.MonthlyPL {
		if cash := m.MonthlyCF[i].ClosingCash; cash > 0 {
			m.MonthlyPL[i].InterestIncome += cash * monthlyRate
		}
	}
}
