// Package engine implements the farm financial model calculation pipeline:
// a single-threaded batch computation that turns the input record
// collections into integrated monthly profit & loss, cash flow and balance
// sheet statements plus supporting schedules.
package engine

import (
	"math"

	"farmmate/pkg/core/model"
)

// FarmModel is the aggregate root: it owns the input collections and, after
// Calculate, the derived result tables. Derived state is fully overwritten
// on every run, so recalculation is idempotent for a fixed set of inputs.
type FarmModel struct {
	General         model.GeneralAssumptions `json:"general"`
	Inflation       model.InflationRates     `json:"inflation"`
	PaymentTiming   model.PaymentTiming      `json:"payment_timing"`
	OpeningBalances model.OpeningBalances    `json:"opening_balances"`

	Paddocks          []model.Paddock          `json:"paddocks"`
	FixedAssets       []model.FixedAsset       `json:"fixed_assets"`
	PlannedCapex      []model.PlannedCapex     `json:"planned_capex"`
	PlannedDisposals  []model.PlannedDisposal  `json:"planned_disposals"`
	CropPrograms      []model.CropProgram      `json:"crop_programs"`
	CropMargins       []model.CropMargin       `json:"crop_margins"`
	PasturePrograms   []model.PastureProgram   `json:"pasture_programs"`
	LivestockClasses  []model.LivestockClass   `json:"livestock_classes"`
	LivestockPrograms []model.LivestockProgram `json:"livestock_programs"`
	WoolProduction    []model.WoolProduction   `json:"wool_production"`
	Overheads         []model.OverheadCategory `json:"overheads"`
	DebtFacilities    []model.DebtFacility     `json:"debt_facilities"`

	// Derived results, rebuilt from scratch by Calculate.
	MonthlyPL  []PLRow  `json:"-"`
	MonthlyCF  []CFRow  `json:"-"`
	MonthlyBS  []BSRow  `json:"-"`
	MonthlyGST []GSTRow `json:"-"`

	AnnualPL []AnnualPLRow `json:"-"`
	AnnualCF []AnnualCFRow `json:"-"`
	AnnualBS []BSRow       `json:"-"`

	StockRecon map[string][]model.StockReconRow `json:"-"`
	Disposals  []DisposalResult                 `json:"-"`

	// Planned capex that reached its purchase month, staged here rather
	// than appended to the FixedAssets input so re-running the pipeline
	// never double-counts.
	MaturedAssets []model.FixedAsset `json:"-"`
}

// NewFarmModel returns a model with standard assumptions and empty
// collections.
func NewFarmModel() *FarmModel {
	return &FarmModel{
		General:       model.DefaultGeneralAssumptions(),
		Inflation:     model.DefaultInflationRates(),
		PaymentTiming: model.DefaultPaymentTiming(),
	}
}

// Calculate runs the complete pipeline: calendar, enterprise calculators,
// P&L totals and tax accrual, GST, cash flow, the interest-income pass, the
// balance sheet and the annual summaries. It returns the three monthly
// statements; all tables are also retained on the model.
//
// GST is computed before the cash flow so that GST remittances land in the
// cash payments of their due months.
func (m *FarmModel) Calculate() ([]PLRow, []BSRow, []CFRow) {
	dates := m.General.MonthDates()
	n := len(dates)

	pl := make([]PLRow, n)
	for i := range pl {
		pl[i].Month = i + 1
		pl[i].Date = dates[i]
		pl[i].FY = m.General.FinancialYear(dates[i])
	}

	m.StockRecon = make(map[string][]model.StockReconRow)
	m.MaturedAssets = nil
	m.Disposals = nil

	m.applyCrops(pl)
	m.applyLivestock(pl)
	m.applyPasture(pl)
	m.applyOverheads(pl)
	m.applyDepreciation(pl)
	m.applyDebtInterest(pl)

	m.totalAndTax(pl)
	m.MonthlyPL = pl

	m.buildGST()
	m.buildCashFlow()
	m.applyInterestIncome()
	m.buildBalanceSheet()
	m.summariseAnnual()

	return m.MonthlyPL, m.MonthlyBS, m.MonthlyCF
}

// totalAndTax fills the P&L subtotal columns and runs the progressive tax
// accrual: tax accrues on cumulative taxable income, floored at zero, and is
// paid as a single lump in the tax payment month.
func (m *FarmModel) totalAndTax(pl []PLRow) {
	cumEBT := 0.0
	prevAccrued := 0.0

	for i := range pl {
		row := &pl[i]
		row.TotalIncome = row.CropRevenue + row.BeefRevenue + row.SheepRevenue +
			row.WoolRevenue + row.OtherIncome
		row.TotalDirectCosts = row.CropDirectCosts + row.BeefDirectCosts +
			row.SheepDirectCosts + row.WoolDirectCosts + row.PastureCosts
		row.GrossProfit = row.TotalIncome - row.TotalDirectCosts
		row.EBITDA = row.GrossProfit - row.Overheads
		row.EBIT = row.EBITDA - row.Depreciation
		row.EBT = row.EBIT - row.InterestExpense + row.InterestIncome

		cumEBT += row.EBT
		row.CumulativeTaxable = cumEBT
		row.TaxAccrued = math.Max(0, cumEBT*m.General.IncomeTaxRate)
		row.TaxExpense = row.TaxAccrued - prevAccrued
		prevAccrued = row.TaxAccrued
		row.NetProfit = row.EBT - row.TaxExpense
	}

	if tm := m.General.TaxPaymentMonth; tm >= 1 && tm <= len(pl) {
		if accrued := pl[tm-1].TaxAccrued; accrued > 0 {
			pl[tm-1].TaxPaid = accrued
		}
	}
}

// KPIs returns the headline scalars for the latest financial year.
func (m *FarmModel) KPIs() map[string]float64 {
	if len(m.AnnualPL) == 0 || len(m.AnnualBS) == 0 {
		return map[string]float64{}
	}
	latestPL := m.AnnualPL[len(m.AnnualPL)-1]
	latestBS := m.AnnualBS[len(m.AnnualBS)-1]

	roa := 0.0
	if latestBS.TotalAssets > 0 {
		roa = latestPL.EBIT / latestBS.TotalAssets * 100
	}
	return map[string]float64{
		"ebitda":       latestPL.EBITDA,
		"net_profit":   latestPL.NetProfit,
		"closing_cash": latestBS.Cash,
		"total_debt":   latestBS.Debt,
		"net_assets":   latestBS.TotalEquity,
		"roa":          roa,
	}
}

// classByName resolves a livestock class reference. A missing class yields
// nil, which disables wool and breeding behaviour for the program.
func (m *FarmModel) classByName(name string) *model.LivestockClass {
	for i := range m.LivestockClasses {
		if m.LivestockClasses[i].Name == name {
			return &m.LivestockClasses[i]
		}
	}
	return nil
}

// woolForProgram finds the wool production record paired with a program.
func (m *FarmModel) woolForProgram(programName string) *model.WoolProduction {
	for i := range m.WoolProduction {
		if m.WoolProduction[i].ProgramName == programName {
			return &m.WoolProduction[i]
		}
	}
	return nil
}
