package engine

import (
	"math"
	"reflect"
	"testing"

	"farmmate/pkg/core/model"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func cropOnlyModel() *FarmModel {
	m := NewFarmModel()
	m.CropMargins = []model.CropMargin{{
		CropName:        "Wheat",
		AreaHa:          100,
		YieldPerHa:      3.5,
		PricePerUnit:    350,
		DeductionsPct:   0.05,
		DirectCostPerHa: 400,
		SaleMonth:       12,
	}}
	return m
}

func TestCropScenarioEndToEnd(t *testing.T) {
	m := cropOnlyModel()
	pl, _, _ := m.Calculate()

	if len(pl) != 12 {
		t.Fatalf("Expected 12 months of P&L, got %d", len(pl))
	}

	// Revenue lands wholly in the sale month:
	// 100 x 3.5 x 350 x 0.95 = 116,375
	if !almostEqual(pl[11].CropRevenue, 116375, 0.01) {
		t.Errorf("Expected sale-month revenue 116375, got %f", pl[11].CropRevenue)
	}
	for i := 0; i < 11; i++ {
		if pl[i].CropRevenue != 0 {
			t.Errorf("Month %d: expected no crop revenue, got %f", i+1, pl[i].CropRevenue)
		}
	}

	// Direct cost 40,000 spread at 3,333.33/month.
	for i := range pl {
		if !almostEqual(pl[i].CropDirectCosts, 40000.0/12, 0.01) {
			t.Errorf("Month %d: expected direct cost 3333.33, got %f", i+1, pl[i].CropDirectCosts)
		}
	}

	// Annual gross margin 116,375 - 40,000 = 76,375. The whole horizon is one
	// financial year (Jul 2026 - Jun 2027).
	if len(m.AnnualPL) != 1 {
		t.Fatalf("Expected a single FY, got %d", len(m.AnnualPL))
	}
	annual := m.AnnualPL[0]
	if annual.FY != 2027 {
		t.Errorf("Expected FY2027, got FY%d", annual.FY)
	}
	if !almostEqual(annual.GrossProfit, 76375, 0.01) {
		t.Errorf("Expected annual gross margin 76375, got %f", annual.GrossProfit)
	}
}

func TestFlowAdditivity(t *testing.T) {
	m := cropOnlyModel()
	pl, _, cf := m.Calculate()

	sumNet, sumEBITDA, sumOp := 0.0, 0.0, 0.0
	for i := range pl {
		sumNet += pl[i].NetProfit
		sumEBITDA += pl[i].EBITDA
		sumOp += cf[i].OperatingCF
	}

	if !almostEqual(sumNet, m.AnnualPL[0].NetProfit, 0.01) {
		t.Errorf("Monthly net profit sums to %f but annual shows %f", sumNet, m.AnnualPL[0].NetProfit)
	}
	if !almostEqual(sumEBITDA, m.AnnualPL[0].EBITDA, 0.01) {
		t.Errorf("Monthly EBITDA sums to %f but annual shows %f", sumEBITDA, m.AnnualPL[0].EBITDA)
	}
	if !almostEqual(sumOp, m.AnnualCF[0].OperatingCF, 0.01) {
		t.Errorf("Monthly operating CF sums to %f but annual shows %f", sumOp, m.AnnualCF[0].OperatingCF)
	}
}

func TestLivestockScenarioEndToEnd(t *testing.T) {
	m := NewFarmModel()
	m.LivestockPrograms = []model.LivestockProgram{{
		Name:            "Trade Steers",
		Enterprise:      "beef",
		OpeningHead:     150,
		DeathRateAnnual: 0.02,
		Sales:           map[int]model.SaleLot{11: {Head: 20, PricePerKg: 2.80, WeightKg: 500}},
	}}

	pl, _, _ := m.Calculate()

	// 20 x 2.80 x 500 = 28,000 in month 11.
	if !almostEqual(pl[10].BeefRevenue, 28000, 0.01) {
		t.Errorf("Expected beef revenue 28000 in month 11, got %f", pl[10].BeefRevenue)
	}

	recon := m.StockRecon["Trade Steers"]
	if len(recon) != 12 {
		t.Fatalf("Expected 12 reconciliation rows, got %d", len(recon))
	}

	// At 2%/yr on 150 head the monthly mortality charge is 0.25 head, which
	// rounds to zero, so the only movement is the 20-head sale.
	totalDeaths := 0
	for _, row := range recon {
		totalDeaths += row.Deaths
	}
	if totalDeaths != 0 {
		t.Errorf("Expected rounded-to-zero deaths, got %d", totalDeaths)
	}
	if recon[11].Closing != 130 {
		t.Errorf("Expected closing head 130, got %d", recon[11].Closing)
	}
}

func TestGSTSingleRevenueEvent(t *testing.T) {
	m := NewFarmModel() // quarterly cadence, 1-month delay
	m.LivestockPrograms = []model.LivestockProgram{{
		Name:        "Trade Steers",
		Enterprise:  "beef",
		OpeningHead: 100,
		Sales:       map[int]model.SaleLot{2: {Head: 20, PricePerKg: 2.80, WeightKg: 500}},
	}}

	m.Calculate()
	gst := m.MonthlyGST

	// Revenue 28,000 with no creditable costs: net GST = 2,800 in month 2.
	if !almostEqual(gst[1].NetGST, 2800, 0.01) {
		t.Errorf("Expected net GST 2800 in month 2, got %f", gst[1].NetGST)
	}

	// The Q1 position (months 1-3) falls due one month after quarter end.
	if !almostEqual(gst[3].Payment, 2800, 0.01) {
		t.Errorf("Expected GST payment 2800 in month 4, got %f", gst[3].Payment)
	}
	for i, row := range gst {
		if i != 3 && row.Payment != 0 {
			t.Errorf("Month %d: unexpected GST payment %f", i+1, row.Payment)
		}
	}

	// The remittance is a cash payment of its due month.
	if !almostEqual(m.MonthlyCF[3].CashPayments, 2800, 0.01) {
		t.Errorf("Expected month 4 cash payments 2800, got %f", m.MonthlyCF[3].CashPayments)
	}

	// After remitting, the cumulative position returns to zero.
	if !almostEqual(gst[3].Cumulative, 0, 0.01) {
		t.Errorf("Expected cumulative GST 0 after remittance, got %f", gst[3].Cumulative)
	}
}

func TestBalanceCheckNoTransactions(t *testing.T) {
	m := NewFarmModel()
	m.OpeningBalances = model.OpeningBalances{
		Cash:         10000,
		FixedAssets:  50000,
		ShareCapital: 60000,
	}

	_, bs, _ := m.Calculate()
	for _, row := range bs {
		if !almostEqual(row.BalanceCheck, 0, 0.01) {
			t.Errorf("Month %d: balance check %f, want ~0", row.Month, row.BalanceCheck)
		}
	}
}

func TestTaxAccrualAndLumpPayment(t *testing.T) {
	m := cropOnlyModel()
	pl, _, _ := m.Calculate()

	// Tax accrues on cumulative taxable income, floored at zero: the loss
	// months before the sale carry no accrual.
	for i := 0; i < 8; i++ {
		if pl[i].TaxAccrued != 0 {
			t.Errorf("Month %d: expected no tax accrual while cumulative EBT is negative, got %f",
				i+1, pl[i].TaxAccrued)
		}
	}

	// The sale month turns the cumulative position positive:
	// total EBT = 76,375, accrual = 76,375 x 27.5% = 21,003.125
	last := pl[11]
	if !almostEqual(last.TaxAccrued, 76375*0.275, 0.01) {
		t.Errorf("Expected final tax accrual %f, got %f", 76375*0.275, last.TaxAccrued)
	}

	// Net profit reconciles through the expense movement.
	for i := range pl {
		if !almostEqual(pl[i].NetProfit, pl[i].EBT-pl[i].TaxExpense, 0.01) {
			t.Errorf("Month %d: net profit %f != EBT %f - tax expense %f",
				i+1, pl[i].NetProfit, pl[i].EBT, pl[i].TaxExpense)
		}
	}

	// Month 9 pays whatever was accrued to that point; here the cumulative
	// position is still negative, so nothing is paid.
	for i := range pl {
		if pl[i].TaxPaid != 0 {
			t.Errorf("Month %d: expected no tax payment with negative cumulative EBT through month 9, got %f",
				i+1, pl[i].TaxPaid)
		}
	}
}

func TestCapexAndDisposal(t *testing.T) {
	m := NewFarmModel()
	m.FixedAssets = []model.FixedAsset{{
		Name:            "Old Header",
		PurchaseAmount:  120000,
		ResidualValue:   20000,
		UsefulLifeYears: 10,
	}}
	m.PlannedCapex = []model.PlannedCapex{{
		Name:            "New Header",
		PurchaseMonth:   3,
		PurchaseAmount:  300000,
		UsefulLifeYears: 10,
	}}
	m.PlannedDisposals = []model.PlannedDisposal{{
		AssetName:     "Old Header",
		DisposalMonth: 6,
		SalePrice:     90000,
		DisposalCosts: 2000,
	}}

	_, _, cf := m.Calculate()

	if !almostEqual(cf[2].Capex, 300000, 0.01) {
		t.Errorf("Expected capex 300000 in month 3, got %f", cf[2].Capex)
	}
	if !almostEqual(cf[5].AssetSales, 88000, 0.01) {
		t.Errorf("Expected asset sale proceeds 88000 in month 6, got %f", cf[5].AssetSales)
	}
	if len(m.MaturedAssets) != 1 || m.MaturedAssets[0].Name != "New Header" {
		t.Fatalf("Expected one matured asset, got %+v", m.MaturedAssets)
	}

	// Disposal profit against written-down value after 5 elapsed months:
	// WDV = 120,000 - 833.33x5 = 115,833.33; profit = 88,000 - WDV.
	if len(m.Disposals) != 1 {
		t.Fatalf("Expected one disposal result, got %d", len(m.Disposals))
	}
	wdv := 120000 - (100000.0/120)*5
	if !almostEqual(m.Disposals[0].Profit, 88000-wdv, 0.01) {
		t.Errorf("Expected disposal profit %f, got %f", 88000-wdv, m.Disposals[0].Profit)
	}
}

func TestRecalculationIsIdempotent(t *testing.T) {
	m := cropOnlyModel()
	m.PlannedCapex = []model.PlannedCapex{{
		Name:            "Ute",
		PurchaseMonth:   2,
		PurchaseAmount:  65000,
		UsefulLifeYears: 8,
	}}
	m.PlannedDisposals = []model.PlannedDisposal{{
		AssetName:     "Ute",
		DisposalMonth: 10,
		SalePrice:     60000,
	}}

	m.Calculate()
	firstPL := append([]PLRow(nil), m.MonthlyPL...)
	firstCF := append([]CFRow(nil), m.MonthlyCF...)
	firstBS := append([]BSRow(nil), m.MonthlyBS...)
	firstDisposals := append([]DisposalResult(nil), m.Disposals...)

	m.Calculate()

	if !reflect.DeepEqual(firstPL, m.MonthlyPL) {
		t.Errorf("P&L changed on recalculation")
	}
	if !reflect.DeepEqual(firstCF, m.MonthlyCF) {
		t.Errorf("Cash flow changed on recalculation")
	}
	if !reflect.DeepEqual(firstBS, m.MonthlyBS) {
		t.Errorf("Balance sheet changed on recalculation")
	}
	if !reflect.DeepEqual(firstDisposals, m.Disposals) {
		t.Errorf("Disposal results changed on recalculation")
	}
	if len(m.MaturedAssets) != 1 {
		t.Errorf("Matured assets accumulated across runs: %d", len(m.MaturedAssets))
	}
}

func TestKPIs(t *testing.T) {
	m := cropOnlyModel()
	m.Calculate()

	kpis := m.KPIs()
	for _, key := range []string{"ebitda", "net_profit", "closing_cash", "total_debt", "net_assets", "roa"} {
		if _, ok := kpis[key]; !ok {
			t.Errorf("Missing KPI %q", key)
		}
	}
	if !almostEqual(kpis["total_debt"], 0, 0.01) {
		t.Errorf("Expected no debt, got %f", kpis["total_debt"])
	}
}

func TestInterestIncomeTwoPass(t *testing.T) {
	m := NewFarmModel()
	m.OpeningBalances = model.OpeningBalances{Cash: 120000, ShareCapital: 120000}

	pl, _, cf := m.Calculate()

	// 120,000 at 3%/yr earns 300/month. It shows in the interest income
	// column but is deliberately not folded back into EBT or the cash flow,
	// which were finalised first.
	if !almostEqual(pl[0].InterestIncome, 300, 0.01) {
		t.Errorf("Expected interest income 300, got %f", pl[0].InterestIncome)
	}
	if pl[0].EBT != 0 {
		t.Errorf("Expected EBT untouched by the second pass, got %f", pl[0].EBT)
	}
	if !almostEqual(cf[0].ClosingCash, 120000, 0.01) {
		t.Errorf("Expected cash unchanged, got %f", cf[0].ClosingCash)
	}
}

func TestValidateWarnings(t *testing.T) {
	m := NewFarmModel()
	m.LivestockPrograms = []model.LivestockProgram{{
		Name:      "Ewe Flock",
		ClassName: "No Such Class",
		Sales:     map[int]model.SaleLot{40: {Head: 10}},
	}}
	m.CropMargins = []model.CropMargin{{CropName: "Wheat", SaleMonth: 25}}

	warnings := m.Validate()
	if len(warnings) != 3 {
		t.Fatalf("Expected 3 warnings (unknown class, out-of-horizon sale, out-of-horizon crop), got %d: %v",
			len(warnings), warnings)
	}
}

func TestCleanModelValidates(t *testing.T) {
	if warnings := cropOnlyModel().Validate(); len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
}
