package model

import (
	"math"
	"testing"
)

func TestReconcileIdentity(t *testing.T) {
	program := LivestockProgram{
		Name:        "Trade Steers",
		Enterprise:  EnterpriseBeef,
		OpeningHead: 200,
		Purchases:   map[int]PurchaseLot{2: {Head: 50, PricePerHead: 1200}},
		Sales:       map[int]SaleLot{8: {Head: 80, PricePerKg: 3.1, WeightKg: 450}},
		Deaths:      map[int]int{5: 2},
		TransfersIn: map[int]int{3: 10},
	}

	rows := program.Reconcile(12, nil)
	if len(rows) != 12 {
		t.Fatalf("Expected 12 reconciliation rows, got %d", len(rows))
	}

	for i, row := range rows {
		expected := row.Opening + row.Purchases + row.Births + row.TransfersIn -
			row.Sales - row.Deaths - row.TransfersOut
		if row.Closing != expected {
			t.Errorf("Month %d: closing %d does not satisfy the roll-forward identity (%d)",
				row.Month, row.Closing, expected)
		}
		if i > 0 && row.Opening != rows[i-1].Closing {
			t.Errorf("Month %d opening %d != month %d closing %d",
				row.Month, row.Opening, rows[i-1].Month, rows[i-1].Closing)
		}
	}
}

func TestMonthlyDeathsRounding(t *testing.T) {
	// 150 head at 2%/yr is 0.25 head per month, which rounds to zero; small
	// herds only lose animals through explicit death schedules.
	program := LivestockProgram{OpeningHead: 150, DeathRateAnnual: 0.02}
	if d := program.MonthlyDeaths(1, 150); d != 0 {
		t.Errorf("Expected 0 deaths at 0.25/month, got %d", d)
	}

	// 600 head at 4%/yr is 2 head per month.
	big := LivestockProgram{OpeningHead: 600, DeathRateAnnual: 0.04}
	if d := big.MonthlyDeaths(1, 600); d != 2 {
		t.Errorf("Expected 2 deaths at 2/month, got %d", d)
	}

	// An explicit schedule entry always wins.
	program.Deaths = map[int]int{1: 7}
	if d := program.MonthlyDeaths(1, 150); d != 7 {
		t.Errorf("Expected explicit 7 deaths, got %d", d)
	}
}

func TestDerivedBirths(t *testing.T) {
	ewes := LivestockClass{
		Name:             "Merino Ewes",
		IsBreedingFemale: true,
		BreedingRate:     0.9,
		WeaningMonth:     5,
	}
	program := LivestockProgram{
		Name:        "Ewe Flock",
		Enterprise:  EnterpriseSheep,
		ClassName:   "Merino Ewes",
		OpeningHead: 1000,
	}

	// No explicit births: the weaning month gets 1000 x 0.9 = 900 head.
	rows := program.Reconcile(12, &ewes)
	if rows[4].Births != 900 {
		t.Errorf("Expected 900 derived births in month 5, got %d", rows[4].Births)
	}
	if rows[3].Births != 0 {
		t.Errorf("Expected no births outside the weaning month, got %d", rows[3].Births)
	}

	// An explicit entry in the weaning month overrides the derivation.
	program.Births = map[int]int{5: 100}
	rows = program.Reconcile(12, &ewes)
	if rows[4].Births != 100 {
		t.Errorf("Expected explicit 100 births to win, got %d", rows[4].Births)
	}
}

func TestSaleAndPurchaseAmounts(t *testing.T) {
	program := LivestockProgram{
		Purchases: map[int]PurchaseLot{2: {Head: 50, PricePerHead: 1200}},
		Sales:     map[int]SaleLot{11: {Head: 20, PricePerKg: 2.80, WeightKg: 500}},
	}

	// 20 x 2.80 x 500 = 28,000
	if rev := program.SaleRevenue(11); math.Abs(rev-28000) > 0.01 {
		t.Errorf("Expected sale revenue 28000, got %f", rev)
	}
	if rev := program.SaleRevenue(10); rev != 0 {
		t.Errorf("Expected no revenue in month 10, got %f", rev)
	}
	// 50 x 1200 = 60,000
	if cost := program.PurchaseCost(2); math.Abs(cost-60000) > 0.01 {
		t.Errorf("Expected purchase cost 60000, got %f", cost)
	}
}

func TestWoolProduction(t *testing.T) {
	ewes := LivestockClass{
		Name:           "Merino Ewes",
		ProducesWool:   true,
		FleeceWeightKg: 5.0,
		WoolYieldPct:   0.70,
		ShearingMonths: []int{3},
	}
	wool := WoolProduction{
		ProgramName:         "Ewe Flock",
		ShearingCostPerHead: 8.50,
		SuppliesPerHead:     1.50,
		PricePerKgClean:     14.00,
		FreightPerBale:      40.00,
		SellingCostsPct:     0.05,
		BaleWeightKg:        180,
		SalesByMonth:        map[int]float64{4: 3500},
	}

	// 1000 head x 5kg x 70% = 3,500kg clean in the shearing month.
	if kg := wool.MonthlyProduction(1000, ewes, 3); math.Abs(kg-3500) > 0.01 {
		t.Errorf("Expected 3500kg clean wool, got %f", kg)
	}
	if kg := wool.MonthlyProduction(1000, ewes, 4); kg != 0 {
		t.Errorf("Expected no production outside shearing months, got %f", kg)
	}

	// Recording twice overwrites rather than accumulates.
	wool.MonthlyProduction(1000, ewes, 3)
	if total := wool.ProductionByMonth[3]; math.Abs(total-3500) > 0.01 {
		t.Errorf("Expected idempotent production of 3500, got %f", total)
	}

	// Revenue: gross 3500 x 14 = 49,000; selling 5% = 2,450;
	// freight 3500/180 bales x 40 = 777.78; net = 45,772.22
	rev := wool.WoolRevenue(4)
	expected := 49000.0 - 2450.0 - 3500.0/180.0*40.0
	if math.Abs(rev-expected) > 0.01 {
		t.Errorf("Expected wool revenue %f, got %f", expected, rev)
	}

	// Shearing costs: 1000 x (8.50 + 1.50) = 10,000 in the shearing month.
	if cost := wool.ShearingCosts(1000, 3, ewes); math.Abs(cost-10000) > 0.01 {
		t.Errorf("Expected shearing cost 10000, got %f", cost)
	}
	if cost := wool.ShearingCosts(1000, 5, ewes); cost != 0 {
		t.Errorf("Expected no shearing cost outside shearing months, got %f", cost)
	}
}
