package model

import "math"

// Enterprise types for livestock programs.
const (
	EnterpriseBeef  = "beef"
	EnterpriseSheep = "sheep"
)

// LivestockClass defines a class of animals (e.g. "Cows 2yo+", "Ewes") with
// its pricing, feed-intake and mortality assumptions, plus optional breeding
// and wool parameters.
type LivestockClass struct {
	Name            string  `json:"class_name"`
	AvgWeightKg     float64 `json:"avg_weight_kg"`
	PricePerKg      float64 `json:"price_per_kg"`
	DSE             float64 `json:"dse"` // Dry Sheep Equivalents per head
	DeathRateAnnual float64 `json:"death_rate_annual"`

	// Breeding parameters (breeding females only)
	IsBreedingFemale  bool    `json:"is_breeding_female,omitempty"`
	BreedingRate      float64 `json:"breeding_rate,omitempty"`
	OffspringClass    string  `json:"offspring_class,omitempty"`
	OffspringMaleSplit float64 `json:"offspring_sex_split_male,omitempty"`
	WeaningMonth      int     `json:"weaning_month,omitempty"`

	// Wool parameters (wool-producing sheep only)
	ProducesWool      bool    `json:"produces_wool,omitempty"`
	FleeceWeightKg    float64 `json:"fleece_weight_kg,omitempty"` // greasy, per head
	WoolMicron        float64 `json:"wool_micron,omitempty"`
	WoolYieldPct      float64 `json:"wool_yield_pct,omitempty"` // clean percentage
	ShearingFrequency int     `json:"shearing_frequency,omitempty"`
	ShearingMonths    []int   `json:"shearing_months,omitempty"`
}

// ValuePerHead is weight times price per kilogram.
func (c LivestockClass) ValuePerHead() float64 {
	return c.AvgWeightKg * c.PricePerKg
}

// AnnualWoolKg returns clean wool production per head per year.
func (c LivestockClass) AnnualWoolKg() float64 {
	if !c.ProducesWool {
		return 0
	}
	greasy := c.FleeceWeightKg * float64(c.ShearingFrequency)
	return greasy * c.WoolYieldPct
}

// ShearsIn reports whether the class is shorn in the given simulation month.
func (c LivestockClass) ShearsIn(month int) bool {
	for _, m := range c.ShearingMonths {
		if m == month {
			return true
		}
	}
	return false
}

// PurchaseLot is a month's livestock purchase: head count and price per head.
type PurchaseLot struct {
	Head         int     `json:"head"`
	PricePerHead float64 `json:"price_per_head"`
}

// SaleLot is a month's livestock sale: head count, price per kilogram and
// average sale weight.
type SaleLot struct {
	Head       int     `json:"head"`
	PricePerKg float64 `json:"price_per_kg"`
	WeightKg   float64 `json:"avg_weight_kg"`
}

// StockReconRow is one month of the head-count roll-forward ledger.
type StockReconRow struct {
	Month        int `json:"month"`
	Opening      int `json:"opening"`
	Purchases    int `json:"purchases"`
	Births       int `json:"births"`
	TransfersIn  int `json:"transfers_in"`
	Deaths       int `json:"deaths"`
	Sales        int `json:"sales"`
	TransfersOut int `json:"transfers_out"`
	Closing      int `json:"closing"`
}

// LivestockProgram is a production program for a single livestock class with
// its opening position and sparse month-keyed movement schedules. Schedule
// keys are 1-based simulation months; entries beyond the horizon are ignored.
type LivestockProgram struct {
	Name       string `json:"program_name"`
	Enterprise string `json:"enterprise_type"` // beef or sheep
	ClassName  string `json:"livestock_class"`

	OpeningHead         int     `json:"opening_head"`
	OpeningValuePerHead float64 `json:"opening_value_per_head"`

	Purchases    map[int]PurchaseLot `json:"purchases_by_month,omitempty"`
	Sales        map[int]SaleLot     `json:"sales_by_month,omitempty"`
	Deaths       map[int]int         `json:"deaths_by_month,omitempty"`
	Births       map[int]int         `json:"births_by_month,omitempty"`
	TransfersIn  map[int]int         `json:"transfers_in_by_month,omitempty"`
	TransfersOut map[int]int         `json:"transfers_out_by_month,omitempty"`

	// Free-form per-category direct costs, e.g. animal_health, fodder.
	DirectCosts map[int]map[string]float64 `json:"direct_costs_by_month,omitempty"`

	DeathRateAnnual float64 `json:"death_rate_annual"`
}

// MonthlyDeaths returns the explicit override for the month if one exists,
// otherwise the annual death rate spread monthly against the opening head.
func (p LivestockProgram) MonthlyDeaths(month, openingHead int) int {
	if d, ok := p.Deaths[month]; ok {
		return d
	}
	return int(math.Round(float64(openingHead) * p.DeathRateAnnual / 12))
}

// DerivedBirths computes the breeding-rate natural increase for the class's
// weaning month: the breeding females on hand entering that month times the
// breeding rate. Returns zero for non-breeding classes or other months.
func (p LivestockProgram) DerivedBirths(month int, class LivestockClass) int {
	if !class.IsBreedingFemale || month != class.WeaningMonth {
		return 0
	}
	females := p.OpeningHead
	for m := 1; m < month; m++ {
		if lot, ok := p.Purchases[m]; ok {
			females += lot.Head
		}
		if lot, ok := p.Sales[m]; ok {
			females -= lot.Head
		}
		females -= p.MonthlyDeaths(m, females)
	}
	return int(float64(females) * class.BreedingRate)
}

// Reconcile rolls the head count forward month by month. The closing head of
// month m becomes the opening head of month m+1. Explicit birth entries win;
// for a breeding-female class with no entry at its weaning month the derived
// breeding-rate births are applied. No negative-head clamping: inconsistent
// schedules yield negative closings.
func (p LivestockProgram) Reconcile(numMonths int, class *LivestockClass) []StockReconRow {
	rows := make([]StockReconRow, 0, numMonths)
	current := p.OpeningHead

	for month := 1; month <= numMonths; month++ {
		row := StockReconRow{Month: month, Opening: current}
		if lot, ok := p.Purchases[month]; ok {
			row.Purchases = lot.Head
		}
		if lot, ok := p.Sales[month]; ok {
			row.Sales = lot.Head
		}
		row.Deaths = p.MonthlyDeaths(month, row.Opening)
		if b, ok := p.Births[month]; ok {
			row.Births = b
		} else if class != nil {
			row.Births = p.DerivedBirths(month, *class)
		}
		row.TransfersIn = p.TransfersIn[month]
		row.TransfersOut = p.TransfersOut[month]

		row.Closing = row.Opening + row.Purchases + row.Births + row.TransfersIn -
			row.Sales - row.Deaths - row.TransfersOut
		rows = append(rows, row)
		current = row.Closing
	}
	return rows
}

// SaleRevenue returns the month's meat sale revenue: head x price/kg x weight.
func (p LivestockProgram) SaleRevenue(month int) float64 {
	lot, ok := p.Sales[month]
	if !ok {
		return 0
	}
	return float64(lot.Head) * lot.PricePerKg * lot.WeightKg
}

// PurchaseCost returns the month's purchase cost: head x price per head.
func (p LivestockProgram) PurchaseCost(month int) float64 {
	lot, ok := p.Purchases[month]
	if !ok {
		return 0
	}
	return float64(lot.Head) * lot.PricePerHead
}

// WoolProduction holds the shearing and marketing assumptions for a sheep
// program. Paired one-to-one with a LivestockProgram and its class.
type WoolProduction struct {
	ProgramName    string `json:"program_name"`
	LivestockClass string `json:"livestock_class"`

	ShearingCostPerHead float64 `json:"shearing_cost_per_head"`
	CrutchingCostPerHead float64 `json:"crutching_cost_per_head"`
	SuppliesPerHead     float64 `json:"shearing_supplies_per_head"`

	PricePerKgClean float64 `json:"wool_price_per_kg_clean"`
	FreightPerBale  float64 `json:"wool_freight_per_bale"`
	SellingCostsPct float64 `json:"wool_selling_costs_pct"`
	BaleWeightKg    float64 `json:"bale_weight_kg"`

	// Derived production keyed by shearing month; sales keyed by sale month.
	ProductionByMonth map[int]float64 `json:"production_by_month,omitempty"`
	SalesByMonth      map[int]float64 `json:"sales_by_month,omitempty"`
}

// MonthlyProduction computes clean wool for a shearing month from the
// reconciled head count and records it. Re-running overwrites the entry, so
// repeated calculation stays idempotent.
func (w *WoolProduction) MonthlyProduction(headCount int, class LivestockClass, month int) float64 {
	if !class.ProducesWool || !class.ShearsIn(month) {
		return 0
	}
	cleanPerHead := class.FleeceWeightKg * class.WoolYieldPct
	total := float64(headCount) * cleanPerHead
	if w.ProductionByMonth == nil {
		w.ProductionByMonth = make(map[int]float64)
	}
	w.ProductionByMonth[month] = total
	return total
}

// WoolRevenue returns the month's net wool proceeds: gross sales less selling
// costs and per-bale freight.
func (w *WoolProduction) WoolRevenue(month int) float64 {
	kgSold, ok := w.SalesByMonth[month]
	if !ok {
		return 0
	}
	gross := kgSold * w.PricePerKgClean
	selling := gross * w.SellingCostsPct
	freight := 0.0
	if w.BaleWeightKg > 0 {
		freight = kgSold / w.BaleWeightKg * w.FreightPerBale
	}
	return gross - selling - freight
}

// ShearingCosts returns the month's shearing and supplies cost for the flock.
func (w *WoolProduction) ShearingCosts(headCount int, month int, class LivestockClass) float64 {
	if !class.ShearsIn(month) {
		return 0
	}
	return float64(headCount) * (w.ShearingCostPerHead + w.SuppliesPerHead)
}
