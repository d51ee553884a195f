// Package model defines the input records for a farm financial model:
// general assumptions, enterprise definitions, asset registers, debt
// facilities and the opening balance sheet. Records are plain data with
// pure computed methods; all mutation happens at configuration time.
package model

import "time"

// GSTPeriod is the GST reporting cadence.
type GSTPeriod string

const (
	GSTMonthly   GSTPeriod = "monthly"
	GSTQuarterly GSTPeriod = "quarterly"
	GSTAnnual    GSTPeriod = "annual"
)

// GeneralAssumptions holds the farm setup and the financial-policy settings
// that drive the calendar, tax and GST behaviour of a model run.
type GeneralAssumptions struct {
	FarmName  string    `json:"farm_name"`
	StartDate time.Time `json:"start_date"`
	NumMonths int       `json:"num_months"`

	// Financial year end month (June = 6).
	FYEndMonth int `json:"financial_year_end_month"`

	// Tax rates
	IncomeTaxRate       float64 `json:"income_tax_rate"`
	GSTRate             float64 `json:"gst_rate"`
	CapitalGainsTaxRate float64 `json:"capital_gains_tax_rate"`
	InvestorTaxRate     float64 `json:"investor_tax_rate"`
	TaxPaymentMonth     int     `json:"tax_payment_month"`

	// GST settings
	GSTReportingPeriod GSTPeriod `json:"gst_reporting_period"`
	GSTPaymentDelay    int       `json:"gst_payment_delay"` // months after period end

	// Interest rates
	OverdraftRate    float64 `json:"overdraft_rate"`
	CashInterestRate float64 `json:"cash_interest_rate"`

	// Management fees
	BaseManagementFee     float64 `json:"base_management_fee"`
	PerformanceFeeHurdle  float64 `json:"performance_fee_hurdle"`
	PerformanceEBITShare  float64 `json:"performance_fee_ebit_share"`

	// Payout ratios
	PayoutRatioNPAT float64 `json:"payout_ratio_npat"`
	PayoutRatioFCF  float64 `json:"payout_ratio_fcf"`
}

// DefaultGeneralAssumptions returns the standard starting configuration:
// a 12-month horizon from 1 July 2026, June year end, quarterly GST.
func DefaultGeneralAssumptions() GeneralAssumptions {
	return GeneralAssumptions{
		FarmName:           "Farm",
		StartDate:          time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		NumMonths:          12,
		FYEndMonth:         6,
		IncomeTaxRate:      0.275,
		GSTRate:            0.10,
		CapitalGainsTaxRate: 0.23,
		InvestorTaxRate:    0.30,
		TaxPaymentMonth:    9,
		GSTReportingPeriod: GSTQuarterly,
		GSTPaymentDelay:    1,
		OverdraftRate:      0.09,
		CashInterestRate:   0.03,
		PerformanceFeeHurdle: 0.03,
		PerformanceEBITShare: 0.20,
	}
}

// MonthDates generates one month-end date per simulation month, strictly
// increasing, starting from the month containing StartDate.
func (g GeneralAssumptions) MonthDates() []time.Time {
	dates := make([]time.Time, 0, g.NumMonths)
	current := g.StartDate
	for i := 0; i < g.NumMonths; i++ {
		firstOfNext := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, current.Location()).AddDate(0, 1, 0)
		dates = append(dates, firstOfNext.AddDate(0, 0, -1))
		current = firstOfNext
	}
	return dates
}

// FinancialYear maps a date to its financial-year label. A date whose month
// falls on or before FYEndMonth belongs to that calendar year's FY, otherwise
// to the next.
func (g GeneralAssumptions) FinancialYear(date time.Time) int {
	if int(date.Month()) <= g.FYEndMonth {
		return date.Year()
	}
	return date.Year() + 1
}

// GSTPaymentMonths returns the ordered simulation months in which a GST
// payment falls due under the configured cadence and payment delay.
// Quarterly uses fixed quarter-end anchors {3,6,9,12}; annual pays once
// after month 12. Months beyond the horizon are filtered out.
func (g GeneralAssumptions) GSTPaymentMonths() []int {
	var months []int
	switch g.GSTReportingPeriod {
	case GSTMonthly:
		for m := 1; m <= g.NumMonths; m++ {
			if pm := m + g.GSTPaymentDelay; pm <= g.NumMonths {
				months = append(months, pm)
			}
		}
	case GSTQuarterly:
		for _, quarterEnd := range []int{3, 6, 9, 12} {
			if pm := quarterEnd + g.GSTPaymentDelay; pm <= g.NumMonths {
				months = append(months, pm)
			}
		}
	case GSTAnnual:
		if pm := 12 + g.GSTPaymentDelay; pm <= g.NumMonths {
			months = append(months, pm)
		}
	}
	return months
}

// InflationCategory is the closed set of income/expense/capital categories an
// inflation rate can be attached to. Resolved at configuration load, never by
// string lookup during calculation.
type InflationCategory string

const (
	InflAllIncome     InflationCategory = "all_income"
	InflWool          InflationCategory = "wool"
	InflBeef          InflationCategory = "beef"
	InflSheep         InflationCategory = "sheep"
	InflCrops         InflationCategory = "crops"
	InflAllExpenses   InflationCategory = "all_expenses"
	InflFertiliser    InflationCategory = "fertiliser"
	InflChemicals     InflationCategory = "chemicals"
	InflFuelOil       InflationCategory = "fuel_oil"
	InflLabour        InflationCategory = "labour_contracts"
	InflAnimalHealth  InflationCategory = "animal_health"
	InflRepairs       InflationCategory = "repairs_maintenance"
	InflBuildings     InflationCategory = "buildings"
	InflPlant         InflationCategory = "plant_equipment"
	InflMotorVehicles InflationCategory = "motor_vehicles"
)

// InflationRates holds per-category annual inflation assumptions. Used only
// as a lookup table; never mutated during a run.
type InflationRates struct {
	AllIncome float64 `json:"all_income"`
	Wool      float64 `json:"wool"`
	Beef      float64 `json:"beef"`
	Sheep     float64 `json:"sheep"`
	Crops     float64 `json:"crops"`

	AllExpenses   float64 `json:"all_expenses"`
	Fertiliser    float64 `json:"fertiliser"`
	Chemicals     float64 `json:"chemicals"`
	FuelOil       float64 `json:"fuel_oil"`
	Labour        float64 `json:"labour_contracts"`
	AnimalHealth  float64 `json:"animal_health"`
	Repairs       float64 `json:"repairs_maintenance"`

	Buildings     float64 `json:"buildings"`
	Plant         float64 `json:"plant_equipment"`
	MotorVehicles float64 `json:"motor_vehicles"`
}

// DefaultInflationRates applies 2.8% across the board.
func DefaultInflationRates() InflationRates {
	const r = 0.028
	return InflationRates{
		AllIncome: r, Wool: r, Beef: r, Sheep: r, Crops: r,
		AllExpenses: r, Fertiliser: r, Chemicals: r, FuelOil: r,
		Labour: r, AnimalHealth: r, Repairs: r,
		Buildings: r, Plant: r, MotorVehicles: r,
	}
}

// RateFor resolves a category to its annual rate, falling back to the
// all-expenses rate for anything unmapped.
func (ir InflationRates) RateFor(cat InflationCategory) float64 {
	switch cat {
	case InflAllIncome:
		return ir.AllIncome
	case InflWool:
		return ir.Wool
	case InflBeef:
		return ir.Beef
	case InflSheep:
		return ir.Sheep
	case InflCrops:
		return ir.Crops
	case InflFertiliser:
		return ir.Fertiliser
	case InflChemicals:
		return ir.Chemicals
	case InflFuelOil:
		return ir.FuelOil
	case InflLabour:
		return ir.Labour
	case InflAnimalHealth:
		return ir.AnimalHealth
	case InflRepairs:
		return ir.Repairs
	case InflBuildings:
		return ir.Buildings
	case InflPlant:
		return ir.Plant
	case InflMotorVehicles:
		return ir.MotorVehicles
	default:
		return ir.AllExpenses
	}
}

// Inflate compounds a base value by the category rate over fractional years.
func (ir InflationRates) Inflate(base float64, cat InflationCategory, years float64) float64 {
	rate := ir.RateFor(cat)
	factor := 1.0
	whole := int(years)
	for i := 0; i < whole; i++ {
		factor *= 1 + rate
	}
	if frac := years - float64(whole); frac > 0 {
		factor *= 1 + rate*frac
	}
	return base * factor
}

// PaymentTiming maps each accrual category to the number of months between
// accrual and cash settlement. Zero means cash in the accrual month.
type PaymentTiming struct {
	BeefSales        int `json:"beef_sales"`
	BeefAnimalHealth int `json:"beef_animal_health"`

	SheepSales        int `json:"sheep_sales"`
	SheepAnimalHealth int `json:"sheep_animal_health"`
	SheepFreight      int `json:"sheep_freight"`

	WoolSales     int `json:"wool_sales"`
	WoolFreight   int `json:"wool_freight"`
	ShearingCosts int `json:"shearing_costs"`

	CropSales      int `json:"crop_sales"`
	CropAgronomy   int `json:"crop_agronomy"`
	CropFertiliser int `json:"crop_fertiliser"`
	CropChemicals  int `json:"crop_chemicals"`

	OverheadDefault int `json:"overhead_default"`
}

// DefaultPaymentTiming delays sale proceeds by one month and settles
// everything else in the accrual month.
func DefaultPaymentTiming() PaymentTiming {
	return PaymentTiming{
		BeefSales:    1,
		SheepSales:   1,
		SheepFreight: 1,
		WoolSales:    1,
		WoolFreight:  1,
		CropSales:    1,
		CropAgronomy: 1,
	}
}

// Paddock is a named land unit with a month-keyed enterprise rotation.
type Paddock struct {
	Name     string         `json:"name"`
	Property string         `json:"property"`
	AreaHa   float64        `json:"size_ha"`
	Rotation map[int]string `json:"rotation,omitempty"` // simulation month -> enterprise code
}

// EnterpriseAt returns the enterprise code allocated to the paddock in the
// given month, defaulting to fallow.
func (p Paddock) EnterpriseAt(month int) string {
	if code, ok := p.Rotation[month]; ok {
		return code
	}
	return "Fallow"
}
