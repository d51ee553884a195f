package model

import "time"

// FixedAsset is an entry in the fixed-asset register. Depreciation is
// straight-line over the useful life down to the residual value.
type FixedAsset struct {
	Name            string    `json:"asset_name"`
	Class           string    `json:"asset_class"` // Buildings, Irrigation, Plant & Equipment, Motor Vehicles, Pasture
	Subclass        string    `json:"asset_subclass"`
	PurchaseDate    time.Time `json:"purchase_date"`
	PurchaseAmount  float64   `json:"purchase_amount"`
	UsefulLifeYears float64   `json:"useful_life_years"`
	ResidualValue   float64   `json:"residual_value"`
}

// AnnualDepreciation returns the straight-line annual charge. Guarded for a
// zero useful life.
func (a FixedAsset) AnnualDepreciation() float64 {
	if a.UsefulLifeYears == 0 {
		return 0
	}
	return (a.PurchaseAmount - a.ResidualValue) / a.UsefulLifeYears
}

// MonthlyDepreciation returns the straight-line monthly charge.
func (a FixedAsset) MonthlyDepreciation() float64 {
	return a.AnnualDepreciation() / 12
}

// WrittenDownValue returns cost less accumulated depreciation after the given
// number of elapsed months, floored at the residual value.
func (a FixedAsset) WrittenDownValue(monthsElapsed int) float64 {
	wdv := a.PurchaseAmount - a.MonthlyDepreciation()*float64(monthsElapsed)
	if wdv < a.ResidualValue {
		return a.ResidualValue
	}
	return wdv
}

// PlannedCapex is a scheduled future asset purchase. It materialises into a
// FixedAsset when the simulation reaches its purchase month.
type PlannedCapex struct {
	Name            string  `json:"asset_name"`
	Class           string  `json:"asset_class"`
	Subclass        string  `json:"asset_subclass"`
	PurchaseMonth   int     `json:"purchase_month"`
	PurchaseAmount  float64 `json:"purchase_amount"`
	UsefulLifeYears float64 `json:"useful_life_years"`
	ResidualValue   float64 `json:"residual_value"`
	FundingSource   string  `json:"funding_source,omitempty"` // Cash, Debt, Equity
}

// ToFixedAsset converts the planned purchase into a register entry dated at
// its purchase month relative to the model start.
func (c PlannedCapex) ToFixedAsset(start time.Time) FixedAsset {
	return FixedAsset{
		Name:            c.Name,
		Class:           c.Class,
		Subclass:        c.Subclass,
		PurchaseDate:    start.AddDate(0, c.PurchaseMonth-1, 0),
		PurchaseAmount:  c.PurchaseAmount,
		UsefulLifeYears: c.UsefulLifeYears,
		ResidualValue:   c.ResidualValue,
	}
}

// PlannedDisposal is a scheduled asset sale.
type PlannedDisposal struct {
	AssetName     string  `json:"asset_name"`
	DisposalMonth int     `json:"disposal_month"`
	SalePrice     float64 `json:"sale_price"`
	DisposalCosts float64 `json:"disposal_costs"`
}

// NetProceeds is the sale price less costs of disposal.
func (d PlannedDisposal) NetProceeds() float64 {
	return d.SalePrice - d.DisposalCosts
}

// ProfitOnSale computes the profit or loss against the asset's written-down
// value at disposal.
func (d PlannedDisposal) ProfitOnSale(writtenDownValue float64) float64 {
	return d.NetProceeds() - writtenDownValue
}
