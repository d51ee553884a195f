// Package scenario persists farm models as JSON documents and loads them
// back, tolerating hand-edited files. The document format is deliberately
// partial: it carries the assumptions and registers a scenario file is
// expected to define, while the month-keyed livestock programs, wool, pasture
// and debt schedules are configured in code or through the API and are not
// round-tripped.
package scenario

import (
	"fmt"
	"time"

	"farmmate/pkg/core/engine"
	"farmmate/pkg/core/model"
)

const dateLayout = "2006-01-02"

// Document is the on-disk scenario format. Dates are ISO-8601 calendar dates
// rather than full timestamps.
type Document struct {
	General          generalDoc               `json:"general"`
	OpeningBalances  model.OpeningBalances    `json:"opening_balances"`
	Paddocks         []model.Paddock          `json:"paddocks"`
	FixedAssets      []assetDoc               `json:"fixed_assets"`
	PlannedCapex     []model.PlannedCapex     `json:"planned_capex"`
	CropPrograms     []model.CropProgram      `json:"crop_programs,omitempty"`
	CropMargins      []model.CropMargin       `json:"crop_margins"`
	LivestockClasses []model.LivestockClass   `json:"livestock_classes"`
	Overheads        []model.OverheadCategory `json:"overheads"`
}

// generalDoc mirrors model.GeneralAssumptions with a calendar-date start.
type generalDoc struct {
	FarmName   string `json:"farm_name"`
	StartDate  string `json:"start_date"`
	NumMonths  int    `json:"num_months"`
	FYEndMonth int    `json:"financial_year_end_month"`

	IncomeTaxRate       float64 `json:"income_tax_rate"`
	GSTRate             float64 `json:"gst_rate"`
	CapitalGainsTaxRate float64 `json:"capital_gains_tax_rate"`
	InvestorTaxRate     float64 `json:"investor_tax_rate"`
	TaxPaymentMonth     int     `json:"tax_payment_month"`

	GSTReportingPeriod model.GSTPeriod `json:"gst_reporting_period"`
	GSTPaymentDelay    int             `json:"gst_payment_delay"`

	OverdraftRate    float64 `json:"overdraft_rate"`
	CashInterestRate float64 `json:"cash_interest_rate"`
}

// assetDoc mirrors model.FixedAsset with a calendar-date purchase date.
type assetDoc struct {
	Name            string  `json:"asset_name"`
	Class           string  `json:"asset_class"`
	Subclass        string  `json:"asset_subclass"`
	PurchaseDate    string  `json:"purchase_date"`
	PurchaseAmount  float64 `json:"purchase_amount"`
	UsefulLifeYears float64 `json:"useful_life_years"`
	ResidualValue   float64 `json:"residual_value"`
}

// FromModel captures the persistable slice of a farm model.
func FromModel(m *engine.FarmModel) *Document {
	doc := &Document{
		General: generalDoc{
			FarmName:            m.General.FarmName,
			StartDate:           m.General.StartDate.Format(dateLayout),
			NumMonths:           m.General.NumMonths,
			FYEndMonth:          m.General.FYEndMonth,
			IncomeTaxRate:       m.General.IncomeTaxRate,
			GSTRate:             m.General.GSTRate,
			CapitalGainsTaxRate: m.General.CapitalGainsTaxRate,
			InvestorTaxRate:     m.General.InvestorTaxRate,
			TaxPaymentMonth:     m.General.TaxPaymentMonth,
			GSTReportingPeriod:  m.General.GSTReportingPeriod,
			GSTPaymentDelay:     m.General.GSTPaymentDelay,
			OverdraftRate:       m.General.OverdraftRate,
			CashInterestRate:    m.General.CashInterestRate,
		},
		OpeningBalances:  m.OpeningBalances,
		Paddocks:         m.Paddocks,
		PlannedCapex:     m.PlannedCapex,
		CropPrograms:     m.CropPrograms,
		CropMargins:      m.CropMargins,
		LivestockClasses: m.LivestockClasses,
		Overheads:        m.Overheads,
	}
	for _, asset := range m.FixedAssets {
		doc.FixedAssets = append(doc.FixedAssets, assetDoc{
			Name:            asset.Name,
			Class:           asset.Class,
			Subclass:        asset.Subclass,
			PurchaseDate:    asset.PurchaseDate.Format(dateLayout),
			PurchaseAmount:  asset.PurchaseAmount,
			UsefulLifeYears: asset.UsefulLifeYears,
			ResidualValue:   asset.ResidualValue,
		})
	}
	return doc
}

// ToModel builds a fresh farm model from the document. Payment timing and
// inflation assumptions are not part of the document and keep their defaults;
// general settings the file omits decode as zero.
func (d *Document) ToModel() (*engine.FarmModel, error) {
	m := engine.NewFarmModel()
	if err := d.Apply(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Apply overwrites the model's persistable collections with the document's
// contents. Derived results on the model are left untouched; the caller is
// expected to recalculate.
func (d *Document) Apply(m *engine.FarmModel) error {
	start, err := time.Parse(dateLayout, d.General.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start_date %q: %w", d.General.StartDate, err)
	}

	m.General.FarmName = d.General.FarmName
	m.General.StartDate = start
	m.General.NumMonths = d.General.NumMonths
	m.General.FYEndMonth = d.General.FYEndMonth
	m.General.IncomeTaxRate = d.General.IncomeTaxRate
	m.General.GSTRate = d.General.GSTRate
	m.General.CapitalGainsTaxRate = d.General.CapitalGainsTaxRate
	m.General.InvestorTaxRate = d.General.InvestorTaxRate
	m.General.TaxPaymentMonth = d.General.TaxPaymentMonth
	m.General.GSTReportingPeriod = d.General.GSTReportingPeriod
	m.General.GSTPaymentDelay = d.General.GSTPaymentDelay
	m.General.OverdraftRate = d.General.OverdraftRate
	m.General.CashInterestRate = d.General.CashInterestRate

	m.OpeningBalances = d.OpeningBalances
	m.Paddocks = d.Paddocks
	m.PlannedCapex = d.PlannedCapex
	m.CropPrograms = d.CropPrograms
	m.CropMargins = d.CropMargins

	// A crop margin with no direct cost of its own takes the itemised input
	// cost of the growing program for the same crop.
	for i := range m.CropMargins {
		if m.CropMargins[i].DirectCostPerHa != 0 {
			continue
		}
		for _, program := range m.CropPrograms {
			if program.CropName == m.CropMargins[i].CropName {
				m.CropMargins[i].DirectCostPerHa = program.CostPerHa()
				break
			}
		}
	}
	m.LivestockClasses = d.LivestockClasses
	m.Overheads = d.Overheads

	m.FixedAssets = nil
	for _, asset := range d.FixedAssets {
		purchased, err := time.Parse(dateLayout, asset.PurchaseDate)
		if err != nil {
			return fmt.Errorf("asset %q: invalid purchase_date %q: %w", asset.Name, asset.PurchaseDate, err)
		}
		m.FixedAssets = append(m.FixedAssets, model.FixedAsset{
			Name:            asset.Name,
			Class:           asset.Class,
			Subclass:        asset.Subclass,
			PurchaseDate:    purchased,
			PurchaseAmount:  asset.PurchaseAmount,
			UsefulLifeYears: asset.UsefulLifeYears,
			ResidualValue:   asset.ResidualValue,
		})
	}
	return nil
}
