package model

import "time"

// AllocationMethod determines how an overhead is spread across the horizon.
type AllocationMethod string

const (
	AllocStraightLine AllocationMethod = "straight_line"
	AllocOneOff       AllocationMethod = "one_off"
)

// OverheadCategory is either a flat monthly amount or a one-off amount in a
// specific month.
type OverheadCategory struct {
	Name          string           `json:"category_name"`
	Allocation    AllocationMethod `json:"allocation_method"`
	MonthlyAmount float64          `json:"monthly_amount,omitempty"`
	OneOffMonth   int              `json:"one_off_month,omitempty"`
	OneOffAmount  float64          `json:"one_off_amount,omitempty"`
}

// MonthlyCost returns the overhead charge for the given simulation month.
func (o OverheadCategory) MonthlyCost(month int) float64 {
	switch o.Allocation {
	case AllocStraightLine:
		return o.MonthlyAmount
	case AllocOneOff:
		if month == o.OneOffMonth {
			return o.OneOffAmount
		}
	}
	return 0
}

// DebtFacility is a loan or overdraft. The balance at any month is computed
// by replaying the drawdown and repayment schedules from inception; nothing
// is cached.
type DebtFacility struct {
	Description       string          `json:"description"`
	FacilityType      string          `json:"facility_type"` // term_loan, overdraft, related_party
	Principal         float64         `json:"principal"`
	InterestRate      float64         `json:"interest_rate"`
	EstablishmentDate time.Time       `json:"establishment_date"`
	Drawdowns         map[int]float64 `json:"drawdown_schedule,omitempty"`
	Repayments        map[int]float64 `json:"repayment_schedule,omitempty"`
}

// BalanceAt replays the schedules up to and including the given month and
// returns the outstanding balance, floored at zero.
func (f DebtFacility) BalanceAt(month int) float64 {
	balance := f.Principal
	for m := 1; m <= month; m++ {
		balance += f.Drawdowns[m]
		balance -= f.Repayments[m]
	}
	if balance < 0 {
		return 0
	}
	return balance
}

// InterestFor returns the month's interest charge: the prior month's closing
// balance times the monthly rate.
func (f DebtFacility) InterestFor(month int) float64 {
	balance := f.Principal
	if month > 1 {
		balance = f.BalanceAt(month - 1)
	}
	return balance * f.InterestRate / 12
}

// OpeningBalances is the opening balance-sheet snapshot. GSTLiability is
// signed: positive payable, negative receivable.
type OpeningBalances struct {
	Cash               float64 `json:"cash"`
	TradeDebtors       float64 `json:"trade_debtors"`
	InventoryGrain     float64 `json:"inventory_grain"`
	InventoryWool      float64 `json:"inventory_wool"`
	InventoryLivestock float64 `json:"inventory_livestock"`
	Prepayments        float64 `json:"prepayments"`
	FixedAssets        float64 `json:"fixed_assets"`
	LandWater          float64 `json:"land_water"`

	TradeCreditors float64 `json:"trade_creditors"`
	Accruals       float64 `json:"accruals"`
	GSTLiability   float64 `json:"gst_liability"`
	TaxPayable     float64 `json:"tax_payable"`
	DebtFacilities float64 `json:"debt_facilities"`

	ShareCapital     float64 `json:"share_capital"`
	RetainedEarnings float64 `json:"retained_earnings"`
}

// TotalAssets sums the asset side, excluding any GST receivable.
func (b OpeningBalances) TotalAssets() float64 {
	return b.Cash + b.TradeDebtors + b.InventoryGrain + b.InventoryWool +
		b.InventoryLivestock + b.Prepayments + b.FixedAssets + b.LandWater
}

// TotalLiabilities sums the liability side. GST counts only when payable.
func (b OpeningBalances) TotalLiabilities() float64 {
	gst := b.GSTLiability
	if gst < 0 {
		gst = 0
	}
	return b.TradeCreditors + b.Accruals + gst + b.TaxPayable + b.DebtFacilities
}

// TotalEquity is share capital plus retained earnings.
func (b OpeningBalances) TotalEquity() float64 {
	return b.ShareCapital + b.RetainedEarnings
}

// Check returns assets less liabilities-plus-equity, counting a negative GST
// balance as a receivable asset. Zero (within tolerance) for a consistent
// snapshot. Reported, never enforced.
func (b OpeningBalances) Check() float64 {
	assets := b.TotalAssets()
	if b.GSTLiability < 0 {
		assets += -b.GSTLiability
	}
	return assets - (b.TotalLiabilities() + b.TotalEquity())
}
