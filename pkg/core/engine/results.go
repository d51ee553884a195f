package engine

import "time"

// PLRow is one month of the profit & loss statement. Tax columns follow the
// cumulative convention: TaxAccrued is the liability accrued to date, while
// TaxExpense is the month's movement in it.
type PLRow struct {
	Month int       `json:"month"`
	Date  time.Time `json:"date"`

	CropRevenue  float64 `json:"crop_revenue"`
	BeefRevenue  float64 `json:"beef_revenue"`
	SheepRevenue float64 `json:"sheep_revenue"`
	WoolRevenue  float64 `json:"wool_revenue"`
	OtherIncome  float64 `json:"other_income"`

	CropDirectCosts  float64 `json:"crop_direct_costs"`
	BeefDirectCosts  float64 `json:"beef_direct_costs"`
	SheepDirectCosts float64 `json:"sheep_direct_costs"`
	WoolDirectCosts  float64 `json:"wool_direct_costs"`
	PastureCosts     float64 `json:"pasture_costs"`

	Overheads       float64 `json:"overheads"`
	Depreciation    float64 `json:"depreciation"`
	InterestExpense float64 `json:"interest_expense"`
	InterestIncome  float64 `json:"interest_income"`

	TotalIncome      float64 `json:"total_income"`
	TotalDirectCosts float64 `json:"total_direct_costs"`
	GrossProfit      float64 `json:"gross_profit"`
	EBITDA           float64 `json:"ebitda"`
	EBIT             float64 `json:"ebit"`
	EBT              float64 `json:"ebt"`

	CumulativeTaxable float64 `json:"cumulative_taxable_income"`
	TaxAccrued        float64 `json:"tax_accrued"`
	TaxPaid           float64 `json:"tax_paid"`
	TaxExpense        float64 `json:"tax_expense"`
	NetProfit         float64 `json:"net_profit"`

	FY int `json:"fy"`
}

// CFRow is one month of the cash flow statement. CashReceipts and
// CashPayments are GST-inclusive; payments also carry interest, GST
// remittances and tax once those are folded in.
type CFRow struct {
	Month int       `json:"month"`
	Date  time.Time `json:"date"`

	NetProfit            float64 `json:"net_profit"`
	Depreciation         float64 `json:"depreciation"`
	WorkingCapitalChange float64 `json:"working_capital_change"`
	CashReceipts         float64 `json:"cash_receipts"`
	CashPayments         float64 `json:"cash_payments"`

	Capex           float64 `json:"capex"`
	AssetSales      float64 `json:"asset_sales"`
	DebtDrawdowns   float64 `json:"debt_drawdowns"`
	DebtRepayments  float64 `json:"debt_repayments"`
	EquityInjection float64 `json:"equity_injection"`
	Dividends       float64 `json:"dividends"`

	TaxUnpaid   float64 `json:"tax_unpaid"`
	OperatingCF float64 `json:"operating_cf"`
	InvestingCF float64 `json:"investing_cf"`
	FinancingCF float64 `json:"financing_cf"`
	NetCashFlow float64 `json:"net_cash_flow"`
	ClosingCash float64 `json:"closing_cash"`

	FY int `json:"fy"`
}

// BSRow is one month-end balance sheet. Each line is reconstructed as
// opening balance plus cumulative movement. GSTBalance is signed; it is
// split into a receivable asset or payable liability for the totals.
type BSRow struct {
	Month int       `json:"month"`
	Date  time.Time `json:"date"`

	Cash         float64 `json:"cash"`
	TradeDebtors float64 `json:"trade_debtors"`
	Inventory    float64 `json:"inventory"`
	FixedAssets  float64 `json:"fixed_assets"`
	LandWater    float64 `json:"land_water"`
	GSTReceivable float64 `json:"gst_receivable"`

	TradeCreditors float64 `json:"trade_creditors"`
	Debt           float64 `json:"debt"`
	TaxPayable     float64 `json:"tax_payable"`
	GSTBalance     float64 `json:"gst_balance"`
	GSTLiability   float64 `json:"gst_liability"`

	ShareCapital     float64 `json:"share_capital"`
	RetainedEarnings float64 `json:"retained_earnings"`

	TotalAssets      float64 `json:"total_assets"`
	TotalLiabilities float64 `json:"total_liabilities"`
	TotalEquity      float64 `json:"total_equity"`
	BalanceCheck     float64 `json:"balance_check"`

	FY int `json:"fy"`
}

// GSTRow is one month of the GST schedule. Cumulative is the running unpaid
// position seeded from the opening balance: positive payable, negative
// receivable.
type GSTRow struct {
	Month       int       `json:"month"`
	Date        time.Time `json:"date"`
	OnSales     float64   `json:"gst_on_sales"`
	OnPurchases float64   `json:"gst_on_purchases"`
	NetGST      float64   `json:"net_gst"`
	Payment     float64   `json:"gst_payment"`
	Cumulative  float64   `json:"cumulative_gst"`
}

// DisposalResult records the outcome of a planned disposal: sale proceeds
// against the asset's written-down value at the disposal month.
type DisposalResult struct {
	AssetName        string  `json:"asset_name"`
	Month            int     `json:"month"`
	NetProceeds      float64 `json:"net_proceeds"`
	WrittenDownValue float64 `json:"written_down_value"`
	Profit           float64 `json:"profit_on_sale"`
}

// AnnualPLRow aggregates P&L flows by financial year.
type AnnualPLRow struct {
	FY               int     `json:"fy"`
	TotalIncome      float64 `json:"total_income"`
	TotalDirectCosts float64 `json:"total_direct_costs"`
	GrossProfit      float64 `json:"gross_profit"`
	Overheads        float64 `json:"overheads"`
	EBITDA           float64 `json:"ebitda"`
	Depreciation     float64 `json:"depreciation"`
	EBIT             float64 `json:"ebit"`
	InterestExpense  float64 `json:"interest_expense"`
	InterestIncome   float64 `json:"interest_income"`
	EBT              float64 `json:"ebt"`
	TaxExpense       float64 `json:"tax_expense"`
	NetProfit        float64 `json:"net_profit"`
}

// AnnualCFRow aggregates cash flows by financial year; ClosingCash is the
// balance at the year's final month.
type AnnualCFRow struct {
	FY          int     `json:"fy"`
	OperatingCF float64 `json:"operating_cf"`
	InvestingCF float64 `json:"investing_cf"`
	FinancingCF float64 `json:"financing_cf"`
	NetCashFlow float64 `json:"net_cash_flow"`
	ClosingCash float64 `json:"closing_cash"`
}
