package model

// CropInput is one line of a crop program: application rate per hectare and
// unit price.
type CropInput struct {
	UnitsPerHa   float64 `json:"units_per_ha"`
	PricePerUnit float64 `json:"price_per_unit"`
}

// CropProgram itemises the growing inputs for a crop. Its cost per hectare
// can seed a CropMargin's direct cost at scenario load.
type CropProgram struct {
	CropName string               `json:"crop_name"`
	Inputs   map[string]CropInput `json:"inputs"`
}

// CostPerHa sums the program's input costs per hectare.
func (p CropProgram) CostPerHa() float64 {
	total := 0.0
	for _, in := range p.Inputs {
		total += in.UnitsPerHa * in.PricePerUnit
	}
	return total
}

// CropMargin defines one crop's revenue and margin assumptions. Revenue is
// booked wholly into the sale month; the direct cost is spread evenly across
// the year.
type CropMargin struct {
	CropName        string  `json:"crop_name"`
	AreaHa          float64 `json:"area_ha"`
	YieldPerHa      float64 `json:"yield_per_ha"`
	PricePerUnit    float64 `json:"price_per_unit"`
	DeductionsPct   float64 `json:"revenue_deductions_pct"` // storage, levies etc.
	HarvestMonth    int     `json:"harvest_month"`
	SaleMonth       int     `json:"sale_month"`
	DirectCostPerHa float64 `json:"direct_cost_per_ha"`
}

// Revenue returns gross revenue net of deductions.
func (c CropMargin) Revenue() float64 {
	gross := c.AreaHa * c.YieldPerHa * c.PricePerUnit
	return gross * (1 - c.DeductionsPct)
}

// TotalDirectCost returns area times direct cost per hectare.
func (c CropMargin) TotalDirectCost() float64 {
	return c.AreaHa * c.DirectCostPerHa
}

// Margin returns revenue less total direct costs.
func (c CropMargin) Margin() float64 {
	return c.Revenue() - c.TotalDirectCost()
}

// MarginPerHa is the gross margin per hectare, zero for a zero area.
func (c CropMargin) MarginPerHa() float64 {
	if c.AreaHa == 0 {
		return 0
	}
	return c.Margin() / c.AreaHa
}

// PastureActivity is one activity in a pasture program: application rate per
// hectare and cost per unit.
type PastureActivity struct {
	RatePerHa   float64 `json:"rate_per_ha"`
	CostPerUnit float64 `json:"cost_per_unit"`
}

// PastureProgram covers pasture maintenance, establishment or fodder crops.
// Costs are spread over six months from the start month.
type PastureProgram struct {
	Name        string                     `json:"program_name"`
	ProgramType string                     `json:"program_type"` // maintenance, establishment, fodder
	PaddockName string                     `json:"paddock_name"`
	AreaHa      float64                    `json:"area_ha"`
	StartMonth  int                        `json:"start_month"`
	Activities  map[string]PastureActivity `json:"activities,omitempty"`

	// Fodder crops only
	FodderYieldPerHa   float64 `json:"fodder_yield_per_ha,omitempty"`
	FodderValuePerTonne float64 `json:"fodder_value_per_tonne,omitempty"`
}

// TotalCost sums the activity costs across the program area.
func (p PastureProgram) TotalCost() float64 {
	costPerHa := 0.0
	for _, act := range p.Activities {
		costPerHa += act.RatePerHa * act.CostPerUnit
	}
	return costPerHa * p.AreaHa
}

// MonthlyCost returns the cost booked to a simulation month: the total spread
// evenly over the six months from the start month, zero outside that window.
func (p PastureProgram) MonthlyCost(month int) float64 {
	if month < p.StartMonth || month >= p.StartMonth+6 {
		return 0
	}
	return p.TotalCost() / 6
}
