package engine

import (
	"fmt"
	"math"

	"farmmate/pkg/core/model"
)

// Validate checks the model inputs for problems the calculators would
// otherwise silently absorb and returns one warning per finding. An empty
// slice means the inputs are clean. Validation never blocks Calculate.
func (m *FarmModel) Validate() []string {
	var warnings []string
	n := m.General.NumMonths

	if n < 1 {
		warnings = append(warnings, fmt.Sprintf("simulation horizon must be at least 1 month, got %d", n))
	}

	inHorizon := func(month int) bool { return month >= 1 && month <= n }

	checkSchedule := func(owner, schedule string, months []int) {
		for _, month := range months {
			if !inHorizon(month) {
				warnings = append(warnings, fmt.Sprintf(
					"%s: %s entry for month %d is outside the %d-month horizon and will be ignored",
					owner, schedule, month, n))
			}
		}
	}

	for _, program := range m.LivestockPrograms {
		if program.ClassName != "" && m.classByName(program.ClassName) == nil {
			warnings = append(warnings, fmt.Sprintf(
				"livestock program %q references unknown class %q; wool and breeding are disabled",
				program.Name, program.ClassName))
		}
		owner := fmt.Sprintf("livestock program %q", program.Name)
		checkSchedule(owner, "purchase", intKeys(program.Purchases))
		checkSchedule(owner, "sale", intKeys(program.Sales))
		checkSchedule(owner, "deaths", intKeys(program.Deaths))
		checkSchedule(owner, "births", intKeys(program.Births))
		checkSchedule(owner, "transfers in", intKeys(program.TransfersIn))
		checkSchedule(owner, "transfers out", intKeys(program.TransfersOut))
		checkSchedule(owner, "direct cost", intKeys(program.DirectCosts))
	}

	for _, wool := range m.WoolProduction {
		found := false
		for _, program := range m.LivestockPrograms {
			if program.Name == wool.ProgramName {
				found = true
				break
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf(
				"wool production record references unknown livestock program %q", wool.ProgramName))
		}
	}

	for _, crop := range m.CropMargins {
		if !inHorizon(crop.SaleMonth) {
			warnings = append(warnings, fmt.Sprintf(
				"crop %q: sale month %d is outside the %d-month horizon; its revenue will not be booked",
				crop.CropName, crop.SaleMonth, n))
		}
	}

	for _, overhead := range m.Overheads {
		if overhead.Allocation == model.AllocOneOff && !inHorizon(overhead.OneOffMonth) {
			warnings = append(warnings, fmt.Sprintf(
				"overhead %q: one-off month %d is outside the %d-month horizon",
				overhead.Name, overhead.OneOffMonth, n))
		}
	}

	for _, capex := range m.PlannedCapex {
		if !inHorizon(capex.PurchaseMonth) {
			warnings = append(warnings, fmt.Sprintf(
				"planned capex %q: purchase month %d is outside the %d-month horizon",
				capex.Name, capex.PurchaseMonth, n))
		}
	}

	for _, disposal := range m.PlannedDisposals {
		if !inHorizon(disposal.DisposalMonth) {
			warnings = append(warnings, fmt.Sprintf(
				"planned disposal of %q: disposal month %d is outside the %d-month horizon",
				disposal.AssetName, disposal.DisposalMonth, n))
		} else if m.findAsset(disposal.AssetName) == nil {
			hasCapex := false
			for _, capex := range m.PlannedCapex {
				if capex.Name == disposal.AssetName {
					hasCapex = true
					break
				}
			}
			if !hasCapex {
				warnings = append(warnings, fmt.Sprintf(
					"planned disposal references unknown asset %q", disposal.AssetName))
			}
		}
	}

	for _, facility := range m.DebtFacilities {
		owner := fmt.Sprintf("debt facility %q", facility.Description)
		checkSchedule(owner, "drawdown", intKeys(facility.Drawdowns))
		checkSchedule(owner, "repayment", intKeys(facility.Repayments))
	}

	if delta := m.OpeningBalances.Check(); math.Abs(delta) > 0.01 {
		warnings = append(warnings, fmt.Sprintf(
			"opening balance sheet does not balance: assets exceed liabilities plus equity by %.2f", delta))
	}

	return warnings
}

func intKeys[V any](schedule map[int]V) []int {
	keys := make([]int, 0, len(schedule))
	for k := range schedule {
		keys = append(keys, k)
	}
	return keys
}
