package engine

// Rates holds the blended per-unit energy costs derived from RateInputs.
// All scenario math flows through these four numbers.
type Rates struct {
	// GasUnitCost is the all-in gas price in $/therm.
	GasUnitCost float64

	// NonHeatingRate and ElectricHeatRate are all-in electric prices in
	// $/kWh. The electric-heat delivery class is typically cheaper,
	// reflecting the separate utility rate tier a home qualifies for once
	// its heating is all-electric.
	NonHeatingRate   float64
	ElectricHeatRate float64

	// GasCostPerMMBtu is the cost of one MMBtu of delivered heat from the
	// gas furnace, after combustion losses.
	GasCostPerMMBtu float64
}

// NewRates derives the blended rates from sanitized inputs. Callers are
// expected to pass RateInputs that went through Sanitize; a zero AFUE here
// would divide by zero.
func NewRates(in RateInputs) Rates {
	gas := in.GasSupplyRate + in.GasDeliveryRate
	return Rates{
		GasUnitCost:      gas,
		NonHeatingRate:   (in.SupplyCents + in.TransmissionCents + in.DeliveryNonHeatCents) / 100,
		ElectricHeatRate: (in.SupplyCents + in.TransmissionCents + in.DeliveryElectricHeatCents) / 100,
		GasCostPerMMBtu:  1 / mmbtuPerTherm / in.FurnaceAFUE * gas,
	}
}

// KWhPerMMBtu converts one MMBtu of delivered heat to the electrical energy
// a heat pump consumes producing it. Non-positive or non-finite COP values
// fall back to DefaultCOP so the conversion never returns infinity.
func KWhPerMMBtu(cop float64) float64 {
	cop = positiveOr(cop, DefaultCOP)
	return kwhPerMMBtu / cop
}

// HeatPumpCostPerMMBtu is the cost of one MMBtu of delivered heat from the
// heat pump at the given COP, billed at the electric-heat rate.
func (r Rates) HeatPumpCostPerMMBtu(cop float64) float64 {
	return KWhPerMMBtu(cop) * r.ElectricHeatRate
}
