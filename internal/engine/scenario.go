package engine

import (
	"context"
	"time"

	"github.com/gridnote/heatcurve/internal/logging"
)

// Compute evaluates the Baseline, All-Electric, and Hybrid scenarios for one
// input snapshot and derives savings, payback, and the crossover analysis.
//
// The evaluation is O(bins + gridSteps) and allocates a fresh Result; it
// never returns an error. Malformed table or bin text degrades to fewer
// coordinates, and every division is guarded, so no NaN or infinity can
// reach the returned record.
func Compute(ctx context.Context, in Input) Result {
	log := logging.FromContext(ctx)
	start := time.Now()

	ri := in.Rates.Sanitize()
	rates := NewRates(ri)
	table := ParsePairs(in.COPTableText)
	bins := NormalizeBins(ParsePairs(in.BinsText))

	log.Debug().
		Str("component", "engine").
		Str("operation", "compute").
		Bool("table_mode", in.UseTable).
		Int("cop_points", len(table)).
		Int("bins", len(bins)).
		Msg("starting scenario evaluation")

	// Baseline: non-heating electricity plus the full heat load on gas.
	gasHeatCost := ri.HeatLoadMMBtu * rates.GasCostPerMMBtu
	baseline := ri.NonHeatingKWh*rates.NonHeatingRate + gasHeatCost

	// All-Electric: heating kWh from per-bin interpolated COPs in table
	// mode, or the single seasonal COP otherwise.
	var heatingKWh float64
	if in.UseTable {
		for _, b := range bins {
			share := b.Y / 100 * ri.HeatLoadMMBtu
			heatingKWh += share * KWhPerMMBtu(InterpolateCOP(table, b.X))
		}
	} else {
		heatingKWh = ri.HeatLoadMMBtu * KWhPerMMBtu(ri.SeasonalCOP)
	}
	allElectric := (ri.NonHeatingKWh + heatingKWh) * rates.ElectricHeatRate

	res := Result{
		Baseline:         baseline,
		AllElectric:      allElectric,
		HeatingKWh:       heatingKWh,
		GasHeatCost:      gasHeatCost,
		HeatPumpHeatCost: heatingKWh * rates.ElectricHeatRate,
		DFCSavings: ri.NonHeatingKWh *
			(ri.DeliveryNonHeatCents - ri.DeliveryElectricHeatCents) / 100,
	}
	res.FuelSwitchSavings = res.GasHeatCost - res.HeatPumpHeatCost

	// Hybrid: table mode only. Each bin's entire heat share goes to the
	// cheaper fuel; exact cost ties dispatch to the heat pump.
	if in.UseTable {
		hybridHeat := 0.0
		rows := make([]BinRow, 0, len(bins))
		for _, b := range bins {
			cop := InterpolateCOP(table, b.X)
			hpUnit := rates.HeatPumpCostPerMMBtu(cop)
			share := b.Y / 100 * ri.HeatLoadMMBtu

			fuel := FuelGas
			unit := rates.GasCostPerMMBtu
			if hpUnit <= rates.GasCostPerMMBtu {
				fuel = FuelHeatPump
				unit = hpUnit
			}
			hybridHeat += share * unit

			rows = append(rows, BinRow{
				Temp:         b.X,
				HeatSharePct: b.Y,
				COP:          cop,
				HeatPumpCost: hpUnit,
				GasCost:      rates.GasCostPerMMBtu,
				Fuel:         fuel,
			})
		}
		hybrid := ri.NonHeatingKWh*rates.ElectricHeatRate + hybridHeat
		res.Hybrid = &hybrid
		res.Bins = rows
	}

	res.AllElectricSavings = baseline - allElectric
	res.AllElectricPayback = paybackYears(ri, res.AllElectricSavings)
	if res.Hybrid != nil {
		s := baseline - *res.Hybrid
		res.HybridSavings = &s
		res.HybridPayback = paybackYears(ri, s)
	}

	res.Crossover = SolveCrossover(table, rates)

	log.Info().
		Str("component", "engine").
		Str("operation", "compute").
		Float64("baseline", res.Baseline).
		Float64("all_electric", res.AllElectric).
		Bool("hybrid_available", res.Hybrid != nil).
		Int64("duration_us", time.Since(start).Microseconds()).
		Msg("scenario evaluation complete")

	return res
}

// paybackYears returns (grossCost - credits) / savings when savings are
// strictly positive, and nil otherwise. A non-positive savings figure has no
// payback period: the result is explicitly absent, not zero or infinite.
func paybackYears(ri RateInputs, savings float64) *float64 {
	if savings <= 0 {
		return nil
	}
	years := (ri.GrossCost - ri.TaxCredits) / savings
	return &years
}

// ClampNonNegative is the presentation-time clamp for figures stored
// unclamped internally, such as fuel-switch savings.
func ClampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
