// Package engine implements the heatcurve calculation core: the
// temperature-bin energy model, COP interpolation, hybrid per-bin economic
// dispatch, and crossover-temperature root finding.
//
// The engine is pure and synchronous. Every call to Compute derives a fresh
// Result from its Input; there is no caching and no shared state between
// calls, so identical inputs always produce identical output.
package engine

import "math"

// Fixed physical conversion constants. These are part of the model's
// reproducibility contract and must not be made configurable.
const (
	// DefaultCOP is the assumed heat pump efficiency when no COP table is
	// available for a temperature lookup.
	DefaultCOP = 2.2

	// mmbtuPerTherm converts gas billing units to heat units.
	mmbtuPerTherm = 0.1

	// kwhPerMMBtu converts delivered heat to electrical energy at COP 1.
	kwhPerMMBtu = 293.071
)

// Fuel labels for the per-bin dispatch matrix.
const (
	FuelHeatPump = "heat pump"
	FuelGas      = "gas"
)

// Coordinate is a generic (independent, dependent) sample. It is used for
// both COP table rows (X = outdoor °F, Y = COP) and weather-bin rows
// (X = outdoor °F, Y = weight).
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RateInputs is an immutable snapshot of the economic and physical
// parameters for one calculation. Zero-valued or non-finite fields are
// replaced by named defaults via Sanitize before use.
type RateInputs struct {
	// NonHeatingKWh is annual non-heating electricity usage (kWh/yr).
	NonHeatingKWh float64 `json:"nonHeatingKWh" yaml:"non_heating_kwh"`

	// Electric rate components, in cents per kWh.
	SupplyCents               float64 `json:"supplyCents" yaml:"supply_cents"`
	TransmissionCents         float64 `json:"transmissionCents" yaml:"transmission_cents"`
	DeliveryNonHeatCents      float64 `json:"deliveryNonHeatCents" yaml:"delivery_non_heat_cents"`
	DeliveryElectricHeatCents float64 `json:"deliveryElectricHeatCents" yaml:"delivery_electric_heat_cents"`

	// Gas rate components, in dollars per therm.
	GasSupplyRate   float64 `json:"gasSupplyRate" yaml:"gas_supply_rate"`
	GasDeliveryRate float64 `json:"gasDeliveryRate" yaml:"gas_delivery_rate"`

	// FurnaceAFUE is the gas furnace combustion efficiency (0-1).
	FurnaceAFUE float64 `json:"furnaceAFUE" yaml:"furnace_afue"`

	// HeatLoadMMBtu is the annual heat load (MMBtu/yr).
	HeatLoadMMBtu float64 `json:"heatLoadMMBtu" yaml:"heat_load_mmbtu"`

	// SeasonalCOP is the fallback heat pump efficiency used when no COP
	// table is supplied.
	SeasonalCOP float64 `json:"seasonalCOP" yaml:"seasonal_cop"`

	// GrossCost and TaxCredits feed the payback calculation ($).
	GrossCost  float64 `json:"grossCost" yaml:"gross_cost"`
	TaxCredits float64 `json:"taxCredits" yaml:"tax_credits"`
}

// DefaultRateInputs returns the named default for every RateInputs field.
func DefaultRateInputs() RateInputs {
	return RateInputs{
		NonHeatingKWh:             97300,
		SupplyCents:               3.331,
		TransmissionCents:         1.767,
		DeliveryNonHeatCents:      6.062,
		DeliveryElectricHeatCents: 2.924,
		GasSupplyRate:             0.52,
		GasDeliveryRate:           0.2134,
		FurnaceAFUE:               0.95,
		HeatLoadMMBtu:             37.5,
		SeasonalCOP:               DefaultCOP,
		GrossCost:                 19000,
		TaxCredits:                2000,
	}
}

// Sanitize returns a copy of r with every non-finite field replaced by its
// default. FurnaceAFUE and SeasonalCOP are divisors, so non-positive values
// fall back as well; a zero AFUE would otherwise push infinity through the
// whole gas cost chain.
func (r RateInputs) Sanitize() RateInputs {
	def := DefaultRateInputs()
	out := RateInputs{
		NonHeatingKWh:             finiteOr(r.NonHeatingKWh, def.NonHeatingKWh),
		SupplyCents:               finiteOr(r.SupplyCents, def.SupplyCents),
		TransmissionCents:         finiteOr(r.TransmissionCents, def.TransmissionCents),
		DeliveryNonHeatCents:      finiteOr(r.DeliveryNonHeatCents, def.DeliveryNonHeatCents),
		DeliveryElectricHeatCents: finiteOr(r.DeliveryElectricHeatCents, def.DeliveryElectricHeatCents),
		GasSupplyRate:             finiteOr(r.GasSupplyRate, def.GasSupplyRate),
		GasDeliveryRate:           finiteOr(r.GasDeliveryRate, def.GasDeliveryRate),
		FurnaceAFUE:               positiveOr(r.FurnaceAFUE, def.FurnaceAFUE),
		HeatLoadMMBtu:             finiteOr(r.HeatLoadMMBtu, def.HeatLoadMMBtu),
		SeasonalCOP:               positiveOr(r.SeasonalCOP, def.SeasonalCOP),
		GrossCost:                 finiteOr(r.GrossCost, def.GrossCost),
		TaxCredits:                finiteOr(r.TaxCredits, def.TaxCredits),
	}
	return out
}

// finiteOr returns v unless it is NaN or infinite.
func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// positiveOr returns v unless it is NaN, infinite, or not strictly positive.
func positiveOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}

// Input is the full argument set for one engine evaluation.
type Input struct {
	Rates RateInputs

	// UseTable selects table mode: the COP table and weather bins drive the
	// all-electric and hybrid scenarios. When false the single SeasonalCOP
	// is applied to the whole heat load and no hybrid scenario exists.
	UseTable bool

	// COPTableText and BinsText are free-form "x:y" pair lists, one entry
	// per line or comma-separated. Malformed entries degrade to fewer
	// coordinates, never to an error.
	COPTableText string
	BinsText     string
}

// BinRow is one row of the hybrid dispatch matrix.
type BinRow struct {
	Temp         float64 `json:"temp"`
	HeatSharePct float64 `json:"heatSharePct"`
	COP          float64 `json:"cop"`
	HeatPumpCost float64 `json:"heatPumpCostPerMMBtu"`
	GasCost      float64 `json:"gasCostPerMMBtu"`
	Fuel         string  `json:"fuel"`
}

// CrossoverPoint is one sample of the cost-per-unit-heat curves across the
// scanned temperature domain, materialized for charting.
type CrossoverPoint struct {
	Temp         float64 `json:"temp"`
	HeatPumpCost float64 `json:"heatPumpCost"`
	GasCost      float64 `json:"gasCost"`
}

// Crossover reports where (if anywhere) heat pump and gas reach cost parity.
// Temp is nil when no crossing exists in the modeled range or when the COP
// table is too small to evaluate; Note then explains why.
type Crossover struct {
	Temp   *float64         `json:"temp"`
	Note   string           `json:"note,omitempty"`
	Series []CrossoverPoint `json:"series"`
}

// Result is the output record of one engine evaluation. Pointer fields are
// explicitly absent (nil) rather than zero when the quantity is undefined:
// hybrid figures outside table mode, payback when savings are non-positive.
type Result struct {
	Baseline    float64  `json:"baseline"`
	AllElectric float64  `json:"allElectric"`
	Hybrid      *float64 `json:"hybrid"`

	// HeatingKWh is the annual heat pump electricity use behind the
	// all-electric scenario.
	HeatingKWh float64 `json:"heatingKWh"`

	AllElectricSavings float64  `json:"allElectricSavings"`
	HybridSavings      *float64 `json:"hybridSavings"`
	AllElectricPayback *float64 `json:"allElectricPaybackYears"`
	HybridPayback      *float64 `json:"hybridPaybackYears"`

	// DFCSavings isolates the delivery-charge benefit of moving non-heating
	// usage to the electric-heat rate class, independent of fuel switching.
	DFCSavings float64 `json:"dfcSavings"`

	// GasHeatCost and HeatPumpHeatCost isolate the annual heating bill under
	// each fuel. FuelSwitchSavings is their difference, stored unclamped;
	// presentation layers clamp negatives to zero.
	GasHeatCost       float64 `json:"gasHeatCost"`
	HeatPumpHeatCost  float64 `json:"heatPumpHeatCost"`
	FuelSwitchSavings float64 `json:"fuelSwitchSavings"`

	Crossover Crossover `json:"crossover"`
	Bins      []BinRow  `json:"bins"`
}
