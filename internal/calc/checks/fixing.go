package checks

import (
	"fmt"
	"math"

	"Corbel/internal/capacity"
	"Corbel/internal/model"
)

// steelBoltCapacities covers the steel-section fixing family, keyed by bolt
// size then fixing method: {tension, shear} in kN.
var steelBoltCapacities = map[string]map[string][2]float64{
	"M10": {"setscrew": {12.6, 9.4}, "boltnut": {14.1, 10.8}},
	"M12": {"setscrew": {18.3, 13.7}, "boltnut": {20.5, 15.7}},
}

// FixingCapacity compares the applied fixing tension and shear against the
// tabulated channel capacities (with the usual slab-thickness fallback) or,
// for the steel-section family, the bolt capacity table. A missing lookup or
// non-positive tensile demand fails the check; it never errors.
func FixingCapacity(table *capacity.Table, in model.DesignInputs, p model.CandidateParameters, g model.DerivedGeometry, tensionKN float64) model.VerificationOutcome {
	var (
		maxTension, maxShear float64
		warnings             []string
	)
	switch {
	case p.SteelBoltSize != "":
		caps, ok := steelBoltCapacities[p.SteelBoltSize][p.SteelFixingMethod]
		if !ok {
			return failedFixing(fmt.Sprintf("no capacity data for %s %s", p.SteelBoltSize, p.SteelFixingMethod))
		}
		maxTension, maxShear = caps[0], caps[1]
	case p.ChannelType != "":
		if table == nil {
			return failedFixing("no capacity table configured")
		}
		lk, err := table.Find(p.ChannelType, int(in.SlabThicknessMM), int(p.BracketCentresMM))
		if err != nil {
			return failedFixing(err.Error())
		}
		if lk.Degraded {
			warnings = append(warnings, fmt.Sprintf(
				"capacity row degraded: %s slab %d mm used for requested %d mm",
				p.ChannelType, lk.UsedSlabMM, lk.RequestedSlabMM))
		}
		maxTension = lk.Spec.MaxTensionKN * lk.Spec.UtilizationFactor
		maxShear = lk.Spec.MaxShearKN * lk.Spec.UtilizationFactor
	default:
		return failedFixing("candidate has neither channel type nor steel bolt size")
	}

	if tensionKN <= 0 {
		return failedFixing("no tensile demand resolved for the fixing")
	}

	utilT := tensionKN / maxTension * 100
	utilV := g.AppliedShearKN / maxShear * 100
	utilC := (tensionKN/maxTension + g.AppliedShearKN/maxShear) / 1.25 * 100
	util := math.Max(utilT, math.Max(utilV, utilC))

	o := outcome(CheckFixing, util, util <= 100, map[string]float64{
		"tension_utilization_pct":  utilT,
		"shear_utilization_pct":    utilV,
		"combined_utilization_pct": utilC,
		"max_tension_kn":           maxTension,
		"max_shear_kn":             maxShear,
	})
	o.Warnings = warnings
	return o
}

func failedFixing(reason string) model.VerificationOutcome {
	return model.VerificationOutcome{
		Name:     CheckFixing,
		Pass:     false,
		Warnings: []string{reason},
	}
}
