package optimizer

import "Corbel/internal/model"

const steelDensityKGMM3 = 7850e-9

// Weight is the system mass per metre of run: the angle cross-section plus
// the bracket web and back plate spread over the bracket centres. It is a
// pure function of the candidate and its geometry.
func Weight(p model.CandidateParameters, g model.DerivedGeometry) float64 {
	angleAreaMM2 := (p.VerticalLegMM + p.HorizontalLegMM) * p.AngleThicknessMM
	anglePerM := angleAreaMM2 * steelDensityKGMM3 * 1000

	webKG := g.BracketHeightMM * g.BracketProjectionMM * p.BracketThicknessMM * steelDensityKGMM3
	backKG := g.PlateWidthMM * g.BracketHeightMM * p.BracketThicknessMM * steelDensityKGMM3
	bracketsPerM := 1000 / p.BracketCentresMM

	return anglePerM + (webKG+backKG)*bracketsPerM
}
