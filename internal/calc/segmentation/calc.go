// Package segmentation splits a continuous support run into angle pieces and
// places brackets on each piece, minimising total bracket count first and
// the number of distinct piece lengths second.
package segmentation

import (
	"fmt"
	"math"
)

const (
	// MinEndOffsetMM is the closest a bracket may sit to a piece end.
	MinEndOffsetMM = 35.0
	// MinMultiBracketPieceMM: any piece longer than this carries at least
	// two brackets.
	MinMultiBracketPieceMM = 150.0
	// shortRemainderMM: a trailing custom piece shorter than this is merged
	// with the last standard piece and re-split into two equal customs.
	shortRemainderMM = 200.0
)

// standardPieceLengths holds the stocked angle lengths per bracket centres.
// Each is a whole multiple of its centres so brackets tile evenly.
var standardPieceLengths = map[int]float64{
	200: 1000,
	250: 1250,
	300: 1500,
	350: 1400,
	400: 1600,
	450: 1350,
	500: 1500,
	600: 1800,
}

type Input struct {
	RunLengthMM      float64 `json:"run_length_mm"`
	BracketCentresMM float64 `json:"bracket_centres_mm"`
	MaxPieceLengthMM float64 `json:"max_piece_length_mm,omitempty"` // optional manufacturing/site cap
}

type Piece struct {
	LengthMM         float64   `json:"length_mm"`
	Standard         bool      `json:"standard"`
	BracketOffsetsMM []float64 `json:"bracket_offsets_mm"` // from the left end of the piece
}

type Result struct {
	Pieces          []Piece `json:"pieces"`
	TotalBrackets   int     `json:"total_brackets"`
	DistinctLengths int     `json:"distinct_lengths"`
}

// Optimise tiles the run greedily with the standard piece for the chosen
// centres and reserves any remainder as a final custom piece.
func Optimise(in Input) (Result, error) {
	if in.RunLengthMM <= 0 {
		return Result{}, fmt.Errorf("run length must be positive")
	}
	if in.BracketCentresMM <= 0 {
		return Result{}, fmt.Errorf("bracket centres must be positive")
	}

	std := standardPieceLengths[int(in.BracketCentresMM)]
	if std == 0 {
		// Unstocked centres: synthesise a standard length of five bays.
		std = 5 * in.BracketCentresMM
	}
	if in.MaxPieceLengthMM > 0 && std > in.MaxPieceLengthMM {
		// Keep the piece a whole number of bays under the cap.
		bays := math.Floor(in.MaxPieceLengthMM / in.BracketCentresMM)
		if bays < 1 {
			return Result{}, fmt.Errorf("max piece length %.0f below one bay of %.0f", in.MaxPieceLengthMM, in.BracketCentresMM)
		}
		std = bays * in.BracketCentresMM
	}

	var lengths []float64
	var standards []bool

	n := int(math.Floor(in.RunLengthMM / std))
	rem := in.RunLengthMM - float64(n)*std

	switch {
	case n == 0:
		lengths = []float64{in.RunLengthMM}
		standards = []bool{false}
	case rem == 0:
		for i := 0; i < n; i++ {
			lengths = append(lengths, std)
			standards = append(standards, true)
		}
	case rem < shortRemainderMM:
		// Re-split the last standard piece plus the stub into two equal
		// customs: one distinct length instead of two and no sliver.
		for i := 0; i < n-1; i++ {
			lengths = append(lengths, std)
			standards = append(standards, true)
		}
		half := (std + rem) / 2
		lengths = append(lengths, half, half)
		standards = append(standards, false, false)
	default:
		for i := 0; i < n; i++ {
			lengths = append(lengths, std)
			standards = append(standards, true)
		}
		lengths = append(lengths, rem)
		standards = append(standards, false)
	}

	res := Result{}
	distinct := map[float64]bool{}
	for i, l := range lengths {
		p := Piece{
			LengthMM:         l,
			Standard:         standards[i],
			BracketOffsetsMM: placeBrackets(l, in.BracketCentresMM),
		}
		res.Pieces = append(res.Pieces, p)
		res.TotalBrackets += len(p.BracketOffsetsMM)
		distinct[l] = true
	}
	res.DistinctLengths = len(distinct)
	return res, nil
}

// placeBrackets positions brackets symmetrically on a piece: ends at least
// 35 mm in, spacing never above the bracket centres, the end-to-bracket
// distance never above half the centres, and two brackets minimum on any
// piece over 150 mm.
func placeBrackets(lengthMM, centresMM float64) []float64 {
	k := int(math.Ceil(lengthMM / centresMM)) // guarantees end distance <= centres/2
	if k < 1 {
		k = 1
	}
	if lengthMM > MinMultiBracketPieceMM && k < 2 {
		k = 2
	}
	if k == 1 {
		return []float64{lengthMM / 2}
	}

	spacing := centresMM
	end := (lengthMM - float64(k-1)*centresMM) / 2
	if end < MinEndOffsetMM {
		// Short piece: keep the ends legal and compress the spacing.
		end = MinEndOffsetMM
		spacing = (lengthMM - 2*MinEndOffsetMM) / float64(k-1)
	}

	offsets := make([]float64, k)
	for i := range offsets {
		offsets[i] = end + float64(i)*spacing
	}
	return offsets
}
