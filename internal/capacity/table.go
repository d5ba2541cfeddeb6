// Package capacity holds the fixing-channel capacity table: allowable
// tension/shear forces and edge distances per (channel type, slab thickness,
// bracket centres), loaded once from a sparse tabular source and read-only
// afterwards.
package capacity

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// ChannelSpec is one tabulated capacity record.
type ChannelSpec struct {
	ChannelType       string  `json:"channel_type"`
	SlabThicknessMM   int     `json:"slab_thickness_mm"`
	BracketCentresMM  int     `json:"bracket_centres_mm"`
	TopEdgeMM         float64 `json:"top_edge_mm"`
	BottomEdgeMM      float64 `json:"bottom_edge_mm"`
	MaxTensionKN      float64 `json:"max_tension_kn"`
	MaxShearKN        float64 `json:"max_shear_kn"`
	UtilizationFactor float64 `json:"utilization_factor"` // capacity scaling, 1.0 when the source leaves it blank
}

type key struct {
	channel string
	slab    int
	centres int
}

// Table is an immutable capacity lookup. Construct with New or the loader;
// safe for concurrent readers.
type Table struct {
	specs map[key]ChannelSpec
	log   *zap.Logger
}

// Lookup resolves a ChannelSpec for the requested slab thickness. When no
// exact row exists it falls back, among rows sharing channel type and
// centres, to the thickest slab not exceeding the requested one; failing
// that it degrades to the thinnest available row. Degraded is reported so
// callers can flag the non-conservative approximation.
type Lookup struct {
	Spec            ChannelSpec
	Degraded        bool
	UsedSlabMM      int
	RequestedSlabMM int
}

func New(specs []ChannelSpec, log *zap.Logger) *Table {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Table{specs: make(map[key]ChannelSpec, len(specs)), log: log}
	for _, s := range specs {
		if s.UtilizationFactor <= 0 {
			s.UtilizationFactor = 1.0
		}
		t.specs[key{s.ChannelType, s.SlabThicknessMM, s.BracketCentresMM}] = s
	}
	return t
}

// ChannelTypes returns the distinct channel types in the table, sorted.
func (t *Table) ChannelTypes() []string {
	seen := map[string]bool{}
	for k := range t.specs {
		seen[k.channel] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (t *Table) Len() int { return len(t.specs) }

// Find resolves the capacity row for a channel at the given slab thickness
// and bracket centres, applying the slab fallback rules.
func (t *Table) Find(channelType string, slabMM, centresMM int) (Lookup, error) {
	if s, ok := t.specs[key{channelType, slabMM, centresMM}]; ok {
		return Lookup{Spec: s, UsedSlabMM: slabMM, RequestedSlabMM: slabMM}, nil
	}

	// Collect candidate slab thicknesses for this channel/centres pair.
	var slabs []int
	for k := range t.specs {
		if k.channel == channelType && k.centres == centresMM {
			slabs = append(slabs, k.slab)
		}
	}
	if len(slabs) == 0 {
		return Lookup{}, fmt.Errorf("no capacity entry for channel %q at %d mm centres", channelType, centresMM)
	}
	sort.Ints(slabs)

	// Thickest row not exceeding the requested slab.
	best := -1
	for _, s := range slabs {
		if s <= slabMM {
			best = s
		}
	}
	if best >= 0 {
		return Lookup{
			Spec:            t.specs[key{channelType, best, centresMM}],
			UsedSlabMM:      best,
			RequestedSlabMM: slabMM,
		}, nil
	}

	// Degraded fallback: thinnest available row. Non-conservative, keep loud.
	thinnest := slabs[0]
	t.log.Warn("capacity lookup degraded to thinnest slab row",
		zap.String("channel", channelType),
		zap.Int("requested_slab_mm", slabMM),
		zap.Int("used_slab_mm", thinnest),
		zap.Int("centres_mm", centresMM))
	return Lookup{
		Spec:            t.specs[key{channelType, thinnest, centresMM}],
		Degraded:        true,
		UsedSlabMM:      thinnest,
		RequestedSlabMM: slabMM,
	}, nil
}
