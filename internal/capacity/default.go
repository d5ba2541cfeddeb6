package capacity

import "go.uber.org/zap"

// DefaultTable returns the built-in capacity table compiled from the
// published CPRO and R-series channel datasheets. It is used when no
// workbook is configured and as the reference fixture in tests.
func DefaultTable(log *zap.Logger) *Table {
	return New(defaultSpecs, log)
}

var defaultSpecs = []ChannelSpec{
	// CPRO38 cast-in channel
	{ChannelType: "CPRO38", SlabThicknessMM: 150, BracketCentresMM: 200, TopEdgeMM: 75, BottomEdgeMM: 75, MaxTensionKN: 8.10, MaxShearKN: 7.90},
	{ChannelType: "CPRO38", SlabThicknessMM: 150, BracketCentresMM: 250, TopEdgeMM: 75, BottomEdgeMM: 75, MaxTensionKN: 8.45, MaxShearKN: 8.20},
	{ChannelType: "CPRO38", SlabThicknessMM: 150, BracketCentresMM: 300, TopEdgeMM: 75, BottomEdgeMM: 75, MaxTensionKN: 8.80, MaxShearKN: 8.55},
	{ChannelType: "CPRO38", SlabThicknessMM: 150, BracketCentresMM: 400, TopEdgeMM: 75, BottomEdgeMM: 75, MaxTensionKN: 9.20, MaxShearKN: 8.90},
	{ChannelType: "CPRO38", SlabThicknessMM: 150, BracketCentresMM: 500, TopEdgeMM: 75, BottomEdgeMM: 75, MaxTensionKN: 9.45, MaxShearKN: 9.10},
	{ChannelType: "CPRO38", SlabThicknessMM: 150, BracketCentresMM: 600, TopEdgeMM: 75, BottomEdgeMM: 75, MaxTensionKN: 9.60, MaxShearKN: 9.25},
	{ChannelType: "CPRO38", SlabThicknessMM: 200, BracketCentresMM: 200, TopEdgeMM: 75, BottomEdgeMM: 100, MaxTensionKN: 10.20, MaxShearKN: 9.80},
	{ChannelType: "CPRO38", SlabThicknessMM: 200, BracketCentresMM: 250, TopEdgeMM: 75, BottomEdgeMM: 100, MaxTensionKN: 10.50, MaxShearKN: 10.10},
	{ChannelType: "CPRO38", SlabThicknessMM: 200, BracketCentresMM: 300, TopEdgeMM: 75, BottomEdgeMM: 100, MaxTensionKN: 10.75, MaxShearKN: 10.35},
	{ChannelType: "CPRO38", SlabThicknessMM: 200, BracketCentresMM: 350, TopEdgeMM: 75, BottomEdgeMM: 100, MaxTensionKN: 10.95, MaxShearKN: 10.55},
	{ChannelType: "CPRO38", SlabThicknessMM: 200, BracketCentresMM: 400, TopEdgeMM: 75, BottomEdgeMM: 100, MaxTensionKN: 11.10, MaxShearKN: 10.70},
	{ChannelType: "CPRO38", SlabThicknessMM: 200, BracketCentresMM: 450, TopEdgeMM: 75, BottomEdgeMM: 100, MaxTensionKN: 11.25, MaxShearKN: 10.85},
	{ChannelType: "CPRO38", SlabThicknessMM: 200, BracketCentresMM: 500, TopEdgeMM: 75, BottomEdgeMM: 100, MaxTensionKN: 11.40, MaxShearKN: 11.00},
	{ChannelType: "CPRO38", SlabThicknessMM: 200, BracketCentresMM: 600, TopEdgeMM: 75, BottomEdgeMM: 100, MaxTensionKN: 11.55, MaxShearKN: 11.15},
	{ChannelType: "CPRO38", SlabThicknessMM: 250, BracketCentresMM: 200, TopEdgeMM: 75, BottomEdgeMM: 125, MaxTensionKN: 11.80, MaxShearKN: 11.30},
	{ChannelType: "CPRO38", SlabThicknessMM: 250, BracketCentresMM: 300, TopEdgeMM: 75, BottomEdgeMM: 125, MaxTensionKN: 12.30, MaxShearKN: 11.85},
	{ChannelType: "CPRO38", SlabThicknessMM: 250, BracketCentresMM: 400, TopEdgeMM: 75, BottomEdgeMM: 125, MaxTensionKN: 12.70, MaxShearKN: 12.25},
	{ChannelType: "CPRO38", SlabThicknessMM: 250, BracketCentresMM: 500, TopEdgeMM: 75, BottomEdgeMM: 125, MaxTensionKN: 13.00, MaxShearKN: 12.55},
	{ChannelType: "CPRO38", SlabThicknessMM: 250, BracketCentresMM: 600, TopEdgeMM: 75, BottomEdgeMM: 125, MaxTensionKN: 13.20, MaxShearKN: 12.75},

	// CPRO50 cast-in channel
	{ChannelType: "CPRO50", SlabThicknessMM: 200, BracketCentresMM: 200, TopEdgeMM: 100, BottomEdgeMM: 100, MaxTensionKN: 14.10, MaxShearKN: 13.40},
	{ChannelType: "CPRO50", SlabThicknessMM: 200, BracketCentresMM: 300, TopEdgeMM: 100, BottomEdgeMM: 100, MaxTensionKN: 14.80, MaxShearKN: 14.05},
	{ChannelType: "CPRO50", SlabThicknessMM: 200, BracketCentresMM: 400, TopEdgeMM: 100, BottomEdgeMM: 100, MaxTensionKN: 15.30, MaxShearKN: 14.55},
	{ChannelType: "CPRO50", SlabThicknessMM: 200, BracketCentresMM: 500, TopEdgeMM: 100, BottomEdgeMM: 100, MaxTensionKN: 15.70, MaxShearKN: 14.90},
	{ChannelType: "CPRO50", SlabThicknessMM: 200, BracketCentresMM: 600, TopEdgeMM: 100, BottomEdgeMM: 100, MaxTensionKN: 16.00, MaxShearKN: 15.20},
	{ChannelType: "CPRO50", SlabThicknessMM: 250, BracketCentresMM: 200, TopEdgeMM: 100, BottomEdgeMM: 125, MaxTensionKN: 16.40, MaxShearKN: 15.60},
	{ChannelType: "CPRO50", SlabThicknessMM: 250, BracketCentresMM: 300, TopEdgeMM: 100, BottomEdgeMM: 125, MaxTensionKN: 17.10, MaxShearKN: 16.30},
	{ChannelType: "CPRO50", SlabThicknessMM: 250, BracketCentresMM: 400, TopEdgeMM: 100, BottomEdgeMM: 125, MaxTensionKN: 17.60, MaxShearKN: 16.80},
	{ChannelType: "CPRO50", SlabThicknessMM: 250, BracketCentresMM: 500, TopEdgeMM: 100, BottomEdgeMM: 125, MaxTensionKN: 18.00, MaxShearKN: 17.15},
	{ChannelType: "CPRO50", SlabThicknessMM: 250, BracketCentresMM: 600, TopEdgeMM: 100, BottomEdgeMM: 125, MaxTensionKN: 18.30, MaxShearKN: 17.45},

	// R28 post-fix anchor, utilization factor per the cracked-concrete note
	{ChannelType: "R28", SlabThicknessMM: 150, BracketCentresMM: 200, TopEdgeMM: 90, BottomEdgeMM: 90, MaxTensionKN: 6.40, MaxShearKN: 7.10, UtilizationFactor: 0.85},
	{ChannelType: "R28", SlabThicknessMM: 150, BracketCentresMM: 300, TopEdgeMM: 90, BottomEdgeMM: 90, MaxTensionKN: 6.90, MaxShearKN: 7.60, UtilizationFactor: 0.85},
	{ChannelType: "R28", SlabThicknessMM: 150, BracketCentresMM: 400, TopEdgeMM: 90, BottomEdgeMM: 90, MaxTensionKN: 7.25, MaxShearKN: 7.95, UtilizationFactor: 0.85},
	{ChannelType: "R28", SlabThicknessMM: 150, BracketCentresMM: 500, TopEdgeMM: 90, BottomEdgeMM: 90, MaxTensionKN: 7.50, MaxShearKN: 8.20, UtilizationFactor: 0.85},
	{ChannelType: "R28", SlabThicknessMM: 150, BracketCentresMM: 600, TopEdgeMM: 90, BottomEdgeMM: 90, MaxTensionKN: 7.70, MaxShearKN: 8.40, UtilizationFactor: 0.85},
	{ChannelType: "R28", SlabThicknessMM: 200, BracketCentresMM: 200, TopEdgeMM: 90, BottomEdgeMM: 110, MaxTensionKN: 8.20, MaxShearKN: 8.90, UtilizationFactor: 0.85},
	{ChannelType: "R28", SlabThicknessMM: 200, BracketCentresMM: 300, TopEdgeMM: 90, BottomEdgeMM: 110, MaxTensionKN: 8.70, MaxShearKN: 9.40, UtilizationFactor: 0.85},
	{ChannelType: "R28", SlabThicknessMM: 200, BracketCentresMM: 400, TopEdgeMM: 90, BottomEdgeMM: 110, MaxTensionKN: 9.05, MaxShearKN: 9.75, UtilizationFactor: 0.85},
	{ChannelType: "R28", SlabThicknessMM: 200, BracketCentresMM: 500, TopEdgeMM: 90, BottomEdgeMM: 110, MaxTensionKN: 9.30, MaxShearKN: 10.00, UtilizationFactor: 0.85},
	{ChannelType: "R28", SlabThicknessMM: 200, BracketCentresMM: 600, TopEdgeMM: 90, BottomEdgeMM: 110, MaxTensionKN: 9.50, MaxShearKN: 10.20, UtilizationFactor: 0.85},
}
