// Package model holds the shared domain types of the bracket design engine:
// caller inputs, search candidates, derived geometry and evaluation results.
// All dimensions are millimetres, forces kN, stresses N/mm² unless the field
// name says otherwise.
package model

type BracketType string

const (
	BracketStandard BracketType = "standard"
	BracketInverted BracketType = "inverted"
)

type AngleOrientation string

const (
	AngleStandard AngleOrientation = "standard"
	AngleInverted AngleOrientation = "inverted"
)

// FixingType restricts the search to one fixing product family.
type FixingType string

const (
	FixingAny          FixingType = ""
	FixingChannel      FixingType = "channel"
	FixingPostFix      FixingType = "post-fix"
	FixingSteelSection FixingType = "steel-section"
)

// FixingPositionConfig controls the nested fixing-position sub-search.
// When Optimise is false only StartPositionMM is used.
type FixingPositionConfig struct {
	Optimise             bool    `json:"optimise"`
	StartPositionMM      float64 `json:"start_position_mm"`
	IncrementMM          float64 `json:"increment_mm"`
	MaxPositionMM        float64 `json:"max_position_mm"`
	MinBottomClearanceMM float64 `json:"min_bottom_clearance_mm"`
	MinBracketHeightMM   float64 `json:"min_bracket_height_mm"`
}

// DesignInputs is the immutable per-run problem statement. The engine assumes
// values have already passed form-level validation upstream.
type DesignInputs struct {
	SlabThicknessMM       float64               `json:"slab_thickness_mm"`
	CavityMM              float64               `json:"cavity_mm"`
	SupportLevelMM        float64               `json:"support_level_mm"` // signed offset from SSL, down is negative
	CharacteristicLoadKNM float64               `json:"characteristic_load_kn_m"`
	TopCriticalEdgeMM     float64               `json:"top_critical_edge_mm"`
	BottomCriticalEdgeMM  float64               `json:"bottom_critical_edge_mm"`
	NotchHeightMM         float64               `json:"notch_height_mm"`
	NotchDepthMM          float64               `json:"notch_depth_mm"`
	FacadeThicknessMM     float64               `json:"facade_thickness_mm"`
	ConcreteGradeMPa      float64               `json:"concrete_grade_mpa"`
	FixingRestriction     FixingType            `json:"fixing_restriction,omitempty"`
	MaxBracketExtensionMM float64               `json:"max_bracket_extension_mm,omitempty"` // exclusion-zone ceiling, 0 = unlimited
	FixingPosition        *FixingPositionConfig `json:"fixing_position,omitempty"`
}

// CandidateParameters is one point in the discrete search space.
type CandidateParameters struct {
	BracketCentresMM    float64          `json:"bracket_centres_mm"`
	BracketThicknessMM  float64          `json:"bracket_thickness_mm"`
	AngleThicknessMM    float64          `json:"angle_thickness_mm"`
	VerticalLegMM       float64          `json:"vertical_leg_mm"`
	HorizontalLegMM     float64          `json:"horizontal_leg_mm"`
	BoltDiameterMM      float64          `json:"bolt_diameter_mm"`
	BracketType         BracketType      `json:"bracket_type"`
	AngleOrientation    AngleOrientation `json:"angle_orientation"`
	ChannelType         string           `json:"channel_type,omitempty"`
	FixingPositionMM    float64          `json:"fixing_position_mm,omitempty"` // distance below top of slab
	DimDWidthMM         float64          `json:"dim_d_width_mm,omitempty"`     // inverted brackets only
	SteelBoltSize       string           `json:"steel_bolt_size,omitempty"`
	SteelFixingMethod   string           `json:"steel_fixing_method,omitempty"`
}

// DerivedGeometry is computed from CandidateParameters plus DesignInputs and
// never stored independently of them.
type DerivedGeometry struct {
	BracketHeightMM        float64 `json:"bracket_height_mm"`
	BracketProjectionMM    float64 `json:"bracket_projection_mm"`
	ProjectionAtFixingMM   float64 `json:"projection_at_fixing_mm"`
	RiseToBoltsMM          float64 `json:"rise_to_bolts_mm"`
	EccentricityMM         float64 `json:"eccentricity_mm"`
	DropBelowSlabMM        float64 `json:"drop_below_slab_mm"`
	NotchHeightMM          float64 `json:"notch_height_mm"`
	PlateWidthMM           float64 `json:"plate_width_mm"`
	BracketSectionModulus  float64 `json:"bracket_section_modulus_mm3"`
	AngleSectionModulus    float64 `json:"angle_section_modulus_mm3"`
	AppliedShearKN         float64 `json:"applied_shear_kn"`   // ULS, per bracket
	AppliedMomentKNM       float64 `json:"applied_moment_knm"` // ULS, per bracket
	AngleExtendedByMM      float64 `json:"angle_extended_by_mm,omitempty"`
}

// VerificationOutcome is the result of one structural check. Utilization is
// applied demand over resistance as a percentage; exactly 100 passes.
type VerificationOutcome struct {
	Name           string             `json:"name"`
	UtilizationPct float64            `json:"utilization_pct"`
	Pass           bool               `json:"pass"`
	Detail         map[string]float64 `json:"detail,omitempty"` // intermediate audit quantities
	Warnings       []string           `json:"warnings,omitempty"`
}

// CandidateEvaluation pairs a candidate with its geometry and the full
// verification record. Evaluations are never mutated after creation.
type CandidateEvaluation struct {
	Parameters    CandidateParameters   `json:"parameters"`
	Geometry      DerivedGeometry       `json:"geometry"`
	Checks        []VerificationOutcome `json:"checks"`
	WeightKGM     float64               `json:"weight_kg_m"` // mass per metre of run
	AllChecksPass bool                  `json:"all_checks_pass"`
	Index         int                   `json:"-"` // enumeration order, deterministic tie-break
}

type ResultStatus string

const (
	StatusSuccess  ResultStatus = "success"
	StatusNoDesign ResultStatus = "no-feasible-design"
)

// OptimizationResult is the engine output: the lightest feasible evaluation
// plus up to MaxAlternatives runner-ups ordered by weight.
type OptimizationResult struct {
	Status       ResultStatus          `json:"status"`
	Best         *CandidateEvaluation  `json:"best,omitempty"`
	Alternatives []CandidateEvaluation `json:"alternatives,omitempty"`
	Checked      int                   `json:"combinations_checked"`
	Total        int                   `json:"combinations_total"`
	Warnings     []string              `json:"warnings,omitempty"`
}

// Progress is the throttled side-channel update emitted while searching.
type Progress struct {
	Checked          int     `json:"checked"`
	Total            int     `json:"total"`
	BestWeightKGM    float64 `json:"best_weight_kg_m"` // 0 until a feasible candidate exists
	EstimatedSecLeft float64 `json:"estimated_sec_left"`
}
