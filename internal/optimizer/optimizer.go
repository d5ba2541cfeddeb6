// Package optimizer enumerates the discrete bracket/angle design space,
// evaluates every admissible candidate through the verification chain and
// keeps the lightest fully-compliant design plus ranked alternatives.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"Corbel/internal/calc/checks"
	"Corbel/internal/calc/extension"
	"Corbel/internal/calc/geometry"
	"Corbel/internal/capacity"
	"Corbel/internal/model"
)

// ErrTimedOut reports that the search was cancelled or ran out of time.
// Partial results are discarded, never returned.
var ErrTimedOut = errors.New("design search timed out")

// LargeSpaceThreshold triggers an advisory warning on the result when the
// enumerated space is big enough that callers should expect a wait.
const LargeSpaceThreshold = 50000

// DimDClearanceMM is the headroom required between the bracket height and
// the Dim D width of an inverted bracket.
const DimDClearanceMM = 40.0

// Config tunes one search run. The zero value is usable.
type Config struct {
	Domains          *Domains
	MaxCombinations  int           // hard cap on the enumerated space, 0 = unlimited
	Timeout          time.Duration // 0 = rely on the caller's context
	Alternatives     int           // runner-up list size, default 5
	Workers          int           // default GOMAXPROCS
	ProgressInterval time.Duration // default 500ms
	Progress         chan<- model.Progress
}

// Engine runs searches against one immutable capacity table.
type Engine struct {
	chain checks.Chain
	log   *zap.Logger
}

func New(table *capacity.Table, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{chain: checks.Chain{Table: table}, log: log}
}

// EvaluateCandidate runs the verification chain on one explicit candidate,
// without searching. Used by the verify endpoints.
func (e *Engine) EvaluateCandidate(in model.DesignInputs, p model.CandidateParameters) (model.CandidateEvaluation, error) {
	in = withDefaults(in)
	ev, err := e.chain.Evaluate(in, p)
	if err != nil {
		return model.CandidateEvaluation{}, err
	}
	ev.WeightKGM = Weight(ev.Parameters, ev.Geometry)
	return ev, nil
}

// Optimise enumerates the design space for the inputs and returns the
// lightest feasible candidate with alternatives. Infeasibility is a status
// on the result, not an error; cancellation and timeout return ErrTimedOut.
func (e *Engine) Optimise(ctx context.Context, in model.DesignInputs, cfg Config) (model.OptimizationResult, error) {
	in = withDefaults(in)
	if err := validate(in); err != nil {
		return model.OptimizationResult{}, err
	}

	domains := DefaultDomains()
	if cfg.Domains != nil {
		domains = *cfg.Domains
	}
	candidates, err := e.enumerate(in, domains)
	if err != nil {
		return model.OptimizationResult{}, err
	}
	total := len(candidates)
	if cfg.MaxCombinations > 0 && total > cfg.MaxCombinations {
		return model.OptimizationResult{}, fmt.Errorf("search space of %d combinations exceeds the configured cap of %d", total, cfg.MaxCombinations)
	}

	var warnings []string
	if total > LargeSpaceThreshold {
		w := fmt.Sprintf("large design space: %d combinations, this may take a while", total)
		warnings = append(warnings, w)
		e.log.Info("large design space", zap.Int("combinations", total))
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	alternatives := cfg.Alternatives
	if alternatives <= 0 {
		alternatives = 5
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		checked atomic.Int64
		state   = searchState{limit: alternatives + 1}
		started = time.Now()
	)

	// The reporter must be fully stopped before returning so callers may
	// close their progress channel immediately afterwards.
	progressDone := make(chan struct{})
	progressStopped := make(chan struct{})
	go func() {
		e.reportProgress(cfg, &checked, &state, total, started, progressDone)
		close(progressStopped)
	}()
	defer func() {
		close(progressDone)
		<-progressStopped
	}()

	grp, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		grp.Go(func() error {
			for i := w; i < total; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				ev, err := e.evaluate(in, candidates[i], domains)
				checked.Add(1)
				if err != nil {
					if errors.Is(err, extension.ErrManufacturingLimit) {
						continue // reject the candidate, keep searching
					}
					return err
				}
				if ev.AllChecksPass {
					ev.Index = i
					state.record(ev)
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return model.OptimizationResult{}, fmt.Errorf("%w after %d of %d combinations", ErrTimedOut, checked.Load(), total)
		}
		return model.OptimizationResult{}, err
	}

	best, alts := state.results()
	res := model.OptimizationResult{
		Status:   model.StatusSuccess,
		Best:     best,
		Checked:  int(checked.Load()),
		Total:    total,
		Warnings: warnings,
	}
	if best == nil {
		res.Status = model.StatusNoDesign
		return res, nil
	}
	if len(alts) > alternatives {
		alts = alts[:alternatives]
	}
	res.Alternatives = alts
	return res, nil
}

func withDefaults(in model.DesignInputs) model.DesignInputs {
	if in.ConcreteGradeMPa <= 0 {
		in.ConcreteGradeMPa = 30
	}
	return in
}

func validate(in model.DesignInputs) error {
	switch {
	case in.SlabThicknessMM <= 0:
		return fmt.Errorf("slab thickness must be positive")
	case in.CavityMM < 0:
		return fmt.Errorf("cavity must not be negative")
	case in.CharacteristicLoadKNM <= 0:
		return fmt.Errorf("characteristic load must be positive")
	case in.TopCriticalEdgeMM < 0 || in.BottomCriticalEdgeMM < 0:
		return fmt.Errorf("critical edge distances must not be negative")
	}
	if in.FixingPosition != nil && !in.FixingPosition.Optimise {
		if err := geometry.ValidateFixingPosition(in.FixingPosition.StartPositionMM, in.SlabThicknessMM, in.BottomCriticalEdgeMM); err != nil {
			return err
		}
	}
	if len(geometry.ValidAngleOrientations(in.SupportLevelMM)) == 0 {
		return fmt.Errorf("support level %.0f mm has no valid bracket/angle combination", in.SupportLevelMM)
	}
	return nil
}

// fixingOption is one choice of fixing product for a candidate: either a
// capacity-table channel or a steel-section bolt arrangement.
type fixingOption struct {
	channelType string
	boltSize    string
	method      string
}

func fixingOptions(in model.DesignInputs, table *capacity.Table, d Domains) []fixingOption {
	var opts []fixingOption
	switch in.FixingRestriction {
	case model.FixingSteelSection:
		for _, size := range d.SteelBoltSizes {
			for _, m := range d.SteelFixingMethods {
				opts = append(opts, fixingOption{boltSize: size, method: m})
			}
		}
	case model.FixingChannel, model.FixingPostFix, model.FixingAny:
		if table == nil {
			return nil
		}
		for _, ct := range table.ChannelTypes() {
			if in.FixingRestriction == model.FixingChannel && !isCastIn(ct) {
				continue
			}
			if in.FixingRestriction == model.FixingPostFix && isCastIn(ct) {
				continue
			}
			opts = append(opts, fixingOption{channelType: ct})
		}
	}
	return opts
}

// Cast-in channel product codes start with "C"; post-fix anchors with "R".
func isCastIn(channelType string) bool {
	return len(channelType) > 0 && channelType[0] == 'C'
}

// enumerate builds the full candidate list in deterministic order, pruned by
// bracket-type/angle-orientation admissibility.
func (e *Engine) enumerate(in model.DesignInputs, d Domains) ([]model.CandidateParameters, error) {
	bt := geometry.ClassifyBracketType(in.SupportLevelMM)
	orientations := geometry.ValidAngleOrientations(in.SupportLevelMM)
	hl := geometry.HorizontalLeg(in.FacadeThicknessMM)

	fixings := fixingOptions(in, e.chain.Table, d)
	if len(fixings) == 0 {
		return nil, fmt.Errorf("no fixing products available for restriction %q", in.FixingRestriction)
	}

	var out []model.CandidateParameters
	for _, centres := range d.BracketCentresMM {
		for _, bth := range d.BracketThicknessMM {
			for _, ath := range d.AngleThicknessMM {
				for _, vleg := range d.VerticalLegMM {
					for _, bolt := range d.BoltDiameterMM {
						for _, ao := range orientations {
							if !geometry.Admissible(bt, ao, in.SupportLevelMM) {
								continue
							}
							for _, fx := range fixings {
								out = append(out, model.CandidateParameters{
									BracketCentresMM:   centres,
									BracketThicknessMM: bth,
									AngleThicknessMM:   ath,
									VerticalLegMM:      vleg,
									HorizontalLegMM:    hl,
									BoltDiameterMM:     bolt,
									BracketType:        bt,
									AngleOrientation:   ao,
									ChannelType:        fx.channelType,
									SteelBoltSize:      fx.boltSize,
									SteelFixingMethod:  fx.method,
								})
							}
						}
					}
				}
			}
		}
	}
	return out, nil
}

// evaluate runs the nested sub-searches and the verification chain for one
// tuple. The fixing-position sub-search never fails; the Dim D sub-search
// settles on the lightest admissible width.
func (e *Engine) evaluate(in model.DesignInputs, p model.CandidateParameters, d Domains) (model.CandidateEvaluation, error) {
	if in.FixingPosition != nil {
		p.FixingPositionMM = geometry.OptimalFixingPosition(*in.FixingPosition, in, p)
	}
	if p.BracketType == model.BracketInverted {
		return e.evaluateDimD(in, p, d)
	}
	return e.EvaluateCandidate(in, p)
}

// evaluateDimD walks the inverted-bracket width range from the narrowest
// (lightest) up, requiring bracketHeight >= DimD + clearance, and returns
// the first fully passing width. When no width is admissible the candidate
// is evaluated without one; when none passes, the narrowest admissible
// evaluation is reported so its failures stay auditable.
func (e *Engine) evaluateDimD(in model.DesignInputs, p model.CandidateParameters, d Domains) (model.CandidateEvaluation, error) {
	var first *model.CandidateEvaluation
	for dim := d.DimDMinMM; dim <= d.DimDMaxMM; dim += d.DimDStepMM {
		trial := p
		trial.DimDWidthMM = dim
		if geometry.BracketHeight(in, trial) < dim+DimDClearanceMM {
			break // taller widths only get worse
		}
		ev, err := e.EvaluateCandidate(in, trial)
		if err != nil {
			return model.CandidateEvaluation{}, err
		}
		if ev.AllChecksPass {
			return ev, nil
		}
		if first == nil {
			first = &ev
		}
	}
	if first != nil {
		return *first, nil
	}
	return e.EvaluateCandidate(in, p)
}

// searchState is the only mutable state shared between workers: a bounded
// list of the best feasible evaluations ordered by (weight, index).
type searchState struct {
	mu    sync.Mutex
	limit int
	top   []model.CandidateEvaluation
}

func better(a, b model.CandidateEvaluation) bool {
	if a.WeightKGM != b.WeightKGM {
		return a.WeightKGM < b.WeightKGM
	}
	return a.Index < b.Index // enumeration order breaks ties deterministically
}

func (s *searchState) record(ev model.CandidateEvaluation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := len(s.top)
	for i, cur := range s.top {
		if better(ev, cur) {
			pos = i
			break
		}
	}
	if pos >= s.limit {
		return
	}
	s.top = append(s.top, model.CandidateEvaluation{})
	copy(s.top[pos+1:], s.top[pos:])
	s.top[pos] = ev
	if len(s.top) > s.limit {
		s.top = s.top[:s.limit]
	}
}

func (s *searchState) results() (*model.CandidateEvaluation, []model.CandidateEvaluation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.top) == 0 {
		return nil, nil
	}
	best := s.top[0]
	alts := make([]model.CandidateEvaluation, len(s.top)-1)
	copy(alts, s.top[1:])
	return &best, alts
}

func (s *searchState) bestWeight() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.top) == 0 {
		return 0
	}
	return s.top[0].WeightKGM
}

// reportProgress emits throttled updates on the side channel. Sends never
// block; a slow or absent consumer cannot affect the search.
func (e *Engine) reportProgress(cfg Config, checked *atomic.Int64, state *searchState, total int, started time.Time, done <-chan struct{}) {
	if cfg.Progress == nil {
		return
	}
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			n := checked.Load()
			eta := 0.0
			if n > 0 {
				perItem := time.Since(started).Seconds() / float64(n)
				eta = perItem * float64(int64(total)-n)
			}
			p := model.Progress{
				Checked:          int(n),
				Total:            total,
				BestWeightKGM:    state.bestWeight(),
				EstimatedSecLeft: eta,
			}
			select {
			case cfg.Progress <- p:
			default:
			}
		}
	}
}
