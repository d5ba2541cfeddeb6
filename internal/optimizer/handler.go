package optimizer

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"Corbel/internal/model"
)

// Handler exposes the design engine over HTTP.
type Handler struct {
	Engine *Engine
}

type optimiseRequest struct {
	Inputs          model.DesignInputs `json:"inputs"`
	TimeoutSec      float64            `json:"timeout_sec,omitempty"`
	MaxCombinations int                `json:"max_combinations,omitempty"`
	Alternatives    int                `json:"alternatives,omitempty"`
}

func (h *Handler) Optimise(w http.ResponseWriter, r *http.Request) {
	var req optimiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	cfg := Config{
		MaxCombinations: req.MaxCombinations,
		Alternatives:    req.Alternatives,
	}
	if req.TimeoutSec > 0 {
		cfg.Timeout = time.Duration(req.TimeoutSec * float64(time.Second))
	}
	res, err := h.Engine.Optimise(r.Context(), req.Inputs, cfg)
	if err != nil {
		if errors.Is(err, ErrTimedOut) {
			http.Error(w, err.Error(), http.StatusGatewayTimeout)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type verifyRequest struct {
	Inputs    model.DesignInputs        `json:"inputs"`
	Candidate model.CandidateParameters `json:"candidate"`
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	ev, err := h.Engine.EvaluateCandidate(req.Inputs, req.Candidate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ev)
}

type verifyBatchRequest struct {
	Inputs     model.DesignInputs          `json:"inputs"`
	Candidates []model.CandidateParameters `json:"candidates"`
}

type verifyBatchResult struct {
	Count   int                         `json:"count"`
	Results []model.CandidateEvaluation `json:"results"`
}

// VerifyBatch evaluates a list of explicit candidates in one call.
// Candidates the chain rejects outright (manufacturing limits) are skipped.
func (h *Handler) VerifyBatch(w http.ResponseWriter, r *http.Request) {
	var req verifyBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(req.Candidates) == 0 {
		http.Error(w, "No candidates supplied", http.StatusBadRequest)
		return
	}
	out := verifyBatchResult{Results: make([]model.CandidateEvaluation, 0, len(req.Candidates))}
	for _, c := range req.Candidates {
		ev, err := h.Engine.EvaluateCandidate(req.Inputs, c)
		if err != nil {
			continue
		}
		out.Results = append(out.Results, ev)
	}
	out.Count = len(out.Results)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
