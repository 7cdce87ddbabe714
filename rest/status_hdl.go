package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/Gthulhu/kanagawa/domain"
)

// DomainResult is one domain's outcome in the last tick
type DomainResult struct {
	Domain        string `json:"domain"`
	Skipped       bool   `json:"skipped"`
	SkipReason    string `json:"skip_reason,omitempty"`
	MinFreq       uint64 `json:"min_freq_khz,omitempty"`
	MaxFreq       uint64 `json:"max_freq_khz,omitempty"`
	WriteFailures int    `json:"write_failures,omitempty"`
}

// StatusResponse is the response of GET /api/v1/status
type StatusResponse struct {
	Ticked      bool           `json:"ticked"`
	At          string         `json:"at,omitempty"`
	Utilization float64        `json:"utilization_percent"`
	Profile     string         `json:"profile,omitempty"`
	Applied     bool           `json:"applied"`
	Domains     []DomainResult `json:"domains,omitempty"`
}

// DomainState is the live view of one scaling domain
type DomainState struct {
	Domain       string   `json:"domain"`
	Path         string   `json:"path"`
	Governor     string   `json:"governor,omitempty"`
	AffectedCPUs string   `json:"affected_cpus,omitempty"`
	Frequencies  []uint64 `json:"available_frequencies_khz"`
	FallbackMax  uint64   `json:"cpuinfo_max_freq_khz,omitempty"`
	ScalingMin   uint64   `json:"scaling_min_freq_khz"`
	ScalingMax   uint64   `json:"scaling_max_freq_khz"`
	CurrentFreq  uint64   `json:"scaling_cur_freq_khz"`
	HighLoadMin  uint64   `json:"high_load_min_khz"`
	HighLoadMax  uint64   `json:"high_load_max_khz"`
	LowLoadMin   uint64   `json:"low_load_min_khz"`
	LowLoadMax   uint64   `json:"low_load_max_khz"`
}

type DomainsResponse struct {
	Domains []DomainState `json:"domains"`
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tick, ok := h.Svc.LastTick()
	resp := StatusResponse{Ticked: ok}
	if ok {
		resp.At = tick.At.UTC().Format(time.RFC3339)
		resp.Utilization = tick.Utilization
		resp.Profile = tick.Profile.String()
		resp.Applied = tick.Applied
		for _, d := range tick.Report.Domains {
			resp.Domains = append(resp.Domains, DomainResult{
				Domain:        d.Domain.ID,
				Skipped:       d.Skipped,
				SkipReason:    d.SkipReason,
				MinFreq:       d.MinFreq,
				MaxFreq:       d.MaxFreq,
				WriteFailures: d.WriteFailures,
			})
		}
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	states, err := h.Svc.DomainStates(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoDomains) {
			h.ErrorResponse(ctx, w, http.StatusNotFound, "No scaling domains found", err)
			return
		}
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Failed to inspect scaling domains", err)
		return
	}
	id := r.URL.Query().Get(domainQueryParam)
	resp := DomainsResponse{Domains: make([]DomainState, 0, len(states))}
	for _, s := range states {
		if id != "" && s.Domain.ID != id {
			continue
		}
		resp.Domains = append(resp.Domains, convertDomainState(s))
	}
	if id != "" && len(resp.Domains) == 0 {
		h.ErrorResponse(ctx, w, http.StatusNotFound, "Scaling domain not found", nil)
		return
	}
	h.JSONResponse(ctx, w, http.StatusOK, NewSuccessResponse(&resp))
}

func convertDomainState(s domain.DomainState) DomainState {
	freqs := make([]uint64, 0, len(s.Table))
	freqs = append(freqs, s.Table...)
	return DomainState{
		Domain:       s.Domain.ID,
		Path:         s.Domain.Path,
		Governor:     s.Governor,
		AffectedCPUs: s.AffectedCPUs,
		Frequencies:  freqs,
		FallbackMax:  s.FallbackMax,
		ScalingMin:   s.ScalingMin,
		ScalingMax:   s.ScalingMax,
		CurrentFreq:  s.CurrentFreq,
		HighLoadMin:  s.HighLoadMin,
		HighLoadMax:  s.AbsoluteMax,
		LowLoadMin:   s.AbsoluteMin,
		LowLoadMax:   s.LowLoadMax,
	}
}
