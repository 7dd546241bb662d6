package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"drone-dispatch-service/internal/api/dto"
	"drone-dispatch-service/internal/platform/obs"
	"drone-dispatch-service/internal/ports"
	"drone-dispatch-service/internal/services"
)

type PlanHandler struct {
	Repo  ports.DispatchRepository
	Cache ports.PlanCache
}

// Plan runs the dispatch engine over the current orders and fleet and returns
// the selected plan. The search is exhaustive, so the handler leans on the
// plan cache for repeat requests against unchanged inputs.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	// An empty body means default options.
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq := services.PlanDispatchRequest{BypassCache: req.BypassCache}

	start := time.Now()
	plan, stats, err := services.PlanDispatch(r.Context(), svcReq, h.Repo, h.Cache)
	if err != nil {
		if errors.Is(err, services.ErrNoDrones) {
			obs.PlanRuns.WithLabelValues("failed").Inc()
			writeError(w, r, http.StatusUnprocessableEntity, "no available drones in the fleet")
			return
		}
		log.Printf("plan dispatch failed: %v", err)
		obs.PlanRuns.WithLabelValues("failed").Inc()
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if stats.CacheHit {
		obs.PlanRuns.WithLabelValues("cache_hit").Inc()
	} else {
		obs.PlanRuns.WithLabelValues("completed").Inc()
		obs.PlanDuration.Observe(time.Since(start).Seconds())
		obs.CandidateRoutes.Observe(float64(stats.Routes))
		obs.ValidAssignments.Observe(float64(stats.ValidAssignments))
	}

	res := dto.PlanResponse{
		PlanID:        plan.ID,
		CreatedAt:     plan.CreatedAt,
		Assignments:   make([]dto.AssignmentResponse, 0, len(plan.Entries)),
		TotalTime:     plan.TotalTime,
		TotalDistance: plan.TotalDistance,
		OrdersServed:  plan.OrdersServed,
		FullCoverage:  plan.FullCoverage,
		CacheHit:      stats.CacheHit,
	}
	for _, e := range plan.Entries {
		res.Assignments = append(res.Assignments, dto.AssignmentResponse{
			Drone:         e.DroneID,
			Orders:        e.OrderRefs,
			TotalDistance: e.RoundTripDistance,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
