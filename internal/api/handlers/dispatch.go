package handlers

import (
	"log"
	"net/http"

	"drone-dispatch-service/internal/api/dto"
	"drone-dispatch-service/internal/ports"
)

// DispatchHandler exposes read-only views of the planning inputs: the orders
// awaiting assignment and the available drone fleet.
type DispatchHandler struct {
	Repo ports.DispatchRepository
}

func (h *DispatchHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	orders, err := h.Repo.ListOrders(r.Context())
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderResponse{
			ID:            o.Ref,
			DeliveryX:     o.X,
			DeliveryY:     o.Y,
			Deadline:      o.Deadline,
			PackageWeight: o.Weight,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *DispatchHandler) ListDrones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	drones, err := h.Repo.ListDrones(r.Context())
	if err != nil {
		log.Printf("list drones failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDronesResponse{
		Drones: make([]dto.DroneResponse, 0, len(drones)),
	}
	for _, d := range drones {
		res.Drones = append(res.Drones, dto.DroneResponse{
			ID:          d.ID,
			MaxPayload:  d.MaxPayload,
			MaxDistance: d.MaxDistance,
			Speed:       d.Speed,
			Available:   d.Available,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
