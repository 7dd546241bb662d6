package dto

type OrderResponse struct {
	ID            string  `json:"id"`
	DeliveryX     float64 `json:"delivery_x"`
	DeliveryY     float64 `json:"delivery_y"`
	Deadline      float64 `json:"deadline"`
	PackageWeight float64 `json:"package_weight"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type DroneResponse struct {
	ID          string  `json:"id"`
	MaxPayload  float64 `json:"max_payload"`
	MaxDistance float64 `json:"max_distance"`
	Speed       float64 `json:"speed"`
	Available   bool    `json:"available"`
}

type ListDronesResponse struct {
	Drones []DroneResponse `json:"drones"`
}
