package domain

// Represents a delivery drone in the fleet.
// MaxPayload caps the summed package weight of a single trip, MaxDistance caps
// the round-trip travel distance, and Speed converts distance to elapsed time.
// Drones marked unavailable are filtered out before planning and never reach
// the engine.
type Drone struct {
	ID          string
	MaxPayload  float64
	MaxDistance float64
	Speed       float64
	Available   bool
}

// CanLift reports whether the drone's payload capacity covers the given
// total weight.
func (d *Drone) CanLift(weight float64) bool {
	return weight <= d.MaxPayload
}

// CanTravel reports whether the drone's range covers the given round-trip
// distance.
func (d *Drone) CanTravel(distance float64) bool {
	return distance <= d.MaxDistance
}
