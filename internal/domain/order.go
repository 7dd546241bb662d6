package domain

// OrderID is the internal sequential identifier assigned to an order at load
// time (1-based, in input order). It is the join key used throughout the
// planning pipeline; the external identifier lives in Ref.
type OrderID int

// Represents a single delivery order handled by the planner.
// Coordinates are relative to the shared depot at the origin, the deadline is
// a time budget in the same units as distance divided by speed, and the weight
// is the package weight counted against a drone's payload. Immutable once
// loaded.
type Order struct {
	ID       OrderID
	Ref      string
	X        float64
	Y        float64
	Deadline float64
	Weight   float64
}

// Point returns the order's delivery coordinates.
func (o *Order) Point() Point {
	return Point{X: o.X, Y: o.Y}
}
