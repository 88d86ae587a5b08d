package component

// PositionComponent is a logical grid cell. Value type, compared by equality.
// Coordinates are arena-relative: 0 <= X < width, 0 <= Y < height, with Y
// growing upward as in the logical arena (the renderer flips for screen rows).
type PositionComponent struct {
	X int
	Y int
}
