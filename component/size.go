package component

// SizeComponent is the logical render size of an entity in cell units.
// The renderer converts it into a screen-space footprint; the simulation
// never reads it.
type SizeComponent struct {
	Width  float64
	Height float64
}

// Square returns a size with equal width and height.
func Square(size float64) SizeComponent {
	return SizeComponent{Width: size, Height: size}
}
