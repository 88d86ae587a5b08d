package parameter

// Arena Dimensions
const (
	// ArenaWidth is the default logical grid width in cells
	ArenaWidth = 10

	// ArenaHeight is the default logical grid height in cells
	ArenaHeight = 10
)

// Snake Spawn
const (
	// SpawnHeadX is the default head spawn column
	SpawnHeadX = 3

	// SpawnHeadY is the default head spawn row
	SpawnHeadY = 3
)

// Render Sizes
// Logical square sizes in cell units; the renderer scales these to screen
// space. Body segments are drawn smaller than the head and food.
const (
	SizeHead    = 0.8
	SizeSegment = 0.65
	SizeFood    = 0.8
)
