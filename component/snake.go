package component

// SnakeHeadComponent marks the snake head entity and carries its current
// heading. Exactly one exists at all times after initialization.
type SnakeHeadComponent struct {
	Direction Direction
}

// SnakeSegmentComponent tags an entity (head or body) as part of the snake
// body chain. Chain order lives in the game state, not here.
type SnakeSegmentComponent struct{}
