package event

// EventType represents the type of game event
type EventType int

const (
	// EventGrowth signals that the snake ate food this movement tick
	// Trigger: EatingSystem on head/food position match (one per food eaten)
	// Consumer: GrowthSystem | Payload: nil
	// Lifetime: single tick; handlers only test that at least one arrived
	EventGrowth EventType = iota

	// EventGameOver signals a self-collision this movement tick
	// Trigger: MovementSystem when the new head position matches any
	// pre-move chain position
	// Consumer: GameOverSystem | Payload: nil
	// Lifetime: single tick
	EventGameOver

	// EventSoundRequest requests audio playback
	// Trigger: EatingSystem, GameOverSystem
	// Consumer: AudioSystem | Payload: core.SoundType
	EventSoundRequest
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventGrowth:
		return "Growth"
	case EventGameOver:
		return "GameOver"
	case EventSoundRequest:
		return "SoundRequest"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
}
