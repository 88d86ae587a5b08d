package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food collected blip
	SoundGameOver                  // Descending reset tone
	SoundTypeCount
)
