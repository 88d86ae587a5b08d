package component

// FoodComponent tags an entity as food. The spawner places at most one per
// spawn tick but never clears earlier uneaten food, so several may coexist.
type FoodComponent struct{}
