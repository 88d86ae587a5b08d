package core

// Entity is a unique identifier for a world entity.
// IDs are monotonic, allocated by the world, and never reused within a process.
// 0 is reserved as "no entity".
type Entity uint64
