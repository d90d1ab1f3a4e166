package types

// EntityID identifies an entity inside one session's ECS. IDs start at 1 and are never reused.
type EntityID uint64
