// internal/interfaces/game_context.go
package interfaces

import "context"

// RoundContext is what entity systems need from the round controller. It lets
// GhostSystem run under the round's cancellation without importing RoundSystem.
type RoundContext interface {
	// Context is cancelled when the round ends or is reset.
	Context() context.Context
	Running() bool
}
