package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation runs in a fixed virtual-pixel viewport; screen dimensions
// only matter to the renderer, which scales the viewport to terminal cells.
type RuntimeConfig struct {
	ScreenW      int   // Terminal width in characters
	ScreenH      int   // Terminal height in characters
	TickRate     int   // Simulation ticks per second during play (default 60)
	MenuTickRate int   // Tick rate on menu/paused/crashed screens (default 15)
	Seed         int64 // RNG seed for deterministic gameplay; 0 = time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		MenuTickRate: 15,
		Seed:         0,
	}
}
