package game

// DebugState holds the debug overlay flags
type DebugState struct {
	ShowHitBox bool // Outline the axis-aligned hit box next to the rotated target
}
