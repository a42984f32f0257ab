package ui

// ActivateTriggerMsg runs a trigger's action (key shortcuts, SPC g f, ...).
type ActivateTriggerMsg struct {
	ID string
}

// ActivateFocusedMsg runs the action of the focused trigger (enter).
type ActivateFocusedMsg struct{}

// MoveFocusMsg rotates trigger focus (tab / shift+tab).
type MoveFocusMsg struct {
	Delta int
}

// CycleTabMsg selects the next or previous example tab (right / left).
type CycleTabMsg struct {
	Delta int
}

// ScrollEdgeMsg jumps to the top or bottom of the page (g / G).
type ScrollEdgeMsg struct {
	Bottom bool
}

// DismissOverlayMsg closes the topmost overlay.
type DismissOverlayMsg struct{}

// scrollFrameMsg advances one smooth-scroll animation frame. Frames from a
// superseded animation carry a stale generation and are dropped.
type scrollFrameMsg struct {
	gen int
}
