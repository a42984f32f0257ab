// Package ui renders the Ligon landing page as a Bubble Tea program.
//
// Core pieces:
//   - Page: the composition root. Owns one nav.Controller and one tabs.Store,
//     lays sections out into a viewport and registers their regions.
//   - Trigger: a focusable element whose action is a plain function call
//     (navigate to a section, select a tab, show a link).
//   - FocusManager: tab order across triggers.
//   - KeybindRegistry / KeyHandler: single keys plus SPC-prefixed sequences.
//   - smoothScroller: animates viewport offsets and retargets mid-flight.
//   - OverlayStack: dismissable popups drawn over the page.
package ui
