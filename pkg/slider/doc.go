// Package slider implements the range filter controls: the single-value and
// dual-handle sliders and the named wrapper that adds a missing-values
// checkbox and a reset action.
//
// A controller keeps a draft of the committed value. Drag ticks only touch
// the draft; a commit writes the committed cell once; external changes to the
// cell overwrite the draft whenever the contents differ. Nothing here draws:
// front ends call the transition methods from their event loop and render
// View snapshots. Controls whose bounds are undetermined report Hidden and
// otherwise behave as a silent no-op.
package slider
