/*
Package debugmenu provides an in-game debug menu: a tree of folders and
value leaves that is navigated with a keyboard or gamepad, filtered by
typing, and drawn every frame through a small render adapter.

# Overview

All items live in a fixed-size arena allocated by New. Creating, editing,
filtering and drawing items does not allocate afterwards, except when a
leaf is created with more values than its slot held before. Items are
addressed by generation-checked Handles: a Handle to a removed item fails
with ErrStaleHandle instead of pointing at reused memory.

Leaves are created by path. Missing folders along the path are created, and
creating a leaf at an existing path replaces its values while keeping the
selection if the selected title still exists.

# Quick Start

	menu, err := debugmenu.New(
	    debugmenu.WithScreenSize(debugmenu.Vec2{X: 1280, Y: 720}),
	    debugmenu.WithMenuSizeItem(true),
	)
	if err != nil {
	    return err
	}

	var godMode bool
	menu.MustCreateBoolItem(debugmenu.Handle{}, "Cheats/God Mode", "Ignore all damage.", &godMode)

	speeds := []float32{0.5, 1, 2, 4}
	speed := float32(1)
	menu.MustCreateArrayItem(debugmenu.Handle{}, "World/Time Scale", "",
	    []string{"0.5x", "1x", "2x", "4x"}, debugmenu.ArrayValues(speeds, &speed))

	// Game loop
	for !window.ShouldClose() {
	    input := pollInput(window) // *debugmenu.InputState
	    menu.HandleInput(input)
	    menu.Update(dt)

	    dl := debugmenu.AcquireDrawList()
	    menu.Draw(debugmenu.NewDrawListRenderer(dl, renderer.FontTextureID()))
	    renderer.Render(dl)
	    debugmenu.ReleaseDrawList(dl)
	}

# Navigation

The default ActionMap binds:

	Toggle (F1, Start)       Open or close the menu
	Down / Up                Next / previous row; cycle values while editing
	PageDown / PageUp        Next / previous folder, skipping its contents
	Accept, Right (Enter, A) Open folder, start editing, commit value
	AcceptDirect (Space, X)  Step to the next value and commit at once
	Back, Left (Esc, B)      Cancel editing, collapse, move to parent
	Filter (F3, Y)           Start filtering; type to narrow the rows
	Backspace                Delete a filter character; stop filtering when empty

While a leaf is being edited, every value change is applied to the bound
target and reported to the leaf's ItemObserver with Committed false. Commit
reports Committed true; cancelling restores the committed value.

# Filtering

The filter keeps items whose path contains the filter text as a
case-insensitive subsequence ("sb1" keeps "SimpleBool 1"), plus the folders
leading to them. Filtering hides rows but never reorders them.

# Saving

Save writes the leaves whose value differs from their default as text
records preceded by a version line. Load applies such records to a tree
rebuilt with the same creation calls; unknown paths and values are skipped.
MarshalOverrides and UnmarshalOverrides do the same with msgpack.

# Threads

A Menu belongs to one goroutine. Other goroutines record creation requests
in a Queue, which the owner applies with Queue.Drain.
*/
package debugmenu
