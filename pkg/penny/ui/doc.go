// Package ui is a retained-mode widget layer for handheld and desktop
// screens that are driven by a pointer, a gamepad or both.
//
// Widgets are placed in percent of the screen resolution and collected into
// menus. A Manager owns the menus, fans input out to the ones that are open
// and carries a virtual keyboard for text entry without a physical keyboard.
//
// # Basic Usage
//
//	ctx := ui.NewContext(surface, ui.WithGamepad(pad), ui.WithInputMode(router.Mode()))
//	mgr := ui.NewManager(ctx)
//
//	main := mgr.NewMenu("main")
//	main.AddComponent(ui.NewButton(ctx, "play", 40, 30, 20, 10, "Play",
//	    ui.ButtonFunc(func(id string) { startGame() }), ui.WithSelectionID(0)))
//	main.AddComponent(ui.NewButton(ctx, "quit", 40, 45, 20, 10, "Quit",
//	    ui.ButtonFunc(func(id string) { quit() }), ui.WithSelectionID(1)))
//	main.DefineSelectionGrid([][]int{{0}, {1}})
//	main.Open(false)
//
//	// each frame
//	mgr.Update(dt)
//	mgr.Draw()
//
// # Selection Grid
//
// Gamepad navigation walks a grid of selection ids. Rows may have different
// lengths; moving vertically clamps the column to the target row. The first
// D-pad press after a menu opens only selects the top-left entry.
//
// # Draw Order
//
// Each menu keeps its own z order. Index zero is drawn last and gets pointer
// input first. Dragging a Panel raises it and everything attached to it.
package ui
