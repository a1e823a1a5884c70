// Package tui provides the layout core of a terminal UI toolkit.
//
// Users import this single package for the public API: constraints, layouts,
// rectangles and the layout cache. Widgets call [Layout.Split] on every
// frame to turn their area into sub-areas; identical calls are served from a
// bounded cache.
//
//	rows := tui.NewLayout(tui.Vertical, tui.Length(1), tui.Fill(1), tui.Length(1)).Split(area)
//	cols := tui.Split(rows[1], []tui.Constraint{tui.Percentage(30), tui.Fill(1)}, tui.Horizontal)
package tui
