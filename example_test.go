package tui_test

import (
	"fmt"

	tui "github.com/grindlemire/go-tui-layout"
)

func ExampleLayout_Split() {
	area := tui.NewRect(0, 0, 80, 24)
	rows := tui.NewLayout(tui.Vertical, tui.Length(1), tui.Fill(1), tui.Length(1)).Split(area)
	cols := tui.NewLayout(tui.Horizontal, tui.Percentage(25), tui.Fill(1)).Spacing(1).Split(rows[1])

	for _, r := range append(rows, cols...) {
		fmt.Printf("%+v\n", r)
	}
	// Output:
	// {X:0 Y:0 Width:80 Height:1}
	// {X:0 Y:1 Width:80 Height:22}
	// {X:0 Y:23 Width:80 Height:1}
	// {X:0 Y:1 Width:20 Height:22}
	// {X:21 Y:1 Width:59 Height:22}
}

func ExampleSplitWithSpacers() {
	elements, spacers := tui.SplitWithSpacers(tui.NewRect(0, 0, 20, 1),
		[]tui.Constraint{tui.Length(4), tui.Length(4), tui.Length(4)}, tui.Horizontal, tui.FlexSpaceBetween, 0)

	var starts, gaps []int
	for _, e := range elements {
		starts = append(starts, e.X)
	}
	for _, s := range spacers {
		gaps = append(gaps, s.Width)
	}
	fmt.Println(starts)
	fmt.Println(gaps)
	// Output:
	// [0 8 16]
	// [0 4 4 0]
}

func ExampleSolve() {
	var steps tui.StepLog
	sizes := tui.Solve(10, []tui.Segment{
		{Max: 10, FillScale: 1},
		{Max: 10, FillScale: 3},
	}, tui.WithRecorder(&steps))

	fmt.Println(sizes)
	for _, s := range steps.Steps() {
		fmt.Println(s)
	}
	// Output:
	// [2 8]
	// max seg=0 0->2 step=80/32
	// max seg=1 0->7 step=80/32
	// max seg=1 7->8 step=8/32
}
