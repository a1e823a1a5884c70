package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-tui-layout/internal/config"
	"github.com/grindlemire/go-tui-layout/internal/layout"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

const labelWidth = 24

// gridGlyphs mark leaf regions in drawn grids.
const gridGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func cell(style lipgloss.Style, width int, v any) string {
	return style.Width(width).Render(fmt.Sprint(v))
}

func rectRow(label string, r layout.Rect, style lipgloss.Style) string {
	label = runewidth.Truncate(label, labelWidth-1, "…")
	return cell(style, labelWidth, label) +
		cell(styleNumber, 6, r.X) +
		cell(styleNumber, 6, r.Y) +
		cell(styleNumber, 7, r.Width) +
		cell(styleNumber, 7, r.Height)
}

func rectHeader(title string) string {
	return cell(styleHeader, labelWidth, title) +
		cell(styleHeader, 6, "x") +
		cell(styleHeader, 6, "y") +
		cell(styleHeader, 7, "width") +
		cell(styleHeader, 7, "height")
}

// writeRegions prints one row per region, indented by depth.
func writeRegions(w io.Writer, regions []config.Region) {
	fmt.Fprintln(w, rectHeader("element"))
	for _, r := range regions {
		style := styleValue
		if !r.Leaf {
			style = styleDim
		}
		fmt.Fprintln(w, rectRow(strings.Repeat("  ", r.Depth)+r.Label, r.Rect, style))
	}
}

// writeSpacers prints the spacer rects of the root layout.
func writeSpacers(w io.Writer, spacers []layout.Rect) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rectHeader("spacer"))
	for i, r := range spacers {
		fmt.Fprintln(w, rectRow(fmt.Sprintf("spacer %d", i), r, styleDim))
	}
}

// writeSteps prints recorded solver steps.
func writeSteps(w io.Writer, steps []layout.Step) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%d solver steps", len(steps))))
	fmt.Fprintln(w,
		cell(styleHeader, 11, "phase")+
			cell(styleHeader, 9, "segment")+
			cell(styleHeader, 8, "before")+
			cell(styleHeader, 8, "after")+
			cell(styleHeader, 10, "step/32"))
	for _, s := range steps {
		fmt.Fprintln(w,
			cell(styleValue, 11, s.Phase)+
				cell(styleNumber, 9, s.Segment)+
				cell(styleNumber, 8, s.Before)+
				cell(styleNumber, 8, s.After)+
				cell(styleDim, 10, s.StepSize))
	}
}

// writeGrid draws every leaf region as a block of one glyph. Cells no leaf
// covers are dots; later regions paint over earlier ones where they overlap.
func writeGrid(w io.Writer, area layout.Rect, regions []config.Region) {
	grid := make([][]rune, area.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(".", area.Width))
	}

	var legend []string
	n := 0
	for _, r := range regions {
		if !r.Leaf {
			continue
		}
		glyph := rune(gridGlyphs[n%len(gridGlyphs)])
		n++
		visible := r.Rect.Intersect(area)
		for y := visible.Y; y < visible.Bottom(); y++ {
			for x := visible.X; x < visible.Right(); x++ {
				grid[y-area.Y][x-area.X] = glyph
			}
		}
		legend = append(legend, fmt.Sprintf("%c  %s %dx%d", glyph, r.Label, r.Rect.Width, r.Rect.Height))
	}

	for _, row := range grid {
		fmt.Fprintln(w, string(row))
	}
	fmt.Fprintln(w)
	for _, line := range legend {
		fmt.Fprintln(w, styleDim.Render(line))
	}
}
