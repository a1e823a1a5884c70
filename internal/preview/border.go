package preview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-tui-layout/internal/layout"
)

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle BorderStyle = iota
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick

	borderCount
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// Next returns the following border style, wrapping around.
func (b BorderStyle) Next() BorderStyle {
	return (b + 1) % borderCount
}

// Surface is the part of a tcell.Screen the preview draws on.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// clip returns r limited to the surface bounds.
func clip(s Surface, r layout.Rect) layout.Rect {
	w, h := s.Size()
	return r.Intersect(layout.NewRect(0, 0, w, h))
}

// DrawBox draws a box border at rect.
// If the rectangle is smaller than 2x2, the function does nothing.
func DrawBox(s Surface, rect layout.Rect, border BorderStyle, style tcell.Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	visible := clip(s, rect)
	if visible.IsEmpty() {
		return
	}

	chars := border.Chars()
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	set := func(x, y int, r rune) {
		if visible.Contains(x, y) {
			s.SetContent(x, y, r, nil, style)
		}
	}

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}

// DrawBoxWithTitle draws a box border with a title centered in the top
// border, truncated to fit between the corners.
func DrawBoxWithTitle(s Surface, rect layout.Rect, border BorderStyle, title string, style tcell.Style) {
	DrawBox(s, rect, border, style)
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	available := rect.Width - 2
	title = runewidth.Truncate(title, available, "")
	if title == "" {
		return
	}
	start := rect.X + 1 + (available-runewidth.StringWidth(title))/2
	DrawText(s, start, rect.Y, title, style, rect)
}

// DrawText writes text starting at (x, y), clipped to bounds and the surface.
func DrawText(s Surface, x, y int, text string, style tcell.Style, bounds layout.Rect) {
	visible := clip(s, bounds)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if visible.Contains(x, y) && visible.Contains(x+w-1, y) {
			s.SetContent(x, y, r, nil, style)
		}
		x += w
	}
}

// FillRect fills rect with r.
func FillRect(s Surface, rect layout.Rect, r rune, style tcell.Style) {
	visible := clip(s, rect)
	for y := visible.Y; y < visible.Bottom(); y++ {
		for x := visible.X; x < visible.Right(); x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}
