// Package preview draws solved layouts on a terminal.
//
// Every leaf region of a layout tree becomes a bordered, labelled box. The
// viewer re-splits on every frame through a layout cache, so resizing the
// terminal exercises both the solver (new sizes) and the cache (repeats).
package preview

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-tui-layout/internal/config"
	"github.com/grindlemire/go-tui-layout/internal/debug"
	"github.com/grindlemire/go-tui-layout/internal/layout"
)

const helpText = "[f]lex [+/-]spacing [b]order [q]uit"

var depthColors = []tcell.Color{
	tcell.ColorAqua,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorBlue,
}

var (
	statusStyle = tcell.StyleDefault.Reverse(true)
	tinyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Viewer renders a layout tree and reacts to keys.
type Viewer struct {
	tree    *config.Tree
	current *config.Tree
	cache   *layout.Cache
	logger  *log.Logger

	flex    layout.Flex
	spacing int
	border  BorderStyle
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithCache makes the viewer split through c instead of a private cache.
func WithCache(c *layout.Cache) Option {
	return func(v *Viewer) {
		v.cache = c
	}
}

// WithLogger sets the logger for frame diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(v *Viewer) {
		v.logger = l
	}
}

// WithBorder sets the initial border style.
func WithBorder(b BorderStyle) Option {
	return func(v *Viewer) {
		v.border = b
	}
}

// New creates a viewer for tree. The root layout's flex mode and spacing
// start at the tree's values and can be changed with keys.
func New(tree *config.Tree, opts ...Option) *Viewer {
	v := &Viewer{
		tree:    tree,
		flex:    tree.Flex,
		spacing: tree.Spacing,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.cache == nil {
		v.cache = layout.NewCache(64)
	}
	if v.logger == nil {
		v.logger = debug.Logger()
	}
	v.rebuild()
	return v
}

func (v *Viewer) rebuild() {
	t := v.tree.WithCache(v.cache)
	t.Layout = t.Layout.Flex(v.flex).Spacing(v.spacing)
	v.current = t
}

// Flex returns the flex mode applied to the root layout.
func (v *Viewer) Flex() layout.Flex {
	return v.flex
}

// Spacing returns the spacing applied to the root layout.
func (v *Viewer) Spacing() int {
	return v.spacing
}

// Cache returns the cache the viewer splits through.
func (v *Viewer) Cache() *layout.Cache {
	return v.cache
}

// HandleKey applies a key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'f':
		flexes := layout.Flexes()
		v.flex = flexes[(int(v.flex)+1)%len(flexes)]
	case '+', '=':
		v.spacing++
	case '-', '_':
		v.spacing--
	case 'b':
		v.border = v.border.Next()
		return false
	default:
		return false
	}
	v.logger.Debug("preview settings", "flex", v.flex, "spacing", v.spacing)
	v.rebuild()
	return false
}

// Draw renders the whole frame: one box per leaf region and a status line.
func (v *Viewer) Draw(s Surface) {
	w, h := s.Size()
	FillRect(s, layout.NewRect(0, 0, w, h), ' ', tcell.StyleDefault)
	if w <= 0 || h <= 0 {
		return
	}

	area := layout.NewRect(0, 0, w, h-1)
	regions := v.current.Resolve(area)
	for _, r := range regions {
		if !r.Leaf {
			continue
		}
		style := tcell.StyleDefault.Foreground(depthColors[r.Depth%len(depthColors)])
		if r.Rect.Width < 2 || r.Rect.Height < 2 {
			FillRect(s, r.Rect, '░', tinyStyle)
			continue
		}
		title := fmt.Sprintf(" %s %dx%d ", r.Label, r.Rect.Width, r.Rect.Height)
		DrawBoxWithTitle(s, r.Rect, v.border, title, style)
	}

	stats := v.cache.Stats()
	status := fmt.Sprintf(" flex=%s spacing=%d %dx%d cache=%d/%d hit=%d miss=%d  %s",
		v.flex, v.spacing, w, h-1, stats.Len, stats.Capacity, stats.Hits, stats.Misses, helpText)
	line := layout.NewRect(0, h-1, w, 1)
	FillRect(s, line, ' ', statusStyle)
	DrawText(s, 0, h-1, status, statusStyle, line)

	v.logger.Debug("frame", "width", w, "height", h, "regions", len(regions))
}

// Run draws frames on screen until the user quits or ctx is done.
// The caller owns Init and Fini of the screen.
func (v *Viewer) Run(ctx context.Context, screen tcell.Screen) error {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	v.Draw(screen)
	screen.Show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ctx.Err()
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
			}
			v.Draw(screen)
			screen.Show()
		}
	}
}
