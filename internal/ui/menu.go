// internal/ui/menu.go
package ui

import (
	"image"

	"click-a-dot/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuItem is one entry of a drop-down menu.
type MenuItem struct {
	Label  string
	Action func()
}

// Menu is a titled drop-down in the menu bar.
type Menu struct {
	Title string
	Items []MenuItem
	title image.Rectangle
}

// MenuBar is a strip of menus along the top of the window. At most one
// menu is open at a time.
type MenuBar struct {
	Rect  image.Rectangle
	Menus []*Menu
	open  int
}

// NewMenuBar lays the menus out left to right inside rect.
func NewMenuBar(rect image.Rectangle, menus ...*Menu) *MenuBar {
	mb := &MenuBar{Menus: menus, open: -1}
	mb.SetRect(rect)
	return mb
}

// SetRect moves the bar and recomputes the title positions.
func (mb *MenuBar) SetRect(rect image.Rectangle) {
	mb.Rect = rect
	x := rect.Min.X
	for _, m := range mb.Menus {
		w := TextWidth(m.Title) + 16
		m.title = image.Rect(x, rect.Min.Y, x+w, rect.Max.Y)
		x += w
	}
}

// IsOpen reports whether a drop-down is showing.
func (mb *MenuBar) IsOpen() bool {
	return mb.open >= 0
}

// itemRect is the rectangle of item i in menu m.
func (mb *MenuBar) itemRect(m *Menu, i int) image.Rectangle {
	x := m.title.Min.X
	y := mb.Rect.Max.Y + i*config.MenuItemHeight
	return image.Rect(x, y, x+config.MenuItemWidth, y+config.MenuItemHeight)
}

// HandlePress routes a press to the bar. It returns true when the press
// was consumed: a title toggles its menu, an item runs its action and
// closes the menu, and any press while a menu is open closes it.
func (mb *MenuBar) HandlePress(x, y int) bool {
	p := image.Pt(x, y)

	if mb.IsOpen() {
		m := mb.Menus[mb.open]
		for i, item := range m.Items {
			if p.In(mb.itemRect(m, i)) {
				mb.open = -1
				if item.Action != nil {
					item.Action()
				}
				return true
			}
		}
	}

	for i, m := range mb.Menus {
		if p.In(m.title) {
			if mb.open == i {
				mb.open = -1
			} else {
				mb.open = i
			}
			return true
		}
	}

	if mb.IsOpen() {
		mb.open = -1
		return true
	}
	return p.In(mb.Rect)
}

// Close hides any open drop-down.
func (mb *MenuBar) Close() {
	mb.open = -1
}

// Draw renders the bar and the open drop-down, if any.
func (mb *MenuBar) Draw(screen *ebiten.Image) {
	r := mb.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.MenuBarColor, false)

	for i, m := range mb.Menus {
		if i == mb.open {
			t := m.title
			vector.DrawFilledRect(screen, float32(t.Min.X), float32(t.Min.Y), float32(t.Dx()), float32(t.Dy()), config.MenuOpenColor, false)
		}
		c := m.title.Min.Add(m.title.Size().Div(2))
		DrawCentered(screen, m.Title, c.X, c.Y, config.TextLightColor)
	}

	if !mb.IsOpen() {
		return
	}
	m := mb.Menus[mb.open]
	for i, item := range m.Items {
		ir := mb.itemRect(m, i)
		vector.DrawFilledRect(screen, float32(ir.Min.X), float32(ir.Min.Y), float32(ir.Dx()), float32(ir.Dy()), config.MenuOpenColor, false)
		DrawLeft(screen, item.Label, ir.Min.X+8, ir.Min.Y+ir.Dy()/2, config.TextLightColor)
	}
	last := mb.itemRect(m, len(m.Items)-1)
	first := mb.itemRect(m, 0)
	vector.StrokeRect(screen, float32(first.Min.X), float32(first.Min.Y), float32(first.Dx()), float32(last.Max.Y-first.Min.Y), 1, config.BoardStrokeColor, false)
}
