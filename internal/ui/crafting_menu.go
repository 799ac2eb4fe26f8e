// internal/ui/crafting_menu.go
package ui

import (
	"fmt"
	"image/color"

	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/pkg/render"
)

const (
	craftTitleSize = 22
	craftRowSize   = 14
	craftRowH      = 28
)

// CraftingMenu is the recipe overlay. It keeps only the selection; recipes
// and the inventory are read at draw time.
type CraftingMenu struct {
	X, Y, W, H float64
	Selected   int
}

// NewCraftingMenu creates a new crafting menu.
func NewCraftingMenu(x, y, w, h float64) *CraftingMenu {
	return &CraftingMenu{X: x, Y: y, W: w, H: h}
}

// Move shifts the selection by delta, wrapping around the recipe list.
func (m *CraftingMenu) Move(delta int) {
	n := int(defs.RecipeKindCount)
	m.Selected = ((m.Selected+delta)%n + n) % n
}

// SelectedRecipe returns the highlighted recipe.
func (m *CraftingMenu) SelectedRecipe() defs.RecipeKind {
	return defs.RecipeKind(m.Selected)
}

// Draw renders the overlay. Craftable recipes are drawn bright, the rest in
// grey; each ingredient is coloured by whether the inventory covers it.
func (m *CraftingMenu) Draw(s render.Surface, inv *component.Inventory) {
	if s == nil || inv == nil {
		return
	}
	s.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)
	s.FillRect(m.X, m.Y, m.W, m.H, config.MenuBackColor)
	s.StrokeRect(m.X, m.Y, m.W, m.H, 2, config.MenuBorderColor)

	title := "CRAFTING"
	tw := s.TextWidth(title, craftTitleSize)
	s.Text(title, m.X+(m.W-tw)/2, m.Y+32, craftTitleSize, config.TextLightColor)

	startY := m.Y + 70
	for i := 0; i < int(defs.RecipeKindCount); i++ {
		kind := defs.RecipeKind(i)
		recipe := kind.Def()
		rowY := startY + float64(i)*craftRowH
		if i == m.Selected {
			s.FillRect(m.X+8, rowY-craftRowSize-4, m.W-16, craftRowH-2, config.MenuSelectColor)
		}

		craftable := inv.Has(recipe.Cost)
		nameColor := config.TextMutedColor
		if craftable {
			nameColor = config.TextLightColor
		}
		s.Text(displayName(recipe.Name), m.X+20, rowY, craftRowSize, nameColor)

		x := m.X + 230
		for j, ing := range recipe.Cost {
			var clr color.Color = config.TextBadColor
			if inv[ing.Resource] >= ing.Amount {
				clr = config.TextGoodColor
			}
			label := fmt.Sprintf("%d %s", ing.Amount, displayName(ing.Resource.String()))
			if j < len(recipe.Cost)-1 {
				label += ","
			}
			s.Text(label, x, rowY, craftRowSize, clr)
			x += s.TextWidth(label+" ", craftRowSize)
		}
	}

	desc := m.SelectedRecipe().Def().Description
	s.Text(desc, m.X+20, m.Y+m.H-40, craftRowSize, config.VictoryColor)
	s.Text("Up/Down: select   Enter: craft   C/Esc: close", m.X+20, m.Y+m.H-16, 12, config.TextMutedColor)
}
