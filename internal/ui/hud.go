// internal/ui/hud.go
package ui

import (
	"fmt"
	"math"
	"strings"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/pkg/render"
)

const (
	hudFontSize   = 18
	statFontSize  = 12
	panelFontSize = 14

	inventoryX       = 380
	inventoryY       = 500
	inventoryW       = 400
	inventoryH       = 90
	inventoryColumns = 4
	inventoryColW    = 95
	inventoryRowH    = 20
)

// HUD draws the heads-up display over the play field: progress counters,
// player and robot meters and the inventory panel.
type HUD struct {
	playerHealth Bar
	playerHunger Bar
	robotHealth  Bar
	robotEnergy  Bar
	level        *LevelIndicator
}

// NewHUD creates a HUD laid out for the logical screen.
func NewHUD() *HUD {
	return &HUD{
		playerHealth: Bar{X: 10, Y: 510, W: 180, H: 15, Back: config.HealthBackColor, Fill: config.HealthFillColor},
		playerHunger: Bar{X: 10, Y: 530, W: 180, H: 10, Back: config.HungerBackColor, Fill: config.HungerFillColor},
		robotHealth:  Bar{X: 200, Y: 510, W: 150, H: 15, Back: config.HealthBackColor, Fill: config.HealthFillColor},
		robotEnergy:  Bar{X: 200, Y: 530, W: 150, H: 10, Back: config.EnergyBackColor, Fill: config.EnergyFillColor},
		level:        NewLevelIndicator(config.ScreenWidth-40, 40, 32),
	}
}

// Draw renders the HUD for w. It only reads the snapshot.
func (h *HUD) Draw(s render.Surface, w *entity.World) {
	if s == nil || w == nil {
		return
	}
	h.drawProgress(s, w)
	h.drawPlayer(s, w)
	h.drawRobot(s, w)
	h.drawInventory(s, w)
}

func (h *HUD) drawProgress(s render.Surface, w *entity.World) {
	p := w.Progress
	s.Text(fmt.Sprintf("Level: %d", p.Level), 10, 25, hudFontSize, config.TextLightColor)
	s.Text(fmt.Sprintf("Score: %d", p.Score), 10, 45, hudFontSize, config.TextLightColor)
	s.Text(fmt.Sprintf("Kills: %d / %d", p.KillsThisLevel, defs.RequiredKills(p.Level)), 10, 65, hudFontSize, config.TextLightColor)

	tool := w.Player.Tool
	s.Text(fmt.Sprintf("Tool: %s (%d)", displayName(tool.String()), w.Player.ToolDurability), 10, 85, statFontSize, config.TextLightColor)
	s.Text(fmt.Sprintf("Block: %s", displayName(w.Player.SelectedBlock.String())), 10, 100, statFontSize, config.TextLightColor)

	h.level.Draw(s, p.Level)
	if p.Night() {
		s.Text("NIGHT", config.ScreenWidth-60, 65, statFontSize, config.TextBadColor)
	}
}

func (h *HUD) drawPlayer(s render.Surface, w *entity.World) {
	pl := w.Player
	h.playerHealth.Draw(s, ratio(pl.Health, pl.MaxHealth))
	h.playerHunger.Draw(s, ratio(pl.Hunger, config.MaxHunger))
	s.Text(fmt.Sprintf("HP: %.0f / %.0f", math.Ceil(pl.Health), pl.MaxHealth), 12, 522, statFontSize, config.TextLightColor)
	s.Text(fmt.Sprintf("DMG: %.0f", pl.Damage()), 120, 522, statFontSize, config.TextLightColor)
}

func (h *HUD) drawRobot(s render.Surface, w *entity.World) {
	c := w.Companion
	if c.Alive() {
		h.robotHealth.Draw(s, ratio(c.Health, c.MaxHealth))
		h.robotEnergy.Draw(s, ratio(c.Energy, c.MaxEnergy))
		s.Text(fmt.Sprintf("HP: %.0f / %.0f", math.Ceil(c.Health), c.MaxHealth), 202, 522, statFontSize, config.TextLightColor)
		s.Text(fmt.Sprintf("DMG: %.0f", c.Damage()), 290, 522, statFontSize, config.TextLightColor)
		return
	}
	respawn := Bar{X: h.robotHealth.X, Y: h.robotHealth.Y, W: h.robotHealth.W, H: h.robotHealth.H,
		Back: config.HealthBackColor, Fill: config.RespawnFillColor}
	respawn.Draw(s, 1-c.RespawnTimer/config.RobotRespawnMs)
	s.Text("Robot Respawning...", 202, 523, statFontSize, config.TextDarkColor)
}

func (h *HUD) drawInventory(s render.Surface, w *entity.World) {
	s.FillRect(inventoryX, inventoryY, inventoryW, inventoryH, config.PanelColor)
	s.Text("INVENTORY", inventoryX+5, inventoryY+18, panelFontSize, config.TextLightColor)
	for i, r := range defs.Resources() {
		x := float64(inventoryX + 5 + (i%inventoryColumns)*inventoryColW)
		y := float64(inventoryY + 35 + (i/inventoryColumns)*inventoryRowH)
		n := w.Inventory[r]
		clr := config.TextMutedColor
		if n > 0 {
			clr = config.TextGoodColor
		}
		s.Text(fmt.Sprintf("%s: %d", displayName(r.String()), n), x, y, statFontSize, clr)
	}
}

// displayName turns an identifier like IRON_ORE into "IRON ORE".
func displayName(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
