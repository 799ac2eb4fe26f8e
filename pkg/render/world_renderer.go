// pkg/render/world_renderer.go
package render

import (
	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/pkg/tilegrid"
)

// WorldRenderer draws the play field of a world snapshot: sky, tiles, drops,
// enemies, the companion and the player. It never modifies the snapshot.
type WorldRenderer struct{}

// NewWorldRenderer creates a new renderer.
func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{}
}

// Draw renders w onto s. Nothing is drawn when either is nil.
func (r *WorldRenderer) Draw(s Surface, w *entity.World) {
	if s == nil || w == nil {
		return
	}
	r.drawSky(s, w.Progress.DayNight)
	r.drawTiles(s, w.Grid, w.Mining)
	r.drawPlayer(s, &w.Player)
	if w.Companion.Alive() {
		r.drawCompanion(s, &w.Companion)
	}
	for i := range w.Enemies {
		r.drawEnemy(s, &w.Enemies[i])
	}
	for i := range w.Drops {
		r.drawDrop(s, &w.Drops[i])
	}
}

func (r *WorldRenderer) drawSky(s Surface, dayNight float64) {
	top, bottom := SkyColors(dayNight)
	s.VerticalGradient(0, 0, config.ScreenWidth, config.ScreenHeight, top, bottom)
}

func (r *WorldRenderer) drawTiles(s Surface, g *tilegrid.Grid, m component.Mining) {
	if g == nil {
		return
	}
	for i, t := range g.Tiles {
		if t.Destroyed {
			continue
		}
		s.FillRect(t.X, t.Y, config.TileSize, config.TileSize, t.Kind.Def().Color)
		s.StrokeRect(t.X, t.Y, config.TileSize, config.TileSize, 1, config.TileStrokeColor)
		if m.Target == i {
			alpha := 0.3 + m.Progress/config.MiningProgressMax*0.4
			s.FillRect(t.X, t.Y, config.TileSize, config.TileSize, WithAlpha(config.MiningHighlight, alpha))
		}
	}
}

func (r *WorldRenderer) drawPlayer(s Surface, p *component.Player) {
	body := config.PlayerColor
	if p.Attacking {
		body = config.PlayerHitColor
	}
	s.FillRect(p.X, p.Y, config.PlayerSize, config.PlayerSize, body)
	s.StrokeRect(p.X, p.Y, config.PlayerSize, config.PlayerSize, 2, config.TileStrokeColor)
	s.FillRect(p.X+6, p.Y-4, 20, 8, config.PlayerHatColor)
	if p.SwordVisible {
		s.FillRect(p.X+35, p.Y+10, 25, 6, config.SwordColor)
	}
}

func (r *WorldRenderer) drawCompanion(s Surface, c *component.Companion) {
	body := config.RobotColor
	if c.Upgraded {
		body = config.RobotUpgradedCol
	}
	if c.Attacking {
		body = config.RobotHitColor
	}
	s.FillRect(c.X, c.Y, config.RobotSize, config.RobotSize, body)
	s.StrokeRect(c.X, c.Y, config.RobotSize, config.RobotSize, 2, config.TileStrokeColor)

	eye := config.RobotEyeColor
	switch {
	case c.Attacking:
		eye = config.RobotAngryEye
	case c.Energy <= config.RobotSlowEnergy:
		eye = config.RobotTiredEye
	}
	s.FillRect(c.X+6, c.Y+6, 4, 4, eye)
	s.FillRect(c.X+14, c.Y+6, 4, 4, eye)
	if c.SwordVisible {
		s.FillRect(c.X+27, c.Y+8, 20, 4, config.LaserColor)
	}
}

func (r *WorldRenderer) drawEnemy(s Surface, e *component.Enemy) {
	def := e.Kind.Def()
	radius := def.Size / 2
	s.FillCircle(e.X+radius, e.Y+radius, radius, def.Color)
	s.StrokeCircle(e.X+radius, e.Y+radius, radius, 1, config.TileStrokeColor)

	frac := 0.0
	if e.MaxHealth > 0 {
		frac = max(0, e.Health/e.MaxHealth)
	}
	s.FillRect(e.X, e.Y-8, def.Size, 4, config.HealthBackColor)
	s.FillRect(e.X, e.Y-8, def.Size*frac, 4, config.HealthFillColor)
}

func (r *WorldRenderer) drawDrop(s Surface, d *component.Drop) {
	c := defs.ResourceColors[d.Item]
	s.FillRect(d.X, d.Y, config.DropSize, config.DropSize, c)
	s.StrokeRect(d.X, d.Y, config.DropSize, config.DropSize, 1, config.DropStrokeColor)
}
