package riders

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/pixel-riders/internal/core"
	"github.com/vovakirdan/pixel-riders/internal/stunt"
)

// Visual characters for rendering
const (
	SurfaceFlat = '─'
	SurfaceUp   = '╱'
	SurfaceDown = '╲'
	GroundFill  = '░'
	FrameChar   = '═'
	ForkChar    = '│'
	HeadChar    = '●'
)

var wheelGlyphs = []rune{'◐', '◓', '◑', '◒'}

// cameraScale is columns per world unit.
const cameraScale = 2.0

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	p := g.world.pose()
	cam := core.NewCamera(dst.Width(), dst.Height(), cameraScale)
	cam.Follow(p.chassis.X, p.chassis.Y)

	g.drawTerrain(dst, cam)
	g.drawBike(dst, cam, p)
	g.drawHUD(dst)
	g.popups.render(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "WIPEOUT", fmt.Sprintf("Score: %d  |  Press R to restart", g.State().Score))
	}
}

// drawTerrain draws one surface cell per column and fills below it.
func (g *Game) drawTerrain(dst *core.Screen, cam core.Camera) {
	t := g.world.Terrain()
	half := 0.5 / cameraScale
	for col := 0; col < dst.Width(); col++ {
		x := cam.ToWorldX(col) + half
		_, row := cam.ToScreen(x, t.HeightAt(x))
		if row >= dst.Height() {
			continue
		}

		ch := rune(SurfaceFlat)
		switch slope := t.Slope(x); {
		case slope > 0.4:
			ch = SurfaceUp
		case slope < -0.4:
			ch = SurfaceDown
		}
		dst.SetColored(col, row, ch, core.ColorGreen)
		if below := row + 1; below < dst.Height() {
			dst.DrawVLine(col, max(below, 0), dst.Height()-max(below, 0), GroundFill, core.ColorGray)
		}
	}
}

func (g *Game) drawBike(dst *core.Screen, cam core.Camera, p pose) {
	half := g.cfg.Bike.WheelBase / 2
	sin, cos := math.Sincos(p.angle)
	local := func(v cp.Vector) cp.Vector {
		return cp.Vector{X: p.chassis.X + v.X*cos - v.Y*sin, Y: p.chassis.Y + v.X*sin + v.Y*cos}
	}
	screen := func(v cp.Vector) (int, int) {
		return cam.ToScreen(v.X, v.Y)
	}

	front := local(cp.Vector{X: half, Y: 0.3})
	back := local(cp.Vector{X: -half, Y: 0.3})
	fx, fy := screen(front)
	bx, by := screen(back)

	// Forks first so the frame and wheels draw over them.
	for i, top := range [2]cp.Vector{front, back} {
		wx, wy := screen(p.wheels[i])
		tx, ty := screen(top)
		dst.DrawLine(wx, wy, tx, ty, ForkChar, core.ColorGray)
	}
	dst.DrawLine(bx, by, fx, fy, FrameChar, core.ColorBrightRed)

	glyph := wheelGlyphs[wheelFrame(p.wheelAngle)]
	for _, w := range p.wheels {
		x, y := screen(w)
		dst.SetColored(x, y, glyph, core.ColorBrightWhite)
	}

	hx, hy := screen(p.head)
	color := core.ColorYellow
	if g.gameOver {
		color = core.ColorRed
	}
	dst.SetColored(hx, hy, HeadChar, color)
}

// wheelFrame maps a wheel angle to one of the spin glyphs.
func wheelFrame(angle float64) int {
	quarter := math.Pi / 2
	n := int(math.Floor(-angle/quarter)) % len(wheelGlyphs)
	if n < 0 {
		n += len(wheelGlyphs)
	}
	return n
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.State()
	combo := g.engine.CurrentComboCount()

	hud := fmt.Sprintf(" Score: %d  Dist: %dm  Best: %d ", g.shown, st.Distance, st.HighScore)
	dst.DrawText(2, 0, hud)
	if combo > 1 {
		dst.DrawTextColored(2+len(hud), 0, fmt.Sprintf("x%d ", combo), core.ColorMagenta)
	}

	right := ""
	if s, ok := g.engine.Session(); ok && g.engine.State() == stunt.Airborne {
		right = fmt.Sprintf(" Air %.1fs  Rot %d° ", s.Airtime.Seconds(), int(math.Round(s.CumulativeRotation)))
	} else if g.difficulty.IsEnabled() {
		right = fmt.Sprintf(" Lvl %d%% ", int(g.difficulty.Level(g.progress())*100))
	}
	if right != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(right))-2, 0, right, core.ColorCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
