package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkurnosov/dasher/internal/config"
	"github.com/mkurnosov/dasher/internal/core"
	"github.com/mkurnosov/dasher/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps world units to screen cells. World coordinates are
// floats on the configured field; cells are the terminal grid.
type viewport struct {
	sx, sy float64
}

func newViewport(s *core.Screen, cfg *config.Config) viewport {
	return viewport{
		sx: float64(s.Width()) / cfg.Field.Width,
		sy: float64(s.Height()) / cfg.Field.Height,
	}
}

func (v viewport) cellX(wx float64) int { return int(wx * v.sx) }
func (v viewport) cellY(wy float64) int { return int(wy * v.sy) }

// drawFrame renders one snapshot onto the screen.
func drawFrame(dst *core.Screen, snap sim.Snapshot, cfg *config.Config) {
	vp := newViewport(dst, cfg)
	groundRow := vp.cellY(cfg.Field.GroundY)

	drawGround(dst, vp, groundRow, snap.GroundOffset)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, vp, groundRow, o, snap.Ticks)
	}

	drawCharacter(dst, vp, snap.Character, cfg)
	drawHUD(dst, snap)

	switch snap.Phase {
	case sim.PhaseMenu:
		drawCenteredMessage(dst, "D A S H E R",
			"Press SPACE to start")
	case sim.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d  |  R to restart", snap.Points, snap.HighScore))
	}
}

// groundPattern repeats under the runner; the scroll offset phases it so
// the ground visibly moves at track speed.
var groundPattern = []rune{'═', '═', '═', '╌', '═', '═', '═', '═'}

func drawGround(dst *core.Screen, vp viewport, groundRow int, offset float64) {
	phase := int(-offset * vp.sx)
	n := len(groundPattern)
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, groundRow, groundPattern[(x+phase)%n], core.ColorGray)
	}
}

func drawObstacle(dst *core.Screen, vp viewport, groundRow int, o sim.Obstacle, ticks int) {
	x0 := vp.cellX(o.X)
	x1 := vp.cellX(o.X + o.W)
	if x1 <= x0 {
		x1 = x0 + 1
	}

	switch o.Kind {
	case sim.KindSmallCactus, sim.KindLargeCactus:
		y0 := vp.cellY(o.Y)
		if y0 >= groundRow {
			y0 = groundRow - 1
		}
		fill := '▒'
		if o.Kind == sim.KindLargeCactus {
			fill = '▓'
		}
		for y := y0; y < groundRow; y++ {
			for x := x0; x < x1; x++ {
				dst.SetCell(x, y, fill, core.ColorGreen)
			}
		}

	case sim.KindHighBird, sim.KindLowBird:
		y := vp.cellY(o.Y + o.H/2)
		// Wings flap on a tick-count cycle so the animation freezes when
		// the simulation does.
		wing, body := '˄', '▶'
		if (ticks/8)%2 == 1 {
			wing = '˅'
		}
		for x := x0; x < x1-1; x++ {
			dst.SetCell(x, y, wing, core.ColorBrightWhite)
		}
		dst.SetCell(x1-1, y, body, core.ColorBrightWhite)
	}
}

func drawCharacter(dst *core.Screen, vp viewport, c sim.Character, cfg *config.Config) {
	height := cfg.Character.Height
	if c.Motion == sim.MotionDucking {
		height = cfg.Character.DuckHeight
	}

	x0 := vp.cellX(cfg.Character.X)
	x1 := vp.cellX(cfg.Character.X + cfg.Character.Width)
	feet := vp.cellY(c.Pos)
	top := vp.cellY(c.Pos - height)
	if top >= feet {
		top = feet - 1
	}
	if x1 <= x0 {
		x1 = x0 + 1
	}

	color := core.ColorYellow
	if c.Motion == sim.MotionDead {
		color = core.ColorRed
	}

	for y := top; y < feet; y++ {
		for x := x0; x < x1; x++ {
			dst.SetCell(x, y, '█', color)
		}
	}

	// Head marker at the leading edge.
	head := '◆'
	if c.Motion == sim.MotionDead {
		head = '✖'
	}
	dst.SetCell(x1-1, top, head, color)

	// Legs alternate with the run cycle; tucked while airborne.
	legRow := feet - 1
	switch c.Motion {
	case sim.MotionRunning, sim.MotionDucking:
		if c.Frame%2 == 0 {
			dst.SetCell(x0, legRow, '╱', color)
			dst.SetCell(x1-1, legRow, '▌', color)
		} else {
			dst.SetCell(x0, legRow, '▌', color)
			dst.SetCell(x1-1, legRow, '╲', color)
		}
	case sim.MotionJumping:
		dst.SetCell(x0, legRow, '▙', color)
		dst.SetCell(x1-1, legRow, '▟', color)
	}
}

func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	hud := fmt.Sprintf(" HI %05d  %05d ", snap.HighScore, snap.Points)
	dst.DrawTextColored(dst.Width()-len(hud)-1, 0, hud, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
