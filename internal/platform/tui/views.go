package tui

import (
	"fmt"

	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
	"github.com/roadrush/roadrush/internal/race"
)

// hudRows is the number of screen rows reserved above the road.
const hudRows = 1

// Display glyphs.
const (
	carBody     = '█'
	pickupGlyph = '◆'
	roadEdge    = '║'
	laneDash    = '¦'
)

// Renderer draws the game into a Screen buffer. The simulation runs in a
// fixed virtual viewport; the renderer scales it to whatever cell grid the
// terminal provides.
type Renderer struct {
	cfg *config.GameConfig
}

// NewRenderer creates a renderer for the given game configuration.
func NewRenderer(cfg *config.GameConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Draw renders the machine's current state.
func (r *Renderer) Draw(s *core.Screen, m *race.Machine) {
	s.Clear()
	switch m.State() {
	case race.StateIntro:
		r.drawIntro(s, m)
	case race.StateDifficultySelect:
		r.drawDifficultySelect(s, m)
	case race.StateCountdown:
		r.drawWorld(s, m.Session())
		r.drawBanner(s, m.CountdownLabel(), core.ColorBrightYellow)
	case race.StatePlaying:
		r.drawWorld(s, m.Session())
		r.drawHUD(s, m.Session())
	case race.StatePaused:
		r.drawWorld(s, m.Session())
		r.drawHUD(s, m.Session())
		r.drawBanner(s, "PAUSED", core.ColorBrightWhite)
	case race.StateCrashed:
		r.drawWorld(s, m.Session())
		r.drawCrash(s, m)
	}
}

// road returns the cell rectangle the road occupies.
func (r *Renderer) road(s *core.Screen) core.Rect {
	return core.NewRect(1, hudRows, s.Width()-2, s.Height()-hudRows)
}

// toCell maps a virtual-viewport point into the road rectangle.
func (r *Renderer) toCell(road core.Rect, x, y float64) (int, int) {
	cx := road.X + int(x/r.cfg.Viewport.Width*float64(road.W))
	cy := road.Y + int(y/r.cfg.Viewport.Height*float64(road.H))
	return cx, cy
}

// fillBox draws a virtual-space rectangle as a block of cells, clipped to
// the road. Small sprites always get at least one cell so motorcycles do
// not vanish on narrow terminals.
func (r *Renderer) fillBox(s *core.Screen, road core.Rect, fr core.FRect, ch rune, color core.Color) {
	x0, y0 := r.toCell(road, fr.X, fr.Y)
	x1, y1 := r.toCell(road, fr.Right(), fr.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		if y < road.Y || y >= road.Y+road.H {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < road.X || x >= road.X+road.W {
				continue
			}
			s.SetCell(x, y, ch, color)
		}
	}
}

// drawWorld renders the road, traffic, pickups, and the car.
func (r *Renderer) drawWorld(s *core.Screen, sess *race.Session) {
	road := r.road(s)

	for y := road.Y; y < road.Y+road.H; y++ {
		s.SetCell(road.X-1, y, roadEdge, core.ColorGray)
		s.SetCell(road.X+road.W, y, roadEdge, core.ColorGray)
	}

	// Lane markings scroll with the traffic to sell the motion.
	offset := sess.Ticks() / 4
	for _, lane := range []float64{1.0 / 3.0, 2.0 / 3.0} {
		x := road.X + int(float64(road.W)*lane)
		for y := road.Y; y < road.Y+road.H; y++ {
			if (y+offset)%3 != 0 {
				s.SetCell(x, y, laneDash, core.ColorGray)
			}
		}
	}

	for _, p := range sess.Pickups() {
		x, y := r.toCell(road, p.X+p.Size/2, p.Y+p.Size/2)
		if road.Contains(x, y) {
			s.SetCell(x, y, pickupGlyph, p.Kind.Color())
		}
	}

	for _, o := range sess.Obstacles() {
		r.fillBox(s, road, o.Rect(), carBody, o.Kind.Color)
	}

	car := sess.Car()
	color := core.ColorBrightGreen
	if sess.Shielded() {
		color = core.ColorBrightCyan
	}
	r.fillBox(s, road, car.Rect(), carBody, color)
}

// drawHUD renders the score line above the road.
func (r *Renderer) drawHUD(s *core.Screen, sess *race.Session) {
	score := sess.Score()
	left := fmt.Sprintf(" Dodged: %d  High: %d  Speed: %d km/h",
		score.Score(), score.HighScore(), int(sess.Speed()*12))
	s.DrawTextColored(0, 0, left, core.ColorWhite)

	var right string
	for _, e := range sess.ActiveEffects() {
		right += fmt.Sprintf(" [%s %.0fs]", e.Kind, e.Remaining.Seconds()+0.5)
	}
	if right != "" {
		s.DrawTextColored(s.Width()-len([]rune(right))-1, 0, right, core.ColorBrightCyan)
	}
}

// drawBanner renders a short centered message over the road.
func (r *Renderer) drawBanner(s *core.Screen, text string, color core.Color) {
	y := s.Height() / 2
	box := core.NewRect(s.Width()/2-len([]rune(text))/2-2, y-1, len([]rune(text))+4, 3)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, color)
	s.DrawTextCenteredColored(y, text, color)
}

var titleArt = []string{
	`  ___  ___   _   ___    ___ _   _ ___ _  _ `,
	` | _ \/ _ \ / \ |   \  | _ \ | | / __| || |`,
	` |   / (_) | o || |) | |   / |_| \__ \ __ |`,
	` |_|_\\___/|_|_||___/  |_|_\\___/|___/_||_|`,
}

// drawIntro renders the title screen with a simple scrolling road behind it.
func (r *Renderer) drawIntro(s *core.Screen, m *race.Machine) {
	road := r.road(s)
	offset := m.IntroTicks() / 2
	for _, lane := range []float64{1.0 / 3.0, 2.0 / 3.0} {
		x := road.X + int(float64(road.W)*lane)
		for y := road.Y; y < road.Y+road.H; y++ {
			if (y+offset)%3 != 0 {
				s.SetCell(x, y, laneDash, core.ColorGray)
			}
		}
	}

	top := s.Height()/2 - 5
	for i, line := range titleArt {
		s.DrawTextCenteredColored(top+i, line, core.ColorBrightRed)
	}
	s.DrawTextCenteredColored(top+len(titleArt)+2, "dodge the traffic - survive the rush", core.ColorWhite)

	// Blinking prompt.
	if (m.IntroTicks()/8)%2 == 0 {
		s.DrawTextCenteredColored(top+len(titleArt)+4, "press ENTER to start", core.ColorBrightYellow)
	}
	s.DrawTextCenteredColored(s.Height()-2, "a/d or arrows: steer   p: pause   q: quit", core.ColorGray)
}

// drawDifficultySelect renders the difficulty menu.
func (r *Renderer) drawDifficultySelect(s *core.Screen, m *race.Machine) {
	diffs := m.Difficulties()
	top := s.Height()/2 - len(diffs)

	s.DrawTextCenteredColored(top-2, "SELECT DIFFICULTY", core.ColorBrightWhite)
	for i, d := range diffs {
		line := fmt.Sprintf("  %s", d.Name)
		color := core.ColorWhite
		if i == m.DifficultyCursor() {
			line = fmt.Sprintf("> %s", d.Name)
			color = core.ColorBrightYellow
		}
		s.DrawTextCenteredColored(top+i*2, line, color)
	}

	sel := diffs[m.DifficultyCursor()]
	s.DrawTextCenteredColored(top+len(diffs)*2+1, sel.Description, core.ColorGray)
	s.DrawTextCenteredColored(s.Height()-2, "enter: race   esc: back", core.ColorGray)
}

// drawCrash renders the end-of-run screen over the wreck.
func (r *Renderer) drawCrash(s *core.Screen, m *race.Machine) {
	sess := m.Session()
	score := sess.Score()

	w := 36
	h := 8
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightRed)

	y := box.Y + 1
	s.DrawTextCenteredColored(y, "C R A S H E D", core.ColorBrightRed)
	s.DrawTextCenteredColored(y+2, fmt.Sprintf("Score: %d", score.Score()), core.ColorWhite)
	if score.Beat() {
		s.DrawTextCenteredColored(y+3, "NEW HIGH SCORE!", core.ColorBrightYellow)
	} else {
		s.DrawTextCenteredColored(y+3, fmt.Sprintf("High:  %d", score.HighScore()), core.ColorWhite)
	}
	if m.CrashHoldOver() {
		s.DrawTextCenteredColored(y+5, "enter: race again   esc: menu", core.ColorGray)
	}
}
