// Package overlay draws the on-screen panels: a toggle/camera status block and
// the educational body data table. Panels are immediate-mode: they are rebuilt
// from the current state on every frame and drawn straight into the frame image.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"solarsys/internal/camera"
	"solarsys/internal/scene"
)

var (
	face       = basicfont.Face7x13
	panelColor = color.NRGBA{R: 8, G: 10, B: 20, A: 170}
	textColor  = color.NRGBA{R: 230, G: 230, B: 235, A: 255}
	dimColor   = color.NRGBA{R: 150, G: 150, B: 160, A: 255}
)

const (
	lineHeight = 15
	padding    = 6
	margin     = 8
)

// Binding is one key legend entry shown in the status panel.
type Binding struct {
	Key    string
	Action string
}

// State is everything the panels read.
type State struct {
	Bodies   []scene.CelestialBody
	Config   *scene.Config
	Camera   camera.State
	FPS      float64
	Bindings []Binding
}

// Draw renders the status panel in the top-left corner and, when enabled, the
// body table in the bottom-left corner.
func Draw(img *image.NRGBA, st State) {
	status := StatusLines(st.Config, st.Camera, st.FPS)
	for _, b := range st.Bindings {
		status = append(status, fmt.Sprintf("%-6s %s", b.Key, b.Action))
	}
	DrawPanel(img, image.Pt(margin, margin), status)

	if st.Config != nil && st.Config.ShowTable {
		lines := FormatTable(BodyTable(st.Bodies))
		h := panelSize(lines).Y
		DrawPanel(img, image.Pt(margin, img.Bounds().Dy()-h-margin), lines)
	}
}

// StatusLines mirrors the toggles and camera state as text.
func StatusLines(cfg *scene.Config, cam camera.State, fps float64) []string {
	lines := []string{fmt.Sprintf("pitch %6.1f  yaw %6.1f  dist %5.1f", cam.Pitch, cam.Yaw, cam.Distance)}
	if fps > 0 {
		lines[0] += fmt.Sprintf("  %4.0f fps", fps)
	}
	if cfg == nil {
		return lines
	}
	state := "running"
	if cfg.Paused {
		state = "paused"
	}
	lines = append(lines,
		fmt.Sprintf("time x%.2f (%s)  meteors %d", cfg.TimeScale, state, cfg.MeteorCount),
		fmt.Sprintf("%s orbits  %s moons  %s rings", check(cfg.ShowOrbits), check(cfg.ShowMoons), check(cfg.ShowRings)),
		fmt.Sprintf("%s meteors  %s sky  %s table", check(cfg.ShowMeteors), check(cfg.ShowBackground), check(cfg.ShowTable)),
	)
	return lines
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// BodyTable returns a header row followed by one row per body.
func BodyTable(bodies []scene.CelestialBody) [][]string {
	rows := [][]string{{"Body", "Orbit r", "Orbit deg/s", "Orbit deg", "Spin deg/s", "Size", "Moon", "Ring"}}
	for _, b := range bodies {
		moon, ring := "-", "-"
		if b.Moon != nil {
			moon = fmt.Sprintf("%.0f deg", b.Moon.Angle)
		}
		if b.Ring != nil {
			ring = fmt.Sprintf("%.0f deg tilt", b.Ring.Tilt)
		}
		rows = append(rows, []string{
			b.Name,
			fmt.Sprintf("%.1f", b.OrbitRadius),
			fmt.Sprintf("%.1f", b.OrbitSpeed),
			fmt.Sprintf("%.1f", b.OrbitAngle),
			fmt.Sprintf("%.1f", b.RotationSpeed),
			fmt.Sprintf("%.2f", b.Size),
			moon,
			ring,
		})
	}
	return rows
}

// FormatTable left-aligns every column to its widest cell.
func FormatTable(rows [][]string) []string {
	var widths []int
	for _, r := range rows {
		for i, cell := range r {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := len(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		var sb strings.Builder
		for j, cell := range r {
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(cell)
			if j < len(r)-1 {
				sb.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			}
		}
		lines[i] = sb.String()
	}
	return lines
}

func panelSize(lines []string) image.Point {
	w := 0
	for _, l := range lines {
		if adv := font.MeasureString(face, l).Ceil(); adv > w {
			w = adv
		}
	}
	return image.Pt(w+2*padding, len(lines)*lineHeight+2*padding)
}

// DrawPanel draws lines of text on a translucent box whose top-left corner is at.
// The first line is drawn brighter as a heading.
func DrawPanel(img *image.NRGBA, at image.Point, lines []string) {
	if len(lines) == 0 {
		return
	}
	size := panelSize(lines)
	box := image.Rectangle{Min: at, Max: at.Add(size)}.Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(panelColor), image.Point{}, draw.Over)

	d := &font.Drawer{Dst: img, Face: face}
	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		c := dimColor
		if i == 0 {
			c = textColor
		}
		d.Src = image.NewUniform(c)
		d.Dot = fixed.P(at.X+padding, at.Y+padding+ascent+i*lineHeight)
		d.DrawString(l)
	}
}
