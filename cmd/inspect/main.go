package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"solarsys/internal/app"
	"solarsys/internal/overlay"
	"solarsys/internal/scene"
)

var (
	title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	row    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errSty = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func main() {
	catalog := flag.String("catalog", "", "Body catalog YAML (default: built-in)")
	at := flag.Float64("t", 0, "Scene time in seconds to advance to")
	step := flag.Float64("dt", 1.0/60, "Simulation step in seconds")
	flag.Parse()
	app.SetupLogging(os.Stderr, false)

	cat, err := scene.LoadCatalog(*catalog)
	if err != nil {
		fmt.Fprintln(os.Stderr, errSty.Render(err.Error()))
		os.Exit(1)
	}

	sc := scene.New(cat, 1)
	cfg := scene.DefaultConfig()
	for t := 0.0; t < *at && *step > 0; t += *step {
		sc.Update(min(*step, *at-t), &cfg)
	}

	fmt.Println(title.Render(fmt.Sprintf("Solar system at t=%.2fs", *at)))
	if sc.Background != "" {
		fmt.Println(dim.Render("background: " + sc.Background))
	}
	fmt.Println()

	lines := overlay.FormatTable(withPositions(sc.Bodies, overlay.BodyTable(sc.Bodies)))
	for i, l := range lines {
		if i == 0 {
			fmt.Println(header.Render(l))
			fmt.Println(dim.Render(strings.Repeat("-", len(l))))
			continue
		}
		fmt.Println(row.Render(l))
	}
}

// withPositions appends world-space body and moon positions to the table rows.
func withPositions(bodies []scene.CelestialBody, rows [][]string) [][]string {
	rows[0] = append(rows[0], "Position", "Moon position")
	for i := range bodies {
		b := &bodies[i]
		p := b.WorldPosition()
		moon := "-"
		if pl := b.Place(); pl.HasMoon {
			m := pl.Moon.Col(3)
			moon = fmt.Sprintf("(%.2f, %.2f, %.2f)", m[0], m[1], m[2])
		}
		rows[i+1] = append(rows[i+1], fmt.Sprintf("(%.2f, %.2f, %.2f)", p[0], p[1], p[2]), moon)
	}
	return rows
}
