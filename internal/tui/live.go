// Package tui provides a live terminal view of a secular solution: the
// eccentricity vectors of all bodies tracing their slow precession in the
// (k,h) plane as model time is swept forward.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/secularlab/secular/internal/orbit"
	"github.com/secularlab/secular/internal/secular"
)

const (
	canvasW  = 71
	canvasH  = 25
	trailLen = 400
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type point struct{ k, h float64 }

type model struct {
	sol    *secular.Solution
	span   float64 // years per full sweep
	t      float64
	step   float64 // years per tick
	paused bool

	scale  float64 // max |e| mapped to canvas edge
	trails [][]point

	width  int
	height int
}

// Run sweeps the solution over span years in an animated (k,h) view.
func Run(sol *secular.Solution, span float64) error {
	_, err := tea.NewProgram(newModel(sol, span), tea.WithAltScreen()).Run()
	return err
}

func newModel(sol *secular.Solution, span float64) *model {
	n := len(sol.Bodies())
	m := &model{
		sol:    sol,
		span:   span,
		step:   span / 2000,
		trails: make([][]point, n),
		scale:  0.01,
	}

	// Fix the plot scale from a coarse pre-sweep so the view does not
	// jump as amplitudes beat.
	for i := 0; i <= 200; i++ {
		for _, st := range sol.At(span * float64(i) / 200) {
			if e := math.Max(math.Abs(st.H), math.Abs(st.K)); e > m.scale {
				m.scale = e
			}
		}
	}
	m.scale *= 1.1
	return m
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "+", "=":
			m.step *= 2
		case "-":
			m.step /= 2
		case "r":
			m.t = 0
			for i := range m.trails {
				m.trails[i] = nil
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.paused {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) advance() {
	m.t += m.step
	states := m.sol.At(m.t)
	for j, st := range states {
		m.trails[j] = append(m.trails[j], point{k: st.K, h: st.H})
		if len(m.trails[j]) > trailLen {
			m.trails[j] = m.trails[j][1:]
		}
	}
}

func (m *model) View() string {
	canvas := make([][]rune, canvasH)
	for i := range canvas {
		canvas[i] = make([]rune, canvasW)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Axes through the origin.
	for x := 0; x < canvasW; x++ {
		canvas[canvasH/2][x] = '·'
	}
	for y := 0; y < canvasH; y++ {
		canvas[y][canvasW/2] = '·'
	}

	for j, trail := range m.trails {
		marker := rune('a' + j%26)
		for i, p := range trail {
			x, y := m.project(p)
			if x < 0 || x >= canvasW || y < 0 || y >= canvasH {
				continue
			}
			if i == len(trail)-1 {
				canvas[y][x] = '@'
			} else if canvas[y][x] == ' ' || canvas[y][x] == '·' {
				canvas[y][x] = marker
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(cyan.Render("secular evolution — (k,h) eccentricity plane"))
	sb.WriteString("\n\n")
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}

	states := m.sol.At(m.t)
	sb.WriteString(fmt.Sprintf("\n%s %s   %s\n",
		dim.Render("t ="),
		yellow.Render(fmt.Sprintf("%.0f yr", m.t)),
		dim.Render(fmt.Sprintf("step %.0f yr/frame, scale e=%.3g", m.step, m.scale))))

	for j, b := range m.sol.Bodies() {
		ecc, peri := orbit.FromEccProxies(states[j].H, states[j].K)
		sb.WriteString(fmt.Sprintf("  %c %-10s %s\n",
			'a'+j%26, b.Name,
			green.Render(fmt.Sprintf("e=%.4f  ϖ=%6.1f°", ecc, peri*180/math.Pi))))
	}

	status := "running"
	if m.paused {
		status = "paused"
	}
	sb.WriteString(dim.Render(fmt.Sprintf("\n[space] %s  [+/-] speed  [r] reset  [q] quit", status)))
	return sb.String()
}

func (m *model) project(p point) (x, y int) {
	x = canvasW/2 + int(p.k/m.scale*float64(canvasW/2-1))
	y = canvasH/2 - int(p.h/m.scale*float64(canvasH/2-1))
	return x, y
}
