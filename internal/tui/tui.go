// Package tui hosts a crabs world in the terminal. Each text row shows two
// grid rows using upper half-block glyphs colored from the frame buffer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"crabs/internal/sims/crabs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	historyCapacity = 240
	graphHeight     = 6
	halfBlock       = "▀"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// TickMsg advances the world by one generation.
type TickMsg time.Time

// Model is the bubbletea model driving a crabs world.
type Model struct {
	world *crabs.World
	frame []byte
	tps   int

	cols, rows int
	running    bool
	tickOnce   bool
	showGraph  bool
	showParams bool
	history    []float64
	glyphs     map[[8]byte]string
}

// NewModel paints the world's first generation and returns a running model.
func NewModel(world *crabs.World, tps int) Model {
	if tps <= 0 {
		tps = 15
	}
	m := Model{
		world:   world,
		frame:   make([]byte, world.FrameSize()),
		tps:     tps,
		cols:    80,
		rows:    24,
		running: true,
		history: make([]float64, 0, historyCapacity),
		glyphs:  make(map[[8]byte]string),
	}
	world.Render(m.frame)
	m.record()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.tps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.tickOnce = true
		case "g":
			m.showGraph = !m.showGraph
		case "p":
			m.showParams = !m.showParams
		case "r":
			m.reset(m.world.Config().Seed)
		case "s":
			m.reset(time.Now().UnixNano())
		}
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
	case TickMsg:
		if m.running || m.tickOnce {
			m.world.Advance(m.frame)
			m.record()
			m.tickOnce = false
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) reset(seed int64) {
	m.world.Reset(seed)
	m.world.Render(m.frame)
	m.history = m.history[:0]
	m.record()
}

func (m *Model) record() {
	if len(m.history) == historyCapacity {
		copy(m.history, m.history[1:])
		m.history = m.history[:historyCapacity-1]
	}
	m.history = append(m.history, float64(m.world.Population()))
}

// View renders the visible part of the grid plus the status lines.
func (m Model) View() string {
	var b strings.Builder
	reserved := 2
	if m.showGraph {
		reserved += graphHeight + 2
	}
	if m.showParams {
		reserved++
	}
	b.WriteString(m.renderGrid(m.cols, 2*max(m.rows-reserved, 1)))

	status := statusStyle.Render(fmt.Sprintf("gen %d  pop %d", m.world.Generation(), m.world.Population()))
	if !m.running {
		status += "  " + pausedStyle.Render("paused")
	}
	b.WriteString(status + "\n")

	if m.showParams {
		b.WriteString(helpStyle.Render(m.parameterLine()) + "\n")
	}

	if m.showGraph && len(m.history) > 1 {
		plot := asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(max(m.cols-12, 10)),
			asciigraph.Caption("population"))
		b.WriteString(graphStyle.Render(plot) + "\n")
	}
	b.WriteString(helpStyle.Render("space pause • n step • r reset • s reseed • g graph • p params • q quit"))
	return b.String()
}

func (m Model) parameterLine() string {
	var parts []string
	for _, group := range m.world.Parameters().Groups {
		for _, p := range group.Params {
			parts = append(parts, p.Key+"="+p.Value)
		}
	}
	return strings.Join(parts, "  ")
}

// renderGrid draws at most cols x rows cells from the top-left corner of the
// frame buffer.
func (m Model) renderGrid(cols, rows int) string {
	size := m.world.Size()
	cols = min(cols, size.W)
	rows = min(rows, size.H)

	var b strings.Builder
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			var key [8]byte
			top := (y*size.W + x) * 4
			copy(key[:4], m.frame[top:top+4])
			if y+1 < rows {
				bottom := ((y+1)*size.W + x) * 4
				copy(key[4:], m.frame[bottom:bottom+4])
			}
			b.WriteString(m.glyph(key))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// glyph renders one half-block cell, caching by its color pair. A zero
// bottom half (odd row count) leaves the background unset.
func (m Model) glyph(key [8]byte) string {
	if s, ok := m.glyphs[key]; ok {
		return s
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexRGB(key[:4])))
	if [4]byte(key[4:]) != ([4]byte{}) {
		style = style.Background(lipgloss.Color(hexRGB(key[4:])))
	}
	s := style.Render(halfBlock)
	m.glyphs[key] = s
	return s
}

func hexRGB(px []byte) string {
	return fmt.Sprintf("#%02x%02x%02x", px[0], px[1], px[2])
}

// Run starts the terminal host and blocks until the user quits.
func Run(world *crabs.World, tps int) error {
	_, err := tea.NewProgram(NewModel(world, tps), tea.WithAltScreen()).Run()
	return err
}
