package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/seesaw/internal/seesaw"
)

const (
	panelWidth      = 46
	canvasOriginX   = 2
	canvasOriginY   = 3
	baseCells       = 68
	minCells        = 24
	historyCapacity = 180
	journalLines    = 8

	// plank geometry in sub-pixels
	hitTolerance   = 6.0
	plankHalfThick = 1
	pivotHeight    = 6
)

type FrameMsg time.Time

type Options struct {
	FPS   int
	Theme string
}

// Model is the bubbletea front end for a Simulation.
type Model struct {
	sim      *seesaw.Simulation
	fps      int
	canvas   *Canvas
	width    int
	height   int
	preview  bool
	hoverPos float64
	keyboard bool
	cursor   float64
	history  []float64
	showHelp bool
}

func NewModel(sim *seesaw.Simulation, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}
	m := Model{
		sim:     sim,
		fps:     opts.FPS,
		history: make([]float64, 0, historyCapacity),
	}
	m.resize(80, 24)
	return m
}

// Run blocks until the user quits.
func Run(sim *seesaw.Simulation, opts Options) error {
	p := tea.NewProgram(NewModel(sim, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		switch {
		case msg.Action == tea.MouseActionMotion:
			m.keyboard = false
			m.hover(msg.X, msg.Y)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.keyboard = false
			m.click(msg.X, msg.Y)
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case FrameMsg:
		m.sim.Frame()
		m.history = append(m.history, m.sim.Angle())
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.sim.Params().HalfLength() / 20
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.sim.Reset()
		m.preview = false
	case "left", "h":
		m.moveCursor(-step)
	case "right", "l":
		m.moveCursor(step)
	case " ", "enter":
		switch {
		case m.keyboard:
			m.sim.Place(m.cursor)
		case m.preview:
			m.sim.Place(m.hoverPos)
		}
	case "esc":
		m.keyboard = false
	case "t":
		NextTheme()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) moveCursor(d float64) {
	half := m.sim.Params().HalfLength()
	if !m.keyboard {
		m.keyboard = true
		m.preview = false
	}
	m.cursor = seesaw.Clamp(m.cursor+d, -half, half)
}

// resize scales the canvas width by min(available/base, 1), never below a
// usable minimum.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	available := float64(w - panelWidth - 2*canvasOriginX)
	scale := math.Min(available/baseCells, 1)
	cw := int(baseCells * scale)
	if cw < minCells {
		cw = minCells
	}
	m.canvas = NewCanvas(cw, m.canvasRows(cw, h))
	m.preview = false
}

func (m *Model) canvasRows(cw, termHeight int) int {
	maxAngle := m.sim.Params().MaxAngle * math.Pi / 180
	reach := float64(cw)*math.Sin(maxAngle) + float64(2*objectRadius(seesaw.MaxWeight)+plankHalfThick+2)
	rows := int(math.Ceil(2 * reach / 4))
	if limit := termHeight - canvasOriginY - 2; limit > 6 && rows > limit {
		rows = limit
	}
	return rows
}

func (m *Model) rect() seesaw.Rect {
	w, h := m.canvas.PixelSize()
	return seesaw.Rect{Width: float64(w), Height: float64(h)}
}

// toPixel maps a terminal cell to the centre of its braille block.
func toPixel(cellX, cellY int) (float64, float64) {
	return float64((cellX-canvasOriginX)*2 + 1), float64((cellY-canvasOriginY)*4 + 2)
}

func (m *Model) project(cellX, cellY int) (seesaw.Projection, bool) {
	x, y := toPixel(cellX, cellY)
	p := seesaw.Project(x, y, m.rect(), m.sim.Angle())
	return p, p.OnPlank(hitTolerance)
}

// hover shows the preview over the plank and hides it anywhere else;
// terminals report no leave event, so leaving the plank is the leave.
func (m *Model) hover(cellX, cellY int) {
	p, ok := m.project(cellX, cellY)
	m.preview = ok
	if ok {
		m.hoverPos = p.Position(m.sim.Params().HalfLength())
	}
}

func (m *Model) click(cellX, cellY int) {
	p, ok := m.project(cellX, cellY)
	if !ok {
		return
	}
	m.sim.Place(p.Position(m.sim.Params().HalfLength()))
	m.hover(cellX, cellY)
}

func objectRadius(weight int) int {
	return 2 + weight/3
}

func (m *Model) draw() {
	c := m.canvas
	c.Clear()
	r := m.rect()
	half := m.sim.Params().HalfLength()
	angle := m.sim.Angle()
	theme := CurrentTheme

	px, py := r.Pivot()
	c.DrawLine(int(px), int(py)+plankHalfThick, int(px)-pivotHeight/2, int(py)+pivotHeight, theme.Pivot)
	c.DrawLine(int(px), int(py)+plankHalfThick, int(px)+pivotHeight/2, int(py)+pivotHeight, theme.Pivot)
	c.DrawLine(int(px)-pivotHeight/2, int(py)+pivotHeight, int(px)+pivotHeight/2, int(py)+pivotHeight, theme.Pivot)

	for off := -plankHalfThick; off <= plankHalfThick; off++ {
		x0, y0 := seesaw.PlankPoint(-half, float64(off), half, r, angle)
		x1, y1 := seesaw.PlankPoint(half, float64(off), half, r, angle)
		c.DrawLine(round(x0), round(y0), round(x1), round(y1), theme.Plank)
	}

	for _, o := range m.sim.Objects() {
		rad := objectRadius(o.Weight)
		x, y := seesaw.PlankPoint(o.Position, float64(plankHalfThick+1+rad), half, r, angle)
		c.FillCircle(round(x), round(y), rad, lipgloss.Color(seesaw.HexColor(o.Color, "#cccccc")))
	}

	if pos, ok := m.previewPosition(); ok {
		rad := objectRadius(m.sim.NextWeight())
		x, y := seesaw.PlankPoint(pos, float64(plankHalfThick+1+rad), half, r, angle)
		c.StrokeCircle(round(x), round(y), rad, lipgloss.Color(seesaw.HexColor(m.sim.NextColor(), "#cccccc")))
	}
}

func (m *Model) previewPosition() (float64, bool) {
	switch {
	case m.keyboard:
		return m.cursor, true
	case m.preview:
		return m.hoverPos, true
	}
	return 0, false
}

func round(v float64) int { return int(math.Round(v)) }

func (m Model) View() string {
	m.draw()
	theme := CurrentTheme
	b := m.sim.Balance()

	title := GradientText("SEESAW", theme.Primary, theme.Plank) + "  " +
		lipgloss.NewStyle().Foreground(theme.Muted).Render("torque balance toy")
	stats := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		labelStyle.Width(0).Render("L"), valueStyle.Render(fmt.Sprintf("%d kg", b.LeftWeight)),
		labelStyle.Width(0).Render("next"), lipgloss.NewStyle().Foreground(lipgloss.Color(seesaw.HexColor(m.sim.NextColor(), "#cccccc"))).Render(fmt.Sprintf("%d kg", m.sim.NextWeight())),
		labelStyle.Width(0).Render("θ"), valueStyle.Render(fmt.Sprintf("%.1f°", m.sim.Angle())),
		labelStyle.Width(0).Render("R"), valueStyle.Render(fmt.Sprintf("%d kg", b.RightWeight)))

	left := make([]string, 0, canvasOriginY+m.canvas.Height)
	left = append(left, "  "+title, "  "+stats, "")
	for _, line := range m.canvas.Lines() {
		left = append(left, strings.Repeat(" ", canvasOriginX)+line)
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), panelStyle.Render(m.panel()))
	help := KeyHint.Render("  click/space: drop  ←→: aim  r: reset  t: theme  ?: help  q: quit")
	return main + "\n" + help
}

func (m Model) panel() string {
	b := m.sim.Balance()
	var s strings.Builder

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Left", fmt.Sprintf("%d kg  τ %.0f", b.LeftWeight, b.LeftTorque))
	row("Right", fmt.Sprintf("%d kg  τ %.0f", b.RightWeight, b.RightTorque))
	row("Angle", fmt.Sprintf("%.1f° → %.1f°", m.sim.Angle(), b.Target))
	row("Objects", fmt.Sprintf("%d", len(m.sim.Objects())))
	s.WriteString(BalanceBar(b.LeftWeight, b.RightWeight, 24) + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.LowerBound(-m.sim.Params().MaxAngle),
			asciigraph.UpperBound(m.sim.Params().MaxAngle),
			asciigraph.Caption("angle"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	if m.showHelp {
		s.WriteString(helpText)
		return s.String()
	}

	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent).Render("LOG") + "\n")
	for i, e := range m.sim.Journal().Entries() {
		if i >= journalLines {
			break
		}
		line := e.String()
		if w := panelWidth - 6; len([]rune(line)) > w {
			line = string([]rune(line)[:w-1]) + "…"
		}
		s.WriteString(logStyle.Render(line) + "\n")
	}
	return s.String()
}

const helpText = `KEYS
  mouse      preview / click to drop
  ← → h l    aim keyboard cursor
  space ent  drop at cursor
  esc        back to mouse aim
  r          reset plank
  t          cycle theme
  ?          toggle help
  q          quit
`
