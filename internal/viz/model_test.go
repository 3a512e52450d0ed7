package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/seesaw/internal/seesaw"
)

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

// cellFor returns the terminal cell over the plank at position.
func cellFor(m Model, position float64) (int, int) {
	half := m.sim.Params().HalfLength()
	x, y := seesaw.PlankPoint(position, 0, half, m.rect(), m.sim.Angle())
	return int(x)/2 + canvasOriginX, int(y)/4 + canvasOriginY
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

var _ = Describe("Model", func() {
	var (
		sim *seesaw.Simulation
		m   Model
	)

	BeforeEach(func() {
		sim = seesaw.New(seesaw.DefaultParams(), seesaw.WithSeed(7))
		m = send(NewModel(sim, Options{FPS: 60}), tea.WindowSizeMsg{Width: 120, Height: 40})
	})

	Describe("resizing", func() {
		It("uses the full base width when there is room", func() {
			Expect(m.canvas.Width).To(Equal(baseCells))
		})

		It("scales the canvas down on narrow terminals", func() {
			m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
			Expect(m.canvas.Width).To(BeNumerically("<", baseCells))
			Expect(m.canvas.Width).To(BeNumerically(">=", 100-panelWidth-2*canvasOriginX-1))
		})

		It("never goes below the minimum width", func() {
			m = send(m, tea.WindowSizeMsg{Width: 50, Height: 20})
			Expect(m.canvas.Width).To(Equal(minCells))
		})
	})

	Describe("clicking", func() {
		It("drops the pending object where the plank was hit", func() {
			weight := sim.NextWeight()
			m = send(m, click(cellFor(m, 100)))

			objs := sim.Objects()
			Expect(objs).To(HaveLen(1))
			Expect(objs[0].Position).To(BeNumerically("~", 100, 4))
			Expect(objs[0].Weight).To(Equal(weight))
			Expect(sim.Target()).To(BeNumerically(">", 0))
		})

		It("drops on the left side for negative positions", func() {
			m = send(m, click(cellFor(m, -150)))
			Expect(sim.Objects()).To(HaveLen(1))
			Expect(sim.Objects()[0].Side()).To(Equal("L"))
		})

		It("ignores clicks away from the plank", func() {
			m = send(m, click(canvasOriginX+m.canvas.Width/2, canvasOriginY))
			Expect(sim.Objects()).To(BeEmpty())
		})

		It("ignores clicks past the plank ends", func() {
			_, y := cellFor(m, 0)
			m = send(m, click(canvasOriginX+m.canvas.Width+4, y))
			Expect(sim.Objects()).To(BeEmpty())
		})
	})

	Describe("hovering", func() {
		It("shows a preview over the plank", func() {
			m = send(m, motion(cellFor(m, -60)))
			pos, ok := m.previewPosition()
			Expect(ok).To(BeTrue())
			Expect(pos).To(BeNumerically("~", -60, 4))
		})

		It("hides the preview off the plank", func() {
			m = send(m, motion(cellFor(m, -60)))
			m = send(m, motion(canvasOriginX, canvasOriginY))
			_, ok := m.previewPosition()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("keys", func() {
		It("drops at the keyboard cursor", func() {
			for i := 0; i < 5; i++ {
				m = send(m, tea.KeyMsg{Type: tea.KeyRight})
			}
			m = send(m, tea.KeyMsg{Type: tea.KeySpace})
			Expect(sim.Objects()).To(HaveLen(1))
			Expect(sim.Objects()[0].Position).To(Equal(50.0))
		})

		It("keeps the cursor on the plank", func() {
			for i := 0; i < 40; i++ {
				m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
			}
			Expect(m.cursor).To(Equal(-200.0))
		})

		It("does nothing on space without an aim", func() {
			m = send(m, tea.KeyMsg{Type: tea.KeySpace})
			Expect(sim.Objects()).To(BeEmpty())
		})

		It("resets the plank", func() {
			m = send(m, click(cellFor(m, 100)))
			m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
			Expect(sim.Objects()).To(BeEmpty())
			Expect(sim.Target()).To(BeZero())
			Expect(sim.Journal().Entries()[0].Text).To(Equal("Reset simulation"))
		})

		It("cycles the theme", func() {
			before := CurrentTheme.Name
			m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
			Expect(CurrentTheme.Name).NotTo(Equal(before))
			SetTheme(before)
		})

		It("quits on q", func() {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
			Expect(cmd).NotTo(BeNil())
			Expect(cmd()).To(Equal(tea.Quit()))
		})
	})

	Describe("frames", func() {
		It("eases the angle toward the target and keeps ticking", func() {
			sim.Place(150)
			next, cmd := m.Update(FrameMsg(time.Now()))
			m = next.(Model)
			Expect(cmd).NotTo(BeNil())
			Expect(sim.Angle()).To(BeNumerically(">", 0))
			Expect(sim.Angle()).To(BeNumerically("<", sim.Target()))
			Expect(m.history).To(HaveLen(1))
		})

		It("bounds the angle history", func() {
			for i := 0; i < historyCapacity+20; i++ {
				m = send(m, FrameMsg(time.Now()))
			}
			Expect(m.history).To(HaveLen(historyCapacity))
		})
	})

	Describe("view", func() {
		It("lists the newest journal line", func() {
			sim.Place(-40)
			out := m.View()
			Expect(out).To(ContainSubstring("Drop w="))
		})

		It("places the canvas below the header rows", func() {
			lines := strings.Split(m.View(), "\n")
			Expect(len(lines)).To(BeNumerically(">", canvasOriginY+m.canvas.Height-1))
		})
	})
})
