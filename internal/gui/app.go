package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/seesaw/internal/config"
	"github.com/san-kum/seesaw/internal/gui/layout"
	"github.com/san-kum/seesaw/internal/seesaw"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
	ColPlank   = rl.NewColor(150, 110, 70, 255)
	ColPivot   = rl.NewColor(90, 90, 90, 255)
)

const (
	windowWidth  = 1280
	windowHeight = 720
	maxTelemetry = 240
)

type App struct {
	Sim       *seesaw.Simulation
	Cfg       *config.Config
	Font      rl.Font
	Layout    layout.Layout
	Telemetry []float64 // displayed angle per frame

	hovering  bool
	hoverPos  float64
	asciiOnly bool // Font lacks the symbol glyphs
}

func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "seesaw")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono with the symbol glyphs. When it is not
// installed the raylib default font is used, which is ASCII only.
func loadFont() (rl.Font, bool) {
	glyphs := layout.Glyphs()
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, glyphs, int32(len(glyphs)))
	if font.Texture.ID == 0 {
		return rl.GetFontDefault(), false
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true
}

func NewApp(sim *seesaw.Simulation, cfg *config.Config) *App {
	font, symbols := loadFont()
	return &App{
		Sim:       sim,
		Cfg:       cfg,
		Font:      font,
		Telemetry: make([]float64, 0, maxTelemetry),
		asciiOnly: !symbols,
	}
}

// Run opens the window and blocks until it is closed.
func Run(sim *seesaw.Simulation, cfg *config.Config) {
	initWindow(cfg.Animation.FPS)
	defer rl.CloseWindow()
	app := NewApp(sim, cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.Layout = layout.New(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()), a.Cfg.UI.BaseWidth)

	mouse := rl.GetMousePosition()
	proj := seesaw.Project(float64(mouse.X), float64(mouse.Y), a.Layout.Stage, a.Sim.Angle())
	half := a.Sim.Params().HalfLength()
	a.hovering = proj.OnPlank(a.Cfg.Plank.Thickness * a.Layout.Scale)
	if a.hovering {
		a.hoverPos = proj.Position(half)
	}

	if a.hovering && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.Sim.Place(a.hoverPos)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Sim.Reset()
	}

	a.Sim.Frame()
	a.Telemetry = append(a.Telemetry, a.Sim.Angle())
	if len(a.Telemetry) > maxTelemetry {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawStage()
	a.DrawHUD()
	a.drawJournal()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	b := a.Sim.Balance()
	a.drawText("seesaw", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %d objects", len(a.Sim.Objects())), 140, 34, 16, ColText)

	y := 70
	a.drawText(fmt.Sprintf("LEFT   %3d kg", b.LeftWeight), 30, y, 16, ColAccent)
	a.drawText(fmt.Sprintf("NEXT   %3d kg", a.Sim.NextWeight()), 230, y, 16, colorOf(a.Sim.NextColor()))
	a.drawText(fmt.Sprintf("ANGLE  %5.1f°", a.Sim.Angle()), 430, y, 16, ColAccent)
	a.drawText(fmt.Sprintf("RIGHT  %3d kg", b.RightWeight), 630, y, 16, ColAccent)

	a.DrawTelemetry()

	sh := rl.GetScreenHeight()
	a.drawText("[CLICK] DROP  [R] RESET  [Q] QUIT", 30, int(sh)-40, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), int(rl.GetScreenWidth())-90, int(sh)-40, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	if a.asciiOnly {
		text = layout.ASCII(text)
	}
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX := 30
	rectY := int(rl.GetScreenHeight()) - 120
	width, height := 400, 60
	maxAngle := a.Sim.Params().MaxAngle

	rl.DrawLine(int32(rectX), int32(rectY+height/2), int32(rectX+width), int32(rectY+height/2), ColGrid)

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(maxTelemetry))*float32(width)
		norm := (val + maxAngle) / (2 * maxAngle)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("θ: %.1f° → %.1f°", a.Sim.Angle(), a.Sim.Target()), rectX+width+10, rectY+height/2-7, 14, ColText)
}

func (a *App) drawJournal() {
	x := int(a.Layout.Stage.Left + a.Layout.Stage.Width + 30)
	if x > int(rl.GetScreenWidth())-200 {
		return
	}
	a.drawText("LOG", x, 120, 16, ColSelect)
	y := 146
	limit := (int(rl.GetScreenHeight()) - 200) / 18
	for i, e := range a.Sim.Journal().Entries() {
		if i >= limit {
			break
		}
		a.drawText(e.String(), x, y, 12, ColText)
		y += 18
	}
}
