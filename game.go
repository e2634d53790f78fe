package pullrefresh

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zoobzio/clockz"
)

const defaultWheelStep = 24.0 // pixels per wheel notch

// RunConfig configures the window and loop created by Run and NewGame.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowHUD bool
	Debug   bool
	// Background fills the screen before the draw callback. Nil leaves the
	// screen as Ebitengine cleared it.
	Background color.Color
}

// Game is an ebiten.Game that hosts a single Layout. It polls input, feeds
// the layout, drives an optional ScrollChild from the wheel, and advances
// the layout each tick.
type Game struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// WheelStep converts one wheel notch into pixels.
	WheelStep float64

	cfg    RunConfig
	layout *Layout
	input  *InputSource
	child  *ScrollChild

	onUpdate  func() error
	onDraw    func(screen *ebiten.Image)
	onPointer func(ev PointerEvent)

	runner          *TestRunner
	screenshotQueue []string
	hud             *ebiten.Image
}

// NewGame creates a Game around layout.
func NewGame(layout *Layout, cfg RunConfig) *Game {
	if cfg.Debug {
		layout.SetDebugMode(true)
	}
	return &Game{
		ScreenshotDir: "screenshots",
		WheelStep:     defaultWheelStep,
		cfg:           cfg,
		layout:        layout,
		input:         NewInputSource(clockz.RealClock),
	}
}

// HostedLayout returns the hosted layout.
func (g *Game) HostedLayout() *Layout { return g.layout }

// Input returns the input source, for injecting synthetic events.
func (g *Game) Input() *InputSource { return g.input }

// SetUpdateFunc sets a callback run at the end of every Update.
func (g *Game) SetUpdateFunc(fn func() error) { g.onUpdate = fn }

// SetDrawFunc sets the callback that draws the header and content.
func (g *Game) SetDrawFunc(fn func(screen *ebiten.Image)) { g.onDraw = fn }

// SetPointerFunc sets a callback for pointer events the layout did not
// consume, so the content can handle them.
func (g *Game) SetPointerFunc(fn func(ev PointerEvent)) { g.onPointer = fn }

// SetScrollChild routes wheel input through c.
func (g *Game) SetScrollChild(c *ScrollChild) { g.child = c }

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update.
func (g *Game) SetTestRunner(runner *TestRunner) { g.runner = runner }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.runner != nil {
		g.runner.step(g)
	}
	for _, ev := range g.input.Poll() {
		if !g.layout.HandlePointer(ev) && g.onPointer != nil {
			g.onPointer(ev)
		}
	}
	wy := g.input.Wheel()
	if g.child != nil {
		if wy != 0 {
			g.child.Scroll(int(math.Round(-wy * g.WheelStep)))
		}
		g.child.Update()
	}
	g.layout.Update(float32(1.0 / float64(ebiten.TPS())))
	if g.onUpdate != nil {
		return g.onUpdate()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	if g.onDraw != nil {
		g.onDraw(screen)
	}
	if g.cfg.ShowHUD {
		g.drawHUD(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. It resizes the hosted layout to the
// outside size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layout.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	if g.cfg.Title != "" {
		ebiten.SetWindowTitle(g.cfg.Title)
	}
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// Run hosts layout in a window with default callbacks.
func Run(layout *Layout, cfg RunConfig) error {
	return NewGame(layout, cfg).Run()
}
