package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/exp/rand"

	"github.com/mikenye/skysnake/internal/config"
	"github.com/mikenye/skysnake/internal/decor"
	"github.com/mikenye/skysnake/internal/input"
	"github.com/mikenye/skysnake/internal/loop"
	"github.com/mikenye/skysnake/internal/render"
	"github.com/mikenye/skysnake/internal/session"
)

// the state of the game (which screen/mode)
type gameState uint8

// Game states
const (

	// in-game - user steers the snake and eats food until it bites itself
	StateInGame gameState = iota + 1

	// game-over notice - ticks are suspended until the player dismisses it
	StateGameOver
)

// keyboard keys for each direction, in the order their presses are applied
var directionKeys = []struct {
	key ebiten.Key
	dir input.Direction
}{
	{ebiten.KeyArrowUp, input.Up},
	{ebiten.KeyArrowDown, input.Down},
	{ebiten.KeyArrowLeft, input.Left},
	{ebiten.KeyArrowRight, input.Right},
	{ebiten.KeyW, input.Up},
	{ebiten.KeyS, input.Down},
	{ebiten.KeyA, input.Left},
	{ebiten.KeyD, input.Right},
}

// directions whose key saw edge this frame, in directionKeys order
func keyEdges(edge func(ebiten.Key) bool) []input.Direction {
	var ds []input.Direction
	for _, k := range directionKeys {
		if edge(k.key) {
			ds = append(ds, k.dir)
		}
	}
	return ds
}

// game object
type Game struct {

	// state of game
	state gameState

	// the simulation, decorations and HUD
	session *session.Session

	// everything is painted on a persistent back buffer once per game tick,
	// so the fireworks' translucent overdraw leaves trails
	backbuffer *ebiten.Image
	canvas     *render.Canvas

	// size of the window in pixels, as last reported by Layout
	width, height int

	// 100ms game tick and 500ms firework roll, counted in ebiten frames

	ticks  *loop.Pacer
	spawns *loop.Pacer

	// direction being held through the on-screen panel (mouse or touch)
	pointerDir input.Direction
}

// handle keyboard and on-screen panel input
func (g *Game) HandleInput() {
	g.pressKeys(inpututil.IsKeyJustPressed)

	// panel buttons count as key presses until the pointer lets go
	if x, y, ok := justPointed(); ok {
		if d, hit := g.session.Panel().Hit(float64(x), float64(y)); hit {
			g.session.Press(d)
			g.pointerDir = d
		}
	}

	g.releaseKeys(inpututil.IsKeyJustReleased, pointerReleased())
}

// press the direction of every key that went down this frame
func (g *Game) pressKeys(justPressed func(ebiten.Key) bool) {
	for _, d := range keyEdges(justPressed) {
		g.session.Press(d)
	}
}

// clear the highlight of every key that came up this frame, and of the
// panel button once the pointer has let go
func (g *Game) releaseKeys(justReleased func(ebiten.Key) bool, pointerUp bool) {
	for _, d := range keyEdges(justReleased) {
		g.session.Release(d)
	}
	if g.pointerDir != input.None && pointerUp {
		g.session.Release(g.pointerDir)
		g.pointerDir = input.None
	}
}

// position of a click or touch that started this frame
func justPointed() (x, y int, ok bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y = ebiten.TouchPosition(id)
		return x, y, true
	}
	return 0, 0, false
}

// did every pointer just let go?
func pointerReleased() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return len(ebiten.AppendTouchIDs(nil)) == 0
}

// did the player dismiss the game-over notice?
func acknowledged() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	_, _, ok := justPointed()
	return ok
}

// update function for when in game
func (g *Game) UpdateInGame() error {
	g.HandleInput()

	// decoration timer runs independently of the game tick
	if g.spawns.Step() {
		g.session.Spawn()
	}

	if g.ticks.Step() {
		g.session.Tick(g.canvas.Target(g.backbuffer))
		if _, over := g.session.Over(); over {
			g.ChangeState(StateGameOver)
		}
	}
	return nil
}

// update function for when in game over state
func (g *Game) UpdateGameOver() error {

	// keys let go during the notice must not stay lit into the next round
	g.releaseKeys(inpututil.IsKeyJustReleased, pointerReleased())

	if acknowledged() {
		g.ChangeState(StateInGame)
	}
	return nil
}

// update function, ebiten calls this every tick (60 times per second)
func (g *Game) Update() error {

	// Press Q to quit regardless of state
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.resizeBackbuffer()

	switch g.state {
	case StateInGame:
		return g.UpdateInGame()
	case StateGameOver:
		return g.UpdateGameOver()
	}
	return nil
}

// draw function, ebiten calls this every frame to render the screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.backbuffer != nil {
		screen.DrawImage(g.backbuffer, &ebiten.DrawImageOptions{})
	}
	if g.state == StateGameOver {
		g.session.DrawModal(g.canvas.Target(screen))
	}
}

// layout function, called by Ebiten to size window & content
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.width, g.height
}

// recreate the back buffer and re-grid the board if the window changed size
func (g *Game) resizeBackbuffer() {
	if g.backbuffer != nil {
		b := g.backbuffer.Bounds()
		if b.Dx() == g.width && b.Dy() == g.height {
			return
		}
		g.backbuffer.Deallocate()
	}
	g.backbuffer = ebiten.NewImage(g.width, g.height)
	g.session.Resize(g.width, g.height)
}

// move between game states
func (g *Game) ChangeState(s gameState) {
	switch s {
	case StateInGame:
		g.session.Acknowledge()
		g.ticks.Reset()
		g.spawns.Reset()
	case StateGameOver:
	}
	g.state = s
}

// create a new game object
func NewGame(cfg config.Config) (*Game, error) {
	font, err := render.LoadFace()
	if err != nil {
		return nil, err
	}

	seed := cfg.SeedOrNow()
	rng := rand.New(rand.NewSource(seed))

	backdrop, err := decor.New(cfg.Backdrop, cfg.Width, cfg.Height, cfg.SpawnChance, rng)
	if err != nil {
		return nil, err
	}

	g := Game{
		state: StateInGame,
		session: session.New(session.Options{
			TileEdge:  cfg.TileEdge,
			ScoreStep: cfg.ScoreStep,
			Title:     cfg.Title,
			Width:     cfg.Width,
			Height:    cfg.Height,
		}, backdrop, rng),
		canvas: render.NewCanvas(font),
		width:  cfg.Width,
		height: cfg.Height,
		ticks:  loop.NewPacer(ebiten.DefaultTPS, cfg.TickPeriod()),
		spawns: loop.NewPacer(ebiten.DefaultTPS, cfg.SpawnPeriod()),
	}

	log.Printf("backdrop %s, seed %d, window %dx%d, tile %dpx", cfg.Backdrop, seed, cfg.Width, cfg.Height, cfg.TileEdge)
	return &g, nil
}

var _ session.Surface = (*render.Canvas)(nil)

// main function
func main() {
	fs := flag.NewFlagSet("snake", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}

	// create new game object
	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// set up game window
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// start game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
