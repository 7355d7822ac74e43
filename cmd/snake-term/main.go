// snake-term plays the game in a terminal, one character cell standing in
// for a 10x20 pixel block.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/mikenye/skysnake/internal/config"
	"github.com/mikenye/skysnake/internal/decor"
	"github.com/mikenye/skysnake/internal/loop"
	"github.com/mikenye/skysnake/internal/session"
	"github.com/mikenye/skysnake/internal/term"
)

var _ session.Surface = (*term.Canvas)(nil)

func main() {
	fs := flag.NewFlagSet("snake-term", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	logPath := fs.String("log", "", "append log output to this file (the terminal is busy)")
	fs.Parse(os.Args[1:])

	// stderr would scribble over the screen
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := flags.Config()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		log.Print(err)
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func run(cfg config.Config) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := scr.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer scr.Fini()
	scr.HideCursor()

	canvas := term.NewCanvas(scr.Size())
	width, height := canvas.Size()

	seed := cfg.SeedOrNow()
	rng := rand.New(rand.NewSource(seed))

	backdrop, err := decor.New(cfg.Backdrop, width, height, cfg.SpawnChance, rng)
	if err != nil {
		return err
	}
	sess := session.New(session.Options{
		TileEdge:  cfg.TileEdge,
		ScoreStep: cfg.ScoreStep,
		Title:     cfg.Title,
		Width:     width,
		Height:    height,
	}, backdrop, rng)
	log.Printf("backdrop %s, seed %d, terminal %dx%d px, tile %dpx", cfg.Backdrop, seed, width, height, cfg.TileEdge)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// terminal events are turned into closures so that the scheduler
	// goroutine is the only one touching the session
	events := make(chan func())
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			fn := handle(ev, scr, canvas, sess, cancel)
			if fn == nil {
				continue
			}
			select {
			case events <- fn:
			case <-ctx.Done():
				return
			}
		}
	}()

	sched := loop.NewScheduler()
	sched.Every(cfg.TickPeriod(), func() {
		// terminals report no key releases, so a press lasts one tick
		if sess.Tick(canvas) {
			sess.ReleaseAll()
		}
		sess.DrawModal(canvas)
		canvas.Flush(scr)
	})
	sched.Every(cfg.SpawnPeriod(), func() {
		sess.Spawn()
	})

	err = sched.Run(ctx, events)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// handle turns a terminal event into work for the game loop
func handle(ev tcell.Event, scr tcell.Screen, canvas *term.Canvas, sess *session.Session, quit context.CancelFunc) func() {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return func() {
			scr.Sync()
			canvas.Resize(cols, rows)
			sess.Resize(canvas.Size())
		}
	case *tcell.EventKey:
		act, d := term.Classify(ev)
		switch act {
		case term.ActTurn:
			return func() { sess.Press(d) }
		case term.ActAcknowledge:
			return func() { sess.Acknowledge() }
		case term.ActQuit:
			quit()
		}
	}
	return nil
}
