package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pigroll/audio"
	"github.com/lixenwraith/pigroll/config"
	"github.com/lixenwraith/pigroll/engine"
	"github.com/lixenwraith/pigroll/events"
	"github.com/lixenwraith/pigroll/input"
	"github.com/lixenwraith/pigroll/random"
	"github.com/lixenwraith/pigroll/render"
	"github.com/lixenwraith/pigroll/stream"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/pigroll.log")
	seedFlag    = flag.Uint64("seed", 0, "RNG seed (0 = random)")
	listenFlag  = flag.String("listen", "", "Serve the spectator websocket on this address, e.g. :8080")
	noAudioFlag = flag.Bool("no-audio", false, "Disable sound")
)

// game wires the controller to the terminal, audio and spectator stream
type game struct {
	cfg        config.Config
	screen     tcell.Screen
	controller *engine.Controller
	router     *events.Router
	renderer   *render.TerminalRenderer
	keys       *input.KeyTable
	sound      *audio.SoundManager
	hub        *stream.Hub
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("pigroll: %v", err)
	}
	applyFlags(&cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if cfg.Seed, err = random.Resolve(cfg.Seed); err != nil {
		config.Exitf("pigroll: %v", err)
	}
	log.Printf("Seed %d", cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		config.Exitf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		config.Exitf("Failed to initialize screen: %v", err)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPIGROLL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	g := newGame(cfg, screen)
	defer g.sound.Cleanup()

	if cfg.Listen != "" {
		srv := g.serveStream(cfg.Listen)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			srv.Shutdown(ctx)
			g.hub.Close()
		}()
	}

	g.run()
}

// applyFlags lets command-line flags override the environment
func applyFlags(cfg *config.Config) {
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *listenFlag != "" {
		cfg.Listen = *listenFlag
	}
	if *noAudioFlag {
		cfg.Audio = false
	}
}

func newGame(cfg config.Config, screen tcell.Screen) *game {
	controller := engine.NewController(cfg.Match())
	keys := input.DefaultKeyTable()
	help := keys.Help(input.IntentToss, input.IntentStop, input.IntentReset, input.IntentToggleMute, input.IntentQuit)
	w, h := screen.Size()

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	router := events.NewRouter(controller.Events())
	router.Register(sound)

	return &game{
		cfg:        cfg,
		screen:     screen,
		controller: controller,
		router:     router,
		renderer:   render.NewTerminalRenderer(w, h, help),
		keys:       keys,
		sound:      sound,
	}
}

// serveStream starts the spectator websocket on addr
func (g *game) serveStream(addr string) *http.Server {
	g.hub = stream.NewHub()
	g.router.Register(g.hub)

	mux := http.NewServeMux()
	mux.Handle("/stream", g.hub)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Stream server error: %v", err)
		}
	}()
	log.Printf("Streaming snapshots on ws://%s/stream", addr)
	return srv
}

// run is the frame loop; it returns when the player quits or the terminal closes
func (g *game) run() {
	eventChan := make(chan tcell.Event, 64)
	// Input polling in its own goroutine since PollEvent blocks
	go func() {
		defer func() {
			if r := recover(); r != nil {
				g.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(g.cfg.FrameInterval)
	defer frameTicker.Stop()
	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), g.cfg.MaxDelta)
	var lastStream time.Time

	g.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handle(g.keys.Translate(ev)) {
				return
			}
			// Route input-triggered events without waiting for the next frame
			g.router.DispatchAll()
			g.draw()

		case now := <-frameTicker.C:
			g.controller.Tick(clock.Delta())
			g.router.DispatchAll()
			g.draw()

			if g.hub != nil && now.Sub(lastStream) >= g.cfg.StreamInterval {
				lastStream = now
				g.hub.Publish(g.controller.Snapshot())
			}
		}
	}
}

// handle applies one intent; false means quit
func (g *game) handle(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentToss:
		g.controller.Toss()
	case input.IntentStop:
		g.controller.Stop()
	case input.IntentReset:
		g.controller.Reset()
	case input.IntentToggleMute:
		muted := g.sound.ToggleMute()
		log.Printf("Sound muted: %v", muted)
	case input.IntentResize:
		g.renderer.Resize(in.Width, in.Height)
		g.screen.Sync()
	}
	return true
}

func (g *game) draw() {
	g.renderer.RenderFrame(g.controller.Snapshot(), g.sound.IsMuted())
	g.renderer.Present(g.screen)
}
