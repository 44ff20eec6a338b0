// Package main runs the line puncher animation inside a terminal.
//
// Usage:
//
//	go run ./cmd/puncher_tui [flags]
//
// Flags:
//
//	--config <path>   Puncher YAML config (default: built-in defaults)
//	--log <path>      Write logs to this file (default: discard)
//
// Controls:
//
//	Mouse Click / Space  - Tap (advance one node cycle)
//	q / Escape / Ctrl-C  - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/linepuncher/pkg/config"
	"github.com/decker502/linepuncher/pkg/game"
	"github.com/decker502/linepuncher/pkg/render"
	"github.com/gdamore/tcell/v2"
)

var (
	configFlag = flag.String("config", "", "Path to a puncher YAML config")
	logFlag    = flag.String("log", "", "Write logs to this file")
)

// terminalHost owns the screen and the renderer; every mutation happens on the run loop.
type terminalHost struct {
	screen   tcell.Screen
	canvas   *render.TerminalCanvas
	renderer *game.Renderer
	status   tcell.Style

	mouseDown bool
}

func newTerminalHost(screen tcell.Screen, cfg *config.PuncherConfig) *terminalHost {
	return &terminalHost{
		screen:   screen,
		canvas:   render.NewTerminalCanvas(screen, cfg.BackRGBA()),
		renderer: game.NewRenderer(cfg),
		status:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
	}
}

func (h *terminalHost) draw() {
	cols, rows := h.screen.Size()
	h.canvas.Clear()
	h.renderer.Render(h.canvas, float64(cols), float64(rows))

	s := h.renderer.Status()
	line := fmt.Sprintf(" node %d  scale %.2f  sweep %+d  [click/space: tap, q: quit] ", s.Index, s.Scale, s.SweepDir)
	for i, r := range line {
		if i >= cols {
			break
		}
		h.screen.SetContent(i, 0, r, nil, h.status)
	}
	h.screen.Show()
}

func (h *terminalHost) tap() {
	h.renderer.HandleTap(h.draw)
}

// handleEvent returns false when the user asked to quit.
func (h *terminalHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				h.tap()
			}
		}

	case *tcell.EventMouse:
		// Only the press edge counts as a tap
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !h.mouseDown {
			h.tap()
		}
		h.mouseDown = pressed

	case *tcell.EventResize:
		h.screen.Sync()
		h.draw()
	}
	return true
}

func (h *terminalHost) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(h.screen, eventChan, done)

	last := time.Now()
	h.draw()

	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			h.renderer.Advance(now.Sub(last))
			last = now
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func loadConfig(path string) (*config.PuncherConfig, error) {
	if path == "" {
		return config.DefaultPuncherConfig(), nil
	}
	return config.LoadConfig(path)
}

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	host := newTerminalHost(screen, cfg)
	host.run()
	screen.Fini()
}
