package main

import (
	"fmt"
	"log"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pixeltiles/config"
	"github.com/milk9111/pixeltiles/editor"
	"github.com/milk9111/pixeltiles/grid"
	"golang.org/x/image/colornames"
)

// Game hosts one tile grid editor in an ebiten window.
type Game struct {
	cfg        config.Config
	configPath string
	input      *Input
	editor     *editor.Editor
	back       *editor.BackButton
	watcher    *config.Watcher
	setTitle   func(string)
	debug      bool

	width  int
	height int
}

// NewGame builds and mounts the editor. A non-empty configPath is watched
// and presentation changes are applied while the editor runs.
func NewGame(cfg config.Config, configPath string, debug bool) (*Game, error) {
	g, err := newGame(cfg, debug)
	if err != nil {
		return nil, err
	}
	g.setTitle = ebiten.SetWindowTitle
	g.back, err = editor.NewBackButton(cfg.Margin+4, cfg.Margin+4, g.editor.Back)
	if err != nil {
		return nil, err
	}
	if err := g.editor.Mount(); err != nil {
		return nil, err
	}
	if configPath != "" {
		w, err := config.Watch(configPath)
		if err != nil {
			log.Printf("config: not watching %s: %v", configPath, err)
		} else {
			g.watcher = w
			g.configPath = configPath
		}
	}
	return g, nil
}

// newGame wires the editor without touching the window or GPU.
func newGame(cfg config.Config, debug bool) (*Game, error) {
	geom, err := grid.NewGeometry(cfg.PanelPixels)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		input:  NewInput(cfg.Margin, cfg.Margin),
		debug:  debug,
		width:  cfg.PanelPixels + 2*cfg.Margin,
		height: cfg.PanelPixels + 2*cfg.Margin,
	}
	g.editor = editor.New(geom, editor.Options{
		GridPixels: cfg.GridPixels,
		GridColor:  cfg.GridRGBA(),
		LabelSize:  float64(cfg.LabelSize),
		OnChange:   g.editorChanged,
	})
	return g, nil
}

func (g *Game) editorChanged(e *editor.Editor) {
	if g.back != nil {
		g.back.Sync(e)
	}
	if g.setTitle != nil {
		g.setTitle(g.title())
	}
}

func (g *Game) title() string {
	if g.editor.Editing() {
		return fmt.Sprintf("%s: tile %d", g.cfg.Title, g.editor.Selected()+1)
	}
	return g.cfg.Title
}

func (g *Game) Update() error {
	g.input.Update()
	g.back.UI.Update()
	g.pollConfig()
	return g.step(ebuiinput.UIHovered)
}

// step applies one frame of input. uiHovered is true when the cursor is over
// an overlay widget.
func (g *Game) step(uiHovered bool) error {
	if g.input.QuitPressed {
		return ebiten.Termination
	}
	if g.input.BackPressed {
		g.editor.Back()
	}

	// Presses on the back button must not also land on the pixel underneath.
	// The button only exists in edit mode.
	blocked := g.editor.Editing() && uiHovered
	if g.input.PointerDown && !blocked && g.input.OnPanel(g.cfg.PanelPixels, g.cfg.GridPixels) {
		if g.debug {
			log.Printf("pointer down at (%d,%d)", g.input.PointerX, g.input.PointerY)
		}
		g.editor.PointerDown(g.input.PointerX, g.input.PointerY)
	}
	return nil
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case <-g.watcher.Events:
			next, err := config.Load(g.configPath)
			if err != nil {
				log.Printf("config: reload: %v", err)
				continue
			}
			if err := g.applyConfig(next); err != nil {
				log.Printf("config: apply: %v", err)
			}
		case err := <-g.watcher.Errors:
			log.Printf("config: watch: %v", err)
		default:
			return
		}
	}
}

// applyConfig takes the presentation settings of next. The panel size is
// fixed for the life of the window.
func (g *Game) applyConfig(next config.Config) error {
	if next.PanelPixels != g.cfg.PanelPixels || next.Margin != g.cfg.Margin {
		log.Printf("config: panel_pixels and margin changes need a restart")
	}
	g.cfg = g.cfg.WithPresentation(next)
	if err := g.editor.SetStyle(g.cfg.GridPixels, g.cfg.GridRGBA(), float64(g.cfg.LabelSize)); err != nil {
		return err
	}
	if g.setTitle != nil {
		g.setTitle(g.title())
	}
	log.Printf("config: reloaded %s", g.configPath)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Whitesmoke)

	// Frame the panel so its edge pixels read against the background.
	m := float32(g.cfg.Margin)
	p := float32(g.cfg.PanelPixels)
	b := float32(g.cfg.GridPixels)
	if b > 0 {
		vector.StrokeRect(screen, m-b/2, m-b/2, p+b, p+b, b, g.cfg.GridRGBA(), false)
	}

	if err := g.editor.Draw(screen, float64(g.cfg.Margin), float64(g.cfg.Margin)); err != nil {
		log.Printf("draw: %v", err)
	}
	g.back.UI.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close stops the config watcher and releases the editor's drawing surface.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	g.editor.Unmount()
}
