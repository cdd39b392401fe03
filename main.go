package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixeltiles/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config file overriding the embedded defaults; reloaded on change")
	panel := flag.Int("panel", 0, "panel side length in pixels (overrides config)")
	debug := flag.Bool("debug", false, "log every pointer event")
	flag.Parse()

	log.Println("pixeltiles starting...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *panel != 0 {
		cfg.PanelPixels = *panel
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid -panel: %v", err)
		}
	}

	game, err := NewGame(cfg, *configPath, *debug)
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}

	ebiten.SetWindowSize(game.Layout(0, 0))
	ebiten.SetWindowTitle(cfg.Title)

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
