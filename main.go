package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/burgerball/pkg/app"
	"github.com/gonewx/burgerball/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelID := flag.String("level", "", "level to start (e.g. 1-2), default continues from saved progress")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	scale := flag.Int("scale", app.DefaultScale, "screen pixels per arena unit")
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *levelID,
		Scale:   *scale,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowTitle("Burger Ball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
