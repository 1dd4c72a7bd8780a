package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wrenkin/starfx/pkg/app"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable log output")
	dataDir := flag.String("data", "data", "directory with effect and trail data files")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose: *verbose,
		DataDir: *dataDir,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("starfx")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
