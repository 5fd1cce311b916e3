package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/user-none/vitalink/ui"
	"github.com/user-none/vitalink/ui/style"
)

func main() {
	scale := flag.Int("scale", 1, "window scale factor")
	flag.Parse()

	if *scale < 1 {
		*scale = 1
	}

	app, err := ui.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer app.Shutdown()

	ebiten.SetWindowSize(style.ScreenWidth**scale, style.ScreenHeight**scale)
	ebiten.SetWindowTitle("VitaLink")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(style.ScreenWidth/2, style.ScreenHeight/2, -1, -1)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
