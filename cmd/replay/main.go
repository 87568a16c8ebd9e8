//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Vlad-Shcherbina/halite/internal/trace"
	"github.com/Vlad-Shcherbina/halite/internal/viewer"
)

func main() {
	scale := flag.Int("scale", 16, "pixel scale multiplier")
	fps := flag.Int("fps", 10, "playback frames per second")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: replay [-scale N] [-fps N] TRACE")
	}

	tr, err := trace.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if err := trace.Validate(tr); err != nil {
		log.Fatal(err)
	}
	if err := viewer.CheckDrawable(tr); err != nil {
		log.Fatal(err)
	}

	game := viewer.New(tr, *scale, *fps)

	ebiten.SetWindowTitle(fmt.Sprintf("halite replay — %s (%d frames)", flag.Arg(0), tr.NumFrames))
	ebiten.SetWindowSize(tr.Width**scale, tr.Height**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
