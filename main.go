package main

import (
	"flag"
	"log"

	"github.com/automoto/paddleball/config"
	"github.com/automoto/paddleball/fonts"
	"github.com/automoto/paddleball/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	ShouldClose() bool
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	if err := fonts.Load(goregular.TTF); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	return &Game{
		scene: scenes.NewCourtScene(config.Debug.Seed),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.ShouldClose() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", config.Debug.ShowOverlay, "Draw collision outlines and loop timing (toggle with F3)")
	seed := flag.Uint64("seed", config.Debug.Seed, "Bounce perturbation seed (0 = time based)")
	flag.Parse()

	config.Debug.ShowOverlay = *debug
	config.Debug.Seed = *seed

	log.Printf("Starting %s (%dx%d @ %d TPS)", config.C.Title, config.C.Width, config.C.Height, config.C.TPS)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
