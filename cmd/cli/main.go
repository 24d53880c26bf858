package main

import (
	"log"
	"os"

	"github.com/joeshaw/envdecode"

	"github.com/dekarrin/playingsim"
	"github.com/dekarrin/playingsim/klondike"
	"github.com/dekarrin/playingsim/players"
)

type config struct {
	DrawCount int `env:"KLONDIKE_DRAW_COUNT,default=1"`
	PassLimit int `env:"KLONDIKE_PASS_LIMIT,default=0"`
	NumPiles  int `env:"KLONDIKE_NUM_PILES,default=7"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatal(err)
	}

	game, err := klondike.NewGame(klondike.Options{
		DrawCount: cfg.DrawCount,
		PassLimit: cfg.PassLimit,
		NumPiles:  cfg.NumPiles,
	})
	if err != nil {
		log.Fatal(err)
	}

	human := players.NewConsolePlayer("Player", os.Stdin, os.Stdout)
	session := playingsim.NewSession(game, human)

	if err := session.Play(); err != nil {
		log.Fatal(err)
	}

	if session.Game.State().Won() {
		players.SendText(os.Stdout, "You won in %d turns!\n", session.Game.Turns())
	}
}
