package main

import (
	"log"
	"net/http"

	"github.com/joeshaw/envdecode"
	"github.com/sirupsen/logrus"

	"github.com/dekarrin/playingsim/server"
)

type config struct {
	Addr string `env:"KLONDIKE_ADDR,default=:8000"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatal(err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	s := server.NewServer(server.NewInMemoryGameStore(), logger)

	logger.WithField("addr", cfg.Addr).Info("listening")
	log.Fatal(http.ListenAndServe(cfg.Addr, s))
}
