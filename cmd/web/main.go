package main

import (
	"log"

	"github.com/royalmatch/casino"
	"github.com/royalmatch/casino/server"
)

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("bad configuration: %s", err)
	}

	srv := server.NewServer(casino.NewInMemoryGameStore())
	srv.Addr = cfg.Addr
	srv.ReadTimeout = cfg.ReadTimeout
	srv.WriteTimeout = cfg.WriteTimeout
	srv.IdleTimeout = cfg.IdleTimeout

	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(srv.ListenAndServe())
}
