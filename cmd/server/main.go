package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Izoret/Belote-WS/internal/config"
	"github.com/Izoret/Belote-WS/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	shutdownTimeout := flag.Duration("shutdown-timeout", 5*time.Minute, "how long to wait for running games on shutdown")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("shutting down...")
		srv.GracefulShutdown(*shutdownTimeout)
		os.Exit(0)
	}()

	log.Println("starting Belote server...")
	if err := srv.Start(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
