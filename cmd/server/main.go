package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"monsters-fight/internal/config"
	"monsters-fight/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if err := server.EnsureHostKey(cfg.HostKeyPath); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	listenAddr := cfg.ListenAddr()
	sshServer := server.NewSSHServer(listenAddr, cfg.HostKeyPath, server.SeededSources(cfg.Seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := sshServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting monsters fight: connect with ssh -p <port> YourName@localhost on %s", listenAddr)
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
	// Start returns as soon as the listener closes; live games are still
	// finishing inside Shutdown.
	<-done
	log.Println("Server stopped")
}
