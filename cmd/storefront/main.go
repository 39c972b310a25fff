package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jrammler/storefront/internal/backend"
	"github.com/jrammler/storefront/internal/config"
	"github.com/jrammler/storefront/internal/controller/web"
	"github.com/jrammler/storefront/internal/service"
	"github.com/jrammler/storefront/internal/service/auth"
	"github.com/jrammler/storefront/internal/storage"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) <= 1 {
		usageExit()
	}
	switch os.Args[1] {
	case "serve":
		if len(os.Args) > 3 {
			usageExit()
		}
		addr := ""
		if len(os.Args) == 3 {
			addr = os.Args[2]
		}
		serve(addr)
	case "hash-password":
		hashPassword()
	default:
		usageExit()
	}
}

func usageExit() {
	fmt.Fprintf(os.Stderr, "Usage: %s [serve [addr] | hash-password]\n", os.Args[0])
	os.Exit(1)
}

func serve(addr string) {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Error loading configuration", "error", err)
		os.Exit(1)
	}
	if addr == "" {
		addr = cfg.Addr
	}

	sto, err := storage.NewFileStorage(cfg.ContentFile)
	if err != nil {
		slog.Error("Error initializing storage", "error", err)
		os.Exit(1)
	}

	client, err := backend.NewClient(cfg.BackendURL,
		backend.WithHTTPClient(&http.Client{Timeout: cfg.BackendTimeout}),
		backend.WithToken(cfg.BackendToken),
	)
	if err != nil {
		slog.Error("Error initializing backend client", "error", err)
		os.Exit(1)
	}

	// Set up signal handling for content reload
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGHUP) // Listen for SIGHUP
	go func() {
		for sig := range signalChan {
			slog.Info("Received signal", "signal", sig)
			err := sto.LoadConfig()
			if err != nil {
				slog.Error("Failed to reload content. Continuing with previous content", "error", err)
			} else {
				slog.Info("Content reloaded successfully")
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ser, err := service.NewService(sto, client, cfg.SessionSecret, cfg.CategoryPageSize)
	if err != nil {
		slog.Error("Error initializing services", "error", err)
		os.Exit(1)
	}
	server := web.NewServer(ser)
	err = server.Serve(ctx, addr)
	if err != nil {
		slog.Error("Error serving", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

func hashPassword() {
	fmt.Print("Enter password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		slog.Error("Error reading password", "error", err)
		os.Exit(1)
	}
	password := string(bytePassword)

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("Error hashing password", "error", err)
		os.Exit(1)
	}

	fmt.Printf("\nHashed password: %s\n", string(hashedPassword))
}
