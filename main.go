package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/csa-tracker-backend/api"
	"github.com/rpupo63/csa-tracker-backend/database"
	"github.com/rpupo63/csa-tracker-backend/settings"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Printf("Error resolving home directory: %v\n", err)
		os.Exit(1)
	}

	fs := osfs.New("/")

	manager := settings.NewManager(fs, home, log.Logger)
	manager.Startup()

	log.Info().
		Str("databasePath", manager.Root()).
		Bool("isConfigured", manager.Snapshot().IsConfigured).
		Bool("isDemoMode", manager.IsDemoMode()).
		Msg("Configuration loaded")

	db := database.New(fs, manager, log.Logger)
	techStore := settings.NewTechnologyStore(fs, manager, log.Logger)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db, manager, techStore)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
