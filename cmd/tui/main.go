package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"radius-defense/internal/config"
	"radius-defense/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	configPath := flag.String("config", envOr("RADIUS_CONFIG", "config.yaml"), "path to the YAML tuning file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Using default config: %v", err)
	}

	var seed int64
	if s := os.Getenv("RADIUS_SEED"); s != "" {
		if seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			log.Fatalf("invalid RADIUS_SEED %q: %v", s, err)
		}
	}

	p := tea.NewProgram(tui.New(cfg, seed), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
