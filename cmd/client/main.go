package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Izoret/Belote-WS/internal/client"
	"github.com/Izoret/Belote-WS/internal/logger"
)

func main() {
	serverAddr := flag.String("server", "localhost:8080", "server address")
	flag.Parse()

	if err := logger.Init(); err != nil {
		log.Printf("logger init failed: %v", err)
	}
	defer logger.Close()

	serverURL := fmt.Sprintf("ws://%s/ws", *serverAddr)

	ws, err := client.Dial(serverURL)
	if err != nil {
		log.Fatalf("failed to connect to %s: %v", serverURL, err)
	}

	p := tea.NewProgram(client.NewModel(ws), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("client error: %v", err)
	}
}
