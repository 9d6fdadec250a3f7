package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	apiBase := flag.String("api", "http://localhost:8080", "backend base URL")
	flag.Parse()

	p := tea.NewProgram(initialModel(*apiBase))
	if _, err := p.Run(); err != nil {
		fmt.Printf("board viewer exited with error: %v\n", err)
		os.Exit(1)
	}
}
