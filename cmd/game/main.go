// Terminal client for the Eldoria turn engine. Player input goes through
// one deterministic classify/generate/reduce/synthesize cycle per turn; this
// binary only renders the results.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	sessionName := flag.String("session", "", "saved session to resume")
	flag.Parse()

	model, cleanup, err := createApp(*sessionName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
