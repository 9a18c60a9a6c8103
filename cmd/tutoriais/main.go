// Command tutoriais browses a tutorial catalog in the terminal, with an AI
// assistant that summarizes each item and answers questions about it.
//
// Usage:
//
//	tutoriais                      Browse the catalog (TUI)
//	tutoriais browse --open 2      Start on a tutorial's detail view
//	tutoriais list --type video    Print the filtered listing
//	tutoriais show 1 --summary     Print one tutorial with its AI summary
//	tutoriais ask 1 "What is useEffect?"
//	tutoriais serve                Serve the JSON API
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
