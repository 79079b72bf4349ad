package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/younwookim/wars/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("config", "cmd/game/configs", "Directory holding scenes.json")
	outDir := flag.String("out", "assets", "Assets root to write textures into")
	force := flag.Bool("force", false, "Overwrite existing textures")
	flag.Parse()

	fmt.Println("Placeholder Texture Generator")
	fmt.Println("=============================")

	scenes, err := config.NewLoader(*configDir).LoadScenes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	written, err := Generate(scenes, *outDir, *force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range written {
		fmt.Printf("  wrote %s\n", p)
	}

	fmt.Printf("Done! %d textures written under %s.\n", len(written), *outDir)
}
