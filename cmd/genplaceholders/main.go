package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/outbreak/internal/assets"
)

func main() {
	dir := flag.String("out", "assets", "directory to write the sprites to")
	flag.Parse()

	fmt.Println("Outbreak Placeholder Sprite Generator")
	fmt.Println("=====================================")
	fmt.Println()

	written, err := assets.GenerateAndSave(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}

	fmt.Println()
	fmt.Println("Done! Run the game to see your placeholders in action!")
}
