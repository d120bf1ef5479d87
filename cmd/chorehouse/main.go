package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"chosenoffset.com/chorehouse/internal/config"
	"chosenoffset.com/chorehouse/internal/gamescanner"
	ebitenrender "chosenoffset.com/chorehouse/internal/render/ebiten"
	"chosenoffset.com/chorehouse/internal/world/layout"
	"chosenoffset.com/chorehouse/room"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags default to the environment so either can drive a run
	numRooms := flag.Int("rooms", cfg.Generator.NumRooms, "number of rooms including the starting and final room")
	seed := flag.Int64("seed", cfg.Generator.Seed, "random seed (0 = time based)")
	libraryPath := flag.String("library", cfg.Library.Path, "room library JSON file (empty = built-in house)")
	dataDir := flag.String("data", cfg.Library.DataDir, "data directory scanned by -list")
	list := flag.Bool("list", false, "list the room libraries in the data directory and exit")
	view := flag.Bool("view", false, "open the layout viewer instead of printing")
	debug := flag.Bool("debug", cfg.Logging.Debug, "trace room creation and placement")
	flag.Parse()

	if *list {
		if err := listLibraries(os.Stdout, *dataDir); err != nil {
			log.Fatalf("Failed to list libraries: %v", err)
		}
		return
	}

	library := room.DefaultLibrary()
	if *libraryPath != "" {
		library, err = room.LoadLibrary(*libraryPath)
		if err != nil {
			log.Fatalf("Failed to load room library: %v", err)
		}
	}

	gen := layout.NewGenerator(library, layout.GeneratorConfig{
		NumRooms:    *numRooms,
		Seed:        *seed,
		MaxAttempts: cfg.Generator.MaxAttempts,
	})
	if *debug {
		gen.SetLogger(log.New(os.Stderr, cfg.Logging.Prefix, log.Lmsgprefix))
	}

	if *view {
		viewer := ebitenrender.NewViewer(gen.Generate, cfg.Viewer.CellSize)
		title := fmt.Sprintf("Chorehouse - %s", library.Name)
		if err := ebitenrender.Run(title, cfg.Viewer.WindowWidth, cfg.Viewer.WindowHeight, viewer); err != nil {
			log.Fatal(err)
		}
		return
	}

	l, err := gen.Generate()
	if err != nil {
		log.Fatalf("Failed to generate layout: %v", err)
	}
	fmt.Printf("%s\n\n", library.Description)
	fmt.Print(l)
}

func listLibraries(w io.Writer, dataDir string) error {
	houses, err := gamescanner.ScanDataDirectory(dataDir)
	if err != nil {
		return err
	}
	if len(houses) == 0 {
		fmt.Fprintf(w, "No room libraries found in %s\n", dataDir)
		return nil
	}
	for _, house := range houses {
		fmt.Fprintf(w, "%s\n", house.Name)
		for _, lib := range house.Libraries {
			if lib.Err != nil {
				fmt.Fprintf(w, "  %s: invalid: %v\n", lib.Path, lib.Err)
				continue
			}
			fmt.Fprintf(w, "  %s: %s (up to %d rooms)\n", lib.Path, lib.Library.Name, lib.Library.MaxRooms())
		}
	}
	return nil
}
