// Command recipes looks up the material pairs that produce a modifier,
// falling back to fuzzy catalog search when the name has no exact match.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/velhaven/gearplan/internal/config"
	"github.com/velhaven/gearplan/internal/dataloader"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <modifier name>\n", os.Args[0])
		os.Exit(2)
	}
	query := strings.Join(os.Args[1:], " ")

	bundle, err := dataloader.New(cfg.Data.Dir).LoadAll(context.Background())
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}

	name := query
	if _, ok := bundle.Catalog.Lookup(query); !ok {
		matches := bundle.Catalog.Search(query, 5)
		if len(matches) == 0 {
			fmt.Printf("No modifier matching %q\n", query)
			os.Exit(1)
		}
		name = matches[0].Name
		if len(matches) > 1 {
			fmt.Printf("Did you mean %q? Other matches:", name)
			for _, m := range matches[1:] {
				fmt.Printf(" %q", m.Name)
			}
			fmt.Println()
		}
	}

	pairs := bundle.Recipes.PairsFor(name)
	if len(pairs) == 0 {
		fmt.Printf("%s: no known recipe\n", name)
		return
	}

	fmt.Printf("%s:\n", name)
	for _, p := range pairs {
		fmt.Printf("  %s + %s\n", p.MaterialA, p.MaterialB)
	}
}
