package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/velhaven/gearplan/internal/beacon"
	"github.com/velhaven/gearplan/internal/config"
	"github.com/velhaven/gearplan/internal/dataloader"
	craftingService "github.com/velhaven/gearplan/internal/services/crafting"
	"github.com/velhaven/gearplan/internal/services/planner"

	buildRepo "github.com/velhaven/gearplan/internal/repositories/builds"
	sessionRepo "github.com/velhaven/gearplan/internal/repositories/sessions"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <encoded-build-string>\n", os.Args[0])
		os.Exit(2)
	}
	encoded := os.Args[1]

	ctx := context.Background()

	bundle, err := dataloader.New(cfg.Data.Dir).LoadAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}
	log.Printf("Loaded %d modifiers, %d materials", bundle.Catalog.Len(), len(bundle.Recipes.Materials()))

	builds := buildRepo.NewInMemoryRepository()
	sessions := sessionRepo.NewInMemoryRepository()

	// Use Redis-backed repositories when configured
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr := redisClient.Ping(pingCtx).Err()
		cancel()

		if pingErr != nil {
			log.Printf("Failed to connect to Redis: %v", pingErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			log.Printf("Connected to Redis at %s", cfg.Redis.Addr)
			builds = buildRepo.NewRedisRepository(&buildRepo.RedisRepoConfig{Client: redisClient})
			sessions = sessionRepo.NewRedisRepository(&sessionRepo.RedisRepoConfig{Client: redisClient})
		}
	}

	plannerSvc := planner.NewService(&planner.ServiceConfig{
		Catalog:    bundle.Catalog,
		Presets:    bundle.Presets,
		Repository: builds,
		Notifier: beacon.New(&beacon.Config{
			URL:     cfg.Webhook.URL,
			Timeout: cfg.Webhook.Timeout,
		}),
	})

	craftingSvc := craftingService.NewService(&craftingService.ServiceConfig{
		RecipeIndex: bundle.Recipes,
		Repository:  sessions,
	})

	b, err := plannerSvc.ImportBuild(ctx, encoded)
	if err != nil {
		log.Fatalf("Failed to decode build: %v", err)
	}

	report, err := plannerSvc.Report(ctx, &planner.ReportInput{Build: b})
	if err != nil {
		log.Fatalf("Failed to compute report: %v", err)
	}

	fmt.Println("Stat totals:")
	for _, name := range report.Totals.Names() {
		w := report.Warnings[name]
		line := fmt.Sprintf("  %-20s %4d  [%s]", name, w.Total, w.Status)
		if w.Wasted > 0 {
			line += fmt.Sprintf("  %d wasted", w.Wasted)
		}
		fmt.Println(line)
	}

	p := report.Pools
	fmt.Println("\nDerived pools:")
	fmt.Printf("  Health %d  Action %d  Mind %d  Regen %.1f%%\n", p.Health, p.Action, p.Mind, p.RegenPercent)
	fmt.Printf("  Defense %d  State Resist %d  Crit %d/%d\n", p.Defense, p.StateResist, p.CritChance, p.CritReduction)
	fmt.Printf("  Ranged Acc/Speed %d/%d  Melee Acc/Speed %d/%d\n",
		p.RangedAccuracy, p.RangedSpeed, p.MeleeAccuracy, p.MeleeSpeed)

	session, err := craftingSvc.StartSession(ctx, &craftingService.StartSessionInput{Build: b})
	if err != nil {
		log.Fatalf("Failed to start crafting session: %v", err)
	}

	fmt.Println("\nCrafting groups:")
	for _, g := range session.Groups {
		if !g.Craftable() {
			fmt.Printf("  %s x%d: no known recipe\n", g.Modifier, g.Count)
			continue
		}
		pair, _ := g.EffectivePair()
		fmt.Printf("  %s x%d: %s + %s (%d candidate pairs)\n",
			g.Modifier, g.Count, pair.MaterialA, pair.MaterialB, len(g.CandidatePairs))
	}

	list, err := craftingSvc.ShoppingList(ctx, session.ID)
	if err != nil {
		log.Fatalf("Failed to aggregate shopping list: %v", err)
	}

	materials := make([]string, 0, len(list))
	for m := range list {
		materials = append(materials, m)
	}
	sort.Strings(materials)

	fmt.Println("\nShopping list:")
	for _, m := range materials {
		item := list[m]
		fmt.Printf("  %-20s x%d  (for %v)\n", m, item.Qty, item.ForStats)
	}
}
