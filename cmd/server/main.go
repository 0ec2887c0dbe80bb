package main

import (
	"fmt"
	"log"
	"os"

	"go-moment/internal/api"
	"go-moment/internal/config"
	"go-moment/internal/db"
	"go-moment/internal/goal"
	"go-moment/internal/publish"
	redisdb "go-moment/internal/redis"
	"go-moment/internal/refresh"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	rdb := redisdb.NewClient(cfg)

	repo := goal.NewRepository(db.DB)
	pub := publish.NewPublisher(rdb)

	worker := refresh.NewWorker(repo, pub, cfg.Widget.RefreshMinutes)
	go worker.Start()
	log.Printf("[Main] Snapshot refresh worker started (every %d minutes)", cfg.Widget.RefreshMinutes)

	r := api.SetupRouter(cfg, repo, pub, worker)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
