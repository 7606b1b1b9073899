package main

import (
	"context"
	"log"

	"resume-analyzer/internal/llm/gemini"
	"resume-analyzer/internal/server"
	"resume-analyzer/internal/shared/config"
)

func main() {
	cfg := config.Load()

	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini client: %v", err)
	}
	defer client.Close()

	r := server.NewRouter(cfg, client)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
