package main

import (
	"log"

	"freight-cost/internal/config"
	"freight-cost/internal/extractor"
	"freight-cost/internal/nlp"
	"freight-cost/internal/quote"
	"freight-cost/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The tokenizer is built once here and shared by every request.
	quotes := quote.NewService(extractor.New(nlp.Default()))

	if err := server.New(cfg, quotes).Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
