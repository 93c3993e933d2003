// cmd/seed/main.go
//
// One-shot catalog seeder:
//
//	go run ./cmd/seed
//
// Wipes the categories/customizations/menu/menuCustomizations collections and
// the image bucket, then writes the fixture catalog.
package main

import (
	"context"
	"log"
	"time"

	"forkful/internal/platform/di"
	"forkful/internal/seed"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cont, err := di.NewContainer(ctx)
	if err != nil {
		log.Fatalf("[seed] di init failed: %v", err)
	}
	defer cont.Close()

	if cont.MenuImages == nil {
		log.Printf("[seed] WARN: GCS not configured; menu docs will keep source image urls")
	}

	s := seed.NewSeeder(cont.Firestore, cont.MenuImages)
	if err := s.Run(ctx); err != nil {
		log.Fatalf("[seed] failed: %v", err)
	}
	log.Printf("[seed] completed")
}
