package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sort"
	"time"

	pricing "Safetyguide360/internal/pricing"
)

// ratesync refreshes the bundled exchange-rate table from an external feed so
// the server can keep quoting when the feed is unreachable.
func main() {
	url := os.Getenv("RATES_URL")
	if url == "" {
		log.Fatal("RATES_URL missing")
	}
	path := os.Getenv("RATES_PATH")
	if path == "" {
		path = "./configs/rates.json"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rates, err := pricing.FetchRates(ctx, url)
	if err != nil {
		log.Fatalf("Fetch rates: %v", err)
	}

	b, err := json.MarshalIndent(rates, "", "  ")
	if err != nil {
		log.Fatalf("Encode rates: %v", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		log.Fatalf("Write %s: %v", path, err)
	}

	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	log.Printf("Wrote %d rates to %s: %v", len(rates), path, codes)
}
