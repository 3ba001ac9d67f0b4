// Package main provides a one-shot CLI that fetches fee data for a token
// and prints the analysis as markdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"creator-fee-scan/internal/analysis"
	"creator-fee-scan/internal/launchpad"
	"creator-fee-scan/internal/reporting"
	"creator-fee-scan/internal/validate"
)

func main() {
	mint := flag.String("mint", "", "Token mint address to analyze")
	apiBase := flag.String("api-base", os.Getenv("FEESCAN_UPSTREAM_URL"), "Launchpad API base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall fetch timeout")
	jsonOut := flag.Bool("json", false, "Print raw JSON instead of markdown")
	flag.Parse()

	logger := log.New(os.Stderr, "[analyze] ", log.LstdFlags)

	if *mint == "" {
		logger.Fatal("--mint is required")
	}
	if *apiBase == "" {
		logger.Fatal("--api-base is required (or set FEESCAN_UPSTREAM_URL)")
	}
	if !validate.MintAddress(*mint) {
		logger.Fatalf("Invalid mint address: %q", *mint)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := launchpad.NewClient(*apiBase, launchpad.WithTimeout(*timeout))

	raw, err := client.FetchTokenData(ctx, *mint)
	if err != nil {
		logger.Fatalf("Fetch failed: %v", err)
	}

	result := analysis.Analyze(*raw)

	if *jsonOut {
		out, err := reporting.RenderJSON(result)
		if err != nil {
			logger.Fatalf("Encode failed: %v", err)
		}
		fmt.Println(out)
		return
	}
	fmt.Print(reporting.RenderMarkdown(result))
}
