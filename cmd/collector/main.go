package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"bizpulse/internal/collector"
	"bizpulse/internal/config"
	"bizpulse/internal/logging"
	"bizpulse/internal/posts"
	"bizpulse/internal/recommend"
	"bizpulse/internal/sentiment"
)

func main() {
	var (
		source    = flag.String("source", "mock", "Source to collect from: mock, json, rss, html or all")
		input     = flag.String("input", "", "Comma-separated input files for json, rss, html and all")
		count     = flag.Int("count", 100, "Maximum number of posts to collect")
		format    = flag.String("format", "json", "Output format: json or csv")
		outDir    = flag.String("out", ".", "Output directory")
		noAnalyze = flag.Bool("no-analyze", false, "Skip sentiment analysis")
		seed      = flag.Int64("seed", 0, "Mock generator seed (0 seeds from the clock)")
		selector  = flag.String("html-selector", collector.DefaultHTMLSelector, "CSS selector matching one post in HTML inputs")
		logLevel  = flag.String("log-level", "info", "Log level: debug, info, warn or error")
		logFormat = flag.String("log-format", "text", "Log format: text or json")
	)
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatal("Failed to load environment:", err)
	}
	logger := logging.Init(*logLevel, *logFormat)

	src, err := collector.ParseSource(*source)
	if err != nil {
		log.Fatal(err)
	}
	outFormat, err := collector.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	if *count <= 0 {
		log.Fatal("--count must be positive")
	}

	var inputs []string
	for _, p := range strings.Split(*input, ",") {
		if p = strings.TrimSpace(p); p != "" {
			inputs = append(inputs, p)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	clock := clockwork.NewRealClock()
	c := collector.New(
		posts.NewGenerator(*seed, clock),
		sentiment.Default(),
		recommend.Default(),
		clock,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := c.Run(ctx, collector.Options{
		Source:       src,
		Inputs:       inputs,
		Count:        *count,
		HTMLSelector: *selector,
		Analyze:      !*noAnalyze,
	}, *outDir, outFormat)
	if err != nil {
		log.Fatal("Collection failed:", err)
	}

	fmt.Printf("Collected %d posts\n", len(res.Posts))
	fmt.Printf("Posts saved to %s\n", res.PostsFile)
	if res.Stats != nil {
		fmt.Printf("Positive: %d (%.1f%%)  Negative: %d  Neutral: %d\n",
			res.Stats.Positive, res.Stats.PositivePercentage, res.Stats.Negative, res.Stats.Neutral)
	}
	if res.StatsFile != "" {
		fmt.Printf("Statistics saved to %s\n", res.StatsFile)
	}
}
