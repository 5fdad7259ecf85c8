// README: Bench runner; executes calculate scenarios and a load phase against a running travel-api.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	results := NewRunner(cfg).RunAll(ctx)

	tally := map[string]int{}
	for _, r := range results {
		tally[r.Status]++
	}
	fmt.Printf("\n%d cases: %d passed, %d failed, %d skipped\n",
		len(results), tally[statusPass], tally[statusFail], tally[statusSkip])

	if tally[statusFail] > 0 {
		os.Exit(1)
	}
}

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	Load        bool
	Concurrency int
	Duration    time.Duration
}

// loadConfig reads TRAVEL_BENCH_* variables as defaults; flags override them.
func loadConfig() Config {
	cfg := Config{
		BaseURL:     fromEnv("TRAVEL_BENCH_BASE_URL", "http://localhost:8080", identity),
		Timeout:     fromEnv("TRAVEL_BENCH_TIMEOUT", time.Minute, time.ParseDuration),
		Load:        fromEnv("TRAVEL_BENCH_LOAD", true, strconv.ParseBool),
		Concurrency: fromEnv("TRAVEL_BENCH_CONCURRENCY", 20, strconv.Atoi),
		Duration:    fromEnv("TRAVEL_BENCH_DURATION", 10*time.Second, time.ParseDuration),
	}
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "travel-api base URL")
	flag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall deadline")
	flag.BoolVar(&cfg.Load, "load", cfg.Load, "run the load case")
	flag.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "workers in the load case")
	flag.DurationVar(&cfg.Duration, "duration", cfg.Duration, "length of the load case")
	flag.Parse()

	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return cfg
}

// fromEnv returns def when key is unset or does not parse.
func fromEnv[T any](key string, def T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %v\n", key, raw, err)
		return def
	}
	return v
}

func identity(s string) (string, error) { return s, nil }
