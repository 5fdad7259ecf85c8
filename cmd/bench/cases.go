// README: Bench cases; calculate scenarios, validation failures and a timed load phase.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sync"
	"sync/atomic"
	"time"
)

const (
	statusPass = "PASS"
	statusFail = "FAIL"
	statusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func quote(price any, start, payment string, age any) map[string]any {
	return map[string]any{"price": price, "startDate": start, "paymentDate": payment, "age": age}
}

func (r *Runner) cases() []TestCase {
	url := r.cfg.BaseURL + "/api/travel/calculate"
	return []TestCase{
		{
			Name: "API: health",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				req, _ := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+"/health", nil)
				resp, err := r.httpc.Do(req)
				if err != nil {
					return Result{Status: statusFail, Note: err.Error()}
				}
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					return Result{Status: statusFail, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
				}
				return Result{Status: statusPass, Latency: time.Since(start)}
			},
		},

		calcCase("Calculate: adult early booking", url, quote(10000, "2027-05-01", "2026-11-15", 30), http.StatusOK,
			map[string]any{"price": 10000.0, "childDiscount": 0.0, "earlyBookingDiscount": 700.0, "finalPrice": 9300.0}),
		calcCase("Calculate: child under 3", url, quote(5000, "2027-05-01", "2026-11-15", 2), http.StatusOK,
			map[string]any{"price": 5000.0, "childDiscount": 0.0, "earlyBookingDiscount": 350.0, "finalPrice": 4650.0}),
		calcCase("Calculate: child 8", url, quote(6000, "2027-05-01", "2026-11-15", 8), http.StatusOK,
			map[string]any{"price": 6000.0, "childDiscount": 1800.0, "earlyBookingDiscount": 294.0, "finalPrice": 3906.0}),
		calcCase("Calculate: payment after start -> 400", url, quote(10000, "2027-05-01", "2027-06-01", 30), http.StatusBadRequest,
			map[string]any{"error": "payment date cannot be later than the travel start date"}),
		calcCase("Validation: invalid price -> 400", url, quote("invalid", "2027-05-01", "2026-11-15", 30), http.StatusBadRequest,
			map[string]any{"errors": map[string]any{"price": "This value should be of type numeric."}}),
		calcCase("Validation: negative age -> 400", url, quote(10000, "2027-05-01", "2026-11-15", -5), http.StatusBadRequest,
			map[string]any{"errors": map[string]any{"age": "This value should be either positive or zero."}}),

		{
			Name: "Perf: calculate load",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.Load {
					return Result{Status: statusSkip, Note: "load=false"}
				}
				return perfLoad(ctx, r, url, quote(10000, "2027-05-01", "2026-11-15", 30))
			},
		},
	}
}

func calcCase(name, url string, payload any, wantStatus int, want map[string]any) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			start := time.Now()
			status, body, err := r.postJSON(ctx, url, payload)
			latency := time.Since(start)
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			if status != wantStatus {
				return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("status=%d want=%d body=%s", status, wantStatus, body)}
			}
			var got map[string]any
			if err := json.Unmarshal(body, &got); err != nil {
				return Result{Status: statusFail, Latency: latency, Note: "decode: " + err.Error()}
			}
			if !reflect.DeepEqual(got, want) {
				return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("body=%s", body)}
			}
			return Result{Status: statusPass, Latency: latency}
		},
	}
}

func (r *Runner) postJSON(ctx context.Context, url string, payload any) (int, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount, non200 atomic.Int64
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					errCount.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					non200.Add(1)
				}
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	if count.Load() == 0 {
		return Result{Status: statusFail, Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	note := fmt.Sprintf("rps=%.1f errors=%d non200=%d", rps, errCount.Load(), non200.Load())
	if non200.Load() > 0 {
		return Result{Status: statusFail, Note: note}
	}
	return Result{Status: statusPass, Note: note}
}
