package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

type improveRequest struct {
	Prompt string `json:"prompt"`
}

type improveResponse struct {
	Success        bool   `json:"success"`
	ImprovedPrompt string `json:"improvedPrompt"`
	OriginalLength int    `json:"originalLength"`
	ImprovedLength int    `json:"improvedLength"`
	Error          string `json:"error"`
}

type healthResponse struct {
	Provider struct {
		Name      string `json:"name"`
		Available bool   `json:"available"`
	} `json:"provider"`
}

type result struct {
	Sample   string `json:"sample"`
	Chars    int    `json:"chars"`
	Run      int    `json:"run"`
	WallMs   int64  `json:"wall_ms"`
	OutChars int    `json:"out_chars"`
	Error    string `json:"error,omitempty"`
}

func main() {
	url := flag.String("url", "http://localhost:3000", "relay base URL")
	apiKey := flag.String("api-key", "", "API key (optional)")
	runs := flag.Int("runs", 3, "Number of runs per sample")
	quality := flag.Bool("quality", false, "Quality mode: show input/output for each sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request per sample before measuring")
	flag.Parse()

	baseURL := strings.TrimRight(*url, "/")
	client := &http.Client{Timeout: 120 * time.Second}

	provider := discoverProvider(client, baseURL)

	if *quality {
		runQualityMode(client, baseURL, *apiKey, provider)
		return
	}

	fmt.Printf("Benchmarking against %s using provider: %s (%d runs per sample", baseURL, provider, *runs)
	if *warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, sample := range Samples {
		if *warmup {
			fmt.Printf("  Warming up %s...", sample.Name)
			w := benchmark(client, baseURL, *apiKey, sample, 0)
			if w.Error != "" {
				fmt.Printf(" FAILED (%s)\n", w.Error)
			} else {
				fmt.Printf(" %dms (discarded)\n", w.WallMs)
			}
		}
		for run := 1; run <= *runs; run++ {
			fmt.Printf("  Running %s (run %d/%d)...", sample.Name, run, *runs)
			r := benchmark(client, baseURL, *apiKey, sample, run)
			results = append(results, r)
			if r.Error != "" {
				fmt.Printf(" FAILED (%s)\n", r.Error)
				failures++
			} else {
				fmt.Printf(" %dms\n", r.WallMs)
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, baseURL, provider); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

// discoverProvider asks the health endpoint which provider the relay uses.
func discoverProvider(client *http.Client, baseURL string) string {
	resp, err := client.Get(baseURL + "/api/health")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reaching relay: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var hr healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&hr); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding health: %v\n", err)
		os.Exit(1)
	}
	if !hr.Provider.Available {
		fmt.Fprintf(os.Stderr, "Provider %s is not available\n", hr.Provider.Name)
		os.Exit(1)
	}
	return hr.Provider.Name
}

func improve(client *http.Client, baseURL, apiKey, prompt string) (improveResponse, error) {
	payload, _ := json.Marshal(improveRequest{Prompt: prompt})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/improve-prompt", bytes.NewReader(payload))
	if err != nil {
		return improveResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return improveResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return improveResponse{}, err
	}

	var ir improveResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return improveResponse{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if !ir.Success {
		return improveResponse{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, ir.Error)
	}
	return ir, nil
}

func benchmark(client *http.Client, baseURL, apiKey string, sample Sample, run int) result {
	chars := utf8.RuneCountInString(sample.Text)

	start := time.Now()
	ir, err := improve(client, baseURL, apiKey, sample.Text)
	wallMs := time.Since(start).Milliseconds()
	if err != nil {
		return result{Sample: sample.Name, Chars: chars, Run: run, Error: err.Error()}
	}

	return result{
		Sample:   sample.Name,
		Chars:    ir.OriginalLength,
		Run:      run,
		WallMs:   wallMs,
		OutChars: ir.ImprovedLength,
	}
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Run | Wall (ms) | Out Chars | Growth |")
	fmt.Println("|--------|-------|-----|-----------|-----------|--------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %5d | %d | %9s | %9s | %6s |\n",
				r.Sample, r.Chars, r.Run, "FAIL", "-", "-")
			continue
		}
		fmt.Printf("| %-6s | %5d | %d | %9d | %9d | %5.1fx |\n",
			r.Sample, r.Chars, r.Run, r.WallMs, r.OutChars, growth(r))
	}
}

func growth(r result) float64 {
	if r.Chars == 0 {
		return 0
	}
	return float64(r.OutChars) / float64(r.Chars)
}

func runQualityMode(client *http.Client, baseURL, apiKey, provider string) {
	fmt.Printf("Quality test against %s using provider: %s\n", baseURL, provider)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range QualitySamples {
		fmt.Printf("\n--- %d/%d: %s (%d chars) ---\n", i+1, len(QualitySamples), sample.Name, utf8.RuneCountInString(sample.Text))
		fmt.Printf("IN:  %s\n", sample.Text)

		start := time.Now()
		ir, err := improve(client, baseURL, apiKey, sample.Text)
		if err != nil {
			fmt.Printf("ERR: %s\n", err)
			failures++
			continue
		}

		fmt.Printf("OUT: %s\n", ir.ImprovedPrompt)
		fmt.Printf("     [%dms, %d->%d chars]\n", time.Since(start).Milliseconds(), ir.OriginalLength, ir.ImprovedLength)
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(QualitySamples)-failures, len(QualitySamples))
	if failures > 0 {
		os.Exit(1)
	}
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalWall int64
	var totalGrowth float64
	minWall, maxWall := ok[0].WallMs, ok[0].WallMs
	minSample, maxSample := ok[0].Sample, ok[0].Sample

	for _, r := range ok {
		totalWall += r.WallMs
		totalGrowth += growth(r)
		if r.WallMs < minWall {
			minWall = r.WallMs
			minSample = r.Sample
		}
		if r.WallMs > maxWall {
			maxWall = r.WallMs
			maxSample = r.Sample
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg wall: %dms\n", totalWall/int64(len(ok)))
	fmt.Printf("- Avg growth: %.1fx\n", totalGrowth/float64(len(ok)))
	fmt.Printf("- Min wall: %dms (%s)\n", minWall, minSample)
	fmt.Printf("- Max wall: %dms (%s)\n", maxWall, maxSample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Provider  string   `json:"provider"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL, provider string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Provider:  provider,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
