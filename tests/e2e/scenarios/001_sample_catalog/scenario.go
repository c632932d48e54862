package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These lines and the expectations below belong together.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
var sampleLines = []string{
	"2012-09-13 16:04:22 DEBUG SID:34523 BID:1329 RID:65d33 'Starting new session'",
	"2012-09-13 16:04:30 DEBUG SID:34523 BID:1329 RID:54f22 'Authenticating User'",
	"2012-09-13 16:05:30 DEBUG SID:42111 BID:319 RID:65a23 'Starting new session'",
	"2012-09-13 16:04:50 ERROR SID:34523 BID:1329 RID:54ff3 'Missing Authentication token'",
	"2012-09-13 16:04:45 DEBUG SID:34523 BID:1329 RID:86472 'Retrying authentication'",
	"2012-09-13 16:05:31 DEBUG SID:42111 BID:319 RID:7a323 'Deleting asset with ID 543234'",
	"2012-09-13 16:05:32 WARN SID:42111 BID:319 RID:7a323 'Invalid asset ID'",
}

var expectedRangeDescriptions = []string{
	"Starting new session",
	"Authenticating User",
	"Missing Authentication token",
	"Retrying authentication",
}

// ### End - fixed configs

type record struct {
	Timestamp   time.Time `json:"timestamp"`
	Level       string    `json:"level"`
	SessionID   string    `json:"sessionId"`
	BusinessID  string    `json:"businessId"`
	RequestID   string    `json:"requestId"`
	Description string    `json:"description"`
}

type ingestResponse struct {
	BatchID      string `json:"batchId"`
	Ingested     int    `json:"ingested"`
	SkippedBlank int    `json:"skippedBlank"`
	Failures     []any  `json:"failures"`
}

type profile struct {
	Name   string `json:"name"`
	Count  int64  `json:"count"`
	Report string `json:"report"`
}

// main runs the e2e scenario: 001_sample_catalog
//
// This scenario posts the seven sample log lines to a running log-catalog server and checks
// every query endpoint. The server may already hold records (seed files, earlier runs), so all
// checks compare counts before and after the post.
//
// What it tests:
//   - Plain text ingestion via POST /logs
//   - Idempotency key handling for duplicate batch detection
//   - Level, session and business lookups
//   - Inclusive date range scans in insertion order
//   - Profiling summaries via GET /profiles
//
// Expected results:
//   - The batch ingests 7 lines with no failures; resending it returns 409 Conflict
//   - WARN gains 1 record ("Invalid asset ID"), session 42111 gains 3, business 1329 gains 4
//   - 16:04:22 to 16:04:50 gains 4 records, ending in the order of expectedRangeDescriptions
//   - Every profiled operation reports at least one call
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the log catalog API server
	idempotencyKey := fmt.Sprintf("e2e-001-%d", time.Now().UnixNano())

	fmt.Println("Starting e2e scenario: 001_sample_catalog")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("IDEMPOTENCY_KEY: %s\n", idempotencyKey)
	fmt.Println()

	client := &http.Client{Timeout: 10 * time.Second}
	rangeQuery := "/logs?" + url.Values{"from": {"2012-09-13 16:04:22"}, "to": {"2012-09-13 16:04:50"}}.Encode()

	warnBefore := mustQuery(client, baseURL+"/logs/levels/WARN")
	sessionBefore := mustQuery(client, baseURL+"/logs/sessions/42111")
	businessBefore := mustQuery(client, baseURL+"/logs/businesses/1329")
	rangeBefore := mustQuery(client, baseURL+rangeQuery)

	// Ingest
	status, body := post(client, baseURL+"/logs", idempotencyKey, strings.Join(sampleLines, "\n"))
	if status != http.StatusOK {
		fail("POST /logs returned %d: %s", status, body)
	}
	var ingested ingestResponse
	if err := json.Unmarshal(body, &ingested); err != nil {
		fail("failed to decode ingest response: %v", err)
	}
	check(ingested.BatchID == idempotencyKey, "batch ID %q, want %q", ingested.BatchID, idempotencyKey)
	check(ingested.Ingested == len(sampleLines), "ingested %d lines, want %d", ingested.Ingested, len(sampleLines))
	check(len(ingested.Failures) == 0, "got %d failures, want 0", len(ingested.Failures))

	// Duplicate
	status, _ = post(client, baseURL+"/logs", idempotencyKey, strings.Join(sampleLines, "\n"))
	check(status == http.StatusConflict, "duplicate POST /logs returned %d, want 409", status)

	// Queries
	warnAfter := mustQuery(client, baseURL+"/logs/levels/WARN")
	check(len(warnAfter)-len(warnBefore) == 1, "WARN gained %d records, want 1", len(warnAfter)-len(warnBefore))
	if len(warnAfter) > 0 {
		last := warnAfter[len(warnAfter)-1]
		check(last.Description == "Invalid asset ID", "last WARN record is %q", last.Description)
	}

	sessionAfter := mustQuery(client, baseURL+"/logs/sessions/42111")
	check(len(sessionAfter)-len(sessionBefore) == 3, "session 42111 gained %d records, want 3", len(sessionAfter)-len(sessionBefore))

	businessAfter := mustQuery(client, baseURL+"/logs/businesses/1329")
	check(len(businessAfter)-len(businessBefore) == 4, "business 1329 gained %d records, want 4", len(businessAfter)-len(businessBefore))

	rangeAfter := mustQuery(client, baseURL+rangeQuery)
	check(len(rangeAfter)-len(rangeBefore) == 4, "date range gained %d records, want 4", len(rangeAfter)-len(rangeBefore))
	if len(rangeAfter) >= 4 {
		tail := rangeAfter[len(rangeAfter)-4:]
		for i, want := range expectedRangeDescriptions {
			check(tail[i].Description == want, "date range position %d is %q, want %q", i, tail[i].Description, want)
		}
	}

	// Profiles
	var profiles []profile
	mustGetJSON(client, baseURL+"/profiles", &profiles)
	for _, p := range profiles {
		check(p.Count > 0, "profile %s has no calls", p.Name)
		fmt.Println(p.Report)
	}

	fmt.Println()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "FAILED: %d checks failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("PASSED: 001_sample_catalog")
}

var failures int

func check(ok bool, format string, args ...any) {
	if !ok {
		failures++
		fmt.Fprintf(os.Stderr, "CHECK FAILED: "+format+"\n", args...)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func post(client *http.Client, target, idempotencyKey, text string) (int, []byte) {
	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(text))
	if err != nil {
		fail("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := client.Do(req)
	if err != nil {
		fail("POST %s failed: %v", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fail("failed to read response: %v", err)
	}
	return resp.StatusCode, body
}

func mustQuery(client *http.Client, target string) []record {
	var records []record
	mustGetJSON(client, target, &records)
	return records
}

func mustGetJSON(client *http.Client, target string, out any) {
	resp, err := client.Get(target)
	if err != nil {
		fail("GET %s failed: %v", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fail("GET %s returned %d: %s", target, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fail("failed to decode %s: %v", target, err)
	}
}
