package acceptance_tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"mensa-ukon/internal/fetch"
	"mensa-ukon/internal/mensa"
	"mensa-ukon/internal/plan"
	"mensa-ukon/internal/render"
)

// --- Acceptance Test ---
func TestFullWorkflow(t *testing.T) {
	ctx := context.Background()

	// 1. Serve a captured plan document from a local server
	markup, err := os.ReadFile("testdata/speiseplan_de.html")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write(markup)
	}))
	defer srv.Close()

	// 2. Wire the real client and service against it
	client := fetch.NewClient()
	client.SetBaseURL(srv.URL + "/%s/")
	svc := mensa.NewService(client)

	// --- 3. Step 1: Retrieval ---
	t.Log("--- Step 1: Retrieving Plan ---")
	monday := time.Date(2018, time.August, 13, 0, 0, 0, 0, time.UTC)
	p, err := svc.Retrieve(ctx, "giessberg", monday, plan.DE, "")
	if err != nil {
		t.Fatalf("Retrieval failed: %v", err)
	}
	if !p.Found() {
		t.Fatal("Expected plan for the first published day")
	}
	if p.Meals.Len() != 10 {
		t.Errorf("Expected 10 meals, got %d", p.Meals.Len())
	}

	// --- 4. Step 2: Rendering ---
	t.Log("--- Step 2: Rendering Plan ---")
	out := render.Markdown(p, monday, monday, plan.DE)
	if !strings.Contains(out, "Uni Konstanz") || !strings.Contains(out, "*Heute*") {
		t.Errorf("Unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "Schweinebraten mit Soße, dazu Kartoffeln") {
		t.Errorf("Expected main dish in output:\n%s", out)
	}

	// --- 5. Step 3: Cached retrieval ---
	t.Log("--- Step 3: Retrieving Again (cached) ---")
	p, err = svc.Retrieve(ctx, "giessberg", monday.AddDate(0, 0, 3), plan.DE, "stammessen")
	if err != nil {
		t.Fatalf("Second retrieval failed: %v", err)
	}
	if !p.Found() || p.Meals.Len() != 1 {
		t.Errorf("Expected the filtered meal, got %+v", p.Meals)
	}
	if hits != 1 {
		t.Errorf("Expected 1 call to the plan endpoint, got %d", hits)
	}
}
