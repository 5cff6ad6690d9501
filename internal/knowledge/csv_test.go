package knowledge

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func tempRepo(t *testing.T) *CSVRepository {
	t.Helper()
	return NewCSV(filepath.Join(t.TempDir(), "Data.csv"))
}

func TestCSV_ExistsBeforeFirstAppend(t *testing.T) {
	repo := tempRepo(t)
	ctx := context.Background()

	exists, err := repo.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("store should not exist before first append")
	}
}

func TestCSV_AppendThenLookup(t *testing.T) {
	repo := tempRepo(t)
	ctx := context.Background()

	q := "What is the capital of France?"
	a := "Paris is the capital of France."
	if err := repo.Append(ctx, q, a); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	exists, err := repo.Exists(ctx)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("store should exist after first append")
	}

	match, err := repo.Lookup(ctx, "what is the capital of france")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if match.Score != 100 {
		t.Errorf("expected score 100 on round trip, got %d", match.Score)
	}
	if match.Answer != a {
		t.Errorf("expected stored answer, got %q", match.Answer)
	}
}

func TestCSV_HeaderWrittenOnce(t *testing.T) {
	repo := tempRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, "q1", "a1"); err != nil {
		t.Fatalf("first Append failed: %v", err)
	}
	if err := repo.Append(ctx, "q2", "a2"); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}

	f, err := os.Open(repo.path)
	if err != nil {
		t.Fatalf("open data file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse data file: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 records, got %d rows", len(rows))
	}
	if rows[0][0] != "Question" || rows[0][1] != "Answer" {
		t.Errorf("expected header row, got %v", rows[0])
	}
}

func TestCSV_LookupMissingFile(t *testing.T) {
	repo := tempRepo(t)

	match, err := repo.Lookup(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Lookup on missing file should read as empty, got %v", err)
	}
	if match.Score != 0 {
		t.Errorf("expected zero score for missing store, got %d", match.Score)
	}
}

func TestCSV_MalformedFile(t *testing.T) {
	repo := tempRepo(t)

	// Three columns violates the two-column contract.
	if err := os.WriteFile(repo.path, []byte("Question,Answer,Extra\na,b,c\n"), 0o644); err != nil {
		t.Fatalf("write malformed file: %v", err)
	}

	if _, err := repo.Lookup(context.Background(), "anything"); err == nil {
		t.Error("expected an error for a malformed store")
	}
}

func TestCSV_QuotedFieldsSurviveRoundTrip(t *testing.T) {
	repo := tempRepo(t)
	ctx := context.Background()

	q := `Why is "CSV, the format" tricky?`
	a := "Because of commas, quotes and\nnewlines."
	if err := repo.Append(ctx, q, a); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	match, err := repo.Lookup(ctx, "why is csv the format tricky")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if match.Answer != a {
		t.Errorf("answer mangled by round trip: %q", match.Answer)
	}
}

func TestCSV_ConcurrentAppends(t *testing.T) {
	repo := tempRepo(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := fmt.Sprintf("question number %d", i)
			a := fmt.Sprintf("answer number %d", i)
			if err := repo.Append(ctx, q, a); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent Append failed: %v", err)
	}

	records, err := repo.read()
	if err != nil {
		t.Fatalf("read after concurrent appends: %v", err)
	}
	if len(records) != n {
		t.Errorf("expected exactly %d records, got %d", n, len(records))
	}
	seen := make(map[string]bool, n)
	for _, rec := range records {
		seen[rec.Question] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct questions, got %d — lost or corrupted rows", n, len(seen))
	}
}
