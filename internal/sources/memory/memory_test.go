package memory

import (
	"context"
	"errors"
	"testing"

	"clinicdash/internal/core"
)

func TestSeededStoreFetch(t *testing.T) {
	s := Seeded()
	records, err := s.FetchExpenses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("seeded store returned no records")
	}
	for i, r := range records {
		if r.Flow != core.FlowExpense {
			t.Fatalf("record %d flow = %q", i, r.Flow)
		}
		if err := r.Validate(); err != nil {
			t.Fatalf("record %d invalid: %v", i, err)
		}
	}
}

func TestFetchReturnsCopy(t *testing.T) {
	s := Seeded()
	a, _ := s.FetchExpenses(context.Background())
	a[0].Description = "mutated"
	b, _ := s.FetchExpenses(context.Background())
	if b[0].Description == "mutated" {
		t.Fatal("fetch leaked internal slice")
	}
}

func TestFailForcesError(t *testing.T) {
	s := Seeded()
	boom := errors.New("boom")
	s.Fail(boom)
	records, err := s.FetchExpenses(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected forced error, got %v", err)
	}
	if records != nil {
		t.Fatalf("expected nil records on error, got %v", records)
	}
}
