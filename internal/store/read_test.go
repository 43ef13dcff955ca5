package store

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/roach88/tojos/internal/tojos"
)

func TestSelect_Empty(t *testing.T) {
	s := createTestStore(t)

	recs, err := s.Select(tojos.All)
	if err != nil {
		t.Fatalf("Select() failed: %v", err)
	}

	// Should return empty slice, not nil
	if recs == nil {
		t.Error("recs is nil, want empty slice")
	}
	if len(recs) != 0 {
		t.Errorf("len(recs) = %d, want 0", len(recs))
	}
}

func TestSelect_InsertionOrder(t *testing.T) {
	s := createTestStore(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		mustAdd(t, s, name)
	}

	recs, err := s.Select(tojos.All)
	if err != nil {
		t.Fatalf("Select() failed: %v", err)
	}

	var names []string
	for _, rec := range recs {
		name, _ := rec.Get(tojos.KeyID)
		names = append(names, name)
	}

	want := []string{"zeta", "alpha", "mid"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestSelect_PredicateReadsFields(t *testing.T) {
	s := createTestStore(t)
	mustAdd(t, s, "a", "color", "red")
	mustAdd(t, s, "b", "color", "blue")
	mustAdd(t, s, "c", "color", "red")

	red, err := s.Select(func(r tojos.Record) bool {
		color, err := r.Get("color")
		return err == nil && color == "red"
	})
	if err != nil {
		t.Fatalf("Select() failed: %v", err)
	}

	if len(red) != 2 {
		t.Fatalf("len(red) = %d, want 2", len(red))
	}
	first, _ := red[0].Get(tojos.KeyID)
	second, _ := red[1].Get(tojos.KeyID)
	if first != "a" || second != "c" {
		t.Errorf("red = [%s %s], want [a c]", first, second)
	}
}

func TestSelect_ResultIsSnapshot(t *testing.T) {
	s := createTestStore(t)
	mustAdd(t, s, "a")

	recs, err := s.Select(tojos.All)
	if err != nil {
		t.Fatalf("Select() failed: %v", err)
	}

	mustAdd(t, s, "b")

	if len(recs) != 1 {
		t.Errorf("len(recs) = %d after later Add, want 1", len(recs))
	}
}

func TestRecord_GetMissingKey(t *testing.T) {
	s := createTestStore(t)
	mustAdd(t, s, "a")

	recs, _ := s.Select(tojos.All)
	_, err := recs[0].Get("missing")
	if !errors.Is(err, tojos.ErrKeyNotFound) {
		t.Errorf("Get(missing) = %v, want ErrKeyNotFound", err)
	}
}

func TestRecord_Exists(t *testing.T) {
	s := createTestStore(t)
	mustAdd(t, s, "a", "k", "v")

	recs, _ := s.Select(tojos.All)
	rec := recs[0]

	for key, want := range map[string]bool{tojos.KeyID: true, "k": true, "missing": false} {
		got, err := rec.Exists(key)
		if err != nil {
			t.Fatalf("Exists(%q) failed: %v", key, err)
		}
		if got != want {
			t.Errorf("Exists(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestRecord_Map(t *testing.T) {
	s := createTestStore(t)
	mustAdd(t, s, "a", "k1", "v1", "k2", "v2")

	recs, _ := s.Select(tojos.All)
	fields, err := recs[0].Map()
	if err != nil {
		t.Fatalf("Map() failed: %v", err)
	}

	want := map[string]string{"id": "a", "k1": "v1", "k2": "v2"}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("Map() = %v, want %v", fields, want)
	}
}

func TestRecord_KeysNormalized(t *testing.T) {
	s := createTestStore(t)
	mustAdd(t, s, "a", "cafe\u0301", "1")

	recs, _ := s.Select(tojos.All)
	value, err := recs[0].Get("caf\u00e9")
	if err != nil {
		t.Fatalf("Get() with NFC key failed: %v", err)
	}
	if value != "1" {
		t.Errorf("Get() = %q, want %q", value, "1")
	}
}

func TestSynchronized_ConcurrentAddsOverSQLite(t *testing.T) {
	s := tojos.Synchronized(createTestStore(t))

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if _, err := s.Add(fmt.Sprintf("item-%d", i)); err != nil {
				errs <- err
			}
		}(i)
		go func() {
			defer wg.Done()
			if _, err := s.Select(tojos.All); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent call failed: %v", err)
	}

	recs, err := s.Select(tojos.All)
	if err != nil {
		t.Fatalf("Select() failed: %v", err)
	}
	if len(recs) != 50 {
		t.Errorf("len(recs) = %d, want 50", len(recs))
	}
}
