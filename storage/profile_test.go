package storage

import (
	"errors"
	"testing"
	"time"
)

type brokenStore struct{}

func (brokenStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (brokenStore) SaveItem(string, []byte) error   { return errors.New("disk on fire") }

func waitLoaded(t *testing.T, p *Profile) Loaded {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		if res, ok := p.Poll(); ok {
			return res
		}
		select {
		case <-deadline:
			t.Fatalf("profile load did not resolve")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestRecordRoundTrip(t *testing.T) {
	store := NewMemory()
	if _, ok := LoadRecord(store, "record-score"); ok {
		t.Fatalf("LoadRecord on empty store reported a record")
	}
	if err := SaveRecord(store, "record-score", 7); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}
	got, ok := LoadRecord(store, "record-score")
	if !ok || got != 7 {
		t.Fatalf("LoadRecord = %d, %v; want 7, true", got, ok)
	}
}

func TestLoadRecordIgnoresGarbage(t *testing.T) {
	store := NewMemory()
	_ = store.SaveItem("record-score", []byte("not a number"))
	if got, ok := LoadRecord(store, "record-score"); ok || got != 0 {
		t.Fatalf("LoadRecord garbage = %d, %v; want 0, false", got, ok)
	}
}

func TestPlayerIDCreatedOnceAndReused(t *testing.T) {
	store := NewMemory()
	first := LoadOrCreatePlayerID(store, "player-id")
	if first == "" {
		t.Fatalf("expected generated player id, got empty")
	}
	second := LoadOrCreatePlayerID(store, "player-id")
	if second != first {
		t.Fatalf("player id changed between loads: %q then %q", first, second)
	}
}

func TestBrokenStoreFallsBackToDefaults(t *testing.T) {
	if got, ok := LoadRecord(brokenStore{}, "record-score"); ok || got != 0 {
		t.Fatalf("LoadRecord = %d, %v; want 0, false", got, ok)
	}
	if id := LoadOrCreatePlayerID(brokenStore{}, "player-id"); id == "" {
		t.Fatalf("expected fresh player id from broken store")
	}
	if err := SaveRecord(brokenStore{}, "record-score", 3); err == nil {
		t.Fatalf("SaveRecord on broken store succeeded, want error")
	}
}

func TestProfileAsyncLoadAndSave(t *testing.T) {
	store := NewMemory()
	_ = SaveRecord(store, "record-score", 4)

	p := NewProfile(store, "record-score", "player-id")
	p.Load()
	res := waitLoaded(t, p)
	if !res.HasRecord || res.Record != 4 {
		t.Fatalf("loaded record = %d, %v; want 4, true", res.Record, res.HasRecord)
	}
	if res.PlayerID == "" {
		t.Fatalf("loaded empty player id")
	}
	if _, ok := p.Poll(); ok {
		t.Fatalf("Poll reported the same result twice")
	}

	p.SaveRecord(9)
	p.Flush()
	if got, _ := LoadRecord(store, "record-score"); got != 9 {
		t.Fatalf("record after SaveRecord = %d, want 9", got)
	}
}
