package storage

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Loaded is the result of a profile load.
type Loaded struct {
	Record    int
	HasRecord bool
	PlayerID  string
}

// Profile reads and writes the record score and player id without blocking
// the frame loop. Loads resolve through Poll; saves are fire-and-forget and
// the last write wins.
type Profile struct {
	store       Store
	recordKey   string
	playerIDKey string

	results chan Loaded
	pending sync.WaitGroup
}

func NewProfile(store Store, recordKey, playerIDKey string) *Profile {
	return &Profile{
		store:       store,
		recordKey:   recordKey,
		playerIDKey: playerIDKey,
		results:     make(chan Loaded, 1),
	}
}

// Load starts reading the profile in the background.
func (p *Profile) Load() {
	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		var res Loaded
		res.Record, res.HasRecord = LoadRecord(p.store, p.recordKey)
		res.PlayerID = LoadOrCreatePlayerID(p.store, p.playerIDKey)
		p.results <- res
	}()
}

// Poll returns the load result once it is available. It never blocks and
// reports each result only once.
func (p *Profile) Poll() (Loaded, bool) {
	select {
	case res := <-p.results:
		return res, true
	default:
		return Loaded{}, false
	}
}

// SaveRecord writes score as the new record in the background.
func (p *Profile) SaveRecord(score int) {
	p.pending.Add(1)
	go func() {
		defer p.pending.Done()
		_ = SaveRecord(p.store, p.recordKey, score)
	}()
}

// Flush waits for every background load and save started so far.
func (p *Profile) Flush() {
	p.pending.Wait()
}

// LoadRecord reads the record score. Read and parse failures are treated
// the same as a missing record.
func LoadRecord(store Store, key string) (int, bool) {
	data, err := store.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load record score: %v", err)
		return 0, false
	}
	if len(data) == 0 {
		return 0, false
	}

	var record int
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse record score: %v", err)
		return 0, false
	}
	return record, true
}

// SaveRecord writes the record score.
func SaveRecord(store Store, key string, score int) error {
	data, err := json.Marshal(score)
	if err != nil {
		log.Printf("Warning: Could not serialize record score: %v", err)
		return err
	}
	if err := store.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save record score: %v", err)
		return err
	}
	return nil
}

// LoadOrCreatePlayerID returns the stored player id, generating and saving a
// new one when none can be read.
func LoadOrCreatePlayerID(store Store, key string) string {
	data, err := store.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load player id: %v", err)
	}

	var id string
	if len(data) > 0 {
		if err := json.Unmarshal(data, &id); err != nil {
			log.Printf("Warning: Could not parse player id: %v", err)
			id = ""
		}
	}
	if id != "" {
		return id
	}

	id = uuid.NewString()
	data, err = json.Marshal(id)
	if err != nil {
		log.Printf("Warning: Could not serialize player id: %v", err)
		return id
	}
	if err := store.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save player id: %v", err)
	}
	return id
}
