package systems

import (
	"log"

	"github.com/automoto/wingflap/components"
	cfg "github.com/automoto/wingflap/config"
	"github.com/automoto/wingflap/storage"
	"github.com/yohamta/donburi/ecs"
)

var profile *storage.Profile

// InitPersistence opens the local store and starts loading the record score
// and player id. Without a store the game keeps everything in memory.
func InitPersistence() error {
	store, err := storage.Open(cfg.Storage.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		UseStore(storage.NewMemory())
		return err
	}
	UseStore(store)
	return nil
}

// UseStore makes store the profile backend and starts loading from it.
func UseStore(store storage.Store) *storage.Profile {
	profile = storage.NewProfile(store, cfg.Storage.RecordScoreKey, cfg.Storage.PlayerIDKey)
	profile.Load()
	return profile
}

// UpdateProfile applies a finished profile load. Until then the record reads
// as absent and the player id as empty.
func UpdateProfile(e *ecs.ECS) {
	if profile == nil {
		return
	}
	entry, ok := getGame(e)
	if !ok {
		return
	}
	loaded, ok := profile.Poll()
	if !ok {
		return
	}
	applyLoadedProfile(components.Profile.Get(entry), loaded)
}

// applyLoadedProfile merges stored values with anything earned before the
// load resolved; a record set this session wins over a lower stored one.
func applyLoadedProfile(p *components.ProfileData, loaded storage.Loaded) {
	p.PlayerID = loaded.PlayerID
	switch {
	case loaded.HasRecord && loaded.Record >= p.Record:
		p.Record = loaded.Record
	case p.Record > 0:
		saveRecord(p.Record)
	}
	p.RecordLoaded = true
}

func saveRecord(score int) {
	if profile == nil {
		return
	}
	profile.SaveRecord(score)
}
