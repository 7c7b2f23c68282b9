package components

import "github.com/yohamta/donburi"

// ProfileData holds the values kept in local storage. Both are absent until
// their asynchronous loads resolve.
type ProfileData struct {
	Record       int
	RecordLoaded bool
	PlayerID     string
}

var Profile = donburi.NewComponentType[ProfileData]()
