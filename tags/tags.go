package tags

import "github.com/yohamta/donburi"

var (
	Hero   = donburi.NewTag().SetName("Hero")
	Pickup = donburi.NewTag().SetName("Pickup")
)

// Resolv tags for overlap queries
const (
	ResolvHero   = "Hero"
	ResolvPickup = "pickup"
)
