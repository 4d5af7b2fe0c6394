package components

import "github.com/yohamta/donburi"

type PickupData struct {
	ID   uint32
	Name string
}

var Pickup = donburi.NewComponentType[PickupData]()
