package factory

import (
	"github.com/automoto/walkabout/archetypes"
	"github.com/automoto/walkabout/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Snap: true})
	return camera
}

// CreateSession creates the HUD/save state singleton.
func CreateSession(ecs *ecs.ECS, showHUD bool) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.Set(session, &components.SessionData{ShowHUD: showHUD})
	return session
}
