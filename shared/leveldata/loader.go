package leveldata

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // walkable layers are PNG exports
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/walkabout/shared/gamemath"
	"github.com/automoto/walkabout/shared/walkmask"
	"github.com/lafriks/go-tiled"
)

// ErrNoWalkableLayer is returned when a TMX has neither a walkable image
// layer nor a WalkableZones object group.
var ErrNoWalkableLayer = errors.New("no walkable image layer or zones group")

const defaultWalkSeconds = 1.5

// LoadLevel parses a TMX file and builds its walkability mask. It takes an
// fs.FS so callers can pass embed.FS (client) or os.DirFS (tools, tests).
//
// The walkable area comes from an image layer named "walkable" when present,
// otherwise from the rectangles and polygons of the "WalkableZones" group
// rendered into an image of the map's size.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	img, err := walkableImage(fsys, tmxPath, levelMap, level.MapWidth, level.MapHeight)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	level.WalkableImage = img
	if level.Mask, err = walkmask.FromImage(img); err != nil {
		return nil, fmt.Errorf("%s: build mask: %w", tmxPath, err)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case PickupsGroup:
			for _, o := range og.Objects {
				level.Pickups = append(level.Pickups, Pickup{
					ID:   o.ID,
					Name: o.Name,
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
				})
			}
		case IntroWalkGroup:
			if len(og.Objects) > 0 && level.IntroWalk == nil {
				o := og.Objects[0]
				seconds := o.Properties.GetFloat("seconds")
				if seconds <= 0 {
					seconds = defaultWalkSeconds
				}
				level.IntroWalk = &Walk{X: o.X, Y: o.Y, Seconds: seconds}
			}
		}
	}

	sort.SliceStable(level.SpawnPoints, func(i, j int) bool {
		if level.SpawnPoints[i].Index != level.SpawnPoints[j].Index {
			return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
		}
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	return level, nil
}

func walkableImage(fsys fs.FS, tmxPath string, levelMap *tiled.Map, w, h int) (*image.RGBA, error) {
	for _, layer := range levelMap.ImageLayers {
		if layer.Name != WalkableImageLayer || layer.Image == nil {
			continue
		}
		src := path.Join(path.Dir(tmxPath), layer.Image.Source)
		f, err := fsys.Open(src)
		if err != nil {
			return nil, fmt.Errorf("open walkable image: %w", err)
		}
		defer f.Close()

		decoded, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode walkable image %s: %w", src, err)
		}
		b := decoded.Bounds()
		rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), decoded, b.Min, draw.Src)
		return rgba, nil
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != WalkableZonesGroup {
			continue
		}
		return walkmask.RenderZones(w, h, zonesFromObjects(og.Objects)), nil
	}

	return nil, ErrNoWalkableLayer
}

// zonesFromObjects converts Tiled rectangles and polygons to zones.
// Polygon points are relative to the object origin.
func zonesFromObjects(objects []*tiled.Object) []walkmask.Zone {
	var zones []walkmask.Zone
	for _, o := range objects {
		if len(o.Polygons) > 0 && o.Polygons[0].Points != nil {
			pts := *o.Polygons[0].Points
			zone := walkmask.Zone{Points: make([]gamemath.Vec, len(pts))}
			for i, p := range pts {
				zone.Points[i] = gamemath.Vec{X: o.X + p.X, Y: o.Y + p.Y}
			}
			zones = append(zones, zone)
			continue
		}
		if o.Width > 0 && o.Height > 0 {
			zones = append(zones, walkmask.RectZone(o.X, o.Y, o.Width, o.Height))
		}
	}
	return zones
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and loads
// them in name order.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	sort.Strings(matches)
	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
