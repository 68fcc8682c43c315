package level

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadTMX reads a Tiled map. The first tile layer becomes the grid, using
// the same 1-based IDs as the Flare format (0 = no tile). Objects from
// every object group are placed by class, falling back to type and name.
func LoadTMX(fsys fs.FS, name string) (*Data, error) {
	levelMap, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", name, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, ErrNoData
	}

	layer := levelMap.Layers[0]
	if len(layer.Tiles) < levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("layer %q: %w", layer.Name, ErrMissingRows)
	}

	tiles := make([][]int, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		tiles[y] = make([]int, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			gid := int(tile.Tileset.FirstGID + tile.ID)
			tiles[y][x] = tileID(gid)
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	var objects []Object
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			kind := o.Class
			if kind == "" {
				kind = o.Type //nolint:staticcheck // older maps use type=
			}
			if kind == "" {
				kind = o.Name
			}
			if kind == "" {
				return nil, fmt.Errorf("object %d in %q has no class: %w", o.ID, og.Name, ErrBadObject)
			}
			objects = append(objects, Object{
				Type: kind,
				X:    o.X / tileW,
				Y:    o.Y / tileH,
			})
		}
	}

	return &Data{
		Width:   levelMap.Width,
		Height:  levelMap.Height,
		Tiles:   tiles,
		Objects: objects,
	}, nil
}
