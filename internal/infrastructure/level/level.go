// Package level reads level descriptions: Flare text exports and Tiled TMX maps.
package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

var (
	// ErrNoDimensions is returned when neither the caller nor the header gives a size
	ErrNoDimensions = errors.New("level has no width/height")
	// ErrNoData is returned when no tile layer was found
	ErrNoData = errors.New("level has no tile data")
	// ErrShortRow is returned when a data row has fewer tiles than the width
	ErrShortRow = errors.New("tile row shorter than level width")
	// ErrMissingRows is returned when a data block ends before height rows
	ErrMissingRows = errors.New("tile data has fewer rows than level height")
	// ErrBadTile is returned for a tile token that is not an integer
	ErrBadTile = errors.New("tile is not a number")
	// ErrBadObject is returned for malformed object entries
	ErrBadObject = errors.New("malformed object")
)

// Object is an entity placement in tile units. X counts columns from the
// left, Y counts rows from the top.
type Object struct {
	Type string
	X, Y float64
}

// Data is a parsed level. Tiles holds internal tile IDs: a positive source
// ID n is stored as n-1, anything else as 0.
type Data struct {
	Name    string
	Width   int
	Height  int
	Tiles   [][]int
	Objects []Object
}

// tileID converts a source tile ID to the internal one
func tileID(src int) int {
	if src > 0 {
		return src - 1
	}
	return 0
}

// Load reads a level from fsys, choosing the reader by file extension.
// width and height override the Flare header when non-zero; TMX maps
// always carry their own size.
func Load(fsys fs.FS, name string, width, height int) (*Data, error) {
	var (
		data *Data
		err  error
	)

	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		data, err = LoadTMX(fsys, name)
	default:
		f, openErr := fsys.Open(name)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open level %s: %w", name, openErr)
		}
		defer func() { _ = f.Close() }()
		data, err = ParseFlare(f, width, height)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", name, err)
	}

	data.Name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	return data, nil
}
