package entity

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyGrid is returned when a grid has no rows or no columns
	ErrEmptyGrid = errors.New("tile grid is empty")
	// ErrRaggedGrid is returned when rows differ in length
	ErrRaggedGrid = errors.New("tile grid rows differ in length")
	// ErrTileSize is returned for a non-positive tile size
	ErrTileSize = errors.New("tile size must be positive")
)

// TileGrid is the immutable collision map of a level.
// Tiles is row-major: Tiles[row][col]. Row 0 is the top of the level and
// world Y grows upward, so row r spans y in [-(r+1)*TileSize, -r*TileSize].
type TileGrid struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]int

	solid map[int]struct{}
}

// NewTileGrid builds a grid from row-major tile IDs and the set of solid IDs
func NewTileGrid(tiles [][]int, tileSize float64, solids []int) (*TileGrid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrTileSize, tileSize)
	}
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(tiles[0])
	for row, cols := range tiles {
		if len(cols) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedGrid, row, len(cols), width)
		}
	}

	solid := make(map[int]struct{}, len(solids))
	for _, id := range solids {
		solid[id] = struct{}{}
	}

	return &TileGrid{
		Width:    width,
		Height:   len(tiles),
		TileSize: tileSize,
		Tiles:    tiles,
		solid:    solid,
	}, nil
}

// WorldToTile maps a world position to the tile containing it
func (g *TileGrid) WorldToTile(x, y float64) (col, row int) {
	col = int(math.Floor(x / g.TileSize))
	row = int(math.Floor(-y / g.TileSize))
	return col, row
}

// InBounds reports whether the tile coordinate lies inside the grid
func (g *TileGrid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// At returns the tile ID at (col, row). Out-of-range access panics;
// callers check InBounds first.
func (g *TileGrid) At(col, row int) int {
	if !g.InBounds(col, row) {
		panic(fmt.Sprintf("tile (%d,%d) outside %dx%d grid", col, row, g.Width, g.Height))
	}
	return g.Tiles[row][col]
}

// IsSolid reports whether the tile ID blocks movement
func (g *TileGrid) IsSolid(id int) bool {
	_, ok := g.solid[id]
	return ok
}

// SolidAt reports whether the tile at (col, row) is solid
func (g *TileGrid) SolidAt(col, row int) bool {
	return g.IsSolid(g.At(col, row))
}

// Probe samples the grid at a world point. inside is false when the point
// falls outside the grid, in which case solid is always false.
func (g *TileGrid) Probe(x, y float64) (col, row int, solid, inside bool) {
	col, row = g.WorldToTile(x, y)
	if !g.InBounds(col, row) {
		return col, row, false, false
	}
	return col, row, g.SolidAt(col, row), true
}

// RowTop returns the world Y of the top edge of a row
func (g *TileGrid) RowTop(row int) float64 {
	return -g.TileSize * float64(row)
}

// RowBottom returns the world Y of the bottom edge of a row
func (g *TileGrid) RowBottom(row int) float64 {
	return -g.TileSize*float64(row) - g.TileSize
}

// ColLeft returns the world X of the left edge of a column
func (g *TileGrid) ColLeft(col int) float64 {
	return g.TileSize * float64(col)
}

// ColRight returns the world X of the right edge of a column
func (g *TileGrid) ColRight(col int) float64 {
	return g.TileSize*float64(col) + g.TileSize
}

// WorldWidth returns the grid width in world units
func (g *TileGrid) WorldWidth() float64 {
	return float64(g.Width) * g.TileSize
}

// WorldHeight returns the grid height in world units
func (g *TileGrid) WorldHeight() float64 {
	return float64(g.Height) * g.TileSize
}
