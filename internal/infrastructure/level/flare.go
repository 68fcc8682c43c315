package level

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseFlare reads a Flare map export:
//
//	[header]
//	width=3
//	height=3
//
//	[layer]
//	data=
//	1,0,2,
//	0,0,0,
//	2,2,1,
//
//	[ObjectsLayer]
//	type=Player
//	location=1,1,1,1
//
// Sections end at a blank line. width and height override the header
// when non-zero. Later layers overwrite earlier ones.
func ParseFlare(r io.Reader, width, height int) (*Data, error) {
	p := &flareParser{
		sc:     bufio.NewScanner(r),
		width:  width,
		height: height,
	}
	p.sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if err := p.run(); err != nil {
		return nil, err
	}
	if p.tiles == nil {
		return nil, ErrNoData
	}

	return &Data{
		Width:   p.width,
		Height:  p.height,
		Tiles:   p.tiles,
		Objects: p.objects,
	}, nil
}

type flareParser struct {
	sc      *bufio.Scanner
	line    int
	width   int
	height  int
	tiles   [][]int
	objects []Object
}

func (p *flareParser) next() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	p.line++
	return strings.TrimSpace(p.sc.Text()), true
}

func (p *flareParser) run() error {
	for {
		line, ok := p.next()
		if !ok {
			break
		}

		var err error
		switch line {
		case "[header]":
			err = p.header()
		case "[layer]":
			err = p.layer()
		case "[ObjectsLayer]":
			err = p.objectsLayer()
		}
		if err != nil {
			return err
		}
	}
	return p.sc.Err()
}

func keyValue(line string) (string, string) {
	key, value, _ := strings.Cut(line, "=")
	return strings.TrimSpace(key), strings.TrimSpace(value)
}

func (p *flareParser) header() error {
	for {
		line, ok := p.next()
		if !ok || line == "" {
			return nil
		}

		key, value := keyValue(line)
		switch key {
		case "width", "height":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("line %d: bad %s %q: %w", p.line, key, value, ErrNoDimensions)
			}
			// Caller-supplied dimensions win
			if key == "width" && p.width == 0 {
				p.width = n
			}
			if key == "height" && p.height == 0 {
				p.height = n
			}
		}
	}
}

func (p *flareParser) layer() error {
	for {
		line, ok := p.next()
		if !ok || line == "" {
			return nil
		}

		if key, _ := keyValue(line); key == "data" {
			return p.data()
		}
	}
}

func (p *flareParser) data() error {
	if p.width <= 0 || p.height <= 0 {
		return fmt.Errorf("line %d: %w", p.line, ErrNoDimensions)
	}

	tiles := make([][]int, p.height)
	for row := 0; row < p.height; row++ {
		line, ok := p.next()
		if !ok || line == "" {
			return fmt.Errorf("line %d: got %d of %d rows: %w", p.line, row, p.height, ErrMissingRows)
		}

		cols, err := p.row(line)
		if err != nil {
			return err
		}
		tiles[row] = cols
	}

	p.tiles = tiles
	return nil
}

func (p *flareParser) row(line string) ([]int, error) {
	tokens := strings.Split(line, ",")
	// A trailing comma leaves an empty last token
	if n := len(tokens); n > 0 && strings.TrimSpace(tokens[n-1]) == "" {
		tokens = tokens[:n-1]
	}
	if len(tokens) < p.width {
		return nil, fmt.Errorf("line %d: %d tiles, want %d: %w", p.line, len(tokens), p.width, ErrShortRow)
	}

	cols := make([]int, p.width)
	for col := 0; col < p.width; col++ {
		tok := strings.TrimSpace(tokens[col])
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("line %d col %d: %q: %w", p.line, col, tok, ErrBadTile)
		}
		cols[col] = tileID(v)
	}
	return cols, nil
}

func (p *flareParser) objectsLayer() error {
	var (
		kind    string
		hasKind bool
	)

	for {
		line, ok := p.next()
		if !ok || line == "" {
			return nil
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		key, value := keyValue(line)
		switch key {
		case "type":
			kind, hasKind = value, value != ""
		case "location":
			if !hasKind {
				return fmt.Errorf("line %d: location without type: %w", p.line, ErrBadObject)
			}
			x, y, err := parseLocation(value)
			if err != nil {
				return fmt.Errorf("line %d: %w", p.line, err)
			}
			p.objects = append(p.objects, Object{Type: kind, X: x, Y: y})
			hasKind = false
		}
	}
}

// parseLocation reads "x,y" or "x,y,w,h"; only x and y are used
func parseLocation(value string) (float64, float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("location %q: %w", value, ErrBadObject)
	}

	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("location %q: %w", value, ErrBadObject)
	}
	return x, y, nil
}
