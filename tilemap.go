package reel

import "math"

// TileMap is the tile data of a map node: a grid of indexes into Sprites.
// Negative or out-of-range indexes leave the cell empty.
type TileMap struct {
	Sprites []*Node
	Tiles   [][]int // Tiles[row][col]

	// Tile size in pixels.
	TW, TH float64

	// Extra spacing applied between rows of an isometric map.
	OffsetX, OffsetY float64
}

// NewMap creates an orthogonal tile map node drawing sprites on a tw×th grid.
// Call SetTiles to give it data and SetIso to switch to isometric painting.
func NewMap(name string, sprites []*Node, tw, th float64) *Node {
	n := &Node{Name: name, Type: NodeTypeMap}
	nodeDefaults(n)
	n.tilemap = &TileMap{Sprites: sprites, TW: tw, TH: th}
	n.Painter = PaintMap
	return n
}

// TileMap returns the node's tile data, or nil if n is not a map.
func (n *Node) TileMap() *TileMap {
	return n.tilemap
}

// SetTiles replaces the grid and sizes the node to cover it.
func (n *Node) SetTiles(tiles [][]int) *Node {
	tm := n.tilemap
	tm.Tiles = tiles
	cols := 0
	for _, row := range tiles {
		cols = max(cols, len(row))
	}
	n.Width = float64(cols) * tm.TW
	n.Height = float64(len(tiles)) * tm.TH
	return n.Invalidate()
}

// SetTile sets the sprite index of one cell. Out-of-range cells are ignored.
func (n *Node) SetTile(col, row, index int) *Node {
	tm := n.tilemap
	if row < 0 || row >= len(tm.Tiles) || col < 0 || col >= len(tm.Tiles[row]) {
		return n
	}
	tm.Tiles[row][col] = index
	return n.Invalidate()
}

// SetIso switches the map to isometric painting.
func (n *Node) SetIso() *Node {
	n.Painter = PaintIsometric
	return n.Invalidate()
}

// TileAt returns the sprite index under the map-space point (x, y), using
// the isometric row pitch TH/2 + OffsetY.
func (n *Node) TileAt(x, y float64) (int, bool) {
	tm := n.tilemap
	col := int(math.Round(x / tm.TW))
	row := int(math.Round(y / (tm.TH/2 + tm.OffsetY)))
	if row < 0 || row >= len(tm.Tiles) || col < 0 || col >= len(tm.Tiles[row]) {
		return 0, false
	}
	return tm.Tiles[row][col], true
}

// IsometricCoords returns the top-left map-space position of cell
// (col, row) of an isometric map. Odd rows are shifted left by half a tile.
func (n *Node) IsometricCoords(col, row int) (float64, float64) {
	tm := n.tilemap
	tw2 := math.Floor(tm.TW/2) + tm.OffsetX
	th2 := math.Floor(tm.TH/2) + tm.OffsetY
	offset := float64(row%2) * tw2
	return math.Round(float64(col)*tm.TW - offset), math.Round(float64(row) * th2)
}

func (tm *TileMap) sprite(i int) *Node {
	if i < 0 || i >= len(tm.Sprites) {
		return nil
	}
	return tm.Sprites[i]
}

// PaintMap draws the grid right to left, bottom to top, translating the
// surface one tile per cell.
func PaintMap(n *Node, s Surface) {
	tm := n.tilemap
	s.Translate(0, float64(len(tm.Tiles))*tm.TH)
	for y := len(tm.Tiles) - 1; y >= 0; y-- {
		row := tm.Tiles[y]
		s.Translate(float64(len(row))*tm.TW, -tm.TH)
		for x := len(row) - 1; x >= 0; x-- {
			s.Translate(-tm.TW, 0)
			if sp := tm.sprite(row[x]); sp != nil {
				sp.Draw(s)
			}
		}
	}
}

// PaintIsometric draws the grid as staggered isometric rows, each half a
// tile lower than the last, odd rows shifted by half a tile.
func PaintIsometric(n *Node, s Surface) {
	tm := n.tilemap
	dx := math.Round(tm.TW/2) + tm.OffsetX
	dy := math.Round(tm.TH/2) + tm.OffsetY

	s.Translate(-dx, -dy)
	for y, row := range tm.Tiles {
		offset := -dx
		if y%2 == 1 {
			offset = dx
		}
		s.Translate(float64(len(row))*tm.TW-offset, dy)
		for x := len(row) - 1; x >= 0; x-- {
			s.Translate(-tm.TW, 0)
			if sp := tm.sprite(row[x]); sp != nil {
				sp.Draw(s)
			}
		}
	}
}
