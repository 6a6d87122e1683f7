package reel

import (
	"encoding/json"
	"fmt"
	"log"
	"slices"
)

// Slice is a sub-rectangle of a spritesheet image.
type Slice struct {
	Image      Image
	Name       string
	X, Y, W, H float64
}

// Spritesheet is one atlas image plus a catalog of slices addressed by index
// and, when loaded from a TexturePacker file, by name.
type Spritesheet struct {
	Source        Image
	Width, Height float64

	slices []*Slice
	names  map[string]int
}

// NewSpritesheet creates an empty catalog over src. Width and Height default
// to the image size.
func NewSpritesheet(src Image) *Spritesheet {
	w, h := imageSize(src)
	return &Spritesheet{Source: src, Width: w, Height: h, names: make(map[string]int)}
}

// Len returns the number of slices in the catalog.
func (ss *Spritesheet) Len() int {
	return len(ss.slices)
}

// Slice appends a slice and returns its index.
func (ss *Spritesheet) Slice(x, y, w, h float64) int {
	ss.slices = append(ss.slices, &Slice{Image: ss.Source, X: x, Y: y, W: w, H: h})
	return len(ss.slices) - 1
}

// Push appends a slice and returns the spritesheet for chaining.
func (ss *Spritesheet) Push(x, y, w, h float64) *Spritesheet {
	ss.Slice(x, y, w, h)
	return ss
}

// Cut appends a slice and returns a sprite for it.
func (ss *Spritesheet) Cut(x, y, w, h float64) *Node {
	return ss.Sprite(ss.Slice(x, y, w, h))
}

// Grid divides the sheet into cols×rows cells, each inset by border on every
// side, and appends them row by row.
func (ss *Spritesheet) Grid(cols, rows int, border float64) *Spritesheet {
	b2 := 2 * border
	w := ss.Width/float64(cols) - b2
	h := ss.Height/float64(rows) - b2
	for r := range rows {
		for c := range cols {
			ss.Slice(float64(c)*(w+b2)+border, float64(r)*(h+b2)+border, w, h)
		}
	}
	return ss
}

// SliceAt returns the slice at index i. Panics if i is out of range.
func (ss *Spritesheet) SliceAt(i int) *Slice {
	if i < 0 || i >= len(ss.slices) {
		panic(fmt.Sprintf("reel: sprite index %d out of range [0, %d)", i, len(ss.slices)))
	}
	return ss.slices[i]
}

// Sprite returns a new sprite node for slice i. Panics if i is out of range.
func (ss *Spritesheet) Sprite(i int) *Node {
	sl := ss.SliceAt(i)
	return NewSprite(sl.Name, sl)
}

// Named returns a new sprite for the slice with the given name. Unknown
// names produce a sprite that paints nothing; debug mode logs them.
func (ss *Spritesheet) Named(name string) *Node {
	if i, ok := ss.names[name]; ok {
		return ss.Sprite(i)
	}
	if globalDebug {
		log.Printf("reel: spritesheet slice %q not found", name)
	}
	return NewSprite(name, nil)
}

// Index returns the index of the named slice.
func (ss *Spritesheet) Index(name string) (int, bool) {
	i, ok := ss.names[name]
	return i, ok
}

// Sprites returns a new sprite for every slice, in index order.
func (ss *Spritesheet) Sprites() []*Node {
	out := make([]*Node, len(ss.slices))
	for i := range ss.slices {
		out[i] = ss.Sprite(i)
	}
	return out
}

// Each calls fn with a new sprite for each index.
func (ss *Spritesheet) Each(indexes []int, fn func(*Node)) *Spritesheet {
	for _, i := range indexes {
		fn(ss.Sprite(i))
	}
	return ss
}

// Select returns new sprites for the given indexes.
func (ss *Spritesheet) Select(indexes ...int) []*Node {
	out := make([]*Node, 0, len(indexes))
	ss.Each(indexes, func(n *Node) { out = append(out, n) })
	return out
}

// Clip builds a playing clip with one frame per index, sized to the largest
// sprite, positioned on its first frame.
func (ss *Spritesheet) Clip(indexes ...int) *Node {
	c := NewClip("")
	c.RemoveFrame(0)
	var w, h float64
	ss.Each(indexes, func(sp *Node) {
		c.AddFrame(sp)
		w = max(w, sp.Width)
		h = max(h, sp.Height)
	})
	if c.FrameCount() > 0 {
		c.Go(0)
	}
	c.Size(w, h)
	return c
}

// Map returns a tile map node that uses every sprite of the sheet as a tile.
func (ss *Spritesheet) Map(tw, th float64) *Node {
	return NewMap("", ss.Sprites(), tw, th)
}

// --- TexturePacker JSON ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Filename string   `json:"filename"`
	Frame    jsonRect `json:"frame"`
}

// LoadSpritesheet parses TexturePacker JSON data into a catalog over src.
// Both the hash format ("frames" object keyed by name) and the array format
// ("frames" list with "filename") are accepted. Hash entries are indexed in
// name order; array entries keep their file order. Rotated and trimmed
// frames are cataloged by their atlas rectangle only.
func LoadSpritesheet(jsonData []byte, src Image) (*Spritesheet, error) {
	var probe struct {
		Frames json.RawMessage `json:"frames"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("reel: failed to parse spritesheet JSON: %w", err)
	}
	if len(probe.Frames) == 0 {
		return nil, fmt.Errorf("reel: spritesheet JSON has no \"frames\" key")
	}

	var frames []jsonFrame
	switch probe.Frames[0] {
	case '[':
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("reel: failed to parse spritesheet frames array: %w", err)
		}
	case '{':
		var hash map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &hash); err != nil {
			return nil, fmt.Errorf("reel: failed to parse spritesheet frames: %w", err)
		}
		names := make([]string, 0, len(hash))
		for name := range hash {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			f := hash[name]
			f.Filename = name
			frames = append(frames, f)
		}
	default:
		return nil, fmt.Errorf("reel: spritesheet \"frames\" must be an object or array")
	}

	ss := NewSpritesheet(src)
	for _, f := range frames {
		r := f.Frame
		i := ss.Slice(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
		ss.slices[i].Name = f.Filename
		ss.names[f.Filename] = i
	}
	return ss, nil
}
