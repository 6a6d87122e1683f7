package reel

import (
	"errors"
	"strings"
	"testing"
)

func names(nodes []*Node) string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.Name
	}
	return strings.Join(s, ",")
}

func TestClipAddOrder(t *testing.T) {
	c := NewClip("c")
	for _, name := range []string{"a", "b", "c"} {
		if err := c.Add(NewRect(name, 1, 1)); err != nil {
			t.Fatal(err)
		}
	}
	if got := names(c.Children()); got != "a,b,c" {
		t.Errorf("children = %s, want a,b,c", got)
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestClipAddInvalid(t *testing.T) {
	c := NewClip("c")
	if err := c.Add(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Add(nil) = %v, want ErrInvalidInput", err)
	}
	var n *Node
	if err := c.Add(n); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Add(typed nil) = %v, want ErrInvalidInput", err)
	}
	if err := c.Add(ImageSource{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Add(empty ImageSource) = %v, want ErrInvalidInput", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after invalid adds, want 0", c.Len())
	}
}

func TestClipAddToNonClip(t *testing.T) {
	r := NewRect("r", 1, 1)
	if err := r.Add(NewRect("x", 1, 1)); !errors.Is(err, ErrNotClip) {
		t.Errorf("Add to rect = %v, want ErrNotClip", err)
	}
	if err := r.AddFrame(); !errors.Is(err, ErrNotClip) {
		t.Errorf("AddFrame on rect = %v, want ErrNotClip", err)
	}
}

func TestClipAddSequence(t *testing.T) {
	c := NewClip("c")
	seq := Sequence{
		NewRect("a", 1, 1),
		ImageSource{Image: testImage{8, 4}},
		Callback(func(*Node) {}),
	}
	if err := c.Add(seq); err != nil {
		t.Fatal(err)
	}
	kids := c.Children()
	if len(kids) != 3 {
		t.Fatalf("children = %d, want 3", len(kids))
	}
	if kids[1].Type != NodeTypeImage || kids[1].Width != 8 || kids[1].Height != 4 {
		t.Errorf("image child = %v %vx%v", kids[1].Type, kids[1].Width, kids[1].Height)
	}
	if kids[2].Type != NodeTypeAction {
		t.Errorf("callback child type = %v, want action", kids[2].Type)
	}
}

func TestClipAddSequenceNilElement(t *testing.T) {
	c := NewClip("c")
	err := c.Add(Sequence{NewRect("a", 1, 1), nil})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "sequence element 1") {
		t.Errorf("err = %q, want element index", err)
	}
}

func TestNodeRemove(t *testing.T) {
	c := NewClip("c")
	a, b, d := NewRect("a", 1, 1), NewRect("b", 1, 1), NewRect("d", 1, 1)
	c.AddChild(a)
	c.AddChild(b)
	c.AddChild(d)

	b.Remove()
	if got := names(c.Children()); got != "a,d" {
		t.Errorf("children = %s, want a,d", got)
	}
	if b.Parent() != nil {
		t.Error("removed node still has a parent")
	}
	// Removing again is a no-op.
	b.Remove()
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	a.Remove()
	d.Remove()
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestAddChildReparents(t *testing.T) {
	a, b := NewClip("a"), NewClip("b")
	x := NewRect("x", 1, 1)
	a.AddChild(x)
	b.AddChild(x)
	if a.Len() != 0 || b.Len() != 1 {
		t.Errorf("a.Len = %d, b.Len = %d, want 0 and 1", a.Len(), b.Len())
	}
	if x.Parent() != b {
		t.Error("parent should be b")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	outer := NewClip("outer")
	inner := NewClip("inner")
	outer.AddChild(inner)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	inner.AddChild(outer)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewClip("c").AddChild(nil)
}

func TestSelfRemovalDuringTraversal(t *testing.T) {
	c := NewClip("c")
	var calls []string
	record := func(name string, remove bool) Callback {
		return func(self *Node) {
			calls = append(calls, name)
			if remove {
				self.Remove()
			}
		}
	}
	c.AddChild(NewAction("a", record("a", false)))
	c.AddChild(NewAction("b", record("b", true)))
	c.AddChild(NewAction("c", record("c", false)))

	c.Paint(&recSurface{})
	if got := strings.Join(calls, ","); got != "a,b,c" {
		t.Errorf("calls = %s, want a,b,c", got)
	}
	if got := names(c.Children()); got != "a,c" {
		t.Errorf("children = %s, want a,c", got)
	}
}

func TestClipFrameAdvance(t *testing.T) {
	c := NewClip("c")
	c.AddFrame()
	c.AddFrame()
	if c.FrameCount() != 3 || c.Frame() != 2 {
		t.Fatalf("FrameCount = %d, Frame = %d, want 3 and 2", c.FrameCount(), c.Frame())
	}
	c.Go(0)

	s := &recSurface{}
	for i := 1; i <= 7; i++ {
		c.Paint(s)
		if c.Frame() != i%3 {
			t.Errorf("after %d paints frame = %d, want %d", i, c.Frame(), i%3)
		}
	}

	c.Stop()
	c.Paint(s)
	if c.Frame() != 7%3 {
		t.Errorf("stopped clip advanced to %d", c.Frame())
	}
	if c.IsPlaying() {
		t.Error("IsPlaying should be false after Stop")
	}
}

func TestClipFramesHoldSeparateChildren(t *testing.T) {
	c := NewClip("c")
	c.AddChild(NewRect("f0", 1, 1))
	if err := c.AddFrame(NewRect("f1a", 1, 1), NewRect("f1b", 1, 1)); err != nil {
		t.Fatal(err)
	}
	if got := names(c.Children()); got != "f1a,f1b" {
		t.Errorf("frame 1 children = %s", got)
	}
	c.Go(0)
	if got := names(c.Children()); got != "f0" {
		t.Errorf("frame 0 children = %s", got)
	}

	var seen []string
	c.Each(func(n *Node) { seen = append(seen, n.Name) })
	if got := strings.Join(seen, ","); got != "f1a,f1b,f0" {
		t.Errorf("Each = %s, want f1a,f1b,f0", got)
	}
}

func TestRemoveFrame(t *testing.T) {
	c := NewClip("c")
	c.AddFrame()
	x := NewRect("x", 1, 1)
	c.AddChild(x)
	c.AddFrame()

	c.RemoveFrame(1)
	if c.FrameCount() != 2 {
		t.Errorf("FrameCount = %d, want 2", c.FrameCount())
	}
	if c.Frame() != 0 {
		t.Errorf("Frame = %d, want 0", c.Frame())
	}
	if x.Parent() != nil {
		t.Error("child of removed frame should be detached")
	}
}

func TestGoOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewClip("c").Go(5)
}

func TestInvalidatePropagates(t *testing.T) {
	outer, inner := NewClip("outer"), NewClip("inner")
	leaf := NewRect("leaf", 1, 1)
	outer.AddChild(inner)
	inner.AddChild(leaf)
	outer.dirty, inner.dirty, leaf.dirty = false, false, false

	leaf.Pos(3, 4)
	if !leaf.IsDirty() || !inner.IsDirty() || !outer.IsDirty() {
		t.Error("Pos should dirty the node and every ancestor")
	}
}

func TestAlign(t *testing.T) {
	c := NewClip("c").Size(100, 50)
	r := NewRect("r", 10, 10)
	c.AddChild(r)

	r.Align(AlignRight, nil)
	assertNear(t, "right X", r.X, 90)
	r.Align(AlignCenterMiddle, nil)
	assertNear(t, "center X", r.X, 50)
	assertNear(t, "middle Y", r.Y, 25)
	r.Align(AlignOrigin, nil)
	assertNear(t, "origin X", r.X, -5)
	assertNear(t, "origin Y", r.Y, -5)
}

func TestToClip(t *testing.T) {
	r := NewRect("r", 12, 8)
	c := r.ToClip()
	if !c.IsClip() || r.Parent() != c {
		t.Fatal("ToClip should wrap the node")
	}
	if c.Width != 12 || c.Height != 8 {
		t.Errorf("size = %vx%v, want 12x8", c.Width, c.Height)
	}
}

func TestClipAddSequenceWithNilAddsNothing(t *testing.T) {
	c := NewClip("c")
	var missing *Node
	seq := Sequence{NewRect("a", 1, 1), Sequence{NewRect("b", 1, 1), missing}}
	err := c.Add(seq)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Add = %v, want ErrInvalidInput", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after failed sequence, want 0", c.Len())
	}

	err = c.Add(Sequence{NewRect("a", 1, 1), Callback(nil)})
	if !errors.Is(err, ErrInvalidInput) || c.Len() != 0 {
		t.Errorf("Add = %v, Len = %d", err, c.Len())
	}
}

func TestClipLenTracksFrames(t *testing.T) {
	a, b := NewClip("a"), NewClip("b")
	kids := []*Node{NewRect("x", 1, 1), NewRect("y", 1, 1), NewRect("z", 1, 1)}
	for _, k := range kids {
		a.AddChild(k)
	}
	a.AddFrame(NewRect("other", 1, 1))
	if a.Len() != 1 {
		t.Errorf("frame 1 Len = %d, want 1", a.Len())
	}
	a.Go(0)
	if a.Len() != 3 {
		t.Errorf("frame 0 Len = %d, want 3", a.Len())
	}

	kids[1].Remove()
	kids[1].Remove()
	b.AddChild(kids[0])
	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("a.Len = %d, b.Len = %d, want 1 and 1", a.Len(), b.Len())
	}

	// Removing frame 0 detaches z; removing it again is a no-op.
	a.RemoveFrame(0)
	kids[2].Remove()
	if a.Len() != 1 || kids[2].Parent() != nil {
		t.Errorf("after RemoveFrame Len = %d", a.Len())
	}
}

func TestNextFrameSingleFrameStaysClean(t *testing.T) {
	c := NewClip("c")
	c.dirty = false
	c.NextFrame()
	if c.IsDirty() || c.Frame() != 0 {
		t.Errorf("dirty = %v, frame = %d", c.IsDirty(), c.Frame())
	}

	outer := NewClip("outer")
	c.AddFrame()
	outer.AddChild(c)
	outer.dirty, c.dirty = false, false
	c.NextFrame()
	if c.Frame() != 0 || !c.IsDirty() || !outer.IsDirty() {
		t.Errorf("frame = %d, dirty = %v, outer dirty = %v", c.Frame(), c.IsDirty(), outer.IsDirty())
	}
}
