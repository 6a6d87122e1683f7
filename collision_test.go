package reel

import "testing"

func unitSquare(name string, x, y float64) *Node {
	n := NewRect(name, 1, 1)
	n.Pos(x, y)
	return n
}

func TestQueryAABBHorizontal(t *testing.T) {
	a := unitSquare("a", 0, 0)
	b := unitSquare("b", 0.5, 0)

	c, ok := a.Query(b)
	if !ok {
		t.Fatal("expected collision")
	}
	assertNear(t, "Penetration", c.Penetration, 0.5)
	assertNear(t, "NX", c.NX, 1)
	assertNear(t, "NY", c.NY, 0)
	if c.A != a || c.B != b || c.Contacts != 2 {
		t.Errorf("collision = %+v", c)
	}
	assertNear(t, "Overlap.Width", c.Overlap.Width, 0.5)
	assertNear(t, "Overlap.Height", c.Overlap.Height, 1)

	r, ok := b.Query(a)
	if !ok {
		t.Fatal("expected reverse collision")
	}
	assertNear(t, "reverse NX", r.NX, -1)
	assertNear(t, "reverse Penetration", r.Penetration, 0.5)
}

func TestQueryAABBVertical(t *testing.T) {
	a := unitSquare("a", 0, 0)
	b := unitSquare("b", 0, 0.25)
	c, ok := a.Query(b)
	if !ok {
		t.Fatal("expected collision")
	}
	assertNear(t, "NX", c.NX, 0)
	assertNear(t, "NY", c.NY, 1)
	assertNear(t, "Penetration", c.Penetration, 0.75)

	up := unitSquare("up", 0, -0.25)
	c, _ = a.Query(up)
	assertNear(t, "NY", c.NY, -1)
	assertNear(t, "Penetration", c.Penetration, 0.75)
}

func TestAABBTouchingAndSeparated(t *testing.T) {
	a := unitSquare("a", 0, 0)
	touching := unitSquare("t", 1, 0)
	far := unitSquare("f", 2, 0)

	if !a.Collides(touching) {
		t.Error("touching boxes should test as overlapping")
	}
	if _, ok := a.Query(touching); ok {
		t.Error("touching boxes should not resolve a contact")
	}
	if a.Collides(far) {
		t.Error("separated boxes should not overlap")
	}
	if _, ok := a.Query(far); ok {
		t.Error("separated boxes should not collide")
	}
	if a.Collides(nil) {
		t.Error("nil should never collide")
	}
}

func TestQueryCircle(t *testing.T) {
	a := NewCircle("a", 1)
	b := NewCircle("b", 1)
	b.Pos(1.5, 0)

	if !a.Collides(b) {
		t.Error("circles should overlap")
	}
	c, ok := a.Query(b)
	if !ok {
		t.Fatal("expected collision")
	}
	assertNear(t, "NX", c.NX, 1)
	assertNear(t, "NY", c.NY, 0)
	assertNear(t, "Penetration", c.Penetration, 0.5)
	if c.Contacts != 1 {
		t.Errorf("Contacts = %d, want 1", c.Contacts)
	}

	b.Pos(0, 0)
	c, _ = a.Query(b)
	assertNear(t, "coincident NX", c.NX, 1)
	assertNear(t, "coincident Penetration", c.Penetration, 2)

	b.Pos(2, 0)
	if a.Collides(b) {
		t.Error("touching circles should not overlap")
	}
	if _, ok := a.Query(b); ok {
		t.Error("touching circles should not collide")
	}
}

func TestCollisionReverse(t *testing.T) {
	a, b := NewRect("a", 1, 1), NewRect("b", 1, 1)
	c := Collision{A: a, B: b, NX: 1, NY: -1, TX: 2, TY: 3, Penetration: 0.5}
	r := c.Reverse()
	if r.A != b || r.B != a || r.NX != -1 || r.NY != 1 || r.TX != -2 || r.TY != -3 {
		t.Errorf("Reverse = %+v", r)
	}
	assertNear(t, "Penetration", r.Penetration, 0.5)
}

func TestContainerCollision(t *testing.T) {
	walls := NewClip("walls")
	walls.Pos(10, 0)
	first := unitSquare("first", 0, 0)
	second := unitSquare("second", 0.25, 0)
	walls.AddChild(first)
	walls.AddChild(second)

	mover := unitSquare("mover", 10.5, 0)
	if !walls.Collides(mover) {
		t.Error("container should overlap mover")
	}
	c, ok := walls.Query(mover)
	if !ok {
		t.Fatal("expected collision")
	}
	if c.A != first || c.B != mover {
		t.Errorf("contact A = %v, want first child in list order", c.A.Name)
	}
	assertNear(t, "Penetration", c.Penetration, 0.5)

	away := unitSquare("away", 0.5, 0)
	if walls.Collides(away) {
		t.Error("body outside the container's space should not overlap")
	}
	if _, ok := walls.Query(away); ok {
		t.Error("body outside the container's space should not collide")
	}
}

func TestContainerSkipsNonColliders(t *testing.T) {
	c := NewClip("c")
	c.AddChild(NewAction("a", func(*Node) {}))
	r := unitSquare("r", 0, 0)
	if c.Collides(r) {
		t.Error("actions should not collide")
	}
	if _, ok := c.Query(r); ok {
		t.Error("actions should not collide")
	}
}

func TestColliderNodeTarget(t *testing.T) {
	st, _ := newTestStage(t, 64, 64)
	sink := &sliceSink{}
	st.SetCollisionSink(sink)

	a := unitSquare("a", 0, 0)
	b := unitSquare("b", 0.5, 0)
	var got []Collision
	cl := NewCollider(a, b, func(c Collision) { got = append(got, c) })
	if err := st.Add(Sequence{a, b, cl}); err != nil {
		t.Fatal(err)
	}

	st.Tick()
	if len(got) != 1 || len(sink.got) != 1 {
		t.Fatalf("callbacks = %d, published = %d, want 1 and 1", len(got), len(sink.got))
	}
	if got[0].A != a || got[0].B != b {
		t.Errorf("contact = %+v", got[0])
	}
	if last, ok := cl.Last(); !ok || last.A != a {
		t.Errorf("Last = %+v, %v", last, ok)
	}

	b.Pos(5, 5)
	st.Tick()
	if len(got) != 1 || len(sink.got) != 1 {
		t.Errorf("separated bodies reported a contact")
	}
	if _, ok := cl.Last(); ok {
		t.Error("Last should report no contact")
	}
}

func TestColliderClipTarget(t *testing.T) {
	subject := unitSquare("subject", 0.5, 0)
	group := NewClip("group")
	child := unitSquare("child", 0, 0)
	group.AddChild(child)

	cl := NewCollider(subject, group, nil)
	c, ok := cl.Check()
	if !ok {
		t.Fatal("expected collision")
	}
	if c.A != subject || c.B != child {
		t.Errorf("contact A = %q, B = %q", c.A.Name, c.B.Name)
	}
	assertNear(t, "NX", c.NX, -1)
	assertNear(t, "Penetration", c.Penetration, 0.5)
}

func TestColliderWithoutStage(t *testing.T) {
	cl := NewCollider(unitSquare("a", 0, 0), unitSquare("b", 0.5, 0), nil)
	if _, ok := cl.Check(); !ok {
		t.Error("Check should work without a stage")
	}
	if _, ok := NewCollider(nil, nil, nil).Check(); ok {
		t.Error("collider without subject should not collide")
	}
}
