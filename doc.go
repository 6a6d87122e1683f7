// Package reel is a retained-mode 2D flip-book scene graph with an
// [Ebitengine] backend.
//
// Reel provides the scene tree, affine transforms, frame-based clips,
// pluggable draw/paint/hit-test strategies, tick-counted tweens with easing
// curves, and AABB/circle collision that a small 2D game needs.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	st, _ := reel.NewEbitenStage(640, 480)
//	// ... add nodes ...
//	reel.Run(st, reel.RunConfig{Title: "My Game"})
//
// The core never touches pixels itself. Every draw call goes through the
// [Surface] interface, so a stage can be driven by any [Backend]: call
// [Stage.Tick] once per frame and present [Stage.Screen].
//
// # Scene graph
//
// Every element is a [Node]. Clips ([NewClip]) hold children in frames; each
// frame is a circular list, so adding and removing is O(1) and a child may
// remove itself while its clip is being drawn. A playing clip advances one
// frame every time it is painted.
//
//	hero := reel.NewClip("hero")
//	hero.Add(reel.Sequence{body, reel.NewText("name", "Hero")})
//	st.Add(hero)
//
// Behavior lives in strategy fields ([Node.Drawer], [Node.Painter],
// [Node.HitTester], [Node.CollisionTester], [Node.CollisionQuerier]) that
// may be swapped at any time. [Node.Cache] replaces a node's draw strategy
// with a bitmap that is re-rendered only after [Node.Invalidate].
//
// # Animation
//
// A [Tween] is itself a node: add it to a clip and it steps once per tick.
//
//	tw := reel.NewTween(hero, map[string]float64{"x": 300, "alpha": 0})
//	tw.Duration = 60
//	tw.Easing = reel.EaseOutQuad
//	st.Add(tw)
//
// For seconds-based animation, [TweenGroup] wraps [gween].
//
// # Collision
//
// Add a [Collider] to test one node against another, or against every child
// of a clip, each tick. Contacts go to the collider's callback and to the
// stage's [CollisionSink]; the reel/ecs module publishes them into a
// [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package reel
