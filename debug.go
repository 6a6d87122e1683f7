package reel

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-tick traversal metrics.
// Only populated when Stage.debug is true.
type debugStats struct {
	traverseTime time.Duration
	nodes        int
}

// debugStatsCurrent accumulates stats for the tick in progress.
var debugStatsCurrent debugStats

// debugLog prints traversal stats to stderr.
func (st *Stage) debugLog(stats debugStats) {
	if !st.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[reel] tick %d | traverse: %v | nodes drawn: %d\n",
		st.ticks, stats.traverseTime, stats.nodes)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[reel] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckFrameSize warns on stderr if a clip's current frame holds more
// than 1000 children.
const debugMaxFrameSize = 1000

func debugCheckFrameSize(n *Node) {
	if l := n.Len(); l > debugMaxFrameSize {
		_, _ = fmt.Fprintf(os.Stderr, "[reel] warning: clip %q frame %d has %d children (threshold %d)\n",
			n.Name, n.current, l, debugMaxFrameSize)
	}
}

// debugCheckTweenTarget warns once when a running tween's target is no
// longer in any tree. Reports whether it warned.
func debugCheckTweenTarget(tw *Tween) bool {
	t := tw.Target
	if t == nil || t.parent != nil || t.stage != nil {
		return false
	}
	_, _ = fmt.Fprintf(os.Stderr, "[reel] warning: tween is animating detached node %q; stop the tween first\n",
		t.Name)
	return true
}
