package components

import (
	"errors"
	"testing"

	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// TestBodyTranslateKeepsBoundsInSync 顶点与包围盒同步平移
func TestBodyTranslateKeepsBoundsInSync(t *testing.T) {
	src := geom.RectQuad(10, 10, 30, 20)
	body, err := NewBodyComponent(src)
	if err != nil {
		t.Fatalf("NewBodyComponent() error = %v", err)
	}

	body.Translate(5, -2.5)

	want, _ := geom.ComputeAABB(body.Vertices)
	if body.Bounds != want {
		t.Errorf("Bounds: got %+v, recomputed %+v", body.Bounds, want)
	}
	if src[0] != geom.Pt(10, 20) {
		t.Error("NewBodyComponent must copy the input vertices")
	}

	body.MoveCenterTo(geom.Pt(0, 0))
	if c := body.Center(); c != geom.Pt(0, 0) {
		t.Errorf("Center after MoveCenterTo: got %+v", c)
	}
}

func TestNewBodyComponentEmpty(t *testing.T) {
	if _, err := NewBodyComponent(nil); !errors.Is(err, geom.ErrInvalidGeometry) {
		t.Errorf("got %v, want ErrInvalidGeometry", err)
	}
}

func TestBodySetVertices(t *testing.T) {
	body, _ := NewBodyComponent(geom.RectQuad(0, 0, 1, 1))
	if err := body.SetVertices(geom.RectQuad(4, 4, 8, 6)); err != nil {
		t.Fatalf("SetVertices() error = %v", err)
	}
	if body.Bounds != (geom.AABB{MinX: 4, MaxX: 8, MinY: 4, MaxY: 6}) {
		t.Errorf("Bounds: got %+v", body.Bounds)
	}
	if err := body.SetVertices(nil); err == nil {
		t.Error("SetVertices(nil) should fail")
	}
}

func TestMoverNext(t *testing.T) {
	loop := &MoverComponent{Waypoints: make([]geom.Point, 3), Mode: types.PathLoop, Segment: 2, Direction: 1}
	if got := loop.Next(); got != 0 {
		t.Errorf("loop Next from last: got %d, want 0", got)
	}

	bounce := &MoverComponent{Waypoints: make([]geom.Point, 3), Mode: types.PathBounce, Segment: 2, Direction: -1}
	if got := bounce.Next(); got != 1 {
		t.Errorf("bounce Next backwards: got %d, want 1", got)
	}
}

func TestBallActive(t *testing.T) {
	b := &BallComponent{State: types.BallReady}
	if b.Active() {
		t.Error("ready ball is not active")
	}
	b.State = types.BallInFlight
	if !b.Active() {
		t.Error("in-flight ball is active")
	}
}
