package entities

import (
	"errors"
	"testing"

	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// TestNewBorders 测试外墙创建
func TestNewBorders(t *testing.T) {
	em := ecs.NewEntityManager()
	arena := config.DefaultGameConfig().Arena

	ids, err := NewBorders(em, arena, 7)
	if err != nil {
		t.Fatalf("NewBorders() error = %v", err)
	}
	if len(ids) != 4 {
		t.Fatalf("expected 4 borders, got %d", len(ids))
	}

	wantBounds := []geom.AABB{
		{MinX: 0, MaxX: 6, MinY: 0, MaxY: 300},
		{MinX: 194, MaxX: 200, MinY: 0, MaxY: 300},
		{MinX: 0, MaxX: 200, MinY: 294, MaxY: 300},
		{MinX: 0, MaxX: 200, MinY: 0, MaxY: 6},
	}
	for i, id := range ids {
		body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
		if !ok {
			t.Fatalf("border %d has no BodyComponent", i)
		}
		if body.Bounds != wantBounds[i] {
			t.Errorf("border %d bounds: got %+v, want %+v", i, body.Bounds, wantBounds[i])
		}
		kind, _ := ecs.GetComponent[*components.EntityTypeComponent](em, id)
		if kind.Kind != types.KindBorder {
			t.Errorf("border %d kind: got %v", i, kind.Kind)
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if sprite.Texture != 7 {
			t.Errorf("border %d texture: got %d, want 7", i, sprite.Texture)
		}
	}
}

// TestNewObstacleEmptyPoints 空顶点不会留下实体
func TestNewObstacleEmptyPoints(t *testing.T) {
	em := ecs.NewEntityManager()
	_, err := NewObstacle(em, nil, types.ShapePolygon, 1)
	if !errors.Is(err, geom.ErrInvalidGeometry) {
		t.Fatalf("got %v, want ErrInvalidGeometry", err)
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount: got %d, want 0", em.EntityCount())
	}
}

func TestNewObstacleNilManager(t *testing.T) {
	if _, err := NewObstacle(nil, geom.RectQuad(0, 0, 1, 1), types.ShapePolygon, 1); err == nil {
		t.Error("expected error for nil entity manager")
	}
}

// TestNewMovingObstacle 移动障碍物放到第一个路径点
func TestNewMovingObstacle(t *testing.T) {
	em := ecs.NewEntityManager()
	path := MovePath{
		Waypoints: []geom.Point{{X: 50, Y: 150}, {X: 150, Y: 150}},
		Mode:      types.PathBounce,
		Speed:     1,
	}
	id, err := NewMovingObstacle(em, geom.RectQuad(0, 0, 20, 10), types.ShapePolygon, path, 3)
	if err != nil {
		t.Fatalf("NewMovingObstacle() error = %v", err)
	}

	body, _ := ecs.GetComponent[*components.BodyComponent](em, id)
	if c := body.Center(); c != geom.Pt(50, 150) {
		t.Errorf("Center: got %+v, want (50, 150)", c)
	}
	mover, ok := ecs.GetComponent[*components.MoverComponent](em, id)
	if !ok {
		t.Fatal("missing MoverComponent")
	}
	if mover.Direction != 1 || mover.Segment != 0 || mover.Mode != types.PathBounce {
		t.Errorf("mover: got %+v", mover)
	}

	// 路径归障碍物独占
	path.Waypoints[1] = geom.Pt(0, 0)
	if mover.Waypoints[1] != geom.Pt(150, 150) {
		t.Error("mover must own a copy of the waypoints")
	}
}

func TestNewMovingObstacleBadPath(t *testing.T) {
	em := ecs.NewEntityManager()
	quad := geom.RectQuad(0, 0, 1, 1)
	if _, err := NewMovingObstacle(em, quad, types.ShapePolygon, MovePath{Waypoints: []geom.Point{{}}, Speed: 1}, 0); err == nil {
		t.Error("expected error for single waypoint")
	}
	if _, err := NewMovingObstacle(em, quad, types.ShapePolygon, MovePath{Waypoints: []geom.Point{{}, {X: 1}}}, 0); err == nil {
		t.Error("expected error for zero speed")
	}
}

// TestNewBall 测试球的初始状态
func TestNewBall(t *testing.T) {
	em := ecs.NewEntityManager()
	ready, err := NewBall(em, geom.Pt(100, 24), 8, 0, types.BallReady, 2)
	if err != nil {
		t.Fatalf("NewBall() error = %v", err)
	}
	waiting, _ := NewBall(em, geom.Pt(100, 24), 8, 1, types.BallWaiting, 2)

	body, _ := ecs.GetComponent[*components.BodyComponent](em, ready)
	if body.Bounds != (geom.AABB{MinX: 92, MaxX: 108, MinY: 16, MaxY: 32}) {
		t.Errorf("ball bounds: got %+v", body.Bounds)
	}

	s1, _ := ecs.GetComponent[*components.SpriteComponent](em, ready)
	s2, _ := ecs.GetComponent[*components.SpriteComponent](em, waiting)
	if !s1.Visible || s2.Visible {
		t.Errorf("visibility: ready=%v waiting=%v", s1.Visible, s2.Visible)
	}
	ball, _ := ecs.GetComponent[*components.BallComponent](em, waiting)
	if ball.Index != 1 || ball.Radius != 8 || !ball.Velocity.IsZero() {
		t.Errorf("ball: got %+v", ball)
	}
}

// TestHUDLayout 界面布局与原版一致
func TestHUDLayout(t *testing.T) {
	arena := config.DefaultGameConfig().Arena

	icon, _ := geom.ComputeAABB(BallsRemainingIconQuad(arena, 2))
	if icon != (geom.AABB{MinX: 176, MaxX: 182, MinY: 0, MaxY: 6}) {
		t.Errorf("icon 2: got %+v", icon)
	}

	digit, _ := geom.ComputeAABB(ScoreDigitQuad(arena, 1))
	if digit != (geom.AABB{MinX: 176, MaxX: 188, MinY: 288, MaxY: 300}) {
		t.Errorf("digit 1: got %+v", digit)
	}

	em := ecs.NewEntityManager()
	var digits [10]types.TextureHandle
	for i := range digits {
		digits[i] = types.TextureHandle(100 + i)
	}
	id, err := NewScoreDigit(em, arena, 0, digits)
	if err != nil {
		t.Fatalf("NewScoreDigit() error = %v", err)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Texture != 100 {
		t.Errorf("digit texture: got %d, want 100", sprite.Texture)
	}
	hud, _ := ecs.GetComponent[*components.HUDComponent](em, id)
	if hud.Role != types.HUDScoreDigit {
		t.Errorf("role: got %v", hud.Role)
	}
}
