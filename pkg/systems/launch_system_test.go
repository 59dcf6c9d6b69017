package systems

import (
	"errors"
	"testing"

	"github.com/gonewx/burgerball/pkg/aim"
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

func TestLaunchFlipsReadyBall(t *testing.T) {
	cfg, lvl := newTestLevel(t, &config.LevelConfig{ID: "launch", Balls: 2}, nil)
	ls := NewLaunchSystem(cfg, lvl)

	start, end := geom.Pt(100, 24), geom.Pt(140, -16)
	v, err := ls.Launch(start, end)
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if want := aim.CalculateVelocity(cfg.Aim, start, end); v != want {
		t.Errorf("velocity: got %+v, want %+v", v, want)
	}

	ball, _ := ballOf(t, lvl, 0)
	if ball.State != types.BallInFlight || ball.Velocity != v {
		t.Errorf("ball 0: got %+v", ball)
	}
	next, _ := ballOf(t, lvl, 1)
	if next.State != types.BallWaiting {
		t.Errorf("ball 1 must keep waiting, got %v", next.State)
	}

	if _, err := ls.Launch(start, end); !errors.Is(err, ErrNoBallReady) {
		t.Errorf("second launch: got %v, want ErrNoBallReady", err)
	}
}

// TestAimUpdatesArrowOnly 瞄准只更新速度箭头
func TestAimUpdatesArrowOnly(t *testing.T) {
	cfg, lvl := newTestLevel(t, &config.LevelConfig{ID: "aim", Balls: 1}, nil)
	ls := NewLaunchSystem(cfg, lvl)

	if visible(lvl, lvl.HUD.VelocityArrow) {
		t.Fatal("arrow should start hidden")
	}
	v, err := ls.Aim(geom.Pt(100, 24), geom.Pt(100, -56))
	if err != nil {
		t.Fatalf("Aim() error = %v", err)
	}
	if !approx(v.Y, cfg.Aim.MaxInitialVelocityY) {
		t.Errorf("aim velocity: got %+v", v)
	}
	if !visible(lvl, lvl.HUD.VelocityArrow) {
		t.Error("arrow should be shown while aiming")
	}
	arrow, _ := ecs.GetComponent[*components.BodyComponent](lvl.EntityManager, lvl.HUD.VelocityArrow)
	if !approx(arrow.Bounds.MaxY, lvl.BallStart.Y+cfg.Aim.ResponseRadius) {
		t.Errorf("arrow tip: got %v", arrow.Bounds.MaxY)
	}

	ball, _ := ballOf(t, lvl, 0)
	if ball.State != types.BallReady || !ball.Velocity.IsZero() {
		t.Errorf("aiming must not touch the ball: %+v", ball)
	}

	ls.CancelAim()
	if visible(lvl, lvl.HUD.VelocityArrow) {
		t.Error("CancelAim should hide the arrow")
	}
}

func TestAimWithoutReadyBall(t *testing.T) {
	cfg, lvl := newTestLevel(t, &config.LevelConfig{ID: "none", Balls: 1}, nil)
	ls := NewLaunchSystem(cfg, lvl)
	ls.LaunchWithVelocity(geom.Pt(0, 1))
	if _, err := ls.Aim(geom.Pt(0, 0), geom.Pt(1, 1)); !errors.Is(err, ErrNoBallReady) {
		t.Errorf("got %v, want ErrNoBallReady", err)
	}
}
