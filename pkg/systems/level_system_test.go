package systems

import (
	"errors"
	"testing"

	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

// tickAll 按会话顺序推进一帧：物理 → 关卡 → 界面
func tickAll(ps *PhysicsSystem, ls *LevelSystem, hs *HUDSystem) {
	ps.Update()
	ls.Update()
	hs.Update()
}

// TestEndToEndSuccess 一个球、一个正上方的目标，发射 (0, 5) 后过关
func TestEndToEndSuccess(t *testing.T) {
	cfg, lvl := newTestLevel(t, &config.LevelConfig{
		ID:      "e2e-success",
		Balls:   1,
		Targets: []config.TargetConfig{{Points: square(100, 100, 8)}},
	}, nil)
	ps, ls, hs := NewPhysicsSystem(cfg, lvl), NewLevelSystem(lvl), NewHUDSystem(lvl)

	if err := NewLaunchSystem(cfg, lvl).LaunchWithVelocity(geom.Pt(0, 5)); err != nil {
		t.Fatal(err)
	}
	ticks := 0
	for ; ticks < 200 && ls.Outcome() == types.OutcomePlaying; ticks++ {
		tickAll(ps, ls, hs)
	}

	if ls.Outcome() != types.OutcomeSuccess {
		t.Fatalf("outcome after %d ticks: got %v, want Success", ticks, ls.Outcome())
	}
	if lvl.Score != cfg.Target.Score || lvl.FinalScore() != cfg.Target.Score {
		t.Errorf("score %d final %d, want %d", lvl.Score, lvl.FinalScore(), cfg.Target.Score)
	}
	if !visible(lvl, lvl.HUD.EndLevelSuccess) || visible(lvl, lvl.HUD.EndLevelFail) {
		t.Error("success banner should be the only banner shown")
	}
	// 100 分：个位 0，十位 0，百位 1
	hundreds, _ := ecs.GetComponent[*components.DigitComponent](lvl.EntityManager, lvl.HUD.Digits[2])
	if hundreds.Value != 1 {
		t.Errorf("hundreds digit: got %d, want 1", hundreds.Value)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](lvl.EntityManager, lvl.HUD.Digits[2])
	if sprite.Texture != hundreds.Textures[1] {
		t.Errorf("hundreds texture: got %d, want %d", sprite.Texture, hundreds.Textures[1])
	}
}

// TestEndToEndFailureOutOfBounds 球离开场地、目标未收集时失败
func TestEndToEndFailureOutOfBounds(t *testing.T) {
	cfg, lvl := newTestLevel(t, &config.LevelConfig{
		ID:        "e2e-out",
		Balls:     1,
		BallStart: &config.Point{X: 100, Y: 310},
		Targets:   []config.TargetConfig{{Points: square(30, 150, 8)}},
	}, nil)
	ps, ls, hs := NewPhysicsSystem(cfg, lvl), NewLevelSystem(lvl), NewHUDSystem(lvl)
	NewLaunchSystem(cfg, lvl).LaunchWithVelocity(geom.Pt(0, 5))

	for i := 0; i < 10 && ls.Outcome() == types.OutcomePlaying; i++ {
		tickAll(ps, ls, hs)
	}
	if ls.Outcome() != types.OutcomeFailure {
		t.Fatalf("outcome: got %v, want Failure", ls.Outcome())
	}
	if !visible(lvl, lvl.HUD.EndLevelFail) {
		t.Error("fail banner should be shown")
	}
}

// TestEndToEndFailureAtRest 球落地停稳、目标未收集时失败
func TestEndToEndFailureAtRest(t *testing.T) {
	cfg, lvl := newTestLevel(t, &config.LevelConfig{
		ID:      "e2e-rest",
		Balls:   1,
		Targets: []config.TargetConfig{{Points: square(30, 270, 8)}},
	}, nil)
	ps, ls, hs := NewPhysicsSystem(cfg, lvl), NewLevelSystem(lvl), NewHUDSystem(lvl)
	NewLaunchSystem(cfg, lvl).LaunchWithVelocity(geom.Pt(0, 0.5))

	for i := 0; i < 3000 && ls.Outcome() == types.OutcomePlaying; i++ {
		tickAll(ps, ls, hs)
	}
	if ls.Outcome() != types.OutcomeFailure {
		t.Fatalf("outcome: got %v, want Failure", ls.Outcome())
	}
}

// TestNextBallBecomesReady 球结束后下一个球就位，结局确定后不再变化
func TestNextBallBecomesReady(t *testing.T) {
	cfg, lvl := newTestLevel(t, &config.LevelConfig{
		ID:        "next",
		Balls:     2,
		BallStart: &config.Point{X: 100, Y: 310},
		Targets:   []config.TargetConfig{{Points: square(30, 150, 8)}},
	}, nil)
	ps, ls, hs := NewPhysicsSystem(cfg, lvl), NewLevelSystem(lvl), NewHUDSystem(lvl)
	launcher := NewLaunchSystem(cfg, lvl)

	hs.Update()
	if !visible(lvl, lvl.HUD.BallIcons[0]) || !visible(lvl, lvl.HUD.BallIcons[1]) {
		t.Error("both ball icons should be shown before the first launch")
	}

	launcher.LaunchWithVelocity(geom.Pt(0, 5))
	hs.Update()
	if !visible(lvl, lvl.HUD.GhostBall) {
		t.Error("ghost ball should preview the waiting ball during flight")
	}

	tickAll(ps, ls, hs)

	if ls.Outcome() != types.OutcomePlaying {
		t.Fatalf("outcome: got %v, want Playing", ls.Outcome())
	}
	ready, ok := lvl.ReadyBall()
	if !ok || ready != lvl.Balls[1] {
		t.Fatalf("ReadyBall: got %v, %v, want ball 1", ready, ok)
	}
	if !visible(lvl, ready) {
		t.Error("ready ball should be visible")
	}
	if visible(lvl, lvl.HUD.BallIcons[1]) || !visible(lvl, lvl.HUD.BallIcons[0]) {
		t.Error("one ball icon should remain")
	}

	launcher.LaunchWithVelocity(geom.Pt(0, 5))
	tickAll(ps, ls, hs)
	if ls.Outcome() != types.OutcomeFailure {
		t.Fatalf("outcome: got %v, want Failure", ls.Outcome())
	}
	if err := launcher.LaunchWithVelocity(geom.Pt(0, 5)); !errors.Is(err, ErrNoBallReady) {
		t.Errorf("launch after failure: got %v, want ErrNoBallReady", err)
	}

	// 结局确定后不再变化
	tc, _ := ecs.GetComponent[*components.TargetComponent](lvl.EntityManager, lvl.Targets[0])
	tc.Collected = true
	ls.Update()
	if ls.Outcome() != types.OutcomeFailure {
		t.Errorf("outcome changed after decision: got %v", ls.Outcome())
	}
	if level.EvaluateOutcome(lvl) != types.OutcomeSuccess {
		t.Error("EvaluateOutcome is a pure query over current state")
	}
}
