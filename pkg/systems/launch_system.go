package systems

import (
	"errors"
	"log"

	"github.com/gonewx/burgerball/pkg/aim"
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

// ErrNoBallReady 没有待发射的球
var ErrNoBallReady = errors.New("no ball ready to launch")

// LaunchSystem 处理瞄准与发射
//
// 只有这里会给球赋予发射速度；瞄准只更新速度箭头，不改变球的状态。
type LaunchSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameConfig
	lvl *level.Level
}

// NewLaunchSystem 创建发射系统
func NewLaunchSystem(cfg *config.GameConfig, lvl *level.Level) *LaunchSystem {
	return &LaunchSystem{em: lvl.EntityManager, cfg: cfg, lvl: lvl}
}

// readyBall 返回待发射的球
func (s *LaunchSystem) readyBall() (ecs.EntityID, *components.BallComponent, error) {
	id, ok := s.lvl.ReadyBall()
	if !ok {
		return 0, nil, ErrNoBallReady
	}
	ball, ok := ecs.GetComponent[*components.BallComponent](s.em, id)
	if !ok {
		return 0, nil, ErrNoBallReady
	}
	return id, ball, nil
}

// Aim 拖拽过程中更新速度箭头
//
// 参数:
//   - start: 拖拽起点（竞技场坐标）
//   - current: 当前触点
//
// 返回:
//   - geom.Point: 此刻松手将得到的初速度
//   - error: 没有待发射的球时返回 ErrNoBallReady
func (s *LaunchSystem) Aim(start, current geom.Point) (geom.Point, error) {
	if _, _, err := s.readyBall(); err != nil {
		return geom.Point{}, err
	}
	v := aim.CalculateVelocity(s.cfg.Aim, start, current)
	power := aim.FiringPower(s.cfg.Aim, start, current)

	arrow := s.lvl.HUD.VelocityArrow
	if body, ok := ecs.GetComponent[*components.BodyComponent](s.em, arrow); ok {
		if err := body.SetVertices(aim.ArrowQuad(s.cfg, s.lvl.BallStart, v, power)); err != nil {
			return geom.Point{}, err
		}
		setVisible(s.em, arrow, true)
	}
	return v, nil
}

// CancelAim 取消瞄准，隐藏速度箭头
func (s *LaunchSystem) CancelAim() {
	setVisible(s.em, s.lvl.HUD.VelocityArrow, false)
}

// Launch 按拖拽起止点发射待发射的球
func (s *LaunchSystem) Launch(start, end geom.Point) (geom.Point, error) {
	v := aim.CalculateVelocity(s.cfg.Aim, start, end)
	if err := s.LaunchWithVelocity(v); err != nil {
		return geom.Point{}, err
	}
	return v, nil
}

// LaunchWithVelocity 以给定速度发射待发射的球
func (s *LaunchSystem) LaunchWithVelocity(v geom.Point) error {
	id, ball, err := s.readyBall()
	if err != nil {
		return err
	}
	ball.Velocity = v
	ball.State = types.BallInFlight
	ball.RestTicks = 0
	setVisible(s.em, id, true)
	s.CancelAim()
	log.Printf("[LaunchSystem] Ball %d launched with velocity (%.2f, %.2f)", ball.Index, v.X, v.Y)
	return nil
}
