package game

import (
	"fmt"
	"log"

	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/systems"
	"github.com/gonewx/burgerball/pkg/types"
)

// Session 一次关卡尝试
//
// 持有关卡的实体管理器和所有系统。Tick 在单个 goroutine 中同步执行
// 物理 → 关卡 → 界面；渲染层只通过 Frame() 拿到复制出来的快照。
type Session struct {
	cfg      *config.GameConfig
	def      *config.LevelConfig
	textures level.TextureProvider

	lvl      *level.Level
	physics  *systems.PhysicsSystem
	levels   *systems.LevelSystem
	hud      *systems.HUDSystem
	launcher *systems.LaunchSystem

	ticks int
}

// NewSession 装配关卡并创建会话
//
// 参数:
//   - cfg: 游戏配置，会话期间不可修改
//   - def: 关卡定义
//   - textures: 贴图提供者
//
// 返回:
//   - *Session: 会话实例
//   - error: 关卡数据非法时返回错误，此时不会开始任何帧
func NewSession(cfg *config.GameConfig, def *config.LevelConfig, textures level.TextureProvider) (*Session, error) {
	s := &Session{cfg: cfg, def: def, textures: textures}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// build 用新的实体管理器重新装配关卡，旧实体整体丢弃
func (s *Session) build() error {
	lvl, err := level.Assemble(ecs.NewEntityManager(), s.cfg, s.def, s.textures)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	s.lvl = lvl
	s.physics = systems.NewPhysicsSystem(s.cfg, lvl)
	s.levels = systems.NewLevelSystem(lvl)
	s.hud = systems.NewHUDSystem(lvl)
	s.launcher = systems.NewLaunchSystem(s.cfg, lvl)
	s.ticks = 0
	s.hud.Update()
	return nil
}

// Tick 推进一帧，结局确定后不再推进物理
func (s *Session) Tick() types.Outcome {
	if s.levels.Outcome() == types.OutcomePlaying {
		s.physics.Update()
		s.levels.Update()
		s.ticks++
	}
	s.hud.Update()
	return s.levels.Outcome()
}

// Aim 拖拽中更新速度箭头，返回预览速度
func (s *Session) Aim(start, current geom.Point) (geom.Point, error) {
	return s.launcher.Aim(start, current)
}

// CancelAim 取消瞄准
func (s *Session) CancelAim() {
	s.launcher.CancelAim()
}

// Launch 按拖拽起止点发射
func (s *Session) Launch(start, end geom.Point) (geom.Point, error) {
	v, err := s.launcher.Launch(start, end)
	if err == nil {
		s.hud.Update()
	}
	return v, err
}

// LaunchWithVelocity 以固定速度发射
func (s *Session) LaunchWithVelocity(v geom.Point) error {
	if err := s.launcher.LaunchWithVelocity(v); err != nil {
		return err
	}
	s.hud.Update()
	return nil
}

// Retry 从头重新开始本关
func (s *Session) Retry() error {
	log.Printf("[Session] Retrying level %s", s.def.ID)
	return s.build()
}

// Outcome 当前结局
func (s *Session) Outcome() types.Outcome {
	return s.levels.Outcome()
}

// Level 当前关卡（只读使用）
func (s *Session) Level() *level.Level {
	return s.lvl
}

// Definition 关卡定义
func (s *Session) Definition() *config.LevelConfig {
	return s.def
}

// Ticks 本次尝试已推进的帧数
func (s *Session) Ticks() int {
	return s.ticks
}

// Frame 当前帧的只读快照
func (s *Session) Frame() Frame {
	return Frame{
		LevelID:    s.lvl.ID,
		LevelName:  s.lvl.Name,
		Tick:       s.ticks,
		Outcome:    s.levels.Outcome(),
		Score:      s.lvl.Score,
		FinalScore: s.lvl.FinalScore(),
		BallsLeft:  s.lvl.BallsInReserve(),
		Draws:      s.lvl.DrawRecords(),
	}
}
