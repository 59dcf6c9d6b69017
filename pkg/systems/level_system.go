package systems

import (
	"log"

	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

// LevelSystem 关卡流程：判定结局，飞行中的球结束后换上下一个球
type LevelSystem struct {
	em      *ecs.EntityManager
	lvl     *level.Level
	outcome types.Outcome
}

// NewLevelSystem 创建关卡系统
func NewLevelSystem(lvl *level.Level) *LevelSystem {
	return &LevelSystem{
		em:      lvl.EntityManager,
		lvl:     lvl,
		outcome: types.OutcomePlaying,
	}
}

// Outcome 当前关卡结果
func (s *LevelSystem) Outcome() types.Outcome {
	return s.outcome
}

// Update 每帧在物理系统之后调用
//
// 结局一旦确定就不再变化。
func (s *LevelSystem) Update() {
	if s.outcome != types.OutcomePlaying {
		return
	}

	s.outcome = level.EvaluateOutcome(s.lvl)
	if s.outcome != types.OutcomePlaying {
		log.Printf("[LevelSystem] Level %s finished: %s (score %d, final %d)",
			s.lvl.ID, s.outcome, s.lvl.Score, s.lvl.FinalScore())
		return
	}

	s.advanceBall()
}

// advanceBall 没有待发射和飞行中的球时，把下一个等待的球设为待发射
func (s *LevelSystem) advanceBall() {
	if _, ok := s.lvl.ReadyBall(); ok {
		return
	}
	if _, ok := s.lvl.InFlightBall(); ok {
		return
	}
	id, ok := s.lvl.NextWaitingBall()
	if !ok {
		return
	}

	ball, _ := ecs.GetComponent[*components.BallComponent](s.em, id)
	ball.State = types.BallReady
	if body, ok := ecs.GetComponent[*components.BodyComponent](s.em, id); ok {
		body.MoveCenterTo(s.lvl.BallStart)
	}
	setVisible(s.em, id, true)
	log.Printf("[LevelSystem] Ball %d ready (%d in reserve)", ball.Index, s.lvl.BallsInReserve())
}
