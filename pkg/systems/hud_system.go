package systems

import (
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

// HUDSystem 根据关卡状态刷新界面元素的可见性和记分牌贴图
//
// 只修改 SpriteComponent 和 DigitComponent，不影响物理状态。
type HUDSystem struct {
	em  *ecs.EntityManager
	lvl *level.Level
}

// NewHUDSystem 创建界面系统
func NewHUDSystem(lvl *level.Level) *HUDSystem {
	return &HUDSystem{em: lvl.EntityManager, lvl: lvl}
}

// Update 刷新界面
func (s *HUDSystem) Update() {
	hud := &s.lvl.HUD
	outcome := level.EvaluateOutcome(s.lvl)

	_, ready := s.lvl.ReadyBall()
	_, flying := s.lvl.InFlightBall()
	_, waiting := s.lvl.NextWaitingBall()

	setVisible(s.em, hud.SelectionCircle, ready && outcome == types.OutcomePlaying)
	setVisible(s.em, hud.GhostBall, flying && waiting)
	if !ready {
		setVisible(s.em, hud.VelocityArrow, false)
	}

	reserve := s.lvl.BallsInReserve()
	for i, id := range hud.BallIcons {
		setVisible(s.em, id, i < reserve)
	}

	score := s.lvl.Score
	if outcome == types.OutcomeSuccess {
		score = s.lvl.FinalScore()
	}
	s.showScore(score)

	setVisible(s.em, hud.EndLevelSuccess, outcome == types.OutcomeSuccess)
	setVisible(s.em, hud.FinalScore, outcome == types.OutcomeSuccess)
	setVisible(s.em, hud.EndLevelFail, outcome == types.OutcomeFailure)
}

// showScore 记分牌每一位显示对应的十进制数字，超出位数的高位被截断
func (s *HUDSystem) showScore(score int) {
	if score < 0 {
		score = 0
	}
	v := score
	for _, id := range s.lvl.HUD.Digits {
		d := v % 10
		v /= 10
		digit, ok := ecs.GetComponent[*components.DigitComponent](s.em, id)
		if !ok {
			continue
		}
		digit.Value = d
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, id); ok {
			sprite.Texture = digit.Textures[d]
		}
	}
}
