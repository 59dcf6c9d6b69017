package types

// HUDRole 只绘制、不参与物理的界面元素角色
type HUDRole int

const (
	// HUDSelectionCircle 发射区域的选择圈
	HUDSelectionCircle HUDRole = iota
	// HUDGhostBall 发射点上的待发射球
	HUDGhostBall
	// HUDVelocityArrow 瞄准时的速度箭头
	HUDVelocityArrow
	// HUDBallsRemaining 剩余球图标
	HUDBallsRemaining
	// HUDScoreDigit 记分牌数字
	HUDScoreDigit
	// HUDEndLevelSuccess 过关横幅
	HUDEndLevelSuccess
	// HUDEndLevelFail 失败横幅
	HUDEndLevelFail
	// HUDFinalScore 结算分数文字
	HUDFinalScore
)

// String 返回界面元素角色名
func (r HUDRole) String() string {
	switch r {
	case HUDSelectionCircle:
		return "SelectionCircle"
	case HUDGhostBall:
		return "GhostBall"
	case HUDVelocityArrow:
		return "VelocityArrow"
	case HUDBallsRemaining:
		return "BallsRemaining"
	case HUDScoreDigit:
		return "ScoreDigit"
	case HUDEndLevelSuccess:
		return "EndLevelSuccess"
	case HUDEndLevelFail:
		return "EndLevelFail"
	case HUDFinalScore:
		return "FinalScore"
	default:
		return "Unknown"
	}
}
