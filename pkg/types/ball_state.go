package types

import "fmt"

// BallState 球的生命周期状态
//
// 状态只会向前推进：Waiting -> Ready -> InFlight -> Settled/Consumed
type BallState int

const (
	// BallWaiting 排队等待，尚未被选中
	BallWaiting BallState = iota
	// BallReady 已选中，等待玩家发射
	BallReady
	// BallInFlight 已发射，参与物理计算
	BallInFlight
	// BallSettled 停稳或离开场地
	BallSettled
	// BallConsumed 命中目标后被消耗
	BallConsumed
)

// String 返回球状态的字符串表示
func (s BallState) String() string {
	switch s {
	case BallWaiting:
		return "Waiting"
	case BallReady:
		return "Ready"
	case BallInFlight:
		return "InFlight"
	case BallSettled:
		return "Settled"
	case BallConsumed:
		return "Consumed"
	default:
		return "Unknown"
	}
}

// Remaining 该状态的球是否仍计入剩余球数
func (s BallState) Remaining() bool {
	return s == BallWaiting || s == BallReady || s == BallInFlight
}

// PathMode 移动障碍物到达路径端点后的策略
type PathMode int

const (
	// PathLoop 到达最后一个路径点后回到第一个
	PathLoop PathMode = iota
	// PathBounce 到达端点后反向
	PathBounce
)

// String 返回路径模式的配置名
func (m PathMode) String() string {
	if m == PathBounce {
		return "bounce"
	}
	return "loop"
}

// ParsePathMode 解析配置中的路径模式，空字符串视为 loop
func ParsePathMode(name string) (PathMode, error) {
	switch name {
	case "", "loop":
		return PathLoop, nil
	case "bounce":
		return PathBounce, nil
	default:
		return PathLoop, fmt.Errorf("unknown path mode %q (want loop or bounce)", name)
	}
}

// Outcome 关卡结算状态
type Outcome int

const (
	// OutcomePlaying 进行中
	OutcomePlaying Outcome = iota
	// OutcomeSuccess 所有目标已收集
	OutcomeSuccess
	// OutcomeFailure 没有剩余球且仍有目标未收集
	OutcomeFailure
)

// String 返回结算状态的字符串表示
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "Success"
	case OutcomeFailure:
		return "Failure"
	default:
		return "Playing"
	}
}
