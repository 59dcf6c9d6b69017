package components

import (
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// BallComponent 球的运行状态
//
// Radius 构造后不再修改，位置取自 BodyComponent 的包围盒中心。
type BallComponent struct {
	Index     int             // 在本关球序列中的序号（0 起）
	Radius    float32         // 半径
	Velocity  geom.Point      // 当前速度（每帧位移）
	State     types.BallState // 生命周期状态
	RestTicks int             // 连续低速帧数
}

// Active 是否参与物理计算
func (b *BallComponent) Active() bool {
	return b.State == types.BallInFlight
}
