package components

// TargetComponent 目标状态
//
// Collected 只会从 false 变为 true，一次关卡尝试中不会恢复。
type TargetComponent struct {
	Radius    float32 // 判定半径
	Score     int     // 收集后获得的分数
	Collected bool
}
