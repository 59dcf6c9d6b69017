package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 一局游戏使用的不可变常量集合
//
// 会话开始时构建一次，按值或指针传给关卡构建器和物理系统，
// 不存在全局可变状态，测试可以随意替换其中的常量。
//
// 配置文件位置: data/game.yaml（缺省字段保持 DefaultGameConfig 的值）
type GameConfig struct {
	Arena          ArenaConfig             `yaml:"arena"`
	Ball           BallConfig              `yaml:"ball"`
	Physics        PhysicsConfig           `yaml:"physics"`
	Aim            AimConfig               `yaml:"aim"`
	Target         TargetRules             `yaml:"target"`
	Scoring        ScoringConfig           `yaml:"scoring"`
	MovingObstacle MovingObstacleConfig    `yaml:"movingObstacle"`
	Chapters       map[int]ChapterTextures `yaml:"chapters"`
	Images         ImageIDs                `yaml:"images"`
}

// ArenaConfig 场地尺寸（竞技场坐标）
type ArenaConfig struct {
	Width       float32 `yaml:"width"`
	Height      float32 `yaml:"height"`
	BorderWidth float32 `yaml:"borderWidth"`
}

// BallConfig 球的参数
type BallConfig struct {
	Radius float32 `yaml:"radius"`
}

// PhysicsConfig 物理常量
type PhysicsConfig struct {
	Gravity     Point   `yaml:"gravity"`     // 每帧加到速度上的加速度
	Elasticity  float32 `yaml:"elasticity"`  // 反弹后保留的速度比例，(0, 1]
	MaxVelocity float32 `yaml:"maxVelocity"` // 每个分量的速度上限，防止穿透
	RestSpeed   float32 `yaml:"restSpeed"`   // 低于此速度开始计入静止帧
	RestTicks   int     `yaml:"restTicks"`   // 连续静止多少帧视为停稳
}

// AimConfig 瞄准与发射参数
type AimConfig struct {
	ResponseRadius      float32 `yaml:"responseRadius"`      // 拖拽达到满力度的距离
	MaxInitialVelocityX float32 `yaml:"maxInitialVelocityX"` // 满力度时水平方向的发射速度
	MaxInitialVelocityY float32 `yaml:"maxInitialVelocityY"` // 满力度时竖直方向的发射速度
	MinPower            float32 `yaml:"minPower"`            // 力度下限，零长度拖拽也有最小速度
}

// TargetRules 目标参数
type TargetRules struct {
	Radius float32 `yaml:"radius"` // 判定半径
	Score  int     `yaml:"score"`  // 每个目标的分数
}

// ScoringConfig 计分与记分牌
type ScoringConfig struct {
	RemainingBallBonus int `yaml:"remainingBallBonus"` // 过关时每个剩余球的奖励分
	ScoreDigits        int `yaml:"scoreDigits"`        // 记分牌位数
}

// MovingObstacleConfig 移动障碍物默认参数
type MovingObstacleConfig struct {
	DefaultSpeed float32 `yaml:"defaultSpeed"` // 路径未指定速度时每帧移动的距离
}

// ChapterTextures 每章使用的墙体和球的图片ID
type ChapterTextures struct {
	Wall string `yaml:"wall"`
	Ball string `yaml:"ball"`
}

// ImageIDs 与章节无关的图片ID
type ImageIDs struct {
	Target          string `yaml:"target"`
	SelectionCircle string `yaml:"selectionCircle"`
	VelocityArrow   string `yaml:"velocityArrow"`
	DigitPrefix     string `yaml:"digitPrefix"` // 数字图片ID前缀，实际ID为前缀加 0-9
	EndLevelSuccess string `yaml:"endLevelSuccess"`
	EndLevelFail    string `yaml:"endLevelFail"`
	FinalScore      string `yaml:"finalScore"`
}

// DefaultGameConfig 返回内置默认配置
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{Width: 200, Height: 300, BorderWidth: 6},
		Ball:  BallConfig{Radius: 8},
		Physics: PhysicsConfig{
			Gravity:     Point{X: 0, Y: -0.1},
			Elasticity:  0.9,
			MaxVelocity: 12,
			RestSpeed:   0.15,
			RestTicks:   60,
		},
		Aim: AimConfig{
			ResponseRadius:      80,
			MaxInitialVelocityX: 6,
			MaxInitialVelocityY: 6,
			MinPower:            0.01,
		},
		Target:         TargetRules{Radius: 8, Score: 100},
		Scoring:        ScoringConfig{RemainingBallBonus: 50, ScoreDigits: 5},
		MovingObstacle: MovingObstacleConfig{DefaultSpeed: 0.5},
		Chapters: map[int]ChapterTextures{
			1: {Wall: "IMAGE_WALL1", Ball: "IMAGE_BALL1"},
			2: {Wall: "IMAGE_WALL2", Ball: "IMAGE_BALL2"},
			3: {Wall: "IMAGE_WALL3", Ball: "IMAGE_BALL3"},
		},
		Images: ImageIDs{
			Target:          "IMAGE_TARGET",
			SelectionCircle: "IMAGE_SELECTION_CIRCLE",
			VelocityArrow:   "IMAGE_SELECTION_ARROW",
			DigitPrefix:     "IMAGE_DIGIT_",
			EndLevelSuccess: "IMAGE_END_LEVEL_SUCCESS",
			EndLevelFail:    "IMAGE_END_LEVEL_FAIL",
			FinalScore:      "IMAGE_FINAL_SCORE",
		},
	}
}

// LoadGameConfig 从YAML文件加载游戏配置
//
// 参数：
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回：
//   - GameConfig: 合并默认值后的配置
//   - error: 读取、解析或验证失败
func LoadGameConfig(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析YAML格式的游戏配置，未出现的字段保持默认值
func ParseGameConfig(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置取值范围
func (c *GameConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.BorderWidth <= 0 || 2*c.Arena.BorderWidth >= c.Arena.Width {
		return fmt.Errorf("arena borderWidth %v out of range", c.Arena.BorderWidth)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius)
	}
	if c.Physics.Elasticity <= 0 || c.Physics.Elasticity > 1 {
		return fmt.Errorf("physics elasticity must be in (0, 1], got %v", c.Physics.Elasticity)
	}
	if c.Physics.MaxVelocity <= 0 {
		return fmt.Errorf("physics maxVelocity must be positive, got %v", c.Physics.MaxVelocity)
	}
	if c.Physics.RestTicks < 1 {
		return fmt.Errorf("physics restTicks must be at least 1, got %d", c.Physics.RestTicks)
	}
	if c.Aim.ResponseRadius <= 0 || c.Aim.MaxInitialVelocityX <= 0 || c.Aim.MaxInitialVelocityY <= 0 {
		return fmt.Errorf("aim responseRadius and maxInitialVelocityX/Y must be positive")
	}
	if c.Aim.MinPower <= 0 || c.Aim.MinPower > 1 {
		return fmt.Errorf("aim minPower must be in (0, 1], got %v", c.Aim.MinPower)
	}
	if c.Target.Radius <= 0 {
		return fmt.Errorf("target radius must be positive, got %v", c.Target.Radius)
	}
	if c.Scoring.ScoreDigits < 1 {
		return fmt.Errorf("scoring scoreDigits must be at least 1, got %d", c.Scoring.ScoreDigits)
	}
	if c.MovingObstacle.DefaultSpeed <= 0 {
		return fmt.Errorf("movingObstacle defaultSpeed must be positive, got %v", c.MovingObstacle.DefaultSpeed)
	}
	if len(c.Chapters) == 0 {
		return fmt.Errorf("at least one chapter texture set is required")
	}
	return nil
}

// ChapterTexturesFor 查询章节贴图
func (c *GameConfig) ChapterTexturesFor(chapter int) (ChapterTextures, bool) {
	ct, ok := c.Chapters[chapter]
	return ct, ok
}

// DigitImage 返回数字 d (0-9) 的图片ID
func (c *GameConfig) DigitImage(d int) string {
	return fmt.Sprintf("%s%d", c.Images.DigitPrefix, d)
}

// DefaultBallStart 默认发射点（场地水平中心，距底部四倍墙厚）
func (c *GameConfig) DefaultBallStart() Point {
	return Point{X: c.Arena.Width / 2, Y: c.Arena.BorderWidth * 4}
}
