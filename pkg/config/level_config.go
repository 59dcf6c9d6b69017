package config

import (
	"fmt"
	"os"

	"github.com/gonewx/burgerball/pkg/types"
	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡定义
//
// 描述一关需要的全部实体：球数、可选的发射点、静态障碍物、
// 移动障碍物及其路径、目标。movingObstacles 与 movePaths 是按下标对应的平行列表。
type LevelConfig struct {
	ID      string `yaml:"id"`      // 关卡ID，如 "1-1"
	Name    string `yaml:"name"`    // 关卡名称，缺省为ID
	Chapter int    `yaml:"chapter"` // 章节，决定墙体和球的贴图，缺省为 1

	Balls     int    `yaml:"balls"`     // 本关球数，必须 >= 1
	BallStart *Point `yaml:"ballStart"` // 可选：发射点（球心），缺省使用默认发射点

	Obstacles       []ObstacleConfig `yaml:"obstacles"`       // 静态障碍物
	MovingObstacles []ObstacleConfig `yaml:"movingObstacles"` // 移动障碍物（初始形状）
	MovePaths       []MovePathConfig `yaml:"movePaths"`       // 与 movingObstacles 一一对应的路径
	Targets         []TargetConfig   `yaml:"targets"`         // 目标
}

// ObstacleConfig 单个障碍物的顶点和响应形状
type ObstacleConfig struct {
	Shape  string  `yaml:"shape"` // "polygon"（默认）或 "ball"
	Points []Point `yaml:"points"`
}

// MovePathConfig 移动路径
//
// 路径点是障碍物包围盒中心依次经过的绝对坐标，构建时障碍物会被放到第一个路径点。
type MovePathConfig struct {
	Mode      string  `yaml:"mode"`  // "loop"（默认）或 "bounce"
	Speed     float32 `yaml:"speed"` // 每帧移动距离，0 表示使用全局默认值
	Waypoints []Point `yaml:"waypoints"`
}

// TargetConfig 单个目标的顶点
type TargetConfig struct {
	Points []Point `yaml:"points"`
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}
	return ParseLevelConfig(data, filepath)
}

// ParseLevelConfig 解析YAML格式的关卡配置
//
// 参数：
//   - data: YAML 内容
//   - source: 来源描述（文件名），仅用于错误信息
func ParseLevelConfig(data []byte, source string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", source, err)
	}

	applyDefaults(&levelConfig)

	if err := levelConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", source, err)
	}

	return &levelConfig, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
//
// Balls 不设默认值：球数缺失属于数据错误。
func applyDefaults(config *LevelConfig) {
	if config.Chapter == 0 {
		config.Chapter = 1
	}
	if config.Name == "" {
		config.Name = config.ID
	}
}

// Validate 验证关卡配置的完整性
//
// 所有失败都包装 ErrMalformedLevelData，调用方可以用 errors.Is 判断。
// 空顶点组不在这里检查，构建实体时由几何层报告 geom.ErrInvalidGeometry。
func (config *LevelConfig) Validate() error {
	if config.ID == "" {
		return fmt.Errorf("%w: level ID is required", ErrMalformedLevelData)
	}

	if config.Balls < 1 {
		return fmt.Errorf("%w: ball count must be at least 1, got %d", ErrMalformedLevelData, config.Balls)
	}

	if len(config.MovingObstacles) != len(config.MovePaths) {
		return fmt.Errorf("%w: %d moving obstacles but %d move paths",
			ErrMalformedLevelData, len(config.MovingObstacles), len(config.MovePaths))
	}

	for i, obstacle := range config.Obstacles {
		if _, err := types.ParseObstacleShape(obstacle.Shape); err != nil {
			return fmt.Errorf("%w: obstacles[%d]: %v", ErrMalformedLevelData, i, err)
		}
	}

	for i, obstacle := range config.MovingObstacles {
		if _, err := types.ParseObstacleShape(obstacle.Shape); err != nil {
			return fmt.Errorf("%w: movingObstacles[%d]: %v", ErrMalformedLevelData, i, err)
		}
	}

	for i, path := range config.MovePaths {
		if _, err := types.ParsePathMode(path.Mode); err != nil {
			return fmt.Errorf("%w: movePaths[%d]: %v", ErrMalformedLevelData, i, err)
		}
		if len(path.Waypoints) < 2 {
			return fmt.Errorf("%w: movePaths[%d]: at least 2 waypoints are required, got %d",
				ErrMalformedLevelData, i, len(path.Waypoints))
		}
		if path.Speed < 0 {
			return fmt.Errorf("%w: movePaths[%d]: speed cannot be negative", ErrMalformedLevelData, i)
		}
	}

	return nil
}
