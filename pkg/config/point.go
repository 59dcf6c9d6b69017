package config

import (
	"errors"
	"fmt"

	"github.com/gonewx/burgerball/pkg/geom"
	"gopkg.in/yaml.v3"
)

// ErrMalformedLevelData 关卡数据不合法（球数非正、移动障碍物与路径数量不一致等）
//
// 关卡构建遇到此错误时必须拒绝该关卡，不能启动物理循环。
var ErrMalformedLevelData = errors.New("malformed level data")

// Point 配置文件中的坐标
//
// 支持两种写法：
//
//	[12, 34]
//	{x: 12, y: 34}
type Point geom.Point

// UnmarshalYAML 实现 yaml.Unmarshaler
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []float32
		if err := value.Decode(&xy); err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point needs exactly 2 coordinates, got %d", value.Line, len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X float32 `yaml:"x"`
			Y float32 `yaml:"y"`
		}
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		p.X, p.Y = m.X, m.Y
		return nil
	default:
		return fmt.Errorf("line %d: point must be [x, y] or {x, y}", value.Line)
	}
}

// MarshalYAML 以紧凑的 [x, y] 形式输出
func (p Point) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float32{p.X, p.Y} {
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &n)
	}
	return node, nil
}

// Geom 转换为几何点
func (p Point) Geom() geom.Point {
	return geom.Point(p)
}

// Points 批量转换为几何点（新切片，调用方可以随意修改）
func Points(ps []Point) []geom.Point {
	out := make([]geom.Point, len(ps))
	for i, p := range ps {
		out[i] = geom.Point(p)
	}
	return out
}
