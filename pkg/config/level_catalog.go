package config

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"
)

// LevelCatalog 关卡目录，按关卡ID自然顺序排列（"1-2" 在 "1-10" 之前）
type LevelCatalog struct {
	levels []*LevelConfig
	byID   map[string]*LevelConfig
}

// LoadLevelCatalog 从文件系统目录加载所有 *.yaml 关卡
//
// 参数：
//   - fsys: 文件系统（嵌入资源或 os.DirFS）
//   - dir: 关卡目录（如 "data/levels"）
//
// 返回：
//   - *LevelCatalog: 关卡目录
//   - error: 任意关卡解析失败或ID重复时返回错误
func LoadLevelCatalog(fsys fs.FS, dir string) (*LevelCatalog, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list level files in %s: %w", dir, err)
	}

	levels := make([]*LevelConfig, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read level file %s: %w", file, err)
		}
		lc, err := ParseLevelConfig(data, file)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lc)
	}

	catalog, err := NewLevelCatalog(levels)
	if err != nil {
		return nil, err
	}
	log.Printf("[LevelCatalog] Loaded %d levels from %s", len(levels), dir)
	return catalog, nil
}

// NewLevelCatalog 由已解析的关卡构建目录
func NewLevelCatalog(levels []*LevelConfig) (*LevelCatalog, error) {
	c := &LevelCatalog{
		levels: make([]*LevelConfig, 0, len(levels)),
		byID:   make(map[string]*LevelConfig, len(levels)),
	}
	for _, lc := range levels {
		if _, dup := c.byID[lc.ID]; dup {
			return nil, fmt.Errorf("duplicate level ID %q", lc.ID)
		}
		c.byID[lc.ID] = lc
		c.levels = append(c.levels, lc)
	}
	sort.SliceStable(c.levels, func(i, j int) bool {
		return LevelIDLess(c.levels[i].ID, c.levels[j].ID)
	})
	return c, nil
}

// Len 关卡数量
func (c *LevelCatalog) Len() int {
	return len(c.levels)
}

// IDs 按顺序返回所有关卡ID
func (c *LevelCatalog) IDs() []string {
	ids := make([]string, len(c.levels))
	for i, lc := range c.levels {
		ids[i] = lc.ID
	}
	return ids
}

// Get 按ID查询关卡
func (c *LevelCatalog) Get(id string) (*LevelConfig, bool) {
	lc, ok := c.byID[id]
	return lc, ok
}

// First 第一关，目录为空时返回 nil
func (c *LevelCatalog) First() *LevelConfig {
	if len(c.levels) == 0 {
		return nil
	}
	return c.levels[0]
}

// Next 返回 id 之后的一关，id 是最后一关或不存在时返回 false
func (c *LevelCatalog) Next(id string) (*LevelConfig, bool) {
	for i, lc := range c.levels {
		if lc.ID == id {
			if i+1 < len(c.levels) {
				return c.levels[i+1], true
			}
			return nil, false
		}
	}
	return nil, false
}

// LevelIDLess 关卡ID排序：按 "-" 分段比较，数字段按数值比较
func LevelIDLess(a, b string) bool {
	as := strings.Split(a, "-")
	bs := strings.Split(b, "-")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		an, aErr := strconv.Atoi(as[i])
		bn, bErr := strconv.Atoi(bs[i])
		if aErr == nil && bErr == nil {
			return an < bn
		}
		return as[i] < bs[i]
	}
	return len(as) < len(bs)
}
