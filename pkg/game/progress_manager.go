package game

import (
	"fmt"
	"log"

	"github.com/gonewx/burgerball/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Progress 玩家进度
type Progress struct {
	HighestLevel string         `yaml:"highestLevel"` // 已解锁的最高关卡
	BestScores   map[string]int `yaml:"bestScores"`   // 关卡ID -> 最高结算分
}

// ProgressManager 进度管理器
// 负责玩家进度的加载、保存；关卡定义本身不会被持久化
type ProgressManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	progress     *Progress
}

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "player"
)

func newProgress() *Progress {
	return &Progress{BestScores: make(map[string]int)}
}

// NewProgressManager 创建进度管理器并尝试加载已保存的进度
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *ProgressManager: 进度管理器实例
func NewProgressManager(gdataManager *gdata.Manager) *ProgressManager {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		progress:     newProgress(),
	}
	if err := pm.Load(); err != nil {
		log.Printf("[ProgressManager] Warning: Failed to load progress: %v (starting fresh)", err)
	}
	return pm
}

// OpenProgressManager 打开名为 appName 的 gdata 存储
//
// 存储无法打开时返回降级模式的管理器和错误，调用方可以继续使用。
func OpenProgressManager(appName string) (*ProgressManager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewProgressManager(nil), fmt.Errorf("failed to open progress storage: %w", err)
	}
	return NewProgressManager(m), nil
}

// Load 从 gdata 加载进度，不存在时使用空进度
func (pm *ProgressManager) Load() error {
	if pm.gdataManager == nil {
		pm.progress = newProgress()
		return nil
	}
	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		pm.progress = newProgress()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		pm.progress = newProgress()
		return fmt.Errorf("failed to load progress: %w", err)
	}

	loaded := newProgress()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		pm.progress = newProgress()
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	if loaded.BestScores == nil {
		loaded.BestScores = make(map[string]int)
	}
	pm.progress = loaded
	log.Printf("[ProgressManager] Progress loaded: highest level %q, %d best scores",
		loaded.HighestLevel, len(loaded.BestScores))
	return nil
}

// Save 保存进度，降级模式下直接返回 nil
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(pm.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	log.Printf("[ProgressManager] Progress saved")
	return nil
}

// HighestLevel 已解锁的最高关卡，没有进度时为空
func (pm *ProgressManager) HighestLevel() string {
	return pm.progress.HighestLevel
}

// BestScore 关卡最高分
func (pm *ProgressManager) BestScore(levelID string) (int, bool) {
	score, ok := pm.progress.BestScores[levelID]
	return score, ok
}

// RecordScore 记录过关分数
//
// 返回：
//   - bool: 是否刷新了该关最高分
func (pm *ProgressManager) RecordScore(levelID string, score int) bool {
	best, ok := pm.progress.BestScores[levelID]
	if ok && best >= score {
		return false
	}
	pm.progress.BestScores[levelID] = score
	return true
}

// Unlock 解锁关卡，只会向后推进
func (pm *ProgressManager) Unlock(levelID string) {
	if pm.progress.HighestLevel == "" || config.LevelIDLess(pm.progress.HighestLevel, levelID) {
		pm.progress.HighestLevel = levelID
	}
}
