// Package embedded 提供嵌入数据的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包保存这个文件系统，让其他包按 "data/..." 路径读取游戏配置和关卡。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// errNotInitialized 未调用 Init
var errNotInitialized = fmt.Errorf("embedded package not initialized, call Init() first")

// Init 设置数据文件系统
// 必须在 main() 开始时、任何配置加载之前调用
//
// 参数:
//   - data: 根目录下包含 data/ 的文件系统（embed.FS、os.DirFS 或测试用 fstest.MapFS）
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// FS 返回数据文件系统，供 config.LoadLevelCatalog 等按目录加载的函数使用
func FS() (fs.FS, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	return dataFS, nil
}

// clean 标准化路径并检查前缀
func clean(path string) (string, error) {
	// embed.FS 使用正斜杠
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取文件内容，路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, errNotInitialized
	}
	path, err := clean(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}
