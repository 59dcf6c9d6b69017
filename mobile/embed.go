//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，构建前需要把项目根目录的
// data/ 复制到 mobile/ 下。
package mobile

import "embed"

//go:embed data/game.yaml data/levels
var dataFS embed.FS
