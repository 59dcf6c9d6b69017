package embedded

import (
	"io/fs"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/game.yaml":       {Data: []byte("arena:\n  width: 200\n")},
		"data/levels/1-1.yaml": {Data: []byte("id: \"1-1\"\n")},
		"data/levels/1-2.yaml": {Data: []byte("id: \"1-2\"\n")},
	}
}

// TestNotInitialized 未初始化（或以 nil 初始化）时所有读取都失败
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := ReadFile("data/game.yaml"); err != errNotInitialized {
		t.Errorf("ReadFile: got %v, want errNotInitialized", err)
	}
	if _, err := FS(); err != errNotInitialized {
		t.Errorf("FS: got %v, want errNotInitialized", err)
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"普通路径", "data/game.yaml", false},
		{"带 ./ 前缀", "./data/game.yaml", false},
		{"未知前缀", "assets/game.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

// TestFS 返回的文件系统可以按目录读取关卡
func TestFS(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	fsys, err := FS()
	if err != nil {
		t.Fatal(err)
	}
	files, err := fs.Glob(fsys, "data/levels/*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Errorf("levels: got %d files, want 2", len(files))
	}
}
