package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{Regular, Medium, Bold} {
		data, err := Load("embed:" + name)
		if err != nil {
			t.Fatalf("加载内置字体 %s 失败: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("内置字体 %s 为空", name)
		}
	}
	if _, err := Load("embed:comic-sans"); err == nil {
		t.Fatalf("未知内置字体应报错")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := Load(path)
	if err != nil || string(data) != "fake" {
		t.Fatalf("Load(%s) = %q, %v", path, data, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Fatalf("缺失文件应报错")
	}
	if _, err := Load(""); err == nil {
		t.Fatalf("空路径应报错")
	}
}
