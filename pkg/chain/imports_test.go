package chain

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestNoGraphicsDependency 遍历引擎及其依赖包不引入 ebiten
// 这些包需要在没有图形环境的机器上构建和测试
func TestNoGraphicsDependency(t *testing.T) {
	dirs := []string{".", "../anim", "../render", "../utils", "../config", "../embedded"}

	for _, dir := range dirs {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatalf("glob %s: %v", dir, err)
		}
		if len(files) == 0 {
			t.Fatalf("no Go files in %s", dir)
		}

		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", file, err)
			}
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				if strings.HasPrefix(path, "github.com/hajimehoshi/ebiten") {
					t.Errorf("%s imports %s", file, path)
				}
			}
		}
	}
}
