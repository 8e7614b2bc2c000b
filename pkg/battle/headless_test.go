package battle

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// 模拟核心及其依赖不能引用 ebiten，否则无界面模拟器也要链接图形后端
func TestSimulationPackagesDoNotImportEbiten(t *testing.T) {
	dirs := []string{".", "../systems", "../entities", "../components", "../ecs", "../event", "../utils", "../config", "../types", "../embedded", "../../cmd/simulate"}

	for _, dir := range dirs {
		t.Run(dir, func(t *testing.T) {
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("read %s: %v", dir, err)
			}
			fset := token.NewFileSet()
			for _, entry := range entries {
				name := entry.Name()
				if entry.IsDir() || !strings.HasSuffix(name, ".go") {
					continue
				}
				file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
				if err != nil {
					t.Fatalf("parse %s: %v", name, err)
				}
				for _, imp := range file.Imports {
					path, _ := strconv.Unquote(imp.Path.Value)
					if strings.Contains(path, "hajimehoshi/ebiten") {
						t.Errorf("%s imports %s", filepath.Join(dir, name), path)
					}
				}
			}
		})
	}
}
