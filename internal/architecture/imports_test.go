package architecture_test

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// layerRule bans a set of internal packages from one source tree.
type layerRule struct {
	prefix string
	banned []string
}

var layerRules = []layerRule{
	{prefix: "internal/domain/", banned: []string{"data/", "services", "http", "jobs/", "app", "platform/"}},
	{prefix: "internal/platform/", banned: []string{"data/", "domain", "services", "http", "jobs/", "app"}},
	{prefix: "internal/data/", banned: []string{"services", "http", "jobs/", "app"}},
	{prefix: "internal/observability/", banned: []string{"data/", "services", "http", "jobs/", "app"}},
	{prefix: "internal/services/", banned: []string{"http", "jobs/", "app"}},
	{prefix: "internal/jobs/", banned: []string{"http", "app"}},
	{prefix: "internal/http/", banned: []string{"app", "data/"}},
}

type violation struct {
	file string
	imp  string
}

func TestImportBoundaries(t *testing.T) {
	root, modulePath := moduleRoot(t)
	internal := modulePath + "/internal/"

	var violations []violation
	walkImports(t, filepath.Join(root, "internal"), root, func(rel, imp string) {
		if strings.HasSuffix(rel, "_test.go") || !strings.HasPrefix(imp, internal) {
			return
		}
		target := strings.TrimPrefix(imp, internal)
		for _, rule := range layerRules {
			if !strings.HasPrefix(rel, rule.prefix) {
				continue
			}
			for _, bad := range rule.banned {
				if target == strings.TrimSuffix(bad, "/") || strings.HasPrefix(target, strings.TrimSuffix(bad, "/")+"/") {
					violations = append(violations, violation{file: rel, imp: imp})
				}
			}
		}
	})
	report(t, "import boundary violations", violations)
}

// Only test helpers may reach into another package's testutil.
func TestTestutilOnlyImportedFromTests(t *testing.T) {
	root, modulePath := moduleRoot(t)

	var violations []violation
	walkImports(t, filepath.Join(root, "internal"), root, func(rel, imp string) {
		if strings.HasSuffix(rel, "_test.go") || strings.Contains(rel, "/testutil/") {
			return
		}
		if strings.HasPrefix(imp, modulePath+"/internal/") && strings.HasSuffix(imp, "/testutil") {
			violations = append(violations, violation{file: rel, imp: imp})
		}
	})
	report(t, "testutil imported from production code", violations)
}

func walkImports(t *testing.T, dir, root string, visit func(rel, imp string)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", "vendor", "node_modules", ".gocache":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range f.Imports {
			if spec == nil || spec.Path == nil {
				continue
			}
			if imp, err := strconv.Unquote(spec.Path.Value); err == nil {
				visit(filepath.ToSlash(rel), imp)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", dir, err)
	}
}

func report(t *testing.T, title string, violations []violation) {
	t.Helper()
	if len(violations) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString(title + ":\n")
	for _, v := range violations {
		fmt.Fprintf(&b, "- %s imports %q\n", v.file, v.imp)
	}
	t.Fatal(b.String())
}

func moduleRoot(t *testing.T) (string, string) {
	t.Helper()
	start, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root, err := findModuleRoot(start)
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}
	modulePath, err := readModulePath(filepath.Join(root, "go.mod"))
	if err != nil {
		t.Fatalf("read module path: %v", err)
	}
	return root, modulePath
}

func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found from %s", start)
		}
		dir = parent
	}
}

func readModulePath(goModPath string) (string, error) {
	f, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "module ") {
			continue
		}
		if mp := strings.TrimSpace(strings.TrimPrefix(line, "module ")); mp != "" {
			return mp, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("module path not found in %s", goModPath)
}
