package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB, входы длиннее обрезаются

// cellSeeds покрывают все переписывания: объявления, импорты, классы,
// шаблоны, последнее выражение.
var cellSeeds = []string{
	"",
	"1 + 1",
	"let a = 1\nconst b = a + 1\nb",
	"var {x, y: [z = 1, ...rest]} = obj",
	"function f() { return this }\nclass A extends B { #p = 1; static s() {} }",
	"import def, {a as b} from 'mod'\nimport * as ns from \"ns\"\nawait ns.run()",
	"for (let i = 0; i < 3; i++) { console.log(`i=${i}`) }",
	"({a, b} = {a: 1, b: 2})",
	"label: { break label }",
	"x = /re[/]gex/g.test(s) ? a?.b ?? c : d ** 2",
	"async function* gen() { yield* await other() }",
	"return 42",
	"let s = '\\u{1F600}\\x41'; s",
	"obj = { get v() { return 1 }, set v(x) {}, [k]: 2, ...rest }",
	"try { throw new Error('x') } catch { } finally { }",
	"class { }",
	"let x = ;",
	"`unterminated ${",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range cellSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds *.js files from testdata/ next to the harness, if any.
func addTestdataSeeds(f *testing.F) {
	root := "testdata"
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".js" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
