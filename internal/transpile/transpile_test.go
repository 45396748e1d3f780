package transpile

import (
	"errors"
	"strings"
	"testing"

	"nbcell/internal/parser"
	"nbcell/internal/source"
	"nbcell/internal/trace"
)

const header1 = "(async function __transpiled_top_level_1__(__global, __import, console) {\n"

// body strips the wrapper of the first cell transpiled by a fresh Transpiler.
func body(t *testing.T, code string) string {
	t.Helper()
	res, err := New(DefaultConfig()).Transpile(code, "cell")
	if err != nil {
		t.Fatalf("Transpile(%q): %v", code, err)
	}
	suffix := wrapperFooter + "\n//# sourceURL=__transpiled_source_1__/cell"
	if !strings.HasPrefix(res.Code, header1) || !strings.HasSuffix(res.Code, suffix) {
		t.Fatalf("unexpected wrapper:\n%s", res.Code)
	}
	return res.Code[len(header1) : len(res.Code)-len(suffix)]
}

// passBody runs a single pass over a wrapped cell.
func passBody(t *testing.T, rw func(*Transpiler) rewriteFunc, code string) string {
	t.Helper()
	tr := New(DefaultConfig())
	text := tr.wrap(1, source.NewAnchor("cell", code).Mapped)
	out, err := tr.pass("test", "cell", text, 0, rw(tr))
	if err != nil {
		t.Fatalf("pass(%q): %v", code, err)
	}
	s := out.String()
	return s[len(header1) : len(s)-len(wrapperFooter)]
}

func importsPass(tr *Transpiler) rewriteFunc { return tr.rewriteImports }
func scopePass(tr *Transpiler) rewriteFunc   { return tr.rewriteScope }

func TestImportRewrite(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"side effect", `import "m";`, `await __import("m");`},
		{"side effect asi", "import \"m\"\nfoo()", "await __import(\"m\");\nfoo()"},
		{"empty braces", `import {} from "m";`, `await __import("m");`},
		{"default", `import a from "m";`, `var {_:{default:a}} = {_:await __import("m")};`},
		{"named", `import {b, c as d} from "m";`, `var {_:{b},_:{c:d}} = {_:await __import("m")};`},
		{"mixed", `import a, {b, c as d} from "m";`, `var {_:{default:a},_:{b},_:{c:d}} = {_:await __import("m")};`},
		{"namespace", `import * as ns from "m"`, `var {_:ns} = {_:await __import("m")};`},
		{"default and namespace", `import a, * as ns from "m";`, `var {_:{default:a},_:ns} = {_:await __import("m")};`},
		{"string name", `import {"e-f" as g} from "m";`, `var {_:{"e-f":g}} = {_:await __import("m")};`},
		{"nested block", `if (x) { import "m"; }`, `if (x) { await __import("m"); }`},
		{"function untouched", `function f() { return 1 }`, `function f() { return 1 }`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := passBody(t, importsPass, c.in); got != c.want {
				t.Fatalf("got  %s\nwant %s", got, c.want)
			}
		})
	}
}

func TestScopeRewrite(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"var", "var x = 1;", "void ((__global.x = 1));"},
		{"uninitialised", "var a;", "void ((__global.a= undefined));"},
		{"several", "let a = 1, b;", "void ((__global.a = 1), (__global.b= undefined));"},
		{"const object pattern",
			"const {a, b: c, d = 1, ...rest} = obj;",
			"void (({a:__global.a, b: __global.c, d:__global.d = 1, ...__global.rest} = obj));"},
		{"array pattern",
			"let [x, , y = 2, ...zs] = arr;",
			"void (([__global.x, , __global.y = 2, ...__global.zs] = arr));"},
		{"nested let stays", "if (t) { let q = 1; }", "if (t) { let q = 1; }"},
		{"nested var hoisted", "if (t) { var q = 1; }", "if (t) { void ((__global.q = 1)); }"},
		{"brace-less var hoisted", "if (t) var q = 1;", "if (t) void ((__global.q = 1));"},
		{"no semicolon before bracket", "var a\n[1].map(f)\n0", "void ((__global.a= undefined));\n[1].map(f)\nreturn (0)"},
		{"no semicolon before paren", "let b\n(g)()\n0", "void ((__global.b= undefined));\n(g)()\nreturn (0)"},
		{"no semicolon before template", "var c\n`t`\n0", "void ((__global.c= undefined));\n`t`\nreturn (0)"},
		{"initialised without semicolon", "let d = 1\nd", "void ((__global.d = 1));\nreturn (d)"},
		{"brace-less var without semicolon", "if (t) var q\n[q]", "if (t) void ((__global.q= undefined));\nreturn ([q])"},
		{"brace-less body is not top level", "while (t) f();", "while (t) f();"},
		{"function", "function f() { var z = 1; return z; }", "void (__global.f=function f() { var z = 1; return z; });"},
		{"async function", "async function g() {}", "void (__global.g=async function g() {});"},
		{"nested function", "{ function g() {} }", "{ void (__global.g=function g() {}); }"},
		{"class", "class A {}", "void (__global.A=class A {});"},
		{"nested class stays", "{ class B {} }", "{ class B {} }"},
		{"for of head", "for (var k of ks) {}", "for (__global.k of ks) {}"},
		{"for in pattern", "for (var [k, v] in o) {}", "for ([__global.k, __global.v] in o) {}"},
		{"for let stays", "for (let i = 0; i < 3; i++) {}", "for (let i = 0; i < 3; i++) {}"},
		{"for var init", "for (var i = 0; i < 3; i++) {}", "for (void ((__global.i = 0)); i < 3; i++) {}"},
		{"arrow body untouched", "f(() => { var inner = 1; });", "return (f(() => { var inner = 1; }));"},
		{"static block untouched", "x = class { static { var s; } };", "return (x = class { static { var s; } });"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := passBody(t, scopePass, c.in); got != c.want {
				t.Fatalf("got  %s\nwant %s", got, c.want)
			}
		})
	}
}

func TestReturnLastExpression(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1;", "return (1);"},
		{"a\nb", "a\nreturn (b)"},
		{"({a: 1})", "return (({a: 1}))"},
		{"x + 1 // note", "return (x + 1) // note"},
		{"if (a) b", "if (a) b"},
		{"", ""},
	}
	for _, c := range cases {
		if got := passBody(t, scopePass, c.in); got != c.want {
			t.Errorf("%q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTranspileEndToEnd(t *testing.T) {
	got := body(t, "import a, {b, c as d} from \"m\";")
	want := `void (({_:{default:__global.a},_:{b:__global.b},_:{c:__global.d}} = {_:await __import("m")}));`
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}

	got = body(t, "var x = 1; let y; x + y")
	want = "void ((__global.x = 1)); void ((__global.y= undefined)); return (x + y)"
	if got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}

	got = body(t, "import \"m\"\nfoo()")
	if want := "await __import(\"m\");\nreturn (foo())"; got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestTranspileKeepsOrigins(t *testing.T) {
	const cell = "f(1)\ng(2,\n  3)\nif (ok) {\n  h()\n}"
	res, err := New(DefaultConfig()).Transpile(cell, "cell")
	if err != nil {
		t.Fatal(err)
	}
	if res.Source.String() != res.Code {
		t.Fatal("Code and Source disagree")
	}
	start := strings.Index(res.Code, cell)
	if start != len(header1) {
		t.Fatalf("cell should follow the header unchanged:\n%s", res.Code)
	}
	end := start + len(cell)

	line, col := 0, 0
	for i := start; i < end; i++ {
		c := res.Source.At(i)
		o := c.Origin
		if o == nil || o.File.Name() != "cell" || o.Line != line || o.Column != col {
			t.Fatalf("char %d %q: origin %v, want cell:%d:%d", i, c.Char, o, line+1, col+1)
		}
		if c.Char == '\n' {
			line, col = line+1, 0
		} else {
			col++
		}
	}
	for i := range res.Source.Len() {
		if i >= start && i < end {
			continue
		}
		if o := res.Source.At(i).Origin; o != nil {
			t.Fatalf("wrapper char %d %q has origin %v", i, res.Source.At(i).Char, o)
		}
	}
}

func TestTranspileNamesAndConfig(t *testing.T) {
	tr := New(Config{GlobalVar: "g", ImportFn: "load"})
	res, err := tr.Transpile("var v = 1\nimport 'x'", "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "cell-1" {
		t.Errorf("default name = %q", res.Name)
	}
	if !strings.HasPrefix(res.Code, "(async function __transpiled_top_level_1__(g, load, console) {\n") {
		t.Errorf("header:\n%s", res.Code)
	}
	if !strings.Contains(res.Code, "void ((g.v = 1))") || !strings.Contains(res.Code, "return (await load('x'));") {
		t.Errorf("configured names not used:\n%s", res.Code)
	}
	if !strings.HasSuffix(res.Code, "//# sourceURL=__transpiled_source_1__/cell-1") {
		t.Errorf("suffix:\n%s", res.Code)
	}

	res, err = tr.Transpile("1", "my cell")
	if err != nil {
		t.Fatal(err)
	}
	if res.ID != 2 || !strings.HasSuffix(res.Code, "__transpiled_source_2__/my_cell") {
		t.Errorf("second cell: id %d\n%s", res.ID, res.Code)
	}
}

func TestTranspileTimingsAndTrace(t *testing.T) {
	ring := trace.NewRingTracer(256, trace.LevelDebug)
	res, err := New(DefaultConfig(), WithTracer(ring)).Transpile("var a = 1", "cell")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range res.Timings.Phases() {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "wrap,imports,scope,flush" {
		t.Errorf("phases = %v", names)
	}

	seen := map[string]bool{}
	for _, ev := range ring.Snapshot() {
		seen[ev.Scope.String()+"/"+ev.Name] = true
	}
	for _, want := range []string{"cell/cell:1", "pass/imports", "pass/scope", "node/var"} {
		if !seen[want] {
			t.Errorf("missing trace event %s; have %v", want, seen)
		}
	}
}

func TestTranspileSyntaxError(t *testing.T) {
	_, err := New(DefaultConfig()).Transpile("let ok = 1\nlet a = ;", "bad")
	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("want *Error, got %T %v", err, err)
	}
	if te.Pass != passImports || te.Name != "bad" || te.Line != 2 || te.Column != 9 {
		t.Fatalf("error = %+v", te)
	}
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatal("parser error should be reachable with errors.As")
	}
	if !strings.HasPrefix(te.Error(), "bad:2:9: SYN") {
		t.Errorf("message = %q", te.Error())
	}
}

func TestTranspileErrorAtEndOfInput(t *testing.T) {
	_, err := New(DefaultConfig()).Transpile("foo(", "eof")
	var te *Error
	if !errors.As(err, &te) {
		t.Fatalf("want *Error, got %v", err)
	}
	if te.Line != 1 {
		t.Fatalf("error should point into the cell, got %+v", te)
	}
}

func TestTranspileBadWrapper(t *testing.T) {
	tr := New(DefaultConfig())
	_, err := tr.Transpile("})(); (function(){", "escape")
	if !errors.Is(err, ErrBadWrapper) {
		t.Fatalf("want ErrBadWrapper, got %v", err)
	}
	if tr.History().Len() != 0 {
		t.Fatal("failed cells must not be recorded")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []Config{
		{GlobalVar: "1x", ImportFn: "i", ConsoleVar: "c"},
		{GlobalVar: "g", ImportFn: "a-b", ConsoleVar: "c"},
		{GlobalVar: "g", ImportFn: "g", ConsoleVar: "c"},
		{GlobalVar: "g", ImportFn: "i", ConsoleVar: "c", HistoryLimit: -1},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("%+v should be rejected", c)
		}
	}
	if !errors.Is(bad[0].Validate(), errBadName) {
		t.Error("bad identifier should wrap errBadName")
	}
}

func TestPackageLevelTranspile(t *testing.T) {
	code, err := Transpile("1 + 1", "pkg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(code, "return (1 + 1)") {
		t.Fatalf("code:\n%s", code)
	}
	id := Default().History().LastID()
	stack := "Error\n    at " + wrapperName(id) + " (" + sourceURL(id, "pkg") + ":2:1)"
	if got := FormatStack(stack); got != "Error\n    at <top level> (pkg:1:1)" {
		t.Fatalf("FormatStack = %q", got)
	}
}
