package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, tech Technology, content string) Set {
	t.Helper()
	got, err := Extract(tech, content)
	require.NoError(t, err)
	return got
}

func TestPythonRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		notWant []string
	}{
		{"if else needs both", "if x:\n    pass\nelse:\n    pass", []string{"python/if_else"}, nil},
		{"if alone", "if x:\n    pass", nil, []string{"python/if_else"}},
		{"try except", "try:\n    f()\nexcept ValueError:\n    raise", []string{"python/try_except"}, nil},
		{"import library", "import numpy as np", []string{"python/numpy"}, nil},
		{"from library", "from pathlib import Path", []string{"python/pathlib"}, nil},
		{"builtin strips paren", "sorted(xs, key=abs)", []string{"python/sorted"}, []string{"python/abs"}},
		{"walrus", "if (n := len(a)) > 10:", []string{"python/walrus", "python/len", "python/comparison"}, nil},
		{"tuple implies data types", "t = tuple(x)", []string{"python/tuple", "python/data_types", "python/assignment"}, nil},
		{"pip", "pip install requests", []string{"python/pypi"}, nil},
		{"kwargs", "def f(*args, **kwargs):", []string{"python/args_and_kwargs", "python/function_basic"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract(t, Python, tt.content)
			for _, skill := range tt.want {
				assert.True(t, got.Has(skill), "expected %s in %v", skill, got.Sorted())
			}
			for _, skill := range tt.notWant {
				assert.False(t, got.Has(skill), "unexpected %s in %v", skill, got.Sorted())
			}
		})
	}
}

func TestTkinterLowercasesClassNames(t *testing.T) {
	got := extract(t, Tkinter, "w = ttk.Treeview(root)\nv = tk.StringVar()")
	assert.True(t, got.Has("tkinter/treeview"))
	assert.True(t, got.Has("tkinter/stringvar"))
	assert.False(t, got.Has("tkinter/Treeview"))
}

func TestTkinterRequiresAttributeAccess(t *testing.T) {
	got := extract(t, Tkinter, "Button(root)")
	assert.Equal(t, 0, got.Len())
}

func TestRustTokenSweep(t *testing.T) {
	got := extract(t, Rust, "let s = x.to_string();\nlet y = v.iter().map(|a| a);")
	assert.True(t, got.Has("rust/iter"))
	assert.False(t, got.Has("rust/to_string"))
	assert.False(t, got.Has("rust/map"))
}

func TestShellRules(t *testing.T) {
	got := extract(t, Shell, "case $1 in\n  a) echo ${x};;\nesac\nwhile true; do break; done\ncat < in > out")
	for _, skill := range []string{
		"shell/case_esac",
		"shell/function_arguments",
		"shell/variable_substitution",
		"shell/while_loop",
		"shell/break",
		"shell/input_redirection",
		"shell/output_redirection",
	} {
		assert.True(t, got.Has(skill), skill)
	}
	assert.False(t, got.Has("shell/arithmetic_operator"))
}

func TestDjangoSharedTrigger(t *testing.T) {
	got := extract(t, Django, "from django.db.models import Q")
	assert.True(t, got.Has("django/models"))
	assert.True(t, got.Has("django/schemaeditor"))
	assert.True(t, got.Has("django/databases"))
	assert.False(t, got.Has("django/migration_operations"))
}

func TestGoRules(t *testing.T) {
	got := extract(t, Go, "var mu sync.Mutex \nch := make(chan int)\ndefer mu.Unlock()\nselect {\ncase <-ch:\n}")
	for _, skill := range []string{"go/variables", "go/mutexes", "go/channels", "go/defer", "go/select"} {
		assert.True(t, got.Has(skill), skill)
	}
	assert.False(t, got.Has("go/generics"), "generics needs both angle brackets")
	assert.False(t, got.Has("go/timeouts"))
}

func TestCppOverloadHeuristic(t *testing.T) {
	once := extract(t, Cpp, "int main() {}")
	assert.False(t, once.Has("cpp/function_overloading"))

	twice := extract(t, Cpp, "int add(int a);\ndouble add(double a);")
	assert.True(t, twice.Has("cpp/function_overloading"))
	assert.True(t, twice.Has("cpp/function_parameters"))
}

func TestCppClassRules(t *testing.T) {
	ctor := extract(t, Cpp, "class Point {\npublic:\n  Point() {}\n};")
	assert.True(t, ctor.Has("cpp/constructors"))
	assert.True(t, ctor.Has("cpp/inheritance"))
	assert.True(t, ctor.Has("cpp/functions"))
	assert.False(t, ctor.Has("cpp/class_methods"))

	method := extract(t, Cpp, "class Point {\nprivate:\n  int x;\npublic:\n  void show() {}\n};")
	assert.True(t, method.Has("cpp/class_methods"))
	assert.True(t, method.Has("cpp/encapsulation"))
	assert.False(t, method.Has("cpp/constructors"))
	assert.False(t, method.Has("cpp/inheritance"))
}

func TestCRules(t *testing.T) {
	got := extract(t, C, "FILE *f = fopen(\"a\", \"w\");\nfprintf(f, \"%d\", 5 % 2);\nenum color { RED };")
	for _, skill := range []string{"c/create_files", "c/write_to_files", "c/enums", "c/pointers", "c/operators", "c/variables"} {
		assert.True(t, got.Has(skill), skill)
	}
	assert.False(t, got.Has("c/read_files"))
}

func TestHTMLRules(t *testing.T) {
	got := extract(t, HTML, "<ul>\n<li class=\"x\">a</li>\n</ul>\n<h2>t</h2>")
	assert.Equal(t, []string{"html/heading", "html/li", "html/ul"}, got.Sorted())

	plain := extract(t, HTML, "plain text with a <placeholder>")
	assert.Equal(t, 0, plain.Len())
}

func TestOccursMoreThanOnce(t *testing.T) {
	tests := []struct {
		content string
		needle  string
		want    bool
	}{
		{"int a; int b;", "int ", true},
		{"int a;", "int ", false},
		{"float x;", "int ", false},
		{"", "int ", false},
		{"aaa", "aa", true},
		{"aa", "aa", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OccursMoreThanOnce(tt.content, tt.needle), "%q in %q", tt.needle, tt.content)
	}
}
