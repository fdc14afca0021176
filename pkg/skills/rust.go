package skills

import "strings"

// rustTokens covers primitive types, std modules, std macros and keywords.
// Each is matched as ".<token>".
var rustTokens = []string{
	// primitives
	"never", "array", "bool", "char", "f32", "f64", "fn",
	"i8", "i16", "i32", "i64", "i128", "isize",
	"pointer", "reference", "slice", "tuple",
	"u8", "u16", "u32", "u64", "u128", "unit", "usize",

	// modules
	"assert_matches", "async_iter", "intrinsics", "simd",
	"alloc", "any", "arch", "ascii", "backtrace", "borrow", "boxed",
	"cell", "clone", "cmp", "collections", "convert", "default",
	"env", "error", "ffi", "fmt", "fs", "future", "hash", "hint",
	"io", "iter", "marker", "mem", "net", "num", "ops", "option",
	"os", "panic", "path", "pin", "prelude", "primitive", "process",
	"ptr", "rc", "result", "string", "sync", "task", "thread", "time", "vec",

	// macros
	"concat_bytes", "concat_idents", "const_format_args", "format_args_nl",
	"log_syntax", "trace_macros", "assert", "assert_eq", "assert_ne",
	"cfg", "column", "compile_error", "concat", "dbg",
	"debug_assert", "debug_assert_eq", "debug_assert_ne",
	"eprint", "eprintln", "format", "format_args",
	"include", "include_bytes", "include_str", "x86_64", "line",
	"matches", "module_path", "option_env", "print", "println",
	"stringify", "thread_local", "todo", "trydeprecated",
	"unimplemented", "unreachable", "write", "writeln",

	// keywords
	"selfty", "async", "await", "break", "const", "continue", "crate",
	"dyn", "else", "enum", "extern", "false", "for", "if", "impl",
	"let", "loop", "match", "mod", "move", "mut", "pub", "ref",
	"return", "self", "static", "struct", "super", "trait", "true",
	"type", "union", "unsafe", "use", "where", "while",

	// toolchain
	"rustc", "rustup",
}

func rustRules() []Rule {
	return []Rule{
		tokenSweep{
			tech:     Rust,
			tokens:   rustTokens,
			patterns: prefixed("."),
			name:     strings.ToLower,
		},
	}
}
