package skills

// pythonBuiltins are matched as "name(".
var pythonBuiltins = []string{
	"abs",
	"enumerate",
	"float",
	"input",
	"int",
	"len",
	"map",
	"max",
	"min",
	"next",
	"open",
	"print",
	"round",
	"sorted",
	"str",
	"sum",
	"zip",
	"type",
	"super",
	"id",
	"filter",
	"ord",
	"reversed",
	"bytes",
	"assert",
	"encode",
	"isinstance",
	"all",
	"bin",
	"any",
	"hex",
	"divmod",
	"chr",
	"slice",
	"strip",
}

// pythonLibraries are matched as "import <lib>" or "from <lib>".
var pythonLibraries = []string{
	"re",
	"os",
	"glob",
	"argparse",
	"math",
	"datetime",
	"sys",
	"multiprocessing",
	"unittest",
	"sqlite3",
	"logging",
	"copy",
	"collections",
	"itertools",
	"typing",
	"threading",
	"time",
	"webbrowser",
	"pygame",
	"random",
	"zlib",
	"textwrap",
	"calendar",
	"functools",
	"operator",
	"enum",
	"dateutil",
	"secrets",
	"io",
	"pathlib",
	"dask",
	"tkinter",
	"ctypes",
	"requests",
	"pytz",
	"tqdm",
	"bitstring",
	"numpy",
	"pandas",
	"matplotlib",
	"flask",
	"pyarrow",
	"scipy",
	"beautifulsoup",
	"seaborn",
	"sklearn",
	"basic_units",
	"pil",
}

func pythonRules() []Rule {
	return []Rule{
		when("python/if_else", allOf("if ", "else")),
		when("python/python_interpreter", anyOf("python3")),
		when("python/python_scripts", anyOf(".py")),
		when("python/math_operator", anyOf("+", "-", "*", "/")),
		when("python/assignment", anyOf(" = ")),
		when("python/variables", anyOf("int(", "float(", "str(")),
		when("python/ipython", anyOf("ipython")),
		when("python/del", anyOf("del ")),
		when("python/function_basic", anyOf("def ")),
		when("python/args_and_kwargs", anyOf("*args", "**kwargs")),
		when("python/lambda_function", anyOf("lambda ")),
		when("python/local_and_global", anyOf("global ")),
		when("python/yield_values", anyOf("yield ")),
		when("python/comparison", anyOf("==", "!=", "<", ">")),
		when("python/boolean", anyOf("True", "False")),
		when("python/switch_case", allOf("switch ", "case ")),
		when("python/while_loop", anyOf("while ")),
		when("python/range", anyOf("range(")),
		when("python/walrus", anyOf(":=")),
		when("python/data_types", anyOf("list(", "tuple(", "dict(")),
		when("python/list", anyOf("append(", "pop(", "remove(")),
		when("python/tuple", anyOf("tuple(")),
		when("python/dict", anyOf("dict(")),
		when("python/set", anyOf("set(")),
		when("python/virtual_environments", anyOf("virtualenv")),
		when("python/pypi", anyOf("pip install ")),
		when("python/conda", anyOf("conda install ")),
		when("python/try_except", allOf("try:", "except")),
		when("python/syntax_errors", anyOf("SyntaxError")),
		when("python/raise_errors", anyOf("raise ")),
		when("python/class", anyOf("class ")),
		when("python/attributes", anyOf("self.")),
		when("python/inheritance", anyOf("super(")),
		tokenSweep{
			tech:     Python,
			tokens:   pythonBuiltins,
			patterns: suffixed("("),
			name:     identity,
		},
		tokenSweep{
			tech:   Python,
			tokens: pythonLibraries,
			patterns: func(lib string) []string {
				return []string{"import " + lib, "from " + lib}
			},
			name: identity,
		},
	}
}
