package skills

func cRules() []Rule {
	return []Rule{
		when("c/if_else", anyOf("if (")),
		when("c/for_loop", anyOf("for (")),
		when("c/while_loop", anyOf("while (")),
		when("c/output", anyOf("printf(")),
		when("c/variables", anyOf("=")),
		when("c/data_types", anyOf(cTypeKeywords...)),
		when("c/constants", anyOf("const ")),
		when("c/operators", anyOf("+", "-", "*", "/", "%")),
		when("c/booleans", anyOf("bool ")),
		when("c/switch", anyOf("switch (")),
		when("c/break_continue", anyOf("break;")),
		when("c/arrays", anyOf("[]")),
		when("c/strings", anyOf("string ")),
		when("c/user_input", anyOf("scanf(")),
		when("c/memory_address", anyOf("&")),
		when("c/pointers", anyOf("*")),
		when("c/structures", anyOf("struct ")),
		when("c/enums", anyOf("enum ")),
		when("c/functions", anyOf("() {")),
		when("c/function_parameters", anyOf(cTypeParameters...)),
		when("c/function_declaration", anyOf("int ", "float ", "double ")),
		when("c/recursion", anyOf("recursion")),
		when("c/math_functions", anyOf("math.h")),
		when("c/create_files", anyOf("fopen(")),
		when("c/write_to_files", anyOf("fprintf(")),
		when("c/read_files", anyOf("fscanf(")),
	}
}
