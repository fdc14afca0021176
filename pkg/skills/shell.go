package skills

func shellRules() []Rule {
	return []Rule{
		when("shell/if_else", allOf("if", "else")),
		when("shell/case_esac", allOf("case", "esac")),
		when("shell/while_loop", anyOf("while")),
		when("shell/break", anyOf("break")),
		when("shell/for_loop", anyOf("for")),
		when("shell/function_return_values", anyOf("return")),
		when("shell/function_basic", anyOf("function")),
		when("shell/function_arguments", anyOf("$1")),
		when("shell/variable_substitution", anyOf("${")),
		when("shell/string_operator", anyOf("==", "!=")),
		when("shell/boolean_operator", anyOf("&&", "||")),
		when("shell/file_test_operator", anyOf("-f", "-d")),
		when("shell/relational_operator", anyOf("-eq", "-ne")),
		when("shell/arithmetic_operator", anyOf("$((")),
		when("shell/local_variables", anyOf("local")),
		when("shell/special_variables", anyOf("$#")),
		when("shell/input_redirection", anyOf(" < ")),
		when("shell/output_redirection", anyOf(" > ")),
	}
}
