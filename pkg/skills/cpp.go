package skills

var (
	cTypeKeywords   = []string{"int ", "float ", "double ", "char "}
	cTypeParameters = []string{"(int ", "(float ", "(double ", "(char "}
)

// cppRules include the overload heuristic: a scalar type keyword seen twice
// is taken as a sign of several same-shaped declarations.
func cppRules() []Rule {
	return []Rule{
		when("cpp/if_else", anyOf("if (")),
		when("cpp/user_input", anyOf("cin >>")),
		when("cpp/strings", anyOf("string ")),
		when("cpp/math", anyOf("math.h")),
		when("cpp/booleans", anyOf("bool ")),
		when("cpp/switch", anyOf("switch (")),
		when("cpp/while_loop", anyOf("while (")),
		when("cpp/break_continue", anyOf("break;")),
		when("cpp/for_loop", anyOf("for (")),
		when("cpp/arrays", anyOf("[]")),
		when("cpp/structures", anyOf("struct ")),
		when("cpp/references", anyOf("&")),
		when("cpp/pointers", anyOf("*")),
		when("cpp/data_types", anyOf(cTypeKeywords...)),
		when("cpp/variables", anyOf("=")),
		when("cpp/output", anyOf("cout <<")),
		when("cpp/functions", anyOf("() {")),
		when("cpp/function_parameters", anyOf(cTypeParameters...)),
		when("cpp/function_overloading", repeated(cTypeKeywords...)),
		when("cpp/recursion", anyOf("recursion")),
		when("cpp/oop", anyOf("class ")),
		when("cpp/classes_objects", allOf("class ", "()")),
		when("cpp/class_methods", allOf("class ", "()", "void ")),
		when("cpp/constructors", both(allOf("class ", "()"), none("void "))),
		when("cpp/access_specifiers", anyOf("public:", "private:")),
		when("cpp/encapsulation", anyOf("private:")),
		when("cpp/inheritance", both(allOf("class ", "public:"), none("private:"))),
		when("cpp/polymorphism", anyOf("virtual ")),
		when("cpp/files", anyOf("fstream")),
		when("cpp/exceptions", anyOf("try {")),
	}
}
