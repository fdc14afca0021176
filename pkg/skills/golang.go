package skills

// goRules follow the Go by Example chapter list. go/timeouts and
// go/rate_limiting fire on the same time.Sleep call; both are kept.
func goRules() []Rule {
	return []Rule{
		// language
		when("go/for", anyOf("for ")),
		when("go/if_else", allOf("if ", "else ")),
		when("go/switch", allOf("switch ", "case ")),
		when("go/slices", anyOf("[]")),
		when("go/range", anyOf("range ")),
		when("go/maps", anyOf("map ")),
		when("go/functions", allOf("() {", "func ")),
		when("go/variables", anyOf("var ")),
		when("go/constants", anyOf("const ")),
		when("go/closures", allOf("func ", "return ")),
		when("go/pointers", anyOf("*")),
		when("go/strings", anyOf("string ")),
		when("go/structs", anyOf("struct ")),
		when("go/interfaces", anyOf("interface ")),
		when("go/struct_embedding", anyOf("type ")),
		when("go/generics", allOf("<", ">")),
		when("go/errors", anyOf("error ")),

		// concurrency
		when("go/channels", anyOf("chan ")),
		when("go/select", anyOf("select ")),
		when("go/timeouts", anyOf("time.Sleep(")),
		when("go/timers", anyOf("time.AfterFunc(")),
		when("go/tickers", anyOf("time.Tick(")),
		when("go/waitgroups", anyOf("sync.WaitGroup ")),
		when("go/rate_limiting", anyOf("time.Sleep(")),
		when("go/atomic", anyOf("atomic.Value ")),
		when("go/mutexes", anyOf("sync.Mutex ")),

		// standard library
		when("go/sorting", anyOf("sort.Slice ")),
		when("go/panic", anyOf("panic(")),
		when("go/defer", anyOf("defer ")),
		when("go/recover", anyOf("recover(")),
		when("go/text_templates", anyOf("template ")),
		when("go/regular_expressions", anyOf("regexp ")),
		when("go/json", anyOf("json.Marshal ")),
		when("go/xml", anyOf("xml.Marshal ")),
		when("go/time", anyOf("time.Now ")),
		when("go/epoch", anyOf("time.Unix ")),
		when("go/time_formatting_parsing", anyOf("time.Parse ")),
		when("go/random_numbers", anyOf("rand.Intn ")),
		when("go/number_parsing", anyOf("strconv.Atoi ")),
		when("go/url_parsing", anyOf("url.Parse ")),
		when("go/sha256_hashes", anyOf("crypto.SHA256 ")),
		when("go/base64_encoding", anyOf("encoding.Base64 ")),
		when("go/reading_files", anyOf("os.Open ")),
		when("go/writing_files", anyOf("os.Create ")),
		when("go/line_filters", anyOf("bufio.NewScanner ")),
		when("go/file_paths", anyOf("filepath.Join ")),
		when("go/directories", anyOf("os.Mkdir ")),
		when("go/temporary_files_and_directories", anyOf("os.TempDir ")),
		when("go/embed_directive", anyOf("embed ")),
		when("go/testing_and_benchmarking", anyOf("testing.T ")),
		when("go/command_line", anyOf("os.Args ")),
		when("go/environment_variables", anyOf("os.Getenv ")),
		when("go/http_client", anyOf("http.Get ")),
		when("go/http_server", anyOf("http.HandleFunc ")),
		when("go/context", anyOf("context.Background ")),
		when("go/processes", anyOf("os.StartProcess ")),
		when("go/signals", anyOf("os.Signal ")),
		when("go/exit", anyOf("os.Exit ")),
		when("go/values", anyOf("reflect.ValueOf ")),
	}
}
