package skills

import (
	"bufio"
	"context"
	_ "embed"
	"strings"
	"sync"

	"github.com/labex-labs/skilltag/pkg/logger"
)

var (
	//go:embed catalog/sklearn.txt
	sklearnCatalog string

	//go:embed catalog/flask.txt
	flaskCatalog string
)

// flaskSections collapses API class groups onto the section skills of the
// Flask reference. Keep in sync with catalog/flask.txt by hand.
var flaskSections = map[string]string{
	"flask/appgroup":             "flask/command_line_interface",
	"flask/securecookiesession":  "flask/session_interface",
	"flask/request":              "flask/incoming_request_data",
	"flask/blueprint":            "flask/blueprint_objects",
	"flask/_appctxglobals":       "flask/application_globals",
	"flask/config":               "flask/configuration",
	"flask/view":                 "flask/class_based_views",
	"flask/blueprintsetupstate":  "flask/useful_internals",
	"flask/appcontext":           "flask/useful_internals",
	"flask/session":              "flask/sessions",
	"flask/flaskclirunner":       "flask/test_cli_runner",
	"flask/response":             "flask/response_objects",
	"flask/jsonprovider":         "flask/json_support",
	"flask/flaskclient":          "flask/test_client",
	"flask/nullsession":          "flask/session_interface",
	"flask/sessionmixin":         "flask/session_interface",
	"flask/taggedjsonserializer": "flask/json_support",
	"flask/scriptinfo":           "flask/command_line_interface",
	"flask/flask":                "flask/application_object",
	"flask/defaultjsonprovider":  "flask/json_support",
	"flask/jsontag":              "flask/json_support",
	"flask/requestcontext":       "flask/useful_internals",
}

var sklearnEntries = sync.OnceValue(func() []catalogEntry {
	return parseSklearnCatalog(sklearnCatalog)
})

var flaskEntries = sync.OnceValue(func() []catalogEntry {
	entries, unmapped := parseFlaskCatalog(flaskCatalog, flaskSections)
	if len(unmapped) > 0 {
		logger.G(context.Background()).
			WithField("groups", unmapped).
			Debug("flask catalog groups without a section mapping were skipped")
	}
	return entries
})

// parseSklearnCatalog reads "sklearn.module: Title" lines. The module path is
// both the token and, with dots turned into slashes, the skill. Lines without
// a title or outside the sklearn namespace are skipped.
func parseSklearnCatalog(text string) []catalogEntry {
	var entries []catalogEntry
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		module, _, ok := strings.Cut(scanner.Text(), ": ")
		module = strings.TrimSpace(module)
		if !ok || !strings.HasPrefix(module, "sklearn.") {
			continue
		}
		entries = append(entries, catalogEntry{
			token: module,
			skill: strings.ReplaceAll(module, ".", "/"),
		})
	}
	return entries
}

// parseFlaskCatalog reads "Class.member" and "Class.method()" lines. The
// token is the member with closing parens removed, so "Flask.route()" is
// matched as "route(". Lines without a dot are section titles or free
// functions and carry no token. Groups missing from sections are returned
// in unmapped, in first-seen order.
func parseFlaskCatalog(text string, sections map[string]string) (entries []catalogEntry, unmapped []string) {
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		parts := strings.Split(scanner.Text(), ".")
		if len(parts) < 2 {
			continue
		}
		group := strings.TrimSpace(parts[0])
		token := strings.ReplaceAll(strings.TrimSpace(parts[1]), ")", "")
		if group == "" || token == "" {
			continue
		}

		skill, ok := sections["flask/"+strings.ToLower(group)]
		if !ok {
			if !seen[group] {
				seen[group] = true
				unmapped = append(unmapped, group)
			}
			continue
		}
		entries = append(entries, catalogEntry{token: token, skill: skill})
	}
	return entries, unmapped
}

func sklearnRules() []Rule {
	return []Rule{referenceTable{entries: sklearnEntries()}}
}

func flaskRules() []Rule {
	return []Rule{referenceTable{entries: flaskEntries()}}
}
