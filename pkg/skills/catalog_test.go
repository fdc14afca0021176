package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSklearnCatalog(t *testing.T) {
	entries := parseSklearnCatalog("sklearn.base: Base Classes\n\n   \nsklearn.linear_model: Linear Models\nnot a module line\nnumpy.linalg: Linear Algebra")

	require.Len(t, entries, 2)
	assert.Equal(t, catalogEntry{token: "sklearn.base", skill: "sklearn/base"}, entries[0])
	assert.Equal(t, catalogEntry{token: "sklearn.linear_model", skill: "sklearn/linear_model"}, entries[1])
}

func TestMalformedSklearnCatalogEmitsOnlyPrefixedSkills(t *testing.T) {
	table := referenceTable{entries: parseSklearnCatalog("sklearn.base: Base\nnot a module line\n")}

	emitted := table.Match("we use not a module line here, and sklearn.base too")
	assert.Equal(t, []string{"sklearn/base"}, emitted)
	for _, skill := range emitted {
		assert.True(t, strings.HasPrefix(skill, "sklearn/"), skill)
	}
}

func TestEmbeddedSklearnCatalog(t *testing.T) {
	entries := sklearnEntries()
	assert.Len(t, entries, 38)
	for _, e := range entries {
		assert.NotEmpty(t, e.token)
		assert.Regexp(t, `^sklearn/[a-z_]+$`, e.skill)
	}
}

func TestParseFlaskCatalog(t *testing.T) {
	text := `Application Object
Flask
Flask.route()
Flask.config
Request.args
MethodView.dispatch_request()
flask.globals.request_ctx
url_for()`
	sections := map[string]string{
		"flask/flask":   "flask/application_object",
		"flask/request": "flask/incoming_request_data",
	}

	entries, unmapped := parseFlaskCatalog(text, sections)

	assert.Equal(t, []catalogEntry{
		{token: "route(", skill: "flask/application_object"},
		{token: "config", skill: "flask/application_object"},
		{token: "args", skill: "flask/incoming_request_data"},
		{token: "globals", skill: "flask/application_object"},
	}, entries)
	assert.Equal(t, []string{"MethodView"}, unmapped)
}

func TestEmbeddedFlaskCatalogUnmappedGroups(t *testing.T) {
	entries, unmapped := parseFlaskCatalog(flaskCatalog, flaskSections)
	assert.NotEmpty(t, entries)
	assert.ElementsMatch(t, []string{
		"SessionInterface",
		"SecureCookieSessionInterface",
		"signals",
		"MethodView",
		"FlaskGroup",
	}, unmapped)
}

func TestEmbeddedFlaskCatalogOnlyEmitsSections(t *testing.T) {
	sections := make(map[string]bool)
	for _, skill := range flaskSections {
		sections[skill] = true
	}
	for _, e := range flaskEntries() {
		assert.True(t, sections[e.skill], "entry %q maps to %q", e.token, e.skill)
	}
}

func TestExtractFlask(t *testing.T) {
	got := extract(t, Flask, "app.config.from_pyfile('settings.cfg')\nresp = make_response()\nresp.set_cookie('a', 'b')")

	assert.True(t, got.Has("flask/configuration"), got.Sorted())
	assert.True(t, got.Has("flask/response_objects"), got.Sorted())
	assert.True(t, got.Has("flask/application_object"), got.Sorted())
}

func TestExtractFlaskSharedTokenHitsSeveralSections(t *testing.T) {
	got := extract(t, Flask, "bp.add_url_rule(")
	assert.True(t, got.Has("flask/application_object"))
	assert.True(t, got.Has("flask/blueprint_objects"))
	assert.True(t, got.Has("flask/useful_internals"))
}

func TestExtractSklearn(t *testing.T) {
	got := extract(t, Sklearn, "from sklearn.model_selection import train_test_split\nfrom sklearn import svm")
	assert.Equal(t, []string{"sklearn/model_selection"}, got.Sorted())
}
