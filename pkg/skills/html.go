package skills

// htmlTags is the element catalog. A tag counts when it appears as "<tag>",
// "<tag " (with attributes) or "</tag>".
var htmlTags = []string{
	"p", "abbr", "title", "head", "body", "address", "section", "a",
	"style", "article", "li", "ul", "footer", "time", "aside", "audio",
	"source", "input", "button", "progress", "b", "meta", "base", "form",
	"label", "br", "textarea", "bdi", "div", "script", "bdo", "blockquote",
	"cite", "canvas", "table", "tr", "th", "td", "code", "pre",
	"colgroup", "col", "data", "datalist", "option", "dl", "dt", "dd",
	"img", "del", "ins", "details", "summary", "dfn", "dialog", "link",
	"em", "embed", "object", "fieldset", "legend", "figure", "figcaption", "main",
	"header", "nav", "hgroup", "i", "iframe", "map", "area", "kbd",
	"samp", "ol", "meter", "noscript", "optgroup", "select", "output", "ruby",
	"rp", "rt", "small", "video", "span", "s", "strong", "sub",
	"sup", "thead", "tbody", "tfoot", "template", "var", "caption", "mark",
}

func htmlRules() []Rule {
	return []Rule{
		tokenSweep{
			tech:   HTML,
			tokens: htmlTags,
			patterns: func(tag string) []string {
				return []string{"<" + tag + ">", "<" + tag + " ", "</" + tag + ">"}
			},
			name: identity,
		},
		when("html/heading", anyOf("</h1>", "</h2>", "</h3>", "</h4>", "</h5>", "</h6>")),
	}
}
