package skills

// pygameModules are matched only as "pygame.<module>." so that a bare
// attribute such as "pygame.display" at the end of a line does not count.
var pygameModules = []string{
	"color",
	"display",
	"draw",
	"event",
	"font",
	"image",
	"key",
	"locals",
	"mixer",
	"mouse",
	"rect",
	"surface",
	"time",
	"music",
	"cursors",
	"joystick",
	"mask",
	"sprite",
	"transform",
	"bufferproxy",
	"freetype",
	"gfxdraw",
	"midi",
	"pixelarray",
	"pixelcopy",
	"sndarray",
	"surfarray",
	"math",
	"camera",
	"controller",
	"examples",
	"fastevent",
	"scrap",
	"tests",
	"touch",
	"version",
}

func pygameRules() []Rule {
	return []Rule{
		tokenSweep{
			tech:   Pygame,
			tokens: pygameModules,
			patterns: func(module string) []string {
				return []string{"pygame." + module + "."}
			},
			name: identity,
		},
	}
}
