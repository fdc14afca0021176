package skills

import "strings"

// tkinterClasses are widget and helper classes, matched as ".<Name>".
var tkinterClasses = []string{
	"Button",
	"Checkbutton",
	"Combobox",
	"Entry",
	"Frame",
	"Label",
	"LabeledScale",
	"Labelframe",
	"Menubutton",
	"Notebook",
	"OptionMenu",
	"Panedwindow",
	"Progressbar",
	"Radiobutton",
	"Scale",
	"Scrollbar",
	"Separator",
	"Sizegrip",
	"Spinbox",
	"Treeview",
	"Canvas",
	"Listbox",
	"Menu",
	"Text",
	"Toplevel",
	"Variable",
	"BooleanVar",
	"DoubleVar",
	"IntVar",
	"StringVar",
	"BitmapImage",
	"PhotoImage",
	"Directory",
	"Open",
	"SaveAs",
	"Chooser",
	"Style",
	"Font",
}

func tkinterRules() []Rule {
	return []Rule{
		tokenSweep{
			tech:     Tkinter,
			tokens:   tkinterClasses,
			patterns: prefixed("."),
			name:     strings.ToLower,
		},
	}
}
