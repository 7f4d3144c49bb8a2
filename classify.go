package main

import (
	"regexp"
	"strings"
)

type declKind int

const (
	declCallable declKind = iota
	declVariable
)

// declaration is a recognized function or variable definition line. name is
// the display form: `foo()` for callables, `BAR` for variables, with a
// `const ` prefix for read-only variables.
type declaration struct {
	kind declKind
	name string
}

type lineClassifier struct {
	pattern *regexp.Regexp
	extract func(m []string) declaration
}

// lineClassifiers is tried in order; the first matching rule wins. The order
// matters: `NAME=...` would otherwise swallow `export NAME=...` and friends.
var lineClassifiers = []lineClassifier{
	{
		// foo() or foo () with optional leading whitespace
		pattern: regexp.MustCompile(`^\s*([A-Za-z_:][A-Za-z0-9_:]*)\s*\(\)`),
		extract: func(m []string) declaration {
			return declaration{declCallable, m[1] + "()"}
		},
	},
	{
		pattern: regexp.MustCompile(`^function\s+([A-Za-z_:][A-Za-z0-9_:]*)`),
		extract: func(m []string) declaration {
			return declaration{declCallable, m[1] + "()"}
		},
	},
	{
		pattern: regexp.MustCompile(`^export ([A-Za-z_][A-Za-z0-9_=]*)`),
		extract: func(m []string) declaration {
			name, _, _ := strings.Cut(m[1], "=")
			return declaration{declVariable, name}
		},
	},
	{
		pattern: regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=`),
		extract: func(m []string) declaration {
			return declaration{declVariable, m[1]}
		},
	},
	{
		pattern: regexp.MustCompile(`^(?:declare|typeset) (?:-[A-Za-z]+ )+([A-Za-z_][A-Za-z0-9_]*)=`),
		extract: func(m []string) declaration {
			return declaration{declVariable, m[1]}
		},
	},
	{
		// readonly keeps the right-hand side in the display name
		pattern: regexp.MustCompile(`^readonly ([A-Za-z_][A-Za-z0-9_]*=.*)$`),
		extract: func(m []string) declaration {
			return declaration{declVariable, "const " + m[1]}
		},
	},
	{
		// parameter-default idiom: : ${NAME:=value}
		pattern: regexp.MustCompile(`^: \$\{([A-Za-z_][A-Za-z0-9_]*):=.*\}`),
		extract: func(m []string) declaration {
			return declaration{declVariable, m[1]}
		},
	},
}

// classifyLine reports whether line is a recognizable declaration and, if so,
// which one. Lines that match no rule carry no declaration.
func classifyLine(line string) (declaration, bool) {
	for _, c := range lineClassifiers {
		if m := c.pattern.FindStringSubmatch(line); m != nil {
			return c.extract(m), true
		}
	}
	return declaration{}, false
}
