package main

import (
	"regexp"
	"strings"
)

// textRule is the banner separating entries in plain-text output.
var textRule = strings.Repeat("-", 80)

// textRenderer emits the uncommented block verbatim under a fixed banner.
type textRenderer struct {
	marker string
}

func (r textRenderer) render(name string, block docBlock) string {
	var sb strings.Builder
	sb.WriteString(textRule)
	sb.WriteByte('\n')
	sb.WriteString(name)
	sb.WriteString("\n\n")
	sb.WriteString(block.uncomment(r.marker))
	sb.WriteByte('\n')
	return sb.String()
}

// markdownRenderer converts a block into structured Markdown: a heading for
// the declaration, `* ` bullets for "ARG - description" option lines with
// sub-bullets and continuation glueing, indented example blocks, and wrapped
// source lines joined into flowing paragraphs.
type markdownRenderer struct {
	marker string
}

// optionLine matches the "ARG - description" shape. At most one leading
// space: a line indented two or more spaces is continuation or example text,
// never an option.
var optionLine = regexp.MustCompile(`^( ?)\S+\s+-\s+`)

// mdLineState is the renderer's one-line lookback, threaded through a pure
// fold: each step takes (state, line) and returns (state, fragment).
type mdLineState struct {
	lastBlank  bool
	lastOption bool
	prev       string
	terminated bool // output currently ends with a newline
}

func (r markdownRenderer) render(name string, block docBlock) string {
	heading := "`" + name + "`"
	var sb strings.Builder
	sb.WriteString(heading)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", len(heading)))
	sb.WriteByte('\n')

	st := mdLineState{terminated: true}
	body := strings.TrimSuffix(block.uncomment(r.marker), "\n")
	for _, line := range strings.Split(body, "\n") {
		var frag string
		st, frag = st.step(strings.TrimRight(line, " \t"))
		sb.WriteString(frag)
	}
	if !st.terminated {
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (st mdLineState) step(line string) (mdLineState, string) {
	next := st
	next.prev = line
	var out strings.Builder
	switch {
	case optionLine.MatchString(line):
		if !st.terminated {
			out.WriteByte('\n')
		}
		if strings.HasPrefix(line, " ") {
			out.WriteString("    * ")
			out.WriteString(strings.TrimLeft(line, " "))
		} else {
			out.WriteString("* ")
			out.WriteString(line)
		}
		next.lastBlank = false
		next.lastOption = true
		next.terminated = false
	case line == "":
		if !st.terminated {
			out.WriteByte('\n')
		}
		if !st.lastBlank {
			out.WriteByte('\n')
		}
		next.lastBlank = true
		next.lastOption = false
		next.terminated = true
	case strings.HasPrefix(line, "  "):
		if st.lastOption {
			// glue continuation text onto the open bullet
			out.WriteByte(' ')
			out.WriteString(strings.TrimLeft(line, " "))
			next.terminated = false
		} else {
			out.WriteString("  ")
			out.WriteString(line)
			out.WriteByte('\n')
			next.terminated = true
		}
		next.lastBlank = false
	case strings.HasPrefix(line, "* "):
		if !st.terminated {
			out.WriteByte('\n')
		}
		out.WriteString(line)
		out.WriteByte('\n')
		next.lastBlank = false
		next.terminated = true
	default:
		if st.prev == "" {
			out.WriteString(line)
		} else {
			out.WriteByte('\n')
			out.WriteString(line)
		}
		next.lastBlank = false
		next.lastOption = false
		next.terminated = false
	}
	return next, out.String()
}
