package main

import (
	"strings"
)

const (
	defaultMarker = "#"
	skipMarker    = "# shellcheck"
)

// renderFunc turns an accepted (name, block) pair into its final form.
type renderFunc func(name string, block docBlock) string

// docBlock is a contiguous run of comment lines, markers included, collected
// while scanning toward the declaration they document.
type docBlock struct {
	lines []string
}

func (b docBlock) empty() bool { return len(b.lines) == 0 }

func (b *docBlock) add(line string) { b.lines = append(b.lines, line) }

func (b *docBlock) reset() { b.lines = nil }

func (b docBlock) firstLine() string {
	if b.empty() {
		return ""
	}
	return b.lines[0]
}

// uncomment strips the comment marker and at most one following whitespace
// character from every line. Each line keeps its trailing newline.
func (b docBlock) uncomment(marker string) string {
	var sb strings.Builder
	for _, line := range b.lines {
		line = strings.TrimPrefix(line, marker)
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			line = line[1:]
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderedEntry is one documented declaration, in input order.
type renderedEntry struct {
	name string
	text string
}

// scanState is the accumulator's mode: either between blocks or collecting
// comment lines toward the next decision point.
type scanState int

const (
	stateIdle scanState = iota
	stateCollecting
)

type extractor struct {
	marker string
	access string
	render renderFunc
}

func newExtractor(marker, access string, render renderFunc) *extractor {
	if marker == "" {
		marker = defaultMarker
	}
	return &extractor{marker: marker, access: access, render: render}
}

// extractDocs folds over lines and pairs each comment block with the
// declaration line that follows it. A blank line resets a pending block; a
// non-comment line that classifies as no declaration discards it; a block
// still pending at end of input is likewise discarded.
func (e *extractor) extractDocs(lines []string) []renderedEntry {
	state := stateIdle
	var block docBlock
	var entries []renderedEntry
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, skipMarker):
			// linter directives neither extend nor terminate a block
		case e.isComment(line):
			block.add(line)
			state = stateCollecting
		case strings.TrimSpace(line) == "":
			block.reset()
			state = stateIdle
		default:
			if state == stateCollecting && e.allowed(block) {
				if decl, ok := classifyLine(line); ok {
					entries = append(entries, renderedEntry{
						name: decl.name,
						text: e.render(decl.name, block),
					})
				}
			}
			block.reset()
			state = stateIdle
		}
	}
	return entries
}

// isComment matches the bare marker and marker-plus-space lines. A shebang
// (`#!`) is neither, so it terminates like any other code line.
func (e *extractor) isComment(line string) bool {
	return line == e.marker || strings.HasPrefix(line, e.marker+" ")
}

// allowed applies the access filter: with no configured level every block
// passes; otherwise the first line must carry the `Level: ` tag. The tag line
// itself stays in the rendered body.
func (e *extractor) allowed(block docBlock) bool {
	if e.access == "" {
		return true
	}
	return strings.HasPrefix(block.firstLine(), e.marker+" "+e.access+": ")
}
