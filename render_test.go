package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func blockOf(lines ...string) docBlock {
	b := docBlock{}
	for _, line := range lines {
		if line == "" {
			b.add("#")
		} else {
			b.add("# " + line)
		}
	}
	return b
}

func TestRenderTextRoundTrip(t *testing.T) {
	block := blockOf("Public: Does a thing.", "", "More detail.")
	got := textRenderer{marker: "#"}.render("thing()", block)
	want := strings.Repeat("-", 80) + "\n" +
		"thing()\n" +
		"\n" +
		"Public: Does a thing.\n\nMore detail.\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderMarkdownHeading(t *testing.T) {
	got := markdownRenderer{marker: "#"}.render("x()", blockOf("Does x."))
	assert.Equal(t, "`x()`\n-----\nDoes x.\n", got)
}

func TestRenderMarkdownParagraphJoining(t *testing.T) {
	got := markdownRenderer{marker: "#"}.render("f()", blockOf("Foo bar", "baz."))
	assert.Equal(t, "`f()`\n-----\nFoo bar\nbaz.\n", got)
}

func TestRenderMarkdownOptionList(t *testing.T) {
	got := markdownRenderer{marker: "#"}.render("f()", blockOf(
		"name - the thing",
		"    continued desc",
		"other - second",
	))
	want := "`f()`\n-----\n" +
		"* name - the thing continued desc\n" +
		"* other - second\n"
	assert.Equal(t, want, got)
}

func TestRenderMarkdownSubBullet(t *testing.T) {
	got := markdownRenderer{marker: "#"}.render("f()", blockOf(
		"opts - option hash",
		" key - the key",
	))
	want := "`f()`\n-----\n" +
		"* opts - option hash\n" +
		"    * key - the key\n"
	assert.Equal(t, want, got)
}

// A two-space indented line is continuation or example text even when it
// looks like an option.
func TestRenderMarkdownIndentedNeverOption(t *testing.T) {
	t.Run("after option it glues", func(t *testing.T) {
		got := markdownRenderer{marker: "#"}.render("f()", blockOf(
			"opt - d",
			"  key - v",
		))
		assert.Equal(t, "`f()`\n-----\n* opt - d key - v\n", got)
	})
	t.Run("standalone it stays literal", func(t *testing.T) {
		got := markdownRenderer{marker: "#"}.render("f()", blockOf(
			"  key - v",
		))
		assert.Equal(t, "`f()`\n-----\n    key - v\n", got)
	})
}

func TestRenderMarkdownBlankLinesCollapse(t *testing.T) {
	got := markdownRenderer{marker: "#"}.render("f()", blockOf(
		"first paragraph",
		"",
		"",
		"second paragraph",
	))
	assert.Equal(t, "`f()`\n-----\nfirst paragraph\n\nsecond paragraph\n", got)
}

func TestRenderMarkdownIndentedExample(t *testing.T) {
	got := markdownRenderer{marker: "#"}.render("f()", blockOf(
		"Examples",
		"",
		"  f one two",
	))
	assert.Equal(t, "`f()`\n-----\nExamples\n\n    f one two\n", got)
}

func TestRenderMarkdownExplicitBulletNeverMerges(t *testing.T) {
	got := markdownRenderer{marker: "#"}.render("f()", blockOf(
		"A paragraph",
		"* already a bullet",
	))
	assert.Equal(t, "`f()`\n-----\nA paragraph\n* already a bullet\n", got)
}

// Option shape wins even inside running prose.
func TestRenderMarkdownOptionInsideProse(t *testing.T) {
	got := markdownRenderer{marker: "#"}.render("f()", blockOf(
		"Takes arguments:",
		"count - how many",
	))
	assert.Equal(t, "`f()`\n-----\nTakes arguments:\n* count - how many\n", got)
}

func TestRenderIdempotent(t *testing.T) {
	block := blockOf("Public: Does a thing.", "", "a - first", "b - second")
	md := markdownRenderer{marker: "#"}
	first := md.render("thing()", block)
	second := md.render("thing()", block)
	assert.Equal(t, first, second)

	txt := textRenderer{marker: "#"}
	assert.Equal(t, txt.render("thing()", block), txt.render("thing()", block))
}

func TestRenderGolden(t *testing.T) {
	archive, err := txtar.ParseFile(filepath.Join("testdata", "golden", "example.txtar"))
	require.NoError(t, err)
	files := make(map[string][]byte, len(archive.Files))
	for _, f := range archive.Files {
		files[f.Name] = f.Data
	}
	require.Contains(t, files, "input.sh")
	lines := splitLines(string(files["input.sh"]))

	t.Run("markdown", func(t *testing.T) {
		got := renderScript(lines, renderConfig{format: formatMarkdown, marker: "#"})
		assert.Equal(t, string(files["markdown"]), string(got))
	})
	t.Run("text", func(t *testing.T) {
		got := renderScript(lines, renderConfig{format: formatText, marker: "#"})
		assert.Equal(t, string(files["text"]), string(got))
	})
}
