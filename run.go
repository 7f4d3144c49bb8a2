package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
)

type options struct {
	markdown   bool
	text       bool
	access     string
	marker     string
	outputPath string
	inplace    bool
	watch      bool
	configPath string
}

// renderConfig is the resolved core configuration after flags, config file,
// and environment have been merged.
type renderConfig struct {
	format string
	access string
	marker string
}

func (rc renderConfig) renderFunc() renderFunc {
	if rc.format == formatMarkdown {
		return markdownRenderer{marker: rc.marker}.render
	}
	return textRenderer{marker: rc.marker}.render
}

type cliApp struct {
	stdin  io.Reader
	stdout io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, positionals []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := app.opts
	if opts.markdown && opts.text {
		return errors.New("-markdown and -text are mutually exclusive")
	}
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	rc, output := resolveConfig(opts, cfg)
	if opts.inplace && output != "" && output != "-" {
		return errors.New("-o cannot be combined with -inplace")
	}

	if len(positionals) == 0 || (len(positionals) == 1 && positionals[0] == "-") {
		if opts.inplace {
			return errors.New("in-place mode requires script arguments")
		}
		if opts.watch {
			return errors.New("watch mode requires script arguments")
		}
		lines, err := readLines(app.stdin)
		if err != nil {
			return err
		}
		return writeOutput(output, app.stdout, renderScript(lines, rc))
	}

	generate := func() error {
		docs, err := collectScriptDocs(positionals, rc)
		if err != nil {
			return err
		}
		return app.writeScriptDocs(docs, rc.format, output)
	}
	if opts.watch {
		if !opts.inplace && (output == "" || output == "-") {
			return errors.New("watch mode requires -o or -inplace")
		}
		return watchScripts(ctx, positionals, os.Stderr, generate)
	}
	return generate()
}

// resolveConfig merges flags over the config file. Flags left at their zero
// value fall back to the file; the comment marker falls back to "#".
func resolveConfig(opts options, cfg *fileConfig) (renderConfig, string) {
	format := formatText
	switch {
	case opts.markdown:
		format = formatMarkdown
	case opts.text:
		format = formatText
	case cfg.Format != "":
		format = cfg.Format
	}
	access := opts.access
	if access == "" {
		access = cfg.Access
	}
	marker := opts.marker
	if marker == "" {
		marker = cfg.Marker
	}
	if marker == "" {
		marker = defaultMarker
	}
	output := opts.outputPath
	if output == "" {
		output = cfg.Output
	}
	return renderConfig{format: format, access: access, marker: marker}, output
}

// scriptDoc is the rendered documentation for one input script.
type scriptDoc struct {
	source  string
	summary string
	doc     []byte
}

func collectScriptDocs(paths []string, rc renderConfig) ([]scriptDoc, error) {
	docs := make([]scriptDoc, 0, len(paths))
	for _, path := range paths {
		lines, err := readScript(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, scriptDoc{
			source:  path,
			summary: scriptSummary(lines, rc.marker),
			doc:     renderScript(lines, rc),
		})
	}
	return docs, nil
}

// renderScript runs the full pipeline over one input and concatenates the
// rendered entries in declaration order.
func renderScript(lines []string, rc renderConfig) []byte {
	e := newExtractor(rc.marker, rc.access, rc.renderFunc())
	var buf bytes.Buffer
	for _, entry := range e.extractDocs(lines) {
		buf.WriteString(entry.text)
	}
	return buf.Bytes()
}

func (app *cliApp) writeScriptDocs(docs []scriptDoc, format, output string) error {
	switch {
	case app.opts.inplace:
		return writeScriptDocsInPlace(docs, format)
	case wantsDirectoryOutput(output):
		return writeScriptDocsToDir(output, docs, format)
	default:
		var buf bytes.Buffer
		for _, d := range docs {
			buf.Write(d.doc)
		}
		return writeOutput(output, app.stdout, buf.Bytes())
	}
}

func readScript(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

func readLines(r io.Reader) ([]string, error) {
	if r == nil {
		r = os.Stdin
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

var accessTag = regexp.MustCompile(`^[A-Za-z]+: `)

// scriptSummary returns the first sentence of the first comment block,
// without its access tag. Used for table-of-contents entries.
func scriptSummary(lines []string, marker string) string {
	if marker == "" {
		marker = defaultMarker
	}
	var block docBlock
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, skipMarker):
		case line == marker || strings.HasPrefix(line, marker+" "):
			block.add(line)
		default:
			if !block.empty() {
				return summaryText(block.uncomment(marker))
			}
		}
	}
	if !block.empty() {
		return summaryText(block.uncomment(marker))
	}
	return ""
}

func summaryText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = accessTag.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\n", " ")
	if idx := strings.Index(text, ". "); idx >= 0 {
		return strings.TrimSpace(text[:idx+1])
	}
	return strings.TrimSpace(text)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func wantsDirectoryOutput(path string) bool {
	if path == "" || path == "-" {
		return false
	}
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir()
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false
	}
	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return true
	}
	return filepath.Ext(path) == ""
}

// docFileName maps a script path to its documentation file name: the base
// name with the extension swapped for .md or .txt.
func docFileName(source, format string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if format == formatMarkdown {
		return base + ".md"
	}
	return base + ".txt"
}

type tocEntry struct {
	title   string
	link    string
	summary string
}

func writeScriptDocsToDir(outDir string, docs []scriptDoc, format string) error {
	if outDir == "" {
		return errors.New("missing output directory")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	var entries []tocEntry
	for _, doc := range docs {
		name := docFileName(doc.source, format)
		if err := os.WriteFile(filepath.Join(outDir, name), doc.doc, 0o644); err != nil {
			return err
		}
		entries = append(entries, tocEntry{
			title:   filepath.Base(doc.source),
			link:    name,
			summary: strings.TrimSpace(doc.summary),
		})
	}
	if format != formatMarkdown {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].title < entries[j].title
	})
	toc := buildTOC(entries)
	if len(toc) == 0 {
		return nil
	}
	return os.WriteFile(filepath.Join(outDir, "README.md"), toc, 0o644)
}

func writeScriptDocsInPlace(docs []scriptDoc, format string) error {
	for _, doc := range docs {
		target := filepath.Join(filepath.Dir(doc.source), docFileName(doc.source, format))
		if err := os.WriteFile(target, doc.doc, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func buildTOC(entries []tocEntry) []byte {
	if len(entries) == 0 {
		return nil
	}
	var buf bytes.Buffer
	buf.WriteString("## Scripts\n\n")
	for _, entry := range entries {
		if entry.summary != "" {
			fmt.Fprintf(&buf, "- [%s](%s) — %s\n", entry.title, entry.link, entry.summary)
		} else {
			fmt.Fprintf(&buf, "- [%s](%s)\n", entry.title, entry.link)
		}
	}
	buf.WriteString("\n")
	return buf.Bytes()
}

var legacyLongFlagSet = map[string]struct{}{
	"markdown": {},
	"text":     {},
	"access":   {},
	"marker":   {},
	"output":   {},
	"inplace":  {},
	"watch":    {},
	"config":   {},
}

// normalizeLegacyArgs rewrites the original tool's single-dash long options
// (-markdown, -access LEVEL, ...) into the double-dash form pflag expects.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, arg)
			converted = append(converted, args[i+1:]...)
			if i != len(args)-1 {
				modified = true
			}
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || arg == "-" {
			converted = append(converted, arg)
			continue
		}
		if len(arg) == 2 {
			converted = append(converted, arg)
			continue
		}
		if idx := strings.Index(arg, "="); idx > 0 {
			name := arg[1:idx]
			if _, ok := legacyLongFlagSet[name]; ok {
				converted = append(converted, "--"+name+arg[idx:])
				modified = true
				continue
			}
		}
		name := arg[1:]
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified && len(converted) == len(args) {
		return args
	}
	return converted
}
