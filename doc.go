// # tomdoc
//
// `tomdoc` is a documentation generator for shell scripts. It reads scripts
// written with TomDoc-style comments — a `#` comment block directly above a
// function or variable declaration — and renders each documented declaration
// as plain text or Markdown.
//
// Key capabilities:
//
//   - recognize the common declaration shapes: `name()`, `function name`,
//     `NAME=...`, `export NAME=...`, `declare`/`typeset` with flags,
//     `readonly NAME=...` (shown as `const NAME=...`), and the
//     `: ${NAME:=default}` idiom.
//   - render a plain-text report (default) or structured Markdown (`-m`)
//     with per-declaration headings, `* ` bullets for "ARG - description"
//     option lines, sub-bullets, and indented example blocks.
//   - filter by access tag via `-a LEVEL`: only blocks whose first line is
//     `# LEVEL: ...` are emitted.
//   - write to stdout (default) or any file path via `-o`.
//   - point `-o` at a directory to get one document per script plus a
//     `README.md` table of contents, or use `--inplace` to keep each
//     script's documentation next to the script.
//   - keep outputs current with `--watch`.
//   - pick up project defaults from `.tomdoc.yaml` and `TOMDOC_FORMAT` /
//     `TOMDOC_ACCESS` environment variables.
//   - ship a Cobra-powered CLI with rich `--help`, `--version`, shell
//     completion, and a `gen-docs` helper for publishing the CLI reference.
//
// ## Usage
//
//	tomdoc [flags] [script ...]
//
// Examples:
//
//   - Render a library to stdout as Markdown:
//
//     tomdoc -m lib/string.sh
//
//   - Document only the public interface:
//
//     tomdoc -m -a Public lib/string.sh
//
//   - Export docs for every library into a docs folder:
//
//     tomdoc -m -o ./docs lib/*.sh
//
//   - Keep the docs folder current while editing:
//
//     tomdoc -m -w -o ./docs lib/*.sh
//
// ## Documentation convention
//
// A comment block documents the declaration on the line that follows it:
//
//	# Public: Join arguments with a separator.
//	#
//	# $1 - the separator
//	# $2 - the values, one per argument
//	#
//	# Examples
//	#
//	#   join , a b c
//	#
//	# Returns nothing.
//	join() {
//	    ...
//	}
//
// Blocks with no following declaration, and blocks rejected by the access
// filter, are silently dropped. `# shellcheck` directives inside a block are
// ignored.
//
// ## Supported Flags
//
//   - `-t`, `--text`: plain-text output (the default).
//   - `-m`, `--markdown`: Markdown output.
//   - `-a LEVEL`, `--access LEVEL`: only emit blocks tagged `LEVEL:`.
//   - `--marker STRING`: comment marker (default `#`).
//   - `-o PATH`, `--output PATH`: write to `PATH` (stdout when omitted); a
//     directory switches to one-document-per-script mode.
//   - `--inplace`: write each script's documentation beside the script.
//   - `-w`, `--watch`: re-render whenever an input changes.
//   - `--config PATH`: explicit config file.
//
// The original tool's single-dash long options (`-markdown`, `-access`, ...)
// are accepted and normalized.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	tomdoc completion bash        # bash
//	tomdoc completion zsh         # zsh
//	tomdoc completion fish | source
//	tomdoc completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `tomdoc` can generate Markdown for each CLI command via `gen-docs`:
//
//	tomdoc gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
