package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
tomdoc extracts TomDoc documentation comments from shell scripts and renders
them as plain text or Markdown. A comment block directly above a function or
variable declaration documents that declaration; everything else is ignored.

  • Plain-text reports by default, structured Markdown with --markdown
  • --access filters blocks by their "Public:"/"Internal:" first-line tag
  • -o writes a file, or — when it points at a directory — one document per
    script plus a README.md table of contents
  • --inplace drops each script's documentation next to the script itself
  • --watch keeps the output up to date as the scripts change
  • Project defaults come from .tomdoc.yaml and TOMDOC_* environment variables

The original tool's single-dash long options (-markdown, -access LEVEL, ...)
keep working. With no script arguments, input is read from stdin.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdin: os.Stdin, stdout: stdout}
	cmd := &cobra.Command{
		Use:           "tomdoc [flags] [script ...]",
		Short:         "Render TomDoc shell documentation as text or Markdown",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.BoolVarP(&app.opts.markdown, "markdown", "m", false, "produce Markdown output")
	flags.BoolVarP(&app.opts.text, "text", "t", false, "produce plain text output (default)")
	flags.StringVarP(&app.opts.access, "access", "a", "", "only emit blocks whose first line carries this access tag")
	flags.StringVar(&app.opts.marker, "marker", "", `comment marker prefix (default "#")`)
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write output to file instead of stdout; a directory gets one document per script")
	flags.BoolVar(&app.opts.inplace, "inplace", false, "write each script's documentation next to the script (overwrites existing files)")
	flags.BoolVarP(&app.opts.watch, "watch", "w", false, "re-render whenever an input script changes (requires -o or --inplace)")
	flags.StringVar(&app.opts.configPath, "config", "", `config file (default ".tomdoc.yaml" when present)`)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for tomdoc.

The output should be evaluated by your shell. For example:

  # bash
  tomdoc completion bash > /usr/local/etc/bash_completion.d/tomdoc

  # zsh
  tomdoc completion zsh > "${fpath[1]}/_tomdoc"

  # fish
  tomdoc completion fish | source

  # PowerShell
  tomdoc completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  tomdoc gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
