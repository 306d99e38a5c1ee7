package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var evalExpr string

var rootCmd = &cobra.Command{
	Use:   "jsflow",
	Short: "Streaming ECMAScript lexer-parser",
	Long: `jsflow drives a single-pass ECMAScript lexer-parser that emits a flat
token stream plus nested scope-open/close events — no AST is built.

It is a tool for inspecting and exercising the tokenizer and parser
directly, not a JavaScript engine: there is no evaluation, no type
checking, no code generation.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, rerr := os.ReadFile(args[0])
		if rerr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], rerr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
