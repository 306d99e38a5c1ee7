package cmd

import (
	"fmt"

	"github.com/ecmaflow/jsflow/internal/lexer"
	"github.com/ecmaflow/jsflow/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexShowPos    bool
	lexShowKind   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize ECMAScript source and print the raw token stream",
	Long: `Tokenize (lex) an ECMAScript program and print the resulting tokens
before any parser-level keyword/symbol/label promotion.

Examples:
  # Tokenize a script file
  jsflow lex script.js

  # Tokenize an inline expression
  jsflow lex -e "const x = 42;"

  # Show token kinds and positions
  jsflow lex --show-kind --show-pos script.js

  # Show only lexical errors
  jsflow lex --only-errors script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token byte positions and line")
	lexCmd.Flags().BoolVar(&lexShowKind, "show-kind", false, "show token kind names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only lexical errors, not tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n---\n", len(input))
	}

	lx := lexer.New(input)
	count := 0
	for {
		tok := lx.Current()
		if !lexOnlyErrors {
			printLexToken(tok, input)
		}
		count++
		if tok.Kind == token.EOF {
			break
		}
		lx.Next()
	}

	for _, e := range lx.Errors() {
		pos := e.Position(input)
		fmt.Printf("error: %s at %d:%d\n", e.Message, pos.Line, pos.Column)
	}

	if verbose {
		fmt.Printf("---\nTotal tokens: %d\n", count)
	}
	if lexOnlyErrors && len(lx.Errors()) > 0 {
		return fmt.Errorf("found %d lexical error(s)", len(lx.Errors()))
	}
	return nil
}

func printLexToken(tok token.Token, src string) {
	var out string
	if lexShowKind {
		out = fmt.Sprintf("[%-10s]", tok.Kind)
	}
	if tok.Kind == token.EOF {
		out += " EOF"
	} else if text := tok.Text(src); text != "" {
		out += fmt.Sprintf(" %q", text)
	} else {
		out += fmt.Sprintf(" %s", tok.Kind)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d+%d", tok.Line, tok.Start, tok.Length)
	}
	fmt.Println(out)
}
