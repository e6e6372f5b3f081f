package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anodelang/anode/internal/ast"
	"github.com/anodelang/anode/internal/diag"
	"github.com/anodelang/anode/internal/lexer"
	"github.com/anodelang/anode/internal/parser"
	"github.com/anodelang/anode/internal/printer"
	"github.com/anodelang/anode/internal/sema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// compile runs the full lex -> parse -> analyze pipeline over path's
// contents. The module name is the file's base name with its extension
// stripped. Parse diagnostics halt before semantic analysis runs, same as
// the first pass of Analyze halting on an error mid-pipeline.
func compile(path string) (*ast.Module, *diag.Stream, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	diags := diag.New()
	ids := &ast.IDGen{}
	l := lexer.New(path, string(src), diags)
	p := parser.New(l, diags, ids)
	moduleName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	module := p.ParseModule(moduleName)
	if diags.HasErrors() {
		return module, diags, nil
	}
	sema.Analyze(module, ids, diags)
	return module, diags, nil
}

func cmdCheck() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "lex, parse, and semantically analyze a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, diags, err := compile(args[0])
			if err != nil {
				logger.Error("check", "error", err)
				return err
			}
			if diags.HasErrors() {
				printDiagnostics(diags.Diagnostics())
				return fmt.Errorf("%d error(s)", diags.Len())
			}
			green := color.New(color.FgGreen)
			green.Println("ok")
			return nil
		},
	}
}

func cmdAST() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "print the analyzed AST of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, diags, err := compile(args[0])
			if err != nil {
				logger.Error("ast", "error", err)
				return err
			}
			if diags.HasErrors() {
				printDiagnostics(diags.Diagnostics())
				return fmt.Errorf("%d error(s)", diags.Len())
			}
			fmt.Print(printer.Print(module))
			return nil
		},
	}
}
