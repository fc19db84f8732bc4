package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsverify/internal/parser"
	"tsverify/internal/printer"
)

func newFmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a TinyScript program in canonical form (idempotent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			prog, err := parser.ParseFile(path)
			if err != nil {
				return dataError(err)
			}
			out := printer.Program(prog) + "\n"
			if !write {
				fmt.Print(out)
				return nil
			}
			return dataError(os.WriteFile(path, []byte(out), 0o644))
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing to stdout")
	return cmd
}
