package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsverify/internal/parser"
	"tsverify/internal/printer"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a TinyScript program and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := parser.ParseFile(args[0])
			if err != nil {
				return dataError(err)
			}
			fmt.Println(printer.Program(prog))
			color.Green("parsed %s", args[0])
			return nil
		},
	}
}
