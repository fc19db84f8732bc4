package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"tsverify/internal/lsp"
)

const lsName = "tsv"

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run a parse-diagnostics-only language server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(1, nil)

			h := lsp.NewHandler()
			handler := protocol.Handler{
				Initialize:            h.Initialize,
				Initialized:           h.Initialized,
				Shutdown:              h.Shutdown,
				TextDocumentDidOpen:   h.TextDocumentDidOpen,
				TextDocumentDidChange: h.TextDocumentDidChange,
				TextDocumentDidClose:  h.TextDocumentDidClose,
			}

			s := server.NewServer(&handler, lsName, false)
			if err := s.RunStdio(); err != nil {
				os.Exit(70)
			}
			return nil
		},
	}
}
