// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"minic/internal/config"
	"minic/internal/lsp"
)

const lsName = "minic" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("%s-lsp %s\n", lsName, version)
		return
	}

	wd, _ := os.Getwd()
	cfg, cfgPath, err := config.Resolve("", wd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		cfg = config.Default()
	}

	var logFile *string
	if cfg.LSP.LogFile != "" {
		path := os.ExpandEnv(cfg.LSP.LogFile)
		logFile = &path
	}
	commonlog.Configure(cfg.LSP.LogVerbosity, logFile)

	log := commonlog.GetLogger("minic.lsp.main")
	if cfgPath != "" {
		log.Infof("using config %s", cfgPath)
	}

	minicHandler := lsp.NewMinicHandler()
	minicHandler.SetMaxDiagnostics(cfg.Diagnostics.Max)

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     minicHandler.Initialize,
		Initialized:                    minicHandler.Initialized,
		Shutdown:                       minicHandler.Shutdown,
		SetTrace:                       minicHandler.SetTrace,
		TextDocumentDidOpen:            minicHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           minicHandler.TextDocumentDidClose,
		TextDocumentDidChange:          minicHandler.TextDocumentDidChange,
		TextDocumentCompletion:         minicHandler.TextDocumentCompletion,
		TextDocumentDocumentSymbol:     minicHandler.TextDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: minicHandler.TextDocumentSemanticTokensFull,
	}

	// debug=false keeps glsp's own request tracing out of the log
	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
