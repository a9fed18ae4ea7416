package lsp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"minic/internal/ast"
	"minic/internal/parser"
)

var log = commonlog.GetLogger("minic.lsp")

// Semantic token types advertised in the legend; indexes are sent to the client.
var SemanticTokenTypes = []string{
	"type",
	"function",
	"variable",
	"parameter",
	"property",
	"keyword",
	"modifier",
	"number",
	"string",
	"comment",
	"operator",
	"macro",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
	"static",
}

// document is the cached state of one open file.
type document struct {
	text        string
	version     protocol.Integer
	unit        *ast.TranslationUnit
	diagnostics []parser.Diagnostic
}

// MinicHandler implements the LSP server handlers for minic sources.
// Documents are parsed from the text the client sends, never from disk.
type MinicHandler struct {
	mu             sync.RWMutex
	docs           map[protocol.DocumentUri]*document
	maxDiagnostics int
}

// NewMinicHandler creates and returns a new MinicHandler instance
func NewMinicHandler() *MinicHandler {
	return &MinicHandler{
		docs: make(map[protocol.DocumentUri]*document),
	}
}

// SetMaxDiagnostics caps the number of diagnostics published per document.
// Zero means unlimited.
func (h *MinicHandler) SetMaxDiagnostics(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.maxDiagnostics = n
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *MinicHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindIncremental),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			DocumentSymbolProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *MinicHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *MinicHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *MinicHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	log.Debugf("trace set to %s", params.Value)
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened text and publishes its diagnostics.
func (h *MinicHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	item := params.TextDocument
	log.Infof("opened %s", item.URI)

	diags := h.update(item.URI, item.Version, item.Text)
	h.publish(ctx, item.URI, diags)
	return nil
}

// TextDocumentDidChange applies the content changes in order, reparses and
// republishes diagnostics.
func (h *MinicHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s (version %d)", uri, params.TextDocument.Version)

	h.mu.RLock()
	cached, ok := h.docs[uri]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("document %s is not open", uri)
	}

	text := cached.text
	for _, change := range params.ContentChanges {
		var err error
		text, err = applyContentChange(text, change)
		if err != nil {
			return fmt.Errorf("failed to apply change to %s: %w", uri, err)
		}
	}

	diags := h.update(uri, params.TextDocument.Version, text)
	h.publish(ctx, uri, diags)
	return nil
}

// TextDocumentDidClose drops the cached document and clears its diagnostics.
func (h *MinicHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("closed %s", uri)

	h.mu.Lock()
	delete(h.docs, uri)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *MinicHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.lookup(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc.text, doc.unit)

	var data []uint32
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// TextDocumentDocumentSymbol lists the functions and global variables of a document.
func (h *MinicHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, err := h.lookup(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return documentSymbols(doc.unit), nil
}

// TextDocumentCompletion offers keywords plus the names visible at the cursor.
func (h *MinicHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, err := h.lookup(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(doc.unit, params.Position),
	}, nil
}

// Diagnostics returns the diagnostics of the cached document, if open.
func (h *MinicHandler) Diagnostics(uri protocol.DocumentUri) ([]parser.Diagnostic, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	doc, ok := h.docs[uri]
	if !ok {
		return nil, false
	}
	return doc.diagnostics, true
}

func (h *MinicHandler) lookup(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	doc, ok := h.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

// update reparses text, caches the result and returns the diagnostics to
// publish, capped at maxDiagnostics.
func (h *MinicHandler) update(uri protocol.DocumentUri, version protocol.Integer, text string) []parser.Diagnostic {
	unit, diags := parser.ParseSource(uriToFilename(uri), text)

	h.mu.Lock()
	h.docs[uri] = &document{
		text:        text,
		version:     version,
		unit:        unit,
		diagnostics: diags,
	}
	limit := h.maxDiagnostics
	h.mu.Unlock()

	if limit > 0 && len(diags) > limit {
		return diags[:limit]
	}
	return diags
}

func (h *MinicHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri, diags []parser.Diagnostic) {
	diagnostics := ConvertDiagnostics(diags)
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)
	sendDiagnosticNotification(ctx, uri, diagnostics)
}

// applyContentChange returns text with one change event applied. Events
// without a range replace the whole text.
func applyContentChange(text string, change any) (string, error) {
	switch c := change.(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return c.Text, nil
	case protocol.TextDocumentContentChangeEvent:
		if c.Range == nil {
			return c.Text, nil
		}
		start, end := c.Range.IndexesIn(text)
		if end < start {
			return "", fmt.Errorf("range end %d:%d precedes start %d:%d",
				c.Range.End.Line, c.Range.End.Character, c.Range.Start.Line, c.Range.Start.Character)
		}
		return text[:start] + c.Text + text[end:], nil
	default:
		return "", fmt.Errorf("unsupported content change %T", change)
	}
}

// uriToFilename strips the file scheme so positions carry a readable path.
func uriToFilename(uri protocol.DocumentUri) string {
	return strings.TrimPrefix(uri, "file://")
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrString(s string) *string {
	return &s
}
