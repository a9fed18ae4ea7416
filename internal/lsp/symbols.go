package lsp

import (
	"maps"
	"slices"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"minic/internal/ast"
	"minic/internal/parser"
)

// documentSymbols lists functions and global variables in declaration order.
// Function definitions carry their body's local variables as children.
func documentSymbols(unit *ast.TranslationUnit) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	if unit == nil {
		return symbols
	}

	for _, decl := range unit.Decls {
		switch d := decl.(type) {
		case *ast.VarDecl:
			symbols = append(symbols, varSymbol(d))
		case *ast.FuncDecl:
			symbols = append(symbols, protocol.DocumentSymbol{
				Name:           d.Name.Value,
				Detail:         ptrString(signature(d.Return, d.Params)),
				Kind:           protocol.SymbolKindFunction,
				Range:          toRange(d.Pos, d.EndPos),
				SelectionRange: toRange(d.Name.Pos, d.Name.EndPos),
			})
		case *ast.FuncDef:
			fn := protocol.DocumentSymbol{
				Name:           d.Name.Value,
				Detail:         ptrString(signature(d.Return, d.Params)),
				Kind:           protocol.SymbolKindFunction,
				Range:          toRange(d.Pos, d.EndPos),
				SelectionRange: toRange(d.Name.Pos, d.Name.EndPos),
			}
			for _, local := range localDecls(d, nil) {
				fn.Children = append(fn.Children, varSymbol(local))
			}
			symbols = append(symbols, fn)
		}
	}
	return symbols
}

func varSymbol(d *ast.VarDecl) protocol.DocumentSymbol {
	kind := protocol.SymbolKindVariable
	if d.Type != nil && d.Type.Const {
		kind = protocol.SymbolKindConstant
	}
	return protocol.DocumentSymbol{
		Name:           d.Name.Value,
		Detail:         ptrString(d.Type.String()),
		Kind:           kind,
		Range:          toRange(d.Pos, d.EndPos),
		SelectionRange: toRange(d.Name.Pos, d.Name.EndPos),
	}
}

// completionItems offers every keyword, each top-level name once, and the
// parameters and locals of the function enclosing pos that are declared
// before it.
func completionItems(unit *ast.TranslationUnit, pos protocol.Position) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	seen := make(map[string]bool)
	add := func(label string, kind protocol.CompletionItemKind, detail string) {
		if label == "" || seen[label] {
			return
		}
		seen[label] = true
		item := protocol.CompletionItem{Label: label, Kind: &kind}
		if detail != "" {
			item.Detail = ptrString(detail)
		}
		items = append(items, item)
	}

	if unit != nil {
		if fn := enclosingFunction(unit, pos); fn != nil {
			for _, p := range fn.Params {
				if p.Name != nil {
					add(p.Name.Value, protocol.CompletionItemKindVariable, p.Type.String())
				}
			}
			for _, local := range localDecls(fn, &pos) {
				add(local.Name.Value, protocol.CompletionItemKindVariable, local.Type.String())
			}
		}

		for _, decl := range unit.Decls {
			switch d := decl.(type) {
			case *ast.VarDecl:
				add(d.Name.Value, protocol.CompletionItemKindVariable, d.Type.String())
			case *ast.FuncDecl:
				add(d.Name.Value, protocol.CompletionItemKindFunction, signature(d.Return, d.Params))
			case *ast.FuncDef:
				add(d.Name.Value, protocol.CompletionItemKindFunction, signature(d.Return, d.Params))
			}
		}
	}

	for _, kw := range slices.Sorted(maps.Keys(parser.KEYWORDS)) {
		add(kw, protocol.CompletionItemKindKeyword, "")
	}
	return items
}

// enclosingFunction returns the definition whose body contains pos.
func enclosingFunction(unit *ast.TranslationUnit, pos protocol.Position) *ast.FuncDef {
	for _, decl := range unit.Decls {
		fn, ok := decl.(*ast.FuncDef)
		if !ok || fn.Body == nil {
			continue
		}
		r := toRange(fn.Body.Pos, fn.Body.EndPos)
		if !before(pos, r.Start) && !before(r.End, pos) {
			return fn
		}
	}
	return nil
}

// localDecls collects the variable declarations in fn's body, limited to
// those starting before limit when it is set.
func localDecls(fn *ast.FuncDef, limit *protocol.Position) []*ast.VarDecl {
	var out []*ast.VarDecl
	if fn.Body == nil {
		return out
	}
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		if d, ok := n.(*ast.VarDecl); ok {
			if limit == nil || before(toPosition(d.Pos), *limit) {
				out = append(out, d)
			}
		}
		return true
	})
	return out
}

func signature(ret *ast.TypeSpec, params []*ast.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.String())
	}
	return ret.String() + " (" + strings.Join(parts, ", ") + ")"
}

func before(a, b protocol.Position) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Character < b.Character)
}

func toPosition(p ast.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(p.Line-1, 0)),
		Character: uint32(max(p.Column-1, 0)),
	}
}

func toRange(start, end ast.Position) protocol.Range {
	return protocol.Range{Start: toPosition(start), End: toPosition(end)}
}
