package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (tu *TranslationUnit) String() string {
	var b strings.Builder

	for _, d := range tu.Directives {
		b.WriteString(d.String())
		b.WriteString("\n")
	}
	if len(tu.Directives) > 0 && len(tu.Decls) > 0 {
		b.WriteString("\n")
	}

	for i, decl := range tu.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(decl.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (d *Directive) String() string {
	if d.Text != "" {
		return d.Text
	}
	switch d.Kind {
	case DIRECTIVE_INCLUDE:
		if d.System {
			return fmt.Sprintf("#include <%s>", d.Path)
		}
		return fmt.Sprintf("#include %q", d.Path)
	case DIRECTIVE_DEFINE:
		if d.Value == "" {
			return "#define " + d.Name
		}
		return fmt.Sprintf("#define %s %s", d.Name, d.Value)
	case DIRECTIVE_ELSE, DIRECTIVE_ENDIF:
		return "#" + d.Kind.String()
	default:
		return fmt.Sprintf("#%s %s", d.Kind, d.Name)
	}
}

func (i *Ident) String() string {
	return i.Value
}

func (t *TypeSpec) String() string {
	var b strings.Builder
	if t.Static {
		b.WriteString("static ")
	}
	if t.Const {
		b.WriteString("const ")
	}
	b.WriteString(t.Name)
	b.WriteString(strings.Repeat("*", t.Pointer))
	return b.String()
}

func (p *Param) String() string {
	if p.Name == nil {
		return p.Type.String()
	}
	return fmt.Sprintf("%s %s", p.Type.String(), p.Name.Value)
}

func (v *VarDecl) String() string {
	var b strings.Builder
	b.WriteString(v.Type.String())
	b.WriteString(" ")
	b.WriteString(v.Name.Value)
	if v.ArraySize != nil {
		b.WriteString("[")
		b.WriteString(v.ArraySize.String())
		b.WriteString("]")
	}
	if v.Init != nil {
		b.WriteString(" = ")
		b.WriteString(v.Init.String())
	}
	b.WriteString(";")
	return b.String()
}

func writeSignature(b *strings.Builder, ret *TypeSpec, name string, params []*Param) {
	b.WriteString(ret.String())
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString("(")
	for i, param := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(")")
}

func (f *FuncDecl) String() string {
	var b strings.Builder
	writeSignature(&b, f.Return, f.Name.Value, f.Params)
	b.WriteString(";")
	return b.String()
}

func (f *FuncDef) String() string {
	var b strings.Builder
	writeSignature(&b, f.Return, f.Name.Value, f.Params)
	b.WriteString(" ")
	b.WriteString(f.Body.String())
	return b.String()
}

func (b *BlockStmt) String() string {
	if len(b.Stmts) == 0 {
		return "{}"
	}
	var out strings.Builder
	out.WriteString("{\n")
	for _, stmt := range b.Stmts {
		out.WriteString("  ")
		out.WriteString(strings.ReplaceAll(stmt.String(), "\n", "\n  "))
		out.WriteByte('\n')
	}
	out.WriteString("}")
	return out.String()
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value.String())
}

func (i *IfStmt) String() string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("if (%s) %s", i.Cond.String(), i.Then.String()))
	if i.Else != nil {
		result.WriteString(" else ")
		result.WriteString(i.Else.String())
	}
	return result.String()
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", w.Cond.String(), w.Body.String())
}

func (f *ForStmt) String() string {
	var b strings.Builder
	b.WriteString("for (")
	if f.Init != nil {
		b.WriteString(f.Init.String())
	} else {
		b.WriteString(";")
	}
	if f.Cond != nil {
		b.WriteString(" ")
		b.WriteString(f.Cond.String())
	}
	b.WriteString(";")
	if f.Update != nil {
		b.WriteString(" ")
		b.WriteString(f.Update.String())
	}
	b.WriteString(") ")
	b.WriteString(f.Body.String())
	return b.String()
}

func (*BreakStmt) String() string {
	return "break;"
}

func (a *AssignExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Target.String(), a.Op, a.Value.String())
}

func (c *ConditionalExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Cond.String(), c.Then.String(), c.Else.String())
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Operand.String())
}

func (c *CallExpr) String() string {
	var b strings.Builder

	b.WriteString(c.Callee.String())
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (i *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", i.Base.String(), i.Index.String())
}

func (m *MemberExpr) String() string {
	if m.Arrow {
		return fmt.Sprintf("%s->%s", m.Base.String(), m.Name.Value)
	}
	return fmt.Sprintf("%s.%s", m.Base.String(), m.Name.Value)
}

func (i *IncDecExpr) String() string {
	return i.Operand.String() + i.Op
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (l *IntLit) String() string {
	if l.Raw != "" {
		return l.Raw
	}
	return strconv.FormatInt(l.Value, 10)
}

func (l *FloatLit) String() string {
	if l.Raw != "" {
		return l.Raw
	}
	return strconv.FormatFloat(l.Value, 'g', -1, 64)
}

func (l *StringLit) String() string {
	if l.Raw != "" {
		return l.Raw
	}
	return strconv.Quote(l.Value)
}

func (l *BoolLit) String() string {
	return strconv.FormatBool(l.Value)
}

func (p *ParenExpr) String() string {
	return fmt.Sprintf("(%s)", p.Inner.String())
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", be.Message)
}
