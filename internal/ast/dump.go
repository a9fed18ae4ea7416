package ast

import (
	"fmt"
	"strconv"
)

// DumpNode is a serialization-friendly view of a node: its kind, start
// position, the one scalar that identifies it, and its children.
type DumpNode struct {
	Kind     string      `yaml:"kind" json:"kind"`
	Pos      string      `yaml:"pos" json:"pos"`
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Op       string      `yaml:"op,omitempty" json:"op,omitempty"`
	Value    string      `yaml:"value,omitempty" json:"value,omitempty"`
	Children []*DumpNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// Dump converts the tree rooted at n.
func Dump(n Node) *DumpNode {
	pos := n.NodePos()
	d := &DumpNode{
		Kind: n.NodeType().String(),
		Pos:  fmt.Sprintf("%d:%d", pos.Line, pos.Column),
	}

	switch x := n.(type) {
	case *Directive:
		d.Name = x.Kind.String()
		d.Value = x.Text
	case *Ident:
		d.Name = x.Value
	case *TypeSpec:
		d.Value = x.String()
	case *VarDecl:
		d.Name = x.Name.Value
	case *FuncDecl:
		d.Name = x.Name.Value
	case *FuncDef:
		d.Name = x.Name.Value
	case *Param:
		if x.Name != nil {
			d.Name = x.Name.Value
		}
	case *AssignExpr:
		d.Op = x.Op.String()
	case *BinaryExpr:
		d.Op = x.Op
	case *UnaryExpr:
		d.Op = x.Op
	case *IncDecExpr:
		d.Op = x.Op
	case *MemberExpr:
		d.Op = "."
		if x.Arrow {
			d.Op = "->"
		}
	case *IdentExpr:
		d.Name = x.Name
	case *IntLit:
		d.Value = x.Raw
	case *FloatLit:
		d.Value = x.Raw
	case *StringLit:
		d.Value = x.Raw
	case *BoolLit:
		d.Value = strconv.FormatBool(x.Value)
	case *BadExpr:
		d.Value = x.Message
	}

	for _, c := range Children(n) {
		d.Children = append(d.Children, Dump(c))
	}
	return d
}
