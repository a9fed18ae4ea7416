package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (tu *TranslationUnit) NodePos() Position    { return tu.Pos }
func (tu *TranslationUnit) NodeEndPos() Position { return tu.EndPos }
func (*TranslationUnit) NodeType() NodeType      { return TRANSLATION_UNIT }

func (d *Directive) NodePos() Position    { return d.Pos }
func (d *Directive) NodeEndPos() Position { return d.EndPos }
func (*Directive) NodeType() NodeType     { return DIRECTIVE }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (t *TypeSpec) NodePos() Position    { return t.Pos }
func (t *TypeSpec) NodeEndPos() Position { return t.EndPos }
func (*TypeSpec) NodeType() NodeType     { return TYPE_SPEC }

func (p *Param) NodePos() Position    { return p.Pos }
func (p *Param) NodeEndPos() Position { return p.EndPos }
func (*Param) NodeType() NodeType     { return PARAM }

func (v *VarDecl) NodePos() Position    { return v.Pos }
func (v *VarDecl) NodeEndPos() Position { return v.EndPos }
func (*VarDecl) NodeType() NodeType     { return VAR_DECL }

func (f *FuncDecl) NodePos() Position    { return f.Pos }
func (f *FuncDecl) NodeEndPos() Position { return f.EndPos }
func (*FuncDecl) NodeType() NodeType     { return FUNC_DECL }

func (f *FuncDef) NodePos() Position    { return f.Pos }
func (f *FuncDef) NodeEndPos() Position { return f.EndPos }
func (*FuncDef) NodeType() NodeType     { return FUNC_DEF }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (w *WhileStmt) NodePos() Position    { return w.Pos }
func (w *WhileStmt) NodeEndPos() Position { return w.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (f *ForStmt) NodePos() Position    { return f.Pos }
func (f *ForStmt) NodeEndPos() Position { return f.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (b *BreakStmt) NodePos() Position    { return b.Pos }
func (b *BreakStmt) NodeEndPos() Position { return b.EndPos }
func (*BreakStmt) NodeType() NodeType     { return BREAK_STMT }

func (b *BlockStmt) NodePos() Position    { return b.Pos }
func (b *BlockStmt) NodeEndPos() Position { return b.EndPos }
func (*BlockStmt) NodeType() NodeType     { return BLOCK_STMT }

func (a *AssignExpr) NodePos() Position    { return a.Pos }
func (a *AssignExpr) NodeEndPos() Position { return a.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (c *ConditionalExpr) NodePos() Position    { return c.Pos }
func (c *ConditionalExpr) NodeEndPos() Position { return c.EndPos }
func (*ConditionalExpr) NodeType() NodeType     { return CONDITIONAL_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (i *IndexExpr) NodePos() Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() Position { return i.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (m *MemberExpr) NodePos() Position    { return m.Pos }
func (m *MemberExpr) NodeEndPos() Position { return m.EndPos }
func (*MemberExpr) NodeType() NodeType     { return MEMBER_EXPR }

func (i *IncDecExpr) NodePos() Position    { return i.Pos }
func (i *IncDecExpr) NodeEndPos() Position { return i.EndPos }
func (*IncDecExpr) NodeType() NodeType     { return INC_DEC_EXPR }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (l *IntLit) NodePos() Position    { return l.Pos }
func (l *IntLit) NodeEndPos() Position { return l.EndPos }
func (*IntLit) NodeType() NodeType     { return INT_LIT }

func (l *FloatLit) NodePos() Position    { return l.Pos }
func (l *FloatLit) NodeEndPos() Position { return l.EndPos }
func (*FloatLit) NodeType() NodeType     { return FLOAT_LIT }

func (l *StringLit) NodePos() Position    { return l.Pos }
func (l *StringLit) NodeEndPos() Position { return l.EndPos }
func (*StringLit) NodeType() NodeType     { return STRING_LIT }

func (l *BoolLit) NodePos() Position    { return l.Pos }
func (l *BoolLit) NodeEndPos() Position { return l.EndPos }
func (*BoolLit) NodeType() NodeType     { return BOOL_LIT }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

func (be *BadExpr) NodePos() Position    { return be.Pos }
func (be *BadExpr) NodeEndPos() Position { return be.EndPos }
func (*BadExpr) NodeType() NodeType      { return BAD_EXPR }
