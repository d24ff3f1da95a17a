package lower

import (
	"github.com/Nadezhda94/SimpleJava/ast"
	"github.com/Nadezhda94/SimpleJava/ir"
	"github.com/Nadezhda94/SimpleJava/report"
)

// lowerStmt lowers a statement to a statement wrapper.
func (l *Lowerer) lowerStmt(stmt ast.Stmt) wrapper {
	switch v := stmt.(type) {
	case *ast.Block:
		return &stmWrapper{stm: l.lowerBody(v.Stmts)}
	case *ast.If:
		return l.lowerIf(v)
	case *ast.While:
		return l.lowerWhile(v)
	case *ast.Print:
		call := l.frame.ExternalCall("print", []ir.Exp{l.lowerExpr(v.Value).ToExp()})
		return &stmWrapper{stm: &ir.ExpStm{Exp: call}}
	case *ast.Assign:
		dst := l.frame.Find(l.storage.Get(v.Name))
		return &stmWrapper{stm: ir.NewMove(dst, l.lowerExpr(v.Value).ToExp())}
	default:
		report.ReportICE("lowering for statement not implemented")
		return nil
	}
}

// lowerIf lowers a conditional statement.  The then-arm jumps over the
// else-arm to the end label; a missing else-arm is an empty statement.
func (l *Lowerer) lowerIf(v *ast.If) wrapper {
	t := l.pool.NewLabel()
	f := l.pool.NewLabel()
	end := l.pool.NewLabel()

	cond := l.lowerExpr(v.Cond).ToCond(t, f)

	thenStm := l.lowerStmt(v.Then).ToStm()
	thenArm := &ir.Seq{
		First:  &ir.Seq{First: &ir.LabelStm{Label: t}, Second: thenStm},
		Second: &ir.Jump{Target: end},
	}

	var elseStm ir.Stm
	if v.Else != nil {
		elseStm = l.lowerStmt(v.Else).ToStm()
	} else {
		elseStm = &ir.ExpStm{Exp: &ir.Const{Value: 0}}
	}
	elseArm := &ir.Seq{
		First:  &ir.Seq{First: &ir.LabelStm{Label: f}, Second: elseStm},
		Second: &ir.LabelStm{Label: end},
	}

	return &stmWrapper{stm: &ir.Seq{
		First:  cond,
		Second: &ir.Seq{First: thenArm, Second: elseArm},
	}}
}

// lowerWhile lowers a loop statement.  The loop test is emitted twice so that
// there is no back-edge label; the condition is lowered independently for each
// emission so no IR subtree appears in two positions.
func (l *Lowerer) lowerWhile(v *ast.While) wrapper {
	t := l.pool.NewLabel()
	f := l.pool.NewLabel()

	entryTest := l.lowerExpr(v.Cond).ToCond(t, f)
	body := l.lowerStmt(v.Body).ToStm()
	backTest := l.lowerExpr(v.Cond).ToCond(t, f)

	return &stmWrapper{stm: &ir.Seq{
		First: &ir.Seq{First: entryTest, Second: &ir.LabelStm{Label: t}},
		Second: &ir.Seq{
			First:  body,
			Second: &ir.Seq{First: backTest, Second: &ir.LabelStm{Label: f}},
		},
	}}
}
