package lower

import (
	"github.com/Nadezhda94/SimpleJava/ast"
	"github.com/Nadezhda94/SimpleJava/depm"
	"github.com/Nadezhda94/SimpleJava/ir"
	"github.com/Nadezhda94/SimpleJava/report"
	"github.com/Nadezhda94/SimpleJava/util"
)

// astBinops maps arithmetic AST operator kinds to IR binary operators.
var astBinops = map[int]int{
	ast.OpAdd: ir.OpPlus,
	ast.OpSub: ir.OpMinus,
	ast.OpMul: ir.OpMul,
	ast.OpDiv: ir.OpDiv,
}

// lowerExpr lowers an expression to a wrapper.  Most expressions lower to
// value wrappers; `&&`, `||`, `<`, and `!` lower to conditional wrappers so
// that a control-flow parent branches on them directly while a value parent
// materializes a 0/1 result.
func (l *Lowerer) lowerExpr(expr ast.Expr) wrapper {
	switch v := expr.(type) {
	case *ast.IntLit:
		return &expWrapper{exp: &ir.Const{Value: v.Value}}
	case *ast.BoolLit:
		value := int32(0)
		if v.Value {
			value = 1
		}
		return &expWrapper{exp: &ir.Const{Value: value}}
	case *ast.This:
		l.typeForInvoke = l.currentClass.Name.Name
		return &expWrapper{exp: l.frame.ThisExpr()}
	case *ast.Ident:
		return l.lowerIdent(v)
	case *ast.Paren:
		return l.lowerExpr(v.Inner)
	case *ast.UnaryMinus:
		return &expWrapper{exp: &ir.Binop{
			Op:    ir.OpMinus,
			Left:  &ir.Const{Value: 0},
			Right: l.lowerExpr(v.Operand).ToExp(),
		}}
	case *ast.Not:
		return &condWrapper{pool: l.pool, em: &relCmp{
			rel:   ir.RelEq,
			left:  l.lowerExpr(v.Operand).ToExp(),
			right: &ir.Const{Value: 0},
		}}
	case *ast.BinaryOp:
		return l.lowerBinaryOp(v)
	case *ast.Length:
		return &expWrapper{exp: &ir.Mem{Addr: l.lowerExpr(v.Target).ToExp()}}
	case *ast.NewArray:
		return l.lowerNewArray(v)
	case *ast.NewObject:
		return l.lowerNewObject(v)
	case *ast.Invoke:
		return l.lowerInvoke(v)
	default:
		report.ReportICE("lowering for expression not implemented")
		return nil
	}
}

// lowerIdent lowers a reference to a named formal, local, or field.  When the
// name's declared type is a class, it becomes the static receiver class of a
// following invocation.
func (l *Lowerer) lowerIdent(v *ast.Ident) wrapper {
	sym := l.storage.Get(v.Name)

	if vi, ok := l.table.LookupVar(l.currentClass, l.currentMethod, sym); ok && vi.Type.Kind == depm.TypeClass {
		l.typeForInvoke = vi.Type.ClassName
	}

	return &expWrapper{exp: l.frame.Find(sym)}
}

// lowerBinaryOp lowers a binary operator application.  `&&` and `||` keep
// short-circuit evaluation through conditional wrappers; `<` lowers through a
// relational comparison; the arithmetic operators lower directly to BINOP.
func (l *Lowerer) lowerBinaryOp(v *ast.BinaryOp) wrapper {
	lhs := l.lowerExpr(v.Lhs).ToExp()
	rhs := l.lowerExpr(v.Rhs).ToExp()

	switch v.Op {
	case ast.OpAnd:
		return &condWrapper{pool: l.pool, em: &andCond{pool: l.pool, left: lhs, right: rhs}}
	case ast.OpOr:
		return &condWrapper{pool: l.pool, em: &orCond{pool: l.pool, left: lhs, right: rhs}}
	case ast.OpLess:
		return &condWrapper{pool: l.pool, em: &relCmp{rel: ir.RelLt, left: lhs, right: rhs}}
	default:
		return &expWrapper{exp: &ir.Binop{Op: astBinops[v.Op], Left: lhs, Right: rhs}}
	}
}

// lowerNewArray lowers an integer array allocation.  One word is added to the
// element count for the header, the byte count is handed to the external
// allocator, and the length is stored in the header word at offset 0.
func (l *Lowerer) lowerNewArray(v *ast.NewArray) wrapper {
	size := l.lowerExpr(v.Size).ToExp()

	arrSize := l.pool.NewTemp()
	base := l.pool.NewTemp()

	storeSize := ir.NewMove(
		&ir.TempExpr{Temp: arrSize},
		&ir.Binop{Op: ir.OpPlus, Left: size, Right: &ir.Const{Value: 1}},
	)

	bytes := &ir.Binop{
		Op:    ir.OpMul,
		Left:  &ir.TempExpr{Temp: arrSize},
		Right: &ir.Const{Value: int32(l.wordSize)},
	}
	storeBase := ir.NewMove(
		&ir.TempExpr{Temp: base},
		l.frame.ExternalCall("malloc", []ir.Exp{bytes}),
	)

	storeLength := ir.NewMove(
		&ir.Mem{Addr: &ir.TempExpr{Temp: base}},
		&ir.TempExpr{Temp: arrSize},
	)

	return &expWrapper{exp: &ir.Eseq{
		Stm: &ir.Seq{
			First:  storeSize,
			Second: &ir.Seq{First: storeBase, Second: storeLength},
		},
		Exp: &ir.TempExpr{Temp: base},
	}}
}

// lowerNewObject lowers an object allocation.  The object carries one word per
// linearized field; a fieldless object still occupies one word.
func (l *Lowerer) lowerNewObject(v *ast.NewObject) wrapper {
	ci := l.table.ClassInfo(l.storage.Get(v.ClassName))

	sizeInBytes := l.wordSize * len(l.table.LinearFields(ci))
	if sizeInBytes < l.wordSize {
		sizeInBytes = l.wordSize
	}

	base := l.pool.NewTemp()
	storeBase := ir.NewMove(
		&ir.TempExpr{Temp: base},
		l.frame.ExternalCall("malloc", []ir.Exp{&ir.Const{Value: int32(sizeInBytes)}}),
	)

	l.typeForInvoke = v.ClassName

	return &expWrapper{exp: &ir.Eseq{
		Stm: storeBase,
		Exp: &ir.TempExpr{Temp: base},
	}}
}

// lowerInvoke lowers a method invocation.  The receiver becomes the implicit
// first argument and the callee label is resolved against the receiver's
// static class; the method's return class becomes the receiver class of a
// chained invocation.
func (l *Lowerer) lowerInvoke(v *ast.Invoke) wrapper {
	recv := l.lowerExpr(v.Recv).ToExp()
	recvClass := l.typeForInvoke

	args := append(ir.ExpList{recv}, util.Map(v.Args, func(arg ast.Expr) ir.Exp {
		return l.lowerExpr(arg).ToExp()
	})...)

	ci := l.table.ClassInfo(l.storage.Get(recvClass))
	declClass, mi, ok := l.findMethod(ci, l.storage.Get(v.Method))
	if !ok {
		report.Raise(report.ErrKindClass, v.Span(),
			"class `%s` declares no method `%s`", recvClass, v.Method)
	}

	if mi.RetType.Kind == depm.TypeClass {
		l.typeForInvoke = mi.RetType.ClassName
	} else {
		l.typeForInvoke = ""
	}

	label := l.methodLabels[declClass.Name.Name+"@"+v.Method]
	return &expWrapper{exp: &ir.Call{
		Func: &ir.Name{Label: label},
		Args: args,
	}}
}
