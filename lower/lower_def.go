package lower

import (
	"github.com/Nadezhda94/SimpleJava/ast"
	"github.com/Nadezhda94/SimpleJava/depm"
	"github.com/Nadezhda94/SimpleJava/frame"
	"github.com/Nadezhda94/SimpleJava/ir"
	"github.com/Nadezhda94/SimpleJava/report"
)

// lowerMain lowers the body of the main class's `main` method.  Its tree is
// just the body statement: `main` has no return expression.
func (l *Lowerer) lowerMain(mc *ast.MainClass) {
	defer report.CatchErrors(mc.Name, "main")

	l.currentClass = l.table.ClassInfo(l.storage.Get(mc.Name))

	mainSym := l.storage.Get("main")
	if mi, ok := l.currentClass.MethodInfo(mainSym); ok {
		l.currentMethod = mi
	} else {
		l.currentMethod = &depm.MethodInfo{Name: mainSym}
	}

	l.newFrame(l.pool.NamedLabel(mc.Name + "@main"))

	if mc.Stmt == nil {
		l.trees = append(l.trees, &ir.ExpStm{Exp: &ir.Const{Value: 0}})
		return
	}

	l.trees = append(l.trees, l.lowerStmt(mc.Stmt).ToStm())
}

// lowerClass lowers every method of an ordinary class declaration.
func (l *Lowerer) lowerClass(cd *ast.ClassDecl) {
	l.currentClass = l.table.ClassInfo(l.storage.Get(cd.Name))

	for _, md := range cd.Methods {
		l.lowerMethod(md)
	}
}

// lowerMethod lowers a single method to ESEQ(body, return).  A method with an
// empty body has the no-op EXP(CONST 0) as its body.
func (l *Lowerer) lowerMethod(md *ast.MethodDecl) {
	defer report.CatchErrors(l.currentClass.Name.Name, md.Name)

	mi, ok := l.currentClass.MethodInfo(l.storage.Get(md.Name))
	if !ok {
		report.Raise(report.ErrKindClass, md.Span(),
			"method `%s` is not declared by class `%s`", md.Name, l.currentClass.Name)
	}
	l.currentMethod = mi

	l.newFrame(l.methodLabels[l.currentClass.Name.Name+"@"+md.Name])

	body := l.lowerBody(md.Body)
	ret := l.lowerExpr(md.Return).ToExp()

	l.trees = append(l.trees, &ir.Eseq{Stm: body, Exp: ret})
}

// newFrame creates and populates the frame of the current method: the
// implicit receiver as formal 0, then the formals, the locals, and the
// linearized fields of the current class.
func (l *Lowerer) newFrame(name *ir.Label) {
	f := frame.New(name, l.wordSize, l.pool)

	f.AllocFormal(l.storage.Get("this"))
	for _, p := range l.currentMethod.Params {
		f.AllocFormal(p.Name)
	}

	for _, v := range l.currentMethod.Vars {
		f.AllocLocal(v.Name)
	}

	for _, fv := range l.table.LinearFields(l.currentClass) {
		f.AllocField(fv.Name)
	}

	l.frame = f
}

// lowerBody left-folds a statement list into SEQs.
func (l *Lowerer) lowerBody(stmts []ast.Stmt) ir.Stm {
	if len(stmts) == 0 {
		return &ir.ExpStm{Exp: &ir.Const{Value: 0}}
	}

	res := l.lowerStmt(stmts[0]).ToStm()
	for _, s := range stmts[1:] {
		res = &ir.Seq{First: res, Second: l.lowerStmt(s).ToStm()}
	}

	return res
}
