package lower

import (
	"github.com/Nadezhda94/SimpleJava/ir"
	"github.com/Nadezhda94/SimpleJava/report"
)

// wrapper encodes how the translation of a subexpression is currently
// expressed: as a value, as an effect, or as a branch.  The parent context
// decides which shape it needs and converts exactly once; converting the same
// wrapper twice would place one IR subtree in two positions.
type wrapper interface {
	// ToExp returns the translation as an IR expression.
	ToExp() ir.Exp

	// ToStm returns the translation as an IR statement, discarding any value.
	ToStm() ir.Stm

	// ToCond returns an IR statement that branches to t when the translation
	// is truthy and to f when it is falsy.
	ToCond(t, f *ir.Label) ir.Stm
}

// -----------------------------------------------------------------------------

// expWrapper holds a translation that is already a value expression.
type expWrapper struct {
	exp ir.Exp
}

func (w *expWrapper) ToExp() ir.Exp {
	return w.exp
}

func (w *expWrapper) ToStm() ir.Stm {
	return &ir.ExpStm{Exp: w.exp}
}

func (w *expWrapper) ToCond(t, f *ir.Label) ir.Stm {
	// Booleans are 0/1: equal to zero means falsy.
	return &ir.CJump{
		Rel:     ir.RelEq,
		Left:    w.exp,
		Right:   &ir.Const{Value: 0},
		IfTrue:  f,
		IfFalse: t,
	}
}

// stmWrapper holds a translation that is a statement with no value.
type stmWrapper struct {
	stm ir.Stm
}

func (w *stmWrapper) ToExp() ir.Exp {
	report.ReportICE("statement translation used as a value")
	return nil
}

func (w *stmWrapper) ToStm() ir.Stm {
	return w.stm
}

func (w *stmWrapper) ToCond(t, f *ir.Label) ir.Stm {
	report.ReportICE("statement translation used as a conditional")
	return nil
}

// -----------------------------------------------------------------------------

// condEmitter is the single primitive of a conditional translation: emit a
// statement branching to t when truthy and to f when falsy.
type condEmitter interface {
	emitCond(t, f *ir.Label) ir.Stm
}

// condWrapper holds a translation expressed as a branch.  Value and statement
// shapes are derived from the emitCond primitive.
type condWrapper struct {
	pool *ir.Pool
	em   condEmitter
}

func (w *condWrapper) ToCond(t, f *ir.Label) ir.Stm {
	return w.em.emitCond(t, f)
}

// ToExp materializes the branch as a 0/1 value: r is set to 1, the false arm
// falls through to reset it to 0, and both arms terminate at the true label.
func (w *condWrapper) ToExp() ir.Exp {
	r := w.pool.NewTemp()
	t := w.pool.NewLabel()
	f := w.pool.NewLabel()

	return &ir.Eseq{
		Stm: &ir.Seq{
			First: ir.NewMove(&ir.TempExpr{Temp: r}, &ir.Const{Value: 1}),
			Second: &ir.Seq{
				First: w.em.emitCond(t, f),
				Second: &ir.Seq{
					First: &ir.LabelStm{Label: f},
					Second: &ir.Seq{
						First:  ir.NewMove(&ir.TempExpr{Temp: r}, &ir.Const{Value: 0}),
						Second: &ir.LabelStm{Label: t},
					},
				},
			},
		},
		Exp: &ir.TempExpr{Temp: r},
	}
}

func (w *condWrapper) ToStm() ir.Stm {
	jmp := w.pool.NewLabel()
	return &ir.Seq{
		First:  w.em.emitCond(jmp, jmp),
		Second: &ir.LabelStm{Label: jmp},
	}
}

// -----------------------------------------------------------------------------

// relCmp is a conditional defined by a single relational comparison.
type relCmp struct {
	rel         int
	left, right ir.Exp
}

func (rc *relCmp) emitCond(t, f *ir.Label) ir.Stm {
	return &ir.CJump{
		Rel:     rc.rel,
		Left:    rc.left,
		Right:   rc.right,
		IfTrue:  t,
		IfFalse: f,
	}
}

// andCond is a short-circuit conjunction: the right operand is tested only
// when the left operand is true.
type andCond struct {
	pool        *ir.Pool
	left, right ir.Exp
}

func (ac *andCond) emitCond(t, f *ir.Label) ir.Stm {
	// Booleans are 0/1: `< 1` means "is false".
	z := ac.pool.NewLabel()
	return &ir.Seq{
		First: &ir.CJump{
			Rel:     ir.RelLt,
			Left:    ac.left,
			Right:   &ir.Const{Value: 1},
			IfTrue:  f,
			IfFalse: z,
		},
		Second: &ir.Seq{
			First: &ir.LabelStm{Label: z},
			Second: &ir.CJump{
				Rel:     ir.RelLt,
				Left:    ac.right,
				Right:   &ir.Const{Value: 1},
				IfTrue:  f,
				IfFalse: t,
			},
		},
	}
}

// orCond is a short-circuit disjunction: the right operand is tested only when
// the left operand is false.
type orCond struct {
	pool        *ir.Pool
	left, right ir.Exp
}

func (oc *orCond) emitCond(t, f *ir.Label) ir.Stm {
	z := oc.pool.NewLabel()
	return &ir.Seq{
		First: &ir.CJump{
			Rel:     ir.RelEq,
			Left:    oc.left,
			Right:   &ir.Const{Value: 1},
			IfTrue:  t,
			IfFalse: z,
		},
		Second: &ir.Seq{
			First: &ir.LabelStm{Label: z},
			Second: &ir.CJump{
				Rel:     ir.RelLt,
				Left:    oc.right,
				Right:   &ir.Const{Value: 1},
				IfTrue:  f,
				IfFalse: t,
			},
		},
	}
}
