package lower

import (
	"fmt"
	"testing"

	"github.com/Nadezhda94/SimpleJava/ir"
)

// machine is a small symbolic interpreter over emitted IR used to check the
// behavior of materialized conditionals.  It counts temp reads so that tests
// can observe whether a short-circuited operand was evaluated.
type machine struct {
	temps map[*ir.Temp]int32
	reads map[*ir.Temp]int
}

func newMachine() *machine {
	return &machine{
		temps: make(map[*ir.Temp]int32),
		reads: make(map[*ir.Temp]int),
	}
}

func (m *machine) evalExp(e ir.Exp) int32 {
	switch v := e.(type) {
	case *ir.Const:
		return v.Value
	case *ir.TempExpr:
		m.reads[v.Temp]++
		return m.temps[v.Temp]
	case *ir.Binop:
		l := m.evalExp(v.Left)
		r := m.evalExp(v.Right)
		switch v.Op {
		case ir.OpPlus:
			return l + r
		case ir.OpMinus:
			return l - r
		case ir.OpMul:
			return l * r
		case ir.OpDiv:
			return l / r
		}
		panic(fmt.Sprintf("binop %d not interpreted", v.Op))
	case *ir.Eseq:
		m.execStm(v.Stm)
		return m.evalExp(v.Exp)
	}

	panic(fmt.Sprintf("expression %T not interpreted", e))
}

func (m *machine) execStm(s ir.Stm) {
	stms := flattenStm(s)

	labelIdx := make(map[*ir.Label]int)
	for i, st := range stms {
		if l, ok := st.(*ir.LabelStm); ok {
			labelIdx[l.Label] = i
		}
	}

	pc := 0
	for pc < len(stms) {
		switch v := stms[pc].(type) {
		case *ir.Move:
			val := m.evalExp(v.Src)
			m.temps[v.Dst.(*ir.TempExpr).Temp] = val
		case *ir.ExpStm:
			m.evalExp(v.Exp)
		case *ir.LabelStm:
			// fall through
		case *ir.Jump:
			pc = labelIdx[v.Target]
			continue
		case *ir.CJump:
			l := m.evalExp(v.Left)
			r := m.evalExp(v.Right)
			if relHolds(v.Rel, l, r) {
				pc = labelIdx[v.IfTrue]
			} else {
				pc = labelIdx[v.IfFalse]
			}
			continue
		}
		pc++
	}
}

// flattenStm linearizes a statement tree into its primitive statements.
func flattenStm(s ir.Stm) []ir.Stm {
	if seq, ok := s.(*ir.Seq); ok {
		return append(flattenStm(seq.First), flattenStm(seq.Second)...)
	}

	return []ir.Stm{s}
}

func relHolds(rel int, l, r int32) bool {
	switch rel {
	case ir.RelEq:
		return l == r
	case ir.RelNe:
		return l != r
	case ir.RelLt:
		return l < r
	case ir.RelGt:
		return l > r
	case ir.RelLe:
		return l <= r
	case ir.RelGe:
		return l >= r
	}

	panic(fmt.Sprintf("relop %d not interpreted", rel))
}

// -----------------------------------------------------------------------------

// children returns the IR child nodes of a node.  Temps and labels are
// identities, not nodes, and are excluded.
func children(n ir.Node) []ir.Node {
	switch v := n.(type) {
	case *ir.Binop:
		return []ir.Node{v.Left, v.Right}
	case *ir.Mem:
		return []ir.Node{v.Addr}
	case *ir.Call:
		kids := []ir.Node{v.Func}
		for _, arg := range v.Args {
			kids = append(kids, arg)
		}
		return kids
	case *ir.Eseq:
		return []ir.Node{v.Stm, v.Exp}
	case *ir.Move:
		return []ir.Node{v.Dst, v.Src}
	case *ir.ExpStm:
		return []ir.Node{v.Exp}
	case *ir.CJump:
		return []ir.Node{v.Left, v.Right}
	case *ir.Seq:
		return []ir.Node{v.First, v.Second}
	default:
		return nil
	}
}

// checkNoAliasing fails the test when any IR node is reachable through two
// distinct parent edges in the given trees.
func checkNoAliasing(t *testing.T, trees []ir.Node) {
	t.Helper()

	seen := make(map[ir.Node]bool)

	var walk func(n ir.Node)
	walk = func(n ir.Node) {
		if seen[n] {
			t.Errorf("node %T shared across two positions:\n%s", n, ir.String(n))
			return
		}
		seen[n] = true

		for _, kid := range children(n) {
			walk(kid)
		}
	}

	for _, tree := range trees {
		walk(tree)
	}
}

// checkWellFormed fails the test when a tree breaks a structural invariant:
// a MOVE destination that is not TEMP or MEM, a CJUMP or JUMP target with no
// LABEL in the tree, or a LABEL defined twice.
func checkWellFormed(t *testing.T, tree ir.Node) {
	t.Helper()

	defined := make(map[*ir.Label]int)
	var referenced []*ir.Label

	var walk func(n ir.Node)
	walk = func(n ir.Node) {
		switch v := n.(type) {
		case *ir.LabelStm:
			defined[v.Label]++
		case *ir.Jump:
			referenced = append(referenced, v.Target)
		case *ir.CJump:
			referenced = append(referenced, v.IfTrue, v.IfFalse)
		case *ir.Move:
			switch v.Dst.(type) {
			case *ir.TempExpr, *ir.Mem:
			default:
				t.Errorf("MOVE destination is %T, not TEMP or MEM", v.Dst)
			}
		}

		for _, kid := range children(n) {
			walk(kid)
		}
	}
	walk(tree)

	for label, count := range defined {
		if count > 1 {
			t.Errorf("label %s defined %d times in one tree", label, count)
		}
	}

	for _, label := range referenced {
		if defined[label] == 0 {
			t.Errorf("jump target %s has no LABEL in its tree", label)
		}
	}
}
