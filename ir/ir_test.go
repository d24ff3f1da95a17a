package ir

import (
	"strings"
	"testing"
)

func TestPoolFreshTemps(t *testing.T) {
	pool := NewPool()

	a := pool.NewTemp()
	b := pool.NewTemp()

	if a == b {
		t.Error("expected distinct temporaries")
	}
	if a.Num == b.Num {
		t.Errorf("expected distinct temp numbers, got %d twice", a.Num)
	}
}

func TestPoolFreshLabels(t *testing.T) {
	pool := NewPool()

	a := pool.NewLabel()
	b := pool.NewLabel()

	if a == b {
		t.Error("expected distinct labels")
	}
	if a.Name != "L1" || b.Name != "L2" {
		t.Errorf("expected labels L1 and L2, got %s and %s", a, b)
	}
}

func TestPoolNamedLabelInterning(t *testing.T) {
	pool := NewPool()

	a := pool.NamedLabel("Main@main")
	b := pool.NamedLabel("Main@main")
	c := pool.NamedLabel("#print")

	if a != b {
		t.Error("expected the same interned label for the same name")
	}
	if a == c {
		t.Error("expected distinct labels for distinct names")
	}
	if c.Name != "#print" {
		t.Errorf("expected label name #print, got %s", c)
	}
}

func TestNewMoveTempDestination(t *testing.T) {
	pool := NewPool()

	m := NewMove(&TempExpr{Temp: pool.NewTemp()}, &Const{Value: 1})
	if _, ok := m.Dst.(*TempExpr); !ok {
		t.Errorf("expected TEMP destination, got %T", m.Dst)
	}
}

func TestNewMoveMemDestination(t *testing.T) {
	pool := NewPool()

	m := NewMove(&Mem{Addr: &TempExpr{Temp: pool.NewTemp()}}, &Const{Value: 1})
	if _, ok := m.Dst.(*Mem); !ok {
		t.Errorf("expected MEM destination, got %T", m.Dst)
	}
}

func TestPrintConst(t *testing.T) {
	if s := String(&Const{Value: 42}); s != "CONST 42" {
		t.Errorf("expected `CONST 42`, got %q", s)
	}
}

func TestPrintBinop(t *testing.T) {
	tree := &Binop{
		Op:    OpPlus,
		Left:  &Const{Value: 1},
		Right: &Const{Value: 2},
	}

	expect := "BINOP PLUS(\n  CONST 1,\n  CONST 2)"
	if s := String(tree); s != expect {
		t.Errorf("expected %q, got %q", expect, s)
	}
}

func TestPrintMoveSeq(t *testing.T) {
	pool := NewPool()
	tmp := pool.NewTemp()
	done := pool.NewLabel()

	tree := &Seq{
		First:  NewMove(&TempExpr{Temp: tmp}, &Const{Value: 7}),
		Second: &LabelStm{Label: done},
	}

	s := String(tree)
	for _, want := range []string{"SEQ(", "MOVE(", "TEMP t1", "CONST 7", "LABEL L1"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected rendering to contain %q, got:\n%s", want, s)
		}
	}
}

func TestPrintCallShape(t *testing.T) {
	pool := NewPool()

	tree := &Call{
		Func: &Name{Label: pool.NamedLabel("#print")},
		Args: ExpList{&Const{Value: 3}},
	}

	s := String(tree)
	if !strings.Contains(s, "NAME #print") || !strings.Contains(s, "CONST 3") {
		t.Errorf("unexpected rendering:\n%s", s)
	}
}

func TestPrintCJump(t *testing.T) {
	pool := NewPool()
	yes := pool.NewLabel()
	no := pool.NewLabel()

	tree := &CJump{
		Rel:     RelLt,
		Left:    &Const{Value: 1},
		Right:   &Const{Value: 2},
		IfTrue:  yes,
		IfFalse: no,
	}

	s := String(tree)
	if !strings.Contains(s, "CJUMP LT(") || !strings.Contains(s, ", L1, L2)") {
		t.Errorf("unexpected rendering:\n%s", s)
	}
}
