package ir

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual rendering of the given tree to w.  The
// rendering is deterministic: it is used by the `--dump-ir` build flag and by
// tests.
func Fprint(w io.Writer, n Node) {
	printNode(w, n, 0)
	fmt.Fprintln(w)
}

// String returns the indented textual rendering of the given tree.
func String(n Node) string {
	sb := strings.Builder{}
	printNode(&sb, n, 0)
	return sb.String()
}

func printNode(w io.Writer, n Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v := n.(type) {
	case *Const:
		fmt.Fprintf(w, "%sCONST %d", indent, v.Value)
	case *Name:
		fmt.Fprintf(w, "%sNAME %s", indent, v.Label)
	case *TempExpr:
		fmt.Fprintf(w, "%sTEMP %s", indent, v.Temp)
	case *Binop:
		fmt.Fprintf(w, "%sBINOP %s(\n", indent, BinopString(v.Op))
		printNode(w, v.Left, depth+1)
		fmt.Fprint(w, ",\n")
		printNode(w, v.Right, depth+1)
		fmt.Fprintf(w, ")")
	case *Mem:
		fmt.Fprintf(w, "%sMEM(\n", indent)
		printNode(w, v.Addr, depth+1)
		fmt.Fprint(w, ")")
	case *Call:
		fmt.Fprintf(w, "%sCALL(\n", indent)
		printNode(w, v.Func, depth+1)
		for _, arg := range v.Args {
			fmt.Fprint(w, ",\n")
			printNode(w, arg, depth+1)
		}
		fmt.Fprint(w, ")")
	case *Eseq:
		fmt.Fprintf(w, "%sESEQ(\n", indent)
		printNode(w, v.Stm, depth+1)
		fmt.Fprint(w, ",\n")
		printNode(w, v.Exp, depth+1)
		fmt.Fprint(w, ")")
	case *Move:
		fmt.Fprintf(w, "%sMOVE(\n", indent)
		printNode(w, v.Dst, depth+1)
		fmt.Fprint(w, ",\n")
		printNode(w, v.Src, depth+1)
		fmt.Fprint(w, ")")
	case *ExpStm:
		fmt.Fprintf(w, "%sEXP(\n", indent)
		printNode(w, v.Exp, depth+1)
		fmt.Fprint(w, ")")
	case *Jump:
		fmt.Fprintf(w, "%sJUMP %s", indent, v.Target)
	case *CJump:
		fmt.Fprintf(w, "%sCJUMP %s(\n", indent, RelopString(v.Rel))
		printNode(w, v.Left, depth+1)
		fmt.Fprint(w, ",\n")
		printNode(w, v.Right, depth+1)
		fmt.Fprintf(w, ", %s, %s)", v.IfTrue, v.IfFalse)
	case *Seq:
		fmt.Fprintf(w, "%sSEQ(\n", indent)
		printNode(w, v.First, depth+1)
		fmt.Fprint(w, ",\n")
		printNode(w, v.Second, depth+1)
		fmt.Fprint(w, ")")
	case *LabelStm:
		fmt.Fprintf(w, "%sLABEL %s", indent, v.Label)
	}
}
