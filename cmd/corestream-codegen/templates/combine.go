// Package templates renders the N-ary combineLatest operator variants
// that are too repetitive to hand-write past arity two: CombineLatest3
// through CombineLatest6, each built by nesting the arity-2
// CombineLatest and then flattening the resulting nested pair. It is
// driven by quicktemplate's buffer pool rather than text/template so
// the codegen path allocates the way the rest of the repo does.
package templates

import (
	"fmt"
	"strings"

	qt422016 "github.com/valyala/quicktemplate"
)

// letters names the type parameters for each combined element. "F" is
// skipped since every generated signature already carries a Failure
// type parameter named F.
var letters = []string{"A", "B", "C", "D", "E", "G"}
var fields = []string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth"}

func typeParams(arity int) string {
	return strings.Join(letters[:arity], ", ")
}

// nestedType returns the nested Pair2 type built by repeatedly wrapping
// the previous level with the next letter, e.g. for arity 3:
// Pair2[Pair2[A, B], C].
func nestedType(arity int) string {
	t := letters[0]
	for i := 1; i < arity; i++ {
		t = fmt.Sprintf("Pair2[%s, %s]", t, letters[i])
	}
	return t
}

// nestedExpr returns the expression combining s1..sN pairwise, e.g. for
// arity 3: CombineLatest(CombineLatest(s1, s2), s3).
func nestedExpr(arity int) string {
	e := "CombineLatest(s1, s2)"
	for i := 3; i <= arity; i++ {
		e = fmt.Sprintf("CombineLatest(%s, s%d)", e, i)
	}
	return e
}

// fieldPath returns the chain of .First/.Second selectors that extracts
// the i-th (1-indexed) original value out of a value of nestedType(arity).
// The bottom-most element (i == 1) is reached by following .First all
// the way down, since the base of the nest is the bare type itself
// rather than a Pair2; every other element is one .First chain short of
// that followed by a single .Second.
func fieldPath(arity, i int) string {
	if i == 1 {
		return strings.Repeat(".First", arity-1)
	}
	return strings.Repeat(".First", arity-i) + ".Second"
}

// TupleGen renders the PairN struct declaration for the given arity.
func TupleGen(arity int) string {
	qb := qt422016.AcquireByteBuffer()
	fmt.Fprintf(qb, "// Pair%d is the %d-tuple produced by CombineLatest%d and Zip%d.\n", arity, arity, arity, arity)
	fmt.Fprintf(qb, "type Pair%d[%s any] struct {\n", arity, typeParams(arity))
	for i := 0; i < arity; i++ {
		fmt.Fprintf(qb, "\t%s %s\n", fields[i], letters[i])
	}
	qb.B = append(qb.B, "}\n"...)
	s := string(qb.B)
	qt422016.ReleaseByteBuffer(qb)
	return s
}

// CombineLatestGen renders a CombineLatestN function for the given
// arity (3 through 6).
func CombineLatestGen(arity int) string {
	qb := qt422016.AcquireByteBuffer()
	sigArgs := make([]string, arity)
	for i := 0; i < arity; i++ {
		sigArgs[i] = fmt.Sprintf("s%d Signal[%s, F]", i+1, letters[i])
	}
	fmt.Fprintf(qb, "// CombineLatest%d combines %d signals the way CombineLatest combines two,\n", arity, arity)
	qb.B = append(qb.B, "// nesting pairwise and flattening the result.\n"...)
	fmt.Fprintf(qb, "func CombineLatest%d[%s, F any](%s) Signal[Pair%d[%s], F] {\n",
		arity, typeParams(arity), strings.Join(sigArgs, ", "), arity, typeParams(arity))
	fmt.Fprintf(qb, "\tnested := %s\n", nestedExpr(arity))
	fmt.Fprintf(qb, "\treturn Map(nested, func(p %s) Pair%d[%s] {\n", nestedType(arity), arity, typeParams(arity))
	fmt.Fprintf(qb, "\t\treturn Pair%d[%s]{\n", arity, typeParams(arity))
	for i := 1; i <= arity; i++ {
		fmt.Fprintf(qb, "\t\t\t%s: p%s,\n", fields[i-1], fieldPath(arity, i))
	}
	qb.B = append(qb.B, "\t\t}\n\t})\n}\n"...)
	s := string(qb.B)
	qt422016.ReleaseByteBuffer(qb)
	return s
}

// ZipGen renders a ZipN function for the given arity (3 through 6),
// built the same nest-and-flatten way as CombineLatestGen but over Zip.
func ZipGen(arity int) string {
	qb := qt422016.AcquireByteBuffer()
	sigArgs := make([]string, arity)
	for i := 0; i < arity; i++ {
		sigArgs[i] = fmt.Sprintf("s%d Signal[%s, F]", i+1, letters[i])
	}
	fmt.Fprintf(qb, "// Zip%d zips %d signals by nesting the arity-2 Zip pairwise\n", arity, arity)
	qb.B = append(qb.B, "// and flattening the result.\n"...)
	fmt.Fprintf(qb, "func Zip%d[%s, F any](%s) Signal[Pair%d[%s], F] {\n",
		arity, typeParams(arity), strings.Join(sigArgs, ", "), arity, typeParams(arity))
	e := "Zip(s1, s2)"
	for i := 3; i <= arity; i++ {
		e = fmt.Sprintf("Zip(%s, s%d)", e, i)
	}
	fmt.Fprintf(qb, "\tnested := %s\n", e)
	fmt.Fprintf(qb, "\treturn Map(nested, func(p %s) Pair%d[%s] {\n", nestedType(arity), arity, typeParams(arity))
	fmt.Fprintf(qb, "\t\treturn Pair%d[%s]{\n", arity, typeParams(arity))
	for i := 1; i <= arity; i++ {
		fmt.Fprintf(qb, "\t\t\t%s: p%s,\n", fields[i-1], fieldPath(arity, i))
	}
	qb.B = append(qb.B, "\t\t}\n\t})\n}\n"...)
	s := string(qb.B)
	qt422016.ReleaseByteBuffer(qb)
	return s
}
