// SPDX-License-Identifier: MIT
// File: format.go
// Role: CPLEX LP text export.
// Determinism:
//   - Rows and columns are written in insertion order; numbers use %g.

package lp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// termsPerLine keeps lines well under the 255-char limit of the LP format.
const termsPerLine = 8

// WriteLP writes p in CPLEX LP format. Variable and constraint names are
// sanitized to the characters the format accepts.
//
// Every variable is non-negative, which is the LP-format default, so no
// Bounds section is written.
func WriteLP(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\\ Problem: %s\n", p.name)
	fmt.Fprint(bw, "Minimize\n")
	var obj []Term
	for j, c := range p.objective {
		if c != 0 {
			obj = append(obj, Term{Var: VarID(j), Coef: c})
		}
	}
	writeRow(bw, p, "obj", obj)
	fmt.Fprint(bw, "\n")

	fmt.Fprint(bw, "Subject To\n")
	for _, c := range p.constraints {
		writeRow(bw, p, c.Name, c.Terms)
		fmt.Fprintf(bw, " %s %g\n", c.Sense, c.RHS)
	}
	fmt.Fprint(bw, "End\n")

	return bw.Flush()
}

// writeRow writes " name: a x + b y ..." without the trailing sense/rhs.
// An empty row is written as "0 x" on the first column, which LP readers accept.
func writeRow(w *bufio.Writer, p *Problem, name string, terms []Term) {
	fmt.Fprintf(w, " %s:", SanitizeName(name))
	if len(terms) == 0 {
		if len(p.varNames) > 0 {
			fmt.Fprintf(w, " 0 %s", SanitizeName(p.varNames[0]))
		}
		return
	}
	for i, t := range terms {
		if i > 0 && i%termsPerLine == 0 {
			fmt.Fprint(w, "\n  ")
		}
		sign := "+"
		coef := t.Coef
		if coef < 0 {
			sign, coef = "-", -coef
		}
		if i == 0 && sign == "+" {
			fmt.Fprintf(w, " %g %s", coef, SanitizeName(p.varNames[t.Var]))
			continue
		}
		fmt.Fprintf(w, " %s %g %s", sign, coef, SanitizeName(p.varNames[t.Var]))
	}
}

// SanitizeName maps a name onto the LP-format alphabet: letters, digits and
// !"#$%&()/,.;?@_`'{}|. Every other byte, '~' included, becomes "~XX"
// (upper-case hex), as does a leading digit or period. The mapping is
// injective, so distinct problem names stay distinct in the export.
func SanitizeName(name string) string {
	const hex = "0123456789ABCDEF"
	if name == "" {
		return "~"
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		lead := i == 0 && ((c >= '0' && c <= '9') || c == '.')
		switch {
		case lead:
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
			continue
		case c < 0x80 && strings.IndexByte("!\"#$%&()/,.;?@_`'{}|", c) >= 0:
			b.WriteByte(c)
			continue
		}
		b.WriteByte('~')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}

	return b.String()
}
