package hypergraph

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperpath/symbol"
)

// String renders an arc as "head <- t1 t2 / weight".
func (a Arc[W]) String() string {
	var sb strings.Builder
	writeArc(&sb, a.Head, a.Tails, a.Weight.String())

	return sb.String()
}

func writeArc(sb *strings.Builder, head StateID, tails []StateID, w string) {
	sb.WriteString(strconv.FormatUint(uint64(head), 10))
	sb.WriteString(" <-")
	for _, t := range tails {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(uint64(t), 10))
	}
	sb.WriteString(" / ")
	sb.WriteString(w)
}

// String renders the hypergraph one line at a time: START and FINAL, each
// labelled state as "s(label)" or "s(in:out)", then every live arc.
func (hg *Hypergraph[W]) String() string {
	var sb strings.Builder
	if hg.start != NoState {
		sb.WriteString("START <- ")
		sb.WriteString(strconv.FormatUint(uint64(hg.start), 10))
		sb.WriteByte('\n')
	}
	if hg.final != NoState {
		sb.WriteString("FINAL <- ")
		sb.WriteString(strconv.FormatUint(uint64(hg.final), 10))
		sb.WriteByte('\n')
	}
	for s, st := range hg.states {
		if st.in.IsNone() && st.out.IsNone() {
			continue
		}
		sb.WriteString(strconv.Itoa(s))
		sb.WriteByte('(')
		sb.WriteString(symbol.Render(hg.voc, st.in))
		if !st.out.IsNone() && st.out != st.in {
			sb.WriteByte(':')
			sb.WriteString(symbol.Render(hg.voc, st.out))
		}
		sb.WriteString(")\n")
	}
	hg.ForEachArc(func(_ ArcID, a *Arc[W]) bool {
		writeArc(&sb, a.Head, a.Tails, a.Weight.String())
		sb.WriteByte('\n')
		return true
	})

	return sb.String()
}
