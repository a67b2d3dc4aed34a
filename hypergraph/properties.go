package hypergraph

// Properties returns the structural bitmask. Computed bits are derived in
// O(N + total tails) on first call after a mutation and cached.
func (hg *Hypergraph[W]) Properties() Properties {
	if !hg.propsValid {
		hg.props = hg.computeProperties()
		hg.propsValid = true
	}
	p := hg.props
	if hg.storeIn {
		p |= StoresInArcs
	}
	if hg.storeOut {
		p |= StoresFirstTailOutArcs
	}

	return p
}

// HasProperties reports whether every bit in mask holds.
func (hg *Hypergraph[W]) HasProperties(mask Properties) bool {
	return hg.Properties().Has(mask)
}

// IsGraph reports the graph shape (every tail after the first is lexical).
func (hg *Hypergraph[W]) IsGraph() bool { return hg.HasProperties(IsGraph) }

// IsFSM reports the FSM shape (exactly two tails, the second lexical).
func (hg *Hypergraph[W]) IsFSM() bool { return hg.HasProperties(IsFSM) }

// IsSorted reports the SortedStates layout.
func (hg *Hypergraph[W]) IsSorted() bool { return hg.HasProperties(SortedStates) }

// computeProperties scans states and arcs once.
func (hg *Hypergraph[W]) computeProperties() Properties {
	p := IsGraph | IsFSM | OneLexicalTailMax | SortedStates

	// 1) Output labels and the lexical partition.
	seenLexical := false
	for _, st := range hg.states {
		if !st.out.IsNone() && st.out != st.in {
			p |= HasOutputLabels
		}
		lex := isLexicalLabel(st.in)
		if lex {
			seenLexical = true
		} else if seenLexical {
			// A non-lexical state after a lexical one breaks the partition.
			p &^= SortedStates
		}
	}

	// 2) Arc shapes and topological order of non-lexical tails.
	var lexTails int
	for i := range hg.slots {
		if !hg.slots[i].live {
			continue
		}
		a := &hg.slots[i].arc
		if len(a.Tails) != 2 || !isLexicalLabel(hg.states[a.Tails[1]].in) {
			p &^= IsFSM
		}
		lexTails = 0
		for j, t := range a.Tails {
			lex := isLexicalLabel(hg.states[t].in)
			if lex {
				lexTails++
			} else {
				if j > 0 {
					p &^= IsGraph
				}
				if t >= a.Head {
					p &^= SortedStates
				}
			}
		}
		if lexTails > 1 {
			p &^= OneLexicalTailMax
		}
	}

	return p
}
