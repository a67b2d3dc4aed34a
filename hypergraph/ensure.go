package hypergraph

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/weight"
)

// Outcome reports what EnsureProperties did.
type Outcome int

const (
	// Unchanged: the input already complied and was returned as is.
	Unchanged Outcome = iota
	// ModifiedInPlace: the input was adjusted and returned.
	ModifiedInPlace
	// Copied: a compliant copy was returned; the input is untouched.
	Copied
)

// String names the outcome.
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case ModifiedInPlace:
		return "modified-in-place"
	case Copied:
		return "copied"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// EnsurePolicy controls how EnsureProperties may satisfy a request.
type EnsurePolicy struct {
	// MayModify permits changing storage of the input in place. When false a
	// copy is made whenever the input does not already comply. Default false.
	MayModify bool
}

// EnsureProperties returns a hypergraph with every property in on set and
// every property in off cleared.
//
// Only storage properties (StoresInArcs, StoresFirstTailOutArcs) can be
// established; content properties (shape, sortedness, labels) are checked and
// reported as ErrUnsupportedProperty when unmet. A copy shares the vocabulary
// by reference and duplicates arcs and labels.
func EnsureProperties[W weight.Weight[W]](hg *Hypergraph[W], on, off Properties, policy EnsurePolicy) (*Hypergraph[W], Outcome, error) {
	// 1) Conflicting requirements fail before anything is inspected.
	if on&off != 0 {
		return nil, Unchanged, fmt.Errorf("%w: %s", ErrConflictingProperties, on&off)
	}

	// 2) Content properties must already hold.
	have := hg.Properties()
	if missing := on & computedProperties &^ have; missing != 0 {
		return nil, Unchanged, fmt.Errorf("%w: need %s", ErrUnsupportedProperty, missing)
	}
	if extra := off & computedProperties & have; extra != 0 {
		return nil, Unchanged, fmt.Errorf("%w: must not have %s", ErrUnsupportedProperty, extra)
	}

	// 3) Already compliant?
	if have&on == on && have&off == 0 {
		return hg, Unchanged, nil
	}

	// 4) Adjust storage, in place or on a copy.
	target, outcome := hg, ModifiedInPlace
	if !policy.MayModify {
		target, outcome = hg.Clone(), Copied
	}
	wantIn := (have.Has(StoresInArcs) || on.Has(StoresInArcs)) && !off.Has(StoresInArcs)
	wantOut := (have.Has(StoresFirstTailOutArcs) || on.Has(StoresFirstTailOutArcs)) && !off.Has(StoresFirstTailOutArcs)
	target.setStorage(wantIn, wantOut)

	return target, outcome, nil
}

// setStorage switches native adjacency on or off, rebuilding lists as needed.
func (hg *Hypergraph[W]) setStorage(in, out bool) {
	hg.storeIn, hg.storeOut = in, out
	hg.inArcs, hg.outArcs = nil, nil
	hg.rebuildAdjacency()
}

// rebuildAdjacency recomputes native lists from the arena.
func (hg *Hypergraph[W]) rebuildAdjacency() {
	n := len(hg.states)
	if hg.storeIn {
		hg.inArcs = make([][]ArcID, n)
	}
	if hg.storeOut {
		hg.outArcs = make([][]ArcID, n)
	}
	if !hg.storeIn && !hg.storeOut {
		return
	}
	for i := range hg.slots {
		if !hg.slots[i].live {
			continue
		}
		a := &hg.slots[i].arc
		if hg.storeIn {
			hg.inArcs[a.Head] = append(hg.inArcs[a.Head], ArcID(i))
		}
		if hg.storeOut {
			hg.outArcs[a.Tails[0]] = append(hg.outArcs[a.Tails[0]], ArcID(i))
		}
	}
}
