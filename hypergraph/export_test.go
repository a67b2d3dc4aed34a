package hypergraph

// PropsCached reports whether the property cache is valid, for white-box tests.
func (hg *Hypergraph[W]) PropsCached() bool { return hg.propsValid }
