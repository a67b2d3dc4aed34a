// Package symbol defines the compact label type carried by hypergraph states.
//
// A Symbol is an opaque tagged integer: the two high bits hold the Kind
// (terminal, nonterminal, special, variable) and the remaining bits hold an
// index assigned by an external Vocabulary. The core packages only compare,
// copy and classify symbols; interning strings is the Vocabulary's job.
//
// Key Types:
//
//   - Symbol:     tagged uint32 with the NoSymbol sentinel.
//   - Kind:       Terminal, Nonterminal, Special, Variable.
//   - Vocabulary: the string<->Symbol capability consumed (never implemented) here.
//
// Reserved specials:
//
//   - Epsilon, Sigma, Phi, Rho are predefined Special symbols with fixed indices,
//     so automata helpers can recognise them without a vocabulary lookup.
package symbol
