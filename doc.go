// Package moddecomp computes the modular decomposition tree of a finite
// simple undirected graph in the classical pivot/recursion/assembly style of
// the Tedder-Corneil-Habib-Paul family of algorithms.
//
// 🚀 What is moddecomp?
//
//	A small, dependency-light core library that brings together:
//		• graph: an immutable, simple, undirected Graph type
//		• decompose: the modular decomposition core, Decompose(g) -> MDTree
//		• mdtree: the SERIES/PARALLEL/PRIME output tree
//		• builder: deterministic benchmark/fixture constructors
//		• dotio: a DOT-subset reader/writer
//		• cmd/moddecomp: a small CLI wrapping the above
//
// ✨ Why this shape?
//
//   - The core (decompose) stays callback-free and dependency-free by
//     design — no hooks, no internal parallelism.
//   - Everything else — logging, parsing, CLI — lives strictly outside the
//     core, in its own package, on its own dependency.
//
// Under the hood, everything is organized under:
//
//	graph/           immutable Graph, Edge, ErrInvalidGraph
//	internal/bitset/ fixed-width vertex-subset bitset
//	internal/forest/ the tree-forest-with-marks the core is built on
//	decompose/       Decompose(g) -> (*mdtree.MDTree, error)
//	mdtree/          the output tree type
//	builder/         Path/Cycle/Complete/CompleteBipartite/RandomGNP
//	dotio/           DOT subset read/write
//	cmd/moddecomp/   CLI: decompose, convert, generate
//
// Quick ASCII example, the smallest prime graph P4:
//
//	0───1───2───3
//
//	Decompose(P4) has no non-trivial strong module: its root is PRIME with
//	all four vertices as direct leaf children.
package moddecomp
