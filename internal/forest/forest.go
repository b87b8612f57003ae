// Package forest implements the tree-forest-with-marks data structure that
// backs the decomposition core.
//
// Nodes live in an arena owned by a single Forest value: parent/child/sibling
// links are plain pointers into that arena, detach and splice are O(1) via
// intrusive doubly-linked sibling chains, and the whole structure is meant to
// be dropped wholesale when the owning decomposition call returns. There is
// no dynamic polymorphism between leaf and internal nodes; Node is a single
// tagged-variant struct whose counters only make sense on the internal arm.
package forest

// Kind distinguishes a leaf (vertex) node from an internal (module) node.
type Kind int

const (
	Leaf Kind = iota
	Internal
)

// Label is the node's SERIES/PARALLEL/PRIME classification. Unknown is the
// placeholder label assembly produces before the labeling pass runs; every
// node reachable from a finished MDTree has a concrete label.
type Label int

const (
	Unknown Label = iota
	Series
	Parallel
	Prime
)

func (l Label) String() string {
	switch l {
	case Series:
		return "SERIES"
	case Parallel:
		return "PARALLEL"
	case Prime:
		return "PRIME"
	default:
		return "UNKNOWN"
	}
}

// Split records which side(s) of the pivot have already forced a split at
// this node. Transitions are monotone: NONE → LEFT or RIGHT → MIXED, never
// reset except when the node is rebuilt fresh by assembly.
type Split int

const (
	NoSplit Split = iota
	LeftSplit
	RightSplit
	MixedSplit
)

// Tag records that side caused a split at n, applying the monotone
// transition NONE→LEFT/RIGHT, then anything→MIXED.
func (n *Node) Tag(side Split) {
	switch {
	case n.Split == NoSplit:
		n.Split = side
	case n.Split != side:
		n.Split = MixedSplit
	}
}

// Node is a single arena-resident forest node: either a LEAF wrapping a
// vertex id, or an INTERNAL node with a label, a mark counter, a split tag,
// and an ordered child list held as an intrusive doubly-linked sibling
// chain.
type Node struct {
	kind   Kind
	vertex int // valid when kind == Leaf
	label  Label

	parent      *Node
	prev, next  *Node // siblings: children of parent, or roots of forest
	firstChild  *Node
	lastChild   *Node
	numChildren int

	Mark  int   // mark(u): children marked so far in the current refinement pass
	Split Split // split-type tag, see Split above

	forest *Forest // owning arena, for root-list bookkeeping
}

// Kind reports whether n is a LEAF or an INTERNAL node.
func (n *Node) Kind() Kind { return n.kind }

// Vertex returns the vertex id of a leaf node. Calling it on an internal
// node is a programmer error and returns -1.
func (n *Node) Vertex() int {
	if n.kind != Leaf {
		return -1
	}
	return n.vertex
}

// Label returns the node's current label.
func (n *Node) Label() Label { return n.label }

// SetLabel overwrites the node's label; used by the labeling pass and by
// assembly when it already knows a node's final type.
func (n *Node) SetLabel(l Label) { n.label = l }

// Parent returns n's parent, or nil if n is a forest root.
func (n *Node) Parent() *Node { return n.parent }

// NumChildren returns the cached child count, for O(1) comparison against
// Mark without walking the sibling chain.
func (n *Node) NumChildren() int { return n.numChildren }

// FullyMarked reports whether Mark has reached NumChildren: every child has
// been visited during the current refinement pass.
func (n *Node) FullyMarked() bool { return n.Mark == n.numChildren }

// Children returns n's children as a freshly allocated slice, in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, n.numChildren)
	for c := n.firstChild; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}

// Root walks up n's parent chain and returns the topmost ancestor (n itself
// if n is already a root).
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Forest is the arena that owns a set of Node values and the ordered list
// of their roots. The zero value is not usable; use New.
type Forest struct {
	firstRoot *Node
	lastRoot  *Node
	numRoots  int
}

// New returns an empty Forest.
func New() *Forest { return &Forest{} }

// NewLeaf allocates a fresh, detached leaf node wrapping vertex. The caller
// must attach it via AppendRoot/PrependRoot or AppendChild/PrependChild.
func (f *Forest) NewLeaf(vertex int) *Node {
	return &Node{kind: Leaf, vertex: vertex, forest: f}
}

// NewInternal allocates a fresh, detached internal node with the given
// label (typically Unknown; assembly fills it in, or the labeling pass
// does). The caller must attach it via AppendRoot/PrependRoot or
// AppendChild/PrependChild.
func (f *Forest) NewInternal(label Label) *Node {
	return &Node{kind: Internal, label: label, forest: f}
}

// Roots returns the forest's current roots as a freshly allocated slice,
// in order.
func (f *Forest) Roots() []*Node {
	out := make([]*Node, 0, f.numRoots)
	for r := f.firstRoot; r != nil; r = r.next {
		out = append(out, r)
	}
	return out
}

// NumRoots returns the number of roots currently in the forest.
func (f *Forest) NumRoots() int { return f.numRoots }

// AppendRoot makes n the new last root of the forest. n must be detached.
func (f *Forest) AppendRoot(n *Node) {
	n.parent = nil
	n.prev = f.lastRoot
	n.next = nil
	if f.lastRoot != nil {
		f.lastRoot.next = n
	} else {
		f.firstRoot = n
	}
	f.lastRoot = n
	f.numRoots++
}

// PrependRoot makes n the new first root of the forest. n must be detached.
func (f *Forest) PrependRoot(n *Node) {
	n.parent = nil
	n.next = f.firstRoot
	n.prev = nil
	if f.firstRoot != nil {
		f.firstRoot.prev = n
	} else {
		f.lastRoot = n
	}
	f.firstRoot = n
	f.numRoots++
}

// AppendChild makes child the new last child of parent. child must be
// detached. O(1).
func (parent *Node) AppendChild(child *Node) {
	child.parent = parent
	child.prev = parent.lastChild
	child.next = nil
	if parent.lastChild != nil {
		parent.lastChild.next = child
	} else {
		parent.firstChild = child
	}
	parent.lastChild = child
	parent.numChildren++
}

// PrependChild makes child the new first child of parent. child must be
// detached. O(1).
func (parent *Node) PrependChild(child *Node) {
	child.parent = parent
	child.next = parent.firstChild
	child.prev = nil
	if parent.firstChild != nil {
		parent.firstChild.prev = child
	} else {
		parent.lastChild = child
	}
	parent.firstChild = child
	parent.numChildren++
}

// Detach removes n from wherever it currently sits — its parent's child
// list, or its forest's root list — in O(1). Afterward n.Parent() is nil
// and n has no siblings; the caller decides where to re-attach it, if
// anywhere.
func (n *Node) Detach() {
	if n.parent != nil {
		p := n.parent
		if n.prev != nil {
			n.prev.next = n.next
		} else {
			p.firstChild = n.next
		}
		if n.next != nil {
			n.next.prev = n.prev
		} else {
			p.lastChild = n.prev
		}
		p.numChildren--
	} else {
		f := n.forest
		if n.prev != nil {
			n.prev.next = n.next
		} else {
			f.firstRoot = n.next
		}
		if n.next != nil {
			n.next.prev = n.prev
		} else {
			f.lastRoot = n.prev
		}
		f.numRoots--
	}
	n.parent = nil
	n.prev = nil
	n.next = nil
}

// ReplaceWithSiblings detaches old and splices replacements into old's
// former position, in order, as siblings of whatever old's former siblings
// were (children of old's former parent, or roots of the forest if old was
// a root). Each element of replacements must already be detached. This is
// the primitive behind both the refinement engine's split step and its
// promote step: split replaces a node with two new group siblings, promote
// replaces a node with its own (now-detached) children.
func ReplaceWithSiblings(old *Node, replacements []*Node) {
	parent := old.parent
	before := old.prev
	old.Detach()
	at := before
	if parent != nil {
		for _, r := range replacements {
			if at == nil {
				parent.PrependChild(r)
			} else {
				insertChildAfter(parent, at, r)
			}
			at = r
		}
	} else {
		f := old.forest
		for _, r := range replacements {
			if at == nil {
				f.PrependRoot(r)
			} else {
				insertRootAfter(f, at, r)
			}
			at = r
		}
	}
}

// insertChildAfter inserts detached node n as a child of parent immediately
// after anchor, which must already be one of parent's children.
func insertChildAfter(parent *Node, anchor, n *Node) {
	n.parent = parent
	n.prev = anchor
	n.next = anchor.next
	if anchor.next != nil {
		anchor.next.prev = n
	} else {
		parent.lastChild = n
	}
	anchor.next = n
	parent.numChildren++
}

// insertRootAfter inserts detached node n as a root of f immediately after
// anchor, which must already be one of f's roots.
func insertRootAfter(f *Forest, anchor, n *Node) {
	n.parent = nil
	n.prev = anchor
	n.next = anchor.next
	if anchor.next != nil {
		anchor.next.prev = n
	} else {
		f.lastRoot = n
	}
	anchor.next = n
	f.numRoots++
}

// Promote removes n and splices its children into n's former position
// among its own former siblings: its children become siblings of it and it
// is removed, unless the node is a root, in which case its children become
// new roots at its former position.
func Promote(n *Node) {
	children := n.Children()
	for _, c := range children {
		c.Detach()
	}
	ReplaceWithSiblings(n, children)
}
