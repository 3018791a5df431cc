package tree

/*
Node is a node of a decision tree: either a decision node splitting on
an attribute, with one child per value in the attribute's domain, or a
leaf carrying a predicted class value.

Nodes are created bottom-up during induction and owned exclusively by
their parent. A finished tree is never mutated.
*/
type Node struct {
	// For decision nodes the name of the attribute split on, for
	// leaves the predicted value of the dependent attribute.
	Label string
	// Whether the node is a leaf.
	Leaf bool
	// The value of the parent's split attribute that leads to this
	// node. Empty for the root.
	ParentValue string
	// The nodes directly under this node, one per value in the
	// domain of the split attribute. Empty for leaves.
	Children []*Node
	// Auxiliary values recorded during induction.
	Diagnostics Diagnostics
}

/*
Diagnostics holds auxiliary values recorded on a node during
induction.
*/
type Diagnostics struct {
	// Gain is the score the split on this node's attribute achieved
	// over the node's training subset. Only meaningful on decision
	// nodes.
	Gain float64
	// Estimated marks a leaf whose label was assigned by majority
	// vote, over the node's own subset when no attributes remained
	// or over the parent's subset when the node's subset was empty,
	// rather than derived from a pure subset.
	Estimated bool
}

/*
AddChild appends the given node to the children of this node. It
performs no uniqueness check: callers must guarantee that the
ParentValue of every sibling is unique.
*/
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

/*
Depth returns the number of decision levels between this node and its
deepest leaf. A leaf has depth 0.
*/
func (n *Node) Depth() int {
	if n.Leaf {
		return 0
	}
	var max int
	for _, c := range n.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

/*
LeafCount returns the total number of leaves in the subtree rooted at
this node, 1 for a leaf.
*/
func (n *Node) LeafCount() int {
	if n.Leaf {
		return 1
	}
	var count int
	for _, c := range n.Children {
		count += c.LeafCount()
	}
	return count
}

/*
AttributesUsed returns the attribute names appearing as decision-node
labels in the subtree rooted at this node, in preorder. An attribute
may appear more than once when used on separate branches.
*/
func (n *Node) AttributesUsed() []string {
	if n.Leaf {
		return nil
	}
	used := []string{n.Label}
	for _, c := range n.Children {
		used = append(used, c.AttributesUsed()...)
	}
	return used
}
