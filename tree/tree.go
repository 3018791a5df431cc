/*
Package tree defines the decision-tree model produced by induction:
recursive nodes, decisions over records, rule extraction and
structural queries.
*/
package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/jayelm/decisiontrees/dataset"
)

/*
DecisionError is the error returned by Decide when a record carries a
value for a decision attribute that was never observed during
training, so no child matches it.
*/
type DecisionError struct {
	// Attribute is the decision attribute being evaluated.
	Attribute string
	// Value is the unrecognized value the record carried.
	Value string
}

func (e *DecisionError) Error() string {
	return fmt.Sprintf("unrecognized value %q for attribute %q", e.Value, e.Attribute)
}

/*
Tree represents a trained decision tree: its root node, the attribute
order fixed when the root was built, and the name of the dependent
attribute it predicts.

A tree is read-only after construction and safe for concurrent use.
*/
type Tree struct {
	Root *Node
	// AttributeOrder is the ordered list of independent attributes
	// of the training dataset at the moment the tree was grown.
	// Decisions follow exactly this order.
	AttributeOrder []string
	// Label is the name of the dependent attribute the tree
	// predicts.
	Label string
}

// New returns a tree with the given root, attribute order and
// dependent attribute name.
func New(root *Node, attributeOrder []string, label string) *Tree {
	return &Tree{Root: root, AttributeOrder: attributeOrder, Label: label}
}

/*
Decide takes a record and returns the class value the tree predicts
for it.

It returns a *dataset.SchemaError if the record's attribute set does
not cover the tree's attribute order or defines attributes the tree
knows nothing about, and a *DecisionError if a decision attribute has
a value on the record that was never seen during training.
*/
func (t *Tree) Decide(ctx context.Context, r dataset.Record) (string, error) {
	if t == nil || t.Root == nil {
		return "", fmt.Errorf("nil tree cannot decide records")
	}
	if err := t.checkSchema(r); err != nil {
		return "", err
	}
	n := t.Root
	for !n.Leaf {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		v, err := r.ValueFor(ctx, n.Label)
		if err != nil {
			return "", err
		}
		var next *Node
		for _, c := range n.Children {
			if c.ParentValue == v {
				next = c
				break
			}
		}
		if next == nil {
			return "", &DecisionError{Attribute: n.Label, Value: v}
		}
		n = next
	}
	return n.Label, nil
}

func (t *Tree) checkSchema(r dataset.Record) error {
	defined := make(map[string]bool, len(r.Attributes()))
	for _, a := range r.Attributes() {
		if a != t.Label && !t.knowsAttribute(a) {
			return dataset.NewSchemaError("record attribute %q is not part of the tree's attribute order", a)
		}
		defined[a] = true
	}
	for _, a := range t.AttributeOrder {
		if !defined[a] {
			return dataset.NewSchemaError("record defines no value for attribute %q", a)
		}
	}
	return nil
}

func (t *Tree) knowsAttribute(name string) bool {
	for _, a := range t.AttributeOrder {
		if a == name {
			return true
		}
	}
	return false
}

/*
Test takes a dataset sharing the training schema and returns the
success rate of the tree's decisions against the dataset's actual
dependent values, along with the number of records the tree could not
classify because of DecisionErrors. Any other error aborts the run.
*/
func (t *Tree) Test(ctx context.Context, ds *dataset.Dataset) (float64, int, error) {
	records := ds.Records()
	if len(records) == 0 {
		return 0.0, 0, fmt.Errorf("cannot test against an empty dataset")
	}
	var hits float64
	var errCount int
	for _, r := range records {
		predicted, err := t.Decide(ctx, r)
		if err != nil {
			if _, ok := err.(*DecisionError); !ok {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		actual, err := r.ValueFor(ctx, t.Label)
		if err != nil {
			return 0.0, 0, err
		}
		if predicted == actual {
			hits += 1.0
		}
	}
	return hits / float64(len(records)), errCount, nil
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return "(empty tree)"
	}
	return subtreeString(t.Root)
}

func subtreeString(n *Node) string {
	var label string
	if n.Leaf {
		label = fmt.Sprintf("-> %s", n.Label)
		if n.Diagnostics.Estimated {
			label += " (estimated)"
		}
	} else {
		label = fmt.Sprintf("[%s]", n.Label)
	}
	if n.ParentValue != "" {
		label = fmt.Sprintf("(%s) %s", n.ParentValue, label)
	}
	result := label + "\n"
	for i, c := range n.Children {
		for j, line := range strings.Split(subtreeString(c), "\n") {
			if len(line) == 0 {
				continue
			}
			if j == 0 {
				result = fmt.Sprintf("%s|__%s\n", result, line)
			} else if i == len(n.Children)-1 {
				result = fmt.Sprintf("%s   %s\n", result, line)
			} else {
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
