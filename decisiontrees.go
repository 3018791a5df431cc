/*
Package decisiontrees grows classification trees from labeled tabular
training data using greedy, recursive attribute selection, and exposes
the grown trees for decisions and rule extraction through the tree
package.
*/
package decisiontrees

import (
	"context"
	"fmt"

	"github.com/jayelm/decisiontrees/dataset"
	"github.com/jayelm/decisiontrees/tree"
)

/*
EmptyDomainError is the error returned by Grow when an independent
attribute has no observed values, which makes the dataset degenerate:
a split on the attribute could not enumerate any children.
*/
type EmptyDomainError struct {
	Attribute string
}

func (e *EmptyDomainError) Error() string {
	return fmt.Sprintf("attribute %q has no observed values", e.Attribute)
}

/*
Grower grows decision trees using a configurable split-selection
strategy.
*/
type Grower struct {
	// Scorer selects the attribute to split on at every decision
	// node. Defaults to InformationGainScorer.
	Scorer SplitScorer
}

// New returns a Grower using the given SplitScorer, or the
// information-gain scorer if nil is given.
func New(scorer SplitScorer) *Grower {
	if scorer == nil {
		scorer = InformationGainScorer()
	}
	return &Grower{Scorer: scorer}
}

/*
Grow builds a decision tree predicting the given dependent attribute
from the given dataset using the default information-gain strategy.
*/
func Grow(ctx context.Context, ds *dataset.Dataset, dependent string) (*tree.Tree, error) {
	return New(nil).Grow(ctx, ds, dependent)
}

/*
Grow builds a decision tree predicting the given dependent attribute
from the given dataset.

The attribute order of the returned tree is fixed to the dataset's
independent-attribute list at the moment of the call. The dataset is
only read; the returned tree is complete and internally consistent or
the error is non-nil, never both.

Grow returns a *dataset.SchemaError if the dependent attribute is not
part of the dataset's schema, and a *EmptyDomainError if any
independent attribute has no observed values.
*/
func (g *Grower) Grow(ctx context.Context, ds *dataset.Dataset, dependent string) (*tree.Tree, error) {
	if !schemaContains(ds.Schema(), dependent) {
		return nil, dataset.NewSchemaError("dependent attribute %q is not part of the dataset schema", dependent)
	}
	attributeOrder := ds.IndependentAttributes(dependent)
	for _, a := range attributeOrder {
		if len(ds.Domain(a)) == 0 {
			return nil, &EmptyDomainError{Attribute: a}
		}
	}
	scorer := g.Scorer
	if scorer == nil {
		scorer = InformationGainScorer()
	}
	root, err := g.grow(ctx, scorer, ds, ds.Records(), nil, attributeOrder, dependent, "")
	if err != nil {
		return nil, err
	}
	return tree.New(root, attributeOrder, dependent), nil
}

/*
grow develops one node for the given subset: a leaf when the subset is
empty, pure, or no unused attributes remain, and a decision node with
one child per domain value of the best-scoring attribute otherwise.
parent is the subset of the caller, used to label the leaves of empty
branches.
*/
func (g *Grower) grow(ctx context.Context, scorer SplitScorer, ds *dataset.Dataset, subset, parent []dataset.Record, unused []string, dependent, parentValue string) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(subset) == 0 {
		// A domain value the full dataset knows but this branch's
		// filtered rows lack. Label from the parent's subset.
		counts, err := dataset.CountValues(ctx, parent, dependent)
		if err != nil {
			return nil, err
		}
		return estimatedLeaf(counts, parentValue), nil
	}
	counts, err := dataset.CountValues(ctx, subset, dependent)
	if err != nil {
		return nil, err
	}
	if counts.Distinct() == 1 {
		return &tree.Node{
			Label:       counts.Values()[0],
			Leaf:        true,
			ParentValue: parentValue,
		}, nil
	}
	if len(unused) == 0 {
		return estimatedLeaf(counts, parentValue), nil
	}

	// Ties, including the all-zero-gain case, go to the attribute
	// appearing first in attribute order.
	var best string
	var bestGain float64
	bestIndex := -1
	for i, a := range unused {
		gain, err := scorer.Score(ctx, ds, subset, a, dependent)
		if err != nil {
			return nil, err
		}
		if bestIndex < 0 || gain > bestGain {
			best = a
			bestGain = gain
			bestIndex = i
		}
	}
	node := &tree.Node{
		Label:       best,
		ParentValue: parentValue,
		Diagnostics: tree.Diagnostics{Gain: bestGain},
	}
	remaining := make([]string, 0, len(unused)-1)
	for i, a := range unused {
		if i != bestIndex {
			remaining = append(remaining, a)
		}
	}
	for _, v := range ds.Domain(best) {
		filtered, err := dataset.Filter(ctx, subset, best, v)
		if err != nil {
			return nil, err
		}
		child, err := g.grow(ctx, scorer, ds, filtered, subset, remaining, dependent, v)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}

func estimatedLeaf(counts *dataset.ValueCounts, parentValue string) *tree.Node {
	return &tree.Node{
		Label:       counts.Majority(),
		Leaf:        true,
		ParentValue: parentValue,
		Diagnostics: tree.Diagnostics{Estimated: true},
	}
}

func schemaContains(schema []string, attribute string) bool {
	for _, a := range schema {
		if a == attribute {
			return true
		}
	}
	return false
}
