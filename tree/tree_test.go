package tree

import (
	"context"
	"testing"

	"github.com/jayelm/decisiontrees/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
testTree builds the following tree by hand, predicting Class from the
attribute order [A, B]:

	[A]
	|__(a1) -> yes
	|__(a2) [B]
	   |__(b1) -> no
	   |__(b2) -> yes (estimated)
*/
func testTree() *Tree {
	inner := &Node{Label: "B", ParentValue: "a2"}
	inner.AddChild(&Node{Label: "no", Leaf: true, ParentValue: "b1"})
	inner.AddChild(&Node{
		Label:       "yes",
		Leaf:        true,
		ParentValue: "b2",
		Diagnostics: Diagnostics{Estimated: true},
	})
	root := &Node{Label: "A"}
	root.AddChild(&Node{Label: "yes", Leaf: true, ParentValue: "a1"})
	root.AddChild(inner)
	return New(root, []string{"A", "B"}, "Class")
}

func TestDecide(t *testing.T) {
	ctx := context.Background()
	tr := testTree()

	testCases := []struct {
		name     string
		values   map[string]string
		expected string
	}{
		{"first branch", map[string]string{"A": "a1", "B": "b1"}, "yes"},
		{"nested branch", map[string]string{"A": "a2", "B": "b1"}, "no"},
		{"estimated leaf", map[string]string{"A": "a2", "B": "b2"}, "yes"},
		{"label on record is ignored", map[string]string{"A": "a1", "B": "b2", "Class": "no"}, "yes"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decision, err := tr.Decide(ctx, dataset.NewRecord(tc.values))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, decision)
		})
	}
}

func TestDecideErrors(t *testing.T) {
	ctx := context.Background()
	tr := testTree()

	t.Run("unrecognized value", func(t *testing.T) {
		_, err := tr.Decide(ctx, dataset.NewRecord(map[string]string{"A": "a3", "B": "b1"}))
		var de *DecisionError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "A", de.Attribute)
		assert.Equal(t, "a3", de.Value)
		assert.Equal(t, `unrecognized value "a3" for attribute "A"`, de.Error())
	})

	t.Run("missing attribute", func(t *testing.T) {
		_, err := tr.Decide(ctx, dataset.NewRecord(map[string]string{"A": "a1"}))
		var se *dataset.SchemaError
		require.ErrorAs(t, err, &se)
	})

	t.Run("unknown attribute", func(t *testing.T) {
		_, err := tr.Decide(ctx, dataset.NewRecord(map[string]string{"A": "a1", "B": "b1", "C": "c1"}))
		var se *dataset.SchemaError
		require.ErrorAs(t, err, &se)
	})

	t.Run("nil tree", func(t *testing.T) {
		var tr *Tree
		_, err := tr.Decide(ctx, dataset.NewRecord(map[string]string{"A": "a1"}))
		assert.Error(t, err)
	})
}

func TestTest(t *testing.T) {
	ctx := context.Background()
	tr := testTree()
	schema := []string{"A", "B", "Class"}
	rows := [][]string{
		{"a1", "b1", "yes"},
		{"a2", "b1", "no"},
		{"a2", "b2", "no"},
		{"a3", "b1", "yes"},
	}
	records := make([]dataset.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, dataset.NewRecord(map[string]string{
			"A": row[0], "B": row[1], "Class": row[2],
		}))
	}
	ds, err := dataset.New(ctx, schema, records)
	require.NoError(t, err)

	rate, failed, err := tr.Test(ctx, ds)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rate, 1e-9)
	assert.Equal(t, 1, failed)

	empty, err := dataset.New(ctx, schema, nil)
	require.NoError(t, err)
	_, _, err = tr.Test(ctx, empty)
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	expected := `[A]
|__(a1) -> yes
|__(a2) [B]
   |__(b1) -> no
   |__(b2) -> yes (estimated)
`
	assert.Equal(t, expected, testTree().String())

	var nilTree *Tree
	assert.Equal(t, "(empty tree)", nilTree.String())
}
