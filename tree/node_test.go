package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeStructure(t *testing.T) {
	root := testTree().Root

	assert.Equal(t, 2, root.Depth())
	assert.Equal(t, 3, root.LeafCount())
	assert.Equal(t, []string{"A", "B"}, root.AttributesUsed())

	leaf := &Node{Label: "yes", Leaf: true}
	assert.Equal(t, 0, leaf.Depth())
	assert.Equal(t, 1, leaf.LeafCount())
	assert.Nil(t, leaf.AttributesUsed())
}

func TestRules(t *testing.T) {
	rules := testTree().Root.Rules()
	require.Len(t, rules, 3)

	// Shorter paths first, then lexicographic by value sequence.
	assert.Equal(t, "A=a1 -> yes", rules[0].String())
	assert.Equal(t, "A=a2, B=b1 -> no", rules[1].String())
	assert.Equal(t, "A=a2, B=b2 -> yes", rules[2].String())

	assert.False(t, rules[0].Estimated)
	assert.False(t, rules[1].Estimated)
	assert.True(t, rules[2].Estimated)

	assert.Equal(t, []Condition{
		{Attribute: "A", Value: "a2"},
		{Attribute: "B", Value: "b1"},
	}, rules[1].Conditions)
}

func TestRulesOfLeaf(t *testing.T) {
	rules := (&Node{Label: "yes", Leaf: true}).Rules()
	require.Len(t, rules, 1)
	assert.Empty(t, rules[0].Conditions)
	assert.Equal(t, "yes", rules[0].Label)
}
