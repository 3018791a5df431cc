package decisiontrees

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	ctx := context.Background()
	ds := newDataset(t, []string{"A", "Class"}, [][]string{
		{"x", "yes"},
		{"x", "yes"},
		{"y", "yes"},
		{"y", "no"},
	})

	t.Run("mixed subset", func(t *testing.T) {
		// 3 yes, 1 no: -(3/4)log2(3/4) - (1/4)log2(1/4)
		h, err := Entropy(ctx, ds.Records(), "Class")
		require.NoError(t, err)
		assert.InDelta(t, 0.8112781244591328, h, 1e-12)
	})

	t.Run("pure subset", func(t *testing.T) {
		h, err := Entropy(ctx, ds.Records()[:2], "Class")
		require.NoError(t, err)
		assert.Zero(t, h)
	})

	t.Run("even subset", func(t *testing.T) {
		h, err := Entropy(ctx, ds.Records()[2:], "Class")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, h, 1e-12)
	})

	t.Run("empty subset", func(t *testing.T) {
		_, err := Entropy(ctx, nil, "Class")
		assert.Equal(t, ErrEmptySubset, err)
	})
}

func TestInformationGain(t *testing.T) {
	ctx := context.Background()

	t.Run("perfect split", func(t *testing.T) {
		ds := newDataset(t, []string{"A", "Class"}, [][]string{
			{"x", "yes"},
			{"x", "yes"},
			{"y", "no"},
			{"y", "no"},
		})
		g, err := InformationGain(ctx, ds, ds.Records(), "A", "Class")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, g, 1e-12)
	})

	t.Run("distribution preserving split gains nothing", func(t *testing.T) {
		ds := newDataset(t, []string{"A", "Class"}, [][]string{
			{"x", "yes"},
			{"x", "no"},
			{"y", "yes"},
			{"y", "no"},
		})
		g, err := InformationGain(ctx, ds, ds.Records(), "A", "Class")
		require.NoError(t, err)
		assert.InDelta(t, 0.0, g, 1e-12)
	})

	t.Run("never negative", func(t *testing.T) {
		ds := tennisDataset(t)
		for _, a := range ds.IndependentAttributes("PlayTennis") {
			g, err := InformationGain(ctx, ds, ds.Records(), a, "PlayTennis")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, g, 0.0, "attribute %s", a)
		}
	})

	t.Run("empty partitions carry no weight", func(t *testing.T) {
		ds := newDataset(t, []string{"A", "Class"}, [][]string{
			{"x", "yes"},
			{"x", "no"},
			{"y", "yes"},
			{"y", "yes"},
		})
		// Restricting the subset to A=y leaves the A=x partition
		// empty; the gain is still defined over the full domain.
		g, err := InformationGain(ctx, ds, ds.Records()[2:], "A", "Class")
		require.NoError(t, err)
		assert.InDelta(t, 0.0, g, 1e-12)
	})
}

func TestPurityScorer(t *testing.T) {
	ctx := context.Background()
	ds := newDataset(t, []string{"A", "Class"}, [][]string{
		{"x", "yes"},
		{"x", "yes"},
		{"y", "yes"},
		{"y", "no"},
	})
	score, err := PurityScorer().Score(ctx, ds, ds.Records(), "A", "Class")
	require.NoError(t, err)
	// Only the A=x group is pure: 2 of 4 records.
	assert.InDelta(t, 0.5, score, 1e-12)
}
