package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords(rows []map[string]string) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, NewRecord(row))
	}
	return records
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("builds domains in first-encounter order", func(t *testing.T) {
		ds, err := New(ctx, []string{"Weather", "PlayTennis"}, testRecords([]map[string]string{
			{"Weather": "Rainy", "PlayTennis": "No"},
			{"Weather": "Sunny", "PlayTennis": "Yes"},
			{"Weather": "Rainy", "PlayTennis": "Yes"},
			{"Weather": "Cloudy", "PlayTennis": "Yes"},
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"Weather", "PlayTennis"}, ds.Schema())
		assert.Equal(t, 4, ds.Count())
		assert.Equal(t, []string{"Rainy", "Sunny", "Cloudy"}, ds.Domain("Weather"))
		assert.Equal(t, []string{"No", "Yes"}, ds.Domain("PlayTennis"))
		assert.Nil(t, ds.Domain("Humidity"))
	})

	t.Run("rejects records straying from the schema", func(t *testing.T) {
		_, err := New(ctx, []string{"Weather", "PlayTennis"}, testRecords([]map[string]string{
			{"Weather": "Sunny", "PlayTennis": "Yes"},
			{"Weather": "Rainy"},
		}))
		var se *SchemaError
		require.ErrorAs(t, err, &se)

		_, err = New(ctx, []string{"Weather", "PlayTennis"}, testRecords([]map[string]string{
			{"Weather": "Sunny", "Humidity": "High"},
		}))
		require.ErrorAs(t, err, &se)
	})

	t.Run("empty dataset", func(t *testing.T) {
		ds, err := New(ctx, []string{"Weather", "PlayTennis"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, ds.Count())
		assert.Nil(t, ds.Domain("Weather"))
	})
}

func TestIndependentAttributes(t *testing.T) {
	ds, err := New(context.Background(), []string{"A", "B", "C"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ds.IndependentAttributes("C"))
	assert.Equal(t, []string{"A", "C"}, ds.IndependentAttributes("B"))
	assert.Equal(t, []string{"A", "B", "C"}, ds.IndependentAttributes("D"))
}

func TestCountValues(t *testing.T) {
	ctx := context.Background()
	records := testRecords([]map[string]string{
		{"Class": "no"},
		{"Class": "yes"},
		{"Class": "yes"},
		{"Class": "no"},
		{"Class": "maybe"},
	})

	vc, err := CountValues(ctx, records, "Class")
	require.NoError(t, err)
	assert.Equal(t, []string{"no", "yes", "maybe"}, vc.Values())
	assert.Equal(t, 2, vc.Count("yes"))
	assert.Equal(t, 0, vc.Count("never"))
	assert.Equal(t, 3, vc.Distinct())
	assert.Equal(t, 5, vc.Total())

	// yes and no tie at 2: the first-encountered value wins.
	assert.Equal(t, "no", vc.Majority())

	_, err = CountValues(ctx, records, "Weather")
	var se *SchemaError
	require.ErrorAs(t, err, &se)
}

func TestFilter(t *testing.T) {
	ctx := context.Background()
	records := testRecords([]map[string]string{
		{"Weather": "Sunny", "PlayTennis": "Yes"},
		{"Weather": "Rainy", "PlayTennis": "No"},
		{"Weather": "Sunny", "PlayTennis": "No"},
	})

	sunny, err := Filter(ctx, records, "Weather", "Sunny")
	require.NoError(t, err)
	require.Len(t, sunny, 2)
	for _, r := range sunny {
		v, err := r.ValueFor(ctx, "Weather")
		require.NoError(t, err)
		assert.Equal(t, "Sunny", v)
	}

	cloudy, err := Filter(ctx, records, "Weather", "Cloudy")
	require.NoError(t, err)
	assert.Empty(t, cloudy)
}

func TestRecord(t *testing.T) {
	ctx := context.Background()
	r := NewRecord(map[string]string{"B": "2", "A": "1"})

	assert.Equal(t, []string{"A", "B"}, r.Attributes())

	v, err := r.ValueFor(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	_, err = r.ValueFor(ctx, "C")
	var se *SchemaError
	require.ErrorAs(t, err, &se)
}
