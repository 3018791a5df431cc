package yaml

import (
	"testing"

	"github.com/jayelm/decisiontrees/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAttributes(t *testing.T) {
	t.Run("declared order is preserved", func(t *testing.T) {
		attributes, err := ReadAttributes([]byte(`
attributes:
  - name: Weather
    values: [Sunny, Rainy]
  - name: Humidity
  - name: PlayTennis
    values: ["Yes", "No"]
`))
		require.NoError(t, err)
		assert.Equal(t, []dataset.Attribute{
			{Name: "Weather", Values: []string{"Sunny", "Rainy"}},
			{Name: "Humidity", Values: []string{}},
			{Name: "PlayTennis", Values: []string{"Yes", "No"}},
		}, attributes)
	})

	t.Run("scalar values become strings", func(t *testing.T) {
		attributes, err := ReadAttributes([]byte(`
attributes:
  - name: Doors
    values: [2, 4]
`))
		require.NoError(t, err)
		require.Len(t, attributes, 1)
		assert.Equal(t, []string{"2", "4"}, attributes[0].Values)
	})

	testCases := []struct {
		name string
		yml  string
	}{
		{"no attributes", "other: thing"},
		{"invalid yaml", "attributes: ["},
		{"nameless attribute", "attributes:\n  - values: [a]"},
		{"duplicate attribute", "attributes:\n  - name: A\n  - name: A"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadAttributes([]byte(tc.yml))
			assert.Error(t, err)
		})
	}
}

func TestReadAttributesFromFile(t *testing.T) {
	_, err := ReadAttributesFromFile("testdata/does-not-exist.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading attributes yml file")
}
