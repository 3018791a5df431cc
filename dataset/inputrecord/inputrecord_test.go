package inputrecord

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jayelm/decisiontrees/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRequester struct {
	requests   []string
	rejections []string
}

func (rr *recordingRequester) RequestValueFor(attribute string, values []string) error {
	rr.requests = append(rr.requests, attribute)
	return nil
}

func (rr *recordingRequester) RejectValueFor(attribute string, values []string, value string) error {
	rr.rejections = append(rr.rejections, fmt.Sprintf("%s=%s", attribute, value))
	return nil
}

func testAttributes() []dataset.Attribute {
	return []dataset.Attribute{
		{Name: "Weather", Values: []string{"Sunny", "Rainy"}},
		{Name: "Comment"},
	}
}

func TestValueFor(t *testing.T) {
	ctx := context.Background()
	requester := &recordingRequester{}
	r := New(strings.NewReader("Sunny\nanything goes\n"), testAttributes(), requester)

	assert.Equal(t, []string{"Weather", "Comment"}, r.Attributes())

	v, err := r.ValueFor(ctx, "Weather")
	require.NoError(t, err)
	assert.Equal(t, "Sunny", v)

	// Free-form attributes admit any line.
	v, err = r.ValueFor(ctx, "Comment")
	require.NoError(t, err)
	assert.Equal(t, "anything goes", v)

	// Obtained values are cached, so the reader is not consulted again.
	v, err = r.ValueFor(ctx, "Weather")
	require.NoError(t, err)
	assert.Equal(t, "Sunny", v)
	assert.Equal(t, []string{"Weather", "Comment"}, requester.requests)
	assert.Empty(t, requester.rejections)
}

func TestValueForRejectsInadmissibleLines(t *testing.T) {
	requester := &recordingRequester{}
	r := New(strings.NewReader("Cloudy\nRainy\n"), testAttributes(), requester)

	v, err := r.ValueFor(context.Background(), "Weather")
	require.NoError(t, err)
	assert.Equal(t, "Rainy", v)
	assert.Equal(t, []string{"Weather=Cloudy"}, requester.rejections)
}

func TestValueForUnknownAttribute(t *testing.T) {
	r := New(strings.NewReader(""), testAttributes(), &recordingRequester{})
	_, err := r.ValueFor(context.Background(), "Humidity")
	var se *dataset.SchemaError
	require.ErrorAs(t, err, &se)
}

func TestValueForExhaustedInput(t *testing.T) {
	r := New(strings.NewReader(""), testAttributes(), &recordingRequester{})
	_, err := r.ValueFor(context.Background(), "Weather")
	assert.Equal(t, io.EOF, err)
}
