package anonymizer

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/anonymize/lib/config/constants"
)

func costsText(costs []*apd.Decimal) []string {
	var texts []string
	for _, cost := range costs {
		texts = append(texts, cost.Text('f'))
	}
	return texts
}

func TestNewGroupMerger(t *testing.T) {
	_, err := NewGroupMerger("galaxy")
	assert.ErrorContains(t, err, `unsupported merge scope: "galaxy"`)
}

func TestGroupMerger_Global(t *testing.T) {
	merger, err := NewGroupMerger(constants.GlobalScope)
	assert.NoError(t, err)

	{
		// Jan + Feb reach k together, Mar is fine on its own.
		result, err := merger.Merge([]DateGroup{{"2021-01", 2}, {"2021-02", 1}, {"2021-03", 5}}, 3)
		assert.NoError(t, err)
		assert.Equal(t, []string{"1/2021-2/2021", "1/2021-2/2021", "3/2021"}, result.Labels)
		assert.Equal(t, []string{"0.001"}, costsText(result.Costs))
		assert.False(t, result.Absorbed)
	}
	{
		// Crossing a year only counts the month distance.
		result, err := merger.Merge([]DateGroup{{"2021-12", 1}, {"2022-01", 1}}, 2)
		assert.NoError(t, err)
		assert.Equal(t, []string{"12/2021-1/2022", "12/2021-1/2022"}, result.Labels)
		assert.Equal(t, []string{"0.011"}, costsText(result.Costs))
	}
	{
		// Trailing short month is folded into the month before it, even if that month was fine.
		result, err := merger.Merge([]DateGroup{{"2021-01", 5}, {"2021-02", 1}}, 3)
		assert.NoError(t, err)
		assert.Equal(t, []string{"1/2021-2/2021", "1/2021-2/2021"}, result.Labels)
		assert.Equal(t, []string{"0.001"}, costsText(result.Costs))
		assert.True(t, result.Absorbed)
	}
	{
		// Every group already satisfies k.
		result, err := merger.Merge([]DateGroup{{"2021-01", 3}, {"2021-11", 4}}, 3)
		assert.NoError(t, err)
		assert.Equal(t, []string{"1/2021", "11/2021"}, result.Labels)
		assert.Empty(t, result.Costs)
	}
	{
		// Not enough records in the whole bucket.
		result, err := merger.Merge([]DateGroup{{"2021-01", 1}, {"2021-04", 1}}, 5)
		assert.NoError(t, err)
		assert.Equal(t, []string{"1/2021-4/2021", "1/2021-4/2021"}, result.Labels)
		assert.Equal(t, []string{"0.003"}, costsText(result.Costs))
		assert.False(t, result.Absorbed)
	}
	{
		_, err := merger.Merge([]DateGroup{{"January", 1}}, 5)
		assert.Error(t, err)
	}
}

func TestGroupMerger_Bucket(t *testing.T) {
	merger, err := NewGroupMerger(constants.BucketScope)
	assert.NoError(t, err)

	{
		result, err := merger.Merge([]DateGroup{{"2021-01", 2}, {"2021-02", 3}, {"2021-03", 1}}, 5)
		assert.NoError(t, err)
		assert.Equal(t, []string{"2021-01--2021-03", "2021-01--2021-03", "2021-01--2021-03"}, result.Labels)
		assert.Equal(t, []string{"0.0005", "0.0006"}, costsText(result.Costs))
		assert.True(t, result.Absorbed)
	}
	{
		// Only the preceding run is revised, earlier runs keep their labels.
		result, err := merger.Merge([]DateGroup{{"2021-01", 4}, {"2021-02", 1}, {"2021-03", 3}, {"2021-04", 1}}, 3)
		assert.NoError(t, err)
		assert.Equal(t, []string{"2021-01", "2021-02--2021-04", "2021-02--2021-04", "2021-02--2021-04"}, result.Labels)
		assert.Equal(t, []string{"0.0004", "0.0005"}, costsText(result.Costs))
	}
	{
		result, err := merger.Merge([]DateGroup{{"2021-01", 1}, {"2021-02", 1}, {"2021-03", 1}, {"2021-04", 1}}, 2)
		assert.NoError(t, err)
		assert.Equal(t, []string{"2021-01--2021-02", "2021-01--2021-02", "2021-03--2021-04", "2021-03--2021-04"}, result.Labels)
		assert.Equal(t, []string{"0.0002", "0.0002"}, costsText(result.Costs))
		assert.False(t, result.Absorbed)
	}
	{
		result, err := merger.Merge(nil, 2)
		assert.NoError(t, err)
		assert.Empty(t, result.Labels)
	}
}
