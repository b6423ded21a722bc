package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap(t *testing.T) {
	{
		// Case sensitive
		om := NewOrderedMap[string](true)
		om.Add("Gender", "F")
		om.Add("gender", "M")
		om.Add("Departure Date", "6/28/2022")
		assert.Equal(t, []string{"Gender", "gender", "Departure Date"}, om.Keys())

		value, ok := om.Get("Gender")
		assert.True(t, ok)
		assert.Equal(t, "F", value)

		// Overwriting should keep the position.
		om.Add("Gender", "Female")
		assert.Equal(t, []string{"Gender", "gender", "Departure Date"}, om.Keys())
		value, _ = om.Get("Gender")
		assert.Equal(t, "Female", value)

		assert.True(t, om.Remove("gender"))
		assert.False(t, om.Remove("gender"))
		assert.Equal(t, 2, om.Len())
	}
	{
		// Case insensitive
		om := NewOrderedMap[int](false)
		om.Add("Foo", 1)
		om.Add("FOO", 2)
		assert.Equal(t, []string{"foo"}, om.Keys())
		value, ok := om.Get("fOo")
		assert.True(t, ok)
		assert.Equal(t, 2, value)
	}
}

func TestOrderedMap_Clone(t *testing.T) {
	om := NewOrderedMap[string](true)
	om.Add("a", "1")
	om.Add("b", "2")

	cloned := om.Clone()
	cloned.Add("a", "changed")
	cloned.Remove("b")

	value, _ := om.Get("a")
	assert.Equal(t, "1", value)
	assert.Equal(t, []string{"a", "b"}, om.Keys())
	assert.Equal(t, []string{"a"}, cloned.Keys())
}

func TestOrderedMap_All(t *testing.T) {
	om := NewOrderedMap[int](true)
	om.Add("c", 3)
	om.Add("a", 1)
	om.Add("b", 2)

	var keys []string
	var values []int
	for key, value := range om.All() {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal(t, []string{"c", "a", "b"}, keys)
	assert.Equal(t, []int{3, 1, 2}, values)

	// Breaking early should stop the iterator.
	var count int
	for range om.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
