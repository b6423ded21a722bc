package anonymizer

import (
	"strings"

	"github.com/artie-labs/anonymize/lib/maputil"
	"github.com/artie-labs/anonymize/models"
)

// keySeparator sorts below every printable character, so joined keys sort the same way as the tuple.
const keySeparator = "\x1f"

type GroupKey struct {
	Gender           string
	AirportContinent string
	DepartureDate    string
}

type Group struct {
	Key   GroupKey
	Count int
}

// Groups are the equivalence classes of the quasi-identifier triple, sorted by key.
type Groups []Group

func (g Groups) Len() int {
	return len(g)
}

// Undersized returns how many groups have fewer than [k] records.
func (g Groups) Undersized(k int) int {
	var count int
	for _, group := range g {
		if group.Count < k {
			count++
		}
	}

	return count
}

// Smallest returns the size of the smallest group, or 0 if there are none.
func (g Groups) Smallest() int {
	var smallest int
	for i, group := range g {
		if i == 0 || group.Count < smallest {
			smallest = group.Count
		}
	}

	return smallest
}

func quasiIdentifierValues(record *models.Record) GroupKey {
	gender, _ := record.Get(GenderColumn)
	continent, _ := record.Get(AirportContinentColumn)
	date, _ := record.Get(DepartureDateColumn)
	return GroupKey{Gender: gender, AirportContinent: continent, DepartureDate: date}
}

// Groups partitions the current dataset by the quasi-identifier triple.
func (e *Engine) Groups() Groups {
	groups := maputil.NewSortedStringsMap[*Group]()
	for _, record := range e.dataset.Records() {
		key := quasiIdentifierValues(record)
		encoded := strings.Join([]string{key.Gender, key.AirportContinent, key.DepartureDate}, keySeparator)
		if group, ok := groups.Get(encoded); ok {
			group.Count++
		} else {
			groups.Add(encoded, &Group{Key: key, Count: 1})
		}
	}

	result := make(Groups, 0, groups.Len())
	for _, group := range groups.All() {
		result = append(result, *group)
	}

	return result
}
