package anonymizer

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/sync/errgroup"

	"github.com/artie-labs/anonymize/lib/config/constants"
	"github.com/artie-labs/anonymize/lib/typing/ext"
	"github.com/artie-labs/anonymize/models"
)

// DateGroup is the number of records in a bucket that share one departure date.
type DateGroup struct {
	Value string
	Count int
}

type MergeResult struct {
	// Labels has one generalized label per input group.
	Labels []string
	// Costs has one entry per merge event, in the order they happened.
	Costs []*apd.Decimal
	// Absorbed is true when the trailing run was folded back into the run before it.
	Absorbed bool
}

type run struct {
	start  int
	end    int
	count  int
	merged bool
}

type labelStrategy interface {
	keptLabel(value string) (string, error)
	mergedLabel(start, end string) (string, error)
	cost(start, end string, count int) (*apd.Decimal, error)
}

// monthRangeStrategy labels by month, e.g. 1/2021-2/2021 and charges 0.001 per month of distance.
type monthRangeStrategy struct{}

func (monthRangeStrategy) keptLabel(value string) (string, error) {
	ts, err := ext.ParseMonth(value)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d/%d", int(ts.Month()), ts.Year()), nil
}

func (monthRangeStrategy) mergedLabel(start, end string) (string, error) {
	startTs, err := ext.ParseMonth(start)
	if err != nil {
		return "", err
	}

	endTs, err := ext.ParseMonth(end)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d/%d-%d/%d", int(startTs.Month()), startTs.Year(), int(endTs.Month()), endTs.Year()), nil
}

// cost only looks at the month component, December to January is a distance of 11.
func (monthRangeStrategy) cost(start, end string, _ int) (*apd.Decimal, error) {
	startTs, err := ext.ParseMonth(start)
	if err != nil {
		return nil, err
	}

	endTs, err := ext.ParseMonth(end)
	if err != nil {
		return nil, err
	}

	distance := int(endTs.Month()) - int(startTs.Month())
	if distance < 0 {
		distance = -distance
	}

	return apd.New(int64(distance), -3), nil
}

// dateRangeStrategy labels with the raw values, e.g. 2021-01--2021-02 and charges 0.0001 per record in the run.
type dateRangeStrategy struct{}

func (dateRangeStrategy) keptLabel(value string) (string, error) {
	return value, nil
}

func (dateRangeStrategy) mergedLabel(start, end string) (string, error) {
	return fmt.Sprintf("%s--%s", start, end), nil
}

func (dateRangeStrategy) cost(_, _ string, count int) (*apd.Decimal, error) {
	return apd.New(int64(count), -4), nil
}

// GroupMerger walks date groups in ascending order and merges each undersized group with the ones right after it.
type GroupMerger struct {
	strategy labelStrategy
}

func NewGroupMerger(scope constants.MergeScope) (GroupMerger, error) {
	switch scope {
	case constants.GlobalScope:
		return GroupMerger{strategy: monthRangeStrategy{}}, nil
	case constants.BucketScope:
		return GroupMerger{strategy: dateRangeStrategy{}}, nil
	default:
		return GroupMerger{}, fmt.Errorf("unsupported merge scope: %q", scope)
	}
}

func (g GroupMerger) scan(groups []DateGroup, k int) []run {
	var runs []run
	for i := 0; i < len(groups); i++ {
		if groups[i].Count >= k {
			runs = append(runs, run{start: i, end: i, count: groups[i].Count})
			continue
		}

		current := run{start: i, end: i, count: groups[i].Count, merged: true}
		for current.count < k && current.end+1 < len(groups) {
			current.end++
			current.count += groups[current.end].Count
		}

		runs = append(runs, current)
		i = current.end
	}

	return runs
}

// Merge expects [groups] to be sorted ascending by value. A bucket that cannot reach [k] at all ends up as one run.
func (g GroupMerger) Merge(groups []DateGroup, k int) (MergeResult, error) {
	var result MergeResult
	runs := g.scan(groups, k)

	// Only the trailing run can still be short, if so it's folded into the run before it and never emitted on its own.
	var union *run
	if n := len(runs); n > 1 && runs[n-1].count < k {
		previous, last := runs[n-2], runs[n-1]
		union = &run{start: previous.start, end: last.end, count: previous.count + last.count, merged: true}
		runs = runs[:n-1]
	}

	for _, r := range runs {
		if r.merged {
			cost, err := g.strategy.cost(groups[r.start].Value, groups[r.end].Value, r.count)
			if err != nil {
				return MergeResult{}, err
			}
			result.Costs = append(result.Costs, cost)
		}
	}

	if union != nil {
		cost, err := g.strategy.cost(groups[union.start].Value, groups[union.end].Value, union.count)
		if err != nil {
			return MergeResult{}, err
		}

		result.Costs = append(result.Costs, cost)
		result.Absorbed = true
		runs[len(runs)-1] = *union
	}

	result.Labels = make([]string, len(groups))
	for _, r := range runs {
		var label string
		var err error
		if r.merged {
			label, err = g.strategy.mergedLabel(groups[r.start].Value, groups[r.end].Value)
		} else {
			label, err = g.strategy.keptLabel(groups[r.start].Value)
		}

		if err != nil {
			return MergeResult{}, err
		}

		for i := r.start; i <= r.end; i++ {
			result.Labels[i] = label
		}
	}

	return result, nil
}

type bucket struct {
	gender    string
	continent string
	groups    []DateGroup
}

func compareRecords(a, b *models.Record) int {
	keyA, keyB := quasiIdentifierValues(a), quasiIdentifierValues(b)
	return cmp.Or(
		cmp.Compare(keyA.Gender, keyB.Gender),
		cmp.Compare(keyA.AirportContinent, keyB.AirportContinent),
		cmp.Compare(keyA.DepartureDate, keyB.DepartureDate),
	)
}

// buildBuckets expects the records to be sorted with [compareRecords].
func buildBuckets(records []*models.Record) []bucket {
	var buckets []bucket
	for _, record := range records {
		key := quasiIdentifierValues(record)
		if n := len(buckets); n == 0 || buckets[n-1].gender != key.Gender || buckets[n-1].continent != key.AirportContinent {
			buckets = append(buckets, bucket{gender: key.Gender, continent: key.AirportContinent})
		}

		current := &buckets[len(buckets)-1]
		if n := len(current.groups); n > 0 && current.groups[n-1].Value == key.DepartureDate {
			current.groups[n-1].Count++
		} else {
			current.groups = append(current.groups, DateGroup{Value: key.DepartureDate, Count: 1})
		}
	}

	return buckets
}

// GeneralizeDateLevel2 merges adjacent months within each (gender, continent) bucket until every group has at least [k] records.
// The dataset is re-sorted by the quasi-identifiers and labels are written back positionally in scan order.
func (e *Engine) GeneralizeDateLevel2(k int) error {
	if k <= 0 {
		return InvalidKError{K: k}
	}

	if err := e.requireState("merge months", Level1Generalized); err != nil {
		return err
	}

	merger, err := NewGroupMerger(e.scope)
	if err != nil {
		return err
	}

	e.dataset.SortStableFunc(compareRecords)
	records := e.dataset.Records()
	buckets := buildBuckets(records)

	limit := 1
	if e.scope == constants.BucketScope {
		limit = e.parallelism
	}

	results := make([]MergeResult, len(buckets))
	var group errgroup.Group
	group.SetLimit(limit)
	for i, b := range buckets {
		group.Go(func() error {
			result, err := merger.Merge(b.groups, k)
			if err != nil {
				return fmt.Errorf("failed to merge bucket (%s, %s): %w", b.gender, b.continent, err)
			}

			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	labels := make([]string, 0, len(records))
	var absorbed int
	for i, b := range buckets {
		for j, dateGroup := range b.groups {
			for range dateGroup.Count {
				labels = append(labels, results[i].Labels[j])
			}
		}

		if results[i].Absorbed {
			absorbed++
		}
	}

	if len(labels) != len(records) {
		return fmt.Errorf("generated %d labels for %d records", len(labels), len(records))
	}

	for _, result := range results {
		for _, cost := range result.Costs {
			if err := e.ledger.Debit(cost); err != nil {
				return err
			}
			e.mergeEvents++
		}
	}

	for i, record := range records {
		record.Set(DepartureDateColumn, labels[i])
	}

	e.state = Level2Generalized
	slog.Info("Merged months",
		slog.Int("buckets", len(buckets)),
		slog.Int("mergeEvents", e.mergeEvents),
		slog.Int("absorbedTrailingRuns", absorbed),
		slog.String("utility", e.ledger.Exact()),
	)
	return nil
}
