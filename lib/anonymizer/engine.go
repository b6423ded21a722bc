package anonymizer

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/apd/v3"

	"github.com/artie-labs/anonymize/lib/config/constants"
	"github.com/artie-labs/anonymize/lib/utility"
	"github.com/artie-labs/anonymize/models"
)

var (
	// suppressionCostPerColumn is charged for every column requested, present or not.
	suppressionCostPerColumn = apd.New(1, -2)
	level1Cost               = apd.New(5, -2)
)

type Args struct {
	Scope constants.MergeScope
	// Parallelism bounds how many buckets are merged at once, it only applies to [constants.BucketScope].
	Parallelism int
}

// Engine owns a dataset and anonymizes it in place. It is single use: once it has anonymized, it cannot be rerun.
type Engine struct {
	dataset     *models.Dataset
	ledger      *utility.Ledger
	state       State
	scope       constants.MergeScope
	parallelism int

	removedColumns []string
	mergeEvents    int
}

func NewEngine(dataset *models.Dataset, args Args) *Engine {
	scope := args.Scope
	if scope == "" {
		scope = constants.GlobalScope
	}

	return &Engine{
		dataset:     dataset,
		ledger:      utility.NewLedger(),
		state:       Raw,
		scope:       scope,
		parallelism: max(args.Parallelism, 1),
	}
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Scope() constants.MergeScope {
	return e.scope
}

// RemovedColumns are the columns that suppression actually dropped.
func (e *Engine) RemovedColumns() []string {
	return e.removedColumns
}

func (e *Engine) MergeEvents() int {
	return e.mergeEvents
}

// MeasureUtility returns the remaining utility rounded to two decimal places.
func (e *Engine) MeasureUtility() float64 {
	return e.ledger.Read()
}

func (e *Engine) ExactUtility() string {
	return e.ledger.Exact()
}

func (e *Engine) ExportDataset() (*models.Dataset, error) {
	if e.state == Raw {
		return nil, NotAnonymizedError{}
	}

	return e.dataset, nil
}

func (e *Engine) validateColumns() error {
	var missing []string
	for _, column := range QuasiIdentifiers {
		if !e.dataset.HasColumn(column) {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return MissingColumnError{Columns: missing}
	}

	return nil
}

func (e *Engine) SuppressAttributes(columns []string) error {
	if err := e.requireState("suppress attributes", Raw, Suppressed); err != nil {
		return err
	}

	cost := apd.New(int64(len(columns)), suppressionCostPerColumn.Exponent)
	if err := e.ledger.Debit(cost); err != nil {
		return err
	}

	removed := e.dataset.DropColumns(columns...)
	e.removedColumns = append(e.removedColumns, removed...)
	e.state = Suppressed
	slog.Debug("Suppressed columns",
		slog.Any("requested", columns),
		slog.Any("removed", removed),
		slog.String("cost", cost.Text('f')),
	)
	return nil
}

// Anonymize suppresses the identifying columns, generalizes departure dates to months and, if any
// group is still smaller than [k], merges adjacent months until every group reaches [k].
func (e *Engine) Anonymize(k int) error {
	if k <= 0 {
		return InvalidKError{K: k}
	}

	if err := e.validateColumns(); err != nil {
		return err
	}

	if err := e.requireState("anonymize", Raw); err != nil {
		return err
	}

	if err := e.SuppressAttributes(SuppressionSet); err != nil {
		return fmt.Errorf("failed to suppress attributes: %w", err)
	}

	if err := e.GeneralizeDateLevel1(); err != nil {
		return fmt.Errorf("failed to generalize dates: %w", err)
	}

	groups := e.Groups()
	undersized := groups.Undersized(k)
	if undersized == 0 {
		slog.Info("Month generalization satisfies k",
			slog.Int("k", k),
			slog.Int("groups", groups.Len()),
			slog.Int("smallestGroup", groups.Smallest()),
		)
		return nil
	}

	slog.Info("Month generalization does not satisfy k, merging months",
		slog.Int("k", k),
		slog.Int("groups", groups.Len()),
		slog.Int("undersizedGroups", undersized),
		slog.String("scope", string(e.scope)),
	)

	if err := e.GeneralizeDateLevel2(k); err != nil {
		return fmt.Errorf("failed to merge months: %w", err)
	}

	return nil
}
