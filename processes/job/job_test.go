package job

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/artie-labs/anonymize/lib/anonymizer"
	"github.com/artie-labs/anonymize/lib/config/constants"
	"github.com/artie-labs/anonymize/models"
)

func (j *JobTestSuite) newDataset(dates ...string) *models.Dataset {
	dataset, err := models.NewDataset([]string{"Passenger ID", "First Name", "Gender", "Airport Continent", "Departure Date", "Flight Status"})
	j.Require().NoError(err)
	for i, date := range dates {
		j.Require().NoError(dataset.AddRow([]string{fmt.Sprint(i), "Edithe", "Male", "Europe", date, "On Time"}))
	}
	return dataset
}

func (j *JobTestSuite) TestRun() {
	j.source.LoadReturns(j.newDataset("2021-03-14", "2021-03-14", "2021-03-14", "2021-03-14", "2021-03-14", "2021-01-02", "2021-01-02", "2021-02-20"), nil)

	report, err := Run(j.ctx, j.args())
	j.NoError(err)

	j.Equal(1, j.source.LoadCallCount())
	_, input := j.source.LoadArgsForCall(0)
	j.Equal("s3://bucket/airline.csv", input)

	j.Equal(1, j.sink.SaveCallCount())
	_, saved, output := j.sink.SaveArgsForCall(0)
	j.Equal("anonymized.csv", output)
	j.Equal([]string{"Gender", "Airport Continent", "Departure Date", "Flight Status"}, saved.Columns())
	j.Equal([]string{"Male", "Europe", "1/2021-2/2021", "On Time"}, saved.Values(0))
	j.Equal(8, saved.RowCount())

	j.NotEmpty(report.RunID)
	j.Equal(3, report.K)
	j.Equal(constants.GlobalScope, report.Scope)
	j.Equal(8, report.Rows)
	j.Equal([]string{"Passenger ID", "First Name"}, report.RemovedColumns)
	j.Equal(anonymizer.Level2Generalized, report.State)
	j.Equal(0.86, report.Utility)
	j.Equal("0.859", report.ExactUtility)
	j.Equal(1, report.MergeEvents)
	j.Equal(2, report.Groups)
	j.Equal(3, report.SmallestGroup)

	// Metrics
	j.Equal(1, j.metricsClient.TimingCallCount())
	name, _, tags := j.metricsClient.TimingArgsForCall(0)
	j.Equal("duration", name)
	j.Equal(map[string]string{"what": "success", "scope": "global", "k": "3", "state": "level_2_generalized"}, tags)

	j.Equal(1, j.metricsClient.GaugeCallCount())
	name, utility, _ := j.metricsClient.GaugeArgsForCall(0)
	j.Equal("utility", name)
	j.Equal(0.86, utility)

	j.Equal(2, j.metricsClient.CountCallCount())
	name, rows, _ := j.metricsClient.CountArgsForCall(0)
	j.Equal("rows", name)
	j.Equal(int64(8), rows)
	name, mergeEvents, _ := j.metricsClient.CountArgsForCall(1)
	j.Equal("merge_events", name)
	j.Equal(int64(1), mergeEvents)
}

func (j *JobTestSuite) TestRun_Report() {
	j.settings.Config.ReportPath = filepath.Join(j.T().TempDir(), "report.json")
	j.source.LoadReturns(j.newDataset("2021-01-05", "2021-01-06", "2021-01-07"), nil)

	report, err := Run(j.ctx, j.args())
	j.NoError(err)

	bytes, err := os.ReadFile(j.settings.Config.ReportPath)
	j.NoError(err)

	var written Report
	j.NoError(json.Unmarshal(bytes, &written))
	j.Equal(report, written)
	j.Equal(anonymizer.Level1Generalized, written.State)
	j.Contains(string(bytes), `"smallestGroup": 3`)
}

func (j *JobTestSuite) TestRun_LoadFails() {
	j.source.LoadReturns(nil, fmt.Errorf("no such bucket"))

	_, err := Run(j.ctx, j.args())
	j.ErrorContains(err, "failed to load dataset: no such bucket")
	j.Zero(j.sink.SaveCallCount())

	j.Equal(1, j.metricsClient.TimingCallCount())
	_, _, tags := j.metricsClient.TimingArgsForCall(0)
	j.Equal("failed", tags["what"])
	j.Zero(j.metricsClient.GaugeCallCount())
}

func (j *JobTestSuite) TestRun_EngineFails() {
	{
		// Malformed date
		j.source.LoadReturns(j.newDataset("2021-01-05", "yesterday"), nil)
		_, err := Run(j.ctx, j.args())
		j.ErrorContains(err, "failed to anonymize dataset")
		j.True(anonymizer.IsMalformedDateError(err))
	}
	{
		// Missing column
		dataset, err := models.NewDataset([]string{"Gender", "Departure Date"})
		j.Require().NoError(err)
		j.source.LoadReturns(dataset, nil)
		_, err = Run(j.ctx, j.args())
		j.True(anonymizer.IsMissingColumnError(err))
	}

	// Nothing should be written when the engine fails.
	j.Zero(j.sink.SaveCallCount())
}

func (j *JobTestSuite) TestRun_SaveFails() {
	j.settings.Config.ReportPath = filepath.Join(j.T().TempDir(), "report.json")
	j.source.LoadReturns(j.newDataset("2021-01-05", "2021-01-06", "2021-01-07"), nil)
	j.sink.SaveReturns(fmt.Errorf("disk full"))

	_, err := Run(j.ctx, j.args())
	j.ErrorContains(err, "failed to save dataset: disk full")

	_, err = os.Stat(j.settings.Config.ReportPath)
	j.True(os.IsNotExist(err))
}

func (j *JobTestSuite) TestRun_MissingSettings() {
	_, err := Run(context.Background(), j.args())
	j.ErrorContains(err, "failed to grab settings from context")
	j.Zero(j.source.LoadCallCount())
}
