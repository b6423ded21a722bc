package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/artie-labs/anonymize/lib/config"
	"github.com/artie-labs/anonymize/lib/config/constants"
	"github.com/artie-labs/anonymize/lib/mocks"
	"github.com/artie-labs/anonymize/lib/telemetry/metrics"
)

type JobTestSuite struct {
	suite.Suite
	ctx           context.Context
	settings      *config.Settings
	source        *mocks.FakeSource
	sink          *mocks.FakeSink
	metricsClient *mocks.FakeClient
}

func (j *JobTestSuite) SetupTest() {
	j.settings = &config.Settings{
		Config: config.Config{
			Input:       "s3://bucket/airline.csv",
			Output:      "anonymized.csv",
			K:           3,
			MergeScope:  constants.GlobalScope,
			Parallelism: constants.DefaultParallelism,
			Delimiter:   constants.DefaultDelimiter,
		},
	}

	j.source = &mocks.FakeSource{}
	j.sink = &mocks.FakeSink{}
	j.metricsClient = &mocks.FakeClient{}
	j.ctx = config.InjectSettingsIntoContext(context.Background(), j.settings)
	j.ctx = metrics.InjectMetricsClientIntoCtx(j.ctx, j.metricsClient)
}

func (j *JobTestSuite) args() Args {
	return Args{Source: j.source, Sink: j.sink}
}

func TestJobTestSuite(t *testing.T) {
	suite.Run(t, new(JobTestSuite))
}
