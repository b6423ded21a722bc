package constants

// ExporterKind is used for the Telemetry package
type ExporterKind string

const (
	Datadog ExporterKind = "datadog"
)

// MergeScope decides how undersized month groups are merged and labeled.
type MergeScope string

const (
	// GlobalScope labels runs as month ranges, e.g. 1/2021-2/2021.
	GlobalScope MergeScope = "global"
	// BucketScope labels runs as date ranges, e.g. 2021-01--2021-02.
	BucketScope MergeScope = "bucket"
)

func (m MergeScope) IsValid() bool {
	return m == GlobalScope || m == BucketScope
}

const (
	DefaultParallelism = 4
	DefaultDelimiter   = ","
)
