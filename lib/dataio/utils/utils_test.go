package utils

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/anonymize/clients/local"
	"github.com/artie-labs/anonymize/clients/shared"
	"github.com/artie-labs/anonymize/lib/config"
)

func TestNewSource(t *testing.T) {
	cfg := config.Config{Delimiter: ","}
	{
		source, err := NewSource(context.Background(), cfg, "/tmp/airline.csv")
		assert.NoError(t, err)
		assert.IsType(t, local.Store{}, source)
	}
	{
		_, err := NewSource(context.Background(), cfg, "")
		assert.ErrorContains(t, err, "path is empty")
	}
	{
		_, err := NewSource(context.Background(), cfg, "ftp://bucket/airline.csv")
		assert.ErrorContains(t, err, "unsupported scheme")
	}
}

func TestNewSink(t *testing.T) {
	cfg := config.Config{Delimiter: ";", S3: &config.S3Settings{Region: "us-east-1", AwsAccessKeyID: "id", AwsSecretAccessKey: "secret"}}
	{
		sink, err := NewSink(context.Background(), cfg, "anonymized.parquet")
		assert.NoError(t, err)
		assert.Equal(t, local.NewStore(';'), sink)
	}
	{
		sink, err := NewSink(context.Background(), cfg, "s3://bucket/anonymized.csv")
		assert.NoError(t, err)
		assert.IsType(t, shared.RemoteStore{}, sink)
	}
}

type fakeCloser struct {
	err    error
	closed bool
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

func TestClose(t *testing.T) {
	assert.NoError(t, Close())
	assert.NoError(t, Close(local.NewStore(',')))

	first := &fakeCloser{err: fmt.Errorf("source failed")}
	second := &fakeCloser{}
	third := &fakeCloser{err: fmt.Errorf("sink failed")}
	err := Close(first, local.NewStore(','), second, third)
	assert.ErrorContains(t, err, "source failed")
	assert.ErrorContains(t, err, "sink failed")
	assert.True(t, first.closed)
	assert.True(t, second.closed)
	assert.True(t, third.closed)
}
