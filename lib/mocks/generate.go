package mocks

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o=dataio.source.mock.go ../dataio Source
//counterfeiter:generate -o=dataio.sink.mock.go ../dataio Sink
//counterfeiter:generate -o=dataio.objectstore.mock.go ../dataio ObjectStore
//counterfeiter:generate -o=metrics.client.mock.go ../telemetry/metrics/base Client
