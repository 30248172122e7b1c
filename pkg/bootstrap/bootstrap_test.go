package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/rpcerr-lib/pkg/catalog"
	"github.com/Goden-Gun/rpcerr-lib/pkg/config"
	"github.com/Goden-Gun/rpcerr-lib/pkg/rpcerr"
)

func TestInitClassifier_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unknown_errors.txt")
	cfg := config.ClassifierConfig{
		Reporter: config.ReporterConfig{File: config.FileReporterConfig{Path: path}},
	}

	stack, err := InitClassifier(context.Background(), cfg)
	require.NoError(t, err)
	assert.Same(t, catalog.Default(), stack.Catalog)
	require.Len(t, stack.Reporter.Sinks(), 1)

	e := stack.Classifier.Classify(context.Background(), rpcerr.Report{Code: 999, Message: "SOMETHING_ODD"}, "help.GetConfig")
	assert.Equal(t, rpcerr.KindUnknown, e.Kind)
	require.NoError(t, stack.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\t[999 SOMETHING_ODD]\thelp.GetConfig\n")
}

func TestInitClassifier_CatalogFile(t *testing.T) {
	dir := t.TempDir()
	catPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catPath, []byte("version: custom\ncodes:\n  - code: 400\n    errors:\n      - id: PEER_ID_INVALID\n"), 0o644))

	stack, err := InitClassifier(context.Background(), config.ClassifierConfig{
		Catalog:  config.CatalogConfig{Path: catPath},
		Reporter: config.ReporterConfig{File: config.FileReporterConfig{Rotate: true, Dir: filepath.Join(dir, "logs")}},
	})
	require.NoError(t, err)
	defer stack.Close()

	assert.Equal(t, "custom", stack.Catalog.Version())
	assert.Equal(t, "rotating_file", stack.Reporter.Sinks()[0].Name())
	e := stack.Classifier.Classify(context.Background(), rpcerr.Report{Code: 400, Message: "PEER_ID_INVALID"}, "")
	assert.False(t, e.Unknown)
}

func TestInitClassifier_Errors(t *testing.T) {
	_, err := InitClassifier(context.Background(), config.ClassifierConfig{
		Catalog: config.CatalogConfig{Path: filepath.Join(t.TempDir(), "missing.yaml")},
	})
	assert.Error(t, err)

	_, err = InitClassifier(context.Background(), config.ClassifierConfig{
		Reporter: config.ReporterConfig{
			File:  config.FileReporterConfig{Disabled: true},
			Kafka: config.KafkaReporterConfig{Enabled: true},
		},
	})
	assert.ErrorContains(t, err, "init kafka sink")
}

func TestInitClassifier_NoSinks(t *testing.T) {
	stack, err := InitClassifier(context.Background(), config.ClassifierConfig{
		Reporter: config.ReporterConfig{File: config.FileReporterConfig{Disabled: true}},
	})
	require.NoError(t, err)
	assert.Empty(t, stack.Reporter.Sinks())
	assert.NoError(t, stack.Close())

	var nilStack *ClassifierStack
	assert.NoError(t, nilStack.Close())
}

func TestInitKafka_NoBrokers(t *testing.T) {
	_, err := InitKafka(config.KafkaConfig{})
	assert.Error(t, err)
}

func TestInitTracing(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), config.TracingConfig{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	_, err = InitTracing(context.Background(), config.TracingConfig{Exporter: "zipkin"})
	assert.Error(t, err)

	shutdown, err = InitTracing(context.Background(), config.TracingConfig{Exporter: "stdout", ServiceName: "rpcerr-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitLoggerWithOptions(t *testing.T) {
	std := log.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.GetLevel()
	prevHooks := make(log.LevelHooks, len(std.Hooks))
	for lvl, hooks := range std.Hooks {
		prevHooks[lvl] = append([]log.Hook(nil), hooks...)
	}
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
		std.ReplaceHooks(prevHooks)
	})

	dir := t.TempDir()
	buf := &bytes.Buffer{}
	err := InitLoggerWithOptions(config.LogConfig{Level: "debug"}, LoggerOptions{
		ServiceName:      "rpcerr-test",
		FileConfig:       &LogFileConfig{Enabled: true, Dir: dir},
		AddContainerHook: true,
		Output:           buf,
	})
	require.NoError(t, err)

	log.Debug("hello")
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.Contains(t, buf.String(), `"service":"rpcerr-test"`)
	assert.Contains(t, buf.String(), `"container_id"`)

	matches, err := filepath.Glob(filepath.Join(dir, "rpcerr-test.*.log"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
