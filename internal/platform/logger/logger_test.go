package logger_test

import (
	"path/filepath"
	"testing"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	"github.com/srgjo27/transit_ledger/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	log, err := logger.New("debug", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log, err = logger.New("", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	_, err = logger.New("loud", "")
	assert.Error(t, err)
}

func TestNew_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.log")

	log, err := logger.New("info", path)
	require.NoError(t, err)

	rotator, ok := log.Out.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, path, rotator.Filename)

	log.Info("hello")
	require.NoError(t, rotator.Close())
	assert.FileExists(t, path)
}
