package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/skillkit/skillkit/pkg/logger"
)

func TestPersistentPreRun_EnvOverridesLogLevel(t *testing.T) {
	t.Setenv("SKILLKIT_LOG_LEVEL", "debug")
	t.Cleanup(func() { logger.SetLogLevel("info") })

	rootCmd.PersistentPreRun(rootCmd, nil)

	assert.Equal(t, logrus.DebugLevel, logger.L.Logger.GetLevel())
}

func TestPersistentPreRun_FlagDefault(t *testing.T) {
	t.Cleanup(func() { logger.SetLogLevel("info") })

	rootCmd.PersistentPreRun(rootCmd, nil)

	assert.Equal(t, logrus.InfoLevel, logger.L.Logger.GetLevel())
}
