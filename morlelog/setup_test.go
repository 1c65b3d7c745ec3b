package morlelog_test

import (
	"testing"

	"github.com/katalvlaran/morle/morlelog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDefaultsToInfo(t *testing.T) {
	entry, err := morlelog.Setup("", false)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, entry.Logger.Level)
	assert.Equal(t, "morle", entry.Data["component"])
}

func TestSetupParsesLevel(t *testing.T) {
	entry, err := morlelog.Setup("debug", false)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, entry.Logger.Level)
}

func TestSetupJSONFormatter(t *testing.T) {
	entry, err := morlelog.Setup("warn", true)
	require.NoError(t, err)
	_, isJSON := entry.Logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := morlelog.Setup("not-a-level", false)
	assert.Error(t, err)
}
