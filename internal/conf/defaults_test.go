package conf

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default settings must unmarshal into a valid Settings struct.
func TestDefaultConfigIsValid(t *testing.T) {
	v := viper.GetViper()
	setDefaultConfig()

	assert.Equal(t, "rest", v.GetString("bids.task"))
	assert.Equal(t, 383, v.GetInt("motion.framesperrun"))
	assert.Equal(t, " \t,", v.GetString("motion.resplitdelims"))
	assert.Equal(t, "table", v.GetString("output.file.type"))
	assert.False(t, v.GetBool("output.file.enabled"))

	settings := &Settings{}
	require.NoError(t, v.Unmarshal(settings))
	assert.NoError(t, ValidateSettings(settings))
}
