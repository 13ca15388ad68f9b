package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapConfig(t *testing.T) {
	c := NewMapConfig(map[string]string{
		"TANKOBON_SCRATCH_DIR": "/scratch",
	})

	require.Equal(t, "/scratch", c.GetKey("TANKOBON_SCRATCH_DIR"))
	require.Equal(t, "", c.GetKey("NO_SUCH_KEY"))
	require.Equal(t, "fallback", c.GetKeyWithDefault("NO_SUCH_KEY", "fallback"))
	require.Equal(t, "/scratch", c.GetKeyWithDefault("TANKOBON_SCRATCH_DIR", "other"))
}

func TestScratchRootUsesConfiguredDir(t *testing.T) {
	old := GetConfig()
	defer SetConfig(old)

	SetConfig(NewMapConfig(map[string]string{ScratchDirKey: "/var/scratch"}))
	require.Equal(t, "/var/scratch", ScratchRoot())

	SetConfig(NewMapConfig(nil))
	require.NotEqual(t, "", ScratchRoot())
}

func TestUserAgentDefault(t *testing.T) {
	old := GetConfig()
	defer SetConfig(old)

	SetConfig(NewMapConfig(nil))
	require.Equal(t, defaultUserAgent, UserAgent())

	SetConfig(NewMapConfig(map[string]string{UserAgentKey: "custom/2.0"}))
	require.Equal(t, "custom/2.0", UserAgent())
}
