package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	oldFS := FS
	FS = fs
	cfg = Config{}
	t.Cleanup(func() {
		FS = oldFS
		cfg = Config{}
	})
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	resetConfig(t)

	c := GetConfig()
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.Equal(t, 9998, c.Rest.Port)
	assert.Equal(t, "127.0.0.1", c.Rest.Addr)
	assert.False(t, c.Tracing.Enabled)
	assert.Equal(t, "@daily", c.Snapshot.Schedule)
	assert.Equal(t, 7, c.Snapshot.Keep)
	assert.Equal(t, 5*time.Second, c.DB.LockTimeout)
}

func TestLoadConfigFromWorkingDirectory(t *testing.T) {
	fs := resetConfig(t)

	content := []byte(`{
	// stored under the data dir when empty
	"db": {"driver": "clover", "path": "/var/lib/samples"},
	"rest": {"port": 8080}
}`)
	require.NoError(t, afero.WriteFile(fs, configFile, content, 0644))

	LoadConfig()
	c := GetConfig()
	assert.Equal(t, "clover", c.DB.Driver)
	assert.Equal(t, "/var/lib/samples", c.DB.Path)
	assert.Equal(t, 8080, c.Rest.Port)
	// untouched keys keep their defaults
	assert.Equal(t, "127.0.0.1", c.Rest.Addr)
}

func TestLoadConfigMalformedFileKeepsDefaults(t *testing.T) {
	fs := resetConfig(t)
	require.NoError(t, afero.WriteFile(fs, configFile, []byte(`{"db": `), 0644))

	LoadConfig()
	assert.Equal(t, "sqlite", GetConfig().DB.Driver)
}

func TestLoadConfigFile(t *testing.T) {
	fs := resetConfig(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/custom.json", []byte(`{"snapshot": {"enabled": true, "keep": 2}}`), 0644))

	require.NoError(t, LoadConfigFile("/tmp/custom.json"))
	assert.True(t, GetConfig().Snapshot.Enabled)
	assert.Equal(t, 2, GetConfig().Snapshot.Keep)

	assert.Error(t, LoadConfigFile("/tmp/missing.json"))

	require.NoError(t, afero.WriteFile(fs, "/tmp/broken.json", []byte(`not json`), 0644))
	assert.Error(t, LoadConfigFile("/tmp/broken.json"))
	// a failed load leaves the previous config in place
	assert.Equal(t, 2, GetConfig().Snapshot.Keep)
}

func TestSetConfig(t *testing.T) {
	resetConfig(t)

	SetConfig("db.driver", "memory")
	SetConfig("rest.port", 7000)

	assert.Equal(t, "memory", GetConfig().DB.Driver)
	assert.Equal(t, 7000, GetConfig().Rest.Port)
	assert.Equal(t, 5*time.Second, GetConfig().DB.LockTimeout)

	SetConfig("db.lock_timeout", "250ms")
	assert.Equal(t, 250*time.Millisecond, GetConfig().DB.LockTimeout)
}

func TestRemoveComments(t *testing.T) {
	in := []byte("{\n  // comment\n  \"url\": \"http://localhost\"\n}")
	out := string(removeComments(in))
	assert.NotContains(t, out, "comment")
	assert.Contains(t, out, "http://localhost")
}
