package scheduler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"
)

func TestRunConfigValidate(t *testing.T) {
	t.Run("default is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("disk size must be positive", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DiskSize = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("negative head rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Head = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("negative request rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Requests = []int{10, -2}
		require.Error(t, cfg.Validate())
	})

	t.Run("head beyond disk size allowed", func(t *testing.T) {
		// The engine runs boundary math with whatever head it is given.
		cfg := DefaultConfig()
		cfg.Head = cfg.DiskSize + 100
		require.NoError(t, cfg.Validate())
	})
}

func TestRunConfigDecoding(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var cfg RunConfig
		data := []byte(`{"requests":[82,170,43],"head":50,"diskSize":200}`)
		require.NoError(t, json.Unmarshal(data, &cfg))
		require.Equal(t, RunConfig{Requests: []int{82, 170, 43}, Head: 50, DiskSize: 200}, cfg)
	})

	t.Run("yaml scenario", func(t *testing.T) {
		var cfg RunConfig
		data := []byte("requests: [82, 170, 43]\nhead: 50\ndiskSize: 200\n")
		require.NoError(t, yaml.Unmarshal(data, &cfg))
		require.Equal(t, RunConfig{Requests: []int{82, 170, 43}, Head: 50, DiskSize: 200}, cfg)
	})
}
