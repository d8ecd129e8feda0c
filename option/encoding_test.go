package option_test

import (
	"encoding/json"
	"testing"

	"github.com/authcorp/libs/go/optionex/option"
	"github.com/authcorp/libs/go/optionex/optiontest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

type serviceConfig struct {
	Name     string                `json:"name" yaml:"name"`
	Port     option.Option[int]    `json:"port" yaml:"port"`
	Proxy    option.Option[string] `json:"proxy" yaml:"proxy"`
	Timeout  option.Option[string] `json:"timeout,omitzero" yaml:"timeout,omitempty"`
	Replicas option.Option[[]int]  `json:"replicas,omitzero" yaml:"replicas,omitempty"`
}

func TestJSONEncoding(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		var cfg serviceConfig
		err := json.Unmarshal([]byte(`{"name":"api","port":8080,"proxy":null}`), &cfg)
		require.NoError(t, err)

		assert.Equal(t, option.Some(8080), cfg.Port)
		assert.True(t, cfg.Proxy.IsNone(), "null decodes to None")
		assert.True(t, cfg.Timeout.IsNone(), "missing field stays None")
	})

	t.Run("encode", func(t *testing.T) {
		cfg := serviceConfig{Name: "api", Port: option.Some(8080)}
		data, err := json.Marshal(cfg)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"api","port":8080,"proxy":null}`, string(data))
	})

	t.Run("type mismatch", func(t *testing.T) {
		var cfg serviceConfig
		err := json.Unmarshal([]byte(`{"port":"eighty"}`), &cfg)
		assert.ErrorContains(t, err, "option: decode json")
	})
}

func TestJSONRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := optiontest.OptionGen(rapid.String()).Draw(t, "o")

		data, err := json.Marshal(o)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		var decoded option.Option[string]
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if decoded != o {
			t.Fatalf("round-trip failed: got %v, want %v", decoded, o)
		}
	})
}

func TestYAMLEncoding(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		doc := "name: api\nport: 8080\nproxy: ~\nreplicas: [1, 2]\n"

		var cfg serviceConfig
		require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

		assert.Equal(t, "api", cfg.Name)
		assert.Equal(t, option.Some(8080), cfg.Port)
		assert.True(t, cfg.Proxy.IsNone(), "~ decodes to None")
		assert.True(t, cfg.Timeout.IsNone(), "missing key stays None")
		assert.Equal(t, option.Some([]int{1, 2}), cfg.Replicas)
	})

	t.Run("encode", func(t *testing.T) {
		cfg := serviceConfig{Name: "api", Port: option.Some(8080)}
		data, err := yaml.Marshal(cfg)
		require.NoError(t, err)
		assert.Equal(t, "name: api\nport: 8080\nproxy: null\n", string(data))
	})

	t.Run("type mismatch", func(t *testing.T) {
		var cfg serviceConfig
		err := yaml.Unmarshal([]byte("port: [1]\n"), &cfg)
		assert.ErrorContains(t, err, "option: decode yaml")
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := optiontest.OptionGen(rapid.Int()).Draw(t, "o")

		data, err := yaml.Marshal(map[string]option.Option[int]{"v": o})
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		var decoded map[string]option.Option[int]
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if decoded["v"] != o {
			t.Fatalf("round-trip failed: got %v, want %v", decoded["v"], o)
		}
	})
}
