package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		dir  string
	}{
		{"embedded", ""},
		{"directory", "configs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(tt.dir)
			require.NoError(t, err)

			assert.Equal(t, []string{"training", "factory", "lab"}, cfg.Tuning.Arenas)
			assert.Len(t, cfg.Arenas, 3)
		})
	}
}

func TestLoadConfig_MissingDir(t *testing.T) {
	_, err := loadConfig("does-not-exist")

	assert.Error(t, err)
}

func TestStartArena(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	upTo := func(ids ...string) func(string) bool {
		return func(id string) bool {
			for _, u := range ids {
				if u == id {
					return true
				}
			}
			return false
		}
	}

	tests := []struct {
		name      string
		requested string
		unlocked  func(string) bool
		want      string
		wantErr   bool
	}{
		{"requested", "lab", nil, "lab", false},
		{"unknown", "moon", nil, "", true},
		{"no progress", "", nil, "training", false},
		{"latest unlocked", "", upTo("training", "factory"), "factory", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := startArena(cfg, tt.requested, tt.unlocked)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
