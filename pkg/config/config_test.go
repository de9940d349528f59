package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "spantext-demo", cfg.ServiceName)
	assert.Equal(t, ModeSimple, cfg.Mode)
	assert.Equal(t, OutputStdout, cfg.Output)
	assert.Empty(t, cfg.Filter)
	assert.Zero(t, cfg.BatchTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "valid simple mode",
			config:  Config{ServiceName: "demo", Mode: ModeSimple},
			wantErr: nil,
		},
		{
			name:    "valid batched mode with timeout",
			config:  Config{ServiceName: "demo", Mode: ModeBatched, BatchTimeout: 5},
			wantErr: nil,
		},
		{
			name:    "empty mode means simple",
			config:  Config{ServiceName: "demo"},
			wantErr: nil,
		},
		{
			name:    "valid filter",
			config:  Config{ServiceName: "demo", Filter: `status == "Error"`},
			wantErr: nil,
		},
		{
			name:    "missing service name",
			config:  Config{Mode: ModeSimple},
			wantErr: ErrMissingServiceName,
		},
		{
			name:    "unknown mode",
			config:  Config{ServiceName: "demo", Mode: "streaming"},
			wantErr: ErrInvalidMode,
		},
		{
			name:    "negative batch timeout",
			config:  Config{ServiceName: "demo", BatchTimeout: -1},
			wantErr: ErrInvalidBatchTimeout,
		},
		{
			name:    "unparseable filter",
			config:  Config{ServiceName: "demo", Filter: "name =="},
			wantErr: ErrInvalidFilter,
		},
		{
			name:    "non-boolean filter",
			config:  Config{ServiceName: "demo", Filter: "duration_ms + 1"},
			wantErr: ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "spantext.yaml")

	content := `serviceName: checkout
serviceVersion: 1.2.3
mode: batched
output: stderr
batchTimeout: 2
filter: status == "Error"
resource:
  deployment.environment: dev
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "checkout", cfg.ServiceName)
	assert.Equal(t, "1.2.3", cfg.ServiceVersion)
	assert.Equal(t, ModeBatched, cfg.Mode)
	assert.True(t, cfg.Batched())
	assert.Equal(t, OutputStderr, cfg.Output)
	assert.Equal(t, 2, cfg.BatchTimeout)
	assert.Equal(t, `status == "Error"`, cfg.Filter)
	assert.Equal(t, "dev", cfg.Resource["deployment.environment"])
}

func TestLoadFromFile_ValidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "spantext.json")

	content := `{
		"serviceName": "checkout",
		"mode": "simple",
		"output": "stdout"
	}`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "checkout", cfg.ServiceName)
	assert.Equal(t, ModeSimple, cfg.Mode)
	assert.False(t, cfg.Batched())
}

func TestLoadFromFile_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "minimal.yml")

	err := os.WriteFile(path, []byte("serviceName: tiny\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", cfg.ServiceName)
	assert.Equal(t, ModeSimple, cfg.Mode)
	assert.Equal(t, OutputStdout, cfg.Output)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")

	err := os.WriteFile(path, []byte("serviceName: [unclosed\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoadFromFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.json")

	err := os.WriteFile(path, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	cfg, err := LoadFromFile("/nonexistent/path/spantext.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFromFile_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "empty.yaml")

	err := os.WriteFile(path, []byte(""), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadFromFile_Directory(t *testing.T) {
	cfg, err := LoadFromFile(t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "directory")
}

func TestLoadFromFile_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "badmode.yaml")

	content := "serviceName: demo\nmode: streaming\n"
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidMode)
}
