//go:build unit

package settings

import (
	"errors"
	"os"
	"testing"

	"github.com/lerenn/kvcheck/configs"
	fsmocks "github.com/lerenn/kvcheck/pkg/fs/mocks"
	"github.com/lerenn/kvcheck/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

const settingsPath = "/home/user/.kvcheck/settings.yaml"

func newMockedManager(t *testing.T) (Manager, *fsmocks.MockFS) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().ExpandPath(DefaultPath).Return(settingsPath, nil).AnyTimes()
	return NewManager(mockFS, ""), mockFS
}

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, []string{"name", "version"}, s.RequiredKeys)
	assert.False(t, s.Strict)
	assert.Equal(t, report.FormatText, s.Format)
}

func TestDefaultSettingsYAML(t *testing.T) {
	var embedded Settings
	require.NoError(t, yaml.Unmarshal(configs.DefaultSettingsYAML, &embedded))
	require.NoError(t, embedded.Validate())

	assert.Equal(t, Settings{
		RequiredKeys: []string{"name", "version"},
		Format:       report.FormatText,
	}, embedded)
	assert.Equal(t, Default(), embedded)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  error
	}{
		{name: "defaults", settings: Default()},
		{name: "no required keys", settings: Settings{}},
		{name: "blank required key", settings: Settings{RequiredKeys: []string{"name", " "}}, wantErr: ErrRequiredKeyEmpty},
		{name: "padded required key", settings: Settings{RequiredKeys: []string{" name"}}, wantErr: ErrRequiredKeyWhitespace},
		{name: "unknown format", settings: Settings{Format: "xml"}, wantErr: report.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManager_GetSettings(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(true, nil)
		mockFS.EXPECT().ReadFile(settingsPath).Return([]byte("strict: true\nformat: yaml\n"), nil)

		s, err := manager.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "version"}, s.RequiredKeys)
		assert.True(t, s.Strict)
		assert.Equal(t, report.FormatYAML, s.Format)
	})

	t.Run("required keys are replaced", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(true, nil)
		mockFS.EXPECT().ReadFile(settingsPath).Return([]byte("required_keys: [host]\n"), nil)

		s, err := manager.GetSettings()
		require.NoError(t, err)
		assert.Equal(t, []string{"host"}, s.RequiredKeys)
	})

	t.Run("missing file", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(false, nil)

		_, err := manager.GetSettings()
		assert.ErrorIs(t, err, ErrSettingsNotFound)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(true, nil)
		mockFS.EXPECT().ReadFile(settingsPath).Return([]byte("required_keys: [a\nstrict: : :"), nil)

		_, err := manager.GetSettings()
		assert.ErrorIs(t, err, ErrSettingsFileParse)
	})

	t.Run("invalid values", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(true, nil)
		mockFS.EXPECT().ReadFile(settingsPath).Return([]byte("format: xml\n"), nil)

		_, err := manager.GetSettings()
		assert.ErrorIs(t, err, report.ErrUnknownFormat)
	})

	t.Run("read failure", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(true, nil)
		mockFS.EXPECT().ReadFile(settingsPath).Return(nil, os.ErrPermission)

		_, err := manager.GetSettings()
		assert.ErrorIs(t, err, os.ErrPermission)
	})
}

func TestManager_GetSettingsWithFallback(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(false, nil)

		s, err := manager.GetSettingsWithFallback()
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	})

	t.Run("broken file is reported", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(true, nil)
		mockFS.EXPECT().ReadFile(settingsPath).Return([]byte("format: xml\n"), nil)

		_, err := manager.GetSettingsWithFallback()
		assert.ErrorIs(t, err, report.ErrUnknownFormat)
	})
}

func TestManager_SaveDefaultSettings(t *testing.T) {
	t.Run("writes embedded defaults", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(false, nil)
		mockFS.EXPECT().MkdirAll("/home/user/.kvcheck", os.FileMode(0755)).Return(nil)
		mockFS.EXPECT().WriteFileAtomic(settingsPath, configs.DefaultSettingsYAML, os.FileMode(0644)).Return(nil)

		assert.NoError(t, manager.SaveDefaultSettings(false))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(true, nil)

		assert.ErrorIs(t, manager.SaveDefaultSettings(false), ErrSettingsExist)
	})

	t.Run("force overwrites", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		mockFS.EXPECT().Exists(settingsPath).Return(true, nil)
		mockFS.EXPECT().MkdirAll("/home/user/.kvcheck", os.FileMode(0755)).Return(nil)
		mockFS.EXPECT().WriteFileAtomic(settingsPath, gomock.Any(), os.FileMode(0644)).Return(nil)

		assert.NoError(t, manager.SaveDefaultSettings(true))
	})

	t.Run("write failure", func(t *testing.T) {
		manager, mockFS := newMockedManager(t)
		writeErr := errors.New("disk full")
		mockFS.EXPECT().Exists(settingsPath).Return(false, nil)
		mockFS.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
		mockFS.EXPECT().WriteFileAtomic(gomock.Any(), gomock.Any(), gomock.Any()).Return(writeErr)

		assert.ErrorIs(t, manager.SaveDefaultSettings(false), writeErr)
	})
}
