//go:build unit

package dependencies

import (
	"testing"

	"github.com/lerenn/kvcheck/pkg/fs"
	"github.com/lerenn/kvcheck/pkg/logger"
	"github.com/lerenn/kvcheck/pkg/settings"
	"github.com/stretchr/testify/assert"
)

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.Nil(t, deps.Settings)
	assert.ErrorIs(t, deps.Validate(), ErrSettingsMissing)
}

func TestDependencies_Validate(t *testing.T) {
	fsys := fs.NewFS()
	complete := func() *Dependencies {
		return New().WithSettings(settings.NewManager(fsys, ""))
	}

	tests := []struct {
		name    string
		deps    *Dependencies
		wantErr error
	}{
		{name: "all set", deps: complete()},
		{name: "missing fs", deps: complete().WithFS(nil), wantErr: ErrFSMissing},
		{name: "missing logger", deps: complete().WithLogger(nil), wantErr: ErrLoggerMissing},
		{name: "all missing returns first", deps: &Dependencies{}, wantErr: ErrFSMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deps.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDependencies_Chaining(t *testing.T) {
	l := logger.NewVerboseLogger()
	deps := New().WithLogger(l)

	assert.Same(t, l, deps.Logger)
}
