package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/contentdb/internal/config"
	"golang.org/x/text/language"
)

func TestInitializeApp(t *testing.T) {
	cfg := config.Default()
	cfg.ContentDir = t.TempDir()
	cfg.Format = "yaml"
	cfg.Locale = "fr"

	app, err := InitializeApp(cfg)
	require.NoError(t, err)
	assert.Same(t, cfg, app.Config)
	assert.Equal(t, cfg.ContentDir, app.Store.Dir())
	assert.Equal(t, "yaml", app.Store.Codec().Name())
	assert.Equal(t, language.French, app.Registry.Locale())
	assert.NotNil(t, app.Events)
}

func TestInitializeAppRejectsBadSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "xml"
	_, err := InitializeApp(cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.LogLevel = "chatty"
	_, err = InitializeApp(cfg)
	assert.Error(t, err)
}
