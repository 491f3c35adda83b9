package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/contentdb/internal/config"
	"github.com/zeusync/contentdb/internal/content"
	"github.com/zeusync/contentdb/internal/core/observability/log"
	"github.com/zeusync/contentdb/internal/core/registry"
	"github.com/zeusync/contentdb/internal/core/storage/file"
	"github.com/zeusync/contentdb/internal/injector"
	"github.com/zeusync/contentdb/pkg/encoding"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func seedContent(t *testing.T) (string, []*content.Item) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvDir, dir)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvFormat, "json")
	t.Setenv(config.EnvLocale, "en")
	t.Setenv(config.EnvStrings, "")

	reg := registry.New()
	items := registry.For[content.Item](reg)
	var out []*content.Item
	for _, name := range []string{"Sword", "Bow", "Axe"} {
		it := content.NewItem()
		it.Name = name
		require.NoError(t, items.Insert(it))
		out = append(out, it)
	}
	require.NoError(t, file.New(dir, encoding.JSON, nil).SaveAll(context.Background(), reg))
	return dir, out
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestListOrdersByName(t *testing.T) {
	_, items := seedContent(t)

	out, err := run(t, "list", "item")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], items[2].ID.String())
	assert.Contains(t, lines[0], "Axe")
	assert.Contains(t, lines[2], "Sword")
}

func TestShowPrintsState(t *testing.T) {
	_, items := seedContent(t)

	out, err := run(t, "show", "item", items[1].ID.String())
	require.NoError(t, err)
	assert.Contains(t, out, `"Name": "Bow"`)

	_, err = run(t, "show", "item", "00000000-0000-0000-0000-000000000001")
	assert.ErrorIs(t, err, errNotFound)

	_, err = run(t, "show", "dragon", items[1].ID.String())
	assert.Error(t, err)
}

func TestRenameSaves(t *testing.T) {
	_, items := seedContent(t)

	out, err := run(t, "rename", "item", items[0].ID.String(), "Blade")
	require.NoError(t, err)
	assert.Contains(t, out, "renamed")

	out, err = run(t, "list", "item")
	require.NoError(t, err)
	assert.Contains(t, out, "Blade")
	assert.NotContains(t, out, "Sword")
}

func TestRenameDryRun(t *testing.T) {
	_, items := seedContent(t)

	out, err := run(t, "rename", "--dry-run", "item", items[0].ID.String(), "Blade")
	require.NoError(t, err)
	assert.Contains(t, out, "dry run")

	out, err = run(t, "rename", "item", items[0].ID.String(), "Sword")
	require.NoError(t, err)
	assert.Contains(t, out, "no changes")
}

func TestStrings(t *testing.T) {
	seedContent(t)

	out, err := run(t, "strings")
	require.NoError(t, err)
	assert.Contains(t, out, `"PackageGame": "Package Game"`)
}

func TestFlushAfterCommand(t *testing.T) {
	assert.NotNil(t, newRootCmd().PersistentPostRunE)

	c := &cli{}
	assert.NoError(t, c.flush(), "nothing to flush before setup")

	core, _ := observer.New(zap.DebugLevel)
	c.app = &injector.App{Logger: log.NewWithCore(core, log.LevelDebug)}
	assert.NoError(t, c.flush())
}
