package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linebot-admin/internal/models"
)

func TestPortalAppsSeedDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "apps.json")
	svc := NewPortalAppService(path)

	apps, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, apps, 5)
	assert.Equal(t, "Dashboard", apps[0].Title)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestPortalAppsUpdateMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	svc := NewPortalAppService(path)

	title := "Analytics"
	app, err := svc.Update(3, models.PortalAppPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Analytics", app.Title)
	assert.Equal(t, "/reports", app.LinkURL)
	assert.Equal(t, "View analytics and reports", app.Description)

	// A fresh service reads what the first one wrote.
	apps, err := NewPortalAppService(path).List()
	require.NoError(t, err)
	assert.Equal(t, "Analytics", apps[2].Title)
	assert.Equal(t, "Dashboard", apps[0].Title)
}

func TestPortalAppsUpdateMissing(t *testing.T) {
	svc := NewPortalAppService(filepath.Join(t.TempDir(), "apps.json"))

	title := "x"
	_, err := svc.Update(99, models.PortalAppPatch{Title: &title})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPortalAppsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewPortalAppService(path).List()
	assert.Error(t, err)
}
