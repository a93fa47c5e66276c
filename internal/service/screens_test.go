package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"support-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const screensFixture = `
- customer_id: logisticsco
  screens:
    - id: dashboard
      name: Dashboard
      path: /dashboard
    - id: shipments
      name: Shipment Tracking
      path: /shipments
- customer_id: retailgmbh
  screens:
    - id: returns
      name: Returns Management
      path: /returns
`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestScreensPerTenant tests that each tenant only sees its own screens
func TestScreensPerTenant(t *testing.T) {
	svc, err := service.NewScreensService(writeRegistry(t, screensFixture))
	require.NoError(t, err)

	logistics := svc.GetForCustomer("logisticsco")
	require.Len(t, logistics, 2)
	assert.Equal(t, "dashboard", logistics[0].ID)
	assert.Equal(t, "/shipments", logistics[1].Path)

	retail := svc.GetForCustomer("retailgmbh")
	require.Len(t, retail, 1)
	assert.Equal(t, "returns", retail[0].ID)
}

// TestScreensUnknownTenant tests that an unregistered tenant gets an empty slice
func TestScreensUnknownTenant(t *testing.T) {
	svc, err := service.NewScreensService(writeRegistry(t, screensFixture))
	require.NoError(t, err)

	screens := svc.GetForCustomer("ghost")
	assert.NotNil(t, screens)
	assert.Empty(t, screens)
}

// TestScreensCaseInsensitiveTenant tests tenant id casing
func TestScreensCaseInsensitiveTenant(t *testing.T) {
	svc, err := service.NewScreensService(writeRegistry(t, screensFixture))
	require.NoError(t, err)

	screens := svc.GetForCustomer("LogisticsCo")
	assert.Len(t, screens, 2)
}

// TestScreensMissingFile tests that a missing registry yields an empty service
func TestScreensMissingFile(t *testing.T) {
	svc, err := service.NewScreensService(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Empty(t, svc.GetForCustomer("logisticsco"))
}

// TestScreensMalformedFile tests that broken YAML is reported
func TestScreensMalformedFile(t *testing.T) {
	_, err := service.NewScreensService(writeRegistry(t, "{not yaml: ["))
	assert.Error(t, err)
}
