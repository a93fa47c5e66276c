package service

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Screen describes one UI screen available to a tenant
type Screen struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Path string `yaml:"path" json:"path"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

// TenantScreens maps a tenant to its screens
type TenantScreens struct {
	CustomerID string   `yaml:"customer_id" json:"customerId"`
	Screens    []Screen `yaml:"screens" json:"screens"`
}

// ScreensService serves the per-tenant screen registry. The registry is
// loaded once at startup from a YAML file and read-only afterwards.
type ScreensService struct {
	byCustomer map[string][]Screen
}

// Ensure ScreensService implements ScreensServiceInterface
var _ ScreensServiceInterface = (*ScreensService)(nil)

// NewScreensService loads the registry file. A missing file yields an empty
// registry rather than an error so deployments without a UI shell still boot.
func NewScreensService(registryPath string) (*ScreensService, error) {
	byCustomer := make(map[string][]Screen)

	if registryPath != "" {
		data, err := os.ReadFile(registryPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read screens registry: %w", err)
			}
		} else {
			var entries []TenantScreens
			if err := yaml.Unmarshal(data, &entries); err != nil {
				return nil, fmt.Errorf("failed to parse screens registry: %w", err)
			}
			for _, entry := range entries {
				byCustomer[strings.ToLower(entry.CustomerID)] = entry.Screens
			}
		}
	}

	return &ScreensService{byCustomer: byCustomer}, nil
}

// GetForCustomer returns the screens configured for a tenant, empty when the
// tenant has no registry entry
func (s *ScreensService) GetForCustomer(customerID string) []Screen {
	screens, ok := s.byCustomer[strings.ToLower(customerID)]
	if !ok {
		return []Screen{}
	}
	return screens
}
