package usecase

import (
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/rajatks/sevakart/services/discovery"
)

type DiscoveryUC struct {
	providerRepo discovery.ProviderRepo
	cfg          *models.Config
}

// NewDiscoveryUC creates a new discovery usecase instance
func NewDiscoveryUC(providerRepo discovery.ProviderRepo, cfg *models.Config) *DiscoveryUC {
	return &DiscoveryUC{
		providerRepo: providerRepo,
		cfg:          cfg,
	}
}
