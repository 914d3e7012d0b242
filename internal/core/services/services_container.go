package services

import (
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Conversion: NewConversionService(repos.ConversionRepo),
		Currency:   NewCurrencyService(),
		SampleItem: NewSampleItemService(repos.SampleItemRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ConversionSvcFacade = (*ConversionService)(nil)
	_ portssvc.CurrencySvcFacade   = (*CurrencyService)(nil)
	_ portssvc.SampleItemSvc       = (*SampleItemService)(nil)
)
