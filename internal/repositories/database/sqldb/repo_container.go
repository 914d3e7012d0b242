package sqldb

import (
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

func NewRepositoryProvider(db *sqlx.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ConversionRepo: NewSQLConversionRepository(db),
		SampleItemRepo: NewSQLSampleItemRepository(db),
	}
}

var (
	_ portsrepo.ConversionRepositoryFacade = (*SQLConversionRepository)(nil)
	_ portsrepo.SampleItemReader           = (*SQLSampleItemRepository)(nil)
)
