package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

// TravelPackageRepository define a interface para persistência de pacotes
// de viagem e suas datas
type TravelPackageRepository interface {
	Create(ctx context.Context, pkg *entities.TravelPackage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.TravelPackage, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Update(ctx context.Context, pkg *entities.TravelPackage) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters TravelPackageFilters) ([]*entities.TravelPackage, error)

	AddDate(ctx context.Context, date *entities.PackageDate) error
	FindDateByID(ctx context.Context, id uuid.UUID) (*entities.PackageDate, error)
	ListDates(ctx context.Context, packageID uuid.UUID) ([]*entities.PackageDate, error)
}

// TravelPackageFilters contém filtros para listagem de pacotes
type TravelPackageFilters struct {
	Title    string // filtro por substring do título
	Page     int
	PageSize int
}
