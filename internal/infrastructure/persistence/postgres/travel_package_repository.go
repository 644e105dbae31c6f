package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
)

// TravelPackageRepository implementa repositories.TravelPackageRepository
type TravelPackageRepository struct {
	db *gorm.DB
}

// NewTravelPackageRepository cria um novo TravelPackageRepository
func NewTravelPackageRepository(db *gorm.DB) repositories.TravelPackageRepository {
	return &TravelPackageRepository{db: db}
}

func (r *TravelPackageRepository) Create(ctx context.Context, pkg *entities.TravelPackage) error {
	model := r.toModel(pkg)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateDuplicate(err, "travel package", "title")
	}

	return nil
}

func (r *TravelPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.TravelPackage, error) {
	var model TravelPackageModel

	db := dbFromContext(ctx, r.db)
	// Soft delete: ignorar registros deletados
	err := db.Preload("Dates").Preload("Media").
		Where("id = ? AND deleted_at IS NULL", id.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *TravelPackageRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&TravelPackageModel{}).
		Where("title = ? AND deleted_at IS NULL", title).
		Count(&count).Error

	return count > 0, err
}

func (r *TravelPackageRepository) Update(ctx context.Context, pkg *entities.TravelPackage) error {
	model := r.toModel(pkg)

	db := dbFromContext(ctx, r.db)
	// Omit das associações: datas e mídias têm fluxo próprio
	return db.Omit("Dates", "Media").Save(model).Error
}

func (r *TravelPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	// Soft delete: atualizar deleted_at ao invés de deletar
	now := time.Now().Unix()
	return db.Model(&TravelPackageModel{}).
		Where("id = ? AND deleted_at IS NULL", id.String()).
		Update("deleted_at", now).Error
}

func (r *TravelPackageRepository) List(ctx context.Context, filters repositories.TravelPackageFilters) ([]*entities.TravelPackage, error) {
	var models []*TravelPackageModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&TravelPackageModel{}).Preload("Dates").Preload("Media")

	// Soft delete: ignorar registros deletados
	query = query.Where("deleted_at IS NULL")

	if filters.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filters.Title+"%")
	}

	query = paginate(query, filters.Page, filters.PageSize).Order("created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.TravelPackage, 0, len(models))
	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}

func (r *TravelPackageRepository) AddDate(ctx context.Context, date *entities.PackageDate) error {
	model := r.dateToModel(date)

	db := dbFromContext(ctx, r.db)
	return db.Create(model).Error
}

func (r *TravelPackageRepository) FindDateByID(ctx context.Context, id uuid.UUID) (*entities.PackageDate, error) {
	var model PackageDateModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.dateToEntity(&model)
}

func (r *TravelPackageRepository) ListDates(ctx context.Context, packageID uuid.UUID) ([]*entities.PackageDate, error) {
	var models []*PackageDateModel

	db := dbFromContext(ctx, r.db)
	err := db.Where("package_id = ?", packageID.String()).
		Order("start_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.PackageDate, 0, len(models))
	for _, model := range models {
		entity, err := r.dateToEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}

// Conversores
func (r *TravelPackageRepository) toModel(pkg *entities.TravelPackage) *TravelPackageModel {
	var deletedAt *int64
	if pkg.DeletedAt != nil {
		ts := pkg.DeletedAt.Unix()
		deletedAt = &ts
	}

	return &TravelPackageModel{
		ID:          pkg.ID.String(),
		Title:       pkg.Title,
		Description: pkg.Description,
		Price:       pkg.Price,
		Duration:    pkg.Duration,
		MaxPeople:   pkg.MaxPeople,
		CreatedAt:   unixOrZero(pkg.CreatedAt),
		UpdatedAt:   unixOrZero(pkg.UpdatedAt),
		DeletedAt:   deletedAt,
	}
}

func (r *TravelPackageRepository) toEntity(model *TravelPackageModel) (*entities.TravelPackage, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		ts := time.Unix(*model.DeletedAt, 0)
		deletedAt = &ts
	}

	pkg := &entities.TravelPackage{
		ID:          id,
		Title:       model.Title,
		Description: model.Description,
		Price:       model.Price,
		Duration:    model.Duration,
		MaxPeople:   model.MaxPeople,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
		DeletedAt:   deletedAt,
	}

	for _, d := range model.Dates {
		date, err := r.dateToEntity(&d)
		if err != nil {
			return nil, err
		}
		pkg.Dates = append(pkg.Dates, *date)
	}

	for _, m := range model.Media {
		mediaID, err := uuid.Parse(m.ID)
		if err != nil {
			return nil, err
		}
		pkg.Media = append(pkg.Media, entities.Media{
			ID:        mediaID,
			PackageID: id,
			URL:       m.URL,
			Kind:      m.Kind,
		})
	}

	return pkg, nil
}

func (r *TravelPackageRepository) dateToModel(date *entities.PackageDate) *PackageDateModel {
	return &PackageDateModel{
		ID:           date.ID.String(),
		PackageID:    date.PackageID.String(),
		StartDate:    date.StartDate,
		EndDate:      date.EndDate,
		QtdAvailable: date.QtdAvailable,
	}
}

func (r *TravelPackageRepository) dateToEntity(model *PackageDateModel) (*entities.PackageDate, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	packageID, err := uuid.Parse(model.PackageID)
	if err != nil {
		return nil, err
	}

	return &entities.PackageDate{
		ID:           id,
		PackageID:    packageID,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		QtdAvailable: model.QtdAvailable,
	}, nil
}
