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

// RatingRepository implementa repositories.RatingRepository
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository cria um novo RatingRepository
func NewRatingRepository(db *gorm.DB) repositories.RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(ctx context.Context, rating *entities.Rating) error {
	model := r.toModel(rating)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateDuplicate(err, "rating", "reservation")
	}

	return nil
}

func (r *RatingRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entities.Rating, error) {
	var model RatingModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("reservation_id = ?", reservationID.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *RatingRepository) ExistsByReservationID(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&RatingModel{}).
		Where("reservation_id = ?", reservationID.String()).
		Count(&count).Error

	return count > 0, err
}

// ListByPackageID junta avaliações com as reservas das datas do pacote
func (r *RatingRepository) ListByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entities.Rating, error) {
	var models []*RatingModel

	db := dbFromContext(ctx, r.db)
	err := db.Model(&RatingModel{}).
		Joins("JOIN reservations ON reservations.id = ratings.reservation_id").
		Joins("JOIN package_dates ON package_dates.id = reservations.package_date_id").
		Where("package_dates.package_id = ?", packageID.String()).
		Order("ratings.created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.Rating, 0, len(models))
	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}

// Conversores
func (r *RatingRepository) toModel(rating *entities.Rating) *RatingModel {
	return &RatingModel{
		ID:            rating.ID.String(),
		ReservationID: rating.ReservationID.String(),
		Rate:          rating.Rate,
		Comment:       rating.Comment,
		CreatedAt:     unixOrZero(rating.CreatedAt),
	}
}

func (r *RatingRepository) toEntity(model *RatingModel) (*entities.Rating, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	reservationID, err := uuid.Parse(model.ReservationID)
	if err != nil {
		return nil, err
	}

	return &entities.Rating{
		ID:            id,
		ReservationID: reservationID,
		Rate:          model.Rate,
		Comment:       model.Comment,
		CreatedAt:     time.Unix(model.CreatedAt, 0),
	}, nil
}
