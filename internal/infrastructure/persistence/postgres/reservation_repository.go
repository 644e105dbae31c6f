package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
	"github.com/viajamais/viajamais-backend/internal/domain/valueobjects"
)

// ReservationRepository implementa repositories.ReservationRepository
type ReservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository cria um novo ReservationRepository
func NewReservationRepository(db *gorm.DB) repositories.ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create persiste a reserva junto com os viajantes. Violações de unique
// index viram DuplicateRegistryError: tanto o par (user, package_date)
// quanto o (email, cpf) dos viajantes.
func (r *ReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) error {
	model := r.toModel(reservation)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateDuplicate(err, "reservation", "unique constraint")
	}

	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Reservation, error) {
	var model ReservationModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Travelers").Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *ReservationRepository) ExistsByUserAndPackageDate(ctx context.Context, userID, packageDateID uuid.UUID) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&ReservationModel{}).
		Where("user_id = ? AND package_date_id = ?", userID.String(), packageDateID.String()).
		Count(&count).Error

	return count > 0, err
}

// IsOwnedByUser compara a foreign key de dono sem carregar a reserva
func (r *ReservationRepository) IsOwnedByUser(ctx context.Context, reservationID, userID uuid.UUID) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&ReservationModel{}).
		Where("id = ? AND user_id = ?", reservationID.String(), userID.String()).
		Count(&count).Error

	return count > 0, err
}

func (r *ReservationRepository) Update(ctx context.Context, reservation *entities.Reservation) error {
	model := r.toModel(reservation)

	db := dbFromContext(ctx, r.db)
	// Omit dos viajantes: o update da reserva não mexe na lista
	if err := db.Omit("Travelers").Save(model).Error; err != nil {
		return translateDuplicate(err, "reservation", "unique constraint")
	}
	return nil
}

// Delete remove a reserva; os viajantes caem pelo ON DELETE CASCADE do
// schema. O pagamento não tem FK e fica como está.
func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&ReservationModel{}, "id = ?", id.String()).Error
}

func (r *ReservationRepository) List(ctx context.Context, filters repositories.ReservationFilters) ([]*entities.Reservation, error) {
	var models []*ReservationModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ReservationModel{}).Preload("Travelers")

	if filters.UserID != nil {
		query = query.Where("user_id = ?", filters.UserID.String())
	}

	// Mais recentes primeiro
	query = paginate(query, filters.Page, filters.PageSize).Order("created_at DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Reservation, 0, len(models))
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
func (r *ReservationRepository) toModel(reservation *entities.Reservation) *ReservationModel {
	model := &ReservationModel{
		ID:              reservation.ID.String(),
		UserID:          reservation.UserID.String(),
		PackageDateID:   reservation.PackageDateID.String(),
		ReservationDate: reservation.ReservationDate,
		Situation:       string(reservation.Situation),
		CancelledDate:   reservation.CancelledDate,
		CreatedAt:       unixOrZero(reservation.CreatedAt),
		UpdatedAt:       unixOrZero(reservation.UpdatedAt),
	}

	for _, t := range reservation.Travelers {
		model.Travelers = append(model.Travelers, TravelerModel{
			ID:            t.ID.String(),
			ReservationID: reservation.ID.String(),
			Name:          t.Name,
			Email:         t.Email.String(),
			CPF:           t.CPF.String(),
			BirthDate:     t.BirthDate,
		})
	}

	return model
}

func (r *ReservationRepository) toEntity(model *ReservationModel) (*entities.Reservation, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(model.UserID)
	if err != nil {
		return nil, err
	}

	packageDateID, err := uuid.Parse(model.PackageDateID)
	if err != nil {
		return nil, err
	}

	reservation := &entities.Reservation{
		ID:              id,
		UserID:          userID,
		PackageDateID:   packageDateID,
		ReservationDate: model.ReservationDate,
		Situation:       entities.Situation(model.Situation),
		CancelledDate:   model.CancelledDate,
		CreatedAt:       time.Unix(model.CreatedAt, 0),
		UpdatedAt:       time.Unix(model.UpdatedAt, 0),
	}

	for _, t := range model.Travelers {
		traveler, err := r.travelerToEntity(&t, id)
		if err != nil {
			return nil, err
		}
		reservation.Travelers = append(reservation.Travelers, *traveler)
	}

	return reservation, nil
}

func (r *ReservationRepository) travelerToEntity(model *TravelerModel, reservationID uuid.UUID) (*entities.Traveler, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, err
	}

	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	cpf, err := valueobjects.NewCPF(model.CPF)
	if err != nil {
		return nil, err
	}

	return &entities.Traveler{
		ID:            id,
		ReservationID: reservationID,
		Name:          model.Name,
		Email:         email,
		CPF:           cpf,
		BirthDate:     model.BirthDate,
	}, nil
}
