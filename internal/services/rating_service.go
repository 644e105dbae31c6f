package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/errors"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
)

// RatingService contém a lógica de negócio para avaliações de viagem
type RatingService struct {
	ratingRepo      repositories.RatingRepository
	reservationRepo repositories.ReservationRepository
	logger          ports.Logger
}

// NewRatingService cria um novo RatingService
func NewRatingService(
	ratingRepo repositories.RatingRepository,
	reservationRepo repositories.ReservationRepository,
	logger ports.Logger,
) *RatingService {
	return &RatingService{
		ratingRepo:      ratingRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// CreateRatingInput representa os dados para criar uma avaliação
type CreateRatingInput struct {
	ReservationID uuid.UUID
	Rate          int
	Comment       string
}

// Create cria a avaliação de uma reserva. Cada reserva admite no máximo
// uma avaliação; a checagem de existência vem antes do insert.
func (s *RatingService) Create(ctx context.Context, input CreateRatingInput) (*entities.Rating, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, errors.NewNotFound("reservation")
	}

	exists, err := s.ratingRepo.ExistsByReservationID(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewDuplicateRegistry("rating", "reservation")
	}

	rating := &entities.Rating{
		ID:            uuid.New(),
		ReservationID: input.ReservationID,
		Rate:          input.Rate,
		Comment:       input.Comment,
	}

	if err := rating.Validate(); err != nil {
		return nil, errors.NewBusiness("invalid rating", err)
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

// FindByReservation busca a avaliação de uma reserva
func (s *RatingService) FindByReservation(ctx context.Context, reservationID uuid.UUID) (*entities.Rating, error) {
	rating, err := s.ratingRepo.FindByReservationID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, errors.NewNotFound("rating")
	}
	return rating, nil
}

// ListByPackage lista as avaliações das reservas de um pacote
func (s *RatingService) ListByPackage(ctx context.Context, packageID uuid.UUID) ([]*entities.Rating, error) {
	return s.ratingRepo.ListByPackageID(ctx, packageID)
}
