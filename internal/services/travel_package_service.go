package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/errors"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
)

// TravelPackageService contém a lógica de negócio para pacotes de viagem
type TravelPackageService struct {
	packageRepo repositories.TravelPackageRepository
	logger      ports.Logger
}

// NewTravelPackageService cria um novo TravelPackageService
func NewTravelPackageService(packageRepo repositories.TravelPackageRepository, logger ports.Logger) *TravelPackageService {
	return &TravelPackageService{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// CreateTravelPackageInput representa os dados para criar um pacote
type CreateTravelPackageInput struct {
	Title       string
	Description string
	Price       float64
	Duration    int
	MaxPeople   int
}

// UpdateTravelPackageInput representa os dados para atualizar um pacote.
// Apenas os campos não-nulos são aplicados.
type UpdateTravelPackageInput struct {
	Title       *string
	Description *string
	Price       *float64
	Duration    *int
	MaxPeople   *int
}

// AddPackageDateInput representa os dados para criar uma data do pacote
type AddPackageDateInput struct {
	StartDate    time.Time
	EndDate      time.Time
	QtdAvailable int
}

// Create cria um novo pacote de viagem. O título é único entre pacotes
// não deletados.
func (s *TravelPackageService) Create(ctx context.Context, input CreateTravelPackageInput) (*entities.TravelPackage, error) {
	s.logger.Info("creating travel package", "title", input.Title)

	exists, err := s.packageRepo.ExistsByTitle(ctx, input.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewDuplicateRegistry("travel package", "title")
	}

	pkg := &entities.TravelPackage{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		MaxPeople:   input.MaxPeople,
	}

	if err := pkg.Validate(); err != nil {
		return nil, errors.NewBusiness("invalid travel package", err)
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// FindByID busca um pacote pelo id
func (s *TravelPackageService) FindByID(ctx context.Context, id uuid.UUID) (*entities.TravelPackage, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, errors.NewNotFound("travel package")
	}
	return pkg, nil
}

// List lista pacotes paginados, com filtro opcional por substring do título
func (s *TravelPackageService) List(ctx context.Context, filters repositories.TravelPackageFilters) ([]*entities.TravelPackage, error) {
	return s.packageRepo.List(ctx, filters)
}

// Update aplica os campos não-nulos do input no pacote existente,
// re-checando a unicidade do título quando ele muda
func (s *TravelPackageService) Update(ctx context.Context, id uuid.UUID, input UpdateTravelPackageInput) (*entities.TravelPackage, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, errors.NewNotFound("travel package")
	}

	if input.Title != nil && *input.Title != pkg.Title {
		exists, err := s.packageRepo.ExistsByTitle(ctx, *input.Title)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errors.NewDuplicateRegistry("travel package", "title")
		}
		pkg.Title = *input.Title
	}

	if input.Description != nil {
		pkg.Description = *input.Description
	}
	if input.Price != nil {
		pkg.Price = *input.Price
	}
	if input.Duration != nil {
		pkg.Duration = *input.Duration
	}
	if input.MaxPeople != nil {
		pkg.MaxPeople = *input.MaxPeople
	}

	if err := pkg.Validate(); err != nil {
		return nil, errors.NewBusiness("invalid travel package", err)
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// Delete remove o pacote (soft delete)
func (s *TravelPackageService) Delete(ctx context.Context, id uuid.UUID) error {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return errors.NewNotFound("travel package")
	}

	return s.packageRepo.Delete(ctx, id)
}

// AddDate cria uma data reservável para o pacote
func (s *TravelPackageService) AddDate(ctx context.Context, packageID uuid.UUID, input AddPackageDateInput) (*entities.PackageDate, error) {
	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, errors.NewNotFound("travel package")
	}

	date := &entities.PackageDate{
		ID:           uuid.New(),
		PackageID:    packageID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		QtdAvailable: input.QtdAvailable,
	}

	if err := date.Validate(); err != nil {
		return nil, errors.NewBusiness("invalid package date", err)
	}

	if err := s.packageRepo.AddDate(ctx, date); err != nil {
		return nil, err
	}

	return date, nil
}

// ListDates lista as datas reserváveis do pacote
func (s *TravelPackageService) ListDates(ctx context.Context, packageID uuid.UUID) ([]*entities.PackageDate, error) {
	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, errors.NewNotFound("travel package")
	}

	return s.packageRepo.ListDates(ctx, packageID)
}
