package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	args := m.Called(ctx, document)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *mockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Reservation), args.Error(1)
}

func (m *mockReservationRepository) ExistsByUserAndPackageDate(ctx context.Context, userID, packageDateID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, packageDateID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReservationRepository) IsOwnedByUser(ctx context.Context, reservationID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, reservationID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReservationRepository) Update(ctx context.Context, reservation *entities.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *mockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReservationRepository) List(ctx context.Context, filters repositories.ReservationFilters) ([]*entities.Reservation, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Reservation), args.Error(1)
}

type mockTravelPackageRepository struct {
	mock.Mock
}

func (m *mockTravelPackageRepository) Create(ctx context.Context, pkg *entities.TravelPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *mockTravelPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.TravelPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TravelPackage), args.Error(1)
}

func (m *mockTravelPackageRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *mockTravelPackageRepository) Update(ctx context.Context, pkg *entities.TravelPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *mockTravelPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTravelPackageRepository) List(ctx context.Context, filters repositories.TravelPackageFilters) ([]*entities.TravelPackage, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TravelPackage), args.Error(1)
}

func (m *mockTravelPackageRepository) AddDate(ctx context.Context, date *entities.PackageDate) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

func (m *mockTravelPackageRepository) FindDateByID(ctx context.Context, id uuid.UUID) (*entities.PackageDate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PackageDate), args.Error(1)
}

func (m *mockTravelPackageRepository) ListDates(ctx context.Context, packageID uuid.UUID) ([]*entities.PackageDate, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PackageDate), args.Error(1)
}

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *mockPaymentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entities.Payment, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *mockPaymentRepository) Update(ctx context.Context, payment *entities.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

type mockRatingRepository struct {
	mock.Mock
}

func (m *mockRatingRepository) Create(ctx context.Context, rating *entities.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) (*entities.Rating, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Rating), args.Error(1)
}

func (m *mockRatingRepository) ExistsByReservationID(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	args := m.Called(ctx, reservationID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRatingRepository) ListByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entities.Rating, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Rating), args.Error(1)
}

// passthroughUnitOfWork executa fn direto, sem transação real
type passthroughUnitOfWork struct{}

func (passthroughUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// mockOwnership responde consultas de posse de reserva
type mockOwnership struct {
	mock.Mock
}

func (m *mockOwnership) IsReservationOwnedByUser(ctx context.Context, reservationID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, reservationID, userID)
	return args.Bool(0), args.Error(1)
}

// recordingMailer registra os envios sem falar com SMTP
type recordingMailer struct {
	sent int
	err  error
}

func (m *recordingMailer) SendReservationConfirmation(ctx context.Context, user *entities.User, reservation *entities.Reservation, pkg *entities.TravelPackage) error {
	m.sent++
	return m.err
}

// noopLogger descarta tudo
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}
