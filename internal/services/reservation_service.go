package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain"
	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/errors"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
	"github.com/viajamais/viajamais-backend/internal/domain/valueobjects"
)

// ReservationService contém o workflow de reservas: validação das
// entidades referenciadas, unicidade (usuário, data do pacote), criação
// em cascata de viajantes e pagamento, e consulta paginada com o
// pagamento anexado por reserva.
type ReservationService struct {
	reservationRepo repositories.ReservationRepository
	userRepo        repositories.UserRepository
	packageRepo     repositories.TravelPackageRepository
	paymentRepo     repositories.PaymentRepository
	uow             domain.UnitOfWork
	mailer          ports.Mailer
	logger          ports.Logger
}

// NewReservationService cria um novo ReservationService
func NewReservationService(
	reservationRepo repositories.ReservationRepository,
	userRepo repositories.UserRepository,
	packageRepo repositories.TravelPackageRepository,
	paymentRepo repositories.PaymentRepository,
	uow domain.UnitOfWork,
	mailer ports.Mailer,
	logger ports.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		packageRepo:     packageRepo,
		paymentRepo:     paymentRepo,
		uow:             uow,
		mailer:          mailer,
		logger:          logger,
	}
}

// TravelerInput representa os dados de um viajante da reserva
type TravelerInput struct {
	Name      string
	Email     string
	CPF       string
	BirthDate time.Time
}

// PaymentInput representa os dados de pagamento enviados junto da reserva
type PaymentInput struct {
	ValuePaid         float64
	PaymentMethod     string
	Status            string
	Tax               float64
	Installment       *int
	InstallmentAmount *float64
}

// CreateReservationInput representa os dados para criar uma reserva
type CreateReservationInput struct {
	UserID          uuid.UUID
	PackageDateID   uuid.UUID
	ReservationDate *time.Time
	Travelers       []*TravelerInput
	Payment         *PaymentInput
}

// UpdateReservationInput representa os dados para atualizar uma reserva.
// Apenas os campos não-nulos são aplicados.
type UpdateReservationInput struct {
	Situation       *string
	ReservationDate *time.Time
}

// ReservationWithPayment é o agregado de leitura: a reserva com o
// pagamento associado (nil quando ainda não pago)
type ReservationWithPayment struct {
	Reservation *entities.Reservation
	Payment     *entities.Payment
}

// Create cria uma reserva com seus viajantes e, quando presente, o
// pagamento. Os dois inserts rodam dentro da mesma transação: falha em
// qualquer um desfaz a tentativa inteira.
//
// A checagem de duplicidade (usuário, data) é consultiva; sob corrida,
// o unique index do banco devolve a mesma DuplicateRegistryError.
func (s *ReservationService) Create(ctx context.Context, input CreateReservationInput) (*entities.Reservation, error) {
	s.logger.Info("creating reservation", "user_id", input.UserID, "package_date_id", input.PackageDateID)

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewNotFound("user")
	}

	packageDate, err := s.packageRepo.FindDateByID(ctx, input.PackageDateID)
	if err != nil {
		return nil, err
	}
	if packageDate == nil {
		return nil, errors.NewNotFound("package date")
	}

	exists, err := s.reservationRepo.ExistsByUserAndPackageDate(ctx, input.UserID, input.PackageDateID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewDuplicateRegistry("reservation", "user and package date")
	}

	reservationDate := time.Now()
	if input.ReservationDate != nil {
		reservationDate = *input.ReservationDate
	}

	reservation := &entities.Reservation{
		ID:              uuid.New(),
		UserID:          input.UserID,
		PackageDateID:   input.PackageDateID,
		ReservationDate: reservationDate,
		Situation:       entities.SituationPendente,
	}

	travelers, err := s.buildTravelers(reservation.ID, input.Travelers)
	if err != nil {
		return nil, err
	}
	reservation.Travelers = travelers

	var payment *entities.Payment
	if input.Payment != nil {
		payment, err = s.buildPayment(reservation.ID, input.Payment)
		if err != nil {
			return nil, err
		}
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.reservationRepo.Create(txCtx, reservation); err != nil {
			return err
		}
		if payment != nil {
			if err := s.paymentRepo.Create(txCtx, payment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, user, reservation, packageDate)

	// O pagamento não vem anexado no retorno; quem precisar dele
	// refaz a busca por reserva
	return reservation, nil
}

// buildTravelers mapeia os inputs de viajante para entidades, pulando
// entradas nulas. Não há checagem de duplicidade cruzada aqui: o unique
// index de (email, cpf) do banco é quem garante, traduzido pela camada
// de persistência.
func (s *ReservationService) buildTravelers(reservationID uuid.UUID, inputs []*TravelerInput) ([]entities.Traveler, error) {
	travelers := make([]entities.Traveler, 0, len(inputs))

	for _, in := range inputs {
		if in == nil {
			continue
		}

		email, err := valueobjects.NewEmail(in.Email)
		if err != nil {
			return nil, errors.NewInvalidField("travelers.email", err.Error())
		}

		cpf, err := valueobjects.NewCPF(in.CPF)
		if err != nil {
			return nil, errors.NewInvalidField("travelers.cpf", err.Error())
		}

		travelers = append(travelers, entities.Traveler{
			ID:            uuid.New(),
			ReservationID: reservationID,
			Name:          in.Name,
			Email:         email,
			CPF:           cpf,
			BirthDate:     in.BirthDate,
		})
	}

	return travelers, nil
}

// buildPayment mapeia o input de pagamento para a entidade e valida o
// invariante de parcelamento
func (s *ReservationService) buildPayment(reservationID uuid.UUID, input *PaymentInput) (*entities.Payment, error) {
	method, err := entities.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, errors.NewInvalidField("payment.paymentMethod", err.Error())
	}

	status := entities.PaymentStatusPendente
	if input.Status != "" {
		status, err = entities.ParsePaymentStatus(input.Status)
		if err != nil {
			return nil, errors.NewInvalidField("payment.status", err.Error())
		}
	}

	payment := &entities.Payment{
		ID:                uuid.New(),
		ReservationID:     reservationID,
		ValuePaid:         input.ValuePaid,
		PaymentMethod:     method,
		Status:            status,
		Tax:               input.Tax,
		Installment:       input.Installment,
		InstallmentAmount: input.InstallmentAmount,
	}

	if err := payment.Validate(); err != nil {
		return nil, errors.NewBusiness("invalid payment", err)
	}

	return payment, nil
}

// sendConfirmation envia o email de confirmação. Best-effort: falha de
// SMTP não derruba uma reserva já commitada.
func (s *ReservationService) sendConfirmation(ctx context.Context, user *entities.User, reservation *entities.Reservation, date *entities.PackageDate) {
	if s.mailer == nil {
		return
	}

	pkg, err := s.packageRepo.FindByID(ctx, date.PackageID)
	if err != nil || pkg == nil {
		s.logger.Warn("confirmation email skipped, package lookup failed", "package_id", date.PackageID, "error", err)
		return
	}

	if err := s.mailer.SendReservationConfirmation(ctx, user, reservation, pkg); err != nil {
		s.logger.Warn("confirmation email failed", "reservation_id", reservation.ID, "error", err)
	}
}

// FindAll lista reservas paginadas (mais recentes primeiro), com filtro
// opcional por dono, anexando o pagamento de cada linha
func (s *ReservationService) FindAll(ctx context.Context, filters repositories.ReservationFilters) ([]*ReservationWithPayment, error) {
	reservations, err := s.reservationRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	result := make([]*ReservationWithPayment, 0, len(reservations))
	for _, r := range reservations {
		payment, err := s.paymentRepo.FindByReservationID(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &ReservationWithPayment{Reservation: r, Payment: payment})
	}

	return result, nil
}

// FindByID busca uma reserva pelo id, com o pagamento anexado
func (s *ReservationService) FindByID(ctx context.Context, id uuid.UUID) (*ReservationWithPayment, error) {
	if id == uuid.Nil {
		return nil, errors.NewInvalidField("id", "id is required")
	}

	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, errors.NewNotFound("reservation")
	}

	payment, err := s.paymentRepo.FindByReservationID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ReservationWithPayment{Reservation: reservation, Payment: payment}, nil
}

// Update aplica os campos não-nulos do input na reserva existente.
// Transições de situação não são validadas aqui; o enum existe mas a
// tabela de transições ficou em aberto (ver DESIGN.md).
func (s *ReservationService) Update(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*entities.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, errors.NewNotFound("reservation")
	}

	if input.Situation != nil {
		situation, err := entities.ParseSituation(*input.Situation)
		if err != nil {
			return nil, errors.NewInvalidField("situation", err.Error())
		}
		reservation.Situation = situation
		if situation == entities.SituationCancelada && reservation.CancelledDate == nil {
			now := time.Now()
			reservation.CancelledDate = &now
		}
	}

	if input.ReservationDate != nil {
		reservation.ReservationDate = *input.ReservationDate
	}

	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	return reservation, nil
}

// Delete remove a reserva. Os viajantes caem junto (orphan removal na
// persistência); o pagamento fica órfão de propósito, retido para
// histórico (ver decisão no DESIGN.md).
func (s *ReservationService) Delete(ctx context.Context, id uuid.UUID) error {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reservation == nil {
		return errors.NewNotFound("reservation")
	}

	return s.reservationRepo.Delete(ctx, id)
}

// IsReservationOwnedByUser compara a foreign key de dono da reserva.
// Usado pelas políticas de autorização.
func (s *ReservationService) IsReservationOwnedByUser(ctx context.Context, reservationID, userID uuid.UUID) (bool, error) {
	return s.reservationRepo.IsOwnedByUser(ctx, reservationID, userID)
}

// ExportCSV escreve todas as reservas em CSV, paginando por baixo.
// O gate de autorização (EXPORT) fica no handler.
func (s *ReservationService) ExportCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "user_id", "package_date_id", "situation", "reservation_date", "value_paid", "payment_status"}
	if err := cw.Write(header); err != nil {
		return err
	}

	const pageSize = 100
	for page := 0; ; page++ {
		rows, err := s.FindAll(ctx, repositories.ReservationFilters{Page: page, PageSize: pageSize})
		if err != nil {
			return err
		}

		for _, row := range rows {
			r := row.Reservation
			valuePaid, paymentStatus := "", ""
			if row.Payment != nil {
				valuePaid = fmt.Sprintf("%.2f", row.Payment.ValuePaid)
				paymentStatus = string(row.Payment.Status)
			}

			record := []string{
				r.ID.String(),
				r.UserID.String(),
				r.PackageDateID.String(),
				string(r.Situation),
				r.ReservationDate.Format(time.RFC3339),
				valuePaid,
				paymentStatus,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}

		if len(rows) < pageSize {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}
