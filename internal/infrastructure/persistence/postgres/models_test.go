package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

func TestUnixOrZero(t *testing.T) {
	t.Run("preserva o zero de time.Time como zero unix", func(t *testing.T) {
		if got := unixOrZero(time.Time{}); got != 0 {
			t.Errorf("esperava 0, obteve %d", got)
		}
	})

	t.Run("converte timestamp preenchido para unix", func(t *testing.T) {
		ts := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
		if got := unixOrZero(ts); got != ts.Unix() {
			t.Errorf("esperava %d, obteve %d", ts.Unix(), got)
		}
	})
}

func TestReservationToModelTimestamps(t *testing.T) {
	repo := &ReservationRepository{}

	t.Run("reserva recém-criada deixa os timestamps em zero para o autoCreateTime", func(t *testing.T) {
		reservation := &entities.Reservation{
			ID:              uuid.New(),
			UserID:          uuid.New(),
			PackageDateID:   uuid.New(),
			ReservationDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			Situation:       entities.SituationPendente,
		}

		model := repo.toModel(reservation)

		if model.CreatedAt != 0 {
			t.Errorf("esperava CreatedAt 0, obteve %d", model.CreatedAt)
		}
		if model.UpdatedAt != 0 {
			t.Errorf("esperava UpdatedAt 0, obteve %d", model.UpdatedAt)
		}
	})

	t.Run("reserva carregada mantém os timestamps originais", func(t *testing.T) {
		created := time.Date(2025, 1, 10, 8, 30, 0, 0, time.UTC)
		updated := time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)

		reservation := &entities.Reservation{
			ID:              uuid.New(),
			UserID:          uuid.New(),
			PackageDateID:   uuid.New(),
			ReservationDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			Situation:       entities.SituationConfirmada,
			CreatedAt:       created,
			UpdatedAt:       updated,
		}

		model := repo.toModel(reservation)

		if model.CreatedAt != created.Unix() {
			t.Errorf("esperava CreatedAt %d, obteve %d", created.Unix(), model.CreatedAt)
		}
		if model.UpdatedAt != updated.Unix() {
			t.Errorf("esperava UpdatedAt %d, obteve %d", updated.Unix(), model.UpdatedAt)
		}
	})
}

func TestUserToModelTimestamps(t *testing.T) {
	repo := &UserRepository{}

	t.Run("usuário recém-criado deixa os timestamps em zero para o autoCreateTime", func(t *testing.T) {
		model := repo.toModel(&entities.User{
			ID:   uuid.New(),
			Name: "Maria",
			Role: entities.RoleUser,
		})

		if model.CreatedAt != 0 {
			t.Errorf("esperava CreatedAt 0, obteve %d", model.CreatedAt)
		}
		if model.UpdatedAt != 0 {
			t.Errorf("esperava UpdatedAt 0, obteve %d", model.UpdatedAt)
		}
	})
}

func TestPaymentToModelTimestamps(t *testing.T) {
	repo := &PaymentRepository{}

	t.Run("pagamento recém-criado deixa os timestamps em zero para o autoCreateTime", func(t *testing.T) {
		model := repo.toModel(&entities.Payment{
			ID:            uuid.New(),
			ReservationID: uuid.New(),
			ValuePaid:     1500,
			PaymentMethod: entities.PaymentMethodPix,
			Status:        entities.PaymentStatusPendente,
		})

		if model.CreatedAt != 0 {
			t.Errorf("esperava CreatedAt 0, obteve %d", model.CreatedAt)
		}
		if model.UpdatedAt != 0 {
			t.Errorf("esperava UpdatedAt 0, obteve %d", model.UpdatedAt)
		}
	})
}
