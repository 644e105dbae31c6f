package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod representa a forma de pagamento
type PaymentMethod string

const (
	PaymentMethodCredito PaymentMethod = "CREDITO"
	PaymentMethodDebito  PaymentMethod = "DEBITO"
	PaymentMethodBoleto  PaymentMethod = "BOLETO"
	PaymentMethodPix     PaymentMethod = "PIX"
)

// ParsePaymentMethod converte uma string em PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCredito, PaymentMethodDebito, PaymentMethodBoleto, PaymentMethodPix:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// PaymentStatus representa o status de um pagamento
type PaymentStatus string

const (
	PaymentStatusAprovado  PaymentStatus = "APROVADO"
	PaymentStatusCancelado PaymentStatus = "CANCELADO"
	PaymentStatusPendente  PaymentStatus = "PENDENTE"
)

// ParsePaymentStatus converte uma string em PaymentStatus
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusAprovado, PaymentStatusCancelado, PaymentStatusPendente:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}

// Payment representa o pagamento de uma reserva (relação 1:1).
// Pagamentos nunca são deletados pelo contrato atual.
type Payment struct {
	ID                uuid.UUID
	ReservationID     uuid.UUID
	ValuePaid         float64
	PaymentMethod     PaymentMethod
	Status            PaymentStatus
	Tax               float64
	Installment       *int
	InstallmentAmount *float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate valida regras de negócio da entidade Payment.
// O total parcelado não pode ultrapassar o valor pago.
func (p *Payment) Validate() error {
	if p.ValuePaid < 0 {
		return errors.New("valuePaid must not be negative")
	}

	if _, err := ParsePaymentMethod(string(p.PaymentMethod)); err != nil {
		return err
	}

	if _, err := ParsePaymentStatus(string(p.Status)); err != nil {
		return err
	}

	if p.Installment != nil && p.InstallmentAmount != nil {
		total := *p.InstallmentAmount * float64(*p.Installment)
		if total > p.ValuePaid {
			return fmt.Errorf("installment total %.2f exceeds valuePaid %.2f", total, p.ValuePaid)
		}
	}

	return nil
}
