package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TravelPackage representa um pacote de viagem comercializado pela agência.
// O título é único entre pacotes não deletados.
type TravelPackage struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       float64
	Duration    int // duração em dias
	MaxPeople   int
	Dates       []PackageDate
	Media       []Media
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft delete
}

// PackageDate é um período reservável do pacote, com capacidade própria
type PackageDate struct {
	ID           uuid.UUID
	PackageID    uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
	QtdAvailable int
}

// Media é um anexo (foto/vídeo) do pacote
type Media struct {
	ID        uuid.UUID
	PackageID uuid.UUID
	URL       string
	Kind      string
}

// IsDeleted verifica se o pacote foi deletado (soft delete)
func (p *TravelPackage) IsDeleted() bool {
	return p.DeletedAt != nil
}

// SoftDelete marca o pacote como deletado
func (p *TravelPackage) SoftDelete() {
	now := time.Now()
	p.DeletedAt = &now
}

// Validate valida regras de negócio da entidade TravelPackage
func (p *TravelPackage) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}

	if p.Price < 0 {
		return errors.New("price must not be negative")
	}

	if p.MaxPeople < 1 {
		return errors.New("maxPeople must be at least 1")
	}

	return nil
}

// Validate valida regras de negócio da entidade PackageDate
func (d *PackageDate) Validate() error {
	if d.EndDate.Before(d.StartDate) {
		return errors.New("endDate must not be before startDate")
	}

	if d.QtdAvailable < 0 {
		return errors.New("qtdAvailable must not be negative")
	}

	return nil
}
