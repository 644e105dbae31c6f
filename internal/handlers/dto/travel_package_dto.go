package dto

import (
	"time"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

// CreateTravelPackageRequest representa a requisição para criar um pacote
type CreateTravelPackageRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=255"`
	Description string  `json:"description" binding:"omitempty"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Duration    int     `json:"duration" binding:"required,gte=1"`
	MaxPeople   int     `json:"max_people" binding:"required,gte=1"`
}

// UpdateTravelPackageRequest representa a requisição para atualizar um pacote
type UpdateTravelPackageRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Duration    *int     `json:"duration" binding:"omitempty,gte=1"`
	MaxPeople   *int     `json:"max_people" binding:"omitempty,gte=1"`
}

// AddPackageDateRequest representa a requisição para criar uma data do pacote
type AddPackageDateRequest struct {
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	QtdAvailable int       `json:"qtd_available" binding:"required,gte=0"`
}

// PackageDateResponse representa a resposta de uma data do pacote
type PackageDateResponse struct {
	ID           string    `json:"id"`
	PackageID    string    `json:"package_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	QtdAvailable int       `json:"qtd_available"`
}

// MediaResponse representa a resposta de uma mídia do pacote
type MediaResponse struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Kind string `json:"kind,omitempty"`
}

// TravelPackageResponse representa a resposta de um pacote
type TravelPackageResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Price       float64               `json:"price"`
	Duration    int                   `json:"duration"`
	MaxPeople   int                   `json:"max_people"`
	Dates       []PackageDateResponse `json:"dates,omitempty"`
	Media       []MediaResponse       `json:"media,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ToPackageDateResponse converte uma entidade PackageDate para resposta
func ToPackageDateResponse(date *entities.PackageDate) PackageDateResponse {
	return PackageDateResponse{
		ID:           date.ID.String(),
		PackageID:    date.PackageID.String(),
		StartDate:    date.StartDate,
		EndDate:      date.EndDate,
		QtdAvailable: date.QtdAvailable,
	}
}

// ToTravelPackageResponse converte uma entidade TravelPackage para resposta
func ToTravelPackageResponse(pkg *entities.TravelPackage) TravelPackageResponse {
	response := TravelPackageResponse{
		ID:          pkg.ID.String(),
		Title:       pkg.Title,
		Description: pkg.Description,
		Price:       pkg.Price,
		Duration:    pkg.Duration,
		MaxPeople:   pkg.MaxPeople,
		CreatedAt:   pkg.CreatedAt,
	}

	for i := range pkg.Dates {
		response.Dates = append(response.Dates, ToPackageDateResponse(&pkg.Dates[i]))
	}

	for _, m := range pkg.Media {
		response.Media = append(response.Media, MediaResponse{
			ID:   m.ID.String(),
			URL:  m.URL,
			Kind: m.Kind,
		})
	}

	return response
}

// ToTravelPackageResponses converte uma lista de pacotes para resposta
func ToTravelPackageResponses(pkgs []*entities.TravelPackage) []TravelPackageResponse {
	responses := make([]TravelPackageResponse, len(pkgs))
	for i, pkg := range pkgs {
		responses[i] = ToTravelPackageResponse(pkg)
	}
	return responses
}
