package dto

import (
	"time"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
)

// CreateRatingRequest representa a requisição para avaliar uma reserva
type CreateRatingRequest struct {
	ReservationID string `json:"reservation_id" binding:"required,uuid"`
	Rate          int    `json:"rate" binding:"required,gte=1,lte=5"`
	Comment       string `json:"comment" binding:"omitempty,max=1000"`
}

// RatingResponse representa a resposta de uma avaliação
type RatingResponse struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	Rate          int       `json:"rate"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToRatingResponse converte uma entidade Rating para resposta
func ToRatingResponse(rating *entities.Rating) RatingResponse {
	return RatingResponse{
		ID:            rating.ID.String(),
		ReservationID: rating.ReservationID.String(),
		Rate:          rating.Rate,
		Comment:       rating.Comment,
		CreatedAt:     rating.CreatedAt,
	}
}

// ToRatingResponses converte uma lista de avaliações para resposta
func ToRatingResponses(ratings []*entities.Rating) []RatingResponse {
	responses := make([]RatingResponse, len(ratings))
	for i, rating := range ratings {
		responses[i] = ToRatingResponse(rating)
	}
	return responses
}
