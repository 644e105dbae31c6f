package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/viajamais/viajamais-backend/internal/domain/entities"
	"github.com/viajamais/viajamais-backend/internal/domain/errors"
	"github.com/viajamais/viajamais-backend/internal/domain/ports"
	"github.com/viajamais/viajamais-backend/internal/domain/repositories"
	"github.com/viajamais/viajamais-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name     string
	Email    string
	Document string
	Phone    string
	Password string
	Role     string
}

// UpdateUserInput representa os dados para atualizar um usuário.
// Apenas os campos não-nulos são aplicados.
type UpdateUserInput struct {
	Name  *string
	Phone *string
}

// CreateUser cria um novo usuário, checando unicidade de email,
// documento e telefone
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	s.logger.Info("creating user", "email", input.Email)

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.NewInvalidField("email", err.Error())
	}

	role, err := entities.ParseRole(input.Role)
	if err != nil {
		return nil, errors.NewInvalidField("role", err.Error())
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewDuplicateRegistry("user", "email")
	}

	if input.Document != "" {
		taken, err := s.userRepo.ExistsByDocument(ctx, input.Document)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewDuplicateRegistry("user", "document")
		}
	}

	if input.Phone != "" {
		taken, err := s.userRepo.ExistsByPhone(ctx, input.Phone)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewDuplicateRegistry("user", "phone")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		Document:     input.Document,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := user.Validate(); err != nil {
		return nil, errors.NewBusiness("invalid user", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewNotFound("user")
	}
	return user, nil
}

// Authenticate valida email e senha, retornando o usuário em caso de
// sucesso. A mensagem de erro não distingue email inexistente de senha
// errada.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}

// ListUsers lista usuários com filtros
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateUser aplica os campos não-nulos do input no usuário existente
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.NewNotFound("user")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil && *input.Phone != user.Phone {
		taken, err := s.userRepo.ExistsByPhone(ctx, *input.Phone)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.NewDuplicateRegistry("user", "phone")
		}
		user.Phone = *input.Phone
	}

	if err := user.Validate(); err != nil {
		return nil, errors.NewBusiness("invalid user", err)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser remove o usuário (soft delete)
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.NewNotFound("user")
	}

	return s.userRepo.Delete(ctx, id)
}
