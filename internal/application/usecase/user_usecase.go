package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/agileflow/agileflow-go/internal/application/auth"
	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

// UserUseCase casos de uso de administración de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario desde la vista de admin. El password llega por
// query param en el contrato original.
func (uc *UserUseCase) Create(in dto.CreateUserRequest, password string) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// Update actualiza username, email, rol y estado activo.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Role != "" {
		role := entity.Role(in.Role)
		if !role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Search busca usuarios por username o email.
func (uc *UserUseCase) Search(term string) ([]dto.UserResponse, error) {
	users, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// ListByRole devuelve los usuarios con el rol dado.
func (uc *UserUseCase) ListByRole(role string) ([]dto.UserResponse, error) {
	r := entity.Role(role)
	if !r.Valid() {
		return nil, domain.ErrInvalidInput
	}
	users, err := uc.repo.ListByRole(r)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// CountByRole cuenta los usuarios con el rol dado.
func (uc *UserUseCase) CountByRole(role string) (int, error) {
	r := entity.Role(role)
	if !r.Valid() {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.CountByRole(r)
}

// UsernameAvailable reporta si el username está libre.
func (uc *UserUseCase) UsernameAvailable(username string) (bool, error) {
	user, err := uc.repo.GetByUsername(username)
	if err != nil {
		return false, err
	}
	return user == nil, nil
}

// EmailAvailable reporta si el email está libre.
func (uc *UserUseCase) EmailAvailable(email string) (bool, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return user == nil, nil
}

func toUserResponses(users []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out
}
