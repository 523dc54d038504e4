package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/agileflow/agileflow-go/internal/application/dto"
)

// UserClient cliente de /api/users (vistas de administración).
type UserClient struct {
	c *Client
}

// NewUserClient construye el cliente de usuarios.
func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

// List devuelve todos los usuarios.
func (u *UserClient) List(ctx context.Context) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	if err := u.c.get(ctx, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve un usuario por id.
func (u *UserClient) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := u.c.get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea un usuario desde la vista de admin (password por query param,
// contrato del backend original).
func (u *UserClient) Create(ctx context.Context, in dto.CreateUserRequest, password string) (*dto.UserResponse, error) {
	q := url.Values{}
	q.Set("password", password)

	var out dto.UserResponse
	if err := u.c.post(ctx, "/api/users", q, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza un usuario.
func (u *UserClient) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := u.c.put(ctx, fmt.Sprintf("/api/users/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un usuario.
func (u *UserClient) Delete(ctx context.Context, id int64) error {
	return u.c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

// Search busca usuarios por término.
func (u *UserClient) Search(ctx context.Context, term string) ([]dto.UserResponse, error) {
	q := url.Values{}
	q.Set("searchTerm", term)

	var out []dto.UserResponse
	if err := u.c.get(ctx, "/api/users/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByRole devuelve los usuarios con el rol dado.
func (u *UserClient) ListByRole(ctx context.Context, role string) ([]dto.UserResponse, error) {
	q := url.Values{}
	q.Set("role", role)

	var out []dto.UserResponse
	if err := u.c.get(ctx, "/api/users/role", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByRole cuenta los usuarios con el rol dado.
func (u *UserClient) CountByRole(ctx context.Context, role string) (int, error) {
	q := url.Values{}
	q.Set("role", role)

	var out struct {
		Count int `json:"count"`
	}
	if err := u.c.get(ctx, "/api/users/count-by-role", q, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// UsernameAvailable reporta si el username está libre.
func (u *UserClient) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	q := url.Values{}
	q.Set("username", username)

	var out struct {
		Available bool `json:"available"`
	}
	if err := u.c.get(ctx, "/api/users/username-available", q, &out); err != nil {
		return false, err
	}
	return out.Available, nil
}

// EmailAvailable reporta si el email está libre.
func (u *UserClient) EmailAvailable(ctx context.Context, email string) (bool, error) {
	q := url.Values{}
	q.Set("email", email)

	var out struct {
		Available bool `json:"available"`
	}
	if err := u.c.get(ctx, "/api/users/email-available", q, &out); err != nil {
		return false, err
	}
	return out.Available, nil
}
