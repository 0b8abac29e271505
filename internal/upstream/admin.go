package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"medicenter-portal/internal/domain/entity"
)

type userPayload struct {
	ID       string `json:"id"`
	LegacyID string `json:"_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive *bool  `json:"isActive"`
}

func (p *userPayload) toEntity() entity.User {
	user := entity.User{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.Name,
		Role:        p.Role,
		IsActive:    true,
	}
	if user.ID == "" {
		user.ID = p.LegacyID
	}
	if p.IsActive != nil {
		user.IsActive = *p.IsActive
	}
	return user
}

func (c *Client) Users(ctx context.Context, token string) ([]entity.User, error) {
	body, err := c.do(ctx, "admin.users", http.MethodGet, "/admin/users", token, nil)
	if err != nil {
		return nil, err
	}

	var payloads []userPayload
	if err := json.Unmarshal(unwrapData(body), &payloads); err != nil {
		return []entity.User{}, nil
	}
	users := make([]entity.User, 0, len(payloads))
	for i := range payloads {
		users = append(users, payloads[i].toEntity())
	}
	return users, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, token, userID, role string) (*entity.User, error) {
	path := "/admin/users/" + url.PathEscape(userID) + "/role"
	body, err := c.do(ctx, "admin.update_role", http.MethodPatch, path, token, map[string]string{
		"role": role,
	})
	if err != nil {
		return nil, err
	}

	var payload userPayload
	if err := json.Unmarshal(unwrapData(body), &payload); err != nil {
		return nil, err
	}
	user := payload.toEntity()
	if user.ID == "" {
		user.ID = userID
	}
	if user.Role == "" {
		user.Role = role
	}
	return &user, nil
}

type specializationPayload struct {
	ID          string `json:"id"`
	LegacyID    string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (p *specializationPayload) toEntity() entity.Specialization {
	spec := entity.Specialization{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
	if spec.ID == "" {
		spec.ID = p.LegacyID
	}
	return spec
}

func normalizeSpecializationList(body []byte) []entity.Specialization {
	var payloads []specializationPayload
	if err := json.Unmarshal(unwrapData(body), &payloads); err != nil {
		return []entity.Specialization{}
	}
	specs := make([]entity.Specialization, 0, len(payloads))
	for i := range payloads {
		specs = append(specs, payloads[i].toEntity())
	}
	return specs
}

func (c *Client) AdminSpecializations(ctx context.Context, token string) ([]entity.Specialization, error) {
	body, err := c.do(ctx, "admin.specializations", http.MethodGet, "/admin/specializations", token, nil)
	if err != nil {
		return nil, err
	}
	return normalizeSpecializationList(body), nil
}

func (c *Client) CreateSpecialization(ctx context.Context, token string, spec *entity.Specialization) (*entity.Specialization, error) {
	body, err := c.do(ctx, "admin.create_specialization", http.MethodPost, "/admin/specializations", token, map[string]string{
		"name":        spec.Name,
		"description": spec.Description,
	})
	if err != nil {
		return nil, err
	}

	var payload specializationPayload
	if err := json.Unmarshal(unwrapData(body), &payload); err != nil {
		return nil, err
	}
	created := payload.toEntity()
	return &created, nil
}

func (c *Client) UpdateSpecialization(ctx context.Context, token string, spec *entity.Specialization) (*entity.Specialization, error) {
	path := "/admin/specializations/" + url.PathEscape(spec.ID)
	body, err := c.do(ctx, "admin.update_specialization", http.MethodPut, path, token, map[string]string{
		"name":        spec.Name,
		"description": spec.Description,
	})
	if err != nil {
		return nil, err
	}

	var payload specializationPayload
	if err := json.Unmarshal(unwrapData(body), &payload); err != nil {
		return nil, err
	}
	updated := payload.toEntity()
	if updated.ID == "" {
		updated.ID = spec.ID
	}
	return &updated, nil
}

func (c *Client) DeleteSpecialization(ctx context.Context, token, specializationID string) error {
	path := "/admin/specializations/" + url.PathEscape(specializationID)
	_, err := c.do(ctx, "admin.delete_specialization", http.MethodDelete, path, token, nil)
	return err
}
