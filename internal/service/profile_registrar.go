package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"clinical-platform/config"
	"clinical-platform/internal/domain/entity"
)

// InternalKeyHeader carries the machine credential on service-to-service
// calls. The profile service compares it for exact equality.
const InternalKeyHeader = "X-Internal-Key"

// ProfileRegistrar creates the profile record that mirrors a freshly
// created credential. The auth service's registration saga depends on it;
// the appointment of the interface here keeps the usecase testable without
// a live profile service.
type ProfileRegistrar interface {
	CreateProfile(ctx context.Context, id uint, name, email string, role entity.Role) error
}

type profileRegistrar struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

// NewProfileRegistrar builds the HTTP client for the profile service's
// internal endpoint. The configured timeout bounds every call so a stalled
// profile service cannot hold a registration request indefinitely.
func NewProfileRegistrar(cfg config.ProfileServiceConfig, internalCfg config.InternalConfig) ProfileRegistrar {
	return &profileRegistrar{
		baseURL:    cfg.BaseURL,
		serviceKey: internalCfg.ServiceKey,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

type createProfilePayload struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

func (s *profileRegistrar) CreateProfile(ctx context.Context, id uint, name, email string, role entity.Role) error {
	body, err := json.Marshal(createProfilePayload{
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/v1/internal/profiles", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(InternalKeyHeader, s.serviceKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("profile service call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		// Drain so the connection can be reused; the body content is not
		// forwarded to the registering client.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("profile service returned status %d", resp.StatusCode)
	}

	return nil
}
