package villa

import (
	"context"
	"errors"
	"fmt"
	"time"

	villaRepo "villabook/database/repository/villa"
	"villabook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotOwner is returned when a host operates on a villa they do not own.
var ErrNotOwner = errors.New("villa does not belong to this host")

// ErrNotFound is returned when the villa does not exist.
var ErrNotFound = errors.New("villa not found")

// VillaService manages a host's listings.
type VillaService interface {
	Create(ctx context.Context, hostUserID string, input models.Villa) (*models.Villa, error)
	Update(ctx context.Context, hostUserID string, input models.Villa) (*models.Villa, error)
	Delete(ctx context.Context, hostUserID, villaID string) error
	SetStatus(ctx context.Context, hostUserID, villaID, status string) error
	GetByID(ctx context.Context, villaID string) (*models.Villa, error)
	ListForHost(ctx context.Context, hostUserID string) ([]models.Villa, error)
	ListPublished(ctx context.Context) ([]models.Villa, error)
}

// DefaultVillaService implements VillaService.
type DefaultVillaService struct {
	Repo   villaRepo.VillaRepository
	Logger *zap.Logger
}

// Create registers a new listing for the host. New listings start
// unpublished.
func (s *DefaultVillaService) Create(ctx context.Context, hostUserID string, input models.Villa) (*models.Villa, error) {
	input.ID = uuid.New().String()
	input.HostUserID = hostUserID
	input.Status = models.VillaUnpublished
	input.CreatedAt = time.Now()

	if err := s.Repo.Create(&input); err != nil {
		return nil, err
	}
	s.Logger.Info("villa created", zap.String("villaID", input.ID), zap.String("hostID", hostUserID))
	return &input, nil
}

func (s *DefaultVillaService) owned(villaID, hostUserID string) (*models.Villa, error) {
	v, err := s.Repo.GetByID(villaID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	if v.HostUserID != hostUserID {
		return nil, ErrNotOwner
	}
	return v, nil
}

// Update edits a listing owned by the host. Ownership and status are
// not editable through this path.
func (s *DefaultVillaService) Update(ctx context.Context, hostUserID string, input models.Villa) (*models.Villa, error) {
	current, err := s.owned(input.ID, hostUserID)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Location = input.Location
	current.PricePerNight = input.PricePerNight
	current.MaxGuests = input.MaxGuests
	current.Bedrooms = input.Bedrooms

	if err := s.Repo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes a listing owned by the host.
func (s *DefaultVillaService) Delete(ctx context.Context, hostUserID, villaID string) error {
	if _, err := s.owned(villaID, hostUserID); err != nil {
		return err
	}
	return s.Repo.Delete(villaID)
}

// SetStatus publishes or unpublishes a listing owned by the host.
func (s *DefaultVillaService) SetStatus(ctx context.Context, hostUserID, villaID, status string) error {
	if status != models.VillaPublished && status != models.VillaUnpublished {
		return fmt.Errorf("unknown villa status %q", status)
	}
	matched, err := s.Repo.SetStatus(villaID, hostUserID, status)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves a single listing.
func (s *DefaultVillaService) GetByID(ctx context.Context, villaID string) (*models.Villa, error) {
	v, err := s.Repo.GetByID(villaID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

// ListForHost returns all listings owned by the host.
func (s *DefaultVillaService) ListForHost(ctx context.Context, hostUserID string) ([]models.Villa, error) {
	return s.Repo.GetByHost(hostUserID)
}

// ListPublished returns all published listings.
func (s *DefaultVillaService) ListPublished(ctx context.Context) ([]models.Villa, error) {
	return s.Repo.GetPublished()
}
