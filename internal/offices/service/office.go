package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	officeserrors "offices/internal/offices/errors"
	"offices/internal/offices/mapper"
	"offices/internal/offices/repository"
	"offices/pkg/config"
	"offices/pkg/model"
)

// OfficeService owns the office lifecycle. A nil *model.OfficeOutput with a
// nil error means the office was not found; only ChangeStatus reports a
// missing office as ErrNotFound.
type OfficeService interface {
	GetAll(ctx context.Context) ([]*model.OfficeOutput, error)
	Get(ctx context.Context, id string) (*model.OfficeOutput, error)
	Create(ctx context.Context, in *model.OfficeCreate) (*model.OfficeOutput, error)
	Update(ctx context.Context, id string, in *model.OfficeUpdate) (*model.OfficeOutput, error)
	ChangeStatus(ctx context.Context, id string) error
}

type officeService struct {
	repo  repository.OfficeRepository
	cfg   *config.Config
	newID func() string
}

func NewOfficeService(repo repository.OfficeRepository, cfg *config.Config) OfficeService {
	return &officeService{
		repo:  repo,
		cfg:   cfg,
		newID: uuid.NewString,
	}
}

// NormalizeID parses id as a UUID and returns its canonical lowercase form.
func NormalizeID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", officeserrors.ErrInvalidID, id)
	}
	return parsed.String(), nil
}

func (s *officeService) GetAll(ctx context.Context) ([]*model.OfficeOutput, error) {
	offices, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to get all offices", "error", err)
		observe(opGetAll, err)
		return nil, err
	}

	observe(opGetAll, nil)
	return mapper.ToOutputs(offices), nil
}

func (s *officeService) Get(ctx context.Context, id string) (*model.OfficeOutput, error) {
	normalized, err := NormalizeID(id)
	if err != nil {
		observe(opGet, err)
		return nil, err
	}

	offices, err := s.repo.FindBy(ctx, repository.ByID(normalized))
	if err != nil {
		s.cfg.Log.Error("Failed to get office by ID",
			"id", normalized,
			"error", err,
		)
		observe(opGet, err)
		return nil, err
	}

	observe(opGet, nil)
	if len(offices) == 0 {
		return nil, nil
	}
	return mapper.ToOutput(offices[0]), nil
}

func (s *officeService) Create(ctx context.Context, in *model.OfficeCreate) (*model.OfficeOutput, error) {
	if in == nil {
		s.cfg.Log.Warn("Office create called without input")
		return nil, nil
	}

	office := mapper.FromCreate(in)
	office.ID = s.newID()

	if err := s.repo.Insert(ctx, office); err != nil {
		s.cfg.Log.Error("Failed to create office",
			"id", office.ID,
			"city", office.City,
			"error", err,
		)
		observe(opCreate, err)
		return nil, err
	}

	s.cfg.Log.Info("Office created successfully",
		"id", office.ID,
		"city", office.City,
		"street", office.Street,
		"status", office.Status,
	)
	observe(opCreate, nil)
	return mapper.ToOutput(office), nil
}

// Update replaces every mutable field of an existing office. The lookup and
// the replace are separate store calls; a concurrent writer in between makes
// the replace fail with ErrConflict.
func (s *officeService) Update(ctx context.Context, id string, in *model.OfficeUpdate) (*model.OfficeOutput, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil || in == nil {
		s.cfg.Log.Info("Office update skipped",
			"id", id,
			"office_found", existing != nil,
			"input_present", in != nil,
		)
		return nil, nil
	}

	office := mapper.FromUpdate(in)
	office.ID = existing.ID
	office.Version = existing.Version

	if err := s.repo.Replace(ctx, office); err != nil {
		s.cfg.Log.Error("Failed to update office",
			"id", office.ID,
			"error", err,
		)
		observe(opUpdate, err)
		return nil, err
	}

	s.cfg.Log.Info("Office updated successfully",
		"id", office.ID,
		"version", office.Version,
	)
	observe(opUpdate, nil)
	return mapper.ToOutput(office), nil
}

// ChangeStatus flips Active to Inactive and back. It is a toggle, not a set.
func (s *officeService) ChangeStatus(ctx context.Context, id string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		observe(opChangeStatus, officeserrors.ErrNotFound)
		return fmt.Errorf("%w: %s", officeserrors.ErrNotFound, id)
	}

	previous := existing.Status
	if !previous.IsValid() {
		s.cfg.Log.Warn("Office has unknown status, resetting to Active",
			"id", existing.ID,
			"status", previous,
		)
	}
	existing.Status = previous.Toggled()

	if err := s.repo.Replace(ctx, mapper.FromOutput(existing)); err != nil {
		s.cfg.Log.Error("Failed to change office status",
			"id", existing.ID,
			"error", err,
		)
		observe(opChangeStatus, err)
		return err
	}

	s.cfg.Log.Info("Office status changed",
		"id", existing.ID,
		"from", previous,
		"to", existing.Status,
	)
	observe(opChangeStatus, nil)
	return nil
}
