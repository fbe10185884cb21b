package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"huntboard/internal/board"
	"huntboard/internal/database"
	"huntboard/internal/events"
	"huntboard/internal/models"
	"huntboard/internal/order"
)

// Service defines all application-related business operations
type Service interface {
	// Read operations
	GetApplication(ctx context.Context, id int) (*models.Application, error)
	ListApplications(ctx context.Context) ([]*models.Application, error)
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Application, error)
	Board(ctx context.Context) (map[models.Status][]*models.Application, error)

	// Write operations
	CreateApplication(ctx context.Context, req CreateApplicationRequest) (*models.Application, error)
	UpdateApplication(ctx context.Context, req UpdateApplicationRequest) error
	DeleteApplication(ctx context.Context, id int) error

	// Board movements
	MoveApplication(ctx context.Context, id int, target board.Target) (models.Placement, error)
	SavePlacement(ctx context.Context, id int, placement models.Placement) error
}

// CreateApplicationRequest encapsulates all data needed to create an application
type CreateApplicationRequest struct {
	Company  string
	Role     string
	URL      string
	Location string
	Salary   string
	Notes    string
	Status   models.Status // Optional: empty means wishlist
}

// UpdateApplicationRequest encapsulates all data needed to update an application
// Fields with pointers are optional - nil means don't update
type UpdateApplicationRequest struct {
	ID       int
	Company  *string
	Role     *string
	URL      *string
	Location *string
	Salary   *string
	Notes    *string
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new application service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// CreateApplication handles application creation with validation and business rules.
// New applications always land at the end of their column.
func (s *service) CreateApplication(ctx context.Context, req CreateApplicationRequest) (*models.Application, error) {
	if err := s.validateCreateApplication(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusWishlist
	}

	key, err := s.endOfColumnKey(ctx, status)
	if err != nil {
		return nil, err
	}

	app, err := s.repo.CreateApplication(ctx, &models.Application{
		Company:  req.Company,
		Role:     req.Role,
		URL:      req.URL,
		Location: req.Location,
		Salary:   req.Salary,
		Notes:    req.Notes,
		Status:   status,
		OrderKey: key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.publishChange()

	return app, nil
}

// UpdateApplication handles application updates with validation. Only the
// descriptive fields can change here; status and order go through the
// movement operations.
func (s *service) UpdateApplication(ctx context.Context, req UpdateApplicationRequest) error {
	if req.ID <= 0 {
		return ErrInvalidApplicationID
	}

	// Validate fields if provided
	if req.Company != nil && *req.Company == "" {
		return ErrEmptyCompany
	}
	if req.Company != nil && len(*req.Company) > 255 {
		return ErrCompanyTooLong
	}
	if req.Role != nil && *req.Role == "" {
		return ErrEmptyRole
	}
	if req.Role != nil && len(*req.Role) > 255 {
		return ErrRoleTooLong
	}

	app, err := s.GetApplication(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Company != nil {
		app.Company = *req.Company
	}
	if req.Role != nil {
		app.Role = *req.Role
	}
	if req.URL != nil {
		app.URL = *req.URL
	}
	if req.Location != nil {
		app.Location = *req.Location
	}
	if req.Salary != nil {
		app.Salary = *req.Salary
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}

	if err := s.repo.UpdateApplication(ctx, app.ID, app.Company, app.Role, app.URL, app.Location, app.Salary, app.Notes); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	s.publishChange()

	return nil
}

// DeleteApplication handles application deletion
func (s *service) DeleteApplication(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidApplicationID
	}

	if err := s.repo.DeleteApplication(ctx, id); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	s.publishChange()

	return nil
}

// GetApplication retrieves a single application
func (s *service) GetApplication(ctx context.Context, id int) (*models.Application, error) {
	if id <= 0 {
		return nil, ErrInvalidApplicationID
	}

	app, err := s.repo.GetApplicationByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

// ListApplications retrieves every application, unsorted
func (s *service) ListApplications(ctx context.Context) ([]*models.Application, error) {
	return s.repo.GetAllApplications(ctx)
}

// ListByStatus retrieves the applications in one column in display order
func (s *service) ListByStatus(ctx context.Context, status models.Status) ([]*models.Application, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	apps, err := s.repo.GetApplicationsByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return board.InColumn(status, apps), nil
}

// Board retrieves every application grouped into columns in display order
func (s *service) Board(ctx context.Context) (map[models.Status][]*models.Application, error) {
	apps, err := s.repo.GetAllApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	return board.Columns(apps), nil
}

// MoveApplication resolves a drop target against the current board and
// persists the resulting placement. A move that resolves to the
// application's current position is skipped entirely.
func (s *service) MoveApplication(ctx context.Context, id int, target board.Target) (models.Placement, error) {
	if id <= 0 {
		return models.Placement{}, ErrInvalidApplicationID
	}

	apps, err := s.repo.GetAllApplications(ctx)
	if err != nil {
		return models.Placement{}, fmt.Errorf("failed to load board: %w", err)
	}

	var moved *models.Application
	for _, app := range apps {
		if app.ID == id {
			moved = app
			break
		}
	}
	if moved == nil {
		return models.Placement{}, ErrApplicationNotFound
	}

	res, err := board.Resolve(moved, target, apps)
	if err != nil {
		return models.Placement{}, err
	}
	if res.NoOp() {
		return res.Placement, nil
	}

	if err := s.repo.UpdatePlacement(ctx, id, res.Placement); err != nil {
		return models.Placement{}, fmt.Errorf("failed to save placement: %w", err)
	}

	s.publishChange()

	return res.Placement, nil
}

// SavePlacement persists a placement the caller already resolved, such as a
// committed drag gesture.
func (s *service) SavePlacement(ctx context.Context, id int, placement models.Placement) error {
	if id <= 0 {
		return ErrInvalidApplicationID
	}
	if !placement.Status.Valid() {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdatePlacement(ctx, id, placement); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("failed to save placement: %w", err)
	}

	s.publishChange()

	return nil
}

// endOfColumnKey returns an order key that sorts after everything already
// in the column.
func (s *service) endOfColumnKey(ctx context.Context, status models.Status) (string, error) {
	apps, err := s.repo.GetApplicationsByStatus(ctx, status)
	if err != nil {
		return "", fmt.Errorf("failed to load column: %w", err)
	}

	last := ""
	if column := board.InColumn(status, apps); len(column) > 0 {
		last = column[len(column)-1].OrderKey
	}

	return order.AtEnd(last), nil
}

// validateCreateApplication validates a CreateApplicationRequest
func (s *service) validateCreateApplication(req CreateApplicationRequest) error {
	if req.Company == "" {
		return ErrEmptyCompany
	}
	if len(req.Company) > 255 {
		return ErrCompanyTooLong
	}
	if req.Role == "" {
		return ErrEmptyRole
	}
	if len(req.Role) > 255 {
		return ErrRoleTooLong
	}
	if req.Status != "" && !req.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// publishChange notifies the daemon that the database changed so other
// huntboard processes can refresh
func (s *service) publishChange() {
	if s.eventClient == nil {
		return
	}

	_ = events.PublishWithRetry(s.eventClient, events.Event{
		Type:      events.EventDatabaseChanged,
		Timestamp: time.Now(),
	}, 3)
}
