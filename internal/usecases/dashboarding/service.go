package dashboarding

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/infrastructure/repository"
	"github.com/vfg2006/analytics-engine/internal/domain"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
	"github.com/vfg2006/analytics-engine/pkg/utils"
	"github.com/vfg2006/analytics-engine/pkg/validation"
)

type Dashboarder interface {
	CreateDashboard(ctx context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error)
	ListDashboards(ctx context.Context, ownerID int64, tenantID *int64) ([]*domain.Dashboard, error)
	GetDashboard(ctx context.Context, id string, ownerID int64, tenantID *int64) (*domain.Dashboard, error)
	UpdateDashboard(ctx context.Context, dashboard *domain.Dashboard, ownerID int64) (*domain.Dashboard, error)
	SetDefaultDashboard(ctx context.Context, id string, ownerID int64, tenantID *int64) error
	ArchiveDashboard(ctx context.Context, id string, ownerID int64, tenantID *int64) error
}

type Service struct {
	dashboards repository.DashboardRepository
}

func NewService(dashboards repository.DashboardRepository) *Service {
	return &Service{
		dashboards: dashboards,
	}
}

// CreateDashboard stores a new active dashboard. Asking for it to be the
// default clears any previous default of the same owner.
func (s *Service) CreateDashboard(ctx context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	if dashboard == nil || dashboard.OwnerID <= 0 {
		return nil, NewDashboardError(ErrInvalidDashboard, apiErrors.ErrMissingRequiredData, "owner is required")
	}

	if err := validation.ValidateStruct(dashboard); err != nil {
		return nil, NewDashboardError(ErrInvalidDashboard, apiErrors.ErrInvalidRequest, err.Error())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewDashboardError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	if dashboard.LayoutConfig == nil {
		dashboard.LayoutConfig = map[string]any{}
	}

	wantsDefault := dashboard.IsDefault
	dashboard.ID = id
	dashboard.Status = domain.DashboardStatusActive
	dashboard.IsDefault = false

	fields := logrus.Fields{
		"tenant_id": tenantField(dashboard.TenantID),
		"owner_id":  dashboard.OwnerID,
		"operation": "create_dashboard",
	}

	if err := s.dashboards.Create(ctx, dashboard); err != nil {
		logrus.WithFields(fields).WithError(err).Error("Error saving dashboard")
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if wantsDefault {
		if err := s.SetDefaultDashboard(ctx, id, dashboard.OwnerID, dashboard.TenantID); err != nil {
			logrus.WithFields(fields).WithError(err).Warn("Dashboard created but could not be made default")
			return dashboard, nil
		}
		dashboard.IsDefault = true
	}

	return dashboard, nil
}

func (s *Service) ListDashboards(ctx context.Context, ownerID int64, tenantID *int64) ([]*domain.Dashboard, error) {
	dashboards, err := s.dashboards.List(ctx, ownerID, tenantID)
	if err != nil {
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return dashboards, nil
}

// GetDashboard returns an active dashboard the user may open: one they own,
// one shared inside the tenant, or a platform-wide one.
func (s *Service) GetDashboard(ctx context.Context, id string, ownerID int64, tenantID *int64) (*domain.Dashboard, error) {
	dashboard, err := s.dashboards.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if dashboard == nil || dashboard.Status != domain.DashboardStatusActive || !visible(dashboard, ownerID) {
		return nil, NewDashboardError(ErrDashboardNotFound, apiErrors.ErrNotFound, id)
	}

	return dashboard, nil
}

// UpdateDashboard replaces the name, layout and sharing flag of a dashboard
// owned by ownerID.
func (s *Service) UpdateDashboard(ctx context.Context, dashboard *domain.Dashboard, ownerID int64) (*domain.Dashboard, error) {
	if dashboard == nil {
		return nil, NewDashboardError(ErrInvalidDashboard, apiErrors.ErrMissingRequiredData, "")
	}

	if err := validation.ValidateStruct(dashboard); err != nil {
		return nil, NewDashboardError(ErrInvalidDashboard, apiErrors.ErrInvalidRequest, err.Error())
	}

	current, err := s.owned(ctx, dashboard.ID, ownerID, dashboard.TenantID)
	if err != nil {
		return nil, err
	}

	current.Name = dashboard.Name
	current.IsShared = dashboard.IsShared
	if dashboard.LayoutConfig != nil {
		current.LayoutConfig = dashboard.LayoutConfig
	}

	updated, err := s.dashboards.Update(ctx, current)
	if err != nil {
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if !updated {
		return nil, NewDashboardError(ErrDashboardNotFound, apiErrors.ErrNotFound, dashboard.ID)
	}

	return current, nil
}

func (s *Service) SetDefaultDashboard(ctx context.Context, id string, ownerID int64, tenantID *int64) error {
	updated, err := s.dashboards.SetDefault(ctx, id, ownerID, tenantID)
	if err != nil {
		return NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if !updated {
		return NewDashboardError(ErrDashboardNotFound, apiErrors.ErrNotFound, id)
	}

	return nil
}

func (s *Service) ArchiveDashboard(ctx context.Context, id string, ownerID int64, tenantID *int64) error {
	if _, err := s.owned(ctx, id, ownerID, tenantID); err != nil {
		return err
	}

	archived, err := s.dashboards.Archive(ctx, id, tenantID)
	if err != nil {
		return NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if !archived {
		return NewDashboardError(ErrDashboardNotFound, apiErrors.ErrNotFound, id)
	}

	logrus.WithFields(logrus.Fields{
		"dashboard_id": id,
		"owner_id":     ownerID,
		"tenant_id":    tenantField(tenantID),
	}).Info("Dashboard archived")

	return nil
}

func (s *Service) owned(ctx context.Context, id string, ownerID int64, tenantID *int64) (*domain.Dashboard, error) {
	dashboard, err := s.GetDashboard(ctx, id, ownerID, tenantID)
	if err != nil {
		return nil, err
	}

	if dashboard.OwnerID != ownerID {
		return nil, NewDashboardError(ErrNotOwner, apiErrors.ErrInsufficientPrivilege, id)
	}

	return dashboard, nil
}

func visible(dashboard *domain.Dashboard, ownerID int64) bool {
	return dashboard.OwnerID == ownerID || dashboard.IsShared || dashboard.TenantID == nil
}

func tenantField(tenantID *int64) any {
	if tenantID == nil {
		return "platform"
	}
	return *tenantID
}
