package services

//go:generate mockgen -source=host.go -destination=mock_host.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-event-listing/internal/apperrors"
	"github.com/sbilibin2017/gw-event-listing/internal/logger"
	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// HostReader defines read-only operations for host profiles.
type HostReader interface {
	GetByID(ctx context.Context, id int64) (*models.Host, error) // Returns the host with events, nil when absent
}

// HostWriter defines write operations for host profiles.
type HostWriter interface {
	Create(ctx context.Context, host *models.Host) (bool, error)                  // Reports false if the row existed
	UpdateInfo(ctx context.Context, id int64, info models.HostInfo) (bool, error) // Reports false if no row matched
}

// HostService manages the one-to-one host profile of a user.
type HostService struct {
	reader HostReader
	writer HostWriter
}

// NewHostService creates a new HostService.
func NewHostService(reader HostReader, writer HostWriter) *HostService {
	return &HostService{reader: reader, writer: writer}
}

// CreateHost creates the host row for user unless one exists.
// The primary key on hosts settles concurrent calls for the same user.
func (s *HostService) CreateHost(ctx context.Context, user *models.User) error {
	const op = "creating the host profile"

	existing, err := s.reader.GetByID(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check host profile", "user_id", user.ID, "error", err)
		return apperrors.NewDataError(op, err)
	}
	if existing != nil {
		return nil
	}

	created, err := s.writer.Create(ctx, &models.Host{ID: user.ID})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create host profile", "user_id", user.ID, "error", err)
		return apperrors.NewDataError(op, err)
	}

	logger.FromContext(ctx).Infow("host profile ensured", "user_id", user.ID, "created", created)
	return nil
}

// GetHostByUserID returns the host with its events, or nil when the user has no host profile.
func (s *HostService) GetHostByUserID(ctx context.Context, userID int64) (*models.Host, error) {
	host, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get host profile", "user_id", userID, "error", err)
		return nil, apperrors.NewDataError("retrieving the host profile", err)
	}
	if host == nil {
		logger.FromContext(ctx).Warnw("host profile not found", "user_id", userID)
		return nil, nil
	}
	return host, nil
}

// UpdateHostInfo overwrites agency name and bio. It returns false when the user has no host profile.
func (s *HostService) UpdateHostInfo(ctx context.Context, userID int64, info models.HostInfo) (bool, error) {
	updated, err := s.writer.UpdateInfo(ctx, userID, info)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update host profile", "user_id", userID, "error", err)
		return false, apperrors.NewDataError("updating the host profile", err)
	}
	if !updated {
		logger.FromContext(ctx).Warnw("host profile not found for update", "user_id", userID)
	}
	return updated, nil
}
