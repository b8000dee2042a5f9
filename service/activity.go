package service

import (
	"context"

	"prontoshop/dao"
	"prontoshop/models"
	"prontoshop/types"
)

var _ IActivityService = (*ActivityService)(nil)

type IActivityService interface {
	Append(ctx context.Context, req *types.AppendLogRequest) error
	Query(ctx context.Context, userID int64, action string, limit int64) ([]*models.ActivityLog, error)
	Delete(ctx context.Context, userID int64, action string) (int64, error)
}

// ActivityService 用户行为日志：仅追加，按条件查询/删除
type ActivityService struct {
	Store *dao.LogStore
}

func (s *ActivityService) Append(ctx context.Context, req *types.AppendLogRequest) error {
	entry := &models.ActivityLog{
		UserID:   req.UserId,
		Action:   req.Action,
		Metadata: req.Metadata,
	}
	return s.Store.Append(ctx, entry)
}

func (s *ActivityService) Query(ctx context.Context, userID int64, action string, limit int64) ([]*models.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.Store.Query(ctx, dao.LogFilter{UserID: userID, Action: action}, limit)
}

func (s *ActivityService) Delete(ctx context.Context, userID int64, action string) (int64, error) {
	return s.Store.DeleteByFilter(ctx, dao.LogFilter{UserID: userID, Action: action})
}
