package service

import (
	"errors"

	"kidquest_backend/internal/model"
	"kidquest_backend/internal/repository"
	"kidquest_backend/internal/util"
	"kidquest_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type AchievementService struct {
	BadgeRepo      *repository.BadgeRepository
	ChildBadgeRepo *repository.ChildBadgeRepository
	AttemptRepo    *repository.AttemptRepository
	ChildRepo      *repository.ChildProfileRepository
}

func NewAchievementService(
	badgeRepo *repository.BadgeRepository,
	childBadgeRepo *repository.ChildBadgeRepository,
	attemptRepo *repository.AttemptRepository,
	childRepo *repository.ChildProfileRepository,
) *AchievementService {
	return &AchievementService{
		BadgeRepo:      badgeRepo,
		ChildBadgeRepo: childBadgeRepo,
		AttemptRepo:    attemptRepo,
		ChildRepo:      childRepo,
	}
}

type BadgeView struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	IsEarned    bool   `json:"isEarned"`

	// Rule fields are absent when the badge code does not parse.
	MetricKey       string `json:"metricKey,omitempty"`
	MetricLabel     string `json:"metricLabel,omitempty"`
	CurrentValue    int    `json:"currentValue,omitempty"`
	TargetValue     int    `json:"targetValue,omitempty"`
	ProgressPercent int    `json:"progressPercent,omitempty"`
}

type ChildBadgesResponse struct {
	AchievementMetrics
	Badges []BadgeView `json:"badges"`
}

// ChildBadges renders the badge wall for a child: computed metrics plus one
// row per active badge with earned/progress state.
func (s *AchievementService) ChildBadges(childProfileID uint) (*ChildBadgesResponse, error) {
	if _, err := s.ChildRepo.FindByID(childProfileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("child profile not found")
		}
		return nil, err
	}

	attempts, err := s.AttemptRepo.FindByChild(childProfileID)
	if err != nil {
		return nil, err
	}
	metrics := ComputeAchievementMetrics(attempts)

	badges, err := s.BadgeRepo.ListActive()
	if err != nil {
		return nil, err
	}

	awardedRows, err := s.ChildBadgeRepo.FindByChild(childProfileID)
	if err != nil {
		return nil, err
	}
	awarded := make(map[uint]struct{}, len(awardedRows))
	for _, row := range awardedRows {
		awarded[row.BadgeID] = struct{}{}
	}

	views := make([]BadgeView, len(badges))
	for i, badge := range badges {
		view := BadgeView{
			ID:          badge.ID,
			Code:        badge.Code,
			Title:       badge.Title,
			Description: badge.Description,
			Icon:        badge.Icon,
		}

		if rule := ParseBadgeCode(badge.Code); rule != nil {
			current := rule.CurrentValue(metrics)
			view.MetricKey = rule.MetricKey
			view.MetricLabel = rule.MetricLabel
			view.CurrentValue = current
			view.TargetValue = rule.Target
			view.ProgressPercent = rule.ProgressPercent(current)
			view.IsEarned = rule.Earned(current)
		}
		if _, ok := awarded[badge.ID]; ok {
			view.IsEarned = true
		}

		views[i] = view
	}

	return &ChildBadgesResponse{
		AchievementMetrics: metrics,
		Badges:             views,
	}, nil
}

// AwardFinishBadges inserts a ChildBadge row for every finished-games badge
// whose threshold the child's finished-attempt count has reached. Inserts are
// duplicate-safe, so re-running after every finish is harmless.
func (s *AchievementService) AwardFinishBadges(childProfileID uint) error {
	finished, err := s.AttemptRepo.CountFinishedByChild(childProfileID)
	if err != nil {
		return err
	}

	badges, err := s.BadgeRepo.ListActive()
	if err != nil {
		return err
	}

	for _, badge := range badges {
		rule := ParseBadgeCode(badge.Code)
		if rule == nil || rule.MetricKey != MetricFinishedGames {
			continue
		}
		if int64(rule.Target) > finished {
			continue
		}
		inserted, err := s.ChildBadgeRepo.Award(childProfileID, badge.ID)
		if err != nil {
			return err
		}
		if inserted {
			monitoring.BadgesAwarded.Inc()
		}
	}
	return nil
}

// Admin CRUD over badge definitions.

type BadgeRequest struct {
	Code        string `json:"code" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"isActive"`
}

func (s *AchievementService) ListBadges() ([]model.Badge, error) {
	return s.BadgeRepo.List()
}

func (s *AchievementService) CreateBadge(req BadgeRequest) (*model.Badge, error) {
	badge := &model.Badge{
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    req.IsActive,
	}
	if err := s.BadgeRepo.Create(badge); err != nil {
		return nil, err
	}
	return badge, nil
}

func (s *AchievementService) UpdateBadge(id uint, req BadgeRequest) (*model.Badge, error) {
	badge, err := s.BadgeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("badge not found")
		}
		return nil, err
	}

	badge.Code = req.Code
	badge.Title = req.Title
	badge.Description = req.Description
	badge.Icon = req.Icon
	badge.IsActive = req.IsActive
	if err := s.BadgeRepo.Update(badge); err != nil {
		return nil, err
	}
	return badge, nil
}

func (s *AchievementService) DeleteBadge(id uint) error {
	return s.BadgeRepo.Delete(id)
}
