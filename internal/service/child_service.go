package service

import (
	"errors"

	"kidquest_backend/internal/model"
	"kidquest_backend/internal/repository"
	"kidquest_backend/internal/util"

	"gorm.io/gorm"
)

type ChildService struct {
	ChildRepo    *repository.ChildProfileRepository
	AgeGroupRepo *repository.AgeGroupRepository
}

func NewChildService(childRepo *repository.ChildProfileRepository, ageGroupRepo *repository.AgeGroupRepository) *ChildService {
	return &ChildService{ChildRepo: childRepo, AgeGroupRepo: ageGroupRepo}
}

type ChildProfileRequest struct {
	Name       string `json:"name" binding:"required"`
	Avatar     string `json:"avatar"`
	AgeGroupID uint   `json:"ageGroupId"`
}

// EnsureOwnership loads the profile and verifies it belongs to the caller.
// Admins may act on any profile.
func (s *ChildService) EnsureOwnership(claims *util.Claims, childProfileID uint) (*model.ChildProfile, error) {
	profile, err := s.ChildRepo.FindByID(childProfileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("child profile not found")
		}
		return nil, err
	}
	if claims.Role != model.Admin && profile.UserID != claims.UserID {
		return nil, util.NotFoundError("child profile not found")
	}
	return profile, nil
}

func (s *ChildService) ListByParent(userID uint) ([]model.ChildProfile, error) {
	return s.ChildRepo.FindByUserID(userID)
}

func (s *ChildService) Create(userID uint, req ChildProfileRequest) (*model.ChildProfile, error) {
	if req.AgeGroupID != 0 {
		if _, err := s.AgeGroupRepo.FindByID(req.AgeGroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ValidationError("unknown age group")
			}
			return nil, err
		}
	}

	profile := &model.ChildProfile{
		UserID:     userID,
		Name:       req.Name,
		Avatar:     req.Avatar,
		AgeGroupID: req.AgeGroupID,
	}
	if err := s.ChildRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ChildService) Update(claims *util.Claims, childProfileID uint, req ChildProfileRequest) (*model.ChildProfile, error) {
	profile, err := s.EnsureOwnership(claims, childProfileID)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Avatar = req.Avatar
	if req.AgeGroupID != 0 {
		profile.AgeGroupID = req.AgeGroupID
	}
	if err := s.ChildRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ChildService) Delete(claims *util.Claims, childProfileID uint) error {
	if _, err := s.EnsureOwnership(claims, childProfileID); err != nil {
		return err
	}
	return s.ChildRepo.Delete(childProfileID)
}
