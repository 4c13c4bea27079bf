package usecase

import (
	"context"
	"time"

	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"
	"lifelink-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Aggregate reads run under a fixed deadline; expiry surfaces as a generic
// storage failure.
const analyticsQueryTimeout = 5 * time.Second

type AnalyticsUsecase interface {
	// PlatformStats returns platform-wide aggregates. Platform admin only.
	PlatformStats(ctx context.Context, callerID uuid.UUID) (*dto.PlatformStatsResponse, error)
	// HospitalStats returns per-hospital breakdowns. Platform admin or the
	// affiliated hospital admin only.
	HospitalStats(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.HospitalStatsResponse, error)
}

type analyticsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	hospitalRepo repository.HospitalRepository
}

func NewAnalyticsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	hospitalRepo repository.HospitalRepository,
) AnalyticsUsecase {
	return &analyticsUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		hospitalRepo: hospitalRepo,
	}
}

type statusCount struct {
	Status string
	Count  int64
}

type urgencyCount struct {
	Urgency string
	Count   int64
}

func (u *analyticsUsecase) PlatformStats(ctx context.Context, callerID uuid.UUID) (*dto.PlatformStatsResponse, error) {
	caller, err := u.userRepo.FindByID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if !entity.IsRole(caller, entity.RolePlatformAdmin) {
		return nil, ErrNotAuthorized
	}

	ctx, cancel := context.WithTimeout(ctx, analyticsQueryTimeout)
	defer cancel()
	db := u.db.WithContext(ctx)

	stats := &dto.PlatformStatsResponse{
		HospitalsByStatus: map[string]int64{},
		RequestsByStatus:  map[string]int64{},
	}

	if err := db.Model(&entity.User{}).Count(&stats.TotalUsers).Error; err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}

	if err := db.Model(&entity.Profile{}).
		Where("profile_complete = ? AND availability = ?", true, entity.AvailabilityAvailable).
		Count(&stats.AvailableDonors).Error; err != nil {
		u.log.Warnf("Failed to count available donors: %+v", err)
		return nil, err
	}

	var hospitalCounts []statusCount
	if err := db.Model(&entity.Hospital{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&hospitalCounts).Error; err != nil {
		u.log.Warnf("Failed to count hospitals: %+v", err)
		return nil, err
	}
	for _, c := range hospitalCounts {
		stats.HospitalsByStatus[c.Status] = c.Count
	}

	var requestCounts []statusCount
	if err := db.Model(&entity.BloodRequest{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&requestCounts).Error; err != nil {
		u.log.Warnf("Failed to count blood requests: %+v", err)
		return nil, err
	}
	for _, c := range requestCounts {
		stats.RequestsByStatus[c.Status] = c.Count
	}

	if err := db.Model(&entity.Donation{}).Count(&stats.TotalDonations).Error; err != nil {
		u.log.Warnf("Failed to count donations: %+v", err)
		return nil, err
	}

	// 30-day growth rate: new users in the window over users before it
	windowStart := time.Now().UTC().AddDate(0, 0, -30)

	if err := db.Model(&entity.User{}).
		Where("created_at >= ?", windowStart).
		Count(&stats.NewUsersLast30Days).Error; err != nil {
		u.log.Warnf("Failed to count recent users: %+v", err)
		return nil, err
	}

	priorUsers := stats.TotalUsers - stats.NewUsersLast30Days
	if priorUsers > 0 {
		stats.UserGrowthRate30d = float64(stats.NewUsersLast30Days) / float64(priorUsers) * 100
	}

	return stats, nil
}

func (u *analyticsUsecase) HospitalStats(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.HospitalStatsResponse, error) {
	caller, err := u.userRepo.FindByID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	profile, err := u.profileRepo.FindByUserID(u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller profile: %+v", err)
		return nil, err
	}
	if !entity.CanAccessHospital(caller, profile, hospitalID) {
		return nil, ErrNotAuthorized
	}

	hospital, err := u.hospitalRepo.FindByID(u.db, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, analyticsQueryTimeout)
	defer cancel()
	db := u.db.WithContext(ctx)

	stats := &dto.HospitalStatsResponse{
		HospitalID:        hospitalID.String(),
		HospitalName:      hospital.Name,
		RequestsByStatus:  map[string]int64{},
		RequestsByUrgency: map[string]int64{},
	}

	var requestCounts []statusCount
	if err := db.Model(&entity.BloodRequest{}).
		Select("status, COUNT(*) as count").
		Where("hospital_id = ?", hospitalID).
		Group("status").
		Scan(&requestCounts).Error; err != nil {
		u.log.Warnf("Failed to count hospital requests: %+v", err)
		return nil, err
	}
	for _, c := range requestCounts {
		stats.RequestsByStatus[c.Status] = c.Count
	}

	var urgencyCounts []urgencyCount
	if err := db.Model(&entity.BloodRequest{}).
		Select("urgency, COUNT(*) as count").
		Where("hospital_id = ?", hospitalID).
		Group("urgency").
		Scan(&urgencyCounts).Error; err != nil {
		u.log.Warnf("Failed to count request urgencies: %+v", err)
		return nil, err
	}
	for _, c := range urgencyCounts {
		stats.RequestsByUrgency[c.Urgency] = c.Count
	}

	stats.ActiveRequests = stats.RequestsByStatus[string(entity.RequestStatusActive)]

	if err := db.Model(&entity.Donation{}).
		Where("hospital_id = ?", hospitalID).
		Count(&stats.TotalDonations).Error; err != nil {
		u.log.Warnf("Failed to count hospital donations: %+v", err)
		return nil, err
	}

	return stats, nil
}
