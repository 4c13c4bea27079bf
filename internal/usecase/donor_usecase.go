package usecase

import (
	"context"
	"fmt"
	"time"

	"lifelink-backend/internal/converter"
	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"
	"lifelink-backend/internal/domain/repository"
	"lifelink-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DonorUsecase interface {
	// FindDonors resolves the compatible-type set for the requested blood
	// group and returns every complete, available individual whose blood type
	// falls in it. Location and radius are accepted for forward compatibility
	// but are not applied as a filter yet.
	FindDonors(ctx context.Context, req *dto.FindDonorsRequest) (*dto.FindDonorsResponse, error)
	// NotifyDonors writes one notification per donor ID against the given
	// request. The fan-out is best effort: each donor's writes are
	// independent, failures are logged and skipped, and nothing is rolled
	// back or retried. There is no idempotency key, so re-invoking with the
	// same donor list creates duplicate notifications.
	NotifyDonors(ctx context.Context, callerID uuid.UUID, req *dto.NotifyDonorsRequest) (*dto.NotifyDonorsResponse, error)
}

type donorUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	profileRepo       repository.ProfileRepository
	requestRepo       repository.BloodRequestRepository
	notificationStore service.NotificationStore
}

func NewDonorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	requestRepo repository.BloodRequestRepository,
	notificationStore service.NotificationStore,
) DonorUsecase {
	return &donorUsecase{
		db:                db,
		log:               log,
		profileRepo:       profileRepo,
		requestRepo:       requestRepo,
		notificationStore: notificationStore,
	}
}

func (u *donorUsecase) FindDonors(ctx context.Context, req *dto.FindDonorsRequest) (*dto.FindDonorsResponse, error) {
	needed := entity.BloodType(req.BloodGroupNeeded)
	compatible := entity.CompatibleDonors(needed)

	compatibleStrings := make([]string, len(compatible))
	for i, t := range compatible {
		compatibleStrings[i] = string(t)
	}

	donors := []dto.DonorResponse{}
	if len(compatible) > 0 {
		profiles, err := u.profileRepo.FindAvailableDonors(u.db, compatible)
		if err != nil {
			u.log.Warnf("Failed to query donors: %+v", err)
			return nil, err
		}
		donors = converter.ProfilesToDonorResponses(profiles)
	}

	return &dto.FindDonorsResponse{
		Donors:           donors,
		BloodGroupNeeded: req.BloodGroupNeeded,
		CompatibleTypes:  compatibleStrings,
	}, nil
}

func (u *donorUsecase) NotifyDonors(ctx context.Context, callerID uuid.UUID, req *dto.NotifyDonorsRequest) (*dto.NotifyDonorsResponse, error) {
	request, err := u.requestRepo.FindByIDWithRelations(u.db, req.RequestID)
	if err != nil {
		u.log.Warnf("Failed to find blood request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	message := fmt.Sprintf(
		"Urgent: %s blood needed for %s at %s. Urgency: %s. Please respond if you can donate.",
		request.BloodType, request.PatientName, request.Hospital.Name, request.Urgency,
	)

	notified := 0
	for _, donorID := range req.DonorIDs {
		notification := &entity.Notification{
			ID:        uuid.New(),
			DonorID:   donorID,
			RequestID: request.ID,
			Message:   message,
			Urgency:   request.Urgency,
			Read:      false,
			CreatedAt: time.Now().UTC(),
		}

		if err := u.notificationStore.Save(ctx, notification); err != nil {
			// Best-effort broadcast: skip this donor and keep going
			u.log.Warnf("Failed to notify donor %s: %+v", donorID, err)
			continue
		}
		notified++
	}

	u.log.Infof("Notified %d/%d donors for request %s", notified, len(req.DonorIDs), request.ID)

	return &dto.NotifyDonorsResponse{
		Message:            fmt.Sprintf("Notified %d donors", notified),
		NotificationsCount: notified,
	}, nil
}
