package services

import (
	"errors"
	"fmt"

	"gymdesk_backend/internal/models"
	"gymdesk_backend/internal/repositories"
	"gymdesk_backend/pkg/utils"
)

var (
	ErrNotificationValidation = errors.New("notification request validation error")
)

// NotificationService resolves recipients and reports a delivery
// count. Dispatch is fire-and-forget: there is no persisted entity and
// no external provider, the structured log is the delivery record.
type NotificationService interface {
	Send(gymID string, req models.NotificationRequest) (int, error)
}

type notificationService struct {
	memberRepo repositories.MemberRepository
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(memberRepo repositories.MemberRepository) NotificationService {
	return &notificationService{memberRepo: memberRepo}
}

func (s *notificationService) Send(gymID string, req models.NotificationRequest) (int, error) {
	if utils.IsEmpty(req.Title) || utils.IsEmpty(req.Message) {
		return 0, fmt.Errorf("%w: title and message are required", ErrNotificationValidation)
	}

	recipients := req.Recipients
	if len(recipients) == 0 {
		members, err := s.resolveRule(gymID, req.SelectionRule)
		if err != nil {
			return 0, err
		}
		for _, m := range members {
			recipients = append(recipients, m.Email)
		}
	}

	for _, recipient := range recipients {
		utils.LogInfo("Notification dispatched", map[string]interface{}{
			"gym_id":    gymID,
			"type":      req.Type,
			"recipient": recipient,
			"title":     req.Title,
		})
	}
	return len(recipients), nil
}

// resolveRule expands a selection rule into members. An empty rule
// means the whole gym.
func (s *notificationService) resolveRule(gymID string, rule *models.SelectionRule) ([]models.Member, error) {
	var (
		members []models.Member
		err     error
	)
	if rule != nil && rule.Status != "" {
		members, err = s.memberRepo.ListByStatus(gymID, rule.Status)
	} else {
		members, err = s.memberRepo.List(gymID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve notification recipients: %w", err)
	}
	return members, nil
}
