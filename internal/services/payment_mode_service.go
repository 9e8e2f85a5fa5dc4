package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "quickspend/internal/errors"
	"quickspend/internal/models"
)

// defaultModes are seeded for every new user so shorthand entry works
// out of the box. Users can rename or delete them afterwards.
var defaultModes = []models.PaymentMode{
	{Name: "Cash", Shorthand: "C", Icon: "banknote", Color: "#4ade80"},
	{Name: "Card", Shorthand: "CC", Icon: "credit-card", Color: "#60a5fa"},
}

// paymentModeService handles payment-mode business logic.
type paymentModeService struct {
	db *gorm.DB
}

// NewPaymentModeService creates a new PaymentModeServicer.
func NewPaymentModeService(db *gorm.DB) PaymentModeServicer {
	return &paymentModeService{db: db}
}

// EnsureDefaults seeds the default payment modes for a user that has none.
// It is safe to call on every login.
func (s *paymentModeService) EnsureDefaults(userID string) error {
	var count int64
	if err := s.db.Model(&models.PaymentMode{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	for _, m := range defaultModes {
		mode := m
		mode.UserID = userID
		if err := s.db.Create(&mode).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// CreatePaymentMode creates a payment mode, rejecting duplicate names or
// shorthands for the same user (case-insensitive).
func (s *paymentModeService) CreatePaymentMode(userID, name, shorthand, icon, color string) (*models.PaymentMode, error) {
	name = strings.TrimSpace(name)
	shorthand = strings.TrimSpace(shorthand)
	if name == "" || shorthand == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and shorthand are required")
	}

	if err := s.checkDuplicate(userID, name, shorthand, ""); err != nil {
		return nil, err
	}

	mode := &models.PaymentMode{
		UserID:    userID,
		Name:      name,
		Shorthand: shorthand,
		Icon:      icon,
		Color:     color,
	}
	if err := s.db.Create(mode).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return mode, nil
}

// GetUserPaymentModes returns all payment modes for a user, oldest first.
// The modes list is small by design, so it is not paginated.
func (s *paymentModeService) GetUserPaymentModes(userID string) ([]models.PaymentMode, error) {
	var modes []models.PaymentMode
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&modes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return modes, nil
}

// GetPaymentModeByID retrieves a payment mode owned by the user.
func (s *paymentModeService) GetPaymentModeByID(userID, modeID string) (*models.PaymentMode, error) {
	var mode models.PaymentMode
	if err := s.db.Where("id = ? AND user_id = ?", modeID, userID).First(&mode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentModeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &mode, nil
}

// UpdatePaymentMode updates a payment mode's fields. Empty name or
// shorthand leaves the existing value in place.
func (s *paymentModeService) UpdatePaymentMode(userID, modeID, name, shorthand, icon, color string) (*models.PaymentMode, error) {
	mode, err := s.GetPaymentModeByID(userID, modeID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	shorthand = strings.TrimSpace(shorthand)
	if name == "" {
		name = mode.Name
	}
	if shorthand == "" {
		shorthand = mode.Shorthand
	}

	if err := s.checkDuplicate(userID, name, shorthand, mode.ID); err != nil {
		return nil, err
	}

	mode.Name = name
	mode.Shorthand = shorthand
	if icon != "" {
		mode.Icon = icon
	}
	if color != "" {
		mode.Color = color
	}

	if err := s.db.Save(mode).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return mode, nil
}

// DeletePaymentMode soft-deletes a payment mode. Existing transactions keep
// their display string since modes are denormalized onto transactions.
func (s *paymentModeService) DeletePaymentMode(userID, modeID string) error {
	mode, err := s.GetPaymentModeByID(userID, modeID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(mode).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// checkDuplicate returns ErrDuplicateMode when another mode of the same user
// already uses the name or shorthand. excludeID skips the mode being updated.
func (s *paymentModeService) checkDuplicate(userID, name, shorthand, excludeID string) error {
	q := s.db.Model(&models.PaymentMode{}).
		Where("user_id = ?", userID).
		Where("LOWER(name) = ? OR LOWER(shorthand) = ?", strings.ToLower(name), strings.ToLower(shorthand))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateMode
	}
	return nil
}
