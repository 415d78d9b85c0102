package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"foodigo/entity"
	"foodigo/utils"
)

type WithdrawService struct {
	DB *gorm.DB
}

func NewWithdrawService(db *gorm.DB) *WithdrawService {
	return &WithdrawService{DB: db}
}

type WithdrawMethodIn struct {
	ID             uint     `json:"id"`
	MethodName     string   `json:"method_name"`
	MinimumAmount  *float64 `json:"minimum_amount"`
	MaximumAmount  *float64 `json:"maximum_amount"`
	WithdrawCharge *float64 `json:"withdraw_charge"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
}

// AddOrEditSellerMethod creates or patches a seller withdraw method and
// keeps minimum <= maximum.
func (s *WithdrawService) AddOrEditSellerMethod(in *WithdrawMethodIn) (*entity.SellerWithdrawMethod, error) {
	if in.ID == 0 {
		if in.MethodName == "" {
			return nil, errors.New("Method name is required")
		}
		m := entity.SellerWithdrawMethod{
			MethodName:  in.MethodName,
			Description: in.Description,
			Status:      utils.NormalizeStatus(in.Status, "active"),
		}
		if in.MinimumAmount != nil {
			m.MinimumAmount = *in.MinimumAmount
		}
		if in.MaximumAmount != nil {
			m.MaximumAmount = *in.MaximumAmount
		}
		if in.WithdrawCharge != nil {
			m.WithdrawCharge = *in.WithdrawCharge
		}
		if err := checkAmountRange(m.MinimumAmount, m.MaximumAmount); err != nil {
			return nil, err
		}
		if err := s.DB.Create(&m).Error; err != nil {
			return nil, err
		}
		return &m, nil
	}

	var m entity.SellerWithdrawMethod
	if err := s.DB.First(&m, in.ID).Error; err != nil {
		return nil, errors.New("Withdraw method not found")
	}

	updates := methodUpdates(in, m.Status)
	minAmount, maxAmount := m.MinimumAmount, m.MaximumAmount
	if in.MinimumAmount != nil {
		minAmount = *in.MinimumAmount
	}
	if in.MaximumAmount != nil {
		maxAmount = *in.MaximumAmount
	}
	if err := checkAmountRange(minAmount, maxAmount); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&m).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if err := s.DB.First(&m, m.ID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteSellerMethod refuses when any request references the method.
func (s *WithdrawService) DeleteSellerMethod(id uint) error {
	var m entity.SellerWithdrawMethod
	if err := s.DB.First(&m, id).Error; err != nil {
		return errors.New("Withdraw method not found")
	}

	var count int64
	if err := s.DB.Model(&entity.SellerWithdrawRequest{}).
		Where("method_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("Withdraw method is in use and cannot be deleted")
	}
	return s.DB.Delete(&m).Error
}

// UpdateSellerRequestStatus moves a pending request to approved or rejected,
// stamping processed_at. Decided requests stay decided.
func (s *WithdrawService) UpdateSellerRequestStatus(id uint, status, comment string) (*entity.SellerWithdrawRequest, error) {
	if status != "approved" && status != "rejected" {
		return nil, errors.New("Status must be approved or rejected")
	}

	var req entity.SellerWithdrawRequest
	if err := s.DB.First(&req, id).Error; err != nil {
		return nil, errors.New("Withdraw request not found")
	}
	if req.Status != "pending" {
		return nil, errors.New("Withdraw request is already processed")
	}

	now := time.Now()
	updates := map[string]any{"status": status, "processed_at": now}
	if comment != "" {
		updates["comment"] = comment
	}
	if err := s.DB.Model(&req).Updates(updates).Error; err != nil {
		return nil, err
	}

	err := s.DB.Preload("Restaurant").Preload("Method").First(&req, id).Error
	return &req, err
}

func (s *WithdrawService) AddOrEditDeliveryMethod(in *WithdrawMethodIn) (*entity.DeliveryWithdrawMethod, error) {
	if in.ID == 0 {
		if in.MethodName == "" {
			return nil, errors.New("Method name is required")
		}
		m := entity.DeliveryWithdrawMethod{
			MethodName:  in.MethodName,
			Description: in.Description,
			Status:      utils.NormalizeStatus(in.Status, "active"),
		}
		if in.MinimumAmount != nil {
			m.MinimumAmount = *in.MinimumAmount
		}
		if in.MaximumAmount != nil {
			m.MaximumAmount = *in.MaximumAmount
		}
		if in.WithdrawCharge != nil {
			m.WithdrawCharge = *in.WithdrawCharge
		}
		if err := checkAmountRange(m.MinimumAmount, m.MaximumAmount); err != nil {
			return nil, err
		}
		if err := s.DB.Create(&m).Error; err != nil {
			return nil, err
		}
		return &m, nil
	}

	var m entity.DeliveryWithdrawMethod
	if err := s.DB.First(&m, in.ID).Error; err != nil {
		return nil, errors.New("Withdraw method not found")
	}

	updates := methodUpdates(in, m.Status)
	minAmount, maxAmount := m.MinimumAmount, m.MaximumAmount
	if in.MinimumAmount != nil {
		minAmount = *in.MinimumAmount
	}
	if in.MaximumAmount != nil {
		maxAmount = *in.MaximumAmount
	}
	if err := checkAmountRange(minAmount, maxAmount); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&m).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	if err := s.DB.First(&m, m.ID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *WithdrawService) DeleteDeliveryMethod(id uint) error {
	var m entity.DeliveryWithdrawMethod
	if err := s.DB.First(&m, id).Error; err != nil {
		return errors.New("Withdraw method not found")
	}

	var count int64
	if err := s.DB.Model(&entity.DeliveryWithdrawRequest{}).
		Where("method_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("Withdraw method is in use and cannot be deleted")
	}
	return s.DB.Delete(&m).Error
}

func (s *WithdrawService) UpdateDeliveryRequestStatus(id uint, status, comment string) (*entity.DeliveryWithdrawRequest, error) {
	if status != "approved" && status != "rejected" {
		return nil, errors.New("Status must be approved or rejected")
	}

	var req entity.DeliveryWithdrawRequest
	if err := s.DB.First(&req, id).Error; err != nil {
		return nil, errors.New("Withdraw request not found")
	}
	if req.Status != "pending" {
		return nil, errors.New("Withdraw request is already processed")
	}

	now := time.Now()
	updates := map[string]any{"status": status, "processed_at": now}
	if comment != "" {
		updates["comment"] = comment
	}
	if err := s.DB.Model(&req).Updates(updates).Error; err != nil {
		return nil, err
	}

	err := s.DB.Preload("Deliveryman").Preload("Method").First(&req, id).Error
	return &req, err
}

func methodUpdates(in *WithdrawMethodIn, currentStatus string) map[string]any {
	updates := map[string]any{}
	if in.MethodName != "" {
		updates["method_name"] = in.MethodName
	}
	if in.MinimumAmount != nil {
		updates["minimum_amount"] = *in.MinimumAmount
	}
	if in.MaximumAmount != nil {
		updates["maximum_amount"] = *in.MaximumAmount
	}
	if in.WithdrawCharge != nil {
		updates["withdraw_charge"] = *in.WithdrawCharge
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.Status != "" {
		updates["status"] = utils.NormalizeStatus(in.Status, currentStatus)
	}
	return updates
}

func checkAmountRange(minAmount, maxAmount float64) error {
	if maxAmount > 0 && minAmount > maxAmount {
		return errors.New("Minimum amount cannot exceed maximum amount")
	}
	return nil
}
