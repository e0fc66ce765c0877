package service

import (
	"strings"

	"github.com/bolder-electric/internal/models"
	"github.com/bolder-electric/internal/repository"
)

// ContactService 联系信息管理
type ContactService struct {
	contactRepo repository.ContactInfoRepository
}

// NewContactService 创建联系信息管理实例
func NewContactService(contactRepo repository.ContactInfoRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// ContactInput 更新联系信息的入参
type ContactInput struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ServiceArea   string `json:"service_area"`
	BusinessHours string `json:"business_hours"`
}

// Get 获取联系信息
func (s *ContactService) Get() (*models.ContactInfo, error) {
	return s.contactRepo.Get()
}

// Save 创建或整行覆盖联系信息
func (s *ContactService) Save(input ContactInput) (*models.ContactInfo, error) {
	if strings.TrimSpace(input.Phone) == "" && strings.TrimSpace(input.Email) == "" {
		return nil, ErrValidation
	}
	info := &models.ContactInfo{
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		Address:       strings.TrimSpace(input.Address),
		ServiceArea:   strings.TrimSpace(input.ServiceArea),
		BusinessHours: strings.TrimSpace(input.BusinessHours),
	}
	if err := s.contactRepo.Upsert(info); err != nil {
		return nil, err
	}
	return info, nil
}
