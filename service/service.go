package service

import (
	"carconnect/config"
	"carconnect/pkg/logger"
	"carconnect/pkg/notifier"
	"carconnect/storage"
)

type IServiceManager interface {
	Car() CarService
	Inquiry() InquiryService
	Auth() AuthService
}

type service struct {
	carService     CarService
	inquiryService InquiryService
	authService    AuthService
}

func New(stg storage.IStorage, cfg config.Config, notify notifier.LeadNotifier, log logger.ILogger) IServiceManager {
	return &service{
		carService:     NewCarService(stg, log),
		inquiryService: NewInquiryService(stg, notify, log),
		authService:    NewAuthService(stg, cfg, log),
	}
}

func (s *service) Car() CarService {
	return s.carService
}

func (s *service) Inquiry() InquiryService {
	return s.inquiryService
}

func (s *service) Auth() AuthService {
	return s.authService
}
