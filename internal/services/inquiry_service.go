package services

import (
	"context"

	"chiragbattery/internal/domain"
	"chiragbattery/internal/repos"
)

// InquiryService records customer callback requests. Nothing is sent to the customer.
type InquiryService struct {
	Inquiries *repos.InquiryRepo
}

func NewInquiryService(inq *repos.InquiryRepo) *InquiryService {
	return &InquiryService{Inquiries: inq}
}

func (s *InquiryService) Submit(ctx context.Context, in domain.Inquiry) (string, error) {
	return s.Inquiries.Insert(ctx, in)
}
