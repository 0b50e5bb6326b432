package repos

import (
	"context"

	"chiragbattery/internal/domain"
)

type InquiryRepo struct{ st Store }

func NewInquiryRepo(st Store) *InquiryRepo { return &InquiryRepo{st: st} }

func (r *InquiryRepo) Insert(ctx context.Context, in domain.Inquiry) (string, error) {
	if r.st == nil {
		return "", ErrUnavailable
	}
	return r.st.Insert(ctx, domain.InquiryCollection, in)
}
