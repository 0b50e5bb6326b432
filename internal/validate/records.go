package validate

import (
	"strings"

	"chiragbattery/internal/domain"
)

type productBody struct {
	Name           *string  `json:"name"`
	Brand          *string  `json:"brand"`
	Type           *string  `json:"type"`
	CapacityAh     *float64 `json:"capacity_ah"`
	WarrantyMonths *int     `json:"warranty_months"`
	Price          *float64 `json:"price"`
	Description    *string  `json:"description"`
	InStock        *bool    `json:"in_stock"`
}

// Product decodes and checks a product body. in_stock defaults to true.
func Product(body []byte) (domain.Product, error) {
	verr := &Error{}
	var in productBody
	raw, ok := decodeObject(body, &in, verr)
	if !ok {
		return domain.Product{}, verr
	}

	requiredText(verr, "name", in.Name)
	if !verr.has("brand") {
		if in.Brand == nil || !domain.IsBrand(*in.Brand) {
			verr.add("brand", oneOf(domain.Brands))
		}
	}
	if !verr.has("type") {
		if in.Type == nil || !domain.IsType(*in.Type) {
			verr.add("type", oneOf(domain.Types))
		}
	}
	nonNegative(verr, "capacity_ah", in.CapacityAh)
	if in.WarrantyMonths != nil && *in.WarrantyMonths < 0 {
		verr.add("warranty_months", "must be greater than or equal to 0")
	}
	nonNegative(verr, "price", in.Price)
	if v, present := raw["in_stock"]; present && isNull(v) {
		verr.add("in_stock", "must be a boolean")
	}
	if err := verr.orNil(); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		Name:           *in.Name,
		Brand:          *in.Brand,
		Type:           *in.Type,
		CapacityAh:     in.CapacityAh,
		WarrantyMonths: in.WarrantyMonths,
		Price:          in.Price,
		Description:    in.Description,
		InStock:        true,
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	return p, nil
}

type inquiryBody struct {
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	Message          *string `json:"message"`
	ProductType      *string `json:"product_type"`
	Brand            *string `json:"brand"`
	PreferredContact *string `json:"preferred_contact"`
	City             *string `json:"city"`
}

// Inquiry decodes and checks an inquiry body, filling preferred_contact and
// city defaults. product_type and brand stay free text.
func Inquiry(body []byte) (domain.Inquiry, error) {
	verr := &Error{}
	var in inquiryBody
	raw, ok := decodeObject(body, &in, verr)
	if !ok {
		return domain.Inquiry{}, verr
	}

	requiredText(verr, "name", in.Name)
	requiredText(verr, "phone", in.Phone)

	contact := domain.DefaultContact
	if v, present := raw["preferred_contact"]; present && !verr.has("preferred_contact") {
		if isNull(v) || !domain.IsContact(*in.PreferredContact) {
			verr.add("preferred_contact", oneOf(domain.ContactMethods))
		} else {
			contact = *in.PreferredContact
		}
	}
	if err := verr.orNil(); err != nil {
		return domain.Inquiry{}, err
	}

	city := in.City
	if _, present := raw["city"]; !present {
		home := domain.HomeCity
		city = &home
	}
	return domain.Inquiry{
		Name:             *in.Name,
		Phone:            *in.Phone,
		Message:          in.Message,
		ProductType:      in.ProductType,
		Brand:            in.Brand,
		PreferredContact: contact,
		City:             city,
	}, nil
}

func requiredText(verr *Error, field string, v *string) {
	if verr.has(field) {
		return
	}
	if v == nil {
		verr.add(field, "field required")
		return
	}
	if strings.TrimSpace(*v) == "" {
		verr.add(field, "must not be empty")
	}
}

func nonNegative(verr *Error, field string, v *float64) {
	if v != nil && *v < 0 && !verr.has(field) {
		verr.add(field, "must be greater than or equal to 0")
	}
}
