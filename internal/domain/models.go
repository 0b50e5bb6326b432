package domain

// Shop identity served from the root route and used as the inquiry city default.
const (
	ShopName = "Chirag Battery"
	HomeCity = "Veraval, Gir Somnath"
)

// Collection names in the document store.
const (
	ProductCollection = "product"
	InquiryCollection = "inquiry"
)

var (
	Brands         = []string{"Amaron", "Exide", "Luminous"}
	Types          = []string{"bike-battery", "car-battery", "inverter", "inverter-battery"}
	ContactMethods = []string{"call", "whatsapp"}
	DefaultContact = "whatsapp"
)

// Product is a battery or inverter listed in the catalog.
// Optional numeric fields are nil when not applicable (e.g. capacity of a standalone inverter).
type Product struct {
	Name           string   `json:"name" bson:"name"`
	Brand          string   `json:"brand" bson:"brand"`
	Type           string   `json:"type" bson:"type"`
	CapacityAh     *float64 `json:"capacity_ah" bson:"capacity_ah"`
	WarrantyMonths *int     `json:"warranty_months" bson:"warranty_months"`
	Price          *float64 `json:"price" bson:"price"`
	Description    *string  `json:"description" bson:"description"`
	InStock        bool     `json:"in_stock" bson:"in_stock"`
}

// Inquiry is a customer callback request. ProductType and Brand are free text.
type Inquiry struct {
	Name             string  `json:"name" bson:"name"`
	Phone            string  `json:"phone" bson:"phone"`
	Message          *string `json:"message" bson:"message"`
	ProductType      *string `json:"product_type" bson:"product_type"`
	Brand            *string `json:"brand" bson:"brand"`
	PreferredContact string  `json:"preferred_contact" bson:"preferred_contact"`
	City             *string `json:"city" bson:"city"`
}

func IsBrand(s string) bool   { return contains(Brands, s) }
func IsType(s string) bool    { return contains(Types, s) }
func IsContact(s string) bool { return contains(ContactMethods, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
