package domain

func ptr[T any](v T) *T { return &v }

// SampleProducts is the demo catalog inserted into an empty product collection.
func SampleProducts() []Product {
	return []Product{
		{Name: "Amaron Pro Rider", Brand: "Amaron", Type: "bike-battery", CapacityAh: ptr(9.0), WarrantyMonths: ptr(48), Price: ptr(1699.0), Description: ptr("Maintenance-free bike battery"), InStock: true},
		{Name: "Exide Xplore", Brand: "Exide", Type: "bike-battery", CapacityAh: ptr(9.0), WarrantyMonths: ptr(48), Price: ptr(1599.0), Description: ptr("Reliable performance for bikes"), InStock: true},
		{Name: "Amaron Flo 55B24L", Brand: "Amaron", Type: "car-battery", CapacityAh: ptr(45.0), WarrantyMonths: ptr(48), Price: ptr(5499.0), Description: ptr("High cranking power"), InStock: true},
		{Name: "Exide Mileage 35L", Brand: "Exide", Type: "car-battery", CapacityAh: ptr(35.0), WarrantyMonths: ptr(44), Price: ptr(4899.0), Description: ptr("Long life, low maintenance"), InStock: true},
		{Name: "Luminous Zelio+ 1100", Brand: "Luminous", Type: "inverter", CapacityAh: nil, WarrantyMonths: ptr(24), Price: ptr(6999.0), Description: ptr("Pure sine wave inverter"), InStock: true},
		{Name: "Luminous RC 18000", Brand: "Luminous", Type: "inverter-battery", CapacityAh: ptr(150.0), WarrantyMonths: ptr(36), Price: ptr(13499.0), Description: ptr("Tubular inverter battery"), InStock: true},
	}
}
