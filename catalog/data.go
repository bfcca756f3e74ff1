package catalog

import "hometown/models"

// Default returns the built-in Home Town Detailing catalog. Deployments with
// their own data set CATALOG_PATH to a JSON file of the same shape.
func Default() *Catalog {
	return &Catalog{
		ServiceTypes: []models.ServiceType{
			{
				ID:   "auto-detailing",
				Name: "Auto Detailing",
				Variants: []models.Variant{
					{
						ID:   "sedan",
						Name: "Sedan / Coupe",
						Packages: []models.Package{
							{ID: "sedan-express", Name: "Express Detail", Price: 89, Description: "Exterior hand wash and interior wipe-down", Includes: []string{"Hand wash & dry", "Wheel cleaning", "Interior vacuum", "Window cleaning"}},
							{ID: "sedan-full", Name: "Full Detail", Price: 179, Includes: []string{"Everything in Express", "Clay bar treatment", "Carpet shampoo", "Leather conditioning", "Spray wax"}},
							{ID: "sedan-showroom", Name: "Showroom Detail", Price: 289, Includes: []string{"Everything in Full", "One-step polish", "Engine bay dressing", "Sealant application"}},
						},
						AdditionalServices: []models.AddOn{
							{ID: "sedan-pet-hair", Name: "Pet Hair Removal", Price: 35},
							{ID: "sedan-odor", Name: "Odor Elimination", Price: 45},
							{ID: "sedan-headlight", Name: "Headlight Restoration", Price: 60},
						},
					},
					{
						ID:   "suv-truck",
						Name: "SUV / Truck",
						Packages: []models.Package{
							{ID: "suv-express", Name: "Express Detail", Price: 109, Includes: []string{"Hand wash & dry", "Wheel cleaning", "Interior vacuum", "Window cleaning"}},
							{ID: "suv-full", Name: "Full Detail", Price: 219, Includes: []string{"Everything in Express", "Clay bar treatment", "Carpet shampoo", "Leather conditioning", "Spray wax"}},
							{ID: "suv-showroom", Name: "Showroom Detail", Price: 339, Includes: []string{"Everything in Full", "One-step polish", "Engine bay dressing", "Sealant application"}},
						},
						AdditionalServices: []models.AddOn{
							{ID: "suv-pet-hair", Name: "Pet Hair Removal", Price: 45},
							{ID: "suv-odor", Name: "Odor Elimination", Price: 45},
							{ID: "suv-third-row", Name: "Third Row Deep Clean", Price: 40},
						},
					},
					{
						ID:   "motorcycle",
						Name: "Motorcycle",
						Packages: []models.Package{
							{ID: "moto-wash", Name: "Wash & Shine", Price: 59},
							{ID: "moto-full", Name: "Full Detail", Price: 129, Includes: []string{"Degrease & wash", "Chrome polish", "Wax & seat conditioning"}},
						},
					},
				},
			},
			{
				ID:   "boat-detailing",
				Name: "Boat Detailing",
				Packages: []models.Package{
					{ID: "boat-wash-wax", Name: "Wash & Wax", Price: 12, PricingType: models.PricingPerFoot, Description: "Priced per foot of hull length"},
					{ID: "boat-full", Name: "Full Detail", Price: 20, PricingType: models.PricingPerFoot, Includes: []string{"Hull wash & wax", "Oxidation removal", "Interior detail", "Metal polish"}},
				},
				AdditionalServices: []models.AddOn{
					{ID: "boat-teak", Name: "Teak Cleaning", Price: 95},
					{ID: "boat-canvas", Name: "Canvas Treatment", Price: 75},
				},
			},
			{
				ID:   "rv-detailing",
				Name: "RV Detailing",
				Packages: []models.Package{
					{ID: "rv-exterior", Name: "Exterior Wash & Wax", Price: 10, PricingType: models.PricingPerFoot},
					{ID: "rv-full", Name: "Full Detail", Price: 18, PricingType: models.PricingPerFoot, Includes: []string{"Exterior wash & wax", "Roof treatment", "Interior deep clean"}},
				},
				AdditionalServices: []models.AddOn{
					{ID: "rv-awning", Name: "Awning Cleaning", Price: 55},
					{ID: "rv-roof-seal", Name: "Roof Seal Inspection", Price: 85},
				},
			},
		},
		MainServices: []models.MainService{
			{
				ID:   "ceramic-coating",
				Name: "Ceramic Coating",
				Packages: []models.Package{
					{ID: "ceramic-1yr", Name: "1-Year Coating", Price: 499, Includes: []string{"Single-layer coating", "Paint decontamination", "1-year warranty"}},
					{ID: "ceramic-3yr", Name: "3-Year Coating", Price: 799, Includes: []string{"Two-layer coating", "One-step polish", "3-year warranty"}},
					{ID: "ceramic-5yr", Name: "5-Year Coating", Price: 1199, Includes: []string{"Multi-layer coating", "Two-step paint correction", "5-year warranty"}},
				},
			},
			{
				ID:   "paint-correction",
				Name: "Paint Correction",
				Packages: []models.Package{
					{ID: "paint-one-step", Name: "One-Step Polish", Price: 349},
					{ID: "paint-two-step", Name: "Two-Step Correction", Price: 599, Includes: []string{"Compound & polish", "Swirl and scratch removal", "Finishing sealant"}},
				},
			},
			{
				ID:   "window-tinting",
				Name: "Window Tinting",
				Packages: []models.Package{
					{ID: "tint-front", Name: "Front Windows", Price: 129},
					{ID: "tint-full", Name: "Full Vehicle", Price: 299, Includes: []string{"All side windows", "Rear windshield", "Lifetime film warranty"}},
				},
			},
		},
		TimeSlots: []string{
			"8:00 AM - 10:00 AM",
			"10:00 AM - 12:00 PM",
			"12:00 PM - 2:00 PM",
			"2:00 PM - 4:00 PM",
			"4:00 PM - 6:00 PM",
		},
		PromoCodes: []models.PromoCode{
			{Code: "SAVE10", Discount: 10},
			{Code: "WELCOME15", Discount: 15},
			{Code: "DETAIL20", Discount: 20},
		},
	}
}
