package domain

// Step is a position in the four-step listing submission flow.
type Step int

const (
	StepBasics     Step = 1 // contact and location
	StepSpecs      Step = 2 // structural specs
	StepFinancials Step = 3 // rent, title, description
	StepMedia      Step = 4 // photos
)

// Draft is a listing under construction. It carries every listing field
// except identity and timestamps, which are assigned by the repository when
// the submission completes.
type Draft struct {
	Type            PropertyType     `json:"type"`
	Pincode         string           `json:"pincode"`
	Mobile          string           `json:"mobile"`
	PreferWhatsApp  bool             `json:"preferWhatsApp"`
	AllowCalls      bool             `json:"allowCalls"`
	AllowChat       bool             `json:"allowChat"`
	BHK             string           `json:"bhk"`
	Bathrooms       string           `json:"bathrooms"`
	Furnishing      Furnishing       `json:"furnishing"`
	BuiltUpArea     string           `json:"builtUpArea"`
	CarpetArea      string           `json:"carpetArea"`
	PreferredTenant TenantPreference `json:"preferredTenant"`
	MonthlyRent     string           `json:"monthlyRent"`
	Advance         string           `json:"advance"`
	Negotiable      bool             `json:"negotiable"`
	MaintenanceFee  string           `json:"maintenanceFee"`
	TotalFloors     string           `json:"totalFloors"`
	FloorNumber     string           `json:"floorNumber"`
	Parking         bool             `json:"parking"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Images          []string         `json:"images"`
	IsActive        bool             `json:"isActive"`
}

// NewDraft returns a draft pre-filled with the product's defaults for a
// brand-new listing.
func NewDraft() Draft {
	return Draft{
		Type:            TypeApartment,
		PreferWhatsApp:  true,
		AllowCalls:      true,
		AllowChat:       true,
		BHK:             "1 BHK",
		Bathrooms:       "1",
		Furnishing:      FurnishingSemi,
		PreferredTenant: TenantFamily,
		Negotiable:      true,
		MaintenanceFee:  "0",
		Parking:         true,
		IsActive:        true,
	}
}

// DraftFromListing pre-populates a draft from an existing listing for the
// edit flow. Editing always restarts at step one.
func DraftFromListing(l Listing) Draft {
	images := make([]string, len(l.Images))
	copy(images, l.Images)
	return Draft{
		Type:            l.Type,
		Pincode:         l.Pincode,
		Mobile:          l.Mobile,
		PreferWhatsApp:  l.PreferWhatsApp,
		AllowCalls:      l.AllowCalls,
		AllowChat:       l.AllowChat,
		BHK:             l.BHK,
		Bathrooms:       l.Bathrooms,
		Furnishing:      l.Furnishing,
		BuiltUpArea:     l.BuiltUpArea,
		CarpetArea:      l.CarpetArea,
		PreferredTenant: l.PreferredTenant,
		MonthlyRent:     l.MonthlyRent,
		Advance:         l.Advance,
		Negotiable:      l.Negotiable,
		MaintenanceFee:  l.MaintenanceFee,
		TotalFloors:     l.TotalFloors,
		FloorNumber:     l.FloorNumber,
		Parking:         l.Parking,
		Title:           l.Title,
		Description:     l.Description,
		Images:          images,
		IsActive:        l.IsActive,
	}
}

// StepValid reports whether the given step's required fields are complete.
// Forward progress past a step is allowed only when it holds.
func (d Draft) StepValid(s Step) bool {
	switch s {
	case StepBasics:
		return d.Pincode != "" && d.Mobile != "" && (d.AllowCalls || d.AllowChat)
	case StepSpecs:
		return d.BuiltUpArea != "" && d.CarpetArea != ""
	case StepFinancials:
		return d.MonthlyRent != "" && d.Title != "" && d.Description != ""
	case StepMedia:
		return len(d.Images) >= 1
	default:
		return false
	}
}

// Listing materializes the draft into a listing record. Identity, ownership
// and the creation timestamp are supplied by the caller; the draft never
// owns them.
func (d Draft) Listing(id, ownerID string, createdAt int64) Listing {
	images := make([]string, len(d.Images))
	copy(images, d.Images)
	return Listing{
		ID:              id,
		OwnerID:         ownerID,
		Type:            d.Type,
		Pincode:         d.Pincode,
		Mobile:          d.Mobile,
		PreferWhatsApp:  d.PreferWhatsApp,
		AllowCalls:      d.AllowCalls,
		AllowChat:       d.AllowChat,
		BHK:             d.BHK,
		Bathrooms:       d.Bathrooms,
		Furnishing:      d.Furnishing,
		BuiltUpArea:     d.BuiltUpArea,
		CarpetArea:      d.CarpetArea,
		PreferredTenant: d.PreferredTenant,
		MonthlyRent:     d.MonthlyRent,
		Advance:         d.Advance,
		Negotiable:      d.Negotiable,
		MaintenanceFee:  d.MaintenanceFee,
		TotalFloors:     d.TotalFloors,
		FloorNumber:     d.FloorNumber,
		Parking:         d.Parking,
		Title:           d.Title,
		Description:     d.Description,
		Images:          images,
		CreatedAt:       createdAt,
		IsActive:        d.IsActive,
	}
}
