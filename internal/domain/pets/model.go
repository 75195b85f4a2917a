package pets

// Gender define el sexo del animal.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// Reason define el motivo del ingreso.
// @Enum Temporary, Adopt
type Reason string

const (
	ReasonTemporary Reason = "Temporary"
	ReasonAdopt     Reason = "Adopt"
)

// PhysicalStatus es el resultado del chequeo físico (metadata administrativa).
type PhysicalStatus string

const (
	PhysicalApproved PhysicalStatus = "Approved"
	PhysicalRejected PhysicalStatus = "Rejected"
)

// DurationCode identifica el período de acogida; es lo único que define el costo base.
type DurationCode int

const (
	DurationNone DurationCode = iota
	DurationOneMonth
	DurationThreeMonths
	DurationSixMonths
	DurationOneYear
	DurationTwoYears
)

func (d DurationCode) String() string {
	switch d {
	case DurationNone:
		return "none"
	case DurationOneMonth:
		return "1 month"
	case DurationThreeMonths:
		return "3 months"
	case DurationSixMonths:
		return "6 months"
	case DurationOneYear:
		return "1 year"
	case DurationTwoYears:
		return "2 years"
	default:
		return "unknown"
	}
}

// Descuentos que ofrece el formulario (porcentaje).
const (
	DiscountNone    float64 = 0
	DiscountFive    float64 = 5
	DiscountTen     float64 = 10
	DiscountFifteen float64 = 15
)

// Discounts lista los descuentos seleccionables, en orden.
func Discounts() []float64 {
	return []float64{DiscountNone, DiscountFive, DiscountTen, DiscountFifteen}
}

// Pet es el registro de ingreso/adopción de un animal.
// El valor cero es el estado vacío del formulario (sin ID = no persistido).
// Los campos aceptan cualquier valor; Validate decide si el registro es guardable.
type Pet struct {
	ID string

	Name     string `validate:"notblank"`
	Species  string `validate:"notblank"`
	Breed    string `validate:"notblank"`
	Location string `validate:"notblank"`

	AgeMonths int    `validate:"gt=0"`
	Gender    Gender `validate:"gender"`

	Reason Reason
	// FosterDuration guarda el código de duración tal como se ingresó
	// (puede no ser numérico hasta que se valide).
	FosterDuration string `validate:"durationcode"`
	Justification  string

	ContactEmail string `validate:"emailshape"`
	ContactPhone string `validate:"phone10"`

	OwnerName  string `validate:"notblank"`
	NationalID string `validate:"notblank"`

	PhotoRef string

	// Metadata administrativa, pass-through.
	RegistrationStatus string
	PhysicalStatus     PhysicalStatus
	DoctorName         string
	DoctorStatus       string

	// Derivados: solo ApplyPricing los escribe.
	Discount  float64
	TotalCost int64
	NetCost   int64
}

// IsRemote indica si el registro ya existe en el Directory Service.
func (p Pet) IsRemote() bool {
	return p.ID != ""
}

// DurationCode interpreta FosterDuration; si no es numérico devuelve DurationNone.
func (p Pet) DurationCode() DurationCode {
	return ParseDurationCode(p.FosterDuration)
}

// ApplyPricing recalcula TotalCost y NetCost juntos a partir de la duración y el descuento.
func (p *Pet) ApplyPricing(discountPercent float64) Cost {
	c := Quote(p.DurationCode(), discountPercent)
	p.Discount = discountPercent
	p.TotalCost = c.Total
	p.NetCost = c.Net
	return c
}

// Reset deja el registro en el estado vacío por defecto.
func (p *Pet) Reset() {
	*p = Pet{}
}
