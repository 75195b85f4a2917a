package pets

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)
	phone10    = regexp.MustCompile(`^[0-9]{10}$`)
)

// fieldRule mapea el nombre del campo Go a la clave expuesta y su mensaje.
type fieldRule struct {
	Key     string
	Message string
}

var fieldRules = map[string]fieldRule{
	"Name":           {Key: "name", Message: "Pet name is required."},
	"Species":        {Key: "species", Message: "Species is required."},
	"Breed":          {Key: "breed", Message: "Breed is required."},
	"Location":       {Key: "location", Message: "Location is required."},
	"AgeMonths":      {Key: "ageMonths", Message: "Age must be greater than 0."},
	"Gender":         {Key: "gender", Message: "Gender is required."},
	"ContactEmail":   {Key: "contactEmail", Message: "Valid email is required."},
	"ContactPhone":   {Key: "contactPhone", Message: "Valid phone number is required."},
	"OwnerName":      {Key: "ownerName", Message: "Owner name is required."},
	"NationalID":     {Key: "nationalId", Message: "NIC is required."},
	"FosterDuration": {Key: "fosterDuration", Message: "Duration is required and must be a valid number."},
}

var recordValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return Gender(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phone10.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("durationcode", func(fl validator.FieldLevel) bool {
		return validDuration(fl.Field().String())
	})
	return v
}

// validDuration exige un número no negativo; vacío cuenta como ausente.
func validDuration(raw string) bool {
	f, ok := durationNumber(raw)
	return ok && f >= 0
}

// FieldErrors mapea campo -> mensaje legible. Vacío significa registro válido.
type FieldErrors map[string]string

func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Fields devuelve las claves ordenadas.
func (fe FieldErrors) Fields() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (fe FieldErrors) Error() string {
	if fe.Empty() {
		return "no validation errors"
	}
	parts := make([]string, 0, len(fe))
	for _, k := range fe.Fields() {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

// Validate evalúa todas las reglas sobre una copia del registro.
// No corta en el primer error y no tiene efectos secundarios.
func Validate(p Pet) FieldErrors {
	out := FieldErrors{}

	err := recordValidator.Struct(p)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Solo pasa si el validator recibe algo que no es struct.
		out["record"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		rule, ok := fieldRules[fe.StructField()]
		if !ok {
			out[fe.StructField()] = fe.StructField() + " is invalid."
			continue
		}
		out[rule.Key] = rule.Message
	}
	return out
}
