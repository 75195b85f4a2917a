package pets

import (
	"reflect"
	"testing"
)

func validPet() Pet {
	return Pet{
		Name:           "Milo",
		Species:        "dog",
		Breed:          "mixed",
		Location:       "Colombo",
		AgeMonths:      14,
		Gender:         GenderMale,
		FosterDuration: "0",
		ContactEmail:   "owner@example.com",
		ContactPhone:   "0712345678",
		OwnerName:      "Ana",
		NationalID:     "901234567V",
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	if errs := Validate(validPet()); !errs.Empty() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_EmptyRecordFlagsEveryRequiredField(t *testing.T) {
	errs := Validate(Pet{})

	want := []string{
		"ageMonths", "breed", "contactEmail", "contactPhone", "fosterDuration",
		"gender", "location", "name", "nationalId", "ownerName", "species",
	}
	if got := errs.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	for _, optional := range []string{"reason", "justification", "photoRef", "id"} {
		if errs.Has(optional) {
			t.Fatalf("optional field %q should not be flagged", optional)
		}
	}
	if errs["nationalId"] != "NIC is required." {
		t.Fatalf("unexpected message: %q", errs["nationalId"])
	}
}

func TestValidate_BlankCountsAsEmpty(t *testing.T) {
	p := validPet()
	p.Name = "   "
	errs := Validate(p)
	if len(errs) != 1 || !errs.Has("name") {
		t.Fatalf("expected only name, got %v", errs)
	}
}

func TestValidate_Email(t *testing.T) {
	cases := map[string]bool{
		"not-an-email": false,
		"a@b":          false,
		"":             false,
		"a@b.co":       true,
	}
	for email, ok := range cases {
		p := validPet()
		p.ContactEmail = email
		if got := !Validate(p).Has("contactEmail"); got != ok {
			t.Fatalf("email %q: valid=%v, want %v", email, got, ok)
		}
	}
}

func TestValidate_Phone(t *testing.T) {
	cases := map[string]bool{
		"12345":       false,
		"071234567a":  false,
		"07123456789": false,
		"071 2345678": false,
		"0712345678":  true,
	}
	for phone, ok := range cases {
		p := validPet()
		p.ContactPhone = phone
		if got := !Validate(p).Has("contactPhone"); got != ok {
			t.Fatalf("phone %q: valid=%v, want %v", phone, got, ok)
		}
	}
}

func TestValidate_AgeAndGender(t *testing.T) {
	p := validPet()
	p.AgeMonths = -3
	p.Gender = "unknown"

	errs := Validate(p)
	if !errs.Has("ageMonths") || !errs.Has("gender") || len(errs) != 2 {
		t.Fatalf("expected ageMonths + gender, got %v", errs)
	}
}

func TestValidate_FosterDuration(t *testing.T) {
	cases := map[string]bool{
		"":    false,
		"abc": false,
		"-1":  false,
		"0":   true,
		"5":   true,
		"7":   true, // fuera de tabla pero numérico: lo resuelve el precio por defecto
		"2.5": true,
		"Inf": false,
		"NaN": false,
		"0x4": false,
		"1_0": false,
	}
	for raw, ok := range cases {
		p := validPet()
		p.FosterDuration = raw
		if got := !Validate(p).Has("fosterDuration"); got != ok {
			t.Fatalf("duration %q: valid=%v, want %v", raw, got, ok)
		}
	}
}

func TestValidate_AdministrativeFieldsPassThrough(t *testing.T) {
	p := validPet()
	p.PhysicalStatus = "whatever"
	p.RegistrationStatus = ""
	p.Reason = "???"
	if errs := Validate(p); !errs.Empty() {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	p := Pet{Name: " x "}
	before := p
	_ = Validate(p)
	if p != before {
		t.Fatalf("record mutated")
	}
}
