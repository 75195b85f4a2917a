package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pet-intake/internal/domain/pets"
)

// recordFile es el documento YAML que reemplaza al formulario.
type recordFile struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Species        string  `yaml:"species"`
	Breed          string  `yaml:"breed"`
	Location       string  `yaml:"location"`
	AgeMonths      int     `yaml:"ageMonths"`
	Gender         string  `yaml:"gender"`
	Reason         string  `yaml:"reason"`
	FosterDuration string  `yaml:"fosterDuration"`
	Justification  string  `yaml:"justification"`
	ContactEmail   string  `yaml:"contactEmail"`
	ContactPhone   string  `yaml:"contactPhone"`
	OwnerName      string  `yaml:"ownerName"`
	NationalID     string  `yaml:"nationalId"`
	Photo          string  `yaml:"photo"`
	Discount       float64 `yaml:"discount"`

	// Administrativos: no se validan pero viajan completos en el update.
	RegistrationStatus string `yaml:"registrationStatus"`
	PhysicalStatus     string `yaml:"physicalStatus"`
	DoctorName         string `yaml:"doctorName"`
	DoctorStatus       string `yaml:"doctorStatus"`
}

// loadRecord lee el archivo y devuelve el registro con costos ya calculados.
func loadRecord(path string) (pets.Pet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("read record %s: %w", path, err)
	}

	var dto recordFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return pets.Pet{}, fmt.Errorf("parse record %s: %w", path, err)
	}

	p := mapRecord(dto)
	p.ApplyPricing(dto.Discount)
	return p, nil
}

func mapRecord(dto recordFile) pets.Pet {
	return pets.Pet{
		ID:             strings.TrimSpace(dto.ID),
		Name:           dto.Name,
		Species:        dto.Species,
		Breed:          dto.Breed,
		Location:       dto.Location,
		AgeMonths:      dto.AgeMonths,
		Gender:         pets.Gender(dto.Gender),
		Reason:         pets.Reason(dto.Reason),
		FosterDuration: dto.FosterDuration,
		Justification:  dto.Justification,
		ContactEmail:   dto.ContactEmail,
		ContactPhone:   dto.ContactPhone,
		OwnerName:      dto.OwnerName,
		NationalID:     dto.NationalID,
		PhotoRef:       dto.Photo,

		RegistrationStatus: dto.RegistrationStatus,
		PhysicalStatus:     pets.PhysicalStatus(dto.PhysicalStatus),
		DoctorName:         dto.DoctorName,
		DoctorStatus:       dto.DoctorStatus,
	}
}
