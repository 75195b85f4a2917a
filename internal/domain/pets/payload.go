package pets

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Payload es la representación JSON del registro que usa el Directory Service
// (claves heredadas del servicio: petName, specie, ifTemp, nic...).
// La comparten el handler HTTP y el cliente del servicio.
type Payload struct {
	ID                 string      `json:"id"`
	PetName            string      `json:"petName"`
	Specie             string      `json:"specie"`
	Breed              string      `json:"breed"`
	Location           string      `json:"location"`
	Age                LooseString `json:"age" swaggertype:"string"`
	Gender             string      `json:"gender"`
	Reason             string      `json:"reason"`
	IfTemp             LooseString `json:"ifTemp" swaggertype:"string"`
	Justify            string      `json:"justify"`
	ContactEmail       string      `json:"contactEmail"`
	ContactPhoneNumber string      `json:"contactPhoneNumber"`
	OwnerName          string      `json:"ownerName"`
	NIC                string      `json:"nic"`
	Photo              string      `json:"photo"`
	RegStatus          string      `json:"regStatus"`
	PhysicalStatus     string      `json:"physicalStatus"`
	DocName            string      `json:"docName"`
	DocStatus          string      `json:"docStatus"`
	Discount           float64     `json:"discount"`
	TotalCost          float64     `json:"totalCost"`
	NetCost            float64     `json:"netCost"`
}

// LooseString acepta string o número en JSON (los clientes mandan ambos).
type LooseString string

func (s *LooseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = LooseString(n.String())
	return nil
}

func ToPayload(p Pet) Payload {
	age := ""
	if p.AgeMonths != 0 {
		age = strconv.Itoa(p.AgeMonths)
	}
	return Payload{
		ID:                 p.ID,
		PetName:            p.Name,
		Specie:             p.Species,
		Breed:              p.Breed,
		Location:           p.Location,
		Age:                LooseString(age),
		Gender:             string(p.Gender),
		Reason:             string(p.Reason),
		IfTemp:             LooseString(p.FosterDuration),
		Justify:            p.Justification,
		ContactEmail:       p.ContactEmail,
		ContactPhoneNumber: p.ContactPhone,
		OwnerName:          p.OwnerName,
		NIC:                p.NationalID,
		Photo:              p.PhotoRef,
		RegStatus:          p.RegistrationStatus,
		PhysicalStatus:     string(p.PhysicalStatus),
		DocName:            p.DoctorName,
		DocStatus:          p.DoctorStatus,
		Discount:           p.Discount,
		TotalCost:          float64(p.TotalCost),
		NetCost:            float64(p.NetCost),
	}
}

// FromPayload nunca falla: valores mal formados quedan en el registro
// (edad no numérica => 0) y los detecta Validate.
func FromPayload(in Payload) Pet {
	age, _ := strconv.Atoi(strings.TrimSpace(string(in.Age)))
	return Pet{
		ID:                 strings.TrimSpace(in.ID),
		Name:               in.PetName,
		Species:            in.Specie,
		Breed:              in.Breed,
		Location:           in.Location,
		AgeMonths:          age,
		Gender:             Gender(in.Gender),
		Reason:             Reason(in.Reason),
		FosterDuration:     string(in.IfTemp),
		Justification:      in.Justify,
		ContactEmail:       in.ContactEmail,
		ContactPhone:       in.ContactPhoneNumber,
		OwnerName:          in.OwnerName,
		NationalID:         in.NIC,
		PhotoRef:           in.Photo,
		RegistrationStatus: in.RegStatus,
		PhysicalStatus:     PhysicalStatus(in.PhysicalStatus),
		DoctorName:         in.DocName,
		DoctorStatus:       in.DocStatus,
		Discount:           in.Discount,
		TotalCost:          int64(math.Round(in.TotalCost)),
		NetCost:            int64(math.Round(in.NetCost)),
	}
}
