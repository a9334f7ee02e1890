package vehicle

import (
	"errors"
	"strings"

	"github.com/nextgencars/backend/internal/domain/query"
	"github.com/nextgencars/backend/pkg/types"
)

type CreateVehicleInput struct {
	ClientID     uint    `json:"client_id" binding:"required" example:"1"`
	Make         string  `json:"make" binding:"required" example:"Volkswagen"`
	Model        string  `json:"model" binding:"required" example:"Golf"`
	Year         *int    `json:"year,omitempty" binding:"omitempty,min=1900,max=2100" example:"2019"`
	LicensePlate string  `json:"license_plate" binding:"required" example:"HH-AB 1234"`
	VIN          *string `json:"vin,omitempty"`
	HSN          *string `json:"hsn,omitempty"`
	TSN          *string `json:"tsn,omitempty"`
	FuelType     *string `json:"fuel_type,omitempty"`
	Drive        *string `json:"drive,omitempty"`
	Transmission *string `json:"transmission,omitempty"`
	Km           *int    `json:"km,omitempty" binding:"omitempty,min=0"`
}

type UpdateVehicleInput struct {
	ClientID     types.Optional[uint]   `json:"client_id" swaggertype:"integer"`
	Make         types.Optional[string] `json:"make" swaggertype:"string"`
	Model        types.Optional[string] `json:"model" swaggertype:"string"`
	Year         types.Optional[int]    `json:"year" swaggertype:"integer"`
	LicensePlate types.Optional[string] `json:"license_plate" swaggertype:"string"`
	VIN          types.Optional[string] `json:"vin" swaggertype:"string"`
	HSN          types.Optional[string] `json:"hsn" swaggertype:"string"`
	TSN          types.Optional[string] `json:"tsn" swaggertype:"string"`
	FuelType     types.Optional[string] `json:"fuel_type" swaggertype:"string"`
	Drive        types.Optional[string] `json:"drive" swaggertype:"string"`
	Transmission types.Optional[string] `json:"transmission" swaggertype:"string"`
	Km           types.Optional[int]    `json:"km" swaggertype:"integer"`
}

type ListParams struct {
	ClientID *uint
	Search   string
	Skip     int
	Take     int
}

type Page struct {
	Items []Vehicle `json:"items"`
	Total int64     `json:"total"`
}

func (p ListParams) Predicate() query.Node {
	var owner query.Node
	if p.ClientID != nil {
		owner = query.Eq{Field: "client_id", Value: *p.ClientID}
	}
	var text query.Node
	if term := strings.TrimSpace(p.Search); term != "" {
		text = query.Or{
			query.ContainsFold{Field: "license_plate", Value: term},
			query.ContainsFold{Field: "vin", Value: term},
			query.ContainsFold{Field: "make", Value: term},
			query.ContainsFold{Field: "model", Value: term},
		}
	}
	return query.AllOf(owner, text)
}

var ErrMissingField = errors.New("make, model and license_plate are required")

func (in CreateVehicleInput) Build() (*Vehicle, error) {
	v := &Vehicle{
		ClientID:     in.ClientID,
		Make:         strings.TrimSpace(in.Make),
		Model:        strings.TrimSpace(in.Model),
		Year:         in.Year,
		LicensePlate: normalizePlate(in.LicensePlate),
		VIN:          in.VIN,
		HSN:          in.HSN,
		TSN:          in.TSN,
		FuelType:     in.FuelType,
		Drive:        in.Drive,
		Transmission: in.Transmission,
		Km:           in.Km,
	}
	if v.Make == "" || v.Model == "" || v.LicensePlate == "" {
		return nil, ErrMissingField
	}
	return v, nil
}

// ApplyTo merges the input into v. ClientID changes are applied as given;
// the caller decides whether the owner may change.
func (in UpdateVehicleInput) ApplyTo(v *Vehicle) error {
	if in.ClientID.Set {
		if in.ClientID.Null {
			return errors.New("client_id cannot be null")
		}
		v.ClientID = in.ClientID.Value
	}
	for _, f := range []struct {
		opt types.Optional[string]
		dst *string
		fn  func(string) string
	}{
		{in.Make, &v.Make, strings.TrimSpace},
		{in.Model, &v.Model, strings.TrimSpace},
		{in.LicensePlate, &v.LicensePlate, normalizePlate},
	} {
		if !f.opt.Set {
			continue
		}
		val := f.fn(f.opt.Value)
		if f.opt.Null || val == "" {
			return ErrMissingField
		}
		*f.dst = val
	}
	in.Year.ApplyTo(&v.Year)
	in.VIN.ApplyTo(&v.VIN)
	in.HSN.ApplyTo(&v.HSN)
	in.TSN.ApplyTo(&v.TSN)
	in.FuelType.ApplyTo(&v.FuelType)
	in.Drive.ApplyTo(&v.Drive)
	in.Transmission.ApplyTo(&v.Transmission)
	in.Km.ApplyTo(&v.Km)
	return nil
}

func normalizePlate(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
