package dto

import (
	"kidstrainer/internal/domains/trainer/model"
	"kidstrainer/shared/constant"
	"kidstrainer/shared/validator"
	"math"
	"net/url"
	"strconv"
	"strings"
)

type RegisterTrainerRequest struct {
	Name        string
	Sport       string
	Credentials string
	Bio         string
	Price       float64 `validate:"gte=0"`
	Email       string
	Phone       string
}

// FromForm implements validator.FormRequest. Absent keys become "" and the
// price is coerced with ParsePrice.
func (r *RegisterTrainerRequest) FromForm(values url.Values) {
	r.Name = values.Get(constant.FormFieldName)
	r.Sport = values.Get(constant.FormFieldSport)
	r.Credentials = values.Get(constant.FormFieldCredentials)
	r.Bio = values.Get(constant.FormFieldBio)
	r.Price = ParsePrice(values.Get(constant.FormFieldPrice))
	r.Email = values.Get(constant.FormFieldEmail)
	r.Phone = values.Get(constant.FormFieldPhone)
}

func (r *RegisterTrainerRequest) ToModel() model.Trainer {
	return model.Trainer{
		Name:        r.Name,
		Sport:       r.Sport,
		Credentials: r.Credentials,
		Bio:         r.Bio,
		Price:       r.Price,
		Email:       r.Email,
		Phone:       r.Phone,
	}
}

// ParsePrice turns the submitted price into a non-negative finite number,
// substituting 0 for anything that is not one.
func ParsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}

	if validator.ValidateVar(price, "gte=0") != nil {
		return 0
	}

	return price
}

type TrainerResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Sport       string  `json:"sport"`
	Credentials string  `json:"credentials"`
	Bio         string  `json:"bio"`
	Price       float64 `json:"price"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
}

func (r *TrainerResponse) FromModel(model model.Trainer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Sport = model.Sport
	r.Credentials = model.Credentials
	r.Bio = model.Bio
	r.Price = model.Price
	r.Email = model.Email
	r.Phone = model.Phone
}

type GetTrainersResponse struct {
	Trainers []TrainerResponse `json:"trainers"`
}

func (r *GetTrainersResponse) FromModels(models []model.Trainer) {
	r.Trainers = make([]TrainerResponse, len(models))
	for i, mod := range models {
		r.Trainers[i].FromModel(mod)
	}
}
