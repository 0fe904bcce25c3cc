package dto

import (
	"kidstrainer/internal/domains/booking/model"
	parentDto "kidstrainer/internal/domains/parent/model/dto"
	"kidstrainer/shared/constant"
	"net/url"
)

type CreateBookingRequest struct {
	ParentName  string
	ParentEmail string
	ParentPhone string
	Date        string
	Time        string
	Notes       string
}

// FromForm implements validator.FormRequest. Absent keys become "".
func (r *CreateBookingRequest) FromForm(values url.Values) {
	r.ParentName = values.Get(constant.FormFieldParentName)
	r.ParentEmail = values.Get(constant.FormFieldParentEmail)
	r.ParentPhone = values.Get(constant.FormFieldParentPhone)
	r.Date = values.Get(constant.FormFieldDate)
	r.Time = values.Get(constant.FormFieldTime)
	r.Notes = values.Get(constant.FormFieldNotes)
}

func (r *CreateBookingRequest) Parent() parentDto.FindOrCreateParentRequest {
	return parentDto.FindOrCreateParentRequest{
		Name:  r.ParentName,
		Email: r.ParentEmail,
		Phone: r.ParentPhone,
	}
}

func (r *CreateBookingRequest) ToModel(parentID, trainerID int64) model.Booking {
	return model.Booking{
		ParentID:  parentID,
		TrainerID: trainerID,
		Date:      r.Date,
		Time:      r.Time,
		Notes:     r.Notes,
	}
}
