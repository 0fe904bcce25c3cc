package dto

import (
	"kidstrainer/internal/domains/parent/model"
	gDto "kidstrainer/shared/dto"
)

type FindOrCreateParentRequest struct {
	Name  string
	Email string
	Phone string
}

func (r *FindOrCreateParentRequest) ToModel() model.Parent {
	return model.Parent{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// Identity matches the parent row with the same email and phone.
func (r *FindOrCreateParentRequest) Identity() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    r.Email,
			},
			gDto.Filter{
				Field:    model.FieldPhone,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    r.Phone,
			},
		},
	}
}
