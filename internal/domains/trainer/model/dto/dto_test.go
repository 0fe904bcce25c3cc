package dto_test

import (
	"net/url"
	"testing"

	"kidstrainer/internal/domains/trainer/model"
	"kidstrainer/internal/domains/trainer/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "decimal", raw: "49.95", expected: 49.95},
		{name: "integer", raw: "30", expected: 30},
		{name: "surrounding spaces", raw: " 12.5 ", expected: 12.5},
		{name: "exponent", raw: "1e2", expected: 100},
		{name: "not a number", raw: "abc", expected: 0},
		{name: "empty", raw: "", expected: 0},
		{name: "negative", raw: "-5", expected: 0},
		{name: "infinity", raw: "inf", expected: 0},
		{name: "nan", raw: "NaN", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, dto.ParsePrice(tt.raw), 1e-9)
		})
	}
}

func TestRegisterTrainerRequest_FromForm(t *testing.T) {
	values := url.Values{
		"name":        {"Jane Doe"},
		"sport":       {"Tennis"},
		"credentials": {"ITF Level 2"},
		"bio":         {"Ten years coaching juniors"},
		"price":       {"30"},
		"email":       {"jane@x.com"},
		"phone":       {"555-0000"},
	}

	req := dto.RegisterTrainerRequest{}
	req.FromForm(values)

	assert.Equal(t, dto.RegisterTrainerRequest{
		Name:        "Jane Doe",
		Sport:       "Tennis",
		Credentials: "ITF Level 2",
		Bio:         "Ten years coaching juniors",
		Price:       30,
		Email:       "jane@x.com",
		Phone:       "555-0000",
	}, req)
}

func TestRegisterTrainerRequest_FromForm_MissingFields(t *testing.T) {
	req := dto.RegisterTrainerRequest{}
	req.FromForm(url.Values{"name": {"Jane Doe"}, "price": {"abc"}})

	assert.Equal(t, "Jane Doe", req.Name)
	assert.Empty(t, req.Sport)
	assert.Empty(t, req.Credentials)
	assert.Empty(t, req.Bio)
	assert.Empty(t, req.Email)
	assert.Empty(t, req.Phone)
	assert.Zero(t, req.Price)
}

func TestRegisterTrainerRequest_ToModel(t *testing.T) {
	req := dto.RegisterTrainerRequest{Name: "Jane Doe", Sport: "Tennis", Price: 49.95}

	mod := req.ToModel()

	assert.Zero(t, mod.ID, "expected the store to assign the ID")
	assert.Equal(t, "Jane Doe", mod.Name)
	assert.Equal(t, "Tennis", mod.Sport)
	assert.InDelta(t, 49.95, mod.Price, 1e-9)
}

func TestGetTrainersResponse_FromModels(t *testing.T) {
	models := []model.Trainer{
		{ID: 1, Name: "Jane Doe", Sport: "Tennis", Price: 30},
		{ID: 2, Name: "Sam Lee", Sport: "Swimming", Price: 25.5},
	}

	var res dto.GetTrainersResponse
	res.FromModels(models)

	assert.Len(t, res.Trainers, 2)
	assert.Equal(t, int64(1), res.Trainers[0].ID)
	assert.Equal(t, "Sam Lee", res.Trainers[1].Name)
	assert.InDelta(t, 25.5, res.Trainers[1].Price, 1e-9)

	var empty dto.GetTrainersResponse
	empty.FromModels(nil)

	assert.NotNil(t, empty.Trainers)
	assert.Empty(t, empty.Trainers)
}
