package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kidstrainer/infras/database"
	"kidstrainer/infras/database/databasetest"
	"kidstrainer/infras/otel/mocks"
	bookingMocks "kidstrainer/internal/domains/booking/mocks"
	"kidstrainer/internal/domains/booking/model"
	"kidstrainer/internal/domains/booking/model/dto"
	bookingRepo "kidstrainer/internal/domains/booking/repository"
	"kidstrainer/internal/domains/booking/service"
	parentMocks "kidstrainer/internal/domains/parent/mocks"
	parentModel "kidstrainer/internal/domains/parent/model"
	parentRepo "kidstrainer/internal/domains/parent/repository"
	parentService "kidstrainer/internal/domains/parent/service"
	trainerModel "kidstrainer/internal/domains/trainer/model"
	trainerRepo "kidstrainer/internal/domains/trainer/repository"
)

var bobRequest = dto.CreateBookingRequest{
	ParentName:  "Bob",
	ParentEmail: "b@x.com",
	ParentPhone: "555-2222",
	Date:        "2024-06-01",
	Time:        "10:00",
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockParentRepo := parentMocks.NewMockParent(ctrl)
	svc := service.New(mockRepo, parentService.New(mockParentRepo, mocks.NewOtel()), mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantID    int64
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), bobRequest.ToModel(1, 2)).
					Return(int64(10), nil)
			},
			wantID: 10,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("FOREIGN KEY constraint failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Create(context.Background(), nil, 1, 2, bobRequest)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestBookingService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockParentRepo := parentMocks.NewMockParent(ctrl)
	svc := service.New(mockRepo, parentService.New(mockParentRepo, mocks.NewOtel()), mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantID    int64
		wantErr   bool
	}{
		{
			name: "existing parent",
			setupMock: func() {
				mockParentRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(parentModel.Parent{ID: 4}, true, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), bobRequest.ToModel(4, 1)).
					Return(int64(11), nil)
			},
			wantID: 11,
		},
		{
			name: "new parent",
			setupMock: func() {
				mockParentRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(parentModel.Parent{}, false, nil)
				mockParentRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(5), nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any(), bobRequest.ToModel(5, 1)).
					Return(int64(12), nil)
			},
			wantID: 12,
		},
		{
			name: "parent error skips booking",
			setupMock: func() {
				mockParentRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(parentModel.Parent{}, false, errors.New("database is locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Submit(context.Background(), nil, 1, bobRequest)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func newStoreService(t *testing.T) (*database.Connection, service.Booking) {
	t.Helper()

	conn, _ := databasetest.New(t)
	otl := mocks.NewOtel()
	svc := service.New(bookingRepo.New(otl), parentService.New(parentRepo.New(otl), otl), otl)

	return conn, svc
}

func TestBookingService_SubmitInTransaction(t *testing.T) {
	conn, svc := newStoreService(t)
	handle := databasetest.Acquire(t, conn)
	ctx := context.Background()

	trainerID, err := trainerRepo.New(mocks.NewOtel()).Insert(ctx, handle, trainerModel.Trainer{Name: "Jane Doe", Sport: "Tennis", Price: 30})
	require.NoError(t, err)

	var bookingID int64

	err = database.InTx(ctx, handle, func(tx database.Handle) error {
		var txErr error
		bookingID, txErr = svc.Submit(ctx, tx, trainerID, bobRequest)

		return txErr
	})
	require.NoError(t, err)

	assert.Equal(t, 1, databasetest.Count(t, handle, parentModel.TableName))
	assert.Equal(t, 1, databasetest.Count(t, handle, model.TableName))

	var stored model.Booking
	require.NoError(t, handle.GetContext(ctx, &stored,
		"SELECT id, parent_id, trainer_id, date, time, notes FROM bookings WHERE id = ?", bookingID))
	assert.Equal(t, trainerID, stored.TrainerID)
	assert.Equal(t, "2024-06-01", stored.Date)
	assert.Equal(t, "10:00", stored.Time)
	assert.Empty(t, stored.Notes)

	t.Run("same parent books again", func(t *testing.T) {
		again := bobRequest
		again.ParentName = "Robert"

		_, err := svc.Submit(ctx, handle, trainerID, again)
		require.NoError(t, err)

		assert.Equal(t, 1, databasetest.Count(t, handle, parentModel.TableName))
		assert.Equal(t, 2, databasetest.Count(t, handle, model.TableName))
	})
}

func TestBookingService_RollbackOnFailure(t *testing.T) {
	conn, svc := newStoreService(t)
	handle := databasetest.Acquire(t, conn)
	ctx := context.Background()

	errAbort := errors.New("abort")

	err := database.InTx(ctx, handle, func(tx database.Handle) error {
		if _, err := svc.Submit(ctx, tx, 1, bobRequest); err != nil {
			return err
		}

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	assert.Equal(t, 0, databasetest.Count(t, handle, parentModel.TableName))
	assert.Equal(t, 0, databasetest.Count(t, handle, model.TableName))
}

// Foreign keys are declared but not enforced by the SQLite store, so a
// booking for an unknown trainer is kept with a dangling trainer_id.
func TestBookingService_UnknownTrainerIsStored(t *testing.T) {
	conn, svc := newStoreService(t)
	handle := databasetest.Acquire(t, conn)
	ctx := context.Background()

	id, err := svc.Submit(ctx, handle, 9999, bobRequest)
	require.NoError(t, err)
	assert.Positive(t, id)

	assert.Equal(t, 0, databasetest.Count(t, handle, trainerModel.TableName))
	assert.Equal(t, 1, databasetest.Count(t, handle, model.TableName))
}
