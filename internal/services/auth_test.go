package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkova/courses-api/internal/models"
	"github.com/avolkova/courses-api/internal/services"
)

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("joepassword"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &models.UserDB{
		UserID:       uuid.New(),
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name      string
		email     string
		password  string
		mockSetup func(m *services.MockUserReader)
		wantUser  *models.UserDB
		wantErr   error
	}{
		{
			name:     "success",
			email:    "joe@smith.com",
			password: "joepassword",
			mockSetup: func(m *services.MockUserReader) {
				m.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(user, nil)
			},
			wantUser: user,
		},
		{
			name:     "unknown user",
			email:    "ghost@smith.com",
			password: "joepassword",
			mockSetup: func(m *services.MockUserReader) {
				m.EXPECT().GetByEmail(gomock.Any(), "ghost@smith.com").Return(nil, nil)
			},
			wantErr: services.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "joe@smith.com",
			password: "wrong",
			mockSetup: func(m *services.MockUserReader) {
				m.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(user, nil)
			},
			wantErr: services.ErrInvalidPassword,
		},
		{
			name:     "reader error",
			email:    "joe@smith.com",
			password: "joepassword",
			mockSetup: func(m *services.MockUserReader) {
				m.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			tt.mockSetup(mockReader)

			svc := services.NewAuthService(mockReader, mockWriter)

			got, err := svc.Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUser, got)
			}
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success hashes password before save", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)

		mockReader.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(nil, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.UserDB) error {
				assert.NotEqual(t, uuid.Nil, user.UserID)
				assert.Equal(t, "Joe", user.FirstName)
				assert.Equal(t, "Smith", user.LastName)
				assert.Equal(t, "joe@smith.com", user.EmailAddress)
				assert.NotEqual(t, "joepassword", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("joepassword")))
				return nil
			})

		svc := services.NewAuthService(mockReader, mockWriter)

		err := svc.Register(context.Background(), "Joe", "Smith", "joe@smith.com", "joepassword")
		assert.NoError(t, err)
	})

	t.Run("email already exists", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)

		mockReader.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").
			Return(&models.UserDB{UserID: uuid.New()}, nil)

		svc := services.NewAuthService(mockReader, mockWriter)

		err := svc.Register(context.Background(), "Joe", "Smith", "joe@smith.com", "joepassword")

		var ve *services.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"The email address you entered already exists."}, ve.Messages)
	})

	t.Run("writer error", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)

		mockReader.EXPECT().GetByEmail(gomock.Any(), "joe@smith.com").Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		svc := services.NewAuthService(mockReader, mockWriter)

		err := svc.Register(context.Background(), "Joe", "Smith", "joe@smith.com", "joepassword")
		assert.EqualError(t, err, "db error")
	})
}
