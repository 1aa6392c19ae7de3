package service

import (
	"context"
	"testing"

	"brew-pos/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	assert.Equal(t, HashPassword("123456"), HashPassword("123456"))
	assert.NotEqual(t, HashPassword("123456"), HashPassword("123457"))

	// SHA-256 of "123456", hex encoded.
	assert.Equal(t,
		"8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92",
		HashPassword("123456"))
}

func TestAuthService_VerifyLogin_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	customerID := uuid.New()

	mockRepo := new(MockCustomerRepository)
	svc := NewAuthService(mockRepo, logger)

	mockRepo.On("GetMemberByEmail", ctx, "alice@example.com").Return(&model.MemberAccount{
		CustomerID:   customerID,
		Name:         "Alice Wong",
		PasswordHash: HashPassword("secret"),
	}, nil)

	identity, err := svc.VerifyLogin(ctx, "alice@example.com", "secret")

	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, customerID, identity.CustomerID)
	assert.Equal(t, "Alice Wong", identity.Name)
}

func TestAuthService_VerifyLogin_WrongPassword(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockCustomerRepository)
	svc := NewAuthService(mockRepo, logger)

	mockRepo.On("GetMemberByEmail", ctx, "alice@example.com").Return(&model.MemberAccount{
		CustomerID:   uuid.New(),
		Name:         "Alice Wong",
		PasswordHash: HashPassword("secret"),
	}, nil)

	identity, err := svc.VerifyLogin(ctx, "alice@example.com", "wrong")

	// A mismatch is a negative result, not an error.
	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestAuthService_VerifyLogin_UnknownEmail(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockCustomerRepository)
	svc := NewAuthService(mockRepo, logger)

	mockRepo.On("GetMemberByEmail", ctx, "nobody@example.com").Return(nil, nil)

	identity, err := svc.VerifyLogin(ctx, "nobody@example.com", "whatever")

	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestAuthService_VerifyLogin_EmptyInput(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockCustomerRepository)
	svc := NewAuthService(mockRepo, logger)

	identity, err := svc.VerifyLogin(ctx, "", "")

	require.NoError(t, err)
	assert.Nil(t, identity)
	mockRepo.AssertNotCalled(t, "GetMemberByEmail")
}
