package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Kinds(t *testing.T) {
	assert.True(t, IsValidation(ErrEmptyOrder))
	assert.True(t, IsValidation(ErrInvalidQuantity))
	assert.True(t, IsNotFound(ErrProductNotFound))
	assert.True(t, IsNotFound(ErrCustomerNotFound))
	assert.True(t, IsNotFound(ErrOrderNotFound))
	assert.True(t, IsConflict(ErrCategoryNameTaken))

	assert.False(t, IsNotFound(ErrEmptyOrder))
	assert.False(t, IsValidation(ErrOrderNotFound))
	assert.False(t, IsConflict(nil))
}

func TestDomainError_WrappedStillMatches(t *testing.T) {
	wrapped := fmt.Errorf("failed to create order: %w", ErrProductNotFound)
	assert.True(t, IsNotFound(wrapped))
}

func TestDomainError_PlainErrorsAreStorageFailures(t *testing.T) {
	err := errors.New("connection refused")
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}
