package token

import (
	"errors"
	"testing"
	"time"

	"anoa.com/forumapi/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken(t *testing.T) {
	m := NewManager("access", "refresh", time.Hour)

	tok, err := m.CreateAccessToken("user-123")
	require.NoError(t, err)

	sub, err := m.VerifyAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)

	_, err = m.VerifyRefreshToken(tok)
	assert.True(t, errors.Is(err, apperror.ErrBadRequest))
}

func TestExpiredAccessToken(t *testing.T) {
	m := NewManager("access", "refresh", -time.Minute)

	tok, err := m.CreateAccessToken("user-123")
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(tok)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))
}

func TestRefreshToken(t *testing.T) {
	m := NewManager("access", "refresh", time.Hour)

	first, err := m.CreateRefreshToken("user-123")
	require.NoError(t, err)
	second, err := m.CreateRefreshToken("user-123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	sub, err := m.VerifyRefreshToken(first)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)

	_, err = m.VerifyAccessToken(first)
	assert.True(t, errors.Is(err, apperror.ErrUnauthorized))

	_, err = m.VerifyRefreshToken("not-a-token")
	assert.Error(t, err)
}
