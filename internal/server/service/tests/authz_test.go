package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/linkbuzz/internal/server/service"
	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

func TestAuthorize_Owner(t *testing.T) {
	id := uuid.New()
	require.NoError(t, service.Authorize(id, id))
}

func TestAuthorize_NotOwner(t *testing.T) {
	err := service.Authorize(uuid.New(), uuid.New())
	require.ErrorIs(t, err, serr.ErrForbidden)
}
