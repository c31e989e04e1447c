package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-portal/internal/domain"
)

func TestListQueryOffset(t *testing.T) {
	assert.Equal(t, 0, domain.NewListQuery(1, 10, "").Offset())
	assert.Equal(t, 20, domain.NewListQuery(3, 10, "").Offset())
	assert.Equal(t, 0, domain.NewListQuery(0, 10, "").Offset())
	assert.Equal(t, 0, domain.NewListQuery(4, 0, "").Offset())
}

func TestListQueryOffsetSaturates(t *testing.T) {
	q := domain.NewListQuery(math.MaxInt, 10, "")
	require.NoError(t, q.Validate())
	assert.Equal(t, math.MaxInt, q.Offset())

	q = domain.NewListQuery(math.MaxInt/2, math.MaxInt/2, "")
	assert.Equal(t, math.MaxInt, q.Offset())
}

func TestListQueryValidate(t *testing.T) {
	err := domain.NewListQuery(0, 10, "").Validate()
	require.Error(t, err)
	assert.True(t, domain.IsInvalidParameter(err))
	assert.NoError(t, domain.NewListQuery(1, 1, "").Validate())
}
