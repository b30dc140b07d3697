package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPackages_OrdersExample(t *testing.T) {
	set, err := LoadPackages("resultgen/examples/orders")
	require.NoError(t, err)

	s, ok := set.Resolve("orders.OrderStatus")
	require.True(t, ok)

	assert.Equal(t, "orders", s.PkgName)
	assert.Equal(t, "OrderStatus", s.ID.Name)
	assert.NotEmpty(t, s.Dir)

	assert.Equal(t,
		[]string{"Ok", "GeneralError", "BadRequest", "Unauthorized", "NotFound", "Conflict"},
		s.MemberNames())

	ok_, found := s.Member("Ok")
	require.True(t, found)
	assert.Equal(t, int64(0), ok_.Value)
	require.NotNil(t, ok_.HTTPStatus)
	assert.Equal(t, 200, *ok_.HTTPStatus)

	notFound, found := s.Member("NotFound")
	require.True(t, found)
	assert.Equal(t, int64(404), notFound.Value)
	require.NotNil(t, notFound.HTTPStatus)
	assert.Equal(t, 404, *notFound.HTTPStatus)

	// GeneralError carries no annotation; the resolver maps it through
	// directive overrides or the fallback.
	general, found := s.Member("GeneralError")
	require.True(t, found)
	assert.Nil(t, general.HTTPStatus)
	assert.Empty(t, general.BadAnnotation)
}

func TestLoadPackages_BadPattern(t *testing.T) {
	_, err := LoadPackages("resultgen/does/not/exist")
	assert.Error(t, err)
}
