package queries_test

import (
	"testing"

	"purchase/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetPendingOrdersQuery(t *testing.T) {
	query := queries.NewGetPendingOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetPendingOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetPendingOrdersQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetPendingOrdersQueryIsNotConstructed)
}
