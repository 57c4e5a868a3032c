package commands_test

import (
	"testing"

	"purchase/internal/core/application/usecases/commands"
	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportItem(t *testing.T, status order.Status) commands.ImportOrderItem {
	t.Helper()
	item, err := commands.NewImportOrderItem(
		kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()},
		"transfer", status, "")
	require.NoError(t, err)
	return item
}

func TestNewImportOrderItem_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	courseIDs := []kernel.UUID{kernel.NewUUID()}

	item, err := commands.NewImportOrderItem(orderID, buyerID, courseIDs, "transfer", order.Cancelled, "migrated")
	require.NoError(t, err)
	assert.Equal(t, orderID, item.OrderID())
	assert.Equal(t, buyerID, item.BuyerID())
	assert.Equal(t, courseIDs, item.CourseIDs())
	assert.Equal(t, "transfer", item.PaymentMethod())
	assert.Equal(t, order.Cancelled, item.Status())
	assert.Equal(t, "migrated", item.Notes())
}

func TestNewImportOrderItem_EmptyCourses(t *testing.T) {
	_, err := commands.NewImportOrderItem(
		kernel.NewUUID(), kernel.NewUUID(), nil, "transfer", order.Pending, "")
	require.ErrorIs(t, err, commands.ErrCoursesAreRequired)
}

func TestNewImportOrderItem_InvalidStatus(t *testing.T) {
	_, err := commands.NewImportOrderItem(
		kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()},
		"transfer", order.Unknown, "")
	require.Error(t, err)
}

func TestNewImportOrdersCommand_ValidInput(t *testing.T) {
	items := []commands.ImportOrderItem{
		newImportItem(t, order.Pending),
		newImportItem(t, order.Completed),
	}

	cmd, err := commands.NewImportOrdersCommand(items)
	require.NoError(t, err)
	assert.Len(t, cmd.Items(), 2)
}

func TestNewImportOrdersCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewImportOrdersCommand(nil)
	require.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewImportOrdersCommand_UnconstructedItem(t *testing.T) {
	_, err := commands.NewImportOrdersCommand([]commands.ImportOrderItem{{}})
	require.ErrorIs(t, err, commands.ErrImportOrderItemIsNotConstructed)
}

func TestImportOrdersCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ImportOrdersCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrImportOrdersCommandIsNotConstructed)
}
