package services

import (
	"sync"
	"testing"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenOrGetActive_CreatesThenReuses(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "01")

	order, created, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.OrderOpen, order.Status)
	assert.Equal(t, int64(0), order.Total)
	assert.Equal(t, entity.TableOccupied, f.tableStatus(t, table.ID))

	// idempotent: a second open returns the same order
	again, created, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, order.ID, again.ID)
}

func TestOpenOrGetActive_ReturnsClosedOrder(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "02")

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)
	_, err = f.orders.CloseForPayment(order.ID)
	require.NoError(t, err)

	again, created, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, order.ID, again.ID)
	assert.Equal(t, entity.OrderClosed, again.Status)
}

func TestOpenOrGetActive_BlockedTable(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "03")
	require.NoError(t, f.db.Model(table).Update("status", entity.TableBlocked).Error)

	_, _, err := f.orders.OpenOrGetActive(table.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestOpenOrGetActive_UnknownTable(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.orders.OpenOrGetActive(999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

// N concurrent opens on a free table must produce exactly one created order
// and N-1 reads of it.
func TestOpenOrGetActive_ConcurrentSingleWinner(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "04")

	const n = 8
	var wg sync.WaitGroup
	type result struct {
		orderID uint
		created bool
		err     error
	}
	results := make([]result, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o, created, err := f.orders.OpenOrGetActive(table.ID)
			if o != nil {
				results[i] = result{o.ID, created, err}
			} else {
				results[i] = result{0, created, err}
			}
		}(i)
	}
	wg.Wait()

	createdCount := 0
	var winnerID uint
	for _, r := range results {
		require.NoError(t, r.err)
		if r.created {
			createdCount++
			winnerID = r.orderID
		}
	}
	assert.Equal(t, 1, createdCount)
	for _, r := range results {
		assert.Equal(t, winnerID, r.orderID)
	}

	var orderCount int64
	require.NoError(t, f.db.Model(&entity.Order{}).Where("table_id = ?", table.ID).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)
}

func TestAddItem_SnapshotsPrice(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "05")
	product := f.seedProduct(t, "Pizza Margherita", 4500, true)

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)

	item, err := f.orders.AddItem(order.ID, &AddItemReq{ProductID: product.ID, Qty: 2, Note: "sem cebola"})
	require.NoError(t, err)
	assert.Equal(t, int64(4500), item.UnitPrice)
	assert.Equal(t, int64(9000), item.Subtotal)

	// a catalog price change never touches existing items
	require.NoError(t, f.db.Model(product).Update("base_price", 9999).Error)

	detail, err := f.orders.Detail(order.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, int64(4500), detail.Items[0].UnitPrice)
	assert.Equal(t, int64(9000), detail.Total)

	// new items snapshot the new price
	_, err = f.orders.AddItem(order.ID, &AddItemReq{ProductID: product.ID, Qty: 1})
	require.NoError(t, err)
	detail, err = f.orders.Detail(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(9000+9999), detail.Total)
}

func TestAddItem_FailureKinds(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "06")
	available := f.seedProduct(t, "Suco", 1000, true)
	unavailable := f.seedProduct(t, "Calabresa", 4800, false)

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  AddItemReq
		kind apperr.Kind
	}{
		{"zero qty", AddItemReq{ProductID: available.ID, Qty: 0}, apperr.KindInvalidArgument},
		{"negative qty", AddItemReq{ProductID: available.ID, Qty: -1}, apperr.KindInvalidArgument},
		{"missing product", AddItemReq{ProductID: 999, Qty: 1}, apperr.KindNotFound},
		{"unavailable product", AddItemReq{ProductID: unavailable.ID, Qty: 1}, apperr.KindUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.orders.AddItem(order.ID, &tt.req)
			assert.True(t, apperr.IsKind(err, tt.kind), "got %v", err)
		})
	}

	_, err = f.orders.AddItem(999, &AddItemReq{ProductID: available.ID, Qty: 1})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRemoveItem_SecondCallNotFound(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "07")
	product := f.seedProduct(t, "Refrigerante", 700, true)

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)
	item, err := f.orders.AddItem(order.ID, &AddItemReq{ProductID: product.ID, Qty: 3})
	require.NoError(t, err)

	require.NoError(t, f.orders.RemoveItem(order.ID, item.ID))
	detail, err := f.orders.Detail(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), detail.Total)
	assert.Empty(t, detail.Items)

	err = f.orders.RemoveItem(order.ID, item.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTotalAlwaysSumOfSubtotals(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "08")
	pizza := f.seedProduct(t, "Pizza", 4500, true)
	drink := f.seedProduct(t, "Bebida", 700, true)

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)

	i1, err := f.orders.AddItem(order.ID, &AddItemReq{ProductID: pizza.ID, Qty: 2})
	require.NoError(t, err)
	_, err = f.orders.AddItem(order.ID, &AddItemReq{ProductID: drink.ID, Qty: 4})
	require.NoError(t, err)
	require.NoError(t, f.orders.RemoveItem(order.ID, i1.ID))
	_, err = f.orders.AddItem(order.ID, &AddItemReq{ProductID: pizza.ID, Qty: 1})
	require.NoError(t, err)

	detail, err := f.orders.Detail(order.ID)
	require.NoError(t, err)
	var sum int64
	for _, it := range detail.Items {
		sum += it.Subtotal
	}
	assert.Equal(t, sum, detail.Total)
	assert.Equal(t, int64(4*700+4500), detail.Total)
}

// The attendant happy path from open to a freed table.
func TestOrderLifecycleScenario(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "09")
	product := f.seedProduct(t, "Pizza Margherita", 1000, true)

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), order.Total)

	_, err = f.orders.AddItem(order.ID, &AddItemReq{ProductID: product.ID, Qty: 2})
	require.NoError(t, err)

	closed, err := f.orders.CloseForPayment(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderClosed, closed.Status)
	assert.NotNil(t, closed.ClosedAt)
	assert.Equal(t, entity.TableAwaitingPayment, f.tableStatus(t, table.ID))

	// no item mutation once closed
	_, err = f.orders.AddItem(order.ID, &AddItemReq{ProductID: product.ID, Qty: 1})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
	err = f.orders.RemoveItem(order.ID, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	payment, err := f.payments.Register(order.ID, &RegisterPaymentReq{Method: entity.PaymentCash, AmountPaid: 2000})
	require.NoError(t, err)
	assert.Equal(t, int64(2000), payment.Amount)
	assert.Equal(t, entity.OrderPaid, f.orderStatus(t, order.ID))
	assert.Equal(t, entity.TableFree, f.tableStatus(t, table.ID))
}

func TestCloseForPayment_OnlyFromOpen(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "10")

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)
	_, err = f.orders.CloseForPayment(order.ID)
	require.NoError(t, err)

	_, err = f.orders.CloseForPayment(order.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	_, err = f.orders.CloseForPayment(999)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCancel_ReleasesTable(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "11")

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)

	cancelled, err := f.orders.Cancel(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)
	assert.Equal(t, entity.TableFree, f.tableStatus(t, table.ID))

	// terminal: no transitions out
	_, err = f.orders.Cancel(order.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
	_, err = f.orders.CloseForPayment(order.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestCancel_ClosedOrder(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "12")

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)
	_, err = f.orders.CloseForPayment(order.ID)
	require.NoError(t, err)

	cancelled, err := f.orders.Cancel(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, cancelled.Status)
	assert.Equal(t, entity.TableFree, f.tableStatus(t, table.ID))
}

func TestUpdate_NotesAndStatusDispatch(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "13")

	order, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)

	notes := "cliente com pressa"
	updated, err := f.orders.Update(order.ID, &UpdateOrderReq{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, entity.OrderOpen, updated.Status)

	updated, err = f.orders.Update(order.ID, &UpdateOrderReq{Status: entity.OrderClosed})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderClosed, updated.Status)

	updated, err = f.orders.Update(order.ID, &UpdateOrderReq{Status: entity.OrderCancelled})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, updated.Status)
}
