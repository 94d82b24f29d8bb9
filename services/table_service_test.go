package services

import (
	"testing"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/pkg/apperr"
	"github.com/RubensDuarte2025/Julius-rmd/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCreate(t *testing.T) {
	f := newFixture(t)

	created, err := f.tables.Create(&CreateTableReq{Label: "  05  ", Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, "05", created.Label)
	assert.Equal(t, 2, created.Capacity)
	assert.Equal(t, entity.TableFree, created.Status)

	// default capacity when omitted
	varanda, err := f.tables.Create(&CreateTableReq{Label: "Varanda 1"})
	require.NoError(t, err)
	assert.Equal(t, 4, varanda.Capacity)

	_, err = f.tables.Create(&CreateTableReq{Label: "05"})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict), "got %v", err)

	_, err = f.tables.Create(&CreateTableReq{Label: "   "})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
}

func TestTableUpdate_BlockedToggle(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "t1")
	blocked := entity.TableBlocked
	free := entity.TableFree

	updated, err := f.tables.Update(table.ID, &UpdateTableReq{Status: &blocked})
	require.NoError(t, err)
	assert.Equal(t, entity.TableBlocked, updated.Status)

	// blocking twice
	_, err = f.tables.Update(table.ID, &UpdateTableReq{Status: &blocked})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	updated, err = f.tables.Update(table.ID, &UpdateTableReq{Status: &free})
	require.NoError(t, err)
	assert.Equal(t, entity.TableFree, updated.Status)
}

// Occupancy is driven by the order engine; the admin override cannot force
// an Occupied table into any other status.
func TestTableUpdate_CannotOverrideOccupancy(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "t2")
	_, _, err := f.orders.OpenOrGetActive(table.ID)
	require.NoError(t, err)

	blocked := entity.TableBlocked
	_, err = f.tables.Update(table.ID, &UpdateTableReq{Status: &blocked})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState), "got %v", err)

	occupied := entity.TableOccupied
	_, err = f.tables.Update(table.ID, &UpdateTableReq{Status: &occupied})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))

	assert.Equal(t, entity.TableOccupied, f.tableStatus(t, table.ID))
}

// A label/capacity edit must never write the status column: a stale copy
// read before a payment raced through would otherwise resurrect the old
// status and strand the table.
func TestTableUpdateProfile_LeavesStatusAlone(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "t6")

	stale := *table
	stale.Capacity = 6

	// the payment reconciler moves the table after the admin copy was read
	require.NoError(t, f.db.Model(table).Update("status", entity.TableAwaitingPayment).Error)

	repo := repository.NewTableRepository(f.db)
	require.NoError(t, repo.UpdateProfile(f.db, &stale))

	var got entity.Table
	require.NoError(t, f.db.First(&got, table.ID).Error)
	assert.Equal(t, 6, got.Capacity)
	assert.Equal(t, entity.TableAwaitingPayment, got.Status)
}

func TestTableUpdate_DuplicateLabel(t *testing.T) {
	f := newFixture(t)
	f.seedTable(t, "t7")
	other := f.seedTable(t, "t8")

	taken := "t7"
	_, err := f.tables.Update(other.ID, &UpdateTableReq{Label: &taken})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict), "got %v", err)

	got, err := f.tables.Get(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "t8", got.Label)
}

func TestTableUpdate_Validation(t *testing.T) {
	f := newFixture(t)
	table := f.seedTable(t, "t3")

	empty := "  "
	_, err := f.tables.Update(table.ID, &UpdateTableReq{Label: &empty})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))

	zero := 0
	_, err = f.tables.Update(table.ID, &UpdateTableReq{Capacity: &zero})
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))

	label := "t3-renamed"
	_, err = f.tables.Update(999, &UpdateTableReq{Label: &label})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTableDelete(t *testing.T) {
	f := newFixture(t)
	busy := f.seedTable(t, "t4")
	idle := f.seedTable(t, "t5")

	_, _, err := f.orders.OpenOrGetActive(busy.ID)
	require.NoError(t, err)

	err = f.tables.Delete(busy.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict), "got %v", err)

	require.NoError(t, f.tables.Delete(idle.ID))
	_, err = f.tables.Get(idle.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTableList_OrderedByLabel(t *testing.T) {
	f := newFixture(t)
	f.seedTable(t, "02")
	f.seedTable(t, "01")
	f.seedTable(t, "03")

	tables, err := f.tables.List()
	require.NoError(t, err)
	require.Len(t, tables, 3)
	assert.Equal(t, "01", tables[0].Label)
	assert.Equal(t, "02", tables[1].Label)
	assert.Equal(t, "03", tables[2].Label)
}
