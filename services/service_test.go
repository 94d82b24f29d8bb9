package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/RubensDuarte2025/Julius-rmd/entity"
	"github.com/RubensDuarte2025/Julius-rmd/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fixture wires the full service graph against a fresh in-memory database.
type fixture struct {
	db       *gorm.DB
	tables   *TableService
	catalog  *CatalogService
	orders   *OrderService
	payments *PaymentService
	kitchen  *KitchenService
	reports  *ReportService
	settings *SettingService
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// a single connection serializes writes the way a row-locking store
	// would, so the concurrency tests race through the CAS guards without
	// tripping sqlite's busy errors
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.Product{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
		&entity.KitchenTicket{}, &entity.KitchenTicketItem{},
		&entity.Setting{},
	))

	tableRepo := repository.NewTableRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	kitchenRepo := repository.NewKitchenRepository(db)
	reportRepo := repository.NewReportRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	notifier := &recordingNotifier{}
	kitchenSvc := NewKitchenService(db, kitchenRepo, notifier)

	return &fixture{
		db:       db,
		tables:   NewTableService(db, tableRepo),
		catalog:  NewCatalogService(db, catalogRepo),
		orders:   NewOrderService(db, orderRepo, tableRepo, catalogRepo, kitchenSvc),
		payments: NewPaymentService(db, orderRepo, tableRepo),
		kitchen:  kitchenSvc,
		reports:  NewReportService(reportRepo),
		settings: NewSettingService(settingRepo),
		notifier: notifier,
	}
}

type notifierEvent struct {
	Kind   string
	Ticket entity.KitchenTicket
}

// recordingNotifier captures board events so tests can assert on the push
// feed without a live websocket.
type recordingNotifier struct {
	events []notifierEvent
}

func (n *recordingNotifier) TicketQueued(t *entity.KitchenTicket) {
	n.events = append(n.events, notifierEvent{Kind: "queued", Ticket: *t})
}

func (n *recordingNotifier) TicketStatusChanged(t *entity.KitchenTicket) {
	n.events = append(n.events, notifierEvent{Kind: "status_changed", Ticket: *t})
}

func (f *fixture) seedTable(t *testing.T, label string) *entity.Table {
	t.Helper()
	tb := &entity.Table{Label: label, Capacity: 4, Status: entity.TableFree}
	require.NoError(t, f.db.Create(tb).Error)
	return tb
}

func (f *fixture) seedProduct(t *testing.T, name string, price int64, available bool) *entity.Product {
	t.Helper()
	p := &entity.Product{Name: name, BasePrice: price, Available: available}
	require.NoError(t, f.db.Create(p).Error)
	return p
}

func (f *fixture) tableStatus(t *testing.T, tableID uint) string {
	t.Helper()
	var tb entity.Table
	require.NoError(t, f.db.First(&tb, tableID).Error)
	return tb.Status
}

func (f *fixture) orderStatus(t *testing.T, orderID uint) string {
	t.Helper()
	var o entity.Order
	require.NoError(t, f.db.First(&o, orderID).Error)
	return o.Status
}
