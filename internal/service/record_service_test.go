package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-outlet-ops/internal/model"
)

func TestInventoryUpsertIsIdempotentPerNaturalKey(t *testing.T) {
	db := setupTestDB(t)
	outlet := seedOutlet(t, db, "University Cafe", model.OutletCafe)
	product := seedProduct(t, db, "Coffee Beans", "kg")
	svc := newRecordService(db)

	first, err := svc.UpsertInventory(ownerClaims(), &InventoryRequest{
		ProductID: product.ID,
		OutletID:  &outlet.ID,
		Quantity:  f64(12),
		Date:      "2026-03-01",
	})
	require.NoError(t, err)

	second, err := svc.UpsertInventory(ownerClaims(), &InventoryRequest{
		ProductID: product.ID,
		OutletID:  &outlet.ID,
		Quantity:  f64(20),
		Date:      "2026-03-01",
	})
	require.NoError(t, err)

	// Same key, one row, latest quantity.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 20.0, second.Quantity)

	var count int64
	db.Model(&model.Inventory{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestClosingUpsertKeepsLatestAmounts(t *testing.T) {
	db := setupTestDB(t)
	outlet := seedOutlet(t, db, "Mini Market", model.OutletMiniMarket)
	svc := newRecordService(db)

	_, err := svc.UpsertClosing(ownerClaims(), &ClosingRequest{
		OutletID:  &outlet.ID,
		CardSales: f64(200),
		CashSales: f64(150),
		Date:      "2026-03-01",
	})
	require.NoError(t, err)

	stored, err := svc.UpsertClosing(ownerClaims(), &ClosingRequest{
		OutletID:  &outlet.ID,
		CardSales: f64(250),
		CashSales: f64(150),
		Date:      "2026-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, stored.CardSales)
	assert.Equal(t, 150.0, stored.CashSales)
	// Net cash equals cash sales: no deduction policy is applied.
	assert.Equal(t, 150.0, stored.NetCash)

	var count int64
	db.Model(&model.DailyClosing{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAppendOnlyRecordsAreNeverDeduplicated(t *testing.T) {
	db := setupTestDB(t)
	outlet := seedOutlet(t, db, "University Cafe", model.OutletCafe)
	product := seedProduct(t, db, "Bread", "pieces")
	svc := newRecordService(db)

	req := &SaleRequest{ProductID: product.ID, OutletID: &outlet.ID, Quantity: f64(5), Date: "2026-03-02"}
	first, err := svc.RecordSale(ownerClaims(), req)
	require.NoError(t, err)
	second, err := svc.RecordSale(ownerClaims(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	db.Model(&model.Sale{}).Count(&count)
	assert.EqualValues(t, 2, count)

	pReq := &PurchaseRequest{ProductID: product.ID, Quantity: f64(10), Date: "2026-03-02"}
	_, err = svc.RecordPurchase(purchasingClaims(), pReq)
	require.NoError(t, err)
	_, err = svc.RecordPurchase(purchasingClaims(), pReq)
	require.NoError(t, err)

	db.Model(&model.Purchase{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestNegativeQuantityIsRejectedWithoutWriting(t *testing.T) {
	db := setupTestDB(t)
	outlet := seedOutlet(t, db, "University Cafe", model.OutletCafe)
	product := seedProduct(t, db, "Sugar", "kg")
	svc := newRecordService(db)

	var vErr *ValidationError

	_, err := svc.RecordSale(ownerClaims(), &SaleRequest{
		ProductID: product.ID, OutletID: &outlet.ID, Quantity: f64(-1), Date: "2026-03-01",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "quantity", vErr.Field)

	_, err = svc.RecordPurchase(ownerClaims(), &PurchaseRequest{
		ProductID: product.ID, Quantity: f64(-3), Date: "2026-03-01",
	})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.UpsertClosing(ownerClaims(), &ClosingRequest{
		OutletID: &outlet.ID, CardSales: f64(-200), CashSales: f64(150), Date: "2026-03-01",
	})
	require.ErrorAs(t, err, &vErr)

	var sales, purchases, closings int64
	db.Model(&model.Sale{}).Count(&sales)
	db.Model(&model.Purchase{}).Count(&purchases)
	db.Model(&model.DailyClosing{}).Count(&closings)
	assert.Zero(t, sales)
	assert.Zero(t, purchases)
	assert.Zero(t, closings)
}

func TestOutletStaffCannotWriteToAnotherOutlet(t *testing.T) {
	db := setupTestDB(t)
	cafe := seedOutlet(t, db, "University Cafe", model.OutletCafe)
	market := seedOutlet(t, db, "Mini Market", model.OutletMiniMarket)
	product := seedProduct(t, db, "Bottled Water", "bottles")
	svc := newRecordService(db)

	claims := outletClaims(cafe.ID)

	// Explicitly naming another outlet is rejected.
	_, err := svc.RecordSale(claims, &SaleRequest{
		ProductID: product.ID, OutletID: &market.ID, Quantity: f64(2), Date: "2026-03-01",
	})
	assert.ErrorIs(t, err, ErrOutletForbidden)

	// Omitting the outlet lands the write on the caller's own outlet.
	sale, err := svc.RecordSale(claims, &SaleRequest{
		ProductID: product.ID, Quantity: f64(2), Date: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, cafe.ID, sale.OutletID)
}

func TestListScopingForcesOwnOutlet(t *testing.T) {
	db := setupTestDB(t)
	cafe := seedOutlet(t, db, "University Cafe", model.OutletCafe)
	market := seedOutlet(t, db, "Mini Market", model.OutletMiniMarket)
	product := seedProduct(t, db, "Bread", "pieces")
	svc := newRecordService(db)

	_, err := svc.RecordSale(ownerClaims(), &SaleRequest{ProductID: product.ID, OutletID: &cafe.ID, Quantity: f64(1), Date: "2026-03-01"})
	require.NoError(t, err)
	_, err = svc.RecordSale(ownerClaims(), &SaleRequest{ProductID: product.ID, OutletID: &market.ID, Quantity: f64(9), Date: "2026-03-01"})
	require.NoError(t, err)

	// Cafe staff asking for the market's sales still only see their own.
	sales, err := svc.ListSales(outletClaims(cafe.ID), &market.ID, dateRangeAll())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, cafe.ID, sales[0].OutletID)

	// The owner can filter any outlet.
	sales, err = svc.ListSales(ownerClaims(), &market.ID, dateRangeAll())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, market.ID, sales[0].OutletID)
}

func TestRecordRejectsUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	outlet := seedOutlet(t, db, "University Cafe", model.OutletCafe)
	svc := newRecordService(db)

	var vErr *ValidationError
	_, err := svc.RecordSale(ownerClaims(), &SaleRequest{
		ProductID: uuid.New(), OutletID: &outlet.ID, Quantity: f64(1), Date: "2026-03-01",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "productId", vErr.Field)

	product := seedProduct(t, db, "Sugar", "kg")
	ghost := uuid.New()
	_, err = svc.RecordSale(ownerClaims(), &SaleRequest{
		ProductID: product.ID, OutletID: &ghost, Quantity: f64(1), Date: "2026-03-01",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "outletId", vErr.Field)
}

func TestRecordRejectsInvalidDate(t *testing.T) {
	db := setupTestDB(t)
	outlet := seedOutlet(t, db, "University Cafe", model.OutletCafe)
	product := seedProduct(t, db, "Sugar", "kg")
	svc := newRecordService(db)

	var vErr *ValidationError
	_, err := svc.RecordSale(ownerClaims(), &SaleRequest{
		ProductID: product.ID, OutletID: &outlet.ID, Quantity: f64(1), Date: "not-a-date",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)
}

func TestMissingAmountIsRejectedWithoutWriting(t *testing.T) {
	db := setupTestDB(t)
	outlet := seedOutlet(t, db, "University Cafe", model.OutletCafe)
	product := seedProduct(t, db, "Sugar", "kg")
	svc := newRecordService(db)

	var vErr *ValidationError

	// An omitted quantity must not decode to an accepted zero.
	_, err := svc.RecordSale(ownerClaims(), &SaleRequest{
		ProductID: product.ID, OutletID: &outlet.ID, Date: "2026-03-01",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "quantity", vErr.Field)

	_, err = svc.RecordPurchase(ownerClaims(), &PurchaseRequest{
		ProductID: product.ID, Date: "2026-03-01",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "quantity", vErr.Field)

	_, err = svc.UpsertInventory(ownerClaims(), &InventoryRequest{
		ProductID: product.ID, OutletID: &outlet.ID, Date: "2026-03-01",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "quantity", vErr.Field)

	_, err = svc.RecordWaste(ownerClaims(), &WasteRequest{
		ProductID: product.ID, OutletID: &outlet.ID, Date: "2026-03-01",
	}, nil)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "quantity", vErr.Field)

	_, err = svc.UpsertClosing(ownerClaims(), &ClosingRequest{
		OutletID: &outlet.ID, CardSales: f64(100), Date: "2026-03-01",
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cashSales", vErr.Field)

	var sales, purchases, inventory, waste, closings int64
	db.Model(&model.Sale{}).Count(&sales)
	db.Model(&model.Purchase{}).Count(&purchases)
	db.Model(&model.Inventory{}).Count(&inventory)
	db.Model(&model.Waste{}).Count(&waste)
	db.Model(&model.DailyClosing{}).Count(&closings)
	assert.Zero(t, sales)
	assert.Zero(t, purchases)
	assert.Zero(t, inventory)
	assert.Zero(t, waste)
	assert.Zero(t, closings)
}

func TestExplicitZeroQuantityIsAccepted(t *testing.T) {
	db := setupTestDB(t)
	outlet := seedOutlet(t, db, "University Cafe", model.OutletCafe)
	product := seedProduct(t, db, "Sugar", "kg")
	svc := newRecordService(db)

	// Zero is a legitimate amount; only absence is rejected.
	sale, err := svc.RecordSale(ownerClaims(), &SaleRequest{
		ProductID: product.ID, OutletID: &outlet.ID, Quantity: f64(0), Date: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sale.Quantity)
}
