package migrate_test

import (
	"context"
	"testing"

	"storefront/internal/migrate"
	"storefront/internal/testutil"

	"go.uber.org/zap"
)

func TestMigrateStoreDB_Idempotent(t *testing.T) {
	db := testutil.SetupTestPostgres(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := migrate.MigrateStoreDB(ctx, db, zap.NewNop(), migrate.DefaultMigrateOptions()); err != nil {
			t.Fatalf("migrate run %d: %v", i+1, err)
		}
	}

	var n int64
	err := db.Raw(`SELECT count(*) FROM pg_constraint WHERE conname IN
		('chk_orders_status_allowed','chk_order_items_size_allowed','chk_order_items_quantity_gt_zero',
		 'fk_order_items_order','fk_order_items_product')`).Scan(&n).Error
	if err != nil {
		t.Fatalf("query constraints: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 constraints, got %d", n)
	}
}

func TestMigrateStoreDB_SchemaOnly(t *testing.T) {
	db := testutil.SetupTestPostgres(t)
	if err := migrate.MigrateStoreDB(context.Background(), db, zap.NewNop(), migrate.MigrateOptions{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"products", "orders", "order_items"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s missing", table)
		}
	}
}
