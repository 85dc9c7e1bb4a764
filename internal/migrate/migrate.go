package migrate

import (
	"context"

	"storefront/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto
	CreateChecks           bool // CHECK-ограничения для целостности
	CreateIndexes          bool // индексы и UNIQUE
	CreateFKsViaSQL        bool // FK через SQL (поверх GORM-constraint)
	CreateUpdatedAtTrigger bool // триггер обновления updated_at
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
	}
}

type step struct {
	name string
	sql  string
}

func MigrateStoreDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы данных магазина")
	db = db.WithContext(ctx)

	if opt.CreateExtensions {
		log.Info("Создание расширений PostgreSQL")
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("Не удалось включить расширение pgcrypto", zap.Error(err))
			return err
		}
	}

	log.Info("Создание таблиц products, orders и order_items")
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}
	log.Info("Таблицы успешно созданы")

	if opt.CreateUpdatedAtTrigger {
		if err := run(db, log, step{"триггеры updated_at", `
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_products_updated ON products;
CREATE TRIGGER trg_products_updated
BEFORE UPDATE ON products
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`}); err != nil {
			return err
		}
	}

	if opt.CreateChecks {
		log.Info("Создание CHECK-ограничений")
		checks := []step{
			{"CHECK для статусов", `
ALTER TABLE orders DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('pending','approved'));`},
			{"CHECK для размеров", `
ALTER TABLE order_items DROP CONSTRAINT IF EXISTS chk_order_items_size_allowed;
ALTER TABLE order_items ADD CONSTRAINT chk_order_items_size_allowed
  CHECK (size IN ('PP','P','M','G','GG'));`},
			{"CHECK для order_items.quantity", `
ALTER TABLE order_items DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);`},
			{"CHECK для цен", `
ALTER TABLE order_items DROP CONSTRAINT IF EXISTS chk_order_items_price_non_negative;
ALTER TABLE order_items ADD CONSTRAINT chk_order_items_price_non_negative
  CHECK (price >= 0);
ALTER TABLE orders DROP CONSTRAINT IF EXISTS chk_orders_total_amount_non_negative;
ALTER TABLE orders ADD CONSTRAINT chk_orders_total_amount_non_negative
  CHECK (total_amount >= 0);
ALTER TABLE products DROP CONSTRAINT IF EXISTS chk_products_price_non_negative;
ALTER TABLE products ADD CONSTRAINT chk_products_price_non_negative
  CHECK (price >= 0);`},
			{"CHECK для телефона", `
ALTER TABLE orders DROP CONSTRAINT IF EXISTS chk_orders_customer_phone_digits;
ALTER TABLE orders ADD CONSTRAINT chk_orders_customer_phone_digits
  CHECK (customer_phone ~ '^[0-9]{10,11}$');`},
		}
		for _, c := range checks {
			if err := run(db, log, c); err != nil {
				return err
			}
		}
		log.Info("CHECK-ограничения успешно созданы")
	}

	if opt.CreateIndexes {
		log.Info("Создание индексов")
		indexes := []step{
			{"ux_order_items_order_product_size", `
CREATE UNIQUE INDEX IF NOT EXISTS ux_order_items_order_product_size
ON order_items (order_id, product_id, size);`},
			{"ix_orders_status_created", `
CREATE INDEX IF NOT EXISTS ix_orders_status_created
ON orders (status, created_at DESC);`},
			{"ix_orders_customer_name", `
CREATE INDEX IF NOT EXISTS ix_orders_customer_name
ON orders (customer_name);`},
		}
		for _, ix := range indexes {
			if err := run(db, log, ix); err != nil {
				return err
			}
		}
		log.Info("Индексы успешно созданы")
	}

	if opt.CreateFKsViaSQL {
		log.Info("Создание внешних ключей")
		fks := []step{
			{"FK order_items.order_id -> orders.id", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;`},
			{"FK order_items.product_id -> products.id", `
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_product,
  ADD CONSTRAINT fk_order_items_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT;`},
		}
		for _, fk := range fks {
			if err := run(db, log, fk); err != nil {
				return err
			}
		}
		log.Info("Внешние ключи успешно созданы")
	}

	log.Info("Миграция базы данных магазина успешно завершена")
	return nil
}

func run(db *gorm.DB, log *zap.Logger, s step) error {
	if err := db.Exec(s.sql).Error; err != nil {
		log.Error("Не удалось выполнить шаг миграции", zap.String("step", s.name), zap.Error(err))
		return err
	}
	return nil
}
