package infra

import (
	"fmt"

	"github.com/milagrosarganin/x3-padel-center-website/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express (partial indexes in particular).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies AutoMigrate plus the schema patches. Exposed so
// integration tests can prepare a throwaway database the same way the server
// does.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Proveedor{},
		&model.Producto{},
		&model.MovimientoStock{},
		&model.Mesa{},
		&model.Venta{},
		&model.VentaItem{},
		&model.Gasto{},
		&model.Arqueo{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded so re-running on an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// At most one open arqueo per user. This partial unique index is the
		// authority under concurrent opens; the service's pre-check is only a
		// friendly fast path.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_arqueos_abierto_por_usuario') THEN
		    CREATE UNIQUE INDEX uni_arqueos_abierto_por_usuario
		        ON arqueos (usuario_id)
		        WHERE fecha_cierre IS NULL;
		  END IF;
		END $$`,
		// Stock can never go negative regardless of the code path.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_productos_stock_no_negativo') THEN
		    ALTER TABLE productos
		      ADD CONSTRAINT chk_productos_stock_no_negativo CHECK (stock_actual >= 0);
		  END IF;
		END $$`,
		// Hot path for the movement audit listing.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_movimientos_stock_producto') THEN
		    CREATE INDEX idx_movimientos_stock_producto
		        ON movimientos_stock (producto_id, created_at DESC);
		  END IF;
		END $$`,
		// Daily sales listing filters by user and day.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_ventas_usuario_fecha') THEN
		    CREATE INDEX idx_ventas_usuario_fecha
		        ON ventas (usuario_id, created_at DESC);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
