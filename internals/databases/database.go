package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"comedores_backend/internals/configs"
	comedorModel "comedores_backend/internals/features/comedores/model"
	consumoModel "comedores_backend/internals/features/consumos/model"
	empleadoModel "comedores_backend/internals/features/empleados/model"
	empresaModel "comedores_backend/internals/features/empresas/model"
	eventoModel "comedores_backend/internals/features/eventos/model"
	historialModel "comedores_backend/internals/features/historiales/model"
	tabletModel "comedores_backend/internals/features/tablets/model"
	userModel "comedores_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=comedores&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Error conectando a la DB: %v", err)
	}
	DB = db
	log.Println("✅ Conectado a PostgreSQL")
}

// Migrate crea/actualiza el esquema. Solo corre si DB_AUTOMIGRATE=true;
// en producción el esquema se maneja con scripts SQL.
func Migrate() {
	if getenv("DB_AUTOMIGRATE", "false") != "true" {
		return
	}
	log.Println("🛠 Ejecutando AutoMigrate...")
	if err := DB.AutoMigrate(
		&empresaModel.EmpresaModel{},
		&comedorModel.ComedorModel{},
		&empleadoModel.EmpleadoModel{},
		&consumoModel.ConsumoLogModel{},
		&historialModel.ConsumoHistorialModel{},
		&historialModel.ConsumoHistorialDetalleModel{},
		&eventoModel.ConsumoEventoModel{},
		&tabletModel.TabletConfigModel{},
		&userModel.UserModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate falló: %v", err)
	}
	log.Println("✅ Esquema migrado")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
