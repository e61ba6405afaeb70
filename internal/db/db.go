package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Invariante de agenda: um barbeiro não pode ter dois agendamentos
	// ativos no mesmo horário. O índice parcial é a fonte de verdade;
	// o pre-check da aplicação existe só para dar erro amigável.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_barber_slot
        ON appointments (barber_id, appointment_time)
        WHERE status <> 'cancelled'
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create unique slot index")
	}

	return db
}
