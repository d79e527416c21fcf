package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/minhducmx/banhang-api/internal/config"
	"github.com/minhducmx/banhang-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},

		&entity.Category{},
		&entity.Product{},

		&entity.Customer{},

		&entity.Order{},
		&entity.OrderItem{},

		&entity.ReceiptTemplate{},
		&entity.StoreSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds store settings, stock receipt templates and the
// initial admin account. Seeding is idempotent: existing rows are kept.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settingsCount int64
	db.Model(&entity.StoreSettings{}).Count(&settingsCount)
	if settingsCount == 0 {
		settings := entity.StoreSettings{
			StoreName:        "Cửa hàng",
			FooterNote:       "Cảm ơn quý khách!",
			DefaultPaperSize: "k80",
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed store settings: %w", err)
		}
	}

	if err := seedTemplates(db); err != nil {
		return err
	}

	// Initial admin account; password comes from the environment
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		err := db.Where("email = ?", adminEmail).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			admin := entity.User{
				Name:         "Admin",
				Email:        adminEmail,
				PasswordHash: string(hash),
				Role:         "admin",
			}
			if err := db.Create(&admin).Error; err != nil {
				return fmt.Errorf("failed to seed admin user: %w", err)
			}
			log.Printf("Created admin user %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

func seedTemplates(db *gorm.DB) error {
	stock := []entity.ReceiptTemplate{
		{Name: "Hóa đơn A4", PaperSize: "a4", Content: a4Template, IsDefault: true},
		{Name: "Hóa đơn K80", PaperSize: "k80", Content: thermalTemplate, IsDefault: true},
		{Name: "Hóa đơn K57", PaperSize: "k57", Content: thermalTemplate, IsDefault: true},
	}

	for i := range stock {
		var count int64
		db.Model(&entity.ReceiptTemplate{}).
			Where("paper_size = ?", stock[i].PaperSize).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&stock[i]).Error; err != nil {
			return fmt.Errorf("failed to seed template %s: %w", stock[i].Name, err)
		}
	}
	return nil
}

const a4Template = `<div class="header">
  <h1>(Ten_Cua_Hang)</h1>
  <p>(Dia_Chi)</p>
  <p>ĐT: (Dien_Thoai)</p>
</div>
<h2>HÓA ĐƠN BÁN HÀNG</h2>
<p>Số: (So_HD) — Ngày (Ngay)/(Thang)/(Nam) (Gio):(Phut)</p>
<p>Khách hàng: (Ten_Khach_Hang)</p>
<!--BANG_KE-->
<p>Tổng tiền hàng: (Tong_Tien_Hang)</p>
<p>Giảm giá: (Giam_Gia)</p>
<p><b>Thành tiền: (Thanh_Tien)</b></p>
<p><i>(Tien_Bang_Chu)</i></p>
<p>Khách đưa: (Tien_Khach_Dua) — Tiền thừa: (Tien_Thua)</p>
<p>Thanh toán: (Phuong_Thuc) — (Da_Thanh_Toan ĐÃ THANH TOÁN|CHƯA THANH TOÁN)</p>
<p class="footer">(Loi_Cam_On)</p>`

const thermalTemplate = `[C][B](Ten_Cua_Hang)[/B]
[C](Dia_Chi)
[C]ĐT: (Dien_Thoai)
[C][B]HÓA ĐƠN BÁN HÀNG[/B]
Số: (So_HD)
Ngày: (Ngay)/(Thang)/(Nam) (Gio):(Phut)
Khách: (Ten_Khach_Hang)
<!--BANG_KE-->
Tổng tiền hàng: (Tong_Tien_Hang)
Giảm giá: (Giam_Gia)
[B]Thành tiền: (Thanh_Tien)[/B]
(Tien_Bang_Chu)
Khách đưa: (Tien_Khach_Dua)
Tiền thừa: (Tien_Thua)
[C](Da_Thanh_Toan ĐÃ THANH TOÁN|CHƯA THANH TOÁN)
[C](Loi_Cam_On)`
