package seeds

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"madrasahku_backend/internals/constants"
	madrasahModel "madrasahku_backend/internals/features/madrasah/model"
	userModel "madrasahku_backend/internals/features/users/auth/model"
	helper "madrasahku_backend/internals/helpers"
)

// RunAllSeeds menyiapkan data awal untuk instalasi baru: satu madrasah
// contoh plus akun owner. Idempoten: tidak menduplikasi bila sudah ada.
func RunAllSeeds(db *gorm.DB) {
	madrasahID, err := seedMadrasah(db)
	if err != nil {
		log.Printf("[ERROR] Seed madrasah gagal: %v", err)
		return
	}
	if err := seedOwner(db, madrasahID); err != nil {
		log.Printf("[ERROR] Seed akun owner gagal: %v", err)
		return
	}
	log.Println("✅ Seed selesai")
}

func seedMadrasah(db *gorm.DB) (uuid.UUID, error) {
	var existing madrasahModel.MadrasahModel
	err := db.First(&existing).Error
	if err == nil {
		return existing.MadrasahID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return uuid.Nil, err
	}

	name := "Madrasah Tahfizh Al-Falah"
	row := madrasahModel.MadrasahModel{
		MadrasahName: name,
		MadrasahSlug: helper.GenerateSlug(name),
	}
	if err := db.Create(&row).Error; err != nil {
		return uuid.Nil, err
	}
	log.Printf("[INFO] Madrasah contoh dibuat: %s", row.MadrasahSlug)
	return row.MadrasahID, nil
}

func seedOwner(db *gorm.DB, madrasahID uuid.UUID) error {
	email := "owner@madrasahku.id"

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Password default, wajib diganti lewat /auth/change-password
	hash, err := bcrypt.GenerateFromPassword([]byte("ganti-password-ini"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	row := userModel.UserModel{
		UserName:       "Owner",
		UserEmail:      email,
		UserPassword:   string(hash),
		UserRole:       constants.RoleOwner,
		UserMadrasahID: &madrasahID,
	}
	if err := db.Create(&row).Error; err != nil {
		return err
	}
	log.Printf("[INFO] Akun owner dibuat: %s", email)
	return nil
}
