package model

import (
	"time"

	"github.com/google/uuid"
)

// Rapor bulanan per santri. Rating nullable: kategori yang belum dinilai
// tetap kosong, bukan string default.
type PenilaianModel struct {
	PenilaianID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:penilaian_id" json:"penilaian_id"`

	PenilaianMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:penilaian_madrasah_id" json:"penilaian_madrasah_id"`
	PenilaianSantriID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_penilaian_upsert,priority:1;column:penilaian_santri_id" json:"penilaian_santri_id"`

	PenilaianBulan string `gorm:"type:varchar(7);not null;uniqueIndex:idx_penilaian_upsert,priority:2;column:penilaian_bulan" json:"penilaian_bulan"`

	PenilaianTahfizh *string `gorm:"type:varchar(30);column:penilaian_tahfizh" json:"penilaian_tahfizh,omitempty"`
	PenilaianTilawah *string `gorm:"type:varchar(30);column:penilaian_tilawah" json:"penilaian_tilawah,omitempty"`
	PenilaianAdab    *string `gorm:"type:varchar(30);column:penilaian_adab" json:"penilaian_adab,omitempty"`

	PenilaianCatatanMusammi   string `gorm:"type:text;not null;default:'';column:penilaian_catatan_musammi" json:"penilaian_catatan_musammi"`
	PenilaianCatatanWaliKelas string `gorm:"type:text;not null;default:'';column:penilaian_catatan_wali_kelas" json:"penilaian_catatan_wali_kelas"`
	PenilaianCatatanMadrasah  string `gorm:"type:text;not null;default:'';column:penilaian_catatan_madrasah" json:"penilaian_catatan_madrasah"`

	PenilaianCreatedAt time.Time  `gorm:"column:penilaian_created_at;autoCreateTime" json:"penilaian_created_at"`
	PenilaianUpdatedAt *time.Time `gorm:"column:penilaian_updated_at;autoUpdateTime" json:"penilaian_updated_at,omitempty"`
}

func (PenilaianModel) TableName() string { return "penilaian_bulanan" }

// Skala rating kustom per madrasah per kategori. Tanpa baris, skala
// bawaan lima tingkat yang dipakai.
type OpsiPenilaianModel struct {
	OpsiID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:opsi_id" json:"opsi_id"`

	OpsiMadrasahID uuid.UUID `gorm:"type:uuid;not null;index;column:opsi_madrasah_id" json:"opsi_madrasah_id"`

	OpsiKategori string `gorm:"type:varchar(30);not null;column:opsi_kategori" json:"opsi_kategori"`
	OpsiLabel    string `gorm:"type:varchar(30);not null;column:opsi_label" json:"opsi_label"`
	OpsiSkor     int    `gorm:"not null;default:0;column:opsi_skor" json:"opsi_skor"`

	OpsiCreatedAt time.Time `gorm:"column:opsi_created_at;autoCreateTime" json:"opsi_created_at"`
}

func (OpsiPenilaianModel) TableName() string { return "opsi_penilaian" }
