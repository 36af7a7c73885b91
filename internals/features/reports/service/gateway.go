package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	absensiModel "madrasahku_backend/internals/features/attendance/model"
	attendance "madrasahku_backend/internals/features/attendance/service"
	evaluationModel "madrasahku_backend/internals/features/evaluation/model"
	halaqahModel "madrasahku_backend/internals/features/halaqah/model"
	madrasahModel "madrasahku_backend/internals/features/madrasah/model"
	musammiModel "madrasahku_backend/internals/features/people/musammi/model"
	santriModel "madrasahku_backend/internals/features/people/santri/model"
	waliKelasModel "madrasahku_backend/internals/features/people/wali_kelas/model"
	progressModel "madrasahku_backend/internals/features/progress/model"
)

// Dataset adalah seluruh record set satu madrasah, sudah di-decode dan
// siap dipakai fungsi rekap di memori.
type Dataset struct {
	MadrasahName string

	Santri     []santriModel.SantriModel
	Musammi    []musammiModel.MusammiModel
	WaliKelas  []waliKelasModel.WaliKelasModel
	Halaqah    []halaqahModel.HalaqahModel
	Membership []halaqahModel.HalaqahSantriModel

	// Absensi sudah di-join dengan identitas person; baris yang person
	// atau halaqah-nya tidak resolvable sudah di-drop di sini.
	Absensi []attendance.Entry

	Hafalan   []progressModel.HafalanModel
	Penilaian []evaluationModel.PenilaianModel
	Opsi      []evaluationModel.OpsiPenilaianModel
	Target    []progressModel.TargetKelasModel
}

// Gateway membaca semua record set untuk satu tenant. Tenant di-resolve
// sekali oleh controller dari token dan diikat saat konstruksi.
type Gateway struct {
	db         *gorm.DB
	madrasahID uuid.UUID
}

func NewGateway(db *gorm.DB, madrasahID uuid.UUID) *Gateway {
	return &Gateway{db: db, madrasahID: madrasahID}
}

// LoadAll menarik semua tabel secara paralel. Tabel inti (person,
// halaqah, absensi) menggagalkan load bila error; tabel opsional
// (hafalan, penilaian, opsi, target) degradasi jadi slice kosong.
func (g *Gateway) LoadAll(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{}
	var absensiRows []absensiModel.AbsensiModel

	eg, egCtx := errgroup.WithContext(ctx)
	db := func() *gorm.DB { return g.db.WithContext(egCtx) }

	eg.Go(func() error {
		var m madrasahModel.MadrasahModel
		if err := db().Where("madrasah_id = ?", g.madrasahID).First(&m).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		ds.MadrasahName = m.MadrasahName
		return nil
	})
	eg.Go(func() error {
		return db().Where("santri_madrasah_id = ?", g.madrasahID).Find(&ds.Santri).Error
	})
	eg.Go(func() error {
		return db().Where("musammi_madrasah_id = ?", g.madrasahID).Find(&ds.Musammi).Error
	})
	eg.Go(func() error {
		return db().Where("wali_kelas_madrasah_id = ?", g.madrasahID).Find(&ds.WaliKelas).Error
	})
	eg.Go(func() error {
		return db().Where("halaqah_madrasah_id = ?", g.madrasahID).Find(&ds.Halaqah).Error
	})
	eg.Go(func() error {
		return db().Where("halaqah_santri_madrasah_id = ?", g.madrasahID).Find(&ds.Membership).Error
	})
	eg.Go(func() error {
		return db().Where("absensi_madrasah_id = ?", g.madrasahID).Find(&absensiRows).Error
	})

	// Tabel opsional: error dicatat lalu dianggap kosong, tidak
	// pernah menggagalkan load.
	eg.Go(func() error {
		if err := db().Where("hafalan_madrasah_id = ?", g.madrasahID).Find(&ds.Hafalan).Error; err != nil {
			log.Printf("[WARN] load hafalan gagal, dianggap kosong: %v", err)
			ds.Hafalan = nil
		}
		return nil
	})
	eg.Go(func() error {
		if err := db().Where("penilaian_madrasah_id = ?", g.madrasahID).Find(&ds.Penilaian).Error; err != nil {
			log.Printf("[WARN] load penilaian gagal, dianggap kosong: %v", err)
			ds.Penilaian = nil
		}
		return nil
	})
	eg.Go(func() error {
		if err := db().Where("opsi_madrasah_id = ?", g.madrasahID).Find(&ds.Opsi).Error; err != nil {
			log.Printf("[WARN] load opsi penilaian gagal, dianggap kosong: %v", err)
			ds.Opsi = nil
		}
		return nil
	})
	eg.Go(func() error {
		if err := db().Where("target_madrasah_id = ?", g.madrasahID).Find(&ds.Target).Error; err != nil {
			log.Printf("[WARN] load target kelas gagal, dianggap kosong: %v", err)
			ds.Target = nil
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ds.Absensi = joinAbsensi(absensiRows, ds.Santri, ds.Musammi)
	return ds, nil
}

// joinAbsensi melekatkan identitas person pada tiap baris absensi.
// Referensi yang tidak resolvable (person sudah dihapus, halaqah null)
// di-drop diam-diam, bukan error.
func joinAbsensi(rows []absensiModel.AbsensiModel, santri []santriModel.SantriModel, musammi []musammiModel.MusammiModel) []attendance.Entry {
	type identity struct{ nama, marhalah, kelas string }
	santriByID := make(map[uuid.UUID]identity, len(santri))
	for _, s := range santri {
		santriByID[s.SantriID] = identity{s.SantriName, s.SantriMarhalah, s.SantriKelas}
	}
	musammiByID := make(map[uuid.UUID]identity, len(musammi))
	for _, m := range musammi {
		musammiByID[m.MusammiID] = identity{m.MusammiName, m.MusammiMarhalah, m.MusammiKelas}
	}

	entries := make([]attendance.Entry, 0, len(rows))
	for _, r := range rows {
		var person identity
		var ok bool
		switch r.AbsensiRole {
		case "santri":
			person, ok = santriByID[r.AbsensiPersonID]
		case "musammi":
			person, ok = musammiByID[r.AbsensiPersonID]
		}
		if !ok {
			continue
		}
		halaqahID := uuid.Nil
		if r.AbsensiHalaqahID != nil {
			halaqahID = *r.AbsensiHalaqahID
		}
		e := attendance.Entry{
			ID:        r.AbsensiID,
			Tanggal:   r.AbsensiTanggal,
			Waktu:     r.AbsensiWaktu,
			Role:      r.AbsensiRole,
			PersonID:  r.AbsensiPersonID,
			Nama:      person.nama,
			Marhalah:  person.marhalah,
			Kelas:     person.kelas,
			Status:    r.AbsensiStatus,
			HalaqahID: halaqahID,
		}
		if !attendance.Resolvable(e) {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// FindSantri mencari santri pada dataset.
func (ds *Dataset) FindSantri(id uuid.UUID) (santriModel.SantriModel, bool) {
	for _, s := range ds.Santri {
		if s.SantriID == id {
			return s, true
		}
	}
	return santriModel.SantriModel{}, false
}

// FindWaliKelas mencari wali kelas untuk satu (marhalah, kelas).
func (ds *Dataset) FindWaliKelas(marhalah, kelas string) (waliKelasModel.WaliKelasModel, bool) {
	for _, w := range ds.WaliKelas {
		if w.WaliKelasMarhalah == marhalah && w.WaliKelasKelas == kelas {
			return w, true
		}
	}
	return waliKelasModel.WaliKelasModel{}, false
}
