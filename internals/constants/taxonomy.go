package constants

// Kosakata domain yang tersimpan di DB dan dipakai laporan.
// Nilai-nilai ini ikut tercetak di pesan WA, jangan diubah tanpa migrasi data.

// Status kehadiran (urutan tetap, dipakai rekap & laporan)
const (
	StatusHadir     = "Hadir"
	StatusIzin      = "Izin"
	StatusSakit     = "Sakit"
	StatusAlpa      = "Alpa"
	StatusTerlambat = "Terlambat"
)

// Urutan kanonik status untuk tabel rekap dan daftar santri bermasalah
var StatusOrder = []string{StatusHadir, StatusIzin, StatusSakit, StatusAlpa, StatusTerlambat}

func IsValidStatus(s string) bool {
	for _, v := range StatusOrder {
		if v == s {
			return true
		}
	}
	return false
}

// Marhalah (jenjang), urutan index = urutan sort
const (
	MarhalahMutawassithah = "Mutawassithah"
	MarhalahAliyah        = "Aliyah"
	MarhalahJamiah        = "Jamiah"
)

var MarhalahOrder = []string{MarhalahMutawassithah, MarhalahAliyah, MarhalahJamiah}

// MarhalahIndex mengembalikan posisi marhalah pada urutan tetap.
// Nilai tak dikenal ditaruh paling belakang.
func MarhalahIndex(m string) int {
	for i, v := range MarhalahOrder {
		if v == m {
			return i
		}
	}
	return len(MarhalahOrder)
}

// Waktu halaqah (empat slot tetap)
const (
	WaktuShubuh = "Shubuh"
	WaktuDhuha  = "Dhuha"
	WaktuAshar  = "Ashar"
	WaktuIsya   = "Isya"
)

var WaktuOrder = []string{WaktuShubuh, WaktuDhuha, WaktuAshar, WaktuIsya}

func IsValidWaktu(w string) bool {
	for _, v := range WaktuOrder {
		if v == w {
			return true
		}
	}
	return false
}

// Dimensi progres hafalan
const (
	DimensiHafalan  = "hafalan"  // total hafalan kumulatif
	DimensiMurojaah = "murojaah" // pengulangan
	DimensiZiyadah  = "ziyadah"  // hafalan baru
)

var DimensiOrder = []string{DimensiHafalan, DimensiMurojaah, DimensiZiyadah}

func IsValidDimensi(d string) bool {
	for _, v := range DimensiOrder {
		if v == d {
			return true
		}
	}
	return false
}

// Peran pada entri absensi
const (
	RoleSantri  = "santri"
	RoleMusammi = "musammi"
)

// Format tanggal & bulan (kolom disimpan sebagai string agar
// perbandingan leksikografis valid)
const (
	FormatTanggal = "2006-01-02"
	FormatBulan   = "2006-01"
)
