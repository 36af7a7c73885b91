package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendance "madrasahku_backend/internals/features/attendance/service"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "628123456789", NormalizePhone("08123456789"))
	assert.Equal(t, "628123456789", NormalizePhone("628123456789"), "prefix 62 tidak diubah")
	assert.Equal(t, "628123456789", NormalizePhone("+62 812-3456-789"))
	assert.Equal(t, "", NormalizePhone(""))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func TestNormalizePhoneStripsNonDigits(t *testing.T) {
	assert.Equal(t, "628123456789", NormalizePhone("0812-3456-789"))
	assert.Equal(t, "628123456789", NormalizePhone("(0812) 3456 789"))
}

func TestWALink(t *testing.T) {
	link := WALink("628123456789", "Halo Bapak/Ibu")
	assert.Equal(t, "https://wa.me/628123456789?text=Halo+Bapak%2FIbu", link)
}

func TestBuildResultNoPhone(t *testing.T) {
	res := BuildResult("isi laporan", nil)
	assert.False(t, res.CanSend)
	assert.Equal(t, "no phone number", res.Reason)
	assert.Equal(t, "isi laporan", res.Text, "teks tetap dibuat untuk disalin manual")
	assert.Empty(t, res.WALink)

	kosong := "   "
	res = BuildResult("isi laporan", &kosong)
	assert.False(t, res.CanSend)
}

func TestBuildResultWithPhone(t *testing.T) {
	phone := "08123456789"
	res := BuildResult("laporan", &phone)
	assert.True(t, res.CanSend)
	assert.Equal(t, "628123456789", res.Phone)
	assert.Contains(t, res.WALink, "wa.me/628123456789")
	assert.Empty(t, res.Reason)
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "2024-01-05", PeriodLabel("2024-01-05", "2024-01-05"))
	assert.Equal(t, "2024-01-01 s.d. 2024-01-07", PeriodLabel("2024-01-01", "2024-01-07"))
	assert.Equal(t, "2024-01-05", PeriodLabel("2024-01-05", ""))
	assert.Equal(t, "2024-01-05", PeriodLabel("", "2024-01-05"))
}

func laporanInput() LaporanSantriInput {
	return LaporanSantriInput{
		MadrasahName: "Madrasah Al-Falah",
		SantriName:   "Ahmad",
		WaliName:     "Bapak Usman",
		Bulan:        "2024-01",
		Absensi:      attendance.StatusCount{Hadir: 20, Izin: 1, Sakit: 2, Total: 23},
		TotalHafalan: "12 Juz",
		RataMurojaah: "8.5 Halaman",
		RataZiyadah:  "-",
		Tahfizh:      "Mumtaz",
		Tilawah:      "Jayyid",
		Adab:         "-",
	}
}

func TestFormatLaporanSantri(t *testing.T) {
	text := FormatLaporanSantri(laporanInput())

	assert.Contains(t, text, "Yth. Bapak/Ibu Bapak Usman")
	assert.Contains(t, text, "*Ahmad*")
	assert.Contains(t, text, "periode 2024-01")
	assert.Contains(t, text, "- Hadir: 20")
	assert.Contains(t, text, "Total pertemuan: 23")
	assert.Contains(t, text, "- Total hafalan: 12 Juz")
	assert.Contains(t, text, "- Rata-rata ziyadah: -")
	assert.Contains(t, text, "- Tahfizh: Mumtaz")
	assert.Contains(t, text, "- Adab: -")
	assert.Contains(t, text, "Tidak ada catatan khusus.")
	assert.Contains(t, text, "Madrasah Al-Falah")
}

func TestFormatLaporanSantriWaliFallback(t *testing.T) {
	in := laporanInput()
	in.WaliName = "  "
	text := FormatLaporanSantri(in)
	assert.Contains(t, text, "Yth. Bapak/Ibu Wali Santri")
}

func TestFormatLaporanSantriRemarks(t *testing.T) {
	in := laporanInput()
	in.CatatanMusammi = "Perlu tambah murojaah"
	in.CatatanMadrasah = "SPP bulan depan"
	text := FormatLaporanSantri(in)

	assert.Contains(t, text, "- Musammi: Perlu tambah murojaah")
	assert.Contains(t, text, "- Madrasah: SPP bulan depan")
	assert.NotContains(t, text, "- Wali Kelas:")
	assert.NotContains(t, text, "Tidak ada catatan khusus.")
}

func TestFormatLaporanSantriIdempotent(t *testing.T) {
	in := laporanInput()
	assert.Equal(t, FormatLaporanSantri(in), FormatLaporanSantri(in))
}

func TestFormatLaporanKelas(t *testing.T) {
	in := LaporanKelasInput{
		MadrasahName: "Madrasah Al-Falah",
		Marhalah:     "Aliyah",
		Kelas:        "2A",
		StartTanggal: "2024-01-01",
		EndTanggal:   "2024-01-07",
		Absensi:      attendance.StatusCount{Hadir: 50, Alpa: 3, Total: 53},
		Problem: []attendance.ProblemRow{
			{Nama: "Ahmad", Items: []attendance.ProblemItem{{Status: "Alpa", Count: 3}}},
		},
	}
	text := FormatLaporanKelas(in)

	assert.Contains(t, text, "Kelas 2A (Aliyah)")
	assert.Contains(t, text, "Periode: 2024-01-01 s.d. 2024-01-07")
	assert.Contains(t, text, "- Ahmad: Alpa (3)")
	assert.Contains(t, text, "dibuat otomatis oleh sistem Madrasah Al-Falah")
	assert.NotContains(t, text, attendance.SemuaHadirMarker)
}

func TestFormatLaporanKelasSemuaHadir(t *testing.T) {
	in := LaporanKelasInput{
		MadrasahName: "Madrasah Al-Falah",
		Marhalah:     "Aliyah",
		Kelas:        "2A",
		StartTanggal: "2024-01-05",
		EndTanggal:   "2024-01-05",
		Absensi:      attendance.StatusCount{Hadir: 20, Total: 20},
	}
	text := FormatLaporanKelas(in)

	assert.Contains(t, text, "Periode: 2024-01-05\n")
	assert.Contains(t, text, attendance.SemuaHadirMarker)
	require.Equal(t, 1, strings.Count(text, attendance.SemuaHadirMarker))
}

func TestFormatLaporanSantriLengkapDefaultCatatan(t *testing.T) {
	in := LaporanSantriLengkapInput{LaporanSantriInput: laporanInput()}
	text := FormatLaporanSantriLengkap(in)

	assert.Contains(t, text, "Keluarga besar Madrasah Al-Falah")
	assert.Contains(t, text, DefaultCatatanSantri)
	assert.Contains(t, text, "Barakallahu fiikum.")
}

func TestFormatLaporanSantriLengkapCustomCatatan(t *testing.T) {
	in := LaporanSantriLengkapInput{
		LaporanSantriInput: laporanInput(),
		CatatanKhusus:      "Ananda sudah lancar juz 29, pertahankan!",
	}
	text := FormatLaporanSantriLengkap(in)

	assert.Contains(t, text, "Ananda sudah lancar juz 29, pertahankan!")
	assert.NotContains(t, text, DefaultCatatanSantri)
}
