package service

import (
	"fmt"
	"net/url"
	"strings"

	attendance "madrasahku_backend/internals/features/attendance/service"
)

/* =========================================================
 * NORMALISASI NOMOR & LINK WA
 * ========================================================= */

// NormalizePhone membuang semua non-digit lalu mengganti "0" di depan
// dengan prefix negara "62".
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		return "62" + digits[1:]
	}
	return digits
}

// WALink membangun link kirim WA dengan teks ter-encode.
func WALink(phone, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}

// ReportResult membungkus teks laporan plus status pengiriman. Tanpa
// nomor telepon teks tetap dihasilkan untuk disalin manual, hanya
// pengiriman otomatis yang ditolak.
type ReportResult struct {
	Text    string `json:"text"`
	Phone   string `json:"phone,omitempty"`
	WALink  string `json:"wa_link,omitempty"`
	CanSend bool   `json:"can_send"`
	Reason  string `json:"reason,omitempty"`
}

// BuildResult menormalkan nomor dan memutuskan bisa-kirim.
func BuildResult(text string, rawPhone *string) ReportResult {
	res := ReportResult{Text: text}
	raw := ""
	if rawPhone != nil {
		raw = strings.TrimSpace(*rawPhone)
	}
	phone := NormalizePhone(raw)
	if phone == "" {
		res.CanSend = false
		res.Reason = "no phone number"
		return res
	}
	res.Phone = phone
	res.WALink = WALink(phone, text)
	res.CanSend = true
	return res
}

/* =========================================================
 * LABEL PERIODE
 * ========================================================= */

// PeriodLabel merender label periode: satu tanggal tampil tunggal,
// rentang tampil "A s.d. B".
func PeriodLabel(startTanggal, endTanggal string) string {
	if startTanggal == endTanggal || endTanggal == "" {
		return startTanggal
	}
	if startTanggal == "" {
		return endTanggal
	}
	return fmt.Sprintf("%s s.d. %s", startTanggal, endTanggal)
}

/* =========================================================
 * TEMPLATE 1: LAPORAN WALI SANTRI
 * ========================================================= */

const fallbackWaliName = "Wali Santri"

const noRemarksLine = "Tidak ada catatan khusus."

type LaporanSantriInput struct {
	MadrasahName string
	SantriName   string
	WaliName     string // kosong → sapaan generik
	Bulan        string // yyyy-MM

	Absensi attendance.StatusCount

	// Sudah berbentuk teks tampilan ("12 Juz", "8.5 Halaman", atau "-")
	TotalHafalan string
	RataMurojaah string
	RataZiyadah  string

	// "-" saat belum dinilai
	Tahfizh string
	Tilawah string
	Adab    string

	CatatanMusammi   string
	CatatanWaliKelas string
	CatatanMadrasah  string
}

// FormatLaporanSantri merender laporan bulanan untuk wali santri.
// Deterministik: input sama selalu menghasilkan byte yang sama.
func FormatLaporanSantri(in LaporanSantriInput) string {
	wali := strings.TrimSpace(in.WaliName)
	if wali == "" {
		wali = fallbackWaliName
	}

	var b strings.Builder
	b.WriteString("Assalamu'alaikum warahmatullahi wabarakatuh.\n\n")
	fmt.Fprintf(&b, "Yth. Bapak/Ibu %s,\n", wali)
	fmt.Fprintf(&b, "Berikut laporan perkembangan ananda *%s* periode %s.\n\n", in.SantriName, in.Bulan)

	writeAbsensiSection(&b, in.Absensi)

	b.WriteString("*Perkembangan Hafalan*\n")
	fmt.Fprintf(&b, "- Total hafalan: %s\n", in.TotalHafalan)
	fmt.Fprintf(&b, "- Rata-rata murojaah: %s\n", in.RataMurojaah)
	fmt.Fprintf(&b, "- Rata-rata ziyadah: %s\n\n", in.RataZiyadah)

	b.WriteString("*Penilaian Bulanan*\n")
	fmt.Fprintf(&b, "- Tahfizh: %s\n", in.Tahfizh)
	fmt.Fprintf(&b, "- Tilawah: %s\n", in.Tilawah)
	fmt.Fprintf(&b, "- Adab: %s\n\n", in.Adab)

	b.WriteString("*Catatan*\n")
	writeRemarks(&b, in.CatatanMusammi, in.CatatanWaliKelas, in.CatatanMadrasah)

	b.WriteString("\nJazakumullahu khairan atas perhatian dan kerja samanya.\n")
	fmt.Fprintf(&b, "%s\n", in.MadrasahName)
	return b.String()
}

/* =========================================================
 * TEMPLATE 2: RINGKASAN KELAS (UNTUK WALI KELAS)
 * ========================================================= */

type LaporanKelasInput struct {
	MadrasahName string
	Marhalah     string
	Kelas        string

	StartTanggal string
	EndTanggal   string

	Absensi attendance.StatusCount
	Problem []attendance.ProblemRow
}

// FormatLaporanKelas merender ringkasan kehadiran satu kelas untuk wali
// kelas, termasuk daftar santri bermasalah atau penanda semua hadir.
func FormatLaporanKelas(in LaporanKelasInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Ringkasan Kehadiran Kelas %s (%s)*\n", in.Kelas, in.Marhalah)
	fmt.Fprintf(&b, "Periode: %s\n\n", PeriodLabel(in.StartTanggal, in.EndTanggal))

	writeAbsensiSection(&b, in.Absensi)

	b.WriteString("*Santri Perlu Perhatian*\n")
	if len(in.Problem) == 0 {
		b.WriteString(attendance.SemuaHadirMarker + "\n")
	} else {
		for _, row := range in.Problem {
			fmt.Fprintf(&b, "- %s\n", attendance.FormatProblemLine(row))
		}
	}

	fmt.Fprintf(&b, "\nPesan ini dibuat otomatis oleh sistem %s.\n", in.MadrasahName)
	return b.String()
}

/* =========================================================
 * TEMPLATE 3: LAPORAN WALI SANTRI (VARIAN LENGKAP)
 * ========================================================= */

// DefaultCatatanSantri dipakai saat admin belum menulis catatan khusus
// untuk santri yang bersangkutan.
const DefaultCatatanSantri = "Semoga Allah senantiasa memudahkan ananda dalam menghafal dan mengamalkan Al-Quran."

type LaporanSantriLengkapInput struct {
	LaporanSantriInput

	// Catatan bebas per santri; kosong → DefaultCatatanSantri
	CatatanKhusus string
}

// FormatLaporanSantriLengkap adalah varian laporan wali santri dengan
// pembuka/penutup atas nama madrasah dan catatan khusus yang bisa
// dikustomisasi per santri.
func FormatLaporanSantriLengkap(in LaporanSantriLengkapInput) string {
	wali := strings.TrimSpace(in.WaliName)
	if wali == "" {
		wali = fallbackWaliName
	}
	catatan := strings.TrimSpace(in.CatatanKhusus)
	if catatan == "" {
		catatan = DefaultCatatanSantri
	}

	var b strings.Builder
	b.WriteString("Assalamu'alaikum warahmatullahi wabarakatuh.\n\n")
	fmt.Fprintf(&b, "Keluarga besar %s menyampaikan laporan perkembangan ananda *%s* kepada Bapak/Ibu %s untuk periode %s.\n\n",
		in.MadrasahName, in.SantriName, wali, in.Bulan)

	writeAbsensiSection(&b, in.Absensi)

	b.WriteString("*Perkembangan Hafalan*\n")
	fmt.Fprintf(&b, "- Total hafalan: %s\n", in.TotalHafalan)
	fmt.Fprintf(&b, "- Rata-rata murojaah: %s\n", in.RataMurojaah)
	fmt.Fprintf(&b, "- Rata-rata ziyadah: %s\n\n", in.RataZiyadah)

	b.WriteString("*Penilaian Bulanan*\n")
	fmt.Fprintf(&b, "- Tahfizh: %s\n", in.Tahfizh)
	fmt.Fprintf(&b, "- Tilawah: %s\n", in.Tilawah)
	fmt.Fprintf(&b, "- Adab: %s\n\n", in.Adab)

	b.WriteString("*Pesan untuk Ananda*\n")
	b.WriteString(catatan + "\n")

	fmt.Fprintf(&b, "\nBarakallahu fiikum.\n%s\n", in.MadrasahName)
	return b.String()
}

/* =========================================================
 * BAGIAN BERSAMA
 * ========================================================= */

func writeAbsensiSection(b *strings.Builder, sc attendance.StatusCount) {
	b.WriteString("*Kehadiran*\n")
	fmt.Fprintf(b, "- Hadir: %d\n", sc.Hadir)
	fmt.Fprintf(b, "- Izin: %d\n", sc.Izin)
	fmt.Fprintf(b, "- Sakit: %d\n", sc.Sakit)
	fmt.Fprintf(b, "- Alpa: %d\n", sc.Alpa)
	fmt.Fprintf(b, "- Terlambat: %d\n", sc.Terlambat)
	fmt.Fprintf(b, "Total pertemuan: %d\n\n", sc.Total)
}

// writeRemarks menulis catatan yang terisi saja; semua kosong →
// satu baris "tidak ada catatan khusus".
func writeRemarks(b *strings.Builder, musammi, waliKelas, madrasah string) {
	wrote := false
	if s := strings.TrimSpace(musammi); s != "" {
		fmt.Fprintf(b, "- Musammi: %s\n", s)
		wrote = true
	}
	if s := strings.TrimSpace(waliKelas); s != "" {
		fmt.Fprintf(b, "- Wali Kelas: %s\n", s)
		wrote = true
	}
	if s := strings.TrimSpace(madrasah); s != "" {
		fmt.Fprintf(b, "- Madrasah: %s\n", s)
		wrote = true
	}
	if !wrote {
		b.WriteString(noRemarksLine + "\n")
	}
}
