package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendance "madrasahku_backend/internals/features/attendance/service"
)

func TestRekapPersonTable(t *testing.T) {
	rows := []attendance.RekapPersonRow{
		{
			Role: "santri", Nama: "Ahmad", Marhalah: "Aliyah", Kelas: "2A",
			StatusCount: attendance.StatusCount{Hadir: 3, Sakit: 1, Total: 4},
		},
	}

	table := RekapPersonTable(rows)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, len(table.Headers), len(table.Rows[0]))
	assert.Equal(t, "1", table.Rows[0][0])
	assert.Equal(t, "Ahmad", table.Rows[0][1])
	assert.Equal(t, "2A (Aliyah)", table.Rows[0][2], "sel kelas komposit")
	assert.Equal(t, "3", table.Rows[0][4])
	assert.Equal(t, "4", table.Rows[0][9])
}

func TestRekapKelasTable(t *testing.T) {
	rows := []attendance.RekapKelasRow{
		{
			Marhalah: "Aliyah", Kelas: "2A",
			StatusCount: attendance.StatusCount{Hadir: 2, Alpa: 1, Total: 3},
			Persentase:  "67%",
		},
	}

	table := RekapKelasTable(rows)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, len(table.Headers), len(table.Rows[0]))
	assert.Equal(t, "67%", table.Rows[0][len(table.Rows[0])-1])
}

func TestRekapWaktuTable(t *testing.T) {
	rows := []attendance.RekapWaktuRow{
		{Tanggal: "2024-01-05", Waktu: "Shubuh", StatusCount: attendance.StatusCount{Hadir: 10, Total: 10}},
	}

	table := RekapWaktuTable(rows)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2024-01-05", table.Rows[0][1])
	assert.Equal(t, "Shubuh", table.Rows[0][2])
}

func TestDetailTableMissingValues(t *testing.T) {
	entries := []attendance.Entry{
		{Tanggal: "2024-01-05", Waktu: "", Nama: "Ahmad", Marhalah: "", Kelas: "2A", Role: "santri", Status: "Hadir"},
	}

	table := DetailTable(entries)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "-", table.Rows[0][2], "waktu kosong dirender strip")
	assert.Equal(t, "2A (-)", table.Rows[0][4])
}

func TestTablesDoNotMutateInput(t *testing.T) {
	rows := []attendance.RekapPersonRow{
		{Role: "santri", Nama: "Ahmad", Marhalah: "Aliyah", Kelas: "2A",
			StatusCount: attendance.StatusCount{Hadir: 3, Total: 3}},
	}
	snapshot := make([]attendance.RekapPersonRow, len(rows))
	copy(snapshot, rows)

	RekapPersonTable(rows)
	assert.Equal(t, snapshot, rows)
}

func TestEmptyInputsProduceEmptyRows(t *testing.T) {
	assert.Empty(t, RekapPersonTable(nil).Rows)
	assert.NotEmpty(t, RekapPersonTable(nil).Headers)
	assert.Empty(t, DetailTable(nil).Rows)
}
