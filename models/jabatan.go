package models

import "strings"

// Jabatan is an organizational role/title inside BAPPEDA. The set is closed.
type Jabatan string

const (
	JabatanKepalaBadan     Jabatan = "Kepala Badan"
	JabatanSekretarisBadan Jabatan = "Sekretaris Badan"

	JabatanKabidPemerintahan  Jabatan = "Kepala Bidang Perencanaan Pemerintahan dan Pembangunan Manusia"
	JabatanKabidPerekonomian  Jabatan = "Kepala Bidang Perencanaan Perekonomian dan Sumber Daya Alam"
	JabatanKabidInfrastruktur Jabatan = "Kepala Bidang Perencanaan Infrastruktur dan Kewilayahan"
	JabatanKabidLitbang       Jabatan = "Kepala Bidang Penelitian dan Pengembangan"
	JabatanKabidPengendalian  Jabatan = "Kepala Bidang Pengendalian, Evaluasi dan Pelaporan"

	JabatanKasubagUmum Jabatan = "Kepala Sub Bagian Umum dan Kepegawaian"
	JabatanStaf        Jabatan = "Staf"
)

// DisposisiRoot is where every new disposisi starts.
const DisposisiRoot = JabatanSekretarisBadan

// Routing tiers. Tier 0 titles never receive a disposisi through the hierarchy.
const (
	TierNone = iota
	TierSekretaris
	TierKepalaBadan
	TierKepalaBidang
)

var jabatanOrder = []Jabatan{
	JabatanKepalaBadan,
	JabatanSekretarisBadan,
	JabatanKabidPemerintahan,
	JabatanKabidPerekonomian,
	JabatanKabidInfrastruktur,
	JabatanKabidLitbang,
	JabatanKabidPengendalian,
	JabatanKasubagUmum,
	JabatanStaf,
}

// AllJabatan returns the closed jabatan list in display order.
func AllJabatan() []Jabatan {
	out := make([]Jabatan, len(jabatanOrder))
	copy(out, jabatanOrder)
	return out
}

func (j Jabatan) IsValid() bool {
	for _, known := range jabatanOrder {
		if j == known {
			return true
		}
	}
	return false
}

func (j Jabatan) IsKepalaBidang() bool {
	return j.IsValid() && strings.HasPrefix(string(j), "Kepala Bidang")
}

func (j Jabatan) Tier() int {
	switch {
	case j == JabatanSekretarisBadan:
		return TierSekretaris
	case j == JabatanKepalaBadan:
		return TierKepalaBadan
	case j.IsKepalaBidang():
		return TierKepalaBidang
	default:
		return TierNone
	}
}

// NextDestinations lists the jabatan a disposisi currently held by j may be
// forwarded to: Sekretaris Badan -> Kepala Badan -> every Kepala Bidang.
func (j Jabatan) NextDestinations() []Jabatan {
	switch j.Tier() {
	case TierSekretaris:
		return []Jabatan{JabatanKepalaBadan}
	case TierKepalaBadan:
		var out []Jabatan
		for _, candidate := range jabatanOrder {
			if candidate.IsKepalaBidang() {
				out = append(out, candidate)
			}
		}
		return out
	default:
		return nil
	}
}

// CanForwardTo reports whether target is a hierarchy successor of j.
func (j Jabatan) CanForwardTo(target Jabatan) bool {
	for _, next := range j.NextDestinations() {
		if next == target {
			return true
		}
	}
	return false
}

func (j Jabatan) IsTerminal() bool {
	return len(j.NextDestinations()) == 0
}
