package handlers

import (
	"esuka/dto/letters"
	"esuka/services"
	"esuka/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

type dashboardResponse struct {
	SuratMasukBulanIni  int64                        `json:"surat_masuk_bulan_ini"`
	SuratKeluarBulanIni int64                        `json:"surat_keluar_bulan_ini"`
	DisposisiBulanIni   int64                        `json:"disposisi_bulan_ini"`
	PerBulan            []services.MonthCount        `json:"per_bulan"`
	SuratMasukTerbaru   []letters.SuratMasukResponse `json:"surat_masuk_terbaru"`
}

func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	summary, err := h.dashboard.Summary(c.UserContext())
	if err != nil {
		return respondError(c, err, "Gagal mengambil ringkasan")
	}

	return utils.OK(c, "Ringkasan dashboard", dashboardResponse{
		SuratMasukBulanIni:  summary.SuratMasukBulanIni,
		SuratKeluarBulanIni: summary.SuratKeluarBulanIni,
		DisposisiBulanIni:   summary.DisposisiBulanIni,
		PerBulan:            summary.PerBulan,
		SuratMasukTerbaru:   letters.NewSuratMasukResponses(summary.SuratMasukTerbaru),
	})
}
