package routes

import (
	"esuka/config"
	"esuka/handlers"
	"esuka/middleware"
	"esuka/services"
	"esuka/utils"
	"esuka/utils/events"
	"esuka/utils/metrics"
	"esuka/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps carries what the router needs. Store, Bus, Mailer and Metrics may be
// left empty; the services degrade to no-ops.
type Deps struct {
	DB      *gorm.DB
	Tokens  *utils.TokenManager
	Store   storage.ObjectStore
	Bus     *events.Bus
	Mailer  services.Mailer
	Metrics *metrics.Metrics
	App     config.AppConfig
}

// Register wires services and handlers onto app.
func Register(app *fiber.App, d Deps) {
	if d.Store == nil {
		d.Store = storage.Disabled{}
	}

	perms := services.NewPermissionService(d.App.StrictHierarchy)
	authSvc := services.NewAuthService(d.DB, d.Tokens, d.Mailer, d.App.PasswordResetURL)
	suratSvc := services.NewSuratService(d.DB, d.Store, d.Bus)
	archiveSvc := services.NewArchiveService(d.DB, d.Store, d.Metrics)
	disposisiSvc := services.NewDisposisiService(d.DB, perms, d.Bus, d.Metrics)

	authH := handlers.NewAuthHandler(authSvc)
	masukH := handlers.NewLetterMasukHandler(suratSvc, disposisiSvc, archiveSvc)
	keluarH := handlers.NewLetterKeluarHandler(suratSvc, services.NewNomorSuratService(d.DB, d.Metrics), archiveSvc)
	disposisiH := handlers.NewDisposisiHandler(disposisiSvc)
	archiveH := handlers.NewArchiveHandler(archiveSvc)
	refH := handlers.NewReferenceHandler(services.NewReferenceService(d.DB, perms))
	usersH := handlers.NewAdminUserHandler(services.NewUserAdminService(d.DB, perms))
	profileH := handlers.NewProfileHandler(services.NewProfileService(d.DB, d.Store))
	reportH := handlers.NewReportHandler(services.NewReportService(d.DB, d.Metrics))
	dashboardH := handlers.NewDashboardHandler(services.NewDashboardService(d.DB))

	app.Get("/healthz", handlers.Healthz(d.DB))

	api := app.Group("/api", middleware.GlobalRateLimiter())

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authH.Register)
	auth.Post("/login", middleware.LoginRateLimiter(), authH.Login)
	auth.Post("/refresh", authH.Refresh)
	auth.Post("/logout", authH.Logout)
	auth.Post("/forgot-password", authH.RequestPasswordReset)
	auth.Post("/reset-password", authH.ResetPassword)

	requireAuth := middleware.RequireAuth(d.Tokens, authSvc)
	auth.Get("/me", requireAuth, authH.Me)

	api.Get("/dashboard", requireAuth, dashboardH.GetDashboard)
	api.Get("/jabatan", requireAuth, handlers.ListJabatan)
	api.Get("/users/options", requireAuth, usersH.UserOptions)

	// Surat masuk
	masuk := api.Group("/surat-masuk", requireAuth)
	masuk.Get("/", masukH.ListSuratMasuk)
	masuk.Post("/", masukH.CreateSuratMasuk)
	masuk.Get("/:id", masukH.GetSuratMasuk)
	masuk.Put("/:id", masukH.UpdateSuratMasuk)
	masuk.Delete("/:id", masukH.DeleteSuratMasuk)
	masuk.Post("/:id/arsip", masukH.ArchiveSuratMasuk)
	masuk.Delete("/:id/arsip", masukH.UnarchiveSuratMasuk)
	masuk.Post("/:id/disposisi", masukH.DisposeSuratMasuk)

	// Surat keluar; /nomor must stay above /:id
	keluar := api.Group("/surat-keluar", requireAuth)
	keluar.Get("/nomor", keluarH.GenerateNomor)
	keluar.Get("/", keluarH.ListSuratKeluar)
	keluar.Post("/", keluarH.CreateSuratKeluar)
	keluar.Get("/:id", keluarH.GetSuratKeluar)
	keluar.Put("/:id", keluarH.UpdateSuratKeluar)
	keluar.Delete("/:id", keluarH.DeleteSuratKeluar)
	keluar.Post("/:id/arsip", keluarH.ArchiveSuratKeluar)
	keluar.Delete("/:id/arsip", keluarH.UnarchiveSuratKeluar)

	// Disposisi
	disposisi := api.Group("/disposisi", requireAuth)
	disposisi.Get("/", disposisiH.ListDisposisi)
	disposisi.Get("/:id", disposisiH.GetDisposisi)
	disposisi.Get("/:id/destinations", disposisiH.Destinations)
	disposisi.Post("/:id/teruskan", disposisiH.ForwardDisposisi)

	// Arsip
	arsip := api.Group("/arsip", requireAuth)
	arsip.Get("/", archiveH.Gallery)
	arsip.Delete("/:jenis/:id", archiveH.Delete)

	// Reference data
	bidang := api.Group("/bidang", requireAuth)
	bidang.Get("/", refH.ListBidang)
	bidang.Post("/", middleware.RequireReferenceAdmin(), refH.CreateBidang)
	bidang.Put("/:id", middleware.RequireReferenceAdmin(), refH.UpdateBidang)
	bidang.Delete("/:id", middleware.RequireReferenceAdmin(), refH.DeleteBidang)

	klasifikasi := api.Group("/klasifikasi", requireAuth)
	klasifikasi.Get("/", refH.ListKlasifikasi)
	klasifikasi.Post("/", middleware.RequireReferenceAdmin(), refH.CreateKlasifikasi)
	klasifikasi.Put("/:id", middleware.RequireReferenceAdmin(), refH.UpdateKlasifikasi)
	klasifikasi.Delete("/:id", middleware.RequireReferenceAdmin(), refH.DeleteKlasifikasi)

	// Profile
	profile := api.Group("/profile", requireAuth)
	profile.Get("/", profileH.GetMyProfile)
	profile.Put("/", profileH.UpdateMyProfile)
	profile.Post("/avatar", profileH.UploadAvatar)
	profile.Put("/password", profileH.ChangePassword)

	// Laporan
	api.Get("/laporan", requireAuth, reportH.GetLaporan)

	// ----- ADMIN USERS -----
	admin := api.Group("/admin", requireAuth, middleware.RequireAdmin())
	admin.Get("/users", usersH.AdminListUsers) // ?page=&limit=&role=&q=
	admin.Put("/users/:id", usersH.AdminUpdateUser)
	admin.Delete("/users/:id", usersH.AdminDeleteUser)
}
