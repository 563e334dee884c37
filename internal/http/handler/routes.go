package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"pdfscan/internal/auth"
	"pdfscan/internal/http/middleware"
	"pdfscan/internal/service"
)

// Capabilities records which optional backends were resolved at startup.
// Routes and health reporting depend on it; it never changes at runtime.
type Capabilities struct {
	// Relational is true when a PostgreSQL pool is connected. The contact
	// and workspace routes are only mounted when it is.
	Relational bool
	// Archive is true when the object store holding raw PDFs is connected.
	Archive bool
}

// Services bundles the use-case layer handed to the router.
type Services struct {
	Auth       service.AuthService
	PDF        service.PDFService
	Contacts   service.ContactService
	Workspaces service.WorkspaceService
}

// RegisterRoutes mounts every endpoint on the app. db may be nil when the
// relational capability is off; Contacts and Workspaces are ignored then.
func RegisterRoutes(app *fiber.App, db *sql.DB, tokens *auth.Manager, svcs Services, caps Capabilities) {
	app.Get("/health", HealthCheck(db, caps))
	app.Get("/healthz", LivenessProbe())
	app.Get("/openapi.yaml", OpenAPISpec())
	app.Get("/docs", SwaggerUI())

	api := app.Group("/api")

	api.Post("/register", Register(svcs.Auth))
	api.Post("/login", Login(svcs.Auth))
	api.Get("/profile", middleware.Auth(tokens), Profile(svcs.Auth))

	pdf := api.Group("/pdf")
	pdf.Post("/upload", middleware.OptionalAuth(tokens), UploadPDF(svcs.PDF))
	pdf.Get("/scan/:pdfId", ScanPDF(svcs.PDF))
	pdf.Get("/my-pdfs", middleware.Auth(tokens), MyPDFs(svcs.PDF))
	pdf.Delete("/:pdfId", middleware.Auth(tokens), DeletePDF(svcs.PDF))

	if caps.Relational {
		contact := api.Group("/contact")
		contact.Get("/", ListContacts(svcs.Contacts))
		contact.Get("/:id", GetContact(svcs.Contacts))
		contact.Post("/", CreateContact(svcs.Contacts))
		contact.Put("/:id", UpdateContact(svcs.Contacts))
		contact.Delete("/:id", DeleteContact(svcs.Contacts))

		ws := api.Group("/workspaces")
		ws.Get("/", ListWorkspaces(svcs.Workspaces))
		ws.Post("/", CreateWorkspace(svcs.Workspaces))
		ws.Put("/:id", UpdateWorkspace(svcs.Workspaces))
		ws.Delete("/:id", DeleteWorkspace(svcs.Workspaces))
	}
}
