package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaanyilmaz/placehub/internal/app/controllers"
	"github.com/kaanyilmaz/placehub/internal/app/models"
	"github.com/kaanyilmaz/placehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	companyController *controllers.CompanyController,
	studentController *controllers.StudentController,
	roundController *controllers.RoundController,
	registrationController *controllers.RegistrationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		profile := authenticated.Group("/profile")
		{
			profile.GET("", authController.GetProfile)
			profile.PUT("", authController.UpdateProfile)
			profile.POST("/photo", authController.UpdateProfilePhoto)
			profile.POST("/resume", authController.UpdateResume)
		}

		companies := authenticated.Group("/companies")
		{
			companies.GET("", companyController.GetAllCompanies)
			companies.GET("/:id/rounds", companyController.GetCompanyRounds)

			// Admin-only company management
			companiesAdmin := companies.Group("")
			companiesAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				companiesAdmin.POST("", companyController.CreateCompany)
				companiesAdmin.PUT("/:id", companyController.UpdateCompany)
				companiesAdmin.DELETE("/:id", companyController.DeleteCompany)
			}
		}

		rounds := authenticated.Group("/rounds")
		{
			rounds.GET("", roundController.GetAllRounds)

			roundsAdmin := rounds.Group("")
			roundsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				roundsAdmin.PUT("/:id", roundController.UpdateRound)
				roundsAdmin.DELETE("/:id", roundController.DeleteRound)

				// Multi-step editor session
				editor := roundsAdmin.Group("/editor")
				{
					editor.POST("", roundController.StartEditor)
					editor.GET("", roundController.GetEditorState)
					editor.POST("/begin", roundController.BeginEditing)
					editor.PUT("/section", roundController.UpdateSection)
					editor.POST("/questions", roundController.AddQuestion)
					editor.PUT("/questions/:index", roundController.UpdateQuestion)
					editor.DELETE("/questions/:index", roundController.RemoveQuestion)
					editor.POST("/attachments", roundController.AttachFile)
					editor.POST("/next", roundController.SaveAndNext)
					editor.POST("/previous", roundController.PreviousSection)
					editor.POST("/finish", roundController.FinishEditing)
				}
			}
		}

		studentsAdmin := authenticated.Group("/students")
		studentsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			studentsAdmin.GET("", studentController.GetAllStudents)
			studentsAdmin.POST("", studentController.CreateStudent)
			studentsAdmin.PUT("/:id", studentController.UpdateStudent)
			studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
			studentsAdmin.GET("/export", studentController.ExportStudents)
		}

		registrations := authenticated.Group("/registrations")
		{
			registrationsStudent := registrations.Group("")
			registrationsStudent.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				registrationsStudent.POST("", registrationController.CreateRegistration)
			}

			registrationsAdmin := registrations.Group("")
			registrationsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				registrationsAdmin.GET("", registrationController.GetAllRegistrations)
				registrationsAdmin.DELETE("", registrationController.DeleteAllRegistrations)
				registrationsAdmin.GET("/export", registrationController.ExportRegistrations)
				registrationsAdmin.GET("/:id/export", registrationController.ExportRegistrationDetail)
			}
		}

		statsAdmin := authenticated.Group("/stats")
		statsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			statsAdmin.GET("", registrationController.GetStats)
		}
	}
}
