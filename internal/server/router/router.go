package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcenter-backend/internal/server/handlers"
	"fitcenter-backend/internal/server/middleware"
	"fitcenter-backend/pkg/token"
)

// Handlers bundles every module's handler for wiring.
type Handlers struct {
	Assets      *handlers.AssetHandler
	CashLog     *handlers.CashLogHandler
	Payments    *handlers.PaymentHandler
	Payrolls    *handlers.PayrollHandler
	Liabilities *handlers.LiabilityHandler
	Staff       *handlers.StaffHandler
	Coaches     *handlers.CoachHandler
	Users       *handlers.UserHandler
	BioData     *handlers.BioDataHandler
	Training    *handlers.TrainingHandler
	Feedback    *handlers.FeedbackHandler
}

// New wires the Gin engine with required routes and middlewares. Path
// casing follows the original per-module conventions.
func New(h Handlers, tokens *token.Manager, paymentBypass bool, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	assets := r.Group("/Assets")
	{
		assets.POST("", h.Assets.Create)
		assets.GET("", h.Assets.List)
		assets.GET("/total", h.Assets.Total)
		assets.GET("/:id", h.Assets.GetByID)
		assets.PUT("/:id", h.Assets.Update)
		assets.DELETE("/:id", h.Assets.Delete)
	}

	// Append-only: no update or delete routes exist for the cash log.
	cash := r.Group("/CashLog")
	{
		cash.POST("", h.CashLog.Create)
		cash.GET("/Fetch", h.CashLog.Fetch)
	}

	payment := r.Group("/Payment")
	payment.Use(middleware.PaymentGate(tokens, paymentBypass, logger))
	{
		payment.POST("/Insert", h.Payments.Insert)
		payment.GET("", h.Payments.List)
		payment.GET("/transactions", h.Payments.Transactions)
		payment.DELETE("/transaction/:id", h.Payments.Delete)
	}

	payrolls := r.Group("/payrolls")
	{
		payrolls.POST("", h.Payrolls.Create)
		payrolls.GET("", h.Payrolls.List)
		payrolls.GET("/:id", h.Payrolls.GetByID)
		payrolls.PUT("/:id", h.Payrolls.Update)
		payrolls.DELETE("/:id", h.Payrolls.Delete)
	}

	liabilities := r.Group("/Liabilities")
	{
		liabilities.GET("/Fetch", h.Liabilities.Fetch)
		liabilities.PATCH("/:id/status", h.Liabilities.Pay)
		liabilities.PATCH("/:id/notes", h.Liabilities.Notes)
	}

	staffSignUp := r.Group("/FinMngSignUp")
	{
		staffSignUp.POST("", h.Staff.SignUp)
		staffSignUp.GET("", h.Staff.List)
		staffSignUp.GET("/:ID", h.Staff.GetByID)
		staffSignUp.PUT("/:ID", h.Staff.Update)
		staffSignUp.DELETE("/:ID", h.Staff.Delete)
	}

	staffSignIn := r.Group("/FinMngSignIn")
	{
		staffSignIn.POST("/insert", h.Staff.InsertSignIn)
		staffSignIn.POST("/FinMngSignIn", h.Staff.SignIn)
	}

	coach := r.Group("/api/coach")
	{
		coach.POST("/signup", h.Coaches.SignUp)
		coach.POST("/signin", h.Coaches.SignIn)

		profile := coach.Group("/profile")
		profile.Use(middleware.RequireAuth(tokens, token.AudienceCoach))
		profile.GET("", h.Coaches.Profile)
		profile.PUT("", h.Coaches.UpdateProfile)
	}

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Users.Register)
		auth.POST("/login", h.Users.Login)
		auth.GET("/me", middleware.RequireAuth(tokens, token.AudienceMember), h.Users.Me)
		auth.POST("/forgotpassword", h.Users.ForgotPassword)
		auth.PUT("/resetpassword/:token", h.Users.ResetPassword)
	}

	biodata := r.Group("/biodata")
	{
		biodata.POST("", h.BioData.Upsert)
		biodata.GET("/:userId", h.BioData.Get)
		biodata.DELETE("/:userId", h.BioData.Delete)
	}

	training := r.Group("/api/training-requests")
	{
		training.POST("", h.Training.Create)
		training.GET("", h.Training.List)
		training.GET("/:id", h.Training.GetByID)
		training.PUT("/:id", h.Training.Update)
		training.DELETE("/:id", h.Training.Delete)
	}

	feedback := r.Group("/api/feedback")
	{
		feedback.POST("", h.Feedback.Create)
		feedback.GET("", h.Feedback.List)
		feedback.GET("/stats", h.Feedback.Stats)
		feedback.GET("/export", h.Feedback.Export)
		feedback.GET("/:id", h.Feedback.GetByID)
		feedback.PUT("/:id", h.Feedback.Update)
		feedback.DELETE("/:id", h.Feedback.Delete)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
