package routes

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/inventsight/inventsight-backend/internal/config"
	"github.com/inventsight/inventsight-backend/internal/feature"
	"github.com/inventsight/inventsight-backend/internal/handlers"
	"github.com/inventsight/inventsight-backend/internal/middleware"
	"github.com/inventsight/inventsight-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	orgHandler *handlers.OrgHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	adminBillingHandler *handlers.AdminBillingHandler,
	healthHandler *handlers.HealthHandler,
	legalHandler *handlers.LegalHandler,
	orgService *services.OrgService,
	subscriptionService *services.SubscriptionService,
	freeModules []feature.Module,
	premiumModules []feature.Module,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health and metrics (no auth required)
	api.Get("/health", healthHandler.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Legal pages
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/password-reset", authHandler.RequestPasswordReset)
	auth.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// Protected auth routes (JWT required) - applied per route so the JWT
	// middleware never touches the public auth endpoints above
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Put("/auth/profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)
	api.Put("/auth/password", middleware.JWTProtected(cfg), authHandler.ChangePassword)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Organization — signed in but not yet tied to an org
	api.Get("/org", middleware.JWTProtected(cfg), orgHandler.Current)
	api.Post("/org", middleware.JWTProtected(cfg), orgHandler.Onboard)

	// Everything below requires an active org membership. Free modules and
	// billing work on any plan state so an expired trial can still pay.
	org := api.Group("/org", middleware.JWTProtected(cfg), middleware.RequireOrg(orgService))
	org.Get("/subscription", subscriptionHandler.Current)
	org.Post("/subscription/promo/quote", subscriptionHandler.QuotePromo)
	org.Post("/subscription/promo/redeem", subscriptionHandler.RedeemPromo)

	for _, m := range freeModules {
		m.RegisterRoutes(org, db, cfg)
	}

	// Premium modules sit behind the paywall as well.
	premium := org.Group("", middleware.RequirePlan(subscriptionService))
	for _, m := range premiumModules {
		m.RegisterRoutes(premium, db, cfg)
	}

	// Admin panel (JWT + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/promo-codes", adminBillingHandler.CreatePromoCode)
	admin.Get("/promo-codes", adminBillingHandler.ListPromoCodes)
	admin.Delete("/promo-codes/:id", adminBillingHandler.DeactivatePromoCode)
	admin.Post("/subscriptions/activate", adminBillingHandler.ActivateSubscription)
}
