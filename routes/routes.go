package routes

import (
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/gin-gonic/gin"

	"foodigo/configs"
	"foodigo/controllers"
	"foodigo/middlewares"
	"foodigo/repository"
	"foodigo/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestLogger())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// uploaded files
	r.Static("/assets", cfg.AssetsDir)

	db := configs.DB()
	secret := cfg.JWTSecret

	// repositories and services
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)

	authSvc := services.NewAuthService(db, userRepo, secret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo)
	currencySvc := services.NewCurrencyService(db)
	bannerSvc := services.NewBannerService(db)
	productSvc := services.NewProductService(db)
	withdrawSvc := services.NewWithdrawService(db)

	// controllers
	authCtrl := controllers.NewAuthController(authSvc)
	adminCtrl := controllers.NewAdminController(authSvc)
	profileCtrl := controllers.NewProfileController(userRepo)
	addressCtrl := controllers.NewAddressController()
	cartCtrl := controllers.NewCartController(cartSvc)
	favoriteCtrl := controllers.NewFavoriteController()
	homeCtrl := controllers.NewHomeController(bannerSvc)
	contactCtrl := controllers.NewContactController()
	restaurantCtrl := controllers.NewRestaurantController()
	productCtrl := controllers.NewProductController(productSvc)
	promotionCtrl := controllers.NewPromotionController()
	bannerCtrl := controllers.NewBannerController(bannerSvc)
	currencyCtrl := controllers.NewCurrencyController(currencySvc)
	withdrawCtrl := controllers.NewWithdrawController(withdrawSvc)
	deliverymanCtrl := controllers.NewDeliverymanController()
	settingCtrl := controllers.NewSettingController()
	pagesCtrl := controllers.NewPagesController()
	blogCtrl := controllers.NewBlogController()
	uploadCtrl := controllers.NewUploadController()
	exportCtrl := controllers.NewExportController()

	// ----- user API -----
	user := r.Group("/user")
	{
		user.POST("/register", authCtrl.Register)
		user.POST("/login", authCtrl.Login)
		user.POST("/social-login", authCtrl.SocialLogin)
		user.POST("/blog-comment", blogCtrl.AddComment)

		// public browsing; a valid token adds favorite flags and ties
		// contact messages to the sender
		browse := user.Group("", middlewares.OptionalAuth(secret))
		{
			browse.POST("/contact", contactCtrl.Send)
			browse.GET("/home", homeCtrl.Home)
			browse.GET("/food-categories", homeCtrl.FoodCategories)
			browse.GET("/cuisines", homeCtrl.Cuisines)
			browse.GET("/products", homeCtrl.Products)
			browse.GET("/product/:slug", homeCtrl.SingleProduct)
			browse.GET("/restaurants", homeCtrl.Restaurants)
			browse.GET("/restaurant/:slug", homeCtrl.SingleRestaurant)
		}

		user.GET("/blogs", blogCtrl.ListBlogs)
		user.GET("/blog/:slug", blogCtrl.SingleBlog)
		user.GET("/pages/about-us", pagesCtrl.GetAboutUs)
		user.GET("/pages/terms-conditions", pagesCtrl.GetTermsConditions)
		user.GET("/pages/privacy-policy", pagesCtrl.GetPrivacyPolicy)
		user.GET("/pages/contact-us", pagesCtrl.GetContactUs)
		user.GET("/pages/login", pagesCtrl.GetLoginPage)

		auth := user.Group("", middlewares.AuthMiddleware(secret, "user"))
		{
			auth.GET("/profile", profileCtrl.GetProfile)
			auth.POST("/update-profile", profileCtrl.UpdateProfile)
			auth.POST("/change-password", authCtrl.ChangePassword)
			auth.POST("/update-device-token", authCtrl.UpdateDeviceToken)
			auth.POST("/logout", authCtrl.Logout)

			auth.POST("/address", addressCtrl.AddOrEdit)
			auth.GET("/addresses", addressCtrl.List)
			auth.DELETE("/address/:id", addressCtrl.Delete)

			auth.POST("/add-to-cart", cartCtrl.Add)
			auth.GET("/cart", cartCtrl.Get)
			auth.PATCH("/cart/:id", cartCtrl.UpdateQuantity)
			auth.DELETE("/cart/:id", cartCtrl.Remove)
			auth.DELETE("/cart", cartCtrl.Clear)

			auth.POST("/toggle-favorite", favoriteCtrl.Toggle)
			auth.GET("/favorites", favoriteCtrl.List)
		}
	}

	// ----- admin API -----
	r.POST("/admin/login", adminCtrl.AdminLogin)

	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, "admin"))
	{
		admin.POST("/create-admin", adminCtrl.CreateAdmin)

		admin.POST("/addOrEditCuisine", restaurantCtrl.AddOrEditCuisine)
		admin.GET("/cuisines", restaurantCtrl.ListCuisines)
		admin.DELETE("/cuisine/:id", restaurantCtrl.DeleteCuisine)

		admin.POST("/addOrEditCity", restaurantCtrl.AddOrEditCity)
		admin.GET("/cities", restaurantCtrl.ListCities)
		admin.DELETE("/city/:id", restaurantCtrl.DeleteCity)

		admin.POST("/addOrEditRestaurant", restaurantCtrl.AddOrEditRestaurant)
		admin.GET("/restaurants", restaurantCtrl.ListRestaurants)
		admin.PATCH("/restaurant/:id/approval", restaurantCtrl.UpdateApprovalStatus)
		admin.DELETE("/restaurant/:id", restaurantCtrl.DeleteRestaurant)

		admin.POST("/addOrEditFoodCategory", productCtrl.AddOrEditFoodCategory)
		admin.GET("/food-categories", productCtrl.ListFoodCategories)
		admin.DELETE("/food-category/:id", productCtrl.DeleteFoodCategory)

		admin.POST("/addOrEditProduct", productCtrl.AddOrEditProduct)
		admin.GET("/products", productCtrl.ListProducts)
		admin.GET("/product/:id", productCtrl.GetSingleProduct)
		admin.PATCH("/product/:id/visibility", productCtrl.UpdateProductVisibility)
		admin.DELETE("/product/:id", productCtrl.DeleteProduct)
		admin.GET("/products/export", exportCtrl.ExportProducts)

		admin.POST("/addOrEditAddon", productCtrl.AddOrEditAddon)
		admin.GET("/addons", productCtrl.ListAddons)
		admin.DELETE("/addon/:id", productCtrl.DeleteAddon)

		admin.POST("/addOrEditCoupon", promotionCtrl.AddOrEditCoupon)
		admin.GET("/coupons", promotionCtrl.ListCoupons)
		admin.DELETE("/coupon/:id", promotionCtrl.DeleteCoupon)

		admin.POST("/addOrEditOffer", promotionCtrl.AddOrEditOffer)
		admin.GET("/offers", promotionCtrl.ListOffers)
		admin.DELETE("/offer/:id", promotionCtrl.DeleteOffer)
		admin.POST("/offer-products", promotionCtrl.AddOfferProducts)
		admin.DELETE("/offer-product/:id", promotionCtrl.DeleteOfferProduct)

		admin.POST("/addOrEditOfferDealBanner", bannerCtrl.AddOrEditOfferDealBanner)
		admin.GET("/offer-deal-banners", bannerCtrl.ListOfferDealBanners)
		admin.DELETE("/offer-deal-banner/:id", bannerCtrl.DeleteOfferDealBanner)

		admin.POST("/promotional-banners", bannerCtrl.UpdatePromotionalBanners)
		admin.GET("/promotional-banners", bannerCtrl.ListPromotionalBanners)

		admin.POST("/addOrEditCurrency", currencyCtrl.AddOrEdit)
		admin.GET("/currencies", currencyCtrl.List)
		admin.DELETE("/currency/:id", currencyCtrl.Delete)

		admin.POST("/addOrEditSellerWithdrawMethod", withdrawCtrl.AddOrEditSellerMethod)
		admin.GET("/seller-withdraw-methods", withdrawCtrl.ListSellerMethods)
		admin.DELETE("/seller-withdraw-method/:id", withdrawCtrl.DeleteSellerMethod)
		admin.GET("/seller-withdraw-requests", withdrawCtrl.ListSellerRequests)
		admin.PATCH("/seller-withdraw-request/:id", withdrawCtrl.UpdateSellerRequestStatus)
		admin.DELETE("/seller-withdraw-request/:id", withdrawCtrl.DeleteSellerRequest)

		admin.POST("/addOrEditDeliveryWithdrawMethod", withdrawCtrl.AddOrEditDeliveryMethod)
		admin.GET("/delivery-withdraw-methods", withdrawCtrl.ListDeliveryMethods)
		admin.DELETE("/delivery-withdraw-method/:id", withdrawCtrl.DeleteDeliveryMethod)
		admin.GET("/delivery-withdraw-requests", withdrawCtrl.ListDeliveryRequests)
		admin.PATCH("/delivery-withdraw-request/:id", withdrawCtrl.UpdateDeliveryRequestStatus)
		admin.DELETE("/delivery-withdraw-request/:id", withdrawCtrl.DeleteDeliveryRequest)

		admin.POST("/addOrEditDeliveryman", deliverymanCtrl.AddOrEdit)
		admin.GET("/deliverymen", deliverymanCtrl.List)
		admin.DELETE("/deliveryman/:id", deliverymanCtrl.Delete)

		admin.GET("/contact-messages", contactCtrl.List)
		admin.PATCH("/contact-message/:id", contactCtrl.UpdateStatus)
		admin.DELETE("/contact-message/:id", contactCtrl.Delete)

		admin.GET("/settings", settingCtrl.Get)
		admin.POST("/settings", settingCtrl.Update)
		admin.GET("/payment-gateway/:gateway", settingCtrl.GetPaymentGateway)
		admin.POST("/payment-gateway", settingCtrl.UpdatePaymentGateway)

		admin.POST("/pages/about-us", pagesCtrl.UpdateAboutUs)
		admin.POST("/pages/terms-conditions", pagesCtrl.UpdateTermsConditions)
		admin.POST("/pages/privacy-policy", pagesCtrl.UpdatePrivacyPolicy)
		admin.POST("/pages/contact-us", pagesCtrl.UpdateContactUs)
		admin.POST("/pages/login", pagesCtrl.UpdateLoginPage)

		admin.POST("/addOrEditBlogCategory", blogCtrl.AddOrEditCategory)
		admin.GET("/blog-categories", blogCtrl.ListCategories)
		admin.DELETE("/blog-category/:id", blogCtrl.DeleteCategory)
		admin.POST("/addOrEditBlog", blogCtrl.AddOrEditBlog)
		admin.GET("/blogs", blogCtrl.ListBlogs)
		admin.DELETE("/blog/:id", blogCtrl.DeleteBlog)
		admin.GET("/blog-comments", blogCtrl.ListComments)
		admin.PATCH("/blog-comment/:id", blogCtrl.UpdateCommentStatus)
		admin.DELETE("/blog-comment/:id", blogCtrl.DeleteComment)

		admin.POST("/upload", uploadCtrl.Upload)
		admin.POST("/deleteFile", uploadCtrl.DeleteFile)
	}

	registerDocs(r, cfg)
}

// registerDocs serves the static OpenAPI documents behind basic auth.
func registerDocs(r *gin.Engine, cfg *configs.Config) {
	docs := r.Group("/docs", gin.BasicAuth(gin.Accounts{cfg.DocsUser: cfg.DocsPassword}))

	docs.StaticFile("/admin.json", "docs/admin_swagger.json")
	docs.StaticFile("/user.json", "docs/user_swagger.json")

	docs.GET("/admin/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/docs/admin.json"),
	)))
	docs.GET("/user/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/docs/user.json"),
	)))
}
