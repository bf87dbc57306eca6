package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "draftingco/docs" // This will be auto-generated
	"draftingco/internal/adapter/http/handlers"
	repository2 "draftingco/internal/adapter/persistence/repository"
	"draftingco/internal/infrastructure/cache"
	"draftingco/internal/infrastructure/database"
	"draftingco/internal/infrastructure/geoip"
	"draftingco/internal/infrastructure/locations"
	"draftingco/internal/infrastructure/notifications"
	"draftingco/internal/usecase"
	"draftingco/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	kv := cache.NewRedisStore(cache.ConnectRedis())

	branches, err := locations.Load()
	if err != nil {
		log.Fatalf("Failed to load branch dataset: %v", err)
	}

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	var notifier interfaces.INotifier
	gateway, err := notifications.NewResendGateway(os.Getenv("RESEND_API_KEY"))
	if err != nil {
		log.Printf("Email notifier not configured: %v", err)
	} else {
		notifier = gateway
	}

	gate := usecase.NewSubmissionGate(kv)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, gate, notifier)
	wizardService := usecase.NewWizardService(quoteUseCase)
	locationUseCase := usecase.NewLocationUseCase(geoProviders(), kv, branches)

	estimateHandler := handlers.NewEstimateHandler()
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	wizardHandler := handlers.NewWizardHandler(wizardService)
	locationHandler := handlers.NewLocationHandler(locationUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatorRoutes(v1, estimateHandler, quoteHandler, wizardHandler, locationHandler)
}

// geoProviders builds the resolution chain in priority order; providers
// without a configured key are skipped.
func geoProviders() []interfaces.ICoordinateProvider {
	client := &http.Client{Timeout: 10 * time.Second}
	var providers []interfaces.ICoordinateProvider

	if p, err := geoip.NewIPStackProvider(client, os.Getenv("IPSTACK_ACCESS_KEY")); err == nil {
		providers = append(providers, p)
	} else {
		log.Printf("ipstack provider not configured: %v", err)
	}

	providers = append(providers, geoip.NewIPAPIProvider(client))

	if p, err := geoip.NewIPGeolocationProvider(client, os.Getenv("IPGEOLOCATION_API_KEY")); err == nil {
		providers = append(providers, p)
	} else {
		log.Printf("ipgeolocation provider not configured: %v", err)
	}

	return providers
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
