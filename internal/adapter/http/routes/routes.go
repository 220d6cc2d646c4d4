package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "marketplace_payments/docs" // swag-generated docs
	"marketplace_payments/internal/adapter/http/handlers"
	"marketplace_payments/internal/adapter/persistence/repository"
	"marketplace_payments/internal/infrastructure/database"
	"marketplace_payments/internal/infrastructure/payments"
	"marketplace_payments/internal/usecase"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = newRouter()

func newRouter() *gin.Engine {
	r := gin.Default()
	// Wrong-method requests on registered paths answer 405, not 404.
	r.HandleMethodNotAllowed = true
	return r
}

const PORT = 8080

// Run starts the server.
func Run() {
	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	orderRepo := repository.NewOrderDynamoRepository(ddb)

	// The Stripe gateway doubles as the Stripe signature verifier; when the
	// secret key is absent the provider simply stays unregistered and its
	// endpoints answer "not configured".
	var checkoutGateway interfaces.ICheckoutGateway
	verifiers := []interfaces.ISignatureVerifier{
		payments.NewPaystackVerifier(os.Getenv("PAYSTACK_SECRET_KEY")),
		payments.NewFlutterwaveVerifier(os.Getenv("FLW_SECRET_HASH")),
		payments.NewNowPaymentsVerifier(os.Getenv("NOWPAYMENTS_IPN_SECRET")),
	}
	stripeGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		checkoutGateway = stripeGateway
		verifiers = append(verifiers, stripeGateway)
	}

	webhookUseCase := usecase.NewWebhookUseCase(orderRepo, verifiers)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, checkoutGateway)

	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, webhookHandler, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(corsMiddleware(os.Getenv("CORS_ORIGIN")))
}

func corsMiddleware(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
