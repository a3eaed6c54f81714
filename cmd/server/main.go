// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/customer-registry/internal/auth"
	"github.com/unclebandit/customer-registry/internal/controller"
	"github.com/unclebandit/customer-registry/internal/db"
	"github.com/unclebandit/customer-registry/internal/queue"
	"github.com/unclebandit/customer-registry/internal/repository"
	"github.com/unclebandit/customer-registry/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	// Lifecycle events go to RabbitMQ when a broker is configured, otherwise
	// to the in-process queue with a logging subscriber.
	var events queue.Queue
	if url := os.Getenv("AMQP_URL"); url != "" {
		amqpQueue, err := queue.NewAMQPQueue(url)
		if err != nil {
			log.Fatalf("failed to connect to broker: %v", err)
		}
		defer amqpQueue.Close()
		events = amqpQueue
	} else {
		inMem := queue.NewInMemoryQueue()
		queue.StartCustomerEventSubscriber(inMem)
		events = inMem
	}

	customerRepo := &repository.CustomerRepository{DB: db.DB}

	customerService := &service.CustomerService{
		CustomerRepo: customerRepo,
		Queue:        events,
	}

	customerController := &controller.CustomerController{
		CustomerService: customerService,
	}

	authn := auth.FromEnv()
	if authn.Enabled {
		log.Println("🔐 Basic auth enabled")
	} else {
		log.Println("⚠️ Basic auth disabled (AUTH_ENABLED=false)")
	}

	r := chi.NewRouter()

	// Customer routes
	r.Get("/", customerController.Healthcheck)
	r.With(authn.Require(auth.ActionList)).Get("/customers", customerController.ListCustomers)
	r.With(authn.Require(auth.ActionCreate)).Post("/customers", customerController.CreateCustomer)
	r.With(authn.Require(auth.ActionRead)).Get("/customers/{id}", customerController.GetCustomer)
	r.With(authn.Require(auth.ActionUpdate)).Put("/customers/{id}", customerController.UpdateCustomer)
	r.With(authn.Require(auth.ActionDelete)).Delete("/customers/{id}", customerController.DeleteCustomer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
