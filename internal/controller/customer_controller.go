// internal/controller/customer_controller.go
package controller

import (
    "encoding/json"
    "log"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    appErrors "github.com/unclebandit/customer-registry/internal/errors"
    "github.com/unclebandit/customer-registry/internal/service"
    "github.com/unclebandit/customer-registry/internal/validation"
)

// CustomerController translates HTTP requests into service calls and domain
// outcomes into status codes.
type CustomerController struct {
    CustomerService *service.CustomerService
}

// Healthcheck responds on GET / with no auth required.
func (c *CustomerController) Healthcheck(w http.ResponseWriter, r *http.Request) {
    respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListCustomers handles GET /customers.
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
    customers, err := c.CustomerService.ListCustomers()
    if err != nil {
        respondDomainError(w, err)
        return
    }
    respondJSON(w, http.StatusOK, customers)
}

// GetCustomer handles GET /customers/{id}.
func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
    id, ok := customerID(w, r)
    if !ok {
        return
    }

    customer, err := c.CustomerService.GetCustomer(id)
    if err != nil {
        respondDomainError(w, err)
        return
    }
    respondJSON(w, http.StatusOK, customer)
}

// CreateCustomer handles POST /customers.
func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
    var body validation.CreateCustomerInput
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        respondError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    customer, err := c.CustomerService.CreateCustomer(&body)
    if err != nil {
        respondDomainError(w, err)
        return
    }
    respondJSON(w, http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /customers/{id}.
func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
    id, ok := customerID(w, r)
    if !ok {
        return
    }

    var body validation.UpdateCustomerInput
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        respondError(w, http.StatusBadRequest, "invalid request body")
        return
    }

    customer, err := c.CustomerService.UpdateCustomer(id, &body)
    if err != nil {
        respondDomainError(w, err)
        return
    }
    respondJSON(w, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/{id}.
func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
    id, ok := customerID(w, r)
    if !ok {
        return
    }

    if err := c.CustomerService.DeleteCustomer(id); err != nil {
        respondDomainError(w, err)
        return
    }
    w.WriteHeader(http.StatusNoContent)
}

// customerID parses the {id} URL param. A non-numeric id addresses no record,
// so it answers 404 directly.
func customerID(w http.ResponseWriter, r *http.Request) (int, bool) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        respondError(w, http.StatusNotFound, "Customer not found")
        return 0, false
    }
    return id, true
}

// respondDomainError maps domain errors onto the response contract; anything
// unclassified is an internal error.
func respondDomainError(w http.ResponseWriter, err error) {
    switch {
    case appErrors.IsValidation(err):
        respondError(w, http.StatusBadRequest, err.Error())
    case appErrors.IsDuplicateEmail(err):
        respondError(w, http.StatusBadRequest, "email already exists")
    case appErrors.IsNotFound(err):
        respondError(w, http.StatusNotFound, "Customer not found")
    default:
        log.Println("❌ internal error:", err)
        respondError(w, http.StatusInternalServerError, "internal server error")
    }
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, detail string) {
    respondJSON(w, status, map[string]string{"detail": detail})
}
