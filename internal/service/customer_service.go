// internal/service/customer_service.go
package service

import (
    "log"

    appErrors "github.com/unclebandit/customer-registry/internal/errors"
    "github.com/unclebandit/customer-registry/internal/model"
    "github.com/unclebandit/customer-registry/internal/queue"
    "github.com/unclebandit/customer-registry/internal/repository"
    "github.com/unclebandit/customer-registry/internal/validation"
)

// CustomerService orchestrates validate → store → event publish for every
// customer operation. The Queue is optional; a nil queue disables events.
type CustomerService struct {
    CustomerRepo repository.CustomerRepositoryInterface
    Queue        queue.Queue
}

// ListCustomers returns every customer in insertion order.
func (s *CustomerService) ListCustomers() ([]model.Customer, error) {
    return s.CustomerRepo.ListAll()
}

// GetCustomer fetches one customer or fails with CustomerNotFoundError.
func (s *CustomerService) GetCustomer(id int) (*model.Customer, error) {
    customer, err := s.CustomerRepo.GetByID(id)
    if err != nil {
        return nil, err
    }
    if customer == nil {
        return nil, appErrors.NewCustomerNotFound(id)
    }
    return customer, nil
}

// CreateCustomer validates the payload, applies defaults and inserts the
// record. The store assigns the id and enforces email uniqueness.
func (s *CustomerService) CreateCustomer(in *validation.CreateCustomerInput) (*model.Customer, error) {
    if err := in.Validate(); err != nil {
        return nil, err
    }

    customer := &model.Customer{
        Name:   in.Name,
        Email:  in.Email,
        Phone:  in.Phone,
        Status: *in.Status,
        Notes:  in.Notes,
    }

    if err := s.CustomerRepo.Create(customer); err != nil {
        return nil, err
    }

    s.publish(queue.EventCustomerCreated, customer.ID)
    return customer, nil
}

// UpdateCustomer validates the patch and applies only the fields it carries.
func (s *CustomerService) UpdateCustomer(id int, in *validation.UpdateCustomerInput) (*model.Customer, error) {
    if err := in.Validate(); err != nil {
        return nil, err
    }

    customer, err := s.CustomerRepo.Update(id, in)
    if err != nil {
        return nil, err
    }
    if customer == nil {
        return nil, appErrors.NewCustomerNotFound(id)
    }

    s.publish(queue.EventCustomerUpdated, customer.ID)
    return customer, nil
}

// DeleteCustomer hard-deletes a customer or fails with CustomerNotFoundError.
func (s *CustomerService) DeleteCustomer(id int) error {
    deleted, err := s.CustomerRepo.Delete(id)
    if err != nil {
        return err
    }
    if !deleted {
        return appErrors.NewCustomerNotFound(id)
    }

    s.publish(queue.EventCustomerDeleted, id)
    return nil
}

// publish emits a lifecycle event; failures are logged, never surfaced to the
// request.
func (s *CustomerService) publish(event string, customerID int) {
    if s.Queue == nil {
        return
    }
    payload := queue.CustomerEvent{Event: event, CustomerID: customerID}
    if err := s.Queue.Publish(queue.CustomerEventsTopic, payload); err != nil {
        log.Println("⚠️ failed to publish customer event:", err)
    }
}
