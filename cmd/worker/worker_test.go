package main

import (
	"testing"

	"github.com/streadway/amqp"

	"github.com/unclebandit/customer-registry/internal/model"
	"github.com/unclebandit/customer-registry/internal/queue"
	"github.com/unclebandit/customer-registry/internal/validation"
)

// MockCustomerRepo stores customers in memory
type MockCustomerRepo struct {
	customers map[int]*model.Customer
}

func (m *MockCustomerRepo) ListAll() ([]model.Customer, error) { return nil, nil }

func (m *MockCustomerRepo) GetByID(id int) (*model.Customer, error) {
	return m.customers[id], nil
}

func (m *MockCustomerRepo) Create(c *model.Customer) error { return nil }

func (m *MockCustomerRepo) Update(id int, patch *validation.UpdateCustomerInput) (*model.Customer, error) {
	return m.customers[id], nil
}

func (m *MockCustomerRepo) Delete(id int) (bool, error) { return false, nil }

// Mock sender function always succeeds
func MockSender(msg string) bool {
	return true
}

func TestProcessCreatedEventSendsWelcome(t *testing.T) {
	repo := &MockCustomerRepo{
		customers: map[int]*model.Customer{
			1: {ID: 1, Name: "Ada", Email: "ada@example.com", Status: "active"},
		},
	}

	var sent string
	err := processEvent(
		queue.CustomerEvent{Event: queue.EventCustomerCreated, CustomerID: 1},
		repo,
		func(msg string) bool {
			sent = msg
			return MockSender(msg)
		},
	)
	if err != nil {
		t.Fatalf("processEvent failed: %v", err)
	}
	if sent != "Welcome Ada! Your account is active." {
		t.Errorf("unexpected welcome message %q", sent)
	}
}

func TestProcessCreatedEventMissingCustomer(t *testing.T) {
	repo := &MockCustomerRepo{customers: map[int]*model.Customer{}}

	err := processEvent(
		queue.CustomerEvent{Event: queue.EventCustomerCreated, CustomerID: 42},
		repo,
		MockSender,
	)
	if err != nil {
		t.Errorf("expected missing customer to be skipped, got %v", err)
	}
}

func TestProcessCreatedEventSendFailure(t *testing.T) {
	repo := &MockCustomerRepo{
		customers: map[int]*model.Customer{
			1: {ID: 1, Name: "Ada", Email: "ada@example.com", Status: "active"},
		},
	}

	err := processEvent(
		queue.CustomerEvent{Event: queue.EventCustomerCreated, CustomerID: 1},
		repo,
		func(msg string) bool { return false },
	)
	if err == nil {
		t.Error("expected error when send fails")
	}
}

func TestRetryCountFromHeaderWireTypes(t *testing.T) {
	cases := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{"missing header", amqp.Table{}, 0},
		{"nil table", nil, 0},
		{"int", amqp.Table{"x-retry-count": 2}, 2},
		{"int8", amqp.Table{"x-retry-count": int8(1)}, 1},
		{"int16", amqp.Table{"x-retry-count": int16(1)}, 1},
		{"int32", amqp.Table{"x-retry-count": int32(2)}, 2},
		{"int64", amqp.Table{"x-retry-count": int64(3)}, 3},
		{"unexpected type", amqp.Table{"x-retry-count": "2"}, 0},
	}

	for _, tc := range cases {
		if got := retryCountFrom(tc.headers); got != tc.want {
			t.Errorf("%s: retryCountFrom = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestProcessOtherEventsAreAcked(t *testing.T) {
	repo := &MockCustomerRepo{customers: map[int]*model.Customer{}}

	for _, event := range []string{queue.EventCustomerUpdated, queue.EventCustomerDeleted, "customer.unknown"} {
		err := processEvent(queue.CustomerEvent{Event: event, CustomerID: 1}, repo, MockSender)
		if err != nil {
			t.Errorf("%s: expected no error, got %v", event, err)
		}
	}
}
