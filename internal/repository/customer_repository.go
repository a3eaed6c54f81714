package repository

import (
	"database/sql"
	"fmt"

	"github.com/unclebandit/customer-registry/internal/db"
	appErrors "github.com/unclebandit/customer-registry/internal/errors"
	"github.com/unclebandit/customer-registry/internal/model"
	"github.com/unclebandit/customer-registry/internal/validation"
)

// CustomerRepositoryInterface defines methods used by the service layer
type CustomerRepositoryInterface interface {
	ListAll() ([]model.Customer, error)
	GetByID(id int) (*model.Customer, error)
	Create(c *model.Customer) error
	Update(id int, patch *validation.UpdateCustomerInput) (*model.Customer, error)
	Delete(id int) (bool, error)
}

// CustomerRepository is the concrete implementation over database/sql.
// Placeholders are $N in ascending order of appearance so the same SQL binds
// positionally on both postgres and sqlite3.
type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = "id, name, email, phone, status, notes"

// ListAll fetches every customer, ascending by id (insertion order).
func (r *CustomerRepository) ListAll() ([]model.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
        ORDER BY id ASC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Status, &c.Notes); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// GetByID fetches a customer by primary key
func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE id = $1
    `
	row := r.DB.QueryRow(query, id)

	var c model.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Status, &c.Notes); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a normalized record and assigns its id. A unique-constraint
// violation from the engine becomes DuplicateEmailError; there is no
// existence pre-check that could race with a concurrent insert.
func (r *CustomerRepository) Create(c *model.Customer) error {
	query := `
        INSERT INTO customers (name, email, phone, status, notes)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.DB.QueryRow(query, c.Name, c.Email, c.Phone, c.Status, c.Notes).Scan(&c.ID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return appErrors.NewDuplicateEmail(c.Email)
		}
		return err
	}
	return nil
}

// Update applies only the non-nil fields of the patch and returns the updated
// row, or nil if no row matched. An empty patch is a no-op returning the
// current record.
func (r *CustomerRepository) Update(id int, patch *validation.UpdateCustomerInput) (*model.Customer, error) {
	set := ""
	args := []interface{}{}
	argPos := 1

	appendSet := func(column string, value *string) {
		if value == nil {
			return
		}
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s=$%d", column, argPos)
		args = append(args, *value)
		argPos++
	}

	appendSet("name", patch.Name)
	appendSet("email", patch.Email)
	appendSet("phone", patch.Phone)
	appendSet("status", patch.Status)
	appendSet("notes", patch.Notes)

	if len(args) == 0 {
		return r.GetByID(id)
	}

	query := fmt.Sprintf(`
        UPDATE customers
        SET %s
        WHERE id=$%d
        RETURNING `+customerColumns, set, argPos)
	args = append(args, id)

	var c model.Customer
	err := r.DB.QueryRow(query, args...).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Status, &c.Notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		if db.IsUniqueViolation(err) {
			email := ""
			if patch.Email != nil {
				email = *patch.Email
			}
			return nil, appErrors.NewDuplicateEmail(email)
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes a customer; returns true if a row was deleted.
func (r *CustomerRepository) Delete(id int) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
