// internal/model/customer.go
package model

// Customer is the single record type managed by the service.
// Phone and Notes are nullable columns, so they are pointers: nil marshals
// to JSON null and scans cleanly from a NULL column.
type Customer struct {
    ID     int     `db:"id" json:"id"`
    Name   string  `db:"name" json:"name"`
    Email  string  `db:"email" json:"email"`
    Phone  *string `db:"phone" json:"phone"`
    Status string  `db:"status" json:"status"`
    Notes  *string `db:"notes" json:"notes"`
}
