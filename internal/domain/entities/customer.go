package entities

import "time"

// CustomerStatus is the customer lifecycle state.

type CustomerStatus string

const (
	CustomerStatusLead     CustomerStatus = "Lead"
	CustomerStatusProspect CustomerStatus = "Prospect"
	CustomerStatusActive   CustomerStatus = "Active"
	CustomerStatusInactive CustomerStatus = "Inactive"
)

// CustomerStatuses lists every status, used to build zeroed breakdown maps.
var CustomerStatuses = []CustomerStatus{
	CustomerStatusLead,
	CustomerStatusProspect,
	CustomerStatusActive,
	CustomerStatusInactive,
}

// Customer is the account a deal belongs to. The analytics engine only groups
// and counts customers; their lifecycle is managed elsewhere.
type Customer struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Company   string         `json:"company,omitempty"`
	Status    CustomerStatus `json:"status"`
	OwnerID   string         `json:"owner_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
