package dto

import (
	"github.com/facturly/facturly-backend/internal/core/domain"
)

// SaveClientRequest defines the data for creating or replacing a client.
type SaveClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Notes   string `json:"notes"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	TaxID    string `json:"taxId"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	Notes    string `json:"notes"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID: c.ClientID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		TaxID:    c.TaxID,
		Address:  c.Address,
		City:     c.City,
		State:    c.State,
		ZipCode:  c.ZipCode,
		Country:  c.Country,
		Notes:    c.Notes,
	}
}

// ToClientResponses converts a slice of domain.Client to DTOs.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(&c)
	}
	return responses
}
