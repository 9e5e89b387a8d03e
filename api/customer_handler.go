package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rpupo63/csa-tracker-backend/database"
	"github.com/rpupo63/csa-tracker-backend/errs"
	"github.com/rpupo63/csa-tracker-backend/models"
)

type customerHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newCustomerHandler(db database.Database) customerHandler {
	logger := log.With().Str("handlerName", "customerHandler").Logger()

	return customerHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// getAllCustomers retrieves all customers sorted by name
// @Summary Get all customers
// @Description Retrieves all customers, sorted alphabetically by name
// @Tags Customers
// @Accept json
// @Produce json
// @Success 200 {array} models.Customer "List of customers"
// @Router /api/customers [get]
func (h customerHandler) getAllCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers := h.db.Customers().FindAll()
		if customers == nil {
			customers = []models.Customer{}
		}

		h.responder.WriteJSON(w, customers)
	}
}

// getCustomer retrieves a specific customer by ID
// @Summary Get customer
// @Description Retrieves a single customer by ID
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} models.Customer "Customer details"
// @Failure 404 {object} ErrorResponse "Not Found - Customer not found"
// @Router /api/customers/{customerID} [get]
func (h customerHandler) getCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := chi.URLParam(r, "customerID")
		if customerID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing customerID"))
			return
		}

		customer, found := h.db.Customers().FindByID(customerID)
		if !found {
			h.responder.WriteError(w, errs.NewNotFound("customer"))
			return
		}

		h.responder.WriteJSON(w, customer)
	}
}

// createCustomer creates a new customer
// @Summary Create customer
// @Description Creates a new customer record
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body models.Customer true "Customer data"
// @Success 201 {object} models.Customer "Created customer"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid customer data"
// @Failure 403 {object} ErrorResponse "Forbidden - Demo mode active"
// @Router /api/customers [post]
func (h customerHandler) createCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var fields map[string]any
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&fields); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode customer request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if name, _ := fields["name"].(string); name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		customer, err := h.db.CustomerRepo().Create(fields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, customer)
	}
}

// updateCustomer updates an existing customer
// @Summary Update customer
// @Description Merges the supplied fields into an existing customer record
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Param customer body models.Customer true "Updated customer data"
// @Success 200 {object} models.Customer "Updated customer"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid customer data"
// @Failure 403 {object} ErrorResponse "Forbidden - Demo mode active"
// @Failure 404 {object} ErrorResponse "Not Found - Customer not found"
// @Router /api/customers/{customerID} [put]
func (h customerHandler) updateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := chi.URLParam(r, "customerID")
		if customerID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing customerID"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var fields map[string]any
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&fields); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode customer request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		customer, err := h.db.CustomerRepo().Update(customerID, fields)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, customer)
	}
}

// deleteCustomer deletes a customer by ID
// @Summary Delete customer
// @Description Deletes a customer record by ID
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 403 {object} ErrorResponse "Forbidden - Demo mode active"
// @Router /api/customers/{customerID} [delete]
func (h customerHandler) deleteCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := chi.URLParam(r, "customerID")
		if customerID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing customerID"))
			return
		}

		if err := h.db.CustomerRepo().Delete(customerID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "customer deleted successfully",
		})
	}
}
