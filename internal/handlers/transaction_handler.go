package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
	"rentfolio/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the payload for creating or replacing a
// transaction. Amount is in cents; an empty date means now.
type TransactionRequest struct {
	Date        string                 `json:"date"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category    string                 `json:"category" binding:"required,max=100"`
	Description string                 `json:"description" binding:"max=500"`
	PropertyID  string                 `json:"property_id" binding:"required,uuid"`
	TenantID    *string                `json:"tenant_id" binding:"omitempty,uuid"`
}

func (r TransactionRequest) input() (services.TransactionInput, error) {
	date, err := parseOptionalTime(r.Date)
	if err != nil {
		return services.TransactionInput{}, err
	}
	in := services.TransactionInput{
		Amount:      r.Amount,
		Type:        r.Type,
		Category:    r.Category,
		Description: r.Description,
		PropertyID:  r.PropertyID,
		TenantID:    r.TenantID,
	}
	if date != nil {
		in.Date = *date
	}
	return in, nil
}

// TransactionQuery holds the list filters for transactions.
type TransactionQuery struct {
	pagination.PageRequest
	Search     string `form:"search" binding:"max=100"`
	Type       string `form:"type" binding:"omitempty,transaction_type"`
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
	FromDate   string `form:"from_date"`
	ToDate     string `form:"to_date"`
}

func (q TransactionQuery) filter() (services.TransactionFilter, error) {
	f := services.TransactionFilter{Search: q.Search, PropertyID: q.PropertyID}
	if q.Type != "" {
		t := models.TransactionType(q.Type)
		f.Type = &t
	}
	var err error
	if f.FromDate, err = parseOptionalTime(q.FromDate); err != nil {
		return f, err
	}
	if f.ToDate, err = parseOptionalTime(q.ToDate); err != nil {
		return f, err
	}
	if f.FromDate != nil && f.ToDate != nil && f.ToDate.Before(*f.FromDate) {
		return f, apperrors.ErrInvalidDateRange
	}
	return f, nil
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Book an income or expense against a property
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Property or tenant not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	in, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions lists transactions, newest first
// @Summary     List transactions
// @Tags        transactions
// @Produce     json
// @Param       search      query string false "Search description or category"
// @Param       type        query string false "income or expense"
// @Param       property_id query string false "Property ID"
// @Param       from_date   query string false "Earliest date (YYYY-MM-DD or RFC 3339)"
// @Param       to_date     query string false "Latest date (YYYY-MM-DD or RFC 3339)"
// @Param       page        query int    false "Page number"
// @Param       page_size   query int    false "Page size (max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var q TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	filter, err := q.filter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetTransactions(q.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionByID returns a single transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction replaces a transaction
// @Summary     Update a transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction, property or tenant not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	in, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(id, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Param       id path string true "Transaction ID"
// @Success     204
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCategories lists the categories of a transaction type
// @Summary     List transaction categories
// @Tags        transactions
// @Produce     json
// @Param       type query string true "income or expense"
// @Success     200 {object} map[string][]string
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Router      /transactions/categories [get]
func (h *TransactionHandler) GetCategories(c *gin.Context) {
	categories, err := h.transactionService.Categories(models.TransactionType(c.Query("type")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
