package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	propertyService PropertyServicer
	tenantService   TenantServicer
	activityService ActivityServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, propertyService PropertyServicer, tenantService TenantServicer, activityService ActivityServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		propertyService: propertyService,
		tenantService:   tenantService,
		activityService: activityService,
	}
}

// validateTransaction checks the input and normalizes the optional fields.
func (s *transactionService) validateTransaction(in *TransactionInput) error {
	if in.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !in.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	in.Category = strings.TrimSpace(in.Category)
	if in.Category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if in.PropertyID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "property ID is required")
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	if in.TenantID != nil && *in.TenantID == "" {
		in.TenantID = nil
	}

	if _, err := s.propertyService.GetPropertyByID(in.PropertyID); err != nil {
		return err
	}
	if in.TenantID != nil {
		if _, err := s.tenantService.GetTenantByID(*in.TenantID); err != nil {
			return err
		}
	}
	return nil
}

func (in TransactionInput) apply(tx *models.Transaction) {
	tx.Date = in.Date
	tx.Amount = in.Amount
	tx.Type = in.Type
	tx.Category = in.Category
	tx.Description = strings.TrimSpace(in.Description)
	tx.PropertyID = in.PropertyID
	tx.TenantID = in.TenantID
}

// CreateTransaction books an income or expense against a property. Rent
// income and maintenance expenses also appear in the activity feed.
func (s *transactionService) CreateTransaction(in TransactionInput) (*models.Transaction, error) {
	if err := s.validateTransaction(&in); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{}
	in.apply(transaction)
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	switch {
	case transaction.Type == models.TransactionTypeIncome && transaction.Category == models.CategoryRent:
		s.activityService.Record(models.ActivityPaymentReceived, DescPaymentReceived, transaction.PropertyID, transaction.Date)
	case transaction.Type == models.TransactionTypeExpense && transaction.Category == models.CategoryMaintenance:
		s.activityService.Record(models.ActivityMaintenanceRequest, DescMaintenanceRequest, transaction.PropertyID, transaction.Date)
	}
	return transaction, nil
}

// GetTransactions retrieves a paginated, filtered list of transactions,
// newest first, with property and tenant names resolved.
func (s *transactionService) GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.applyFilters(s.db.Model(&models.Transaction{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var propertyIDs, tenantIDs []string
	for _, tx := range transactions {
		propertyIDs = append(propertyIDs, tx.PropertyID)
		if tx.TenantID != nil {
			tenantIDs = append(tenantIDs, *tx.TenantID)
		}
	}
	dir, err := loadDirectory(s.db, uniqueIDs(propertyIDs), uniqueIDs(tenantIDs))
	if err != nil {
		return nil, err
	}
	for i := range transactions {
		transactions[i].PropertyName = dir.PropertyName(transactions[i].PropertyID)
		transactions[i].TenantName = dir.TenantName(transactions[i].TenantID)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func (s *transactionService) applyFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.Search != "" {
		like := likePattern(f.Search)
		q = q.Where("LOWER(description) LIKE ? OR LOWER(category) LIKE ? OR property_id IN (?)",
			like, like, propertyNameMatches(s.db, like))
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.PropertyID != "" {
		q = q.Where("property_id = ?", f.PropertyID)
	}
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction replaces the writable fields of a transaction.
func (s *transactionService) UpdateTransaction(id string, in TransactionInput) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateTransaction(&in); err != nil {
		return nil, err
	}

	in.apply(transaction)
	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// DeleteTransaction deletes a transaction.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AllTransactions returns every transaction in insertion order.
func (s *transactionService) AllTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("created_at ASC, id ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// Categories returns the conventional categories of a transaction type
// followed by any other category already in use for that type.
func (s *transactionService) Categories(transactionType models.TransactionType) ([]string, error) {
	if !transactionType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}

	var used []string
	if err := s.db.Model(&models.Transaction{}).
		Where("type = ?", transactionType).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &used).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	conventional := models.CategoriesFor(transactionType)
	categories := make([]string, 0, len(conventional)+len(used))
	seen := make(map[string]bool, len(conventional)+len(used))
	for _, c := range append(append([]string{}, conventional...), used...) {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories, nil
}
