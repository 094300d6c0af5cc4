package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"blue-star-api/internal/domain"
	"blue-star-api/internal/repository"
	"blue-star-api/internal/validation"
)

// InventoryService maneja categorias e items de inventario.
type InventoryService struct {
	logger     *zap.Logger
	categories repository.CategoryRepository
	items      repository.ItemRepository
}

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrItemExists       = errors.New("item already exists")
	ErrNoResults        = errors.New("no results")
)

// maxItemResults acota las busquedas de items.
const maxItemResults = 50

func NewInventoryService(logger *zap.Logger, categories repository.CategoryRepository, items repository.ItemRepository) *InventoryService {
	return &InventoryService{
		logger:     logger,
		categories: categories,
		items:      items,
	}
}

// SearchCategories devuelve todas las categorias, una por id si la
// busqueda es numerica, o las que coincidan por nombre.
func (s *InventoryService) SearchCategories(ctx context.Context, search string) ([]domain.Category, error) {
	if search == "" {
		found, err := s.categories.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		if len(found) == 0 {
			return nil, ErrNoResults
		}
		return found, nil
	}

	if id, ok := validation.ParseID(search); ok {
		category, err := s.categories.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrNoResults
			}
			return nil, fmt.Errorf("get category: %w", err)
		}
		return []domain.Category{category}, nil
	}

	if !validation.IsStringValid(search) {
		return nil, &validation.Error{Code: domain.CodeValidationErr, Message: "Invalid search query"}
	}
	found, err := s.categories.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	if len(found) == 0 {
		return nil, ErrNoResults
	}
	return found, nil
}

func (s *InventoryService) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	name = validation.SanitizeField(name)
	if !validation.IsStringValid(name) {
		return domain.Category{}, &validation.Error{
			Code:    domain.CodeValidationErr,
			Message: "Missing or invalid category name",
		}
	}

	if _, err := s.categories.GetByName(ctx, name); err == nil {
		return domain.Category{}, ErrCategoryExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, fmt.Errorf("lookup category: %w", err)
	}

	category, err := s.categories.Create(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.Category{}, ErrCategoryExists
		}
		return domain.Category{}, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *InventoryService) UpdateCategory(ctx context.Context, id int64, name string) error {
	name = validation.SanitizeField(name)
	if !validation.IsStringValid(name) {
		return &validation.Error{
			Code:    domain.CodeValidationErr,
			Message: "Missing or invalid category name",
		}
	}
	if err := s.categories.Update(ctx, id, name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCategoryNotFound
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrCategoryExists
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (s *InventoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// SearchItems filtra por subcadena y opcionalmente por categoria. Una
// categoria inexistente es error antes de consultar items.
func (s *InventoryService) SearchItems(ctx context.Context, query string, categoryID int64) ([]domain.Item, error) {
	if query != "" && !validation.IsStringValid(query) {
		return nil, &validation.Error{Code: domain.CodeValidationErr, Message: "Invalid search query"}
	}
	if categoryID != 0 {
		if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("get category: %w", err)
		}
	}

	found, err := s.items.Search(ctx, query, categoryID, maxItemResults)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	if len(found) == 0 {
		return nil, ErrNoResults
	}
	return found, nil
}

func (s *InventoryService) CreateItem(ctx context.Context, name string, categoryID int64) (domain.Item, error) {
	name = validation.SanitizeField(name)
	if !validation.IsStringValid(name) {
		return domain.Item{}, &validation.Error{
			Code:    domain.CodeValidationErr,
			Message: "Missing or invalid item name",
		}
	}

	if _, err := s.items.GetByName(ctx, name); err == nil {
		return domain.Item{}, ErrItemExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Item{}, fmt.Errorf("lookup item: %w", err)
	}

	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, &validation.Error{
				Code:    domain.CodeValidationErr,
				Message: "Missing or invalid item category",
			}
		}
		return domain.Item{}, fmt.Errorf("get category: %w", err)
	}

	item, err := s.items.Create(ctx, name, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.Item{}, ErrItemExists
		}
		return domain.Item{}, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// UpdateItem cambia nombre y/o categoria; los argumentos en cero se
// dejan como estan.
func (s *InventoryService) UpdateItem(ctx context.Context, id int64, newName string, categoryID int64) (domain.Item, error) {
	newName = validation.SanitizeField(newName)
	if newName != "" && !validation.IsStringValid(newName) {
		return domain.Item{}, &validation.Error{Code: domain.CodeValidationErr, Message: "Invalid item name"}
	}

	if _, err := s.items.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, ErrItemNotFound
		}
		return domain.Item{}, fmt.Errorf("get item: %w", err)
	}

	if categoryID != 0 {
		if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.Item{}, ErrCategoryNotFound
			}
			return domain.Item{}, fmt.Errorf("get category: %w", err)
		}
	}

	if err := s.items.Update(ctx, domain.Item{ID: id, Name: newName, CategoryID: categoryID}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, ErrItemNotFound
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.Item{}, ErrItemExists
		}
		return domain.Item{}, fmt.Errorf("update item: %w", err)
	}
	return s.items.GetByID(ctx, id)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrItemNotFound
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
