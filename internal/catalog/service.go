package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"product-showcase-service/internal/domain"
	"product-showcase-service/internal/store"
)

// Errors returned by Service in addition to the wrapped store errors.
var (
	ErrInvalidArgument = errors.New("catalog: product ID is required")
	ErrProductNotFound = errors.New("catalog: product not found")
)

// Service implements the two catalog read operations on top of a ProductReader.
// It holds no state between calls and is safe for concurrent use.
type Service struct {
	reader   store.ProductReader
	logger   *log.Logger
	validate *validator.Validate
	debug    bool
}

// NewService creates a Service. A nil logger falls back to the standard logger.
func NewService(reader store.ProductReader, logger *log.Logger, debug bool) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		reader:   reader,
		logger:   logger,
		validate: validator.New(),
		debug:    debug,
	}
}

// ListProducts returns every product in file order. An empty collection is not an error.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		s.logger.Printf("ERROR: ListProducts failed to load products: %v", err)
		return nil, err
	}
	return products, nil
}

// GetProductByID returns the product whose id equals id exactly.
// The id is rejected before the store is consulted when it is blank.
func (s *Service) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := s.validate.Var(strings.TrimFunc(id, isTrimmable), "required"); err != nil {
		return nil, ErrInvalidArgument
	}

	products, err := s.load(ctx)
	if err != nil {
		s.logger.Printf("ERROR: GetProductByID failed to load products for ID %q: %v", id, err)
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrProductNotFound, id)
}

// isTrimmable matches the characters stripped from both ends of an id before the blank check.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func (s *Service) load(ctx context.Context) ([]domain.Product, error) {
	products, err := s.reader.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	if s.debug {
		s.logger.Printf("DEBUG: loaded %d products from store", len(products))
	}
	return products, nil
}
