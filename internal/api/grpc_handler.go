package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"product-showcase-service/internal/catalog"
	"product-showcase-service/internal/domain"
)

// GRPCHandler implements ProductCatalogServer.
type GRPCHandler struct {
	products ProductService
}

var _ ProductCatalogServer = (*GRPCHandler)(nil)

// NewGRPCHandler creates a new GRPCHandler.
func NewGRPCHandler(ps ProductService) *GRPCHandler {
	return &GRPCHandler{products: ps}
}

// --- Helper: Error Mapping ---

// mapCatalogErrorToGrpcStatus uses the same messages as the HTTP API; fallback is the
// operation-specific generic failure message.
func mapCatalogErrorToGrpcStatus(err error, fallback string) error {
	switch {
	case errors.Is(err, catalog.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, msgProductIDRequired)
	case errors.Is(err, catalog.ErrProductNotFound):
		return status.Error(codes.NotFound, msgProductNotFound)
	default:
		return status.Error(codes.Internal, fallback)
	}
}

// --- Helper: Domain to protobuf conversion ---

// productValue converts a product to its JSON object form so that field names match the HTTP API.
func productValue(p *domain.Product) (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (h *GRPCHandler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	products, err := h.products.ListProducts(ctx)
	if err != nil {
		return nil, mapCatalogErrorToGrpcStatus(err, msgFetchProducts)
	}

	items := make([]interface{}, 0, len(products))
	for i := range products {
		m, err := productValue(&products[i])
		if err != nil {
			log.Printf("ERROR: Failed to convert product %q for gRPC response: %v", products[i].ID, err)
			return nil, status.Error(codes.Internal, msgFetchProducts)
		}
		items = append(items, m)
	}

	list, err := structpb.NewList(items)
	if err != nil {
		log.Printf("ERROR: Failed to build gRPC product list: %v", err)
		return nil, status.Error(codes.Internal, msgFetchProducts)
	}
	return list, nil
}

func (h *GRPCHandler) GetProduct(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	product, err := h.products.GetProductByID(ctx, req.GetValue())
	if err != nil {
		return nil, mapCatalogErrorToGrpcStatus(err, msgFetchProduct)
	}

	m, err := productValue(product)
	if err != nil {
		log.Printf("ERROR: Failed to convert product %q for gRPC response: %v", product.ID, err)
		return nil, status.Error(codes.Internal, msgFetchProduct)
	}
	pb, err := structpb.NewStruct(m)
	if err != nil {
		log.Printf("ERROR: Failed to build gRPC product struct for %q: %v", product.ID, err)
		return nil, status.Error(codes.Internal, msgFetchProduct)
	}
	return pb, nil
}
