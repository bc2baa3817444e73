// Package legacy exposes the product operations over the envelope protocol
// consumed by pre-REST integrations. It is a thin adapter: every operation
// maps onto the same ProductService the JSON API uses, and the observable
// status strings of the historical contract are produced here and nowhere
// else.
package legacy

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"

	"github.com/retailstack/store-api/internal/logger"
	"github.com/retailstack/store-api/internal/service"
	"github.com/retailstack/store-api/internal/store"
	"github.com/retailstack/store-api/models"
)

// Operation names accepted in the request envelope.
const (
	opGetProduct     = "GetProduct"
	opGetAllProducts = "GetAllProducts"
	opAddProduct     = "AddProduct"
	opUpdateProduct  = "UpdateProduct"
	opDeleteProduct  = "DeleteProduct"
)

// Status strings of the historical contract. Integrations match on them
// verbatim, so they must not change.
const (
	statusAddedFmt       = "Product %s added successfully"
	statusUpdatedFmt     = "Product %s updated successfully"
	statusDeleted        = "Product deleted successfully"
	statusNotFound       = "Product not found"
	statusInvalidProduct = "Invalid product data"
)

// productPayload is the XML shape of a product inside envelopes.
type productPayload struct {
	ID    int64   `xml:"Id"`
	Name  string  `xml:"Name"`
	Price float64 `xml:"Price"`
}

func toPayload(p models.Product) productPayload {
	return productPayload{ID: p.ID, Name: p.Name, Price: p.Price}
}

func (p productPayload) toModel() models.Product {
	return models.Product{ID: p.ID, Name: p.Name, Price: p.Price}
}

// requestEnvelope is the inbound message. Operation selects the call;
// Product carries the record for Add/Update, Id the target for Get/Delete.
type requestEnvelope struct {
	XMLName   xml.Name        `xml:"ProductServiceRequest"`
	Operation string          `xml:"Operation"`
	ID        int64           `xml:"Id"`
	Product   *productPayload `xml:"Product"`
}

// responseEnvelope is the outbound message. Mutating operations answer with
// Status only; reads answer with Product or Products and no Status.
type responseEnvelope struct {
	XMLName  xml.Name         `xml:"ProductServiceResponse"`
	Status   string           `xml:"Status,omitempty"`
	Product  *productPayload  `xml:"Product,omitempty"`
	Products []productPayload `xml:"Products>Product,omitempty"`
}

// ProductServiceHandler serves the envelope endpoint. It implements
// [http.Handler] and is mounted by the router inside the authenticated group.
type ProductServiceHandler struct {
	products service.ProductService
	logger   *logger.Logger
}

func NewProductServiceHandler(products service.ProductService, logger *logger.Logger) *ProductServiceHandler {
	logger.Info().Msg("legacy product service handler created")
	return &ProductServiceHandler{
		products: products,
		logger:   logger,
	}
}

func (h *ProductServiceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req requestEnvelope
	if err := xml.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid XML envelope")
		http.Error(w, "invalid XML envelope", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	var (
		resp responseEnvelope
		err  error
	)

	switch req.Operation {
	case opGetProduct:
		resp, err = h.getProduct(ctx, req.ID)
	case opGetAllProducts:
		resp, err = h.getAllProducts(ctx)
	case opAddProduct:
		resp, err = h.addProduct(ctx, req.Product)
	case opUpdateProduct:
		resp, err = h.updateProduct(ctx, req.Product)
	case opDeleteProduct:
		resp, err = h.deleteProduct(ctx, req.ID)
	default:
		log.Error().Str("operation", req.Operation).Msg("unknown operation")
		http.Error(w, "unknown operation", http.StatusBadRequest)
		return
	}

	if err != nil {
		log.Err(err).Str("operation", req.Operation).Msg("legacy operation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, resp)
}

// getProduct answers with the product when present and with an empty
// envelope when not: the historical contract returned a null product rather
// than an error for unknown ids.
func (h *ProductServiceHandler) getProduct(ctx context.Context, id int64) (responseEnvelope, error) {
	product, err := h.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return responseEnvelope{}, nil
		}
		return responseEnvelope{}, err
	}

	payload := toPayload(product)
	return responseEnvelope{Product: &payload}, nil
}

func (h *ProductServiceHandler) getAllProducts(ctx context.Context) (responseEnvelope, error) {
	products, err := h.products.GetAll(ctx)
	if err != nil {
		return responseEnvelope{}, err
	}

	payloads := make([]productPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, toPayload(p))
	}

	return responseEnvelope{Products: payloads}, nil
}

func (h *ProductServiceHandler) addProduct(ctx context.Context, payload *productPayload) (responseEnvelope, error) {
	if payload == nil {
		return responseEnvelope{Status: statusInvalidProduct}, nil
	}

	created, err := h.products.Add(ctx, payload.toModel())
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			return responseEnvelope{Status: statusInvalidProduct}, nil
		}
		return responseEnvelope{}, err
	}

	return responseEnvelope{Status: fmt.Sprintf(statusAddedFmt, created.Name)}, nil
}

func (h *ProductServiceHandler) updateProduct(ctx context.Context, payload *productPayload) (responseEnvelope, error) {
	if payload == nil {
		return responseEnvelope{Status: statusInvalidProduct}, nil
	}

	if err := h.products.Update(ctx, payload.toModel()); err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			return responseEnvelope{Status: statusNotFound}, nil
		case errors.Is(err, service.ErrInvalidDataProvided):
			return responseEnvelope{Status: statusInvalidProduct}, nil
		default:
			return responseEnvelope{}, err
		}
	}

	return responseEnvelope{Status: fmt.Sprintf(statusUpdatedFmt, payload.Name)}, nil
}

func (h *ProductServiceHandler) deleteProduct(ctx context.Context, id int64) (responseEnvelope, error) {
	if err := h.products.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return responseEnvelope{Status: statusNotFound}, nil
		}
		return responseEnvelope{}, err
	}

	return responseEnvelope{Status: statusDeleted}, nil
}

func writeEnvelope(w http.ResponseWriter, resp responseEnvelope) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(resp)
}
