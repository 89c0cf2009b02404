package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront/api/catalog/v1"
	orderv1 "github.com/dwikikusuma/storefront/api/order/v1"
)

const maxBodyBytes = 64 << 10

type gateway struct {
	cart    cartv1.CartServiceClient
	catalog catalogv1.CatalogServiceClient
	orders  orderv1.OrderServiceClient
	health  healthpb.HealthClient
	log     *slog.Logger
}

func (g *gateway) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", g.ready)
	mux.HandleFunc("GET /products", g.listProducts)
	mux.HandleFunc("GET /products/{sku}", g.getProduct)
	mux.HandleFunc("GET /cart", g.getCart)
	mux.HandleFunc("POST /cart/actions", g.dispatch)
	mux.HandleFunc("GET /orders", g.listOrders)
	mux.HandleFunc("GET /orders/{id}", g.getOrder)
	return mux
}

func (g *gateway) ready(w http.ResponseWriter, r *http.Request) {
	resp, err := g.health.Check(r.Context(), &healthpb.HealthCheckRequest{Service: cartv1.CartService_ServiceName})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (g *gateway) listProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := g.catalog.ListProducts(r.Context(), &catalogv1.ListProductsRequest{})
	if err != nil {
		g.fail(w, r, err)
		return
	}
	products := resp.Products
	if products == nil {
		products = []catalogv1.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (g *gateway) getProduct(w http.ResponseWriter, r *http.Request) {
	resp, err := g.catalog.GetProduct(r.Context(), &catalogv1.GetProductRequest{SKU: r.PathValue("sku")})
	if err != nil {
		g.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Product)
}

func (g *gateway) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := g.cart.GetCart(r.Context(), &cartv1.GetCartRequest{})
	if err != nil {
		g.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (g *gateway) dispatch(w http.ResponseWriter, r *http.Request) {
	var req cartv1.DispatchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed action body")
		return
	}

	view, err := g.cart.Dispatch(r.Context(), &req)
	if err != nil {
		g.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (g *gateway) listOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := g.orders.ListOrders(r.Context(), &orderv1.ListOrdersRequest{})
	if err != nil {
		g.fail(w, r, err)
		return
	}
	orders := resp.Orders
	if orders == nil {
		orders = []orderv1.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (g *gateway) getOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := g.orders.GetOrder(r.Context(), &orderv1.GetOrderRequest{ID: r.PathValue("id")})
	if err != nil {
		g.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Order)
}

func (g *gateway) fail(w http.ResponseWriter, r *http.Request, err error) {
	code, errCode, msg := httpStatusFromGRPC(err)
	if code >= http.StatusInternalServerError {
		g.log.Error("upstream call failed", slog.String("path", r.URL.Path), slog.Any("err", err))
	}
	writeError(w, code, errCode, msg)
}
