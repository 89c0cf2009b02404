package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront/api/catalog/v1"
	orderv1 "github.com/dwikikusuma/storefront/api/order/v1"
	"github.com/dwikikusuma/storefront/pkg/config"
)

type clients struct {
	cart    cartv1.CartServiceClient
	catalog catalogv1.CatalogServiceClient
	orders  orderv1.OrderServiceClient
	close   func() error
}

// dialFunc opens clients against the storefront server at addr.
type dialFunc func(addr string) (*clients, error)

func dialClients(addr string) (*clients, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &clients{
		cart:    cartv1.NewCartServiceClient(conn),
		catalog: catalogv1.NewCatalogServiceClient(conn),
		orders:  orderv1.NewOrderServiceClient(conn),
		close:   conn.Close,
	}, nil
}

type cli struct {
	dial    dialFunc
	addr    string
	timeout time.Duration
	c       *clients
}

// newRootCmd builds the command tree. cfg supplies the flag defaults.
func newRootCmd(dial dialFunc, cfg config.Client) *cobra.Command {
	app := &cli{dial: dial}

	root := &cobra.Command{
		Use:           "cartctl",
		Short:         "Browse The Coral Collective catalog and manage the cart",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.dial(app.addr)
			if err != nil {
				return err
			}
			app.c = c
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app.c != nil && app.c.close != nil {
				return app.c.close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.addr, "addr", cfg.GRPCAddr, "storefront gRPC address")
	root.PersistentFlags().DurationVar(&app.timeout, "timeout", cfg.CallTimeout, "per-call timeout")

	root.AddCommand(
		&cobra.Command{
			Use:   "products",
			Short: "List the catalog",
			Args:  cobra.NoArgs,
			RunE:  app.runProducts,
		},
		&cobra.Command{
			Use:   "cart",
			Short: "Show the cart with running totals",
			Args:  cobra.NoArgs,
			RunE:  app.runCart,
		},
		&cobra.Command{
			Use:   "add SKU",
			Short: "Add one unit of a catalog product to the cart",
			Args:  cobra.ExactArgs(1),
			RunE:  app.runAdd,
		},
		&cobra.Command{
			Use:   "remove SKU",
			Short: "Remove a line item from the cart",
			Args:  cobra.ExactArgs(1),
			RunE:  app.runRemove,
		},
		&cobra.Command{
			Use:   "qty SKU N",
			Short: "Set the quantity of a line item (0 removes it)",
			Args:  cobra.ExactArgs(2),
			RunE:  app.runQty,
		},
		&cobra.Command{
			Use:   "submit",
			Short: "Submit the cart as an order",
			Args:  cobra.NoArgs,
			RunE:  app.runSubmit,
		},
		&cobra.Command{
			Use:   "orders [ID]",
			Short: "List placed orders, or show one order in detail",
			Args:  cobra.MaximumNArgs(1),
			RunE:  app.runOrders,
		},
	)
	return root
}

func (a *cli) ctx(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.timeout)
}

func (a *cli) runProducts(cmd *cobra.Command, _ []string) error {
	ctx, cancel := a.ctx(cmd)
	defer cancel()

	resp, err := a.c.catalog.ListProducts(ctx, &catalogv1.ListProductsRequest{})
	if err != nil {
		return err
	}
	return renderProducts(cmd.OutOrStdout(), resp.Products)
}

func (a *cli) runCart(cmd *cobra.Command, _ []string) error {
	ctx, cancel := a.ctx(cmd)
	defer cancel()

	view, err := a.c.cart.GetCart(ctx, &cartv1.GetCartRequest{})
	if err != nil {
		return err
	}
	return renderCart(cmd.OutOrStdout(), view)
}

func (a *cli) runAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := a.ctx(cmd)
	defer cancel()

	resp, err := a.c.catalog.GetProduct(ctx, &catalogv1.GetProductRequest{SKU: args[0]})
	if err != nil {
		return err
	}
	p := resp.Product
	return a.dispatch(ctx, cmd, &cartv1.DispatchRequest{
		Type:    "ADD",
		Payload: &cartv1.Payload{SKU: p.SKU, Name: p.Name, Price: p.Price},
	})
}

func (a *cli) runRemove(cmd *cobra.Command, args []string) error {
	ctx, cancel := a.ctx(cmd)
	defer cancel()

	return a.dispatch(ctx, cmd, &cartv1.DispatchRequest{
		Type:    "REMOVE",
		Payload: &cartv1.Payload{SKU: args[0]},
	})
}

func (a *cli) runQty(cmd *cobra.Command, args []string) error {
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("quantity %q is not a number", args[1])
	}

	ctx, cancel := a.ctx(cmd)
	defer cancel()

	return a.dispatch(ctx, cmd, &cartv1.DispatchRequest{
		Type:    "QUANTITY",
		Payload: &cartv1.Payload{SKU: args[0], Qty: qty},
	})
}

func (a *cli) runSubmit(cmd *cobra.Command, _ []string) error {
	ctx, cancel := a.ctx(cmd)
	defer cancel()

	return a.dispatch(ctx, cmd, &cartv1.DispatchRequest{Type: "SUBMIT"})
}

func (a *cli) runOrders(cmd *cobra.Command, args []string) error {
	ctx, cancel := a.ctx(cmd)
	defer cancel()

	if len(args) == 1 {
		resp, err := a.c.orders.GetOrder(ctx, &orderv1.GetOrderRequest{ID: args[0]})
		if err != nil {
			return err
		}
		return renderOrder(cmd.OutOrStdout(), resp.Order)
	}

	resp, err := a.c.orders.ListOrders(ctx, &orderv1.ListOrdersRequest{})
	if err != nil {
		return err
	}
	return renderOrders(cmd.OutOrStdout(), resp.Orders)
}

func (a *cli) dispatch(ctx context.Context, cmd *cobra.Command, req *cartv1.DispatchRequest) error {
	view, err := a.c.cart.Dispatch(ctx, req)
	if err != nil {
		return err
	}
	return renderCart(cmd.OutOrStdout(), view)
}
