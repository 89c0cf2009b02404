package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront/api/catalog/v1"
	orderv1 "github.com/dwikikusuma/storefront/api/order/v1"
	"github.com/dwikikusuma/storefront/pkg/money"
)

const storeName = "The Coral Collective"

func renderProducts(w io.Writer, products []catalogv1.Product) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tNAME\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.SKU, p.Name, money.USD(p.Price))
	}
	return tw.Flush()
}

func renderCart(w io.Writer, view *cartv1.CartView) error {
	fmt.Fprintln(w, storeName)
	fmt.Fprintf(w, "Total Items: %d  Total Price: %s\n", view.TotalItems, view.TotalPrice)
	if len(view.Cart) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tNAME\tQTY\tPRICE\tLINE")
	for _, it := range view.Cart {
		line := it.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", it.SKU, it.Name, it.Qty, money.USD(it.Price), money.USD(line))
	}
	return tw.Flush()
}

func renderOrders(w io.Writer, orders []orderv1.Order) error {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tITEMS\tTOTAL\tPLACED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", o.ID, o.Status, o.TotalItems, o.TotalPrice, o.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func renderOrder(w io.Writer, o orderv1.Order) error {
	fmt.Fprintf(w, "Order %s (%s)\n", o.ID, o.Status)
	fmt.Fprintf(w, "Total Items: %d  Total Price: %s\n\n", o.TotalItems, o.TotalPrice)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tNAME\tQTY\tPRICE\tLINE")
	for _, it := range o.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", it.SKU, it.Name, it.Quantity, money.USD(it.UnitPrice), money.USD(it.LineTotal))
	}
	return tw.Flush()
}
