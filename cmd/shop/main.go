package main

import (
	"log"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fjod/go_shop/internal/cart"
	"github.com/fjod/go_shop/internal/catalog"
	"github.com/fjod/go_shop/internal/cli"
	"github.com/fjod/go_shop/internal/domain"
	"github.com/fjod/go_shop/internal/pricing"
)

// Store catalog. Prices are decimal literals so money arithmetic stays exact.
var products = []domain.Product{
	{Name: "Iphone 11", Price: decimal.RequireFromString("2100.99")},
	{Name: "Galaxy S21", Price: decimal.RequireFromString("1800.00")},
	{Name: "Pixel 9", Price: decimal.RequireFromString("1399.50")},
	{Name: "Airpods Pro", Price: decimal.RequireFromString("329.99")},
	{Name: "Macbook Air", Price: decimal.RequireFromString("2499.00")},
}

var discounts = map[string]domain.DiscountRule{
	"Iphone 11":   {Type: domain.RuleBuyNGetMFree, BuyCount: 3, FreeCount: 1},
	"Airpods Pro": {Type: domain.RuleBuyNGetMFree, BuyCount: 2, FreeCount: 1},
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "shop",
		Short: "Interactive shopping cart for the store catalog",
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

func run() {
	// Config problems are warnings only: a broken discount simply never
	// applies, and the shop still opens.
	for _, warning := range catalog.Validate(products, discounts) {
		log.Printf("config warning: %s", warning)
	}

	store := catalog.New(products)
	sessionCart := cart.New(store)
	calculator := pricing.NewCalculator(store, discounts)

	menu := cli.NewMenu(os.Stdin, os.Stdout, store, sessionCart, calculator)
	menu.Run()
}
