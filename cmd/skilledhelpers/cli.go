package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/skilledhelpers"
	"github.com/fwojciec/skilledhelpers/helper"
)

// Resetter restores storage to the seed data.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Workers  skilledhelpers.WorkerService
	Products skilledhelpers.ProductService
	Resetter Resetter
	Helper   *helper.Session
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Workers    WorkersCmd    `cmd:"" help:"List professionals, optionally filtered"`
	Products   ProductsCmd   `cmd:"" help:"List tools and equipment"`
	Categories CategoriesCmd `cmd:"" help:"List service categories"`
	View       ViewCmd       `cmd:"" help:"Show a screen (home, products, others, about)"`
	AddWorker  AddWorkerCmd  `cmd:"" name:"add-worker" help:"Register a professional"`
	AddProduct AddProductCmd `cmd:"" name:"add-product" help:"List a product for sale"`
	Diagnose   DiagnoseCmd   `cmd:"" help:"Describe a home problem and find the right professional"`
	Reset      ResetCmd      `cmd:"" help:"Discard saved data and restore the seed listings"`
}

// WorkersCmd is the "workers" subcommand.
type WorkersCmd struct {
	Category string `short:"c" default:"All" help:"Category to show, or All"`
	Search   string `short:"s" help:"Match name, services or description"`
}

// ProductsCmd is the "products" subcommand.
type ProductsCmd struct{}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}

// ViewCmd is the "view" subcommand.
type ViewCmd struct {
	Name string `arg:"" optional:"" default:"home" help:"Screen name"`
}

// AddWorkerCmd is the "add-worker" subcommand.
type AddWorkerCmd struct {
	Name        string `required:"" help:"Full name"`
	Phone       string `required:"" help:"Phone number"`
	Location    string `required:"" help:"Area or city"`
	Category    string `default:"Plumber" help:"Service category"`
	Rate        string `help:"Hourly rate; defaults to 100 when missing or not a positive number"`
	Description string `help:"Short description"`
}

// AddProductCmd is the "add-product" subcommand.
type AddProductCmd struct {
	Name     string `required:"" help:"Product name"`
	Price    string `help:"Price; defaults to 0 when missing or not a number"`
	Category string `default:"Tools" help:"Product category"`
}

// DiagnoseCmd is the "diagnose" subcommand.
type DiagnoseCmd struct {
	Problem string `arg:"" help:"Describe the problem"`
	Apply   bool   `short:"a" help:"List professionals in the suggested category"`
}

// ResetCmd is the "reset" subcommand.
type ResetCmd struct {
	Force bool `help:"Confirm discarding all added listings"`
}
