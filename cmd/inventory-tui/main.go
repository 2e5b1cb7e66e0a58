package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/handiism/inventory/internal/catalog"
	"github.com/handiism/inventory/internal/config"
	"github.com/handiism/inventory/internal/model"
	"github.com/handiism/inventory/internal/tui"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		catalogFlag = flag.String("catalog", "", "Catalog file or URL (overrides config)")
	)
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *catalogFlag != "" {
		settings.Catalog = *catalogFlag
	}

	items := model.SampleCatalog()
	if settings.Catalog != "" {
		var err error
		items, err = catalog.NewLoader().Load(context.Background(), settings.Catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	if err := tui.Run(settings, items); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
