package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/seed"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/utils"
)

func main() {
	gen := seed.DefaultConfig()
	var dryRun, truncate bool

	flag.IntVar(&gen.Customers, "customers", gen.Customers, "Number of customers")
	flag.IntVar(&gen.Products, "products", gen.Products, "Number of products")
	flag.IntVar(&gen.Orders, "orders", gen.Orders, "Number of orders")
	flag.Uint64Var(&gen.Seed, "seed", 0, "Random seed (0 = random)")
	flag.BoolVar(&dryRun, "dry-run", false, "Generate and summarize without touching the database")
	flag.BoolVar(&truncate, "truncate", false, "Empty the store tables before loading")
	flag.Parse()

	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	gen.Location = cfg.Location()

	start := time.Now()
	log.Info().Int("customers", gen.Customers).Int("products", gen.Products).Int("orders", gen.Orders).
		Msg("📊 Generating store data")

	data, err := seed.Generate(gen)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Generation failed")
	}

	dropped := data.Clean()
	log.Info().
		Int("customers", len(data.Customers)).
		Int("products", len(data.Products)).
		Int("orders", len(data.Orders)).
		Int("order_items", len(data.Lines)).
		Interface("dropped", dropped).
		Msg("🧹 Data cleaned")

	ctx := context.Background()
	summarize(ctx, data, gen.Location)

	if dryRun {
		log.Info().Dur("elapsed", time.Since(start)).Msg("✅ Dry run finished")
		return
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to open database")
	}
	defer db.Close()

	if truncate {
		if err := seed.Truncate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("❌ Truncate failed")
		}
	}
	if err := seed.Load(ctx, db, data); err != nil {
		log.Fatal().Err(err).Msg("❌ Load failed")
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("✅ Seed completed")
}

// summarize logs what the dashboard will show for the generated data.
func summarize(ctx context.Context, data *seed.Data, loc *time.Location) {
	aggregator := analytics.NewAggregator(analytics.NewMemorySource(data.Dataset(), loc), loc)

	kpis, err := aggregator.GetKPIs(ctx, analytics.DefaultPeriod)
	if err != nil {
		log.Error().Err(err).Msg("❌ KPI summary failed")
		return
	}
	log.Info().
		Float64("total_revenue_completed", data.CompletedRevenue()).
		Float64("revenue_12m", kpis.TotalRevenue).
		Float64("net_profit_12m", kpis.NetProfit).
		Int64("orders_12m", kpis.TotalOrders).
		Float64("retention_rate", kpis.RetentionRate).
		Msg("📈 Summary")

	top, err := aggregator.GetTopPerformers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("❌ Top performers summary failed")
		return
	}
	for i, p := range top {
		log.Info().Int("rank", i+1).Str("product", p.ProductName).Float64("revenue", p.TotalRevenue).Msg("🏆 Top performer")
	}
}
