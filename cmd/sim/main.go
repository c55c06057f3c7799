// Command sim boots the content layer against an in-process host and plays
// out a short fight so the hooks, procs and damage-over-time ticks can be
// watched in the log and on /metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/thalassophobia/internal/catalog"
	"github.com/KirkDiggler/thalassophobia/internal/combat"
	"github.com/KirkDiggler/thalassophobia/internal/config"
	"github.com/KirkDiggler/thalassophobia/internal/content/items"
	"github.com/KirkDiggler/thalassophobia/internal/correlate"
	"github.com/KirkDiggler/thalassophobia/internal/definition"
	"github.com/KirkDiggler/thalassophobia/internal/dice"
	"github.com/KirkDiggler/thalassophobia/internal/diagnostics"
	"github.com/KirkDiggler/thalassophobia/internal/dot"
	"github.com/KirkDiggler/thalassophobia/internal/hooks"
	"github.com/KirkDiggler/thalassophobia/internal/lang"
	"github.com/KirkDiggler/thalassophobia/internal/plugin"
	"github.com/KirkDiggler/thalassophobia/internal/registry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	hits := flag.Int("hits", 10, "Number of hits the attacker lands")
	stacks := flag.Int("stacks", 3, "Acidic Rounds the attacker carries")
	step := flag.Duration("step", 250*time.Millisecond, "Simulated time between hits")
	hold := flag.Bool("hold", false, "Keep serving metrics after the fight until interrupted")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	tag, err := language.Parse(cfg.Language.Tag)
	if err != nil {
		log.Fatalf("Failed to parse language %q: %v", cfg.Language.Tag, err)
	}

	ctx := context.Background()

	var catalogService catalog.Service
	var langTable lang.Table
	var redisClient *redis.Client

	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)
		redisClient = connectRedis(ctx, cfg.Redis.URL)
	} else {
		log.Println("No REDIS_URL found, using in-memory catalog")
	}

	if redisClient != nil {
		catalogService = catalog.NewRedisService(&catalog.RedisConfig{
			Client:   redisClient,
			CacheTTL: cfg.Redis.TTL,
		})
		langTable = lang.NewRedis(redisClient)
		log.Println("Using Redis for catalog and strings")
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
	} else {
		catalogService = catalog.NewInMemory(nil)
		langTable = lang.NewInMemory()
	}

	var server *http.Server
	if cfg.Metrics.Addr != "" {
		server = serveMetrics(cfg.Metrics.Addr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error stopping metrics server: %v", err)
			}
		}()
	}

	var roller dice.Roller
	if cfg.Seed != 0 {
		roller = dice.NewSeededRoller(cfg.Seed)
	} else {
		roller = dice.NewRandomRoller()
	}

	reporter := diagnostics.Default("SIM")
	world := combat.NewWorld()
	chain := hooks.NewChain(&hooks.Config{Reporter: reporter})

	engine, err := dot.NewEngine(&dot.Config{
		Bodies:   world,
		Sink:     world,
		Roller:   roller,
		Reporter: reporter,
	})
	if err != nil {
		log.Fatalf("Failed to create dot engine: %v", err)
	}

	builder, err := definition.NewBuilder(&definition.BuilderConfig{
		Catalog:  catalogService,
		Lang:     langTable,
		Language: tag,
	})
	if err != nil {
		log.Fatalf("Failed to create definition builder: %v", err)
	}

	correlator, err := correlate.New(&correlate.Config{Catalog: catalogService, Reporter: reporter})
	if err != nil {
		log.Fatalf("Failed to create correlator: %v", err)
	}

	reg := registry.New()
	p, err := plugin.New(&plugin.Config{
		Content:    &cfg.Content,
		Registry:   reg,
		Builder:    builder,
		Hooks:      chain,
		Dots:       engine,
		World:      world,
		Correlator: correlator,
		Reporter:   reporter,
	})
	if err != nil {
		log.Fatalf("Failed to create plugin: %v", err)
	}

	installHost(chain, world, engine)

	summary, err := p.Load(ctx, plugin.DefaultContent()...)
	if err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}
	for name, failure := range summary.Failed {
		log.Printf("Content %s failed to initialize: %v", name, failure)
	}

	acid, err := registry.InstanceOf[*items.AcidOnHit](reg)
	if err != nil || acid.Definition() == nil {
		log.Fatalf("Acidic Rounds did not load: %v", err)
	}

	name, err := langTable.Get(ctx, tag, acid.Definition().Key().WithField(lang.FieldName))
	if err != nil {
		log.Fatalf("Failed to read item name: %v", err)
	}

	commando := combat.NewBody("commando", "Commando", combat.Stats{
		AttackSpeed:     1.5,
		BaseAttackSpeed: 1,
		Damage:          12,
		MaxHealth:       110,
	})
	commando.Inventory.Give(acid.Definition().Key().String(), *stacks)

	golem := combat.NewBody("golem", "Stone Golem", combat.Stats{
		AttackSpeed:     1,
		BaseAttackSpeed: 1,
		Damage:          20,
		MaxHealth:       480,
	})
	world.Spawn(commando)
	world.Spawn(golem)

	dt := step.Seconds()
	for i := 0; i < *hits && golem.Alive(); i++ {
		damage := &combat.DamageInfo{
			AttackerID:      commando.ID,
			Damage:          commando.Stats().Damage,
			ProcCoefficient: 1,
			Color:           combat.DamageColorDefault,
		}
		if _, err := chain.Fire(ctx, hooks.EventOnHitEnemy, hooks.NewHitContext(hooks.EventOnHitEnemy, damage, commando, golem)); err != nil {
			log.Printf("Hit %d failed: %v", i+1, err)
		}
		engine.Advance(dt)
	}

	// let the remaining acid run out
	if def, ok := engine.Definition(items.AcidDot); ok {
		for elapsed := 0.0; elapsed < def.Duration && golem.Alive(); elapsed += dt {
			engine.Advance(dt)
		}
	}

	printer := message.NewPrinter(tag)
	printer.Printf("%s x%d: %s finished with %.1f of %.0f health\n",
		name, *stacks, golem.Name, golem.Stats().Health, golem.Stats().MaxHealth)

	if *hold && server != nil {
		fmt.Println("Serving metrics. Press CTRL-C to exit.")
		sc := make(chan os.Signal, 1)
		signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		<-sc
		fmt.Println("Shutting down...")
	}
}

// installHost sets the host's own behavior for the events content augments
func installHost(chain *hooks.Chain, world *combat.World, engine *dot.Engine) {
	chain.SetOriginal(hooks.EventOnHitEnemy, func(_ context.Context, hc *hooks.Context) (any, error) {
		if hc.Victim == nil || hc.Damage == nil || hc.Damage.Rejected {
			return nil, nil
		}
		world.DealDamage(hc.Victim.ID, hc.Damage.AttackerID, hc.Damage.Damage, hc.Damage.Color)
		return nil, nil
	})

	chain.SetOriginal(hooks.EventOnCharacterDeath, func(_ context.Context, hc *hooks.Context) (any, error) {
		if hc.Victim != nil {
			engine.CancelTarget(hc.Victim.ID)
		}
		return nil, nil
	})

	world.OnDeath(func(victim *combat.Body, killerID string) {
		hc := &hooks.Context{Victim: victim}
		hc.Set("killer_id", killerID)
		if _, err := chain.Fire(context.Background(), hooks.EventOnCharacterDeath, hc); err != nil {
			log.Printf("Death of %s failed: %v", victim.Name, err)
		}
	})
}

func connectRedis(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory catalog")
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory catalog")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Serving metrics on %s/metrics", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()
	return server
}
