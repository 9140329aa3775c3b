package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"labstock/config"
	apperror "labstock/internal/errors"
	"labstock/internal/pkg/logger"
	"labstock/internal/pkg/metrics"

	// Camadas do inventário para Injeção de Dependências
	"labstock/internal/console"                  // Apresentação
	"labstock/internal/demo"                     // Dados de demonstração
	"labstock/internal/repository/inventoryrepo" // Store em memória
	"labstock/internal/service/inventoryservice" // Lógica de orquestração
	"labstock/internal/sorting"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos apenas com o ambiente do sistema.
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()

	// 1. Flags sobrescrevem o ambiente
	flag.IntVar(&cfg.SimDays, "days", cfg.SimDays, "dias de consumo simulado")
	flag.IntVar(&cfg.SimEventsPerDay, "events", cfg.SimEventsPerDay, "eventos de consumo por dia")
	flag.Uint64Var(&cfg.SimSeed, "seed", cfg.SimSeed, "semente do gerador da simulação")
	flag.Float64Var(&cfg.AlertMargin, "margin", cfg.AlertMargin, "margem sobre o estoque mínimo para alertas")
	flag.StringVar(&cfg.SortMethod, "sort", cfg.SortMethod, "método de ordenação (merge|quick)")
	flag.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "pergunta um nome para a busca binária")
	flag.BoolVar(&cfg.PrintMetrics, "metrics", cfg.PrintMetrics, "imprime as métricas ao final")
	flag.Parse()

	appLogger := logger.NewLogger(cfg.LogLevel)
	appLogger.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	method, err := sorting.ParseMethod(cfg.SortMethod)
	if err != nil {
		appLogger.Error("Método de ordenação inválido.", err)
		code, _, _ := apperror.MapToExitCode(err)
		return code
	}

	// 2. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Store -> Service -> Console
	collector := metrics.New()
	store := inventoryrepo.NewStore()
	svc := inventoryservice.NewService(store, appLogger, collector)
	appLogger.Debug("Serviço de Inventário inicializado.", nil)

	items := demo.Seed(svc, time.Now())
	appLogger.Info("Itens de demonstração cadastrados.", map[string]interface{}{"count": len(items)})

	if err := svc.SimulateDays(cfg.SimDays, cfg.SimEventsPerDay, cfg.SimSeed); err != nil {
		code, _, _ := apperror.MapToExitCode(err)
		return code
	}

	handler := console.NewHandler(svc, appLogger, os.Stdin, os.Stdout)
	opts := console.Options{
		Method:       method,
		Margin:       cfg.AlertMargin,
		SearchTarget: "Seringa 5ml",
		Top:          5,
		Recent:       5,
		Interactive:  cfg.Interactive,
	}
	if cfg.PrintMetrics {
		opts.Metrics = collector
	}

	// 3. Execução
	if err := handler.Run(opts); err != nil {
		code, _, _ := apperror.MapToExitCode(err)
		return code
	}

	appLogger.Info("Relatório concluído.", nil)
	return 0
}
