package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config armazena todas as configurações do aplicativo labstock.
type Config struct {
	// Geral
	Environment string
	LogLevel    string

	// Simulação de consumo
	SimDays         int
	SimEventsPerDay int
	SimSeed         uint64

	// Relatórios
	AlertMargin float64 // Margem sobre o estoque mínimo (0.20 = 20%)
	SortMethod  string  // "merge" ou "quick"

	// Console
	Interactive  bool // Pergunta um nome para a busca binária ao final
	PrintMetrics bool // Imprime as métricas no formato texto ao final
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Simulação (padrões do cenário de demonstração)
		SimDays:         getIntEnv("SIM_DAYS", 7),
		SimEventsPerDay: getIntEnv("SIM_EVENTS_PER_DAY", 14),
		SimSeed:         getUint64Env("SIM_SEED", 7),

		// 3. Relatórios
		AlertMargin: getFloatEnv("ALERT_MARGIN", 0.20),
		SortMethod:  getEnv("SORT_METHOD", "merge"),

		// 4. Console
		Interactive:  getBoolEnv("INTERACTIVE", true),
		PrintMetrics: getBoolEnv("PRINT_METRICS", false),
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getUint64Env lê uma variável de ambiente numérica sem sinal (ex: semente).
func getUint64Env(key string, defaultValue uint64) uint64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um inteiro sem sinal válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getFloatEnv lê uma variável de ambiente decimal.
func getFloatEnv(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(strings.Replace(valueStr, ",", ".", 1), 64)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número válido. Usando padrão (%g).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getBoolEnv lê uma variável de ambiente booleana ("true", "1", "false", "0"...).
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é booleano. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
