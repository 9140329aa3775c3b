package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"labstock/internal/domain"
	apperror "labstock/internal/errors"
	"labstock/internal/pkg/logger"
	"labstock/internal/report"
	"labstock/internal/service/inventoryservice"
	"labstock/internal/sorting"
)

const dateLayout = "2006-01-02"

// InventoryService define o contrato que o Console espera da camada de Serviço.
type InventoryService interface {
	Summary() report.LogSummary
	RecentActivity(n int) []domain.ConsumptionEvent
	FindByNameSequential(name string) (domain.Item, int)
	FindByName(name string, method sorting.Method) (domain.Item, bool, error)
	FindByExpiry(expiry time.Time, method sorting.Method) (domain.Item, int, error)
	ConsumptionRanking(method sorting.Method) ([]domain.ItemTotal, error)
	ExpiryRanking(method sorting.Method) ([]domain.Item, error)
	LowStockAlerts(margin float64) []domain.Item
}

// MetricsWriter imprime métricas no formato texto.
type MetricsWriter interface {
	WriteText(w io.Writer) error
}

// Options controla as seções do relatório de demonstração.
type Options struct {
	Method       sorting.Method
	Margin       float64
	SearchTarget string // Nome procurado na busca sequencial
	Top          int    // Quantidade de itens nas listas "top"
	Recent       int    // Consumos recentes exibidos (0 desliga)
	Interactive  bool
	Metrics      MetricsWriter // nil desliga a seção de métricas
}

// Handler agrupa a apresentação em texto dos relatórios do inventário.
type Handler struct {
	Service InventoryService
	Logger  logger.Logger
	in      *bufio.Reader
	out     io.Writer
}

// NewHandler cria uma nova instância do Handler, injetando o Service, o Logger e a E/S.
func NewHandler(svc InventoryService, log logger.Logger, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run imprime todas as seções do relatório e, se pedido, executa a busca interativa.
func (h *Handler) Run(opts Options) error {
	if opts.Top <= 0 {
		opts.Top = 5
	}

	h.PrintConsumptionLog()
	if opts.Recent > 0 {
		h.PrintRecentActivity(opts.Recent)
	}

	if err := h.PrintSearches(opts.SearchTarget, opts.Method); err != nil {
		return h.handleError(err)
	}
	if err := h.PrintConsumptionRanking(opts.Method, opts.Top); err != nil {
		return h.handleError(err)
	}
	if err := h.PrintExpiryRanking(opts.Method, opts.Top); err != nil {
		return h.handleError(err)
	}
	h.PrintAlerts(opts.Margin)

	if opts.Metrics != nil {
		if err := h.PrintMetrics(opts.Metrics); err != nil {
			return h.handleError(err)
		}
	}

	if opts.Interactive {
		h.PromptNameSearch(opts.Method)
	}
	return nil
}

// PrintConsumptionLog mostra o tamanho da fila, a frente da fila e o topo da pilha.
func (h *Handler) PrintConsumptionLog() {
	summary := h.Service.Summary()

	fmt.Fprintln(h.out, "== CONSUMO REGISTRADO ==")
	fmt.Fprintf(h.out, "Eventos na fila: %d\n", summary.EventCount)
	if summary.First != nil {
		fmt.Fprintf(h.out, "Primeiro da fila: %s\n", summary.First)
	}
	if summary.Latest != nil {
		fmt.Fprintf(h.out, "Topo da pilha: %s\n", summary.Latest)
	}
	fmt.Fprintln(h.out)
}

// PrintSearches demonstra a busca sequencial por nome e a busca binária por validade.
func (h *Handler) PrintSearches(target string, method sorting.Method) error {
	fmt.Fprintln(h.out, "== BUSCAS ==")

	_, idx := h.Service.FindByNameSequential(target)
	fmt.Fprintf(h.out, "Sequencial -> '%s' no índice %d (se -1, não achou)\n", target, idx)

	byExpiry, err := h.Service.ExpiryRanking(method)
	if err != nil {
		return err
	}
	if len(byExpiry) > 3 {
		key := byExpiry[3].Expiry
		_, pos, err := h.Service.FindByExpiry(key, method)
		if err != nil {
			return err
		}
		fmt.Fprintf(h.out, "Binária por validade -> posição %d para %s\n", pos, key.Format(dateLayout))
	}
	fmt.Fprintln(h.out)
	return nil
}

// PrintConsumptionRanking lista os maiores consumidores (ordem crescente, maiores no fim).
func (h *Handler) PrintConsumptionRanking(method sorting.Method, top int) error {
	ranked, err := h.Service.ConsumptionRanking(method)
	if err != nil {
		return err
	}

	fmt.Fprintln(h.out, "== ORDENAÇÃO ==")
	fmt.Fprintf(h.out, "Top %d por consumo (crescente, maiores no fim):\n", top)
	for _, p := range ranked[max(0, len(ranked)-top):] {
		fmt.Fprintf(h.out, "- %-22s | %5d %s\n", p.Item.Name, p.Total, p.Item.Unit)
	}
	fmt.Fprintln(h.out)
	return nil
}

// PrintExpiryRanking lista os itens mais próximos do vencimento.
func (h *Handler) PrintExpiryRanking(method sorting.Method, top int) error {
	ranked, err := h.Service.ExpiryRanking(method)
	if err != nil {
		return err
	}

	fmt.Fprintln(h.out, "Próximos a vencer:")
	for _, it := range ranked[:min(top, len(ranked))] {
		fmt.Fprintf(h.out, "- %-22s | vence em %s\n", it.Name, it.Expiry.Format(dateLayout))
	}
	fmt.Fprintln(h.out)
	return nil
}

// PrintAlerts lista os itens perto do estoque mínimo.
func (h *Handler) PrintAlerts(margin float64) {
	fmt.Fprintln(h.out, "== ALERTAS ==")
	alerts := h.Service.LowStockAlerts(margin)
	if len(alerts) == 0 {
		fmt.Fprintln(h.out, "Sem alertas.")
		return
	}
	for _, it := range alerts {
		fmt.Fprintf(h.out, "- %-22s | estoque %d (min %d)\n", it.Name, it.CurrentStock, it.MinStock)
	}
}

// PrintMetrics imprime as métricas Prometheus em texto.
func (h *Handler) PrintMetrics(m MetricsWriter) error {
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "== MÉTRICAS ==")
	if err := m.WriteText(h.out); err != nil {
		return apperror.NewInternalError("Falha ao escrever métricas.", err)
	}
	return nil
}

// PromptNameSearch pergunta um nome exato e faz a busca binária por nome.
// Entrada vazia ou fim da entrada pulam a busca.
func (h *Handler) PromptNameSearch(method sorting.Method) {
	fmt.Fprint(h.out, "\n[Busca Binária] Digite o nome exato (ou Enter para pular): ")

	line, err := h.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		h.Logger.Error("Falha ao ler o termo de busca.", err)
		fmt.Fprintf(h.out, "Erro na busca binária: %v\n", err)
		return
	}

	term := inventoryservice.NormalizeTerm(line)
	if term == "" {
		fmt.Fprintln(h.out)
		return
	}

	it, found, err := h.Service.FindByName(term, method)
	if err != nil {
		h.Logger.Error("Falha na busca binária por nome.", err)
		fmt.Fprintf(h.out, "Erro na busca binária: %v\n", err)
		return
	}
	if !found {
		fmt.Fprintln(h.out, "Item não encontrado.")
		return
	}
	fmt.Fprintf(h.out, "Encontrado -> ID %d | %s | %s | %s | lote %s | validade %s | estoque %d (min %d)\n",
		it.ID, it.Name, it.Category, it.Unit, it.Lot, it.Expiry.Format(dateLayout), it.CurrentStock, it.MinStock)
}

// PrintRecentActivity lista os n consumos mais recentes (topo da pilha primeiro).
func (h *Handler) PrintRecentActivity(n int) {
	fmt.Fprintln(h.out, "== ATIVIDADE RECENTE ==")
	for _, evt := range h.Service.RecentActivity(n) {
		fmt.Fprintf(h.out, "- %s\n", evt)
	}
	fmt.Fprintln(h.out)
}

// handleError registra e imprime um erro de serviço de forma padronizada.
func (h *Handler) handleError(err error) error {
	code, category, message := apperror.MapToExitCode(err)

	if code == apperror.ExitInternal {
		h.Logger.Error(fmt.Sprintf("Erro Interno: %s", category), err)
	} else {
		h.Logger.Debug("Operação rejeitada.", map[string]interface{}{"category": category, "exit_code": code})
	}

	fmt.Fprintf(h.out, "Erro [%s]: %s\n", category, strings.TrimSpace(message))
	return err
}
