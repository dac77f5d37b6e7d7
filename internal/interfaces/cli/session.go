// Package cli es la capa de presentación: una sesión interactiva de
// terminal que invoca los casos de uso y formatea sus resultados. No
// contiene reglas de negocio.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-cocina/internal/application/alerts"
	"github.com/tu-usuario/stock-cocina/internal/application/command"
	"github.com/tu-usuario/stock-cocina/internal/application/dto"
	"github.com/tu-usuario/stock-cocina/internal/application/inventory"
	"github.com/tu-usuario/stock-cocina/internal/application/view"
	"github.com/tu-usuario/stock-cocina/internal/domain"
	"github.com/tu-usuario/stock-cocina/internal/infrastructure/export"
	"github.com/tu-usuario/stock-cocina/pkg/logger"
)

const helpText = `Commands:
  /list                      show the inventory view (search/filter/sort applied)
  /summary                   totals: items, low stock alerts, inventory value
  /add name; stock; unit; threshold; cost
  /edit <item> field=value   fields: name, stock, unit, threshold, cost
  /rm <item>                 delete an item
  /put <item> <amount>       increase stock
  /take <item> <amount>      decrease stock (floors at zero)
  /search [term]             set or clear the name search term
  /filter all|low|in|value   set the category filter
  /sort name|stock|value[_desc]  set the sort order (no arg: insertion order)
  /export csv|pdf|html       write a snapshot export to the export dir
  /help, /exit
Anything else is read as a stock command, e.g. "bought 5 kg of onions".`

// Deps colaboradores de la sesión.
type Deps struct {
	Store         *inventory.StoreUseCase
	Interpreter   *command.Interpreter
	View          *view.Pipeline
	Watcher       *alerts.Watcher
	CSV           *export.CSVExporter
	HTML          *export.HTMLReport
	PDF           *export.PDFReport
	Log           *logger.Logger
	ExportDir     string
	Currency      string
	AlertsEnabled bool
}

// Session estado de la sesión interactiva: el estado de vista (búsqueda,
// filtro, orden) es explícito y la vista se recomputa en cada /list.
type Session struct {
	deps  Deps
	state view.State
	out   io.Writer
	in    io.Reader
}

// New construye la sesión con la vista en su estado base.
func New(deps Deps, in io.Reader, out io.Writer) *Session {
	return &Session{
		deps:  deps,
		state: view.State{Filter: view.FilterAll},
		in:    in,
		out:   out,
	}
}

// Run ejecuta el loop de lectura hasta EOF, /exit o cancelación del
// contexto. Cada operación corre a término antes de leer la siguiente.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "stock-cocina — type /help for commands")
	s.notifyLowStock()

	scanner := bufio.NewScanner(s.in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := s.dispatch(line); quit {
			return nil
		}
	}
}

// dispatch ejecuta una línea; devuelve true para terminar la sesión.
func (s *Session) dispatch(line string) bool {
	if !strings.HasPrefix(line, "/") {
		s.runFreeText(line)
		return false
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "/help":
		fmt.Fprintln(s.out, helpText)
	case "/exit", "/quit":
		return true
	case "/list":
		s.printList()
	case "/summary":
		s.printSummary()
	case "/add":
		s.runAdd(rest)
	case "/edit":
		s.runEdit(rest)
	case "/rm":
		s.runRemove(rest)
	case "/put":
		s.runAdjust(rest, false)
	case "/take":
		s.runAdjust(rest, true)
	case "/search":
		s.state.SearchTerm = rest
		s.printList()
	case "/filter":
		f, err := view.ParseFilter(rest)
		if err != nil {
			fmt.Fprintln(s.out, "unknown filter: use all, low, in or value")
			return false
		}
		s.state.Filter = f
		s.printList()
	case "/sort":
		if rest == "" {
			s.state.Sort = ""
			s.printList()
			return false
		}
		srt, err := view.ParseSort(rest)
		if err != nil {
			fmt.Fprintln(s.out, "unknown sort: use name, stock or value, optionally _desc")
			return false
		}
		s.state.Sort = srt
		s.printList()
	case "/export":
		s.runExport(rest)
	default:
		fmt.Fprintf(s.out, "unknown command %s — /help lists them\n", cmd)
	}
	return false
}

func (s *Session) runFreeText(text string) {
	res, err := s.deps.Interpreter.Execute(text)
	if err != nil {
		s.deps.Log.Error().Err(err).Msg("intérprete de comandos")
		fmt.Fprintln(s.out, "something went wrong, nothing was changed")
		return
	}
	fmt.Fprintln(s.out, res.Message)
	if res.Processed {
		s.notifyLowStock()
	}
}

func (s *Session) runAdd(rest string) {
	parts := strings.Split(rest, ";")
	if len(parts) != 5 {
		fmt.Fprintln(s.out, "usage: /add name; stock; unit; threshold; cost")
		return
	}
	req := dto.CreateItemRequest{
		Name:      strings.TrimSpace(parts[0]),
		Stock:     parseAmount(parts[1]),
		Unit:      strings.TrimSpace(parts[2]),
		Threshold: parseAmount(parts[3]),
		Cost:      parseAmount(parts[4]),
	}
	item, err := s.deps.Store.Add(req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			fmt.Fprintln(s.out, "the item name cannot be empty")
			return
		}
		s.deps.Log.Error().Err(err).Msg("alta de ítem")
		fmt.Fprintln(s.out, "could not add the item")
		return
	}
	fmt.Fprintf(s.out, "added %s (%s %s)\n", item.Name, item.Stock.String(), item.Unit)
	s.notifyLowStock()
}

func (s *Session) runEdit(rest string) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		fmt.Fprintln(s.out, "usage: /edit <item> field=value ...")
		return
	}
	item, ok := s.resolveItem(fields[0])
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	for _, kv := range fields[1:] {
		key, val, found := strings.Cut(kv, "=")
		if !found {
			fmt.Fprintf(s.out, "expected field=value, got %q\n", kv)
			return
		}
		switch key {
		case "name":
			v := val
			req.Name = &v
		case "unit":
			v := val
			req.Unit = &v
		case "stock":
			v := parseAmount(val)
			req.Stock = &v
		case "threshold":
			v := parseAmount(val)
			req.Threshold = &v
		case "cost":
			v := parseAmount(val)
			req.Cost = &v
		default:
			fmt.Fprintf(s.out, "unknown field %q\n", key)
			return
		}
	}
	updated, err := s.deps.Store.Update(item.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			fmt.Fprintln(s.out, "the item name cannot be empty")
		case errors.Is(err, domain.ErrNotFound):
			fmt.Fprintln(s.out, "item not found")
		default:
			s.deps.Log.Error().Err(err).Msg("edición de ítem")
			fmt.Fprintln(s.out, "could not update the item")
		}
		return
	}
	fmt.Fprintf(s.out, "updated %s\n", updated.Name)
	s.notifyLowStock()
}

func (s *Session) runRemove(rest string) {
	if rest == "" {
		fmt.Fprintln(s.out, "usage: /rm <item>")
		return
	}
	item, ok := s.resolveItem(rest)
	if !ok {
		return
	}
	if err := s.deps.Store.Remove(item.ID); err != nil {
		// Idempotente: borrar algo ya borrado no es fatal.
		if errors.Is(err, domain.ErrNotFound) {
			s.deps.Log.Warn().Str("id", item.ID).Msg("borrado de id inexistente")
			return
		}
		s.deps.Log.Error().Err(err).Msg("borrado de ítem")
		fmt.Fprintln(s.out, "could not delete the item")
		return
	}
	fmt.Fprintf(s.out, "deleted %s\n", item.Name)
}

func (s *Session) runAdjust(rest string, negative bool) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		fmt.Fprintln(s.out, "usage: /put|/take <item> <amount>")
		return
	}
	amount, err := decimal.NewFromString(fields[len(fields)-1])
	if err != nil {
		fmt.Fprintf(s.out, "not a number: %q\n", fields[len(fields)-1])
		return
	}
	item, ok := s.resolveItem(strings.Join(fields[:len(fields)-1], " "))
	if !ok {
		return
	}
	if negative {
		amount = amount.Neg()
	}
	updated, err := s.deps.Store.AdjustStock(item.ID, amount)
	if err != nil {
		s.deps.Log.Error().Err(err).Msg("ajuste de stock")
		fmt.Fprintln(s.out, "could not adjust the stock")
		return
	}
	fmt.Fprintf(s.out, "%s: %s %s\n", updated.Name, updated.Stock.String(), updated.Unit)
	s.notifyLowStock()
}

func (s *Session) runExport(format string) {
	snapshot, err := s.deps.Store.Snapshot()
	if err != nil {
		s.deps.Log.Error().Err(err).Msg("snapshot para exportar")
		return
	}
	summary, err := s.deps.Store.Summary()
	if err != nil {
		s.deps.Log.Error().Err(err).Msg("resumen para exportar")
		return
	}

	stamp := time.Now().Format("20060102-150405")
	var name string
	var data []byte
	switch strings.ToLower(format) {
	case "csv":
		name = "inventory-" + stamp + ".csv"
		data = []byte(s.deps.CSV.Render(snapshot))
	case "html":
		doc, rerr := s.deps.HTML.Render(snapshot, summary)
		if rerr != nil {
			s.deps.Log.Error().Err(rerr).Msg("reporte html")
			fmt.Fprintln(s.out, "could not build the report")
			return
		}
		name = "inventory-" + stamp + ".html"
		data = []byte(doc)
	case "pdf":
		doc, rerr := s.deps.PDF.Render(snapshot, summary)
		if rerr != nil {
			s.deps.Log.Error().Err(rerr).Msg("reporte pdf")
			fmt.Fprintln(s.out, "could not build the report")
			return
		}
		name = "inventory-" + stamp + ".pdf"
		data = doc
	default:
		fmt.Fprintln(s.out, "usage: /export csv|pdf|html")
		return
	}

	path := filepath.Join(s.deps.ExportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.deps.Log.Error().Err(err).Str("path", path).Msg("escribir exportación")
		fmt.Fprintln(s.out, "could not write the export file")
		return
	}
	fmt.Fprintf(s.out, "wrote %s\n", path)
}

func (s *Session) printList() {
	snapshot, err := s.deps.Store.Snapshot()
	if err != nil {
		s.deps.Log.Error().Err(err).Msg("snapshot para listar")
		return
	}
	rows := s.deps.View.Apply(snapshot, s.state)
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "inventory view is empty")
		return
	}

	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tITEM\tSTOCK\tUNIT\tCOST\tVALUE\tTHRESHOLD\tSTATUS")
	for i, r := range rows {
		status := "in stock"
		if r.LowStock {
			status = "LOW STOCK"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s %s\t%s %s\t%s\t%s\n",
			i+1, r.Name, r.Stock.String(), r.Unit,
			s.deps.Currency, r.Cost.StringFixed(2),
			s.deps.Currency, r.Value.StringFixed(2),
			r.Threshold.String(), status)
	}
	w.Flush()
	s.printSummary()
}

func (s *Session) printSummary() {
	summary, err := s.deps.Store.Summary()
	if err != nil {
		s.deps.Log.Error().Err(err).Msg("resumen del tablero")
		return
	}
	fmt.Fprintf(s.out, "items: %d | low stock: %d | value: %s %s\n",
		summary.TotalItems, summary.LowStockCount,
		s.deps.Currency, summary.TotalValue.StringFixed(2))
}

// notifyLowStock observa el snapshot y entrega las notificaciones nuevas.
// El watcher garantiza un disparo por transición, no uno por listado.
func (s *Session) notifyLowStock() {
	if !s.deps.AlertsEnabled {
		return
	}
	snapshot, err := s.deps.Store.Snapshot()
	if err != nil {
		s.deps.Log.Error().Err(err).Msg("snapshot para alertas")
		return
	}
	for _, n := range s.deps.Watcher.Observe(snapshot) {
		fmt.Fprintf(s.out, "[%s] %s\n", n.Title, n.Body)
		s.deps.Log.Info().Str("tag", n.Tag).Msg("alerta de stock bajo")
	}
}

// resolveItem acepta un id completo, un prefijo único de id o un nombre
// (case-insensitive) y devuelve el ítem referido.
func (s *Session) resolveItem(ref string) (*dto.ItemResponse, bool) {
	items, err := s.deps.Store.List()
	if err != nil {
		s.deps.Log.Error().Err(err).Msg("resolver referencia de ítem")
		return nil, false
	}
	ref = strings.TrimSpace(ref)
	var match *dto.ItemResponse
	count := 0
	for i := range items {
		it := &items[i]
		if it.ID == ref || strings.EqualFold(it.Name, ref) {
			return it, true
		}
		if strings.HasPrefix(it.ID, ref) {
			match = it
			count++
		}
	}
	switch count {
	case 1:
		return match, true
	case 0:
		fmt.Fprintf(s.out, "no item matches %q\n", ref)
	default:
		fmt.Fprintf(s.out, "%q is ambiguous, use more of the id\n", ref)
	}
	return nil, false
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
