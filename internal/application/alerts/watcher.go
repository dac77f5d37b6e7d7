// Package alerts deriva la señal de stock bajo por flanco: una
// notificación por transición false→true, no una por render.
package alerts

import (
	"fmt"

	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
)

// Notification evento que se entrega al entorno anfitrión.
// Tag es el id del ítem, estable entre observaciones.
type Notification struct {
	Title string
	Body  string
	Tag   string
}

// Watcher máquina de dos estados por id ({notificado, no-notificado})
// gobernada solo por el booleano de stock bajo del snapshot:
//
//	false→true  dispara exactamente una notificación y marca el id;
//	true→false  limpia la marca, así una futura re-entrada vuelve a
//	            disparar.
//
// Los ids que desaparecen del snapshot pierden su marca; como los ids no
// se reutilizan, una marca vieja nunca puede silenciar a un ítem nuevo.
type Watcher struct {
	notified map[string]bool
}

// NewWatcher construye el watcher sin marcas.
func NewWatcher() *Watcher {
	return &Watcher{notified: make(map[string]bool)}
}

// Observe compara el snapshot contra las marcas y devuelve las
// notificaciones nuevas. Observar dos veces el mismo estado no dispara
// nada la segunda vez.
func (w *Watcher) Observe(snapshot []*entity.Item) []Notification {
	var out []Notification
	seen := make(map[string]bool, len(snapshot))

	for _, it := range snapshot {
		seen[it.ID] = true
		low := it.IsLowStock()
		switch {
		case low && !w.notified[it.ID]:
			w.notified[it.ID] = true
			out = append(out, Notification{
				Title: "Low Stock Alert",
				Body: fmt.Sprintf("%s is running low: %s %s left (threshold %s)",
					it.Name, it.Stock.String(), it.Unit, it.Threshold.String()),
				Tag: it.ID,
			})
		case !low && w.notified[it.ID]:
			delete(w.notified, it.ID)
		}
	}

	for id := range w.notified {
		if !seen[id] {
			delete(w.notified, id)
		}
	}
	return out
}
