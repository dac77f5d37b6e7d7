// Package command traduce una orden de texto libre ("bought 5 kg of
// onions") en un ajuste de stock, o reporta que no pudo entenderla.
//
// El matching es por palabras clave y subcadenas, no NLP: un nombre corto
// que sea subcadena de otro más largo, o que aparezca incidentalmente en
// texto no relacionado, puede matchear. Esa soltura es parte del contrato
// del matcher, no un bug a corregir.
package command

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-cocina/internal/application/inventory"
	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
)

// Intent clasificación de la orden extraída del texto.
type Intent string

const (
	IntentIncrease Intent = "INCREASE" // bought / received / add
	IntentDecrease Intent = "DECREASE" // used / sold
)

// GuidanceMessage respuesta fija cuando ningún ítem produce un match.
const GuidanceMessage = "I couldn't understand that. Try: 'bought 5 kg of onions' or 'used 2 liters of sauce'"

var (
	increaseKeywords = []string{"bought", "received", "add"}
	decreaseKeywords = []string{"used", "sold"}

	// Primer token numérico entero-o-decimal del texto; si hay varios
	// números, solo cuenta el primero.
	numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)
)

// Result resultado estructurado de interpretar un comando. Si Processed es
// false el almacén no se tocó y Message trae la guía fija.
type Result struct {
	Processed bool
	Intent    Intent
	ItemID    string
	ItemName  string
	Unit      string
	Amount    decimal.Decimal
	Message   string
}

// Interpreter ejecuta órdenes de texto contra el almacén. La lógica de
// matching vive aparte en Match (función pura) para poder sustituir el
// matcher sin tocar el almacén.
type Interpreter struct {
	store *inventory.StoreUseCase
}

// NewInterpreter construye el intérprete.
func NewInterpreter(store *inventory.StoreUseCase) *Interpreter {
	return &Interpreter{store: store}
}

// Execute interpreta el texto contra el snapshot actual y, si hay match,
// aplica exactamente un ajuste (el almacén recorta en cero). Nunca muta
// parcialmente: sin match completo no hay ajuste.
func (in *Interpreter) Execute(text string) (*Result, error) {
	snapshot, err := in.store.Snapshot()
	if err != nil {
		return nil, err
	}
	res := Match(text, snapshot)
	if !res.Processed {
		return res, nil
	}
	delta := res.Amount
	if res.Intent == IntentDecrease {
		delta = delta.Neg()
	}
	if _, err := in.store.AdjustStock(res.ItemID, delta); err != nil {
		return nil, err
	}
	return res, nil
}

// Match aplica el contrato de precedencia sobre el snapshot, sin efectos:
//
//  1. Texto a minúsculas.
//  2. Ítems en orden de lista; gana el primer match estructural completo.
//  3. Nombre del ítem (en minúsculas) como subcadena del texto, sin anclar.
//  4. Intención por presencia de palabra clave: bought/received/add ⇒
//     INCREASE; si no, used/sold ⇒ DECREASE; si no, se sigue con el
//     siguiente ítem.
//  5. Primer token numérico del texto; sin número, el ítem queda sin
//     procesar y se sigue escaneando.
//  6. A lo sumo un ajuste por comando; sin match en toda la lista se
//     devuelve el resultado no-procesado con la guía fija.
func Match(text string, items []*entity.Item) *Result {
	lowered := strings.ToLower(text)

	for _, item := range items {
		if !strings.Contains(lowered, strings.ToLower(item.Name)) {
			continue
		}
		var intent Intent
		switch {
		case containsAny(lowered, increaseKeywords):
			intent = IntentIncrease
		case containsAny(lowered, decreaseKeywords):
			intent = IntentDecrease
		default:
			continue
		}
		token := numberPattern.FindString(lowered)
		if token == "" {
			continue
		}
		amount, err := decimal.NewFromString(token)
		if err != nil {
			continue
		}
		verb := "Added"
		if intent == IntentDecrease {
			verb = "Removed"
		}
		return &Result{
			Processed: true,
			Intent:    intent,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Unit:      item.Unit,
			Amount:    amount,
			Message:   fmt.Sprintf("%s %s %s of %s!", verb, token, item.Unit, item.Name),
		}
	}

	return &Result{Processed: false, Message: GuidanceMessage}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
