package extraction

import (
	"sort"
	"strings"
)

// InvoiceView is the flat invoice projection of one page's field map. Values
// carry whatever the parser produced for the matching key.
type InvoiceView struct {
	InvoiceNumber   any   `json:"invoice_number"`
	Date            any   `json:"date"`
	DueDate         any   `json:"due_date"`
	VendorName      any   `json:"vendor_name"`
	VendorAddress   any   `json:"vendor_address"`
	CustomerName    any   `json:"customer_name"`
	CustomerAddress any   `json:"customer_address"`
	TotalAmount     any   `json:"total_amount"`
	Currency        any   `json:"currency"`
	TaxAmount       any   `json:"tax_amount"`
	LineItems       []any `json:"line_items"`
	PaymentTerms    any   `json:"payment_terms"`
}

// ProjectInvoiceView buckets flat field-map entries into standard invoice
// fields by ordered substring tests on the lower-cased key. Each key lands in
// at most one field; the first matching predicate wins. Pure: fields is not
// modified and the view shares no state with it.
func ProjectInvoiceView(fields map[string]any) InvoiceView {
	view := InvoiceView{LineItems: []any{}}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := fields[key]
		k := strings.ToLower(key)

		switch {
		case strings.Contains(k, "invoice") && strings.Contains(k, "number"):
			view.InvoiceNumber = value
		case strings.Contains(k, "date") && !strings.Contains(k, "due"):
			view.Date = value
		case strings.Contains(k, "due") && strings.Contains(k, "date"):
			view.DueDate = value
		case strings.Contains(k, "vendor") || strings.Contains(k, "seller"):
			if strings.Contains(k, "name") {
				view.VendorName = value
			} else if strings.Contains(k, "address") {
				view.VendorAddress = value
			}
		case strings.Contains(k, "customer") || strings.Contains(k, "buyer"):
			if strings.Contains(k, "name") {
				view.CustomerName = value
			} else if strings.Contains(k, "address") {
				view.CustomerAddress = value
			}
		case strings.Contains(k, "total") && strings.Contains(k, "amount"):
			view.TotalAmount = value
		case strings.Contains(k, "currency"):
			view.Currency = value
		case strings.Contains(k, "tax"):
			view.TaxAmount = value
		case strings.Contains(k, "payment") && strings.Contains(k, "terms"):
			view.PaymentTerms = value
		}
	}
	return view
}

// CustomsView is the shallow customs projection: top-level groupings only,
// no nested declaration tree.
type CustomsView struct {
	Kopf           map[string]any `json:"kopf"`
	Anmelder       map[string]any `json:"anmelder"`
	Position       []any          `json:"position"`
	AdditionalData map[string]any `json:"additional_data"`
}

// ProjectCustomsView buckets flat field-map entries into shallow customs
// groupings by keyword. Unmatched keys land in the additional-data bucket
// under their original name. Pure; shares no state with the populator output.
func ProjectCustomsView(fields map[string]any) CustomsView {
	view := CustomsView{
		Kopf:           map[string]any{},
		Anmelder:       map[string]any{},
		Position:       []any{},
		AdditionalData: map[string]any{},
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := fields[key]
		k := strings.ToLower(key)

		switch {
		case strings.Contains(k, "lrn") || strings.Contains(k, "referenznummer"):
			view.Kopf["lrn"] = value
		case strings.Contains(k, "datum") || strings.Contains(k, "date"):
			switch {
			case strings.Contains(k, "anmeld"):
				view.Kopf["zeitpunktderAnmeldung"] = value
			case strings.Contains(k, "ausgang"):
				view.Kopf["kopfDatumdesAusgangs"] = value
			default:
				view.Kopf["massgeblichesDatum"] = value
			}
		case strings.Contains(k, "anmelder") || strings.Contains(k, "declarant"):
			view.Anmelder["name"] = value
		case strings.Contains(k, "adresse") || strings.Contains(k, "address"):
			view.Anmelder["adresse"] = value
		case strings.Contains(k, "position") || strings.Contains(k, "line_items"):
			if list, ok := value.([]any); ok {
				view.Position = append(view.Position, list...)
			} else {
				view.Position = append(view.Position, value)
			}
		default:
			view.AdditionalData[key] = value
		}
	}
	return view
}
