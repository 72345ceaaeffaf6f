package extraction

import (
	"sort"
	"strings"
)

// Keyword patterns for the lightweight document scan. These are looser than
// the canonical catalog: they flag which fields a page likely contains
// without committing to a schema placement.
var germanFieldPatterns = map[string][]string{
	"lrn":   {"lrn", "local reference number", "referenznummer", "anmeldenummer"},
	"mrn":   {"mrn", "movement reference number", "bearbeitungsnummer"},
	"eori":  {"eori", "eori-nummer", "eori nummer"},
	"datum": {"datum", "date", "zeitpunkt"},

	"anmeldedatum":      {"anmeldedatum", "declaration date", "zeitpunkt der anmeldung"},
	"ausgangsdatum":     {"ausgangsdatum", "departure date", "datum des ausgangs"},
	"gueltigkeitsdatum": {"gültigkeitsdatum", "validity date", "gultigkeitsdatum"},

	"anmelder":  {"anmelder", "declarant", "deklarant"},
	"ausfuhrer": {"ausführer", "exporter", "ausfuhrer"},
	"empfanger": {"empfänger", "consignee", "empfanger"},
	"versender": {"versender", "consignor", "sender"},
	"beforderer": {"beförderer", "carrier", "beforderer"},
	"vertreter": {"vertreter", "representative", "agent"},

	"name":    {"name", "firma", "company", "unternehmen"},
	"strasse": {"straße", "street", "strasse", "adresse"},
	"plz":     {"plz", "postal code", "postleitzahl"},
	"ort":     {"ort", "city", "stadt"},
	"land":    {"land", "country", "staat"},

	"telefon": {"telefon", "phone", "tel", "telephone"},
	"email":   {"email", "e-mail", "mail"},
	"fax":     {"fax", "telefax"},

	"zollstelle":           {"zollstelle", "customs office", "zollamt"},
	"gestellungszollstelle": {"gestellungszollstelle", "office of lodgement"},
	"ausfuhrzollstelle":    {"ausfuhrzollstelle", "office of export"},
	"ausgangszollstelle":   {"ausgangszollstelle", "office of exit"},

	"warenbezeichnung": {"warenbezeichnung", "description of goods", "warenbeschreibung"},
	"warennummer":      {"warennummer", "commodity code", "hs code", "cn code"},
	"ursprungsland":    {"ursprungsland", "country of origin", "herkunftsland"},
	"bestimmungsland":  {"bestimmungsland", "country of destination", "zielland"},

	"menge":      {"menge", "quantity", "anzahl"},
	"gewicht":    {"gewicht", "weight", "masse"},
	"rohmasse":   {"rohmasse", "gross mass", "bruttogewicht"},
	"eigenmasse": {"eigenmasse", "net mass", "nettogewicht"},
	"wert":       {"wert", "value", "betrag"},
	"waehrung":   {"währung", "currency", "waehrung"},

	"verkehrszweig":   {"verkehrszweig", "mode of transport", "transportmittel"},
	"kennzeichen":     {"kennzeichen", "identification", "nummer"},
	"containernummer": {"containernummer", "container number"},
	"verschlussnummer": {"verschlussnummer", "seal number"},

	"dokument":          {"dokument", "document", "unterlage"},
	"rechnung":          {"rechnung", "invoice", "faktura"},
	"ursprungszeugnis":  {"ursprungszeugnis", "certificate of origin"},
	"ausfuhrgenhmigung": {"ausfuhrgenehmigung", "export licence", "exportlizenz"},

	"verfahren":     {"verfahren", "procedure", "prozedur"},
	"zollverfahren": {"zollverfahren", "customs procedure"},
	"bewilligung":   {"bewilligung", "authorization", "genehmigung"},

	"bemerkungen":        {"bemerkungen", "remarks", "hinweise"},
	"zusatzliche_angaben": {"zusätzliche angaben", "additional information"},
	"besondere_umstande": {"besondere umstände", "special circumstances"},
}

var englishFieldPatterns = map[string][]string{
	"lrn":  {"lrn", "local reference number", "reference number"},
	"mrn":  {"mrn", "movement reference number"},
	"eori": {"eori", "eori number"},

	"date":             {"date", "datum"},
	"declaration_date": {"declaration date", "lodgement date"},
	"departure_date":   {"departure date", "exit date"},
	"validity_date":    {"validity date", "expiry date"},

	"declarant":      {"declarant", "declarer"},
	"exporter":       {"exporter", "shipper"},
	"consignee":      {"consignee", "receiver"},
	"consignor":      {"consignor", "sender"},
	"carrier":        {"carrier", "transport company"},
	"representative": {"representative", "agent"},

	"invoice_number": {"invoice number", "invoice no", "bill number"},
	"invoice_date":   {"invoice date", "bill date"},
	"due_date":       {"due date", "payment due"},
	"total_amount":   {"total amount", "total", "grand total"},
	"tax_amount":     {"tax amount", "vat", "tax"},
	"currency":       {"currency", "curr"},

	"description": {"description", "item description"},
	"quantity":    {"quantity", "qty", "amount"},
	"unit_price":  {"unit price", "price per unit"},
	"total_price": {"total price", "line total"},
}

func combinedFieldPatterns() map[string][]string {
	combined := make(map[string][]string, len(germanFieldPatterns)+len(englishFieldPatterns))
	for k, v := range germanFieldPatterns {
		combined[k] = v
	}
	for k, v := range englishFieldPatterns {
		combined[k] = v
	}
	return combined
}

// DetectFieldPatterns scans page text for known field keywords and returns,
// per flagged field, the keywords that actually occurred. Purely advisory
// output; it feeds the raw-extraction metadata, not the populator.
func DetectFieldPatterns(text string) map[string][]string {
	lower := strings.ToLower(text)
	patterns := combinedFieldPatterns()

	fields := make([]string, 0, len(patterns))
	for f := range patterns {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	matches := make(map[string][]string)
	for _, field := range fields {
		var found []string
		for _, kw := range patterns[field] {
			if strings.Contains(lower, strings.ToLower(kw)) {
				found = append(found, kw)
			}
		}
		if len(found) > 0 {
			matches[field] = found
		}
	}
	return matches
}
