package extraction

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"zollkie/internal/schema"
)

// Reserved flat-map keys that carry metadata rather than extracted fields.
const (
	MetadataKey      = "extraction_metadata"
	FieldPatternsKey = "detected_field_patterns"
)

// MappedField records the provenance of one successfully resolved field.
type MappedField struct {
	SchemaField        string `json:"schema_field"`
	OriginalValue      any    `json:"original_value"`
	MappedSuccessfully bool   `json:"mapped_successfully"`
}

// MappingMetadata is the provenance block attached to a populated document
// under the _mapping_metadata key.
type MappingMetadata struct {
	MappedFields           map[string]MappedField `json:"mapped_fields"`
	UnmappedFields         map[string]any         `json:"unmapped_fields"`
	FieldMappingConfidence map[string]string      `json:"field_mapping_confidence"`
}

// Populator maps flat extracted fields onto the declaration tree.
type Populator struct {
	catalog *Catalog
}

func NewPopulator(catalog *Catalog) *Populator {
	return &Populator{catalog: catalog}
}

// mergeKey matches flat-map keys against struct json tags during recursive
// object merges.
func mergeKey(key, tag string) bool {
	nk := NormalizeFieldName(key)
	nt := NormalizeFieldName(tag)
	if nk == "" || nt == "" {
		return false
	}
	return nk == nt || strings.Contains(nk, nt) || strings.Contains(nt, nk)
}

// Populate writes every non-reserved entry of fields into doc and returns the
// mapping provenance. The document is mutated in place. A single field's
// write failure is logged and recorded; it never aborts the call, and
// Populate itself never fails.
func (p *Populator) Populate(doc *schema.Document, fields map[string]any) *MappingMetadata {
	meta := &MappingMetadata{
		MappedFields:           make(map[string]MappedField),
		UnmappedFields:         make(map[string]any),
		FieldMappingConfidence: make(map[string]string),
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == MetadataKey || k == FieldPatternsKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := fields[key]
		canonical, ok := p.catalog.FindBestFieldMatch(key)
		if !ok {
			meta.UnmappedFields[key] = value
			continue
		}
		err := p.applyFieldRule(doc, canonical, value)
		if err != nil {
			log.Printf("extraction.Populator: field %q (%s): %v", key, canonical, err)
		}
		meta.MappedFields[key] = MappedField{
			SchemaField:        canonical,
			OriginalValue:      value,
			MappedSuccessfully: err == nil,
		}
		if err == nil {
			meta.FieldMappingConfidence[key] = "high"
		} else {
			meta.FieldMappingConfidence[key] = "low"
		}
	}

	p.applyContextualDates(doc, fields)
	return meta
}

// applyFieldRule dispatches one resolved field to its write rule. Panics from
// unexpected value shapes are converted to errors so a bad field never takes
// down the page.
func (p *Populator) applyFieldRule(doc *schema.Document, canonical string, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("write rule panicked: %v", r)
		}
	}()

	switch canonical {
	// Direct identifier writes.
	case "lrn":
		return doc.Set("kopf.lrn", schema.RenderScalar(value))
	case "mrn":
		// No dedicated leaf at declaration level.
		p.stashAdditional(doc, canonical, value)
		return nil
	case "eori":
		return doc.Set("nachrichtensender.eoriNiederlassungsnummer", schema.RenderScalar(value))
	case "dienststellennummer":
		return doc.Set("nachrichtenempfanger.dienststellennummer", schema.RenderScalar(value))

	// Customs offices.
	case "gestellungszollstelle":
		return doc.Set("gestellungszollstelle.gestellungszollstelle", schema.RenderScalar(value))
	case "ausfuhrzollstelle":
		return doc.Set("ausfuhrzollstelle.ausfuhrzollstelleDienststellennummer", schema.RenderScalar(value))
	case "ausfuhrzollstellefuerdieergaenzende":
		return doc.Set("ausfuhrZollstelleFurDieErganzende.ausfuhrZollstelleFurDieErganzende", schema.RenderScalar(value))
	case "vorgeseheneausgangszollstelle":
		return doc.Set("vorgeseheneAusgangszollstelle.vorgeseheneAusgangszollstelleDienststellennummer", schema.RenderScalar(value))
	case "tatsaechlicheausgangszollstelle":
		return doc.Set("tatsachlicheAusgangszollstelle.tatsachlicheAusgangszollstelleDienststellennummer", schema.RenderScalar(value))

	// Header leaves whose transliterated catalog id differs from the tag.
	case "rechnungswaehrung":
		return doc.Set("kopf.rechnungswahrung", schema.RenderScalar(value))
	case "besondereumstaende":
		return doc.Set("kopf.besondereUmstande", schema.RenderScalar(value))
	case "zeitpunktdesendesderladetaetigkeit":
		return doc.Set("kopf.zeitpunktdesEndesderLadetatigkeit", schema.RenderScalar(value))

	// Authorization block.
	case "bewilligung":
		if obj, ok := value.(map[string]any); ok {
			return p.mergeParty(doc, "bewilligung", obj)
		}
		return doc.Set("bewilligung.referenznummer", schema.RenderScalar(value))
	case "sequenznummer":
		return doc.Set("bewilligung.sequenznummer", schema.RenderScalar(value))
	case "art":
		return doc.Set("bewilligung.art", schema.RenderScalar(value))
	case "referenznummer":
		return doc.Set("bewilligung.referenznummer", schema.RenderScalar(value))

	// Parties with a name leaf: nested objects merge, scalars become names.
	case "anmelder":
		return p.partyRule(doc, "anmelder", value)
	case "ausfuehrer":
		return p.partyRule(doc, "ausfuhrer", value)
	case "aussenwirtschaftsrechtlicherausfuehrer":
		return p.partyRule(doc, "aussenwirtschaftsrechtlicherAusfuhrer", value)
	case "empfaenger":
		return p.partyRule(doc, "sendung.empfanger", value)
	case "versender":
		return p.partyRule(doc, "sendung.versender", value)
	case "wareempfaenger":
		return p.partyRule(doc, "position[0].wareEmpfanger", value)
	case "subunternehmer":
		return p.partyRule(doc, "subunternehmer", value)

	// Parties without a name leaf: scalars have no home in the block.
	case "vertreter":
		if obj, ok := value.(map[string]any); ok {
			return p.mergeParty(doc, "vertreter", obj)
		}
		p.stashAdditional(doc, canonical, value)
		return nil
	case "befoerderer":
		if obj, ok := value.(map[string]any); ok {
			return p.mergeParty(doc, "sendung.beforderer", obj)
		}
		p.stashAdditional(doc, canonical, value)
		return nil

	// Address components fill the first party block missing them.
	case "name", "strasse", "plz", "ort", "land":
		return p.fillAddressField(doc, canonical, value)

	// Declarant contact.
	case "ansprechname":
		return doc.Set("anmelder.ansprechpartner.ansprechName", schema.RenderScalar(value))
	case "phone":
		return doc.Set("anmelder.ansprechpartner.phone", schema.RenderScalar(value))
	case "ansprechemail":
		return doc.Set("anmelder.ansprechpartner.ansprechEmail", schema.RenderScalar(value))

	// Goods description and quantities materialize the first position.
	case "warenbezeichnung":
		return doc.Set("position[0].ware.wareWarenbezeichnung", schema.RenderScalar(value))
	case "erzeugniswarenbezeichnung":
		return doc.Set("lieferung.passiveVeredelung.erzeugnis[0].ware.erzeugnisWarenbezeichnung", schema.RenderScalar(value))
	case "warennummer", "unterpositiondesharmonisiertensystems":
		return doc.Set("position[0].ware.wareWarennummerKN8.unterpositionDesHarmonisiertenSystems", schema.RenderScalar(value))
	case "warewarennummerkn8", "unterpositionderkombiniertennomenklatur":
		return doc.Set("position[0].ware.wareWarennummerKN8.unterpositionDerKombiniertenNomenklatur", schema.RenderScalar(value))
	case "menge", "mengeinbesonderermasseinheit":
		return doc.Set("position[0].ware.vermessung.mengeinbesondererMabeinheit", schema.RenderScalar(value))
	case "wareigenrasse":
		return doc.Set("position[0].ware.vermessung.wareRohmasse", schema.RenderScalar(value))
	case "wareeigenmasse":
		return doc.Set("position[0].ware.vermessung.wareEigenmasse", schema.RenderScalar(value))

	// Transport equipment materializes the first equipment element.
	case "containernummer":
		return doc.Set("sendung.transportausrustung[0].containernummer", schema.RenderScalar(value))
	case "verschlusskennzeichen":
		return doc.Set("sendung.transportausrustung[0].verschluss[0].verschlusskennzeichen", schema.RenderScalar(value))
	case "anzahlderverschluesse":
		return doc.Set("sendung.transportausrustung[0].anzahlderVerschlusse", schema.RenderScalar(value))
	case "inlaendischervehrkehrszweig":
		return doc.Set("sendung.inlandischerVerkehrszweig", schema.RenderScalar(value))
	case "verkehrszweiganddergrenze":
		return doc.Set("sendung.verkehrszweigAnDerGrenze", schema.RenderScalar(value))

	// Delivery block.
	case "artdesgeschaefts":
		return doc.Set("lieferung.artdesGeschafts", schema.RenderScalar(value))
	case "ausfuhrland":
		return doc.Set("lieferung.ausfuhrLand", schema.RenderScalar(value))
	case "bestimmungsland":
		return doc.Set("lieferung.bestimmungsLand", schema.RenderScalar(value))
	case "lieferbedingungincotermcode":
		return doc.Set("lieferung.lieferbedingungen.lieferbedingungIncotermCode", schema.RenderScalar(value))
	case "lieferbedingungunlocode":
		return doc.Set("lieferung.lieferbedingungen.lieferbedingungUnLocode", schema.RenderScalar(value))
	case "lieferbedingungort":
		return doc.Set("lieferung.lieferbedingungen.lieferbedingungOrt", schema.RenderScalar(value))
	case "lieferbedingungland":
		return doc.Set("lieferung.lieferbedingungen.lieferbedingungLand", schema.RenderScalar(value))
	case "lieferbedingungtext":
		return doc.Set("lieferung.lieferbedingungen.lieferbedingungText", schema.RenderScalar(value))
	}

	return p.applyGenericRule(doc, canonical, value)
}

// partyRule merges an object value into the party block at path, or writes a
// scalar to the block's name leaf.
func (p *Populator) partyRule(doc *schema.Document, path string, value any) error {
	if obj, ok := value.(map[string]any); ok {
		return p.mergeParty(doc, path, obj)
	}
	return doc.Set(path+".name", schema.RenderScalar(value))
}

// mergeParty merges obj into the block at path; source keys that match no
// field in the block are preserved in the additional-fields bucket.
func (p *Populator) mergeParty(doc *schema.Document, path string, obj map[string]any) error {
	unmatched, err := doc.MergeObject(path, obj, mergeKey)
	if err != nil {
		return err
	}
	for _, key := range unmatched {
		p.stashAdditional(doc, path+"."+key, obj[key])
	}
	return nil
}

// addressTargets lists the blocks an address component may fill, in priority
// order. The first block missing the field receives the value; when every
// block already holds one, the declarant's value is overwritten.
var addressTargets = map[string][]string{
	"strasse": {"anmelder.adresse.strasse", "ausfuhrer.adresse.strasse", "sendung.versender.adresse.strasse", "sendung.empfanger.adresse.strasse", "sendung.warenort.adresse.strasse"},
	"plz":     {"anmelder.adresse.plz", "ausfuhrer.adresse.plz", "sendung.versender.adresse.plz", "sendung.empfanger.adresse.plz", "sendung.warenort.adresse.plz"},
	"ort":     {"anmelder.adresse.ort", "ausfuhrer.adresse.ort", "sendung.versender.adresse.ort", "sendung.empfanger.adresse.ort", "sendung.warenort.adresse.ort"},
	"land":    {"anmelder.adresse.land", "ausfuhrer.adresse.land", "sendung.versender.adresse.land", "sendung.empfanger.adresse.land", "sendung.warenort.adresse.land"},
	"name":    {"anmelder.name", "ausfuhrer.name", "sendung.versender.name", "sendung.empfanger.name", "sendung.warenort.adresse.name"},
}

func (p *Populator) fillAddressField(doc *schema.Document, canonical string, value any) error {
	targets := addressTargets[canonical]
	for _, path := range targets {
		if _, present := doc.Get(path); !present {
			return doc.Set(path, schema.RenderScalar(value))
		}
	}
	return doc.Set(targets[0], schema.RenderScalar(value))
}

// genericSections are searched in order by the fallback rule.
var genericSections = []string{"kopf", "sendung", "position[0]"}

// applyGenericRule finds a leaf for fields with no special-case rule: first
// an exact normalized leaf-name match within the header, shipment, or
// goods-position section, then a containment match preferring the longest
// leaf name. Fields with no home land in the additional-fields bucket.
func (p *Populator) applyGenericRule(doc *schema.Document, canonical string, value any) error {
	n := NormalizeFieldName(canonical)

	for _, section := range genericSections {
		for _, path := range schema.LeafPathsUnder(section) {
			if NormalizeFieldName(lastSegment(path)) == n {
				return doc.Set(path, schema.RenderScalar(value))
			}
		}
	}

	best := ""
	bestLen := 0
	for _, section := range genericSections {
		for _, path := range schema.LeafPathsUnder(section) {
			leaf := NormalizeFieldName(lastSegment(path))
			if leaf == "" {
				continue
			}
			if !strings.Contains(leaf, n) && !strings.Contains(n, leaf) {
				continue
			}
			if len(leaf) > bestLen {
				best = path
				bestLen = len(leaf)
			}
		}
	}
	if best != "" {
		return doc.Set(best, schema.RenderScalar(value))
	}

	p.stashAdditional(doc, canonical, value)
	return nil
}

func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.IndexByte(path, '['); i >= 0 {
		path = path[:i]
	}
	return path
}

func (p *Populator) stashAdditional(doc *schema.Document, key string, value any) {
	if doc.AdditionalFields == nil {
		doc.AdditionalFields = make(map[string]any)
	}
	doc.AdditionalFields[key] = value
}

func isScalar(value any) bool {
	switch value.(type) {
	case string, float64, bool, int, int64:
		return true
	}
	return false
}

// applyContextualDates is the second pass over the original flat map: keys
// whose normalized form contains a date indicator are routed to the header
// date leaves by keyword. The three specific leaves are overwritten
// unconditionally; the generic relevant-date leaf keeps its first value.
func (p *Populator) applyContextualDates(doc *schema.Document, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == MetadataKey || k == FieldPatternsKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := fields[key]
		if !isScalar(value) {
			continue
		}
		n := NormalizeFieldName(key)
		if !strings.Contains(n, "datum") && !strings.Contains(n, "date") && !strings.Contains(n, "zeit") {
			continue
		}
		rendered := schema.RenderScalar(value)
		switch {
		case strings.Contains(n, "anmeldung"):
			_ = doc.Set("kopf.zeitpunktderAnmeldung", rendered)
		case strings.Contains(n, "ausgang"):
			_ = doc.Set("kopf.kopfDatumdesAusgangs", rendered)
		case strings.Contains(n, "gestellung"):
			_ = doc.Set("kopf.zeitpunktDerGestellung", rendered)
		default:
			if _, present := doc.Get("kopf.massgeblichesDatum"); !present {
				_ = doc.Set("kopf.massgeblichesDatum", rendered)
			}
		}
	}
}
