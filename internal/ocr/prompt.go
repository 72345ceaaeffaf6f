package ocr

// BuildExtractionPrompt returns the key-value extraction prompt sent with
// every page. The checklist is bilingual because source documents mix German
// customs paperwork with English commercial invoices.
func BuildExtractionPrompt() string {
	return `Extract all key-value pairs from this document. Focus on:
- Invoice details (invoice number, date, due date, amount)
- Company information (vendor name, address, contact details)
- Customer information (bill to, ship to addresses)
- Line items (description, quantity, price, total)
- Payment terms and tax information
- Customs declaration fields: LRN, MRN, EORI-Nummer, Anmelder, Ausführer,
  Empfänger, Versender, Beförderer, Zollstellen (Gestellungszollstelle,
  Ausfuhrzollstelle, Ausgangszollstelle), Warenbezeichnung, Warennummer
  (HS/CN code), Ursprungsland, Bestimmungsland, Mengen und Massen (Rohmasse,
  Eigenmasse), Containernummer, Verschlusskennzeichen, Lieferbedingungen
  (Incoterms), Bewilligungen und Verfahren
- Any other relevant document data

Format the response as a JSON object with clear key-value pairs. Use descriptive keys and ensure all extracted text is accurate. For German text, preserve the original language.

Example format:
{
    "lrn": "DE-2024-000123",
    "anmelder": {
        "name": "ABC GmbH",
        "strasse": "Hauptstraße 1",
        "plz": "20095",
        "ort": "Hamburg",
        "land": "DE"
    },
    "invoice_number": "INV-2024-001",
    "date": "2024-01-15",
    "total_amount": "1,250.00",
    "currency": "EUR",
    "warenbezeichnung": "Machine parts"
}`
}
