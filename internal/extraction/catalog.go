package extraction

// CatalogEntry maps one canonical field identifier to the German and English
// labels (including common misspellings) it may appear under in extracted
// text.
type CatalogEntry struct {
	Field    string
	Synonyms []string
}

// catalogEntries is the full canonical field catalog for the ATLAS export
// declaration. Order is significant: when two synonyms tie on substring
// score, the earlier entry wins.
var catalogEntries = []CatalogEntry{
	// Root level identifiers
	{"lrn", []string{"lrn", "local reference number", "lokale referenznummer", "referenznummer"}},
	{"mrn", []string{"mrn", "movement reference number", "bearbeitungsnummer"}},
	{"eori", []string{"eori", "eori-nummer", "eori nummer", "tin"}},

	// Header fields (kopf)
	{"artderanmeldung", []string{"art der anmeldung", "declaration type"}},
	{"artderausfuhranmeldung", []string{"art der ausfuhranmeldung", "export declaration type"}},
	{"beteiligtenkonstellation", []string{"beteiligtenkonstellation", "parties constellation"}},
	{"zeitpunktderanmeldung", []string{"zeitpunkt der anmeldung", "declaration time"}},
	{"massgeblichesdatum", []string{"maßgebliches datum", "relevant date", "massgebliches datum"}},
	{"kopfdatumdesausgangs", []string{"kopf datum des ausgangs", "header exit date"}},
	{"zeitpunktdergestellung", []string{"zeitpunkt der gestellung", "lodgement time"}},
	{"zeitpunktdesendesderladetaetigkeit", []string{"zeitpunkt des endes der ladetätigkeit", "loading end time"}},
	{"sicherheit", []string{"sicherheit", "security"}},
	{"besondereumstaende", []string{"besondere umstände", "special circumstances"}},
	{"inrechnunggestelltergesamtbetrag", []string{"in rechnung gestellter gesamtbetrag", "total invoiced amount"}},
	{"rechnungswaehrung", []string{"rechnungswährung", "invoice currency", "rechnungswahrung"}},

	// Parties
	{"anmelder", []string{"anmelder", "declarant", "deklarant"}},
	{"ausfuehrer", []string{"ausführer", "exporter", "ausfuhrer"}},
	{"aussenwirtschaftsrechtlicherausfuehrer", []string{"aussenwirtschaftsrechtlicher ausführer", "economic exporter"}},
	{"empfaenger", []string{"empfänger", "consignee", "empfanger"}},
	{"versender", []string{"versender", "consignor", "sender"}},
	{"befoerderer", []string{"beförderer", "carrier", "beforderer"}},
	{"vertreter", []string{"vertreter", "representative", "agent"}},
	{"subunternehmer", []string{"subunternehmer", "subcontractor"}},
	{"wareempfaenger", []string{"warenempfänger", "goods consignee", "wareempfanger"}},

	// Contact information
	{"ansprechname", []string{"ansprechpartner", "contact person", "ansprechname"}},
	{"phone", []string{"telefon", "phone", "tel", "telephone"}},
	{"ansprechemail", []string{"email", "e-mail", "mail", "ansprechemail"}},

	// Addresses
	{"name", []string{"name", "firma", "company", "unternehmen"}},
	{"strasse", []string{"straße", "street", "strasse", "adresse"}},
	{"plz", []string{"plz", "postal code", "postleitzahl"}},
	{"ort", []string{"ort", "city", "stadt"}},
	{"land", []string{"land", "country", "staat"}},

	// Customs offices
	{"gestellungszollstelle", []string{"gestellungszollstelle", "office of lodgement"}},
	{"ausfuhrzollstelle", []string{"ausfuhrzollstelle", "office of export"}},
	{"ausfuhrzollstellefuerdieergaenzende", []string{"ausfuhrzollstelle für die ergänzende", "supplementary export office"}},
	{"vorgeseheneausgangszollstelle", []string{"vorgesehene ausgangszollstelle", "intended office of exit"}},
	{"tatsaechlicheausgangszollstelle", []string{"tatsächliche ausgangszollstelle", "actual office of exit"}},
	{"dienststellennummer", []string{"dienststellennummer", "office number"}},

	// Authorization
	{"bewilligung", []string{"bewilligung", "authorization", "genehmigung"}},
	{"bewilligungsinhaber", []string{"bewilligungsinhaber", "authorization holder"}},
	{"sequenznummer", []string{"sequenznummer", "sequence number"}},
	{"art", []string{"art", "type", "typ"}},
	{"referenznummer", []string{"referenznummer", "reference number"}},

	// Delivery/shipment
	{"artdesgeschaefts", []string{"art des geschäfts", "nature of transaction"}},
	{"ausfuhrland", []string{"ausfuhrland", "export country"}},
	{"bestimmungsland", []string{"bestimmungsland", "destination country"}},
	{"ursprungsland", []string{"ursprungsland", "country of origin"}},
	{"ursprungsversendungsregion", []string{"ursprungsversendungsregion", "origin dispatch region"}},

	// Incoterms
	{"lieferbedingungincotermcode", []string{"lieferbedingung incoterm code", "incoterm code"}},
	{"lieferbedingungunlocode", []string{"lieferbedingung un locode", "incoterm location code"}},
	{"lieferbedingungort", []string{"lieferbedingung ort", "incoterm place"}},
	{"lieferbedingungland", []string{"lieferbedingung land", "incoterm country"}},
	{"lieferbedingungtext", []string{"lieferbedingung text", "incoterm text"}},

	// Transport
	{"containerindikator", []string{"containerindikator", "container indicator"}},
	{"inlaendischervehrkehrszweig", []string{"inländischer verkehrszweig", "inland mode of transport"}},
	{"verkehrszweiganddergrenze", []string{"verkehrszweig an der grenze", "mode of transport at border"}},
	{"gesamtrohmasse", []string{"gesamtrohmasse", "total gross mass"}},
	{"referenznummerucr", []string{"referenznummer ucr", "ucr reference"}},
	{"registriernummerextern", []string{"registriernummer extern", "external registration"}},
	{"containernummer", []string{"containernummer", "container number"}},
	{"verschlusskennzeichen", []string{"verschlusskennzeichen", "seal identifier"}},
	{"anzahlderverschluesse", []string{"anzahl der verschlüsse", "number of seals"}},
	{"kennzeichen", []string{"kennzeichen", "identification"}},
	{"staatszugehoerigkeit", []string{"staatszugehörigkeit", "nationality"}},
	{"artderidentifikation", []string{"art der identifikation", "type of identification"}},

	// Goods information
	{"warenbezeichnung", []string{"warenbezeichnung", "description of goods", "warenbeschreibung"}},
	{"erzeugniswarenbezeichnung", []string{"erzeugnis warenbezeichnung", "product description"}},
	{"warennummer", []string{"warennummer", "commodity code", "hs code", "cn code"}},
	{"warewarennummerkn8", []string{"ware warennummer kn8", "cn8 commodity code"}},
	{"warecusnummer", []string{"ware cusnummer", "customs code"}},
	{"unterpositiondesharmonisiertensystems", []string{"unterposition des harmonisierten systems", "hs subheading"}},
	{"unterpositionderkombiniertennomenklatur", []string{"unterposition der kombinierten nomenklatur", "cn subheading"}},
	{"tariccode", []string{"taric code", "taric"}},
	{"tariczusatzcode", []string{"taric zusatzcode", "additional taric code"}},
	{"nationalerzusatzcode", []string{"nationaler zusatzcode", "national additional code"}},

	// Quantities and measures
	{"warepositionsnummer", []string{"warenpositionsnummer", "item number"}},
	{"statistischerwert", []string{"statistischer wert", "statistical value"}},
	{"wareigenrasse", []string{"ware rohmasse", "gross mass"}},
	{"wareeigenmasse", []string{"ware eigenmasse", "net mass"}},
	{"mengeinbesonderermasseinheit", []string{"menge in besonderer maßeinheit", "quantity in supplementary unit"}},
	{"menge", []string{"menge", "quantity", "anzahl"}},
	{"mabeinheit", []string{"maßeinheit", "unit of measure", "mabeinheit"}},
	{"ergaenzendermabeinheit", []string{"ergänzende maßeinheit", "supplementary unit"}},
	{"abgangsmenge", []string{"abgangsmenge", "departure quantity"}},
	{"handelsmenge", []string{"handelsmenge", "commercial quantity"}},
	{"abgangsmengrmabeinheit", []string{"abgangsmenge maßeinheit", "departure quantity unit"}},
	{"abgangsmengequalifikator", []string{"abgangsmenge qualifikator", "departure quantity qualifier"}},
	{"abgangsmengermenge", []string{"abgangsmenge menge", "departure quantity amount"}},
	{"handelsmengermabeinheit", []string{"handelsmenge maßeinheit", "commercial quantity unit"}},
	{"handelsmengequalifikator", []string{"handelsmenge qualifikator", "commercial quantity qualifier"}},
	{"handelsmengermenge", []string{"handelsmenge menge", "commercial quantity amount"}},

	// Values and currency
	{"betrag", []string{"betrag", "amount", "wert"}},
	{"waehrung", []string{"währung", "currency", "waehrung"}},

	// Packaging
	{"artderverpackung", []string{"art der verpackung", "type of packages"}},
	{"anzahlderpackstuecke", []string{"anzahl der packstücke", "number of packages"}},
	{"versandzeichen", []string{"versandzeichen", "shipping marks"}},
	{"packstuckverweispositionsnummer", []string{"packstückverweis positionsnummer", "package reference item number"}},

	// Documents
	{"vorpapier", []string{"vorpapier", "previous document"}},
	{"unterlage", []string{"unterlage", "document"}},
	{"transportdokument", []string{"transportdokument", "transport document"}},
	{"sonstigerverweis", []string{"sonstiger verweis", "other reference"}},
	{"qualifikator", []string{"qualifikator", "qualifier"}},
	{"zeilenpositionsnummer", []string{"zeilenpositionsnummer", "line item number"}},
	{"datumderausstellung", []string{"datum der ausstellung", "issue date"}},
	{"gultigkeitsdatum", []string{"gültigkeitsdatum", "validity date"}},
	{"namederausstellendenbehorde", []string{"name der ausstellenden behörde", "issuing authority"}},
	{"zusaetzlicheangaben", []string{"zusätzliche angaben", "additional information"}},
	{"detail", []string{"detail", "details"}},

	// Additional information
	{"zusaetzlicheinformation", []string{"zusätzliche information", "additional information"}},
	{"code", []string{"code", "kode"}},
	{"text", []string{"text", "beschreibung"}},

	// Procedures
	{"verfahren", []string{"verfahren", "procedure"}},
	{"beantragtesverfahren", []string{"beantragtes verfahren", "requested procedure"}},
	{"vorhergehendesverfahren", []string{"vorhergehendes verfahren", "previous procedure"}},
	{"zusaetzlichesverfahren", []string{"zusätzliches verfahren", "additional procedure"}},

	// Location of goods
	{"warenort", []string{"warenort", "location of goods"}},
	{"warenortartdesortes", []string{"warenort art des ortes", "location type"}},
	{"warenortartderortsbestimmung", []string{"warenort art der ortsbestimmung", "location identification type"}},
	{"warenortbewilligungsnummer", []string{"warenort bewilligungsnummer", "location authorization number"}},
	{"warerortzusaetzlichekennung", []string{"warenort zusätzliche kennung", "location additional identifier"}},
	{"warenortunlocode", []string{"warenort un locode", "location un locode"}},
	{"warenortgnssbreite", []string{"warenort gnss breite", "location gnss latitude"}},
	{"warenortgnsslang", []string{"warenort gnss länge", "location gnss longitude"}},

	// Transport equipment
	{"transportausruestung", []string{"transportausrüstung", "transport equipment"}},
	{"verschluss", []string{"verschluss", "seal"}},
	{"warenpositionsverweis", []string{"warenpositionsverweis", "goods item reference"}},
	{"positionsnummer", []string{"positionsnummer", "item number"}},

	// Transport means
	{"befoerderungsmittelbeimabgang", []string{"beförderungsmittel beim abgang", "means of transport at departure"}},
	{"grenzueberschreitendesaktivesbefoerderungsmittel", []string{"grenzüberschreitendes aktives beförderungsmittel", "active means of transport crossing border"}},
	{"befoerderungsmitteldergrenzeart", []string{"beförderungsmittel der grenze art", "border transport type"}},
	{"befoerderungsmitteldergrenzekennzeichen", []string{"beförderungsmittel der grenze kennzeichen", "border transport identifier"}},
	{"befoerderungsmitteldergrenzesstaatszugehoerigkeit", []string{"beförderungsmittel der grenze staatszugehörigkeit", "border transport nationality"}},

	// Routes
	{"befoerderungsroute", []string{"beförderungsroute", "transport route"}},
	{"ausgewaehltelaender", []string{"ausgewählte länder", "selected countries"}},

	// Transport costs
	{"befoerderungskosten", []string{"beförderungskosten", "transport charges"}},
	{"befoerderungskostenzahlungsart", []string{"beförderungskosten zahlungsart", "transport charges payment method"}},

	// Dangerous goods
	{"gefahrgut", []string{"gefahrgut", "dangerous goods"}},
	{"unnummer", []string{"un nummer", "un number"}},

	// Supply chain
	{"lieferkettenbeteiligter", []string{"lieferkettenbeteiligter", "supply chain actor"}},
	{"funktion", []string{"funktion", "function"}},
	{"identifikationsnummer", []string{"identifikationsnummer", "identification number"}},

	// Passive processing
	{"passiveveredelung", []string{"passive veredelung", "inward processing"}},
	{"wiedereinfuhr", []string{"wiedereinfuhr", "re-import"}},
	{"wiedereinfuhrland", []string{"wiedereinfuhr land", "re-import country"}},
	{"naemlichkeitsmittel", []string{"nämlichkeitsmittel", "identification means"}},
	{"naemlichkeitsmitteart", []string{"nämlichkeitsmittel art", "identification means type"}},
	{"naemlichkeitsmitteltextlichebeschreibung", []string{"nämlichkeitsmittel textliche beschreibung", "identification means description"}},
	{"erzeugnis", []string{"erzeugnis", "product"}},
	{"standardaustauschersatzwarenverkehr", []string{"standardaustausch ersatzwarenverkehr", "standard exchange equivalent goods"}},
	{"datumdarwiedereinfuhr", []string{"datum der wiedereinfuhr", "re-import date"}},

	// Warehouse procedure
	{"verfahrensubergangav", []string{"verfahrensübergang av", "procedure transition"}},
	{"zolllager", []string{"zolllager", "customs warehouse"}},
	{"zolllgerlrn", []string{"zolllager lrn", "warehouse lrn"}},
	{"zolllgerbewilligungsnummer", []string{"zolllager bewilligungsnummer", "warehouse authorization number"}},
	{"zolllgerbewilligungart", []string{"zolllager bewilligung art", "warehouse authorization type"}},
	{"zolllgerbewilligungreferenznummer", []string{"zolllager bewilligung referenznummer", "warehouse authorization reference"}},
	{"zuganginatlas", []string{"zugang in atlas", "access in atlas"}},
	{"registriernummer", []string{"registriernummer", "registration number"}},
	{"ueblichebehandlung", []string{"übliche behandlung", "usual treatment"}},

	// Active processing
	{"aktiveveredelung", []string{"aktive veredelung", "outward processing"}},
	{"vereinfachterteilbewilligung", []string{"vereinfacht erteilte bewilligung", "simplified authorization"}},
	{"ueberwachungszollstelle", []string{"überwachungszollstelle", "supervising customs office"}},
	{"ueberwachungszollstellereferenznummer", []string{"überwachungszollstelle referenznummer", "supervising office reference"}},
	{"positionavsequenznummer", []string{"position av sequenznummer", "position sequence number"}},
	{"positionavzugangppatlas", []string{"position av zugang in atlas", "position access in atlas"}},
	{"warenpositionmrn", []string{"warenposition mrn", "goods item mrn"}},
	{"positionavregistriernummer", []string{"position av registriernummer", "position registration number"}},
	{"positionavpositionsnummer", []string{"position av positionsnummer", "position item number"}},
	{"positionavwarenbezogeneangaben", []string{"position av warenbezogene angaben", "position goods-related information"}},

	// Misc document fields
	{"vorpapierart", []string{"vorpapier art", "previous document type"}},
	{"vorpapierqualifikator", []string{"vorpapier qualifikator", "previous document qualifier"}},
	{"vorpapierreferenznummer", []string{"vorpapier referenznummer", "previous document reference"}},
	{"vorpapierpositionsnummer", []string{"vorpapier positionsnummer", "previous document item number"}},
	{"vorpapiermabeinheit", []string{"vorpapier maßeinheit", "previous document unit"}},
	{"vorpapiermenge", []string{"vorpapier menge", "previous document quantity"}},
	{"vorpapierzusaetzlicheangaben", []string{"vorpapier zusätzliche angaben", "previous document additional information"}},
}
